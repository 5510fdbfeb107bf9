package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPaymentMethod(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Cash", "Cash", true},
		{"cash", "Cash", true},
		{" bank transfer ", "Bank Transfer", true},
		{"CARD", "Card", true},
		{"Paid", "", false},
		{"cheque", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalPaymentMethod(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestBankTransferScansFirst(t *testing.T) {
	assert.Equal(t, "Bank Transfer", PaymentMethods[0])
}
