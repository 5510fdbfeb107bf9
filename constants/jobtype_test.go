package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeJobType(t *testing.T) {
	tests := []struct {
		input string
		want  JobType
		ok    bool
	}{
		{"Window Cleaning", Windows, true},
		{"  gutter clearing ", Gutters, true},
		{"JET WASH", PressureWashing, true},
		{"Conservatory", Conservatory, true},
		{"soffits", Fascias, true},
		{"hedge trimming", OtherWork, false},
		{"", OtherWork, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalizeJobType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestJobTypesAsStringSlice(t *testing.T) {
	types := JobTypesAsStringSlice()
	assert.Contains(t, types, "Windows")
	assert.Contains(t, types, "Other")
	assert.Len(t, types, 6)
}

func TestDefaultServiceCanonicalizes(t *testing.T) {
	jt, ok := CanonicalizeJobType(DefaultService)
	assert.True(t, ok)
	assert.Equal(t, Windows, jt)
}
