package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformFullRow(t *testing.T) {
	tr := NewTransformer(nil)

	job, ok := tr.Transform(map[string]string{
		"Name":    "Name: John Smith",
		"Address": "1 Rd",
		"Price":   "Price: Â£45.00",
		"Notes":   "Paid via Cash, gate code 123",
	})
	require.True(t, ok)

	assert.Equal(t, "John Smith", job.Name)
	assert.Equal(t, "1 Rd", job.Address)
	assert.Equal(t, "45.00", job.Price)
	assert.Equal(t, "Cash", job.PaymentMethod)
	assert.Equal(t, "Paid via , gate code 123", job.Notes)
	assert.Equal(t, "pending", job.Status)
	assert.Equal(t, "0.00", job.Balance)
}

func TestTransformRejection(t *testing.T) {
	tr := NewTransformer(nil)

	tests := []struct {
		name string
		row  map[string]string
		want bool
	}{
		{name: "blank row", row: map[string]string{"Name": "", "Address": ""}, want: false},
		{name: "placeholder name only", row: map[string]string{"Name": "Unknown"}, want: false},
		{name: "whitespace only", row: map[string]string{"Name": "   ", "Address": " "}, want: false},
		{name: "address rescues missing name", row: map[string]string{"Address": "1 Rd"}, want: true},
		{name: "name alone suffices", row: map[string]string{"Name": "John"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tr.Transform(tt.row)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestTransformNameFallback(t *testing.T) {
	tr := NewTransformer(nil)

	job, ok := tr.Transform(map[string]string{"Address": "14 Elm Grove, Leeds"})
	require.True(t, ok)
	assert.Equal(t, "14 Elm Grove", job.Name, "first comma segment of address")
}

func TestTransformMoney(t *testing.T) {
	tr := NewTransformer(nil)

	tests := []struct {
		name      string
		price     string
		wantPrice string
	}{
		{name: "plain pound sign", price: "£45", wantPrice: "45.00"},
		{name: "mangled encoding", price: "Â£12.50", wantPrice: "12.50"},
		{name: "bare integer", price: "30", wantPrice: "30.00"},
		{name: "three decimals rounded to two", price: "9.999", wantPrice: "10.00"},
		{name: "garbage clamps to zero", price: "call to discuss", wantPrice: "0.00"},
		{name: "missing", price: "", wantPrice: "0.00"},
		{name: "negative sign stripped", price: "-15", wantPrice: "15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, ok := tr.Transform(map[string]string{"Name": "J", "Price": tt.price})
			require.True(t, ok)
			assert.Equal(t, tt.wantPrice, job.Price)
		})
	}
}

func TestTransformDebtor(t *testing.T) {
	tr := NewTransformer(nil)

	job, ok := tr.Transform(map[string]string{"Address": "1 Rd", "Balance": "30"})
	require.True(t, ok)
	assert.Equal(t, "debtor", job.Status)
	assert.Equal(t, "30.00", job.Balance)
}

func TestTransformPaymentTokenPriority(t *testing.T) {
	tr := NewTransformer(nil)

	tests := []struct {
		name       string
		notes      string
		wantMethod string
		wantNotes  string
	}{
		{
			name:       "bank transfer outranks card substring",
			notes:      "bank transfer preferred",
			wantMethod: "Bank Transfer",
			wantNotes:  "preferred",
		},
		{
			name:       "cash token removed case-insensitively",
			notes:      "CASH on arrival, leave cash box out",
			wantMethod: "Cash",
			wantNotes:  "on arrival, leave  box out",
		},
		{
			name:       "card",
			notes:      "pays by Card",
			wantMethod: "Card",
			wantNotes:  "pays by",
		},
		{
			name:       "no token passes through",
			notes:      "gate locked, ring first",
			wantMethod: "",
			wantNotes:  "gate locked, ring first",
		},
		{
			name:       "notes label stripped",
			notes:      "Notes: back gate",
			wantMethod: "",
			wantNotes:  "back gate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, ok := tr.Transform(map[string]string{"Name": "J", "Notes": tt.notes})
			require.True(t, ok)
			assert.Equal(t, tt.wantMethod, job.PaymentMethod)
			assert.Equal(t, tt.wantNotes, job.Notes)
		})
	}
}

func TestTransformDebtorKeepsPaymentMethod(t *testing.T) {
	tr := NewTransformer(nil)

	// A payment token in notes and a positive balance are independent facts:
	// how a past clean was paid vs. what is still owed.
	job, ok := tr.Transform(map[string]string{
		"Name":    "J",
		"Balance": "30",
		"Notes":   "usually Bank Transfer",
	})
	require.True(t, ok)
	assert.Equal(t, "debtor", job.Status)
	assert.Equal(t, "Bank Transfer", job.PaymentMethod)
}

func TestTransformServiceDefault(t *testing.T) {
	tr := NewTransformer(nil)

	job, ok := tr.Transform(map[string]string{"Name": "J"})
	require.True(t, ok)
	assert.Equal(t, "Window Cleaning", job.Services)

	job, ok = tr.Transform(map[string]string{"Name": "J", "Services": "Gutters"})
	require.True(t, ok)
	assert.Equal(t, "Gutters", job.Services)
}

func TestTransformFrequencyIsStrict(t *testing.T) {
	tr := NewTransformer(nil)

	// "Frequency of visits" only matches via substring, which the frequency
	// field deliberately skips.
	job, ok := tr.Transform(map[string]string{"Name": "J", "Frequency of visits": "4 Weeks"})
	require.True(t, ok)
	assert.Equal(t, "", job.Frequency)

	job, ok = tr.Transform(map[string]string{"Name": "J", "Freq": "4 Weeks"})
	require.True(t, ok)
	assert.Equal(t, "4 Weeks", job.Frequency)
}
