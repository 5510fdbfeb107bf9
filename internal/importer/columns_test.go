package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExactMatch(t *testing.T) {
	r := NewColumnResolver()

	tests := []struct {
		name   string
		row    map[string]string
		field  Field
		strict bool
		want   string
	}{
		{
			name:  "exact header",
			row:   map[string]string{"Price": "£45.00"},
			field: FieldPrice,
			want:  "£45.00",
		},
		{
			name:  "exact match is case-insensitive",
			row:   map[string]string{"JOB PRICE": "£45.00"},
			field: FieldPrice,
			want:  "£45.00",
		},
		{
			name:  "alias priority order wins",
			row:   map[string]string{"Total": "99", "Price": "45"},
			field: FieldPrice,
			want:  "45",
		},
		{
			name:  "empty cell does not shadow lower-priority alias",
			row:   map[string]string{"Price": "", "Cost": "30"},
			field: FieldPrice,
			want:  "30",
		},
		{
			name:  "substring fallback header contains alias",
			row:   map[string]string{"Total Due": "45"},
			field: FieldPrice,
			want:  "45",
		},
		{
			name:  "substring fallback alias contains header",
			row:   map[string]string{"Freq": "4 Weeks"},
			field: FieldFrequency,
			want:  "4 Weeks",
		},
		{
			name:   "strict skips substring pass",
			row:    map[string]string{"Total Due": "45"},
			field:  FieldPrice,
			strict: true,
			want:   "",
		},
		{
			name:   "strict still allows exact",
			row:    map[string]string{"frequency": "4 Weeks"},
			field:  FieldFrequency,
			strict: true,
			want:   "4 Weeks",
		},
		{
			name:  "no match",
			row:   map[string]string{"Widgets": "3"},
			field: FieldPrice,
			want:  "",
		},
		{
			name:  "empty row",
			row:   map[string]string{},
			field: FieldPrice,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.row, tt.field, tt.strict))
		})
	}
}

func TestResolveDoesNotMutateRow(t *testing.T) {
	r := NewColumnResolver()
	row := map[string]string{"Name": "John", "Price": "45"}
	r.Resolve(row, FieldPrice, false)
	assert.Equal(t, map[string]string{"Name": "John", "Price": "45"}, row)
}

func TestResolveWithOverrides(t *testing.T) {
	r := NewColumnResolver().WithOverrides(map[Field][]string{
		FieldPrice: {"Quoted"},
	})

	row := map[string]string{"Quoted": "60", "Price": "45"}
	assert.Equal(t, "60", r.Resolve(row, FieldPrice, false), "override outranks built-in alias")

	// Untouched fields keep the default table.
	assert.Equal(t, "John", r.Resolve(map[string]string{"Customer": "John"}, FieldName, false))
}
