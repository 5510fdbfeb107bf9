package importer

import (
	"sort"
	"strings"
)

// Field identifies a canonical semantic field a spreadsheet column can map to.
type Field string

const (
	FieldName      Field = "name"
	FieldAddress   Field = "address"
	FieldPhone     Field = "phone"
	FieldServices  Field = "services"
	FieldPrice     Field = "price"
	FieldNextDue   Field = "nextDue"
	FieldFrequency Field = "frequency"
	FieldNotes     Field = "notes"
	FieldBalance   Field = "balance"
)

// defaultAliases maps each semantic field to its known column headers in
// priority order. These came out of real customer spreadsheets; order matters
// because the first alias with a non-empty cell wins.
var defaultAliases = map[Field][]string{
	FieldName:      {"Name", "Customer Name", "Customer", "Client", "Client Name", "Full Name", "ContactName"},
	FieldAddress:   {"Job Address", "Address", "Street Address", "Location", "Site Address", "Property Address", "Street", "AddressLine1"},
	FieldPhone:     {"Phone", "Phone Number", "Telephone", "Mobile", "Cell", "Contact Number", "Tel"},
	FieldServices:  {"Services", "Service", "Work Carried Out", "Work", "Job Type", "Description", "Type"},
	FieldPrice:     {"Price", "Cost", "Amount", "Fee", "Charge", "Rate", "Job Price", "Total"},
	FieldNextDue:   {"Next Due", "NextDue", "Due Date", "Due", "Next Service", "When work is due", "Schedule Date", "Scheduled"},
	FieldFrequency: {"Frequency", "Freq", "Job Frequency", "Interval"},
	FieldNotes:     {"Notes", "Comments", "Remarks", "Description", "Info", "Details"},
	FieldBalance:   {"Balance", "Outstanding", "Owed", "Debt"},
}

// ColumnResolver maps arbitrarily-labeled row keys onto the canonical field
// set using a priority-ordered alias table.
type ColumnResolver struct {
	aliases map[Field][]string
}

// NewColumnResolver returns a resolver over the built-in alias table.
func NewColumnResolver() *ColumnResolver {
	return &ColumnResolver{aliases: defaultAliases}
}

// Resolve returns the cell value for the given semantic field, or "" when no
// column matches. Pass 1 is a case-insensitive exact header match in alias
// priority order. Pass 2, skipped when strict is set, falls back to a
// substring match in either direction. Only non-empty cells count as a match,
// so a present-but-blank column does not shadow a lower-priority one. The row
// is never mutated.
func (r *ColumnResolver) Resolve(row map[string]string, field Field, strict bool) string {
	names := r.aliases[field]

	// Map iteration order is randomized; scan headers in sorted order so ties
	// between two matching columns resolve the same way on every run.
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range names {
		for _, key := range keys {
			if strings.EqualFold(key, alias) && row[key] != "" {
				return row[key]
			}
		}
	}

	if strict {
		return ""
	}

	for _, alias := range names {
		la := strings.ToLower(alias)
		for _, key := range keys {
			lk := strings.ToLower(key)
			if (strings.Contains(lk, la) || strings.Contains(la, lk)) && row[key] != "" {
				return row[key]
			}
		}
	}

	return ""
}
