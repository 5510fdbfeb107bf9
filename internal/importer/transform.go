package importer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lewisallan/titan-jobs/constants"
	"github.com/lewisallan/titan-jobs/internal/entity"
)

var (
	nameLabelRe  = regexp.MustCompile(`(?i)^\s*name:\s*`)
	priceLabelRe = regexp.MustCompile(`(?i)^\s*price:\s*`)
	notesLabelRe = regexp.MustCompile(`(?i)^\s*notes:\s*`)
	// Keeps digits and dots only. The UTF-8 pound sign arrives mangled as
	// "Â£" in spreadsheets exported with the wrong encoding; stripping
	// everything non-numeric covers both the clean and the mangled form.
	nonNumericRe = regexp.MustCompile(`[^0-9.]`)
)

// Transformer turns resolved spreadsheet rows into canonical Job records.
type Transformer struct {
	resolver *ColumnResolver
}

func NewTransformer(resolver *ColumnResolver) *Transformer {
	if resolver == nil {
		resolver = NewColumnResolver()
	}
	return &Transformer{resolver: resolver}
}

// Transform produces a canonical Job from one raw row, or ok=false when the
// row is a blank or header artifact that must not become a phantom job. It is
// total: malformed field values degrade to their documented defaults, never
// to an error.
func (t *Transformer) Transform(row map[string]string) (*entity.Job, bool) {
	rawName := strings.TrimSpace(t.resolver.Resolve(row, FieldName, false))
	address := strings.TrimSpace(t.resolver.Resolve(row, FieldAddress, false))

	// A row qualifies only with a real name or an address.
	if (rawName == "" || rawName == "Unknown") && address == "" {
		return nil, false
	}

	name := strings.TrimSpace(nameLabelRe.ReplaceAllString(rawName, ""))
	if name == "" {
		name = strings.TrimSpace(strings.SplitN(address, ",", 2)[0])
	}
	if name == "" {
		name = "Unknown"
	}

	balance := parseMoney(t.resolver.Resolve(row, FieldBalance, false))
	price := parseMoney(priceLabelRe.ReplaceAllString(t.resolver.Resolve(row, FieldPrice, false), ""))

	notes := strings.TrimSpace(notesLabelRe.ReplaceAllString(t.resolver.Resolve(row, FieldNotes, false), ""))
	paymentMethod, notes := extractPaymentMethod(notes)

	services := t.resolver.Resolve(row, FieldServices, false)
	if services == "" {
		services = constants.DefaultService
	}

	status := constants.JobStatusPending
	if balance.IsPositive() {
		status = constants.JobStatusDebtor
	}

	return &entity.Job{
		Name:          name,
		Address:       address,
		Phone:         t.resolver.Resolve(row, FieldPhone, false),
		Services:      services,
		Price:         price.StringFixed(2),
		Balance:       balance.StringFixed(2),
		NextDue:       t.resolver.Resolve(row, FieldNextDue, false),
		Frequency:     t.resolver.Resolve(row, FieldFrequency, true),
		PaymentMethod: paymentMethod,
		Notes:         notes,
		Status:        string(status),
	}, true
}

// parseMoney strips currency artifacts from a cell and parses the remainder
// as a decimal. Missing or malformed input clamps to zero; the result is
// always non-negative.
func parseMoney(raw string) decimal.Decimal {
	cleaned := nonNumericRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if cleaned == "" || cleaned == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// extractPaymentMethod scans notes for an embedded payment-method token in
// priority order ("Bank Transfer" before "Cash" before "Card") and removes
// every occurrence of the matched token from the text.
func extractPaymentMethod(notes string) (string, string) {
	lower := strings.ToLower(notes)
	for _, method := range constants.PaymentMethods {
		if !strings.Contains(lower, strings.ToLower(method)) {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(method))
		return method, strings.TrimSpace(re.ReplaceAllString(notes, ""))
	}
	return "", notes
}
