package constants

import "strings"

// PaymentMethods holds the closed payment-method set in detection priority
// order. "Bank Transfer" must be scanned first so a note containing it is not
// claimed by a shorter token.
var PaymentMethods = []string{"Bank Transfer", "Cash", "Card"}

// PaymentMethodPaid marks a debt that has since been settled; it is written by
// the mark-paid action and is never detected from notes.
const PaymentMethodPaid = "Paid"

// CanonicalPaymentMethod maps s onto the closed payment-method set,
// ignoring case and surrounding whitespace. ok is false for anything
// outside the set, including "Paid".
func CanonicalPaymentMethod(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, m := range PaymentMethods {
		if strings.EqualFold(s, m) {
			return m, true
		}
	}
	return "", false
}
