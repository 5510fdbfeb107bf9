// Package dates implements the canonical date handling for the job book.
//
// All comparison and storage of dates uses the zero-padded YYYY-MM-DD string
// form. Dates are deliberately never round-tripped through a locale-aware
// parser: dash-separated input is parsed inconsistently across runtimes
// (Safari rejects it outright in the original client), so the canonical form
// is built by regex capture and compared lexicographically instead.
package dates

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// YYYY-MM-DD or YYYY/MM/DD, with or without a trailing time component.
	isoRe = regexp.MustCompile(`^(\d{4})[-/](\d{2})[-/](\d{2})`)
	// DD-MM-YYYY or DD/MM/YYYY (UK order).
	ukRe = regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{4})`)
)

// Normalize converts a heterogeneous date representation into canonical
// YYYY-MM-DD form. ok is false when the input is empty or in any form the
// importer does not recognize; callers must treat that as "no date", never as
// an error.
func Normalize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3], true
	}

	if m := ukRe.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1], true
	}

	return "", false
}

// Today returns the local wall-clock date in canonical form. No timezone
// conversion: the round is planned against the operator's own clock.
func Today() string {
	return Canonical(time.Now())
}

// Canonical formats t's local date component as YYYY-MM-DD.
func Canonical(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// DaysBetween returns the whole-day difference a - b for two canonical date
// strings: positive when a is after b, negative when before, 0 on the same
// day or when either input fails to parse. Midnights are reconstructed in
// local time and the millisecond delta rounded, which absorbs the one-hour
// DST shift without producing fractional days.
func DaysBetween(a, b string) int {
	ta, okA := midnight(a)
	tb, okB := midnight(b)
	if !okA || !okB {
		return 0
	}
	delta := float64(ta.Sub(tb).Milliseconds())
	return int(math.Round(delta / float64(24*time.Hour/time.Millisecond)))
}

// midnight rebuilds a local-midnight instant from a canonical date string by
// component extraction, bypassing the string parser entirely.
func midnight(s string) (time.Time, bool) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}
