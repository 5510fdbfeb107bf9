package dates

import "fmt"

// StyleTag is the closed set of visual urgency levels the UI maps to.
type StyleTag string

const (
	StyleAdHoc    StyleTag = "ad-hoc"
	StyleInvalid  StyleTag = "invalid"
	StyleOverdue  StyleTag = "overdue"
	StyleDueToday StyleTag = "due-today"
	StyleUpcoming StyleTag = "upcoming"
)

// DueStatus is the human-facing urgency of a job's next due date.
type DueStatus struct {
	Label string
	Tag   StyleTag
}

// ClassifyOn derives the due status of a raw date string relative to the
// given canonical "today". It is total: empty input is an ad-hoc job and
// unparseable input reports Invalid Date rather than failing.
func ClassifyOn(raw, today string) DueStatus {
	if raw == "" {
		return DueStatus{Label: "Ad Hoc", Tag: StyleAdHoc}
	}

	due, ok := Normalize(raw)
	if !ok {
		return DueStatus{Label: "Invalid Date", Tag: StyleInvalid}
	}

	switch d := DaysBetween(due, today); {
	case d < 0:
		return DueStatus{Label: "Overdue", Tag: StyleOverdue}
	case d == 0:
		return DueStatus{Label: "Due Today", Tag: StyleDueToday}
	case d == 1:
		return DueStatus{Label: "Due Tomorrow", Tag: StyleUpcoming}
	default:
		return DueStatus{Label: fmt.Sprintf("In %d days", d), Tag: StyleUpcoming}
	}
}

// Classify is ClassifyOn against the real wall clock. Statuses change as the
// clock rolls over midnight, so callers must re-classify per render rather
// than caching the result.
func Classify(raw string) DueStatus {
	return ClassifyOn(raw, Today())
}
