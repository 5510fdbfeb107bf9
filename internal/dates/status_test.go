package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOn(t *testing.T) {
	const today = "2024-03-05"

	tests := []struct {
		name      string
		raw       string
		wantLabel string
		wantTag   StyleTag
	}{
		{name: "empty is ad hoc", raw: "", wantLabel: "Ad Hoc", wantTag: StyleAdHoc},
		{name: "garbage is invalid", raw: "whenever suits", wantLabel: "Invalid Date", wantTag: StyleInvalid},
		{name: "yesterday overdue", raw: "2024-03-04", wantLabel: "Overdue", wantTag: StyleOverdue},
		{name: "long overdue", raw: "2023-11-01", wantLabel: "Overdue", wantTag: StyleOverdue},
		{name: "today", raw: "2024-03-05", wantLabel: "Due Today", wantTag: StyleDueToday},
		{name: "today in uk form", raw: "05/03/2024", wantLabel: "Due Today", wantTag: StyleDueToday},
		{name: "tomorrow", raw: "2024-03-06", wantLabel: "Due Tomorrow", wantTag: StyleUpcoming},
		{name: "next week", raw: "2024-03-12", wantLabel: "In 7 days", wantTag: StyleUpcoming},
		{name: "datetime due today", raw: "2024-03-05T08:30:00", wantLabel: "Due Today", wantTag: StyleDueToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyOn(tt.raw, today)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantTag, got.Tag)
		})
	}
}

func TestClassifyUsesWallClock(t *testing.T) {
	today := Canonical(time.Now())
	got := Classify(today)
	assert.Equal(t, "Due Today", got.Label)
	assert.Equal(t, StyleDueToday, got.Tag)
}
