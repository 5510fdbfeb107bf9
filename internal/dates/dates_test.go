package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "iso date", raw: "2024-03-05", want: "2024-03-05", wantOK: true},
		{name: "iso with slashes", raw: "2024/03/05", want: "2024-03-05", wantOK: true},
		{name: "iso datetime", raw: "2024-03-05T10:00:00", want: "2024-03-05", wantOK: true},
		{name: "iso datetime with space", raw: "2024-03-05 10:00", want: "2024-03-05", wantOK: true},
		{name: "uk slashes", raw: "05/03/2024", want: "2024-03-05", wantOK: true},
		{name: "uk dashes", raw: "05-03-2024", want: "2024-03-05", wantOK: true},
		{name: "surrounding whitespace", raw: "  2024-03-05  ", want: "2024-03-05", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "free text", raw: "not a date", wantOK: false},
		{name: "month name", raw: "5 March 2024", wantOK: false},
		{name: "unpadded day", raw: "5/3/2024", wantOK: false},
		{name: "partial", raw: "2024-03", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "same day", a: "2024-03-05", b: "2024-03-05", want: 0},
		{name: "next day", a: "2024-03-06", b: "2024-03-05", want: 1},
		{name: "previous day", a: "2024-03-04", b: "2024-03-05", want: -1},
		{name: "across month", a: "2024-04-01", b: "2024-03-01", want: 31},
		{name: "leap february", a: "2024-03-01", b: "2024-02-01", want: 29},
		{name: "across year", a: "2025-01-01", b: "2024-12-31", want: 1},
		// UK clocks go forward on 2024-03-31; the day must still count as one.
		{name: "dst spring forward", a: "2024-04-01", b: "2024-03-30", want: 2},
		{name: "invalid left", a: "garbage", b: "2024-03-05", want: 0},
		{name: "invalid right", a: "2024-03-05", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestDaysBetweenAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"2024-03-05", "2024-03-12"},
		{"2023-12-25", "2024-01-01"},
		{"2024-02-28", "2024-03-01"},
	}
	for _, p := range pairs {
		require.Equal(t, DaysBetween(p[0], p[1]), -DaysBetween(p[1], p[0]))
	}
}

func TestTodayMatchesLocalClock(t *testing.T) {
	now := time.Now()
	got := Today()
	require.Len(t, got, 10)
	assert.Equal(t, Canonical(now), got)
}
