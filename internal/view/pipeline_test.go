package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewisallan/titan-jobs/internal/entity"
)

const today = "2024-03-05"

func job(name, nextDue string) *entity.Job {
	return &entity.Job{Name: name, NextDue: nextDue, Price: "45.00", Balance: "0.00"}
}

func names(jobs []*entity.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Name
	}
	return out
}

func TestSelectAllSortsByDueDate(t *testing.T) {
	jobs := []*entity.Job{
		job("late", "2024-03-10"),
		job("undated-a", "whenever"),
		job("early", "2024-03-01"),
		job("undated-b", ""),
		job("uk-form", "04/03/2024"),
	}

	got := Select(jobs, "", "", today)
	assert.Equal(t, []string{"early", "uk-form", "late", "undated-a", "undated-b"}, names(got),
		"dated ascending, undated last in original relative order")

	// Idempotent: re-running on the result keeps the order stable.
	again := Select(got, "", "", today)
	assert.Equal(t, names(got), names(again))

	// Input order untouched.
	assert.Equal(t, "late", jobs[0].Name)
}

func TestSelectSingleDayToday(t *testing.T) {
	jobs := []*entity.Job{
		job("yesterday", "2024-03-04"),
		job("today", "2024-03-05"),
		job("tomorrow", "2024-03-06"),
		job("undated", ""),
		job("garbage", "no idea"),
	}

	got := Select(jobs, "", today, today)
	assert.Equal(t, []string{"yesterday", "today"}, names(got),
		"today's view carries overdue work forward and drops undated jobs")
}

func TestSelectSingleDayOther(t *testing.T) {
	jobs := []*entity.Job{
		job("yesterday", "2024-03-04"),
		job("target", "2024-03-06"),
		job("target-uk", "06/03/2024"),
		job("later", "2024-03-07"),
	}

	got := Select(jobs, "", "2024-03-06", today)
	assert.Equal(t, []string{"target", "target-uk"}, names(got),
		"a non-today date matches exactly, no carry-forward")
}

func TestSelectSearchOverridesDayMode(t *testing.T) {
	jobs := []*entity.Job{
		{Name: "John Smith", Address: "1 Rd", Services: "Windows", NextDue: "2024-03-20"},
		{Name: "Jane Doe", Address: "Smithfield Lane", Services: "Gutters", NextDue: ""},
		{Name: "Bob Hope", Address: "2 Ave", Services: "Windows", NextDue: "2024-03-05"},
	}

	got := Select(jobs, "smith", today, today)
	assert.Equal(t, []string{"John Smith", "Jane Doe"}, names(got),
		"search matches name or address case-insensitively and ignores the date filter")

	got = Select(jobs, "gutters", "", today)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Name, "services field is searched too")
}

func TestSelectSearchKeepsInputOrder(t *testing.T) {
	jobs := []*entity.Job{
		job("b windows", "2024-03-09"),
		job("a windows", "2024-03-01"),
	}
	got := Select(jobs, "windows", "", today)
	assert.Equal(t, []string{"b windows", "a windows"}, names(got))
}

func TestSelectInvalidDayIsEmpty(t *testing.T) {
	jobs := []*entity.Job{job("a", "2024-03-05")}
	got := Select(jobs, "", "not-a-date", today)
	assert.Empty(t, got)
}

func TestDebtors(t *testing.T) {
	jobs := []*entity.Job{
		{Name: "small", Balance: "10.00"},
		{Name: "paid", Balance: "0.00"},
		{Name: "big", Balance: "£90"},
		{Name: "text", Balance: "n/a"},
		{Name: "mid", Balance: "45.50"},
	}

	got, total := Debtors(jobs, 0)
	assert.Equal(t, []string{"big", "mid", "small"}, names(got))
	assert.Equal(t, "145.50", total)
}

func TestDebtorsLimit(t *testing.T) {
	jobs := []*entity.Job{
		{Name: "a", Balance: "30.00"},
		{Name: "b", Balance: "20.00"},
		{Name: "c", Balance: "10.00"},
	}

	got, total := Debtors(jobs, 2)
	assert.Equal(t, []string{"a", "b"}, names(got))
	assert.Equal(t, "50.00", total, "total covers the capped list only")
}
