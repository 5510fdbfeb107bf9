// Package view filters and sorts the in-memory job collection for the three
// round views: all jobs, a single day, and free-text search. All date logic
// runs on canonical YYYY-MM-DD strings so ordering agrees with the due-status
// classifier on every runtime.
package view

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/entity"
)

// Select produces the job sequence for one view. A non-empty query always
// wins over the day filter. day == "" means the full book sorted by due date;
// otherwise day is a concrete date and today is the current canonical date,
// injected so the overdue carry-forward rule is testable.
func Select(jobs []*entity.Job, query, day, today string) []*entity.Job {
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		return search(jobs, q)
	}
	if day == "" {
		return SortByDue(jobs)
	}
	return singleDay(jobs, day, today)
}

// search matches the query against name, address and services,
// case-insensitively. Input order is preserved: the book is already globally
// sorted by due date when it is fetched.
func search(jobs []*entity.Job, q string) []*entity.Job {
	out := make([]*entity.Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Name), q) ||
			strings.Contains(strings.ToLower(j.Address), q) ||
			strings.Contains(strings.ToLower(j.Services), q) {
			out = append(out, j)
		}
	}
	return out
}

// SortByDue returns the jobs sorted ascending by normalized due date. Jobs
// whose date does not normalize sort after all dated jobs, keeping their
// original relative order. The input slice is not modified.
func SortByDue(jobs []*entity.Job) []*entity.Job {
	out := make([]*entity.Job, len(jobs))
	copy(out, jobs)
	sort.SliceStable(out, func(i, k int) bool {
		di, okI := dates.Normalize(out[i].NextDue)
		dk, okK := dates.Normalize(out[k].NextDue)
		if !okI {
			return false
		}
		if !okK {
			return true
		}
		return di < dk
	})
	return out
}

// singleDay keeps jobs due on the selected date. When the selected date is
// today, anything still overdue is carried forward into the day's list.
// Jobs without a normalizable date never appear in a day view.
func singleDay(jobs []*entity.Job, day, today string) []*entity.Job {
	selected, ok := dates.Normalize(day)
	if !ok {
		return []*entity.Job{}
	}
	isToday := selected == today

	out := make([]*entity.Job, 0, len(jobs))
	for _, j := range jobs {
		due, ok := dates.Normalize(j.NextDue)
		if !ok {
			continue
		}
		if isToday {
			if due <= selected {
				out = append(out, j)
			}
			continue
		}
		if due == selected {
			out = append(out, j)
		}
	}
	return out
}

// DebtorsLimit caps the debtors view, matching the round book's screen.
const DebtorsLimit = 30

// Debtors returns the jobs carrying a positive balance, largest debt first,
// capped at limit (DebtorsLimit when limit <= 0), together with the total
// owed as a two-decimal string. Balances are re-parsed defensively because
// the storage collaborator may hand numeric fields back as arbitrary text.
func Debtors(jobs []*entity.Job, limit int) ([]*entity.Job, string) {
	if limit <= 0 {
		limit = DebtorsLimit
	}

	type debtor struct {
		job     *entity.Job
		balance decimal.Decimal
	}
	owing := make([]debtor, 0, len(jobs))
	for _, j := range jobs {
		b := parseBalance(j.Balance)
		if b.IsPositive() {
			owing = append(owing, debtor{job: j, balance: b})
		}
	}

	sort.SliceStable(owing, func(i, k int) bool {
		return owing[i].balance.GreaterThan(owing[k].balance)
	})
	if len(owing) > limit {
		owing = owing[:limit]
	}

	total := decimal.Zero
	out := make([]*entity.Job, len(owing))
	for i, d := range owing {
		out[i] = d.job
		total = total.Add(d.balance)
	}
	return out, total.StringFixed(2)
}

var nonNumericRe = regexp.MustCompile(`[^0-9.]`)

// parseBalance clamps any balance text to a non-negative decimal.
func parseBalance(raw string) decimal.Decimal {
	cleaned := nonNumericRe.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
