package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lewisallan/titan-jobs/constants"
	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/repository"
	"github.com/lewisallan/titan-jobs/internal/view"
)

// Service is a tiny façade over the job repository that produces XLSX bytes for exports.
type Service struct {
	jobsRepo repository.JobRepository
	logger   *slog.Logger
}

func NewService(jobsRepo repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) of jobs, ordered by
// due date. If status is non-empty only jobs with that status are included.
func (s *Service) ExportJobsXLSX(ctx context.Context, status string) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobsRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	jobs = view.SortByDue(jobs)

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	today := dates.Today()

	headers := []string{
		"Name",
		"Address",
		"Phone",
		"Services",
		"Job Type",
		"Price",
		"Balance",
		"Next Due",
		"Due Status",
		"Frequency",
		"Payment Method",
		"Status",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		nextDue := j.NextDue
		if canonical, ok := dates.Normalize(j.NextDue); ok {
			nextDue = canonical
		}
		due := dates.ClassifyOn(j.NextDue, today)
		jobType, _ := constants.CanonicalizeJobType(j.Services)

		write(1, j.Name)
		write(2, j.Address)
		write(3, j.Phone)
		write(4, j.Services)
		write(5, string(jobType))
		write(6, j.Price)
		write(7, j.Balance)
		write(8, nextDue)
		write(9, due.Label)
		write(10, j.Frequency)
		write(11, j.PaymentMethod)
		write(12, j.Status)
		write(13, truncate(j.Notes, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 36) // address
	_ = f.SetColWidth(sheet, "C", "C", 16) // phone
	_ = f.SetColWidth(sheet, "D", "E", 24) // services and type
	_ = f.SetColWidth(sheet, "F", "G", 10) // amounts
	_ = f.SetColWidth(sheet, "H", "I", 14) // due date and status
	_ = f.SetColWidth(sheet, "J", "L", 14) // frequency, payment, status
	_ = f.SetColWidth(sheet, "M", "M", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
