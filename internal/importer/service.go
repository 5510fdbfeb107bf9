package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lewisallan/titan-jobs/internal/entity"
)

// DefaultChunkSize bounds how many records are persisted per storage call, so
// one failing chunk cannot corrupt chunks already written.
const DefaultChunkSize = 50

// Format selects the row reader for an import source.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// JobStore is the slice of the job repository the importer needs.
type JobStore interface {
	CreateBatch(ctx context.Context, jobs []*entity.Job) (int, error)
}

// CustomerStore is the slice of the customer repository the importer needs.
type CustomerStore interface {
	CreateBatch(ctx context.Context, customers []*entity.Customer) (int, error)
}

// BatchLog records import runs for the audit trail.
type BatchLog interface {
	Start(ctx context.Context, sourceName string) (*entity.ImportBatch, error)
	Finish(ctx context.Context, batch *entity.ImportBatch, errMsg string) error
}

// Service handles bulk import business logic.
type Service struct {
	transformer *Transformer
	jobs        JobStore
	customers   CustomerStore
	batches     BatchLog
	chunkSize   int
	logger      *slog.Logger
}

// NewService creates a new import service. A nil transformer gets the default
// alias table; a chunkSize <= 0 falls back to DefaultChunkSize.
func NewService(tr *Transformer, jobs JobStore, customers CustomerStore, batches BatchLog, chunkSize int, logger *slog.Logger) *Service {
	if tr == nil {
		tr = NewTransformer(nil)
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		transformer: tr,
		jobs:        jobs,
		customers:   customers,
		batches:     batches,
		chunkSize:   chunkSize,
		logger:      logger,
	}
}

// Result reports an import outcome. When Err is non-nil the counts still
// describe what was persisted before the failing chunk: earlier chunks stay
// persisted and are never rolled back.
type Result struct {
	Scanned   int
	Rejected  int
	Persisted int
	Columns   []string
}

// Preview describes an import source without persisting anything. Sample
// holds the transformed form of the first few accepted rows.
type Preview struct {
	Scanned    int
	Rejected   int
	Columns    []string
	SampleRows []map[string]string
	Sample     []*entity.Job
}

// readRows dispatches on the declared source format.
func readRows(r io.Reader, format Format) ([]map[string]string, []string, error) {
	switch format {
	case FormatXLSX:
		return ReadXLSX(r)
	case FormatCSV, "":
		return ReadCSV(r)
	default:
		return nil, nil, fmt.Errorf("unsupported import format %q", format)
	}
}

// PreviewSource returns the column names and up to three sample rows so the
// operator can sanity-check a spreadsheet before committing to an import.
func (s *Service) PreviewSource(r io.Reader, format Format) (*Preview, error) {
	rows, headers, err := readRows(r, format)
	if err != nil {
		return nil, err
	}
	p := &Preview{Scanned: len(rows), Columns: headers}
	for _, row := range rows {
		job, ok := s.transformer.Transform(row)
		if !ok {
			p.Rejected++
			continue
		}
		if len(p.Sample) < 3 {
			p.SampleRows = append(p.SampleRows, row)
			p.Sample = append(p.Sample, job)
		}
	}
	return p, nil
}

// ImportJobs transforms every row of the source and persists the accepted
// records in bounded sequential chunks. Rejected rows are counted, not
// reported individually. A storage failure mid-run returns the partial result
// alongside the error.
func (s *Service) ImportJobs(ctx context.Context, sourceName string, r io.Reader, format Format) (*Result, error) {
	rows, headers, err := readRows(r, format)
	if err != nil {
		return nil, err
	}

	result := &Result{Scanned: len(rows), Columns: headers}
	accepted := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		job, ok := s.transformer.Transform(row)
		if !ok {
			result.Rejected++
			continue
		}
		accepted = append(accepted, job)
	}

	s.logger.Info("starting job import",
		"source", sourceName, "scanned", result.Scanned, "rejected", result.Rejected)

	batch, err := s.batches.Start(ctx, sourceName)
	if err != nil {
		return result, fmt.Errorf("start import batch: %w", err)
	}

	importErr := s.persistJobs(ctx, accepted, result)

	batch.RowsScanned = result.Scanned
	batch.RowsRejected = result.Rejected
	batch.RowsPersisted = result.Persisted
	errMsg := ""
	if importErr != nil {
		errMsg = importErr.Error()
	}
	if err := s.batches.Finish(ctx, batch, errMsg); err != nil {
		s.logger.Error("failed to finalize import batch", "batch_id", batch.ID, "error", err)
	}

	if importErr != nil {
		s.logger.Error("job import failed mid-batch",
			"source", sourceName, "persisted", result.Persisted, "error", importErr)
		return result, importErr
	}

	s.logger.Info("job import completed",
		"source", sourceName, "persisted", result.Persisted, "rejected", result.Rejected)
	return result, nil
}

func (s *Service) persistJobs(ctx context.Context, jobs []*entity.Job, result *Result) error {
	for i := 0; i < len(jobs); i += s.chunkSize {
		end := i + s.chunkSize
		if end > len(jobs) {
			end = len(jobs)
		}
		n, err := s.jobs.CreateBatch(ctx, jobs[i:end])
		result.Persisted += n
		if err != nil {
			return fmt.Errorf("persist chunk starting at row %d: %w", i, err)
		}
	}
	return nil
}

// ImportCustomers persists address-book rows. Unlike the job importer, the
// customer sheet is produced by our own export and is matched on its literal
// headers (Name/Reference/Address/Phone); rows without a name are skipped.
func (s *Service) ImportCustomers(ctx context.Context, sourceName string, r io.Reader, format Format) (*Result, error) {
	rows, headers, err := readRows(r, format)
	if err != nil {
		return nil, err
	}

	result := &Result{Scanned: len(rows), Columns: headers}
	accepted := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row["Name"])
		if name == "" {
			result.Rejected++
			continue
		}
		accepted = append(accepted, &entity.Customer{
			Reference: strings.TrimSpace(row["Reference"]),
			Name:      name,
			Address:   strings.TrimSpace(row["Address"]),
			Phone:     strings.TrimSpace(row["Phone"]),
		})
	}

	s.logger.Info("starting customer import",
		"source", sourceName, "scanned", result.Scanned, "rejected", result.Rejected)

	for i := 0; i < len(accepted); i += s.chunkSize {
		end := i + s.chunkSize
		if end > len(accepted) {
			end = len(accepted)
		}
		n, err := s.customers.CreateBatch(ctx, accepted[i:end])
		result.Persisted += n
		if err != nil {
			s.logger.Error("customer import failed mid-batch",
				"source", sourceName, "persisted", result.Persisted, "error", err)
			return result, fmt.Errorf("persist chunk starting at row %d: %w", i, err)
		}
	}

	s.logger.Info("customer import completed", "source", sourceName, "persisted", result.Persisted)
	return result, nil
}
