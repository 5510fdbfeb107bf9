package server

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/common"
	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/importer"
	"github.com/lewisallan/titan-jobs/internal/repository"
	"github.com/lewisallan/titan-jobs/internal/utils"
)

type ImportServer struct {
	jobspb.UnimplementedImportServiceServer
	svc       *importer.Service
	batchRepo repository.ImportBatchRepository
	logger    *slog.Logger
}

func NewImportServer(svc *importer.Service, batchRepo repository.ImportBatchRepository, logger *slog.Logger) *ImportServer {
	return &ImportServer{
		svc:       svc,
		batchRepo: batchRepo,
		logger:    logger,
	}
}

// resolveFormat picks the row reader from an explicit format or, failing
// that, the source filename extension.
func resolveFormat(format, sourceName string) (importer.Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return importer.FormatCSV, nil
	case "xlsx":
		return importer.FormatXLSX, nil
	case "":
	default:
		return "", common.InvalidArgumentErrorf("format must be csv or xlsx, got %q", format)
	}
	switch strings.ToLower(filepath.Ext(sourceName)) {
	case ".xlsx":
		return importer.FormatXLSX, nil
	default:
		return importer.FormatCSV, nil
	}
}

func (s *ImportServer) ImportJobs(ctx context.Context, req *jobspb.ImportJobsRequest) (*jobspb.ImportJobsResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	format, err := resolveFormat(req.GetFormat(), req.GetSourceName())
	if err != nil {
		return nil, err
	}
	source := strings.TrimSpace(req.GetSourceName())
	if source == "" {
		source = "upload"
	}

	s.logger.Info("import jobs requested", "source", source, "format", format, "bytes", len(req.GetContent()))
	result, err := s.svc.ImportJobs(ctx, source, bytes.NewReader(req.GetContent()), format)
	if err != nil {
		if result == nil {
			return nil, common.InvalidArgumentErrorf("read source: %v", err)
		}
		// Chunks persisted before the failure stay persisted; report what
		// landed along with the error.
		return nil, status.Errorf(codes.Internal, "import failed after persisting %d rows: %v", result.Persisted, err)
	}

	return &jobspb.ImportJobsResponse{
		RowsScanned:   int32(result.Scanned),
		RowsRejected:  int32(result.Rejected),
		RowsPersisted: int32(result.Persisted),
		Columns:       result.Columns,
	}, nil
}

func (s *ImportServer) PreviewImport(ctx context.Context, req *jobspb.PreviewImportRequest) (*jobspb.PreviewImportResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	format, err := resolveFormat(req.GetFormat(), req.GetSourceName())
	if err != nil {
		return nil, err
	}

	p, err := s.svc.PreviewSource(bytes.NewReader(req.GetContent()), format)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("read source: %v", err)
	}

	today := dates.Today()
	sample := make([]*jobspb.Job, 0, len(p.Sample))
	for _, j := range p.Sample {
		sample = append(sample, utils.ToPBJob(j, today))
	}
	return &jobspb.PreviewImportResponse{
		RowsScanned:  int32(p.Scanned),
		RowsRejected: int32(p.Rejected),
		Columns:      p.Columns,
		Sample:       sample,
	}, nil
}

func (s *ImportServer) ImportCustomers(ctx context.Context, req *jobspb.ImportCustomersRequest) (*jobspb.ImportCustomersResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	format, err := resolveFormat(req.GetFormat(), req.GetSourceName())
	if err != nil {
		return nil, err
	}
	source := strings.TrimSpace(req.GetSourceName())
	if source == "" {
		source = "upload"
	}

	result, err := s.svc.ImportCustomers(ctx, source, bytes.NewReader(req.GetContent()), format)
	if err != nil {
		if result == nil {
			return nil, common.InvalidArgumentErrorf("read source: %v", err)
		}
		return nil, status.Errorf(codes.Internal, "import failed after persisting %d rows: %v", result.Persisted, err)
	}

	return &jobspb.ImportCustomersResponse{
		RowsScanned:   int32(result.Scanned),
		RowsRejected:  int32(result.Rejected),
		RowsPersisted: int32(result.Persisted),
	}, nil
}

func (s *ImportServer) ListImportBatches(ctx context.Context, req *jobspb.ListImportBatchesRequest) (*jobspb.ListImportBatchesResponse, error) {
	batches, err := s.batchRepo.List(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list import batches", "error", err)
		return nil, status.Errorf(codes.Internal, "list import batches: %v", err)
	}
	out := make([]*jobspb.ImportBatch, 0, len(batches))
	for _, b := range batches {
		out = append(out, utils.ToPBImportBatch(b))
	}
	return &jobspb.ListImportBatchesResponse{Batches: out}, nil
}
