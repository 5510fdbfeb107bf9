package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/lewisallan/titan-jobs/gen/ent"
	"github.com/lewisallan/titan-jobs/gen/ent/importbatch"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/utils"
)

// ImportBatchRepository records import runs; implements importer.BatchLog.
type ImportBatchRepository interface {
	Start(ctx context.Context, sourceName string) (*entity.ImportBatch, error)
	Finish(ctx context.Context, batch *entity.ImportBatch, errMsg string) error
	List(ctx context.Context, limit int) ([]*entity.ImportBatch, error)
}

type importBatchRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImportBatchRepository(client *ent.Client, logger *slog.Logger) ImportBatchRepository {
	return &importBatchRepository{
		client: client,
		logger: logger,
	}
}

func (r *importBatchRepository) Start(ctx context.Context, sourceName string) (*entity.ImportBatch, error) {
	row, err := r.client.ImportBatch.Create().
		SetSourceName(sourceName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record import batch", "source", sourceName, "error", err)
		return nil, err
	}
	r.logger.Info("import batch started", "batch_id", row.ID, "source", sourceName)
	return utils.ToImportBatch(row), nil
}

func (r *importBatchRepository) Finish(ctx context.Context, batch *entity.ImportBatch, errMsg string) error {
	u := r.client.ImportBatch.UpdateOneID(batch.ID).
		SetRowsScanned(batch.RowsScanned).
		SetRowsRejected(batch.RowsRejected).
		SetRowsPersisted(batch.RowsPersisted).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		u = u.SetErrorMessage(errMsg)
	}
	if _, err := u.Save(ctx); err != nil {
		r.logger.Error("failed to finalize import batch", "batch_id", batch.ID, "error", err)
		return err
	}
	if errMsg != "" {
		r.logger.Warn("import batch finished with error", "batch_id", batch.ID, "error", errMsg)
	} else {
		r.logger.Info("import batch finished", "batch_id", batch.ID, "persisted", batch.RowsPersisted)
	}
	return nil
}

// List returns the most recent import runs, newest first.
func (r *importBatchRepository) List(ctx context.Context, limit int) ([]*entity.ImportBatch, error) {
	q := r.client.ImportBatch.Query().Order(ent.Desc(importbatch.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list import batches", "error", err)
		return nil, err
	}
	result := make([]*entity.ImportBatch, len(rows))
	for i, row := range rows {
		result[i] = utils.ToImportBatch(row)
	}
	return result, nil
}
