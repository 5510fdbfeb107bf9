package utils

import (
	"time"

	"github.com/lewisallan/titan-jobs/gen/ent"
	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToJob(e *ent.Job) *entity.Job {
	return &entity.Job{
		ID:            e.ID,
		Name:          e.Name,
		Address:       e.Address,
		Phone:         e.Phone,
		Services:      e.Services,
		Price:         e.Price,
		Balance:       e.Balance,
		NextDue:       e.NextDue,
		Frequency:     e.Frequency,
		PaymentMethod: e.PaymentMethod,
		Notes:         e.Notes,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:        e.ID,
		Reference: e.Reference,
		Name:      e.Name,
		Address:   e.Address,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToImportBatch(e *ent.ImportBatch) *entity.ImportBatch {
	return &entity.ImportBatch{
		ID:            e.ID,
		SourceName:    e.SourceName,
		RowsScanned:   e.RowsScanned,
		RowsRejected:  e.RowsRejected,
		RowsPersisted: e.RowsPersisted,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		ErrorMessage:  e.ErrorMessage,
	}
}

// ToPBJob converts a job for the wire, classifying its due status against
// the given canonical "today" so labels are fresh on every response.
func ToPBJob(j *entity.Job, today string) *jobspb.Job {
	due := dates.ClassifyOn(j.NextDue, today)
	return &jobspb.Job{
		Id:            j.ID.String(),
		Name:          j.Name,
		Address:       j.Address,
		Phone:         j.Phone,
		Services:      j.Services,
		Price:         j.Price,
		Balance:       j.Balance,
		NextDue:       j.NextDue,
		Frequency:     j.Frequency,
		PaymentMethod: j.PaymentMethod,
		Notes:         j.Notes,
		Status:        j.Status,
		DueLabel:      due.Label,
		DueStyle:      string(due.Tag),
		CreatedAt:     j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCustomer(c *entity.Customer) *jobspb.Customer {
	return &jobspb.Customer{
		Id:        c.ID.String(),
		Reference: c.Reference,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBImportBatch(b *entity.ImportBatch) *jobspb.ImportBatch {
	out := &jobspb.ImportBatch{
		Id:            b.ID.String(),
		SourceName:    b.SourceName,
		RowsScanned:   int32(b.RowsScanned),
		RowsRejected:  int32(b.RowsRejected),
		RowsPersisted: int32(b.RowsPersisted),
		StartedAt:     b.StartedAt.UTC().Format(time.RFC3339),
		ErrorMessage:  strOrEmpty(b.ErrorMessage),
	}
	if b.FinishedAt != nil {
		out.FinishedAt = b.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}
