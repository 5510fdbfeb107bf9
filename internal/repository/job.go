package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lewisallan/titan-jobs/gen/ent"
	"github.com/lewisallan/titan-jobs/gen/ent/job"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/utils"
)

// JobUpdate is a partial-field patch; nil fields are left untouched.
type JobUpdate struct {
	Name          *string
	Address       *string
	Phone         *string
	Services      *string
	Price         *string
	Balance       *string
	NextDue       *string
	Frequency     *string
	PaymentMethod *string
	Notes         *string
	Status        *string
}

type JobRepository interface {
	List(ctx context.Context, status string) ([]*entity.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Create(ctx context.Context, j *entity.Job) (*entity.Job, error)
	CreateBatch(ctx context.Context, jobs []*entity.Job) (int, error)
	Update(ctx context.Context, id uuid.UUID, patch JobUpdate) (*entity.Job, error)
	DeleteAll(ctx context.Context) (int, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

// List returns jobs in storage order, optionally filtered by status. Sorting
// by due date happens in the view pipeline on canonical strings, never in
// SQL, so the ordering matches the classifier everywhere.
func (r *jobRepository) List(ctx context.Context, status string) ([]*entity.Job, error) {
	q := r.client.Job.Query()
	if status != "" {
		q = q.Where(job.Status(status))
	}
	rows, err := q.Order(job.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "status", status, "error", err)
		return nil, err
	}

	result := make([]*entity.Job, len(rows))
	for i, row := range rows {
		result[i] = utils.ToJob(row)
	}
	return result, nil
}

func (r *jobRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.client.Job.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get job", "job_id", id, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepository) Create(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	row, err := r.create(j).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "name", j.Name, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

// CreateBatch persists one bounded chunk in a single insert. Returns how
// many rows were written; on error the whole chunk is rolled back so the
// importer's partial-success accounting stays exact.
func (r *jobRepository) CreateBatch(ctx context.Context, jobs []*entity.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}
	builders := make([]*ent.JobCreate, len(jobs))
	for i, j := range jobs {
		builders[i] = r.create(j)
	}
	rows, err := r.client.Job.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job batch", "size", len(jobs), "error", err)
		return 0, err
	}
	return len(rows), nil
}

func (r *jobRepository) create(j *entity.Job) *ent.JobCreate {
	builder := r.client.Job.Create().
		SetName(j.Name).
		SetAddress(j.Address).
		SetPhone(j.Phone).
		SetServices(j.Services).
		SetNextDue(j.NextDue).
		SetFrequency(j.Frequency).
		SetPaymentMethod(j.PaymentMethod).
		SetNotes(j.Notes)
	if j.Price != "" {
		builder = builder.SetPrice(j.Price)
	}
	if j.Balance != "" {
		builder = builder.SetBalance(j.Balance)
	}
	if j.Status != "" {
		builder = builder.SetStatus(j.Status)
	}
	return builder
}

func (r *jobRepository) Update(ctx context.Context, id uuid.UUID, patch JobUpdate) (*entity.Job, error) {
	u := r.client.Job.UpdateOneID(id)
	if patch.Name != nil {
		u = u.SetName(*patch.Name)
	}
	if patch.Address != nil {
		u = u.SetAddress(*patch.Address)
	}
	if patch.Phone != nil {
		u = u.SetPhone(*patch.Phone)
	}
	if patch.Services != nil {
		u = u.SetServices(*patch.Services)
	}
	if patch.Price != nil {
		u = u.SetPrice(*patch.Price)
	}
	if patch.Balance != nil {
		u = u.SetBalance(*patch.Balance)
	}
	if patch.NextDue != nil {
		u = u.SetNextDue(*patch.NextDue)
	}
	if patch.Frequency != nil {
		u = u.SetFrequency(*patch.Frequency)
	}
	if patch.PaymentMethod != nil {
		u = u.SetPaymentMethod(*patch.PaymentMethod)
	}
	if patch.Notes != nil {
		u = u.SetNotes(*patch.Notes)
	}
	if patch.Status != nil {
		u = u.SetStatus(*patch.Status)
	}

	row, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update job", "job_id", id, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

// DeleteAll wipes the job book. Bulk administrative action; there is no
// per-job delete in the product.
func (r *jobRepository) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.Job.Delete().Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear jobs", "error", err)
		return 0, err
	}
	r.logger.Info("cleared job book", "deleted", n)
	return n, nil
}
