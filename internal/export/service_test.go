package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/repository"
)

type stubJobRepo struct {
	jobs []*entity.Job
}

func (s *stubJobRepo) List(_ context.Context, status string) ([]*entity.Job, error) {
	if status == "" {
		return s.jobs, nil
	}
	var out []*entity.Job
	for _, j := range s.jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *stubJobRepo) Get(context.Context, uuid.UUID) (*entity.Job, error) { return nil, nil }
func (s *stubJobRepo) Create(_ context.Context, j *entity.Job) (*entity.Job, error) {
	return j, nil
}
func (s *stubJobRepo) CreateBatch(_ context.Context, jobs []*entity.Job) (int, error) {
	return len(jobs), nil
}
func (s *stubJobRepo) Update(context.Context, uuid.UUID, repository.JobUpdate) (*entity.Job, error) {
	return nil, nil
}
func (s *stubJobRepo) DeleteAll(context.Context) (int, error) { return 0, nil }

func TestExportJobsXLSX(t *testing.T) {
	repo := &stubJobRepo{jobs: []*entity.Job{
		{
			Name:     "Late",
			Address:  "2 Hill St",
			Services: "Window Cleaning",
			Price:    "45.00",
			Balance:  "45.00",
			NextDue:  "2099-12-31",
			Status:   "debtor",
		},
		{
			Name:     "Early",
			Address:  "1 High St",
			Services: "gutter clearing",
			Price:    "30.00",
			Balance:  "0.00",
			NextDue:  "01/06/2024",
			Status:   "pending",
		},
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Job Type", rows[0][4])

	// Sorted by due date, not input order; UK-form date is canonicalized.
	assert.Equal(t, "Early", rows[1][0])
	assert.Equal(t, "2024-06-01", rows[1][7])
	assert.Equal(t, "Gutters", rows[1][4])
	assert.Equal(t, "Late", rows[2][0])
	assert.Equal(t, "Windows", rows[2][4])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "caf…", truncate("café latte", 4))
	assert.Equal(t, "££…", truncate("£££££", 3))
}

func TestExportJobsXLSXStatusFilter(t *testing.T) {
	repo := &stubJobRepo{jobs: []*entity.Job{
		{Name: "A", Price: "10.00", Balance: "10.00", Status: "debtor"},
		{Name: "B", Price: "10.00", Balance: "0.00", Status: "completed"},
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportJobsXLSX(context.Background(), "debtor")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[1][0])
}
