package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lewisallan/titan-jobs/constants"
	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/repository"
)

type fakeJobRepo struct {
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo(jobs ...*entity.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[uuid.UUID]*entity.Job)}
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			j.ID = uuid.New()
		}
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) List(_ context.Context, statusFilter string) ([]*entity.Job, error) {
	out := make([]*entity.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if statusFilter == "" || j.Status == statusFilter {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, &notFoundErr{}
	}
	return j, nil
}

func (r *fakeJobRepo) Create(_ context.Context, j *entity.Job) (*entity.Job, error) {
	j.ID = uuid.New()
	r.jobs[j.ID] = j
	return j, nil
}

func (r *fakeJobRepo) CreateBatch(_ context.Context, jobs []*entity.Job) (int, error) {
	for _, j := range jobs {
		j.ID = uuid.New()
		r.jobs[j.ID] = j
	}
	return len(jobs), nil
}

func (r *fakeJobRepo) Update(_ context.Context, id uuid.UUID, patch repository.JobUpdate) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, &notFoundErr{}
	}
	if patch.Name != nil {
		j.Name = *patch.Name
	}
	if patch.Price != nil {
		j.Price = *patch.Price
	}
	if patch.Balance != nil {
		j.Balance = *patch.Balance
	}
	if patch.PaymentMethod != nil {
		j.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	return j, nil
}

func (r *fakeJobRepo) DeleteAll(context.Context) (int, error) {
	n := len(r.jobs)
	r.jobs = make(map[uuid.UUID]*entity.Job)
	return n, nil
}

type notFoundErr struct{}

func (*notFoundErr) Error() string { return "ent: job not found" }

func testLogger() *slog.Logger {
	return slog.Default()
}

func pendingJob(name, price string) *entity.Job {
	return &entity.Job{
		Name:    name,
		Price:   price,
		Balance: "0.00",
		Status:  string(constants.JobStatusPending),
	}
}

func TestFinishJobCashCompletes(t *testing.T) {
	job := pendingJob("Smith", "45.00")
	repo := newFakeJobRepo(job)
	srv := NewJobsServer(repo, nil, testLogger())

	resp, err := srv.FinishJob(context.Background(), &jobspb.FinishJobRequest{
		Id:            job.ID.String(),
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), resp.GetJob().GetStatus())
	assert.Equal(t, "0.00", resp.GetJob().GetBalance())
	assert.Equal(t, "Cash", resp.GetJob().GetPaymentMethod())
}

func TestFinishJobBankTransferLeavesBalance(t *testing.T) {
	job := pendingJob("Smith", "45.00")
	repo := newFakeJobRepo(job)
	srv := NewJobsServer(repo, nil, testLogger())

	resp, err := srv.FinishJob(context.Background(), &jobspb.FinishJobRequest{
		Id:            job.ID.String(),
		PaymentMethod: "Bank Transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusOverdue), resp.GetJob().GetStatus())
	assert.Equal(t, "45.00", resp.GetJob().GetBalance(), "full price outstanding")
}

func TestFinishJobRejectsUnknownMethod(t *testing.T) {
	job := pendingJob("Smith", "45.00")
	repo := newFakeJobRepo(job)
	srv := NewJobsServer(repo, nil, testLogger())

	_, err := srv.FinishJob(context.Background(), &jobspb.FinishJobRequest{
		Id:            job.ID.String(),
		PaymentMethod: "IOU",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestFinishJobAlreadyCompleted(t *testing.T) {
	job := pendingJob("Smith", "45.00")
	job.Status = string(constants.JobStatusCompleted)
	repo := newFakeJobRepo(job)
	srv := NewJobsServer(repo, nil, testLogger())

	_, err := srv.FinishJob(context.Background(), &jobspb.FinishJobRequest{
		Id:            job.ID.String(),
		PaymentMethod: "Cash",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestMarkJobPaid(t *testing.T) {
	job := pendingJob("Jones", "30.00")
	job.Status = string(constants.JobStatusDebtor)
	job.Balance = "30.00"
	repo := newFakeJobRepo(job)
	srv := NewJobsServer(repo, nil, testLogger())

	resp, err := srv.MarkJobPaid(context.Background(), &jobspb.MarkJobPaidRequest{Id: job.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), resp.GetJob().GetStatus())
	assert.Equal(t, "0.00", resp.GetJob().GetBalance())
	assert.Equal(t, constants.PaymentMethodPaid, resp.GetJob().GetPaymentMethod())
}

func TestCreateJobDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	srv := NewJobsServer(repo, nil, testLogger())

	resp, err := srv.CreateJob(context.Background(), &jobspb.CreateJobRequest{Name: "New Customer"})
	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.GetJob().GetPrice())
	assert.Equal(t, "0.00", resp.GetJob().GetBalance())
	assert.Equal(t, constants.DefaultService, resp.GetJob().GetServices())
	assert.Equal(t, string(constants.JobStatusPending), resp.GetJob().GetStatus())
	assert.Equal(t, dates.Today(), resp.GetJob().GetNextDue())
	assert.Equal(t, "Due Today", resp.GetJob().GetDueLabel())
}

func TestCreateJobValidation(t *testing.T) {
	repo := newFakeJobRepo()
	srv := NewJobsServer(repo, nil, testLogger())

	_, err := srv.CreateJob(context.Background(), &jobspb.CreateJobRequest{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.CreateJob(context.Background(), &jobspb.CreateJobRequest{Name: "A", Price: "4.5"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.CreateJob(context.Background(), &jobspb.CreateJobRequest{Name: "A", NextDue: "soon"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListJobsDayFilter(t *testing.T) {
	today := dates.Today()
	due := &entity.Job{Name: "Due", Price: "30.00", Balance: "0.00", NextDue: today, Status: string(constants.JobStatusPending)}
	later := &entity.Job{Name: "Later", Price: "30.00", Balance: "0.00", NextDue: "2099-12-31", Status: string(constants.JobStatusPending)}
	srv := NewJobsServer(newFakeJobRepo(due, later), nil, testLogger())

	resp, err := srv.ListJobs(context.Background(), &jobspb.ListJobsRequest{Day: today})
	require.NoError(t, err)
	require.Len(t, resp.GetJobs(), 1)
	assert.Equal(t, "Due", resp.GetJobs()[0].GetName())
}

func TestListJobsRejectsNonCanonicalDay(t *testing.T) {
	srv := NewJobsServer(newFakeJobRepo(), nil, testLogger())

	_, err := srv.ListJobs(context.Background(), &jobspb.ListJobsRequest{Day: "31/12/2099"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListDebtorsTotals(t *testing.T) {
	a := pendingJob("A", "45.00")
	a.Balance = "45.00"
	a.Status = string(constants.JobStatusDebtor)
	b := pendingJob("B", "30.00")
	b.Balance = "7.50"
	b.Status = string(constants.JobStatusDebtor)
	repo := newFakeJobRepo(a, b, pendingJob("C", "10.00"))
	srv := NewJobsServer(repo, nil, testLogger())

	resp, err := srv.ListDebtors(context.Background(), &jobspb.ListDebtorsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetJobs(), 2)
	assert.Equal(t, "A", resp.GetJobs()[0].GetName(), "largest balance first")
	assert.Equal(t, "52.50", resp.GetTotalOwed())
}

func TestClearJobsRequiresConfirm(t *testing.T) {
	repo := newFakeJobRepo(pendingJob("A", "1.00"))
	srv := NewJobsServer(repo, nil, testLogger())

	_, err := srv.ClearJobs(context.Background(), &jobspb.ClearJobsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	resp, err := srv.ClearJobs(context.Background(), &jobspb.ClearJobsRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.GetDeleted())
}
