package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lewisallan/titan-jobs/constants"
	"github.com/lewisallan/titan-jobs/gen/ent"
	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/common"
	"github.com/lewisallan/titan-jobs/internal/dates"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/export"
	"github.com/lewisallan/titan-jobs/internal/repository"
	"github.com/lewisallan/titan-jobs/internal/utils"
	"github.com/lewisallan/titan-jobs/internal/view"
)

type JobsServer struct {
	jobspb.UnimplementedJobsServiceServer
	jobRepo   repository.JobRepository
	exportSvc *export.Service
	logger    *slog.Logger
}

func NewJobsServer(jobRepo repository.JobRepository, exportSvc *export.Service, logger *slog.Logger) *JobsServer {
	return &JobsServer{
		jobRepo:   jobRepo,
		exportSvc: exportSvc,
		logger:    logger,
	}
}

// ListJobs returns jobs for the requested view. A non-empty query searches
// name, address and services and ignores day; a non-empty day restricts to a
// single due date in YYYY-MM-DD form; neither means all jobs sorted by due
// date.
func (s *JobsServer) ListJobs(ctx context.Context, req *jobspb.ListJobsRequest) (*jobspb.ListJobsResponse, error) {
	day := strings.TrimSpace(req.GetDay())

	v := common.NewValidator()
	v.Field("day", day, common.CanonicalDate)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("list jobs request invalid", "error", err)
		return nil, err
	}

	jobs, err := s.jobRepo.List(ctx, strings.TrimSpace(req.GetStatus()))
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	today := dates.Today()
	selected := view.Select(jobs, req.GetQuery(), day, today)

	out := make([]*jobspb.Job, 0, len(selected))
	for _, j := range selected {
		out = append(out, utils.ToPBJob(j, today))
	}
	return &jobspb.ListJobsResponse{Jobs: out, Today: today}, nil
}

func (s *JobsServer) CreateJob(ctx context.Context, req *jobspb.CreateJobRequest) (*jobspb.CreateJobResponse, error) {
	name := strings.TrimSpace(req.GetName())
	price := strings.TrimSpace(req.GetPrice())
	if price == "" {
		price = "0.00"
	}

	v := common.NewValidator()
	v.Field("name", name, common.Required)
	v.Field("price", price, common.Money)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("create job request invalid", "error", err)
		return nil, err
	}

	nextDue := strings.TrimSpace(req.GetNextDue())
	if nextDue == "" {
		nextDue = dates.Today()
	} else if _, ok := dates.Normalize(nextDue); !ok {
		return nil, common.InvalidArgumentError("next_due must be a recognizable date")
	}

	services := strings.TrimSpace(req.GetServices())
	if services == "" {
		services = constants.DefaultService
	}

	j, err := s.jobRepo.Create(ctx, &entity.Job{
		Name:          name,
		Address:       strings.TrimSpace(req.GetAddress()),
		Phone:         strings.TrimSpace(req.GetPhone()),
		Services:      services,
		Price:         price,
		Balance:       "0.00",
		NextDue:       nextDue,
		Frequency:     strings.TrimSpace(req.GetFrequency()),
		PaymentMethod: strings.TrimSpace(req.GetPaymentMethod()),
		Notes:         req.GetNotes(),
		Status:        string(constants.JobStatusPending),
	})
	if err != nil {
		s.logger.Error("failed to create job", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}
	s.logger.Info("job created", "job_id", j.ID, "name", j.Name)

	return &jobspb.CreateJobResponse{Job: utils.ToPBJob(j, dates.Today())}, nil
}

func (s *JobsServer) UpdateJob(ctx context.Context, req *jobspb.UpdateJobRequest) (*jobspb.UpdateJobResponse, error) {
	id, err := parseJobID(req.GetId())
	if err != nil {
		s.logger.Error("invalid id format for update job", "id", req.GetId(), "error", err)
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	patch := repository.JobUpdate{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Services:      req.Services,
		Price:         req.Price,
		Balance:       req.Balance,
		NextDue:       req.NextDue,
		Frequency:     req.Frequency,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	v := common.NewValidator()
	if patch.Name != nil {
		v.Field("name", *patch.Name, common.Required)
	}
	if patch.Price != nil {
		v.Field("price", *patch.Price, common.Money)
	}
	if patch.Balance != nil {
		v.Field("balance", *patch.Balance, common.Money)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("update job request invalid", "job_id", id, "error", err)
		return nil, err
	}
	if patch.NextDue != nil && strings.TrimSpace(*patch.NextDue) != "" {
		if _, ok := dates.Normalize(*patch.NextDue); !ok {
			return nil, common.InvalidArgumentError("next_due must be a recognizable date")
		}
	}

	j, err := s.jobRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.updateError(id, err)
	}
	s.logger.Info("job updated", "job_id", id)

	return &jobspb.UpdateJobResponse{Job: utils.ToPBJob(j, dates.Today())}, nil
}

// FinishJob records a completed visit. Cash and Card settle immediately;
// Bank Transfer leaves the full price outstanding until marked paid.
func (s *JobsServer) FinishJob(ctx context.Context, req *jobspb.FinishJobRequest) (*jobspb.FinishJobResponse, error) {
	id, err := parseJobID(req.GetId())
	if err != nil {
		s.logger.Error("invalid id format for finish job", "id", req.GetId(), "error", err)
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	method, ok := constants.CanonicalPaymentMethod(req.GetPaymentMethod())
	if !ok {
		return nil, common.InvalidArgumentErrorf("payment_method must be one of %v", constants.PaymentMethods)
	}

	j, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, s.updateError(id, err)
	}
	if constants.JobStatus(j.Status).IsTerminal() {
		return nil, common.FailedPreconditionError("job is already completed")
	}

	newStatus := string(constants.JobStatusCompleted)
	newBalance := "0.00"
	if method == "Bank Transfer" {
		newStatus = string(constants.JobStatusOverdue)
		newBalance = j.Price
	}

	updated, err := s.jobRepo.Update(ctx, id, repository.JobUpdate{
		Status:        &newStatus,
		Balance:       &newBalance,
		PaymentMethod: &method,
	})
	if err != nil {
		return nil, s.updateError(id, err)
	}
	s.logger.Info("job finished", "job_id", id, "payment_method", method, "status", newStatus)

	return &jobspb.FinishJobResponse{Job: utils.ToPBJob(updated, dates.Today())}, nil
}

// MarkJobPaid settles an outstanding balance.
func (s *JobsServer) MarkJobPaid(ctx context.Context, req *jobspb.MarkJobPaidRequest) (*jobspb.MarkJobPaidResponse, error) {
	id, err := parseJobID(req.GetId())
	if err != nil {
		s.logger.Error("invalid id format for mark job paid", "id", req.GetId(), "error", err)
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	newStatus := string(constants.JobStatusCompleted)
	newBalance := "0.00"
	method := constants.PaymentMethodPaid
	updated, err := s.jobRepo.Update(ctx, id, repository.JobUpdate{
		Status:        &newStatus,
		Balance:       &newBalance,
		PaymentMethod: &method,
	})
	if err != nil {
		return nil, s.updateError(id, err)
	}
	s.logger.Info("job marked paid", "job_id", id)

	return &jobspb.MarkJobPaidResponse{Job: utils.ToPBJob(updated, dates.Today())}, nil
}

func (s *JobsServer) ListDebtors(ctx context.Context, req *jobspb.ListDebtorsRequest) (*jobspb.ListDebtorsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, "")
	if err != nil {
		s.logger.Error("failed to list jobs for debtors", "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = view.DebtorsLimit
	}
	debtors, totalOwed := view.Debtors(jobs, limit)

	today := dates.Today()
	out := make([]*jobspb.Job, 0, len(debtors))
	for _, j := range debtors {
		out = append(out, utils.ToPBJob(j, today))
	}
	return &jobspb.ListDebtorsResponse{Jobs: out, TotalOwed: totalOwed}, nil
}

func (s *JobsServer) ClearJobs(ctx context.Context, req *jobspb.ClearJobsRequest) (*jobspb.ClearJobsResponse, error) {
	if !req.GetConfirm() {
		return nil, common.FailedPreconditionError("confirm must be set to clear all jobs")
	}

	deleted, err := s.jobRepo.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("failed to clear jobs", "error", err)
		return nil, status.Errorf(codes.Internal, "clear jobs: %v", err)
	}
	s.logger.Info("jobs cleared", "deleted", deleted)

	return &jobspb.ClearJobsResponse{Deleted: int32(deleted)}, nil
}

func (s *JobsServer) ExportJobs(ctx context.Context, req *jobspb.ExportJobsRequest) (*jobspb.ExportJobsResponse, error) {
	xlsx, err := s.exportSvc.ExportJobsXLSX(ctx, strings.TrimSpace(req.GetStatus()))
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &jobspb.ExportJobsResponse{Xlsx: xlsx}, nil
}

func (s *JobsServer) updateError(id uuid.UUID, err error) error {
	if ent.IsNotFound(err) {
		s.logger.Error("job not found", "job_id", id)
		return common.NotFoundError("job not found")
	}
	s.logger.Error("failed to update job", "job_id", id, "error", err)
	return status.Errorf(codes.Internal, "update job: %v", err)
}

func parseJobID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}
