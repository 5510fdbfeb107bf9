package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/common"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/repository"
	"github.com/lewisallan/titan-jobs/internal/utils"
)

type CustomersServer struct {
	jobspb.UnimplementedCustomersServiceServer
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

func NewCustomersServer(customerRepo repository.CustomerRepository, logger *slog.Logger) *CustomersServer {
	return &CustomersServer{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *CustomersServer) ListCustomers(ctx context.Context, _ *jobspb.ListCustomersRequest) (*jobspb.ListCustomersResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list customers", "error", err)
		return nil, status.Errorf(codes.Internal, "list customers: %v", err)
	}

	out := make([]*jobspb.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, utils.ToPBCustomer(c))
	}
	return &jobspb.ListCustomersResponse{Customers: out}, nil
}

func (s *CustomersServer) CreateCustomer(ctx context.Context, req *jobspb.CreateCustomerRequest) (*jobspb.CreateCustomerResponse, error) {
	name := strings.TrimSpace(req.GetName())

	v := common.NewValidator()
	v.Field("name", name, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("create customer request invalid", "error", err)
		return nil, err
	}

	c, err := s.customerRepo.Create(ctx, &entity.Customer{
		Reference: strings.TrimSpace(req.GetReference()),
		Name:      name,
		Address:   strings.TrimSpace(req.GetAddress()),
		Phone:     strings.TrimSpace(req.GetPhone()),
	})
	if err != nil {
		s.logger.Error("failed to create customer", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create customer: %v", err)
	}
	s.logger.Info("customer created", "customer_id", c.ID, "name", c.Name)

	return &jobspb.CreateCustomerResponse{Customer: utils.ToPBCustomer(c)}, nil
}
