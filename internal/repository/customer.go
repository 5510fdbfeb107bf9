package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lewisallan/titan-jobs/gen/ent"
	"github.com/lewisallan/titan-jobs/gen/ent/customer"
	"github.com/lewisallan/titan-jobs/internal/entity"
	"github.com/lewisallan/titan-jobs/internal/utils"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	CreateBatch(ctx context.Context, customers []*entity.Customer) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.client.Customer.Query().Order(customer.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list customers", "error", err)
		return nil, err
	}

	result := make([]*entity.Customer, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCustomer(row)
	}
	return result, nil
}

func (r *customerRepository) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	row, err := r.client.Customer.Create().
		SetReference(c.Reference).
		SetName(c.Name).
		SetAddress(c.Address).
		SetPhone(c.Phone).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "name", c.Name, "error", err)
		return nil, err
	}
	return utils.ToCustomer(row), nil
}

func (r *customerRepository) CreateBatch(ctx context.Context, customers []*entity.Customer) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}
	builders := make([]*ent.CustomerCreate, len(customers))
	for i, c := range customers {
		builders[i] = r.client.Customer.Create().
			SetReference(c.Reference).
			SetName(c.Name).
			SetAddress(c.Address).
			SetPhone(c.Phone)
	}
	rows, err := r.client.Customer.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer batch", "size", len(customers), "error", err)
		return 0, err
	}
	return len(rows), nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Customer.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete customer", "customer_id", id, "error", err)
		return err
	}
	return nil
}
