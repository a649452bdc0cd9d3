package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/logger"
	"github.com/zha7nea/callcenter/pkg/prom"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	UpdateOtherDetails(ctx context.Context, id int64, details *string) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CustomerCallDeleter interface {
	DeleteByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type CustomerService struct {
	customerRepo CustomerRepository
	callRepo     CustomerCallDeleter
}

func NewCustomerService(customerRepo CustomerRepository, callRepo CustomerCallDeleter) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		callRepo:     callRepo,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c, err := s.customerRepo.Create(ctx, &model.Customer{OtherDetails: p.OtherDetails})
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	logger.Info("customer created", "customer_id", c.ID)
	return c, nil
}

// Update validates the request before looking the customer up, so a bad
// body is reported even for an unknown id.
func (s *CustomerService) Update(ctx context.Context, id int64, p model.CustomerUpdateRequest) (*model.Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c, err := s.customerRepo.UpdateOtherDetails(ctx, id, p.OtherDetails)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return c, nil
}

// Delete removes the customer and every call logged against it in one
// transaction. An unknown id rolls back and touches nothing.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	var removedCalls int64
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := s.callRepo.DeleteByCustomer(ctx, id)
		if err != nil {
			return errors.Wrap(err, "delete customer calls")
		}
		if err := s.customerRepo.Delete(ctx, id); err != nil {
			return err
		}
		removedCalls = n
		return nil
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	prom.AddCascadeDeletedCalls(removedCalls)
	logger.Info("customer deleted", "customer_id", id, "calls_deleted", removedCalls)
	return nil
}
