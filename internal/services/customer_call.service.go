package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/logger"
)

type CustomerCallRepository interface {
	Create(ctx context.Context, call *model.CustomerCall) (*model.CustomerCall, error)
	Get(ctx context.Context, id int64) (*model.CustomerCall, error)
	List(ctx context.Context) ([]*model.CustomerCall, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerCallService struct {
	callRepo CustomerCallRepository
}

func NewCustomerCallService(callRepo CustomerCallRepository) *CustomerCallService {
	return &CustomerCallService{callRepo: callRepo}
}

func (s *CustomerCallService) List(ctx context.Context) ([]*model.CustomerCall, error) {
	calls, err := s.callRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list customer calls")
	}
	return calls, nil
}

func (s *CustomerCallService) Get(ctx context.Context, id int64) (*model.CustomerCall, error) {
	call, err := s.callRepo.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return call, nil
}

// Create logs a call. The customer and both reference codes must exist;
// otherwise nothing is written and an integrity error is returned.
func (s *CustomerCallService) Create(ctx context.Context, p model.CustomerCallCreateRequest) (*model.CustomerCall, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	call, err := s.callRepo.Create(ctx, p.ToCall())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	logger.Info("customer call created", "call_id", call.ID, "customer_id", call.CustomerID)
	return call, nil
}

func (s *CustomerCallService) Delete(ctx context.Context, id int64) error {
	if err := s.callRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}
