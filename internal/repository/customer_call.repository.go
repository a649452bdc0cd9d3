package repository

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/pg"
	"gorm.io/gorm"
)

type CustomerCallRepository struct {
	*pg.DB
}

func NewCustomerCallRepository(db *pg.DB) *CustomerCallRepository {
	return &CustomerCallRepository{
		db,
	}
}

// Create inserts a call after checking, in the same transaction, that the
// customer and both reference codes exist. Nothing is written when any of
// them is missing.
func (r *CustomerCallRepository) Create(ctx context.Context, call *model.CustomerCall) (*model.CustomerCall, error) {
	entity := toCustomerCallEntity(call)
	entity.ID = 0

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		tx := r.Write(ctx)

		ok, err := exists(tx, &CustomerEntity{}, "customer_id = ?", entity.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownCustomer
		}

		if ok, err = exists(tx, &CallOutcomeEntity{}, "call_outcome_code = ?", entity.OutcomeCode); err != nil {
			return err
		} else if !ok {
			return ErrUnknownReferenceCode
		}
		if ok, err = exists(tx, &CallStatusEntity{}, "call_status_code = ?", entity.StatusCode); err != nil {
			return err
		} else if !ok {
			return ErrUnknownReferenceCode
		}

		return translate(tx.Create(entity).Error, ErrCallNotFound)
	})
	if err != nil {
		return nil, err
	}

	return toCustomerCallModel(entity), nil
}

func (r *CustomerCallRepository) Get(ctx context.Context, id int64) (*model.CustomerCall, error) {
	var entity CustomerCallEntity
	err := r.Read(ctx).
		Where("call_id = ?", id).
		First(&entity).
		Error
	if err != nil {
		return nil, translate(err, ErrCallNotFound)
	}
	return toCustomerCallModel(&entity), nil
}

func (r *CustomerCallRepository) List(ctx context.Context) ([]*model.CustomerCall, error) {
	var entities []*CustomerCallEntity
	if err := r.Read(ctx).Order("call_id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerCallModels(entities), nil
}

func (r *CustomerCallRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).
		Where("call_id = ?", id).
		Delete(&CustomerCallEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCallNotFound
	}
	return nil
}

// DeleteByCustomer removes every call logged against customerID and
// reports how many rows went.
func (r *CustomerCallRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	result := r.Write(ctx).
		Where("customer_id = ?", customerID).
		Delete(&CustomerCallEntity{})
	return result.RowsAffected, result.Error
}

func exists(tx *gorm.DB, entity any, query string, args ...any) (bool, error) {
	var n int64
	if err := tx.Model(entity).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
