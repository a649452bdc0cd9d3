package repository

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/pg"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)
	// ids are always assigned by the database
	entity.ID = 0

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, translate(err, ErrCustomerNotFound)
	}

	return toCustomerModel(entity), nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).
		Where("customer_id = ?", id).
		First(&entity).
		Error
	if err != nil {
		return nil, translate(err, ErrCustomerNotFound)
	}
	return toCustomerModel(&entity), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := r.Read(ctx).Order("customer_id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

// UpdateOtherDetails replaces other_details of an existing customer. The row
// is locked for the duration of the surrounding transaction.
func (r *CustomerRepository) UpdateOtherDetails(ctx context.Context, id int64, details *string) (*model.Customer, error) {
	var updated *model.Customer
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var entity CustomerEntity
		err := r.Write(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ?", id).
			First(&entity).
			Error
		if err != nil {
			return translate(err, ErrCustomerNotFound)
		}

		err = r.Write(ctx).
			Model(&CustomerEntity{}).
			Where("customer_id = ?", id).
			Update("customer_other_details", details).
			Error
		if err != nil {
			return translate(err, ErrCustomerNotFound)
		}

		entity.OtherDetails = details
		updated = toCustomerModel(&entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the customer row only. Callers that need dependent calls
// removed must do so in the same transaction first.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).
		Where("customer_id = ?", id).
		Delete(&CustomerEntity{})
	if result.Error != nil {
		return translate(result.Error, ErrCustomerNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
