package repository

import (
	"github.com/zha7nea/callcenter/internal/model"
)

type CustomerEntity struct {
	ID           int64   `db:"customer_id"            gorm:"primaryKey;autoIncrement;column:customer_id"`
	OtherDetails *string `db:"customer_other_details" gorm:"column:customer_other_details;type:text"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:           m.ID,
		OtherDetails: m.OtherDetails,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:           e.ID,
		OtherDetails: e.OtherDetails,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
