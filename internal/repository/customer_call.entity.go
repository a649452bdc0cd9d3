package repository

import (
	"time"

	"github.com/zha7nea/callcenter/internal/model"
)

type CustomerCallEntity struct {
	ID           int64              `db:"call_id"           gorm:"primaryKey;autoIncrement;column:call_id"`
	CustomerID   int64              `db:"customer_id"       gorm:"column:customer_id;not null;index"`
	Customer     *CustomerEntity    `db:"-"                 gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
	CallDateTime time.Time          `db:"call_date_time"    gorm:"column:call_date_time;not null"`
	Description  *string            `db:"call_description"  gorm:"column:call_description;type:text"`
	OutcomeCode  string             `db:"call_outcome_code" gorm:"column:call_outcome_code;size:50;not null;index"`
	Outcome      *CallOutcomeEntity `db:"-"                 gorm:"foreignKey:OutcomeCode;references:Code"`
	StatusCode   string             `db:"call_status_code"  gorm:"column:call_status_code;size:50;not null;index"`
	Status       *CallStatusEntity  `db:"-"                 gorm:"foreignKey:StatusCode;references:Code"`
}

func (CustomerCallEntity) TableName() string {
	return "customer_calls"
}

func toCustomerCallEntity(m *model.CustomerCall) *CustomerCallEntity {
	if m == nil {
		return nil
	}
	return &CustomerCallEntity{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		CallDateTime: m.CallDateTime.UTC(),
		Description:  m.Description,
		OutcomeCode:  m.OutcomeCode,
		StatusCode:   m.StatusCode,
	}
}

func toCustomerCallModel(e *CustomerCallEntity) *model.CustomerCall {
	if e == nil {
		return nil
	}
	return &model.CustomerCall{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		CallDateTime: model.NewTimestamp(e.CallDateTime),
		Description:  e.Description,
		OutcomeCode:  e.OutcomeCode,
		StatusCode:   e.StatusCode,
	}
}

func toCustomerCallModels(entities []*CustomerCallEntity) []*model.CustomerCall {
	models := make([]*model.CustomerCall, len(entities))
	for i, e := range entities {
		models[i] = toCustomerCallModel(e)
	}
	return models
}
