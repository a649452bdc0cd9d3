package repository

import (
	"context"

	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/pkg/pg"
	"gorm.io/gorm/clause"
)

type ReferenceRepository struct {
	*pg.DB
}

func NewReferenceRepository(db *pg.DB) *ReferenceRepository {
	return &ReferenceRepository{
		db,
	}
}

// EnsureDefaults inserts the default reference codes that are not present
// yet. Existing rows, including edited descriptions, are left alone.
func (r *ReferenceRepository) EnsureDefaults(ctx context.Context) error {
	outcomes := make([]*CallOutcomeEntity, len(model.DefaultCallOutcomes))
	for i, c := range model.DefaultCallOutcomes {
		outcomes[i] = &CallOutcomeEntity{Code: c.Code, Description: c.Description}
	}
	statuses := make([]*CallStatusEntity, len(model.DefaultCallStatuses))
	for i, c := range model.DefaultCallStatuses {
		statuses[i] = &CallStatusEntity{Code: c.Code, Description: c.Description}
	}
	types := make([]*CustomerTypeEntity, len(model.DefaultCustomerTypes))
	for i, c := range model.DefaultCustomerTypes {
		types[i] = &CustomerTypeEntity{Code: c.Code, Description: c.Description}
	}
	sectors := make([]*BusinessSectorEntity, len(model.DefaultBusinessSectors))
	for i, s := range model.DefaultBusinessSectors {
		sectors[i] = &BusinessSectorEntity{Code: s.Code, Description: s.Description}
	}

	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, rows := range []any{&outcomes, &statuses, &types} {
			if err := r.Write(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return err
			}
		}
		return r.Write(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "business_sector_code"}}, DoNothing: true}).
			Create(&sectors).
			Error
	})
}

func (r *ReferenceRepository) CallOutcomes(ctx context.Context) ([]model.ReferenceCode, error) {
	var entities []*CallOutcomeEntity
	if err := r.Read(ctx).Order("call_outcome_code ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	codes := make([]model.ReferenceCode, len(entities))
	for i, e := range entities {
		codes[i] = model.ReferenceCode{Code: e.Code, Description: e.Description}
	}
	return codes, nil
}

func (r *ReferenceRepository) CallStatuses(ctx context.Context) ([]model.ReferenceCode, error) {
	var entities []*CallStatusEntity
	if err := r.Read(ctx).Order("call_status_code ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	codes := make([]model.ReferenceCode, len(entities))
	for i, e := range entities {
		codes[i] = model.ReferenceCode{Code: e.Code, Description: e.Description}
	}
	return codes, nil
}
