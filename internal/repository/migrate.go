package repository

import (
	"context"

	"github.com/zha7nea/callcenter/pkg/pg"
)

// Entities lists every table of the service in dependency order.
func Entities() []any {
	return []any{
		&UserEntity{},
		&CallOutcomeEntity{},
		&CallStatusEntity{},
		&CustomerTypeEntity{},
		&BusinessSectorEntity{},
		&CustomerEntity{},
		&CustomerCallEntity{},
	}
}

// AutoMigrate creates the schema from the entities and seeds the reference
// codes. Used for sqlite databases, which have no SQL migrations.
func AutoMigrate(ctx context.Context, db *pg.DB) error {
	if err := db.Write(ctx).AutoMigrate(Entities()...); err != nil {
		return err
	}
	return NewReferenceRepository(db).EnsureDefaults(ctx)
}
