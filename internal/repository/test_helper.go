package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zha7nea/callcenter/pkg/pg"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testDB struct {
	*pg.DB
	rawDB *gorm.DB
}

func setupTestDB(t *testing.T) *testDB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// every new connection to :memory: is a fresh empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	pgDB := pg.Wrap(db)
	require.NoError(t, AutoMigrate(context.Background(), pgDB))

	return &testDB{
		DB:    pgDB,
		rawDB: db,
	}
}

func strPtr(s string) *string { return &s }
