package pg

import (
	"github.com/pressly/goose/v3"
	"github.com/zha7nea/callcenter/pkg/logger"
)

// Migrate applies every pending goose migration found in dir. Only postgres
// has SQL migrations; sqlite databases are created from the entities.
func Migrate(cfg Config, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := newSqlConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = goose.Up(db, dir); err != nil {
		return err
	}
	logger.Info("[pg] migrations applied", "dir", dir)
	return nil
}
