package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/zha7nea/callcenter/internal/auth"
	"github.com/zha7nea/callcenter/internal/config"
	"github.com/zha7nea/callcenter/internal/repository"
	"github.com/zha7nea/callcenter/internal/services"
	"github.com/zha7nea/callcenter/pkg/logger"
	"github.com/zha7nea/callcenter/pkg/pg"
)

// main.go --env=.env --dir=./migrations [--seed-admin]
func main() {
	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(config.Get().LogLevel)

	writeConf := config.Get().WriteDB()
	if writeConf.IsSQLite() {
		err = migrateSQLite(writeConf)
	} else {
		err = pg.Migrate(writeConf, getMigrationPath())
	}
	if err != nil {
		logger.Error("migration: error running migrations", "error", err)
		os.Exit(1)
	}

	if hasFlag("--seed-admin") {
		if err := seedAdmin(writeConf); err != nil {
			logger.Error("seed: error creating bootstrap admin", "error", err)
			os.Exit(1)
		}
	}
}

func migrateSQLite(conf pg.Config) error {
	gdb, err := pg.Create(conf, false)
	if err != nil {
		return err
	}
	if err := repository.AutoMigrate(context.Background(), pg.Wrap(gdb)); err != nil {
		return err
	}
	logger.Info("[sqlite] schema migrated", "path", conf.SQLitePath)
	return nil
}

func seedAdmin(conf pg.Config) error {
	username := config.Get().BootstrapAdminUsername
	password := config.Get().BootstrapAdminPassword
	if username == "" || password == "" {
		return errors.New("BOOTSTRAP_ADMIN_USERNAME and BOOTSTRAP_ADMIN_PASSWORD must be set")
	}

	gdb, err := pg.Create(conf, false)
	if err != nil {
		return err
	}
	svc := services.NewAuthService(
		repository.NewUserRepository(pg.Wrap(gdb)),
		auth.NewBcryptHasher(config.Get().BcryptCost),
		nil,
		nil,
	)

	_, err = svc.SeedAdmin(context.Background(), username, password)
	if errors.Is(err, services.ErrUsernameTaken) {
		logger.Warn("seed: bootstrap admin already exists", "username", username)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("seed: bootstrap admin created", "username", username)
	return nil
}

func hasFlag(name string) bool {
	for _, v := range os.Args[1:] {
		if v == name {
			return true
		}
	}
	return false
}

func getEnvPath() string {
	if path, ok := argValue("--env="); ok {
		return path
	}
	if _, err := os.Stat(".env"); err != nil {
		return ""
	}
	return ".env"
}

func getMigrationPath() string {
	if path, ok := argValue("--dir="); ok {
		return path
	}
	return "./migrations"
}

func argValue(prefix string) (string, bool) {
	for _, v := range os.Args {
		if strings.HasPrefix(v, prefix) {
			path := strings.TrimPrefix(v, prefix)
			if _, err := os.Stat(path); err != nil {
				logger.Error("failed to open the passed path", "flag", prefix, "path", path, "error", err)
				return "", false
			}
			return path, true
		}
	}
	return "", false
}
