package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver     string `env:"DRIVER"`
	User       string `env:"USER"`
	Host       string `env:"HOST"`
	Port       string `env:"PORT"`
	Password   string `env:"PASSWORD"`
	Database   string `env:"DBNAME"`
	SQLitePath string `env:"SQLITE_PATH"`
}

func (c Config) driver() string {
	if c.Driver == "" {
		return DriverPostgres
	}
	return c.Driver
}

func (c Config) IsSQLite() bool {
	return c.driver() == DriverSQLite
}

func (c Config) dsn() string {
	if c.IsSQLite() {
		// foreign keys are off by default in sqlite
		return c.SQLitePath + "?_foreign_keys=on&_busy_timeout=5000"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", c.Host, c.User, c.Password, c.Database, c.Port)
}

func newSqlConnection(config Config) (*sql.DB, error) {
	if config.driver() != DriverPostgres {
		return nil, fmt.Errorf("pg: sql migrations need the postgres driver, got %q", config.Driver)
	}
	return sql.Open("postgres", config.dsn())
}
