package config

import (
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/zha7nea/callcenter/pkg/logger"
	"github.com/zha7nea/callcenter/pkg/pg"
)

var config *Config

// Config holds every configuration value of the service. Only this struct
// must be used to read configuration; no direct access to the environment
// or any other config source should be made.
type Config struct {
	AppEnv              string `env:"APP_ENV,default=dev"`
	AppName             string `env:"APP_NAME,default=callcenter"`
	AppDebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	AppDebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`

	HttpListenAddr     string        `env:"HTTP_LISTEN_ADDR,default=:8080"`
	HttpRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT,default=5s"`

	DBDriver   string `env:"DB_DRIVER,default=postgres"`
	SQLitePath string `env:"SQLITE_PATH,default=callcenter.db"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisUsername           string `env:"REDIS_USER"`
	RedisPassword           string `env:"REDIS_PASS"`
	RedisDatabase           int    `env:"REDIS_DATABASE"`
	RedisUniversalKeyPrefix string `env:"REDIS_UNIVERSAL_KEY_PREFIX,default=callcenter:"`

	PromNamespace string `env:"PROM_NAMESPACE,default=callcenter"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	JWTSecretKey      string        `env:"JWT_SECRET_KEY"`
	JWTIssuer         string        `env:"JWT_ISSUER"`
	JWTAccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL,default=15m"`
	BcryptCost        int           `env:"BCRYPT_COST,default=10"`

	BootstrapAdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	c.applyDevDefaults()
	if err = c.Validate(); err != nil {
		return err
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}

// Set replaces the loaded configuration. Intended for tests and tools that
// build a Config by hand.
func Set(c *Config) {
	config = c
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY must be set")
	}
	if c.JWTAccessTokenTTL <= 0 {
		return errors.Errorf("JWT_ACCESS_TOKEN_TTL must be positive, got %s", c.JWTAccessTokenTTL)
	}
	switch c.DBDriver {
	case pg.DriverPostgres, pg.DriverSQLite:
	default:
		return errors.Errorf("DB_DRIVER %q is not supported", c.DBDriver)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// the well-known admin/admin pair is only ever a dev seed
func (c *Config) applyDevDefaults() {
	if !c.IsDev() {
		return
	}
	if c.BootstrapAdminUsername == "" && c.BootstrapAdminPassword == "" {
		c.BootstrapAdminUsername = "admin"
		c.BootstrapAdminPassword = "admin"
	}
}

func (c *Config) ReadDB() pg.Config {
	return pg.Config{
		Driver:     c.DBDriver,
		User:       c.PostgresReadUser,
		Host:       c.PostgresReadHost,
		Port:       c.PostgresReadPort,
		Password:   c.PostgresReadPassword,
		Database:   c.PostgresReadDatabase,
		SQLitePath: c.SQLitePath,
	}
}

func (c *Config) WriteDB() pg.Config {
	return pg.Config{
		Driver:     c.DBDriver,
		User:       c.PostgresWriteUser,
		Host:       c.PostgresWriteHost,
		Port:       c.PostgresWritePort,
		Password:   c.PostgresWritePassword,
		Database:   c.PostgresWriteDatabase,
		SQLitePath: c.SQLitePath,
	}
}
