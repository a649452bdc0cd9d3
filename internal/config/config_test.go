package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secret from env", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "s3cret")
		t.Setenv("APP_ENV", "dev")

		require.NoError(t, Load(""))
		c := Get()
		assert.Equal(t, "postgres", c.DBDriver)
		assert.Equal(t, 15*time.Minute, c.JWTAccessTokenTTL)
		assert.Equal(t, ":8080", c.HttpListenAddr)
		assert.Equal(t, "admin", c.BootstrapAdminUsername)
	})

	t.Run("every default is applied when the environment is empty", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "s3cret")

		require.NoError(t, Load(""))
		c := Get()
		assert.Equal(t, "dev", c.AppEnv)
		assert.True(t, c.IsDev())
		assert.Equal(t, "callcenter", c.AppName)
		assert.Equal(t, "/metrics", c.AppDebugMetricsURI)
		assert.Equal(t, ":8080", c.HttpListenAddr)
		assert.Equal(t, 5*time.Second, c.HttpRequestTimeout)
		assert.Equal(t, "postgres", c.DBDriver)
		assert.Equal(t, "callcenter.db", c.SQLitePath)
		assert.Equal(t, "callcenter:", c.RedisUniversalKeyPrefix)
		assert.Equal(t, "callcenter", c.PromNamespace)
		assert.Equal(t, "info", c.LogLevel)
		assert.Equal(t, 15*time.Minute, c.JWTAccessTokenTTL)
		assert.Equal(t, 10, c.BcryptCost)
		assert.Equal(t, "admin", c.BootstrapAdminUsername)
		assert.Equal(t, "admin", c.BootstrapAdminPassword)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "s3cret")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")
		t.Setenv("BCRYPT_COST", "12")

		require.NoError(t, Load(""))
		assert.Equal(t, "sqlite", Get().DBDriver)
		assert.Equal(t, time.Hour, Get().JWTAccessTokenTTL)
		assert.Equal(t, 12, Get().BcryptCost)
	})

	t.Run("bootstrap admin is not defaulted outside dev", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "s3cret")
		t.Setenv("APP_ENV", "production")

		require.NoError(t, Load(""))
		assert.Empty(t, Get().BootstrapAdminUsername)
		assert.Empty(t, Get().BootstrapAdminPassword)
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET_KEY=from-file\nDB_DRIVER=sqlite\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("JWT_SECRET_KEY")
			os.Unsetenv("DB_DRIVER")
		})

		require.NoError(t, Load(path))
		assert.Equal(t, "from-file", Get().JWTSecretKey)
		assert.Equal(t, "sqlite", Get().WriteDB().Driver)
	})

	t.Run("missing env file", func(t *testing.T) {
		err := Load(filepath.Join(t.TempDir(), "nope.env"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{JWTSecretKey: "k", JWTAccessTokenTTL: time.Minute, DBDriver: "sqlite"}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.JWTSecretKey = ""
	assert.ErrorContains(t, c.Validate(), "JWT_SECRET_KEY")

	c = valid()
	c.JWTAccessTokenTTL = 0
	assert.ErrorContains(t, c.Validate(), "JWT_ACCESS_TOKEN_TTL")

	c = valid()
	c.DBDriver = "mysql"
	assert.ErrorContains(t, c.Validate(), "DB_DRIVER")
}
