package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zha7nea/callcenter/internal/auth"
	"github.com/zha7nea/callcenter/internal/config"
	"github.com/zha7nea/callcenter/internal/handlers"
	"github.com/zha7nea/callcenter/internal/repository"
	"github.com/zha7nea/callcenter/internal/services"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
	"github.com/zha7nea/callcenter/pkg/logger"
	"github.com/zha7nea/callcenter/pkg/pg"
	"github.com/zha7nea/callcenter/pkg/prom"
	"github.com/zha7nea/callcenter/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	logger.SetLevel(config.Get().LogLevel)
	logger.Info("starting api", "version", version, "commit", commit, "date", date, "env", config.Get().AppEnv)

	if addr := config.Get().AppDebugMetricsAddr; addr != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
			logger.Error("failed registering metrics", "error", err)
			return
		}
		go prom.ListenAndServer(addr, config.Get().AppDebugMetricsURI)
	}

	// transport (tcp for now)
	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.RecoverMiddleware)
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.MetricsMiddleware(prom.ObserveHTTPRequest))
	s.Use(xhttp.TimeoutMiddleware(config.Get().HttpRequestTimeout))
	s.Use(xhttp.CompressMiddleware(6))
	s.Router = xhttp.CreateDefaultRouter()

	db, err := pg.CreateReadWrite(config.Get().ReadDB(), config.Get().WriteDB(), config.Get().IsDev())
	if err != nil {
		logger.Error("failed connecting to database", "error", err, "driver", config.Get().DBDriver)
		return
	}
	if config.Get().WriteDB().IsSQLite() {
		if err := repository.AutoMigrate(context.Background(), db); err != nil {
			logger.Error("failed migrating sqlite database", "error", err)
			return
		}
	}

	// the denylist is optional, without redis tokens live until they expire
	var denylist services.TokenDenylist
	var pingers []services.Pinger
	if config.Get().RedisAddr != "" {
		redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
			Addrs:      []string{config.Get().RedisAddr},
			ClientName: "default",
			DB:         config.Get().RedisDatabase,
			Username:   config.Get().RedisUsername,
			Password:   config.Get().RedisPassword,
		})
		if err != nil {
			logger.Error("failed connecting to redis", "error", err)
			return
		}
		denylist = auth.NewRedisDenylist(redisAdap)
		pingers = append(pingers, redisAdap)
	} else {
		logger.Warn("REDIS_ADDR is empty, token revocation disabled")
	}

	customerRepo := repository.NewCustomerRepository(db)
	callRepo := repository.NewCustomerCallRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokens := auth.NewTokenIssuer(auth.TokenConfig{
		Secret: []byte(config.Get().JWTSecretKey),
		Issuer: config.Get().JWTIssuer,
		TTL:    config.Get().JWTAccessTokenTTL,
	})

	// services
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(config.Get().BcryptCost), tokens, denylist)
	customerService := services.NewCustomerService(customerRepo, callRepo)
	callService := services.NewCustomerCallService(callRepo)
	healthService := services.NewHealthService(db, pingers...)

	// handlers
	guard := handlers.NewGuard(authService)
	handlers.RegisterHomeRoutes(s.Router)
	handlers.RegisterHealthRoutes(s.Router, handlers.NewHealthHandler(healthService))
	handlers.RegisterAuthRoutes(s.Router, handlers.NewAuthHandler(authService), guard)
	handlers.RegisterCustomerRoutes(s.Router, handlers.NewCustomerHandler(customerService), guard)
	handlers.RegisterCustomerCallRoutes(s.Router, handlers.NewCustomerCallHandler(callService), guard)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, "--env=") {
			path := strings.TrimPrefix(v, "--env=")
			if _, err := os.Stat(path); err != nil {
				logger.Error("failed to open the passed env file", "path", path, "error", err)
				return ""
			}
			return path
		}
	}
	return ""
}
