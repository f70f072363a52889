package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brit-matcher/config"
	httpHandler "brit-matcher/internal/adapter/http/handler"
	badgerStorage "brit-matcher/internal/adapter/storage/badger"
	memStorage "brit-matcher/internal/adapter/storage/memory"
	pgStorage "brit-matcher/internal/adapter/storage/postgres"
	redisStorage "brit-matcher/internal/adapter/storage/redis"
	"brit-matcher/internal/core/ports"
	"brit-matcher/internal/service"
	"brit-matcher/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BRIT_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Str("network", cfg.Matcher.Network).
		Msg("Starting BRIT Matcher")

	ctx := context.Background()

	// Persistent store
	backend, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer backend.close()

	healthCheckers := backend.health

	// Optional Redis: assignment cache and rate limits
	var (
		cache          ports.AssignmentCache
		rateLimitStore *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		cache = redisStorage.NewAssignmentCache(rdb, cfg.Redis.AssignmentTTL)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb, clock.NewDefaultClock())
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: no assignment cache, no rate limiting")
	}

	// Key material
	pgpSvc, err := service.LoadPGPService(cfg.Matcher.KeyringPath, []byte(cfg.Matcher.Passphrase))
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Matcher.KeyringPath).Msg("Failed to load matcher keyring")
	}
	validator, err := service.NewAddressValidator(cfg.Matcher.Network)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize address validator")
	}

	// Core services
	clk := clock.NewDefaultClock()
	tracker := service.NewEncounterTrackerService(backend.store, clk, logger.Component(log, "tracker"))
	rotation := service.NewAddressRotationService(
		backend.store,
		backend.store,
		cache,
		cfg.Matcher.AddressesPerDay,
		nil,
		logger.Component(log, "rotation"),
	)
	matcherSvc := service.NewMatcherService(
		pgpSvc,
		service.NewAESResponseCipher(),
		tracker,
		rotation,
		clk,
		logger.Component(log, "matcher"),
	)
	adminSvc := service.NewAdminService(backend.store, validator, cfg.Matcher.AddressesPerDay, logger.Component(log, "admin"))
	auditSvc := service.NewAuditService(backend.audit, logger.Component(log, "audit"))

	var tokenSvc ports.TokenService
	if cfg.JWT.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	} else {
		log.Warn().Msg("jwt.secret not set: admin API disabled")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Matcher:        matcherSvc,
		Admin:          adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// storeBackend is the opened persistence layer for one store driver.
type storeBackend struct {
	store  ports.Store
	audit  ports.AuditRepository // nil unless the driver persists audit logs
	health []ports.HealthChecker
	close  func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storeBackend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storeBackend{
			store:  pgStorage.NewStore(pool),
			audit:  pgStorage.NewAuditRepo(pool),
			health: []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			close:  pool.Close,
		}, nil

	case config.StoreDriverBadger:
		db, err := badgerStorage.Open(cfg.Store.BadgerDir)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dir", cfg.Store.BadgerDir).Msg("Badger store opened")
		return &storeBackend{
			store:  db,
			health: []ports.HealthChecker{db},
			close: func() {
				if err := db.Close(); err != nil {
					log.Error().Err(err).Msg("closing badger store")
				}
			},
		}, nil

	case config.StoreDriverMemory:
		log.Warn().Msg("Memory store selected: encounter links and assignments are lost on restart")
		return &storeBackend{store: memStorage.NewStore(), close: func() {}}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
