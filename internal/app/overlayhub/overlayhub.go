// Package overlayhub собирает HTTP-приложение хаба оверлеев:
// хранилище, миграции, кеш, сервисы и сервер.
package overlayhub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/ovrlab/overlay-hub/internal/cache"
	"github.com/ovrlab/overlay-hub/internal/config"
	"github.com/ovrlab/overlay-hub/internal/migrations"
	catalogservice "github.com/ovrlab/overlay-hub/internal/services/catalog"
	checkoutservice "github.com/ovrlab/overlay-hub/internal/services/checkout"
	couponservice "github.com/ovrlab/overlay-hub/internal/services/coupon"
	entitlementservice "github.com/ovrlab/overlay-hub/internal/services/entitlement"
	sessionleaseservice "github.com/ovrlab/overlay-hub/internal/services/sessionlease"
	supportservice "github.com/ovrlab/overlay-hub/internal/services/support"
	"github.com/ovrlab/overlay-hub/internal/storage/repository"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение: подключает базу, прогоняет миграции,
// поднимает кеш и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	leaseManager := sessionleaseservice.NewManager(db, logger)
	entitlementService := entitlementservice.New(db, leaseManager, logger)
	couponVerifier := couponservice.NewVerifier(db, logger)
	checkoutService := checkoutservice.New(couponVerifier, logger)
	catalogService := catalogservice.New(db, cacheRedis, logger)
	supportService := supportservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Entitlement: entitlementService,
		Coupons:     couponVerifier,
		Checkout:    checkoutService,
		Catalog:     catalogService,
		Support:     supportService,
		Readiness:   db,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает сервер и блокируется до ошибки либо отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.String("error", closeErr.Error()))
		}
		return err
	}
}
