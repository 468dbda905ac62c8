// Package financeledger собирает приложение: хранилище, миграции, кеш,
// сервисы, маршруты и HTTP-сервер с корректной остановкой.
package financeledger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/finance-ledger/internal/cache"
	"github.com/magabrotheeeer/finance-ledger/internal/config"
	"github.com/magabrotheeeer/finance-ledger/internal/migrations"
	adminservice "github.com/magabrotheeeer/finance-ledger/internal/services/admin"
	authservice "github.com/magabrotheeeer/finance-ledger/internal/services/auth"
	budgetservice "github.com/magabrotheeeer/finance-ledger/internal/services/budget"
	ledgerservice "github.com/magabrotheeeer/finance-ledger/internal/services/ledger"
	"github.com/magabrotheeeer/finance-ledger/internal/storage/repository"
)

// App агрегирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создаёт приложение: подключает PostgreSQL, применяет миграции,
// подключает Redis, собирает сервисы и маршруты.
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

	authService := authservice.NewAuthService(db, db, cfg.SessionTTL, logger)
	ledgerService := ledgerservice.NewLedgerService(db, cacheRedis, logger)
	budgetService := budgetservice.NewBudgetService(db, logger)
	adminService := adminservice.NewAdminService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, ledgerService, budgetService, adminService)

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
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		_ = a.db.DB.Close()
		return err
	}
}
