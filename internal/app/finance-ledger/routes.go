// Package financeledger предоставляет маршруты для основного приложения.
package financeledger

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/finance-ledger/internal/config"
	adminoverview "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/admin/overview"
	"github.com/magabrotheeeer/finance-ledger/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/finance-ledger/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/finance-ledger/internal/http/handlers/auth/register"
	budgetcreate "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/budget/create"
	budgetstatus "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/budget/status"
	"github.com/magabrotheeeer/finance-ledger/internal/http/handlers/health"
	txcreate "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/transaction/create"
	txexport "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/transaction/export"
	txlist "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/transaction/list"
	txsummary "github.com/magabrotheeeer/finance-ledger/internal/http/handlers/transaction/summary"
	"github.com/magabrotheeeer/finance-ledger/internal/http/middlewarectx"
	adminservice "github.com/magabrotheeeer/finance-ledger/internal/services/admin"
	authservice "github.com/magabrotheeeer/finance-ledger/internal/services/auth"
	budgetservice "github.com/magabrotheeeer/finance-ledger/internal/services/budget"
	ledgerservice "github.com/magabrotheeeer/finance-ledger/internal/services/ledger"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService, ledgerService *ledgerservice.LedgerService,
	budgetService *budgetservice.BudgetService, adminService *adminservice.AdminService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService, cfg.CookieName, cfg.SessionTTL).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с проверкой сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, cfg.CookieName, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService, cfg.CookieName).ServeHTTP)
			r.Post("/transactions", txcreate.New(logger, ledgerService).ServeHTTP)
			r.Get("/transactions/recent", txlist.New(logger, ledgerService).ServeHTTP)
			r.Get("/transactions/summary", txsummary.New(logger, ledgerService).ServeHTTP)
			r.Get("/transactions/export", txexport.New(logger, ledgerService).ServeHTTP)
			r.Post("/budgets", budgetcreate.New(logger, budgetService).ServeHTTP)
			r.Get("/budgets/status", budgetstatus.New(logger, budgetService).ServeHTTP)

			// Административная группа: роль проверяется по базе на каждом запросе
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(authService, logger))
				r.Get("/admin/overview", adminoverview.New(logger, adminService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
