// Package status реализует HTTP-обработчик состояния бюджетов пользователя
// за текущий календарный месяц.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finance-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finance-ledger/internal/http/response"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Service описывает интерфейс бизнес-логики расчёта состояния бюджетов.
type Service interface {
	Status(ctx context.Context, userID int64) ([]*models.BudgetStatus, error)
}

// Handler управляет HTTP-запросами на чтение состояния бюджетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Состояние бюджетов
// @Description Возвращает лимит, расходы и остаток по каждой категории за текущий месяц.
// @Tags Budgets
// @Produce  json
// @Success 200 {object} map[string]any "Список состояний бюджетов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /budgets/status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.budget.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	statuses, err := h.service.Status(r.Context(), userID)
	if err != nil {
		log.Error("failed to compute budget status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not compute budget status"))
		return
	}

	log.Info("budget status computed", slog.Int("count", len(statuses)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"budgets": statuses,
	}))
}
