// Package summary реализует HTTP-обработчик месячного агрегата журнала.
//
// Возвращает суммы доходов и расходов текущего пользователя за текущий
// календарный месяц; месяц без операций даёт нулевые суммы.
package summary

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finance-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/finance-ledger/internal/http/response"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Service описывает интерфейс бизнес-логики месячной агрегации.
type Service interface {
	MonthlySummary(ctx context.Context, userID int64, year int, m time.Month) (*models.MonthSummary, error)
}

// Handler управляет HTTP-запросами на чтение месячного агрегата.
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
// @Summary Месячный агрегат
// @Description Возвращает суммы доходов и расходов за текущий календарный месяц.
// @Tags Transactions
// @Produce  json
// @Success 200 {object} map[string]any "Суммы за месяц"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /transactions/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.summary"
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

	now := time.Now().UTC()
	summary, err := h.service.MonthlySummary(r.Context(), userID, now.Year(), now.Month())
	if err != nil {
		log.Error("failed to compute summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not compute summary"))
		return
	}

	log.Info("summary computed")
	render.JSON(w, r, response.OKWithData(summary))
}
