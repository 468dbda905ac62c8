// Package overview реализует HTTP-обработчик административной сводки:
// список всех пользователей и общее количество операций журнала.
// Маршрут защищён AdminMiddleware, который заново проверяет роль по базе.
package overview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finance-ledger/internal/http/response"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Service описывает интерфейс бизнес-логики сводки.
type Service interface {
	Overview(ctx context.Context) (*models.AdminOverview, error)
}

// Handler управляет HTTP-запросами на чтение сводки.
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
// @Summary Административная сводка
// @Description Возвращает всех пользователей и общее количество операций. Только для администраторов.
// @Tags Admin
// @Produce  json
// @Success 200 {object} map[string]any "Сводка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/overview [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.overview"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	overview, err := h.service.Overview(r.Context())
	if err != nil {
		log.Error("failed to build admin overview", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build overview"))
		return
	}

	log.Info("admin overview built", slog.Int("users", len(overview.Users)))
	render.JSON(w, r, response.OKWithData(overview))
}
