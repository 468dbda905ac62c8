// Package logout реализует HTTP-обработчик отзыва текущей сессии.
package logout

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
)

// Service описывает интерфейс бизнес-логики отзыва сессии.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log        *slog.Logger
	service    Service
	cookieName string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, cookieName string) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		cookieName: cookieName,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Отзывает текущую сессию и очищает cookie. Повторный вызов — no-op.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Сессия отозвана"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, ok := r.Context().Value(middlewarectx.Token).(string)
	if !ok || token == "" {
		log.Error("session token not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthenticated"))
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		log.Error("failed to revoke session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	log.Info("session revoked")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out",
	}))
}
