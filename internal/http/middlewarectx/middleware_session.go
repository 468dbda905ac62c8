// Package middlewarectx содержит HTTP middleware для проверки сессий.
//
// SessionMiddleware извлекает токен сессии из cookie или заголовка
// Authorization, разрешает его через сервис аутентификации и в случае
// успеха добавляет в контекст личность пользователя для обработчиков.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/finance-ledger/internal/http/response"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// UserID — ключ для ID пользователя в контексте
	UserID Key = "user_id"
	// IsAdmin — ключ для признака администратора, зафиксированного при входе.
	// Административная проверка это значение не использует, см. AdminMiddleware.
	IsAdmin Key = "is_admin"
	// Token — ключ для токена текущей сессии (нужен обработчику logout)
	Token Key = "session_token"
)

// Resolver описывает интерфейс сервиса для разрешения токена сессии.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет токен сессии.
//
// Токен берётся из cookie с именем cookieName, при его отсутствии —
// из заголовка Authorization с префиксом Bearer. Если сессия активна,
// личность пользователя попадает в контекст запроса, иначе возвращается
// 401 Unauthorized. Истёкшая сессия в ответе отличима от отсутствующей.
func SessionMiddleware(resolver Resolver, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := tokenFromRequest(r, cookieName)
			if token == "" {
				log.Info("missing session token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthenticated"))
				return
			}

			identity, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, models.ErrSessionExpired):
					log.Info("session expired")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("session expired"))
				case errors.Is(err, models.ErrUnauthenticated):
					log.Info("unknown session token")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("unauthenticated"))
				default:
					log.Error("failed to resolve session", sl.Err(err))
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.Error("internal error"))
				}
				return
			}

			ctx := context.WithValue(r.Context(), User, identity.Username)
			ctx = context.WithValue(ctx, UserID, identity.UserID)
			ctx = context.WithValue(ctx, IsAdmin, identity.IsAdmin)
			ctx = context.WithValue(ctx, Token, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest извлекает токен сессии из cookie или заголовка Authorization.
func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
