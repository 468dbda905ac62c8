// Package services содержит логику бизнес-уровня для работы с пользователями,
// сессиями и аутентификацией.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/finance-ledger/internal/lib/password"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// Минимальная длина пароля при регистрации.
const minPasswordLen = 6

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByUsername возвращает пользователя по имени
	// или ErrInvalidCredentials, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// SessionRepository описывает контракт для работы с сессиями в базе данных.
type SessionRepository interface {
	// CreateSession сохраняет новую сессию и возвращает её ID.
	CreateSession(ctx context.Context, session models.Session) (int64, error)
	// ResolveToken возвращает личность и срок действия сессии по токену.
	ResolveToken(ctx context.Context, token string) (*models.SessionIdentity, error)
	// DeleteSession удаляет сессию по токену, возвращает число удалённых строк.
	DeleteSession(ctx context.Context, token string) (int, error)
}

// AuthService отвечает за регистрацию, вход, разрешение и отзыв сессий.
type AuthService struct {
	users      UserRepository
	sessions   SessionRepository
	sessionTTL time.Duration
	log        *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionRepository, sessionTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пароль короче минимальной длины отклоняется до обращения к хранилищу;
// занятые имя или email приходят из хранилища как ErrDuplicateIdentity,
// при этом частичная запись не создаётся.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (int64, error) {
	if len(rawPassword) < minPasswordLen {
		return 0, fmt.Errorf("%w: minimum %d characters", models.ErrWeakPassword, minPasswordLen)
	}
	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return 0, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsAdmin:      false, // права администратора назначаются вне сервиса
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}
	s.log.Info("registered new user", slog.Int64("id", id))
	return id, nil
}

// Login проверяет пароль пользователя и выдаёт новую сессию.
// Несуществующее имя и неверный пароль наружу выглядят одинаково:
// оба случая — ErrInvalidCredentials. Неудачный вход побочных эффектов
// не имеет.
func (s *AuthService) Login(ctx context.Context, username, rawPassword, ip, userAgent string) (string, *models.Identity, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if err := password.Verify(user.PasswordHash, rawPassword); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if _, err := s.sessions.CreateSession(ctx, session); err != nil {
		return "", nil, err
	}

	s.log.Info("issued new session", slog.String("username", username))
	identity := &models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	return token, identity, nil
}

// Resolve возвращает личность по токену сессии. Неизвестный токен —
// ErrUnauthenticated; токен с истёкшим сроком — ErrSessionExpired,
// при этом сессия удаляется лениво, отдельной чистки по расписанию нет.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	si, err := s.sessions.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !time.Now().UTC().Before(si.ExpiresAt) {
		if _, err := s.sessions.DeleteSession(ctx, token); err != nil {
			s.log.Warn("failed to delete expired session", slog.Any("err", err))
		}
		return nil, models.ErrSessionExpired
	}
	return &si.Identity, nil
}

// Logout отзывает сессию по токену. Повторный отзыв — no-op:
// операция идемпотентна и не затрагивает другие сессии пользователя.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	count, err := s.sessions.DeleteSession(ctx, token)
	if err != nil {
		return err
	}
	if count == 0 {
		s.log.Info("logout for unknown or already revoked token")
	}
	return nil
}

// IsAdmin заново читает текущий флаг администратора из хранилища.
// Значение, сохранённое в сессии при входе, могло устареть, поэтому
// решение о доступе всегда принимается по свежим данным.
func (s *AuthService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
