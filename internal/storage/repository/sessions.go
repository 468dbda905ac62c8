package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// CreateSession сохраняет новую сессию пользователя и возвращает её ID.
func (s *Storage) CreateSession(ctx context.Context, session models.Session) (int64, error) {
	const op = "storage.CreateSession"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO user_sessions (user_id, session_token, expires_at, ip_address, user_agent)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		session.UserID, session.Token, session.ExpiresAt,
		session.IPAddress, session.UserAgent).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ResolveToken возвращает личность пользователя по токену сессии вместе
// с моментом её истечения. Неизвестный токен превращается в
// ErrUnauthenticated; сама проверка истечения выполняется сервисом.
func (s *Storage) ResolveToken(ctx context.Context, token string) (*models.SessionIdentity, error) {
	const op = "storage.ResolveToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.id, u.username, u.is_admin, s.expires_at
			  FROM user_sessions s
			  JOIN users u ON u.id = s.user_id
			  WHERE s.session_token = $1`
	var si models.SessionIdentity
	row := s.DB.QueryRowContext(ctx, query, token)
	if err := row.Scan(&si.UserID, &si.Username, &si.IsAdmin, &si.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &si, nil
}

// DeleteSession удаляет сессию по токену и возвращает количество удалённых
// строк. Повторное удаление того же токена — no-op, не ошибка.
func (s *Storage) DeleteSession(ctx context.Context, token string) (int, error) {
	const op = "storage.DeleteSession"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM user_sessions WHERE session_token = $1`
	result, err := s.DB.ExecContext(ctx, query, token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
