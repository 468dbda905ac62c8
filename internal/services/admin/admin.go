// Package services содержит бизнес-логику административного обзора системы.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// AdminRepository определяет методы чтения данных для обзора.
type AdminRepository interface {
	// ListUsers возвращает всех пользователей системы.
	ListUsers(ctx context.Context) ([]*models.UserInfo, error)
	// CountTransactions возвращает общее количество операций журнала.
	CountTransactions(ctx context.Context) (int64, error)
}

// AdminService собирает сводку для администратора.
type AdminService struct {
	repo AdminRepository
	log  *slog.Logger
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(repo AdminRepository, log *slog.Logger) *AdminService {
	return &AdminService{
		repo: repo,
		log:  log,
	}
}

// Overview возвращает список всех пользователей и общее количество операций.
func (s *AdminService) Overview(ctx context.Context) (*models.AdminOverview, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AdminOverview{
		Users:             users,
		TotalTransactions: total,
	}, nil
}
