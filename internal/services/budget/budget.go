// Package services содержит бизнес-логику месячных бюджетов по категориям.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/finance-ledger/internal/lib/money"
	"github.com/magabrotheeeer/finance-ledger/internal/lib/month"
	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// BudgetRepository определяет методы для работы с бюджетами в хранилище.
type BudgetRepository interface {
	// UpsertBudget сохраняет лимит по категории и возвращает ID записи.
	UpsertBudget(ctx context.Context, budget models.Budget) (int64, error)
	// ListBudgetStatuses возвращает лимиты и суммы расходов за период.
	ListBudgetStatuses(ctx context.Context, userID int64, from, to time.Time) ([]*models.BudgetStatus, error)
}

// BudgetService реализует установку лимитов и расчёт их состояния.
type BudgetService struct {
	repo BudgetRepository
	log  *slog.Logger
}

// NewBudgetService создает новый экземпляр BudgetService.
func NewBudgetService(repo BudgetRepository, log *slog.Logger) *BudgetService {
	return &BudgetService{
		repo: repo,
		log:  log,
	}
}

// SetLimit устанавливает месячный лимит расходов по категории.
// Повторная установка на ту же категорию заменяет прежний лимит.
func (s *BudgetService) SetLimit(ctx context.Context, userID int64, req models.DummyBudget) (int64, error) {
	limit, err := money.Parse(req.MonthlyLimit)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	budget := models.Budget{
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: limit,
	}
	id, err := s.repo.UpsertBudget(ctx, budget)
	if err != nil {
		return 0, err
	}
	s.log.Info("set budget limit", slog.Int64("id", id), slog.String("category", req.Category))
	return id, nil
}

// Status возвращает состояние каждого бюджета пользователя за текущий
// календарный месяц: лимит, расходы по категории и остаток.
// Месяц определяется по настоящему моменту на каждом вызове.
// Отрицательный остаток сигнализирует о перерасходе и ошибкой не является.
func (s *BudgetService) Status(ctx context.Context, userID int64) ([]*models.BudgetStatus, error) {
	from, to := month.BoundsAt(time.Now())
	statuses, err := s.repo.ListBudgetStatuses(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, st := range statuses {
		st.Remaining = st.Limit.Sub(st.Spent)
	}
	return statuses, nil
}
