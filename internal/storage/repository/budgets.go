package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// UpsertBudget сохраняет месячный лимит по категории. Повторная установка
// лимита на ту же категорию заменяет предыдущий: на пару (user_id, category)
// действует ограничение уникальности.
func (s *Storage) UpsertBudget(ctx context.Context, budget models.Budget) (int64, error) {
	const op = "storage.UpsertBudget"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO budgets (user_id, category, monthly_limit)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, category)
			  DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		budget.UserID, budget.Category, budget.MonthlyLimit).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListBudgetStatuses возвращает состояние каждого бюджета пользователя:
// лимит и сумму расходов по категории за полуинтервал [from, to) учётных дат.
// Для категории без расходов сумма равна нулю. Остаток вычисляет сервис.
func (s *Storage) ListBudgetStatuses(ctx context.Context, userID int64, from, to time.Time) ([]*models.BudgetStatus, error) {
	const op = "storage.ListBudgetStatuses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT b.category, b.monthly_limit,
			      COALESCE(SUM(t.amount), 0) AS spent
			  FROM budgets b
			  LEFT JOIN transactions t ON t.category = b.category
			      AND t.user_id = b.user_id
			      AND t.type = 'expense'
			      AND t.date >= $2 AND t.date < $3
			  WHERE b.user_id = $1
			  GROUP BY b.category, b.monthly_limit
			  ORDER BY b.category`
	rows, err := s.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.BudgetStatus
	for rows.Next() {
		var item models.BudgetStatus
		if err := rows.Scan(&item.Category, &item.Limit, &item.Spent); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
