package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/finance-ledger/internal/models"
)

// CreateTransaction вставляет новую запись журнала и возвращает её ID.
// Записи только добавляются: обновления и удаления в журнале не предусмотрены.
func (s *Storage) CreateTransaction(ctx context.Context, tx models.Transaction) (int64, error) {
	const op = "storage.CreateTransaction"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO transactions (user_id, type, amount, category, description, date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Description, tx.Date).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListRecentTransactions возвращает последние операции пользователя:
// сначала по убыванию учётной даты, при равенстве — по убыванию времени создания.
func (s *Storage) ListRecentTransactions(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	const op = "storage.ListRecentTransactions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, type, amount, category, description, date, created_at
			  FROM transactions
			  WHERE user_id = $1
			  ORDER BY date DESC, created_at DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Amount,
			&item.Category, &item.Description, &item.Date, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumByTypeForPeriod суммирует операции пользователя по типу за полуинтервал
// [from, to) учётных дат. Агрегация идёт по учётной дате операции, а не по
// времени создания записи: операции, внесённые задним числом, попадают в
// свой месяц.
func (s *Storage) SumByTypeForPeriod(ctx context.Context, userID int64, from, to time.Time) (*models.MonthSummary, error) {
	const op = "storage.SumByTypeForPeriod"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT type, COALESCE(SUM(amount), 0)
			  FROM transactions
			  WHERE user_id = $1 AND date >= $2 AND date < $3
			  GROUP BY type`
	rows, err := s.DB.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	summary := &models.MonthSummary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for rows.Next() {
		var txType string
		var total decimal.Decimal
		if err := rows.Scan(&txType, &total); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		switch txType {
		case models.TypeIncome:
			summary.Income = total
		case models.TypeExpense:
			summary.Expense = total
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summary, nil
}

// ListAllTransactions возвращает полную историю операций пользователя
// для выгрузки, в том же порядке, что и список последних операций.
func (s *Storage) ListAllTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	const op = "storage.ListAllTransactions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, type, amount, category, description, date, created_at
			  FROM transactions
			  WHERE user_id = $1
			  ORDER BY date DESC, created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Amount,
			&item.Category, &item.Description, &item.Date, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountTransactions возвращает общее количество операций в системе.
func (s *Storage) CountTransactions(ctx context.Context) (int64, error) {
	const op = "storage.CountTransactions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
