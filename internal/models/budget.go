package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget представляет месячный лимит расходов пользователя по одной категории.
// На пару (пользователь, категория) существует не больше одного лимита.
type Budget struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DummyBudget используется для приёма данных из JSON-запроса на установку лимита.
type DummyBudget struct {
	Category     string `json:"category" validate:"required,max=100"` // Категория расходов
	MonthlyLimit string `json:"monthly_limit" validate:"required"`    // Лимит, строго больше нуля
}

// BudgetStatus — состояние одного бюджета за текущий календарный месяц:
// лимит, сумма расходов по категории и остаток. Отрицательный Remaining
// означает перерасход и ошибкой не является.
type BudgetStatus struct {
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}
