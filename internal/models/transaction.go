// Package models содержит доменные структуры журнала операций,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы операций журнала. Других значений не существует.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction представляет собой одну запись журнала доходов и расходов.
// Запись принадлежит ровно одному пользователю, после создания не
// изменяется и не удаляется. Date — учётная дата операции, она может
// отличаться от CreatedAt, если запись внесена задним числом.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DummyTransaction используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Transaction.
// Сумма и дата приходят в виде строк, чтобы их можно было валидировать и парсить вручную.
type DummyTransaction struct {
	Type        string `json:"type" validate:"required,oneof=income expense"` // income или expense
	Amount      string `json:"amount" validate:"required"`                    // Сумма, строго больше нуля, максимум два знака после точки
	Category    string `json:"category" validate:"required,max=100"`          // Категория операции
	Description string `json:"description" validate:"max=500"`               // Описание (необязательное)
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`  // Учётная дата в формате 2006-01-02
}

// MonthSummary — агрегат журнала за календарный месяц.
// Для месяца без операций оба поля равны нулю.
type MonthSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
