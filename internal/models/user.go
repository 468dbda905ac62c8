// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля, в открытом виде пароль не хранится
	IsAdmin      bool      // Признак администратора
	CreatedAt    time.Time // Дата создания учётной записи
}

// Identity — разрешённая личность запроса, полученная из активной сессии.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

// UserInfo — публичные данные пользователя для административного обзора.
type UserInfo struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminOverview — сводка для администратора: все пользователи системы
// и общее количество операций журнала.
type AdminOverview struct {
	Users             []*UserInfo `json:"users"`
	TotalTransactions int64       `json:"total_transactions"`
}
