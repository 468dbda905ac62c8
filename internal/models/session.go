package models

import "time"

// Session представляет выданную при входе сессию пользователя.
// Токен уникален среди всех сессий; владение токеном до истечения
// срока действия подтверждает личность пользователя.
type Session struct {
	ID        int64     // Идентификатор записи сессии
	UserID    int64     // Пользователь, которому принадлежит сессия
	Token     string    // Опорный токен сессии (уникальный)
	ExpiresAt time.Time // Момент истечения срока действия
	IPAddress string    // Адрес, с которого выполнен вход
	UserAgent string    // Клиент, с которого выполнен вход
}

// SessionIdentity — результат разрешения токена в хранилище:
// личность пользователя вместе с моментом истечения сессии.
// Проверка истечения выполняется на уровне сервиса.
type SessionIdentity struct {
	Identity
	ExpiresAt time.Time
}
