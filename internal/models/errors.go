package models

import "errors"

// Ошибки доменного уровня. Хранилище и сервисы оборачивают их через
// fmt.Errorf("%s: %w", ...), на HTTP-границе они распознаются errors.Is
// и превращаются в соответствующий статус ответа. Любая другая ошибка
// считается отказом хранилища и отдаётся как 500.
var (
	// ErrDuplicateIdentity — имя пользователя или email уже заняты.
	ErrDuplicateIdentity = errors.New("username or email already exists")
	// ErrWeakPassword — пароль короче минимально допустимой длины.
	ErrWeakPassword = errors.New("password is too weak")
	// ErrInvalidCredentials — неверная пара логин/пароль. Несуществующий
	// пользователь и неверный пароль снаружи неразличимы.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated — токен сессии отсутствует или неизвестен.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrSessionExpired — срок действия сессии истёк.
	ErrSessionExpired = errors.New("session expired")
	// ErrForbidden — операция доступна только администратору.
	ErrForbidden = errors.New("admin access required")
	// ErrValidation — некорректные поля операции или бюджета.
	ErrValidation = errors.New("validation failed")
)
