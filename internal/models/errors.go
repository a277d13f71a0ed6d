package models

import "errors"

// Таксономия ошибок портала. Сервисы возвращают обёрнутые
// sentinel-ошибки, обработчики разбирают их через errors.Is
// и выбирают HTTP-статус и сообщение.
var (
	// ErrUnauthorized — учётные данные отсутствуют или не распознаны.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation — аргументы запроса не прошли предусловия операции.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — сущность не существует.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied — сущность существует, но принадлежит другому аккаунту.
	ErrAccessDenied = errors.New("access denied")
	// ErrDownstream — биллинг-система или AI-модель вернула ошибку
	// либо недоступна. Не ретраится: биллинг-операции нельзя дублировать.
	ErrDownstream = errors.New("downstream failure")
)
