// Package token реализует выпуск и разбор учётных данных сессии портала.
//
// Основной формат — подписанный JWT (HS256) с идентификатором клиента в claims.
// Для обратной совместимости со старыми фронтендами поддерживаются два
// legacy-формата: фиксированный префикс, за которым сразу идёт идентификатор
// клиента. Legacy-токены не подписаны и не истекают — реальная проверка
// сессии остаётся за биллинг-системой.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Legacy-префиксы bearer-токенов, оставшиеся от прежних версий портала.
const (
	legacyPrefixMock    = "mock-jwt-token-"
	legacyPrefixSession = "legacy-session-"
)

// Claims описывает данные, хранящиеся в JWT портала.
type Claims struct {
	ClientID             string `json:"client_id"` // Идентификатор клиента в биллинг-системе
	jwt.RegisteredClaims        // Стандартные claims (ExpiresAt, IssuedAt и пр.)
}

// Maker выпускает и проверяет JWT сессии с использованием секретного ключа
// и времени жизни токена (TTL).
type Maker struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт новый Maker на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *Maker {
	return &Maker{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// Generate создаёт JWT для клиента с заданным идентификатором.
func (m *Maker) Generate(clientID string) (string, error) {
	const op = "token.Generate"
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Resolve разбирает bearer-строку и возвращает идентификатор клиента.
//
// Сначала проверяются legacy-префиксы: совпавший префикс с непустым
// остатком даёт идентификатор напрямую. Иначе строка разбирается как
// подписанный JWT. Любая другая строка отклоняется: второй результат
// равен false, без различия «просрочен» и «повреждён».
func (m *Maker) Resolve(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, prefix := range []string{legacyPrefixMock, legacyPrefixSession} {
		if strings.HasPrefix(raw, prefix) {
			id := strings.TrimPrefix(raw, prefix)
			if id == "" {
				return "", false
			}
			return id, true
		}
	}
	claims, err := m.parse(raw)
	if err != nil || claims.ClientID == "" {
		return "", false
	}
	return claims.ClientID, true
}

func (m *Maker) parse(tokenStr string) (*Claims, error) {
	const op = "token.parse"
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
