// Package middlewarectx содержит HTTP middleware портала: разбор
// bearer-токена с добавлением идентификатора клиента в контекст запроса
// и ограничение частоты запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// ClientID — ключ для идентификатора клиента в контексте.
const ClientID Key = "client_id"

// TokenResolver разбирает bearer-строку в идентификатор клиента.
type TokenResolver interface {
	Resolve(raw string) (string, bool)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет bearer-токен
// в заголовке Authorization.
//
// Если токен распознан, идентификатор клиента добавляется в контекст
// запроса, иначе возвращается HTTP 401 Unauthorized. Просроченный и
// повреждённый токены снаружи неразличимы.
func AuthMiddleware(resolver TokenResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			clientID, ok := resolver.Resolve(tokenStr)
			if !ok {
				log.Error("invalid or expired token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), ClientID, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
