// Package profile реализует HTTP-обработчик чтения профиля аккаунта.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hosting-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Handler обрабатывает запросы чтения профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Profile(ctx context.Context, clientID string) (*models.Account, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.profile"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	clientID, ok := r.Context().Value(middlewarectx.ClientID).(string)
	if !ok || clientID == "" {
		log.Error("client id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	acc, err := h.service.Profile(r.Context(), clientID)
	if err != nil {
		log.Error("failed to read profile", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"account": acc,
	}))
}
