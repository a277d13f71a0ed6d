// Package lock реализует HTTP-обработчик переключения registrar lock.
// Локальное состояние отражается только после подтверждения
// биллинг-системой.
package lock

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hosting-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Handler обрабатывает запросы переключения registrar lock.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики registrar lock.
type Service interface {
	SetLock(ctx context.Context, clientID, domainID string, locked bool) (bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.domain.lock"
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

	var req models.LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	domainID := chi.URLParam(r, "id")
	newState, err := h.service.SetLock(r.Context(), clientID, domainID, *req.Locked)
	if err != nil {
		log.Error("failed to set registrar lock", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("registrar lock changed", slog.String("domain_id", domainID), slog.Bool("locked", newState))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"locked": newState,
	}))
}
