package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hosting-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/services/advisor"
)

// Handler обрабатывает запросы сводки аккаунта с рекомендацией допродажи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводки аккаунта.
type Service interface {
	Summary(ctx context.Context, clientID string) (*advisor.AccountSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.advisor.summary"
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

	res, err := h.service.Summary(r.Context(), clientID)
	if err != nil {
		log.Error("failed to build account summary", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"summary": res.Summary,
		"upsell":  res.Upsell,
	}))
}
