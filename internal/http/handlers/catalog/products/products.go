package products

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/services/billing"
)

// Handler обрабатывает запросы публичного каталога продуктов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога.
type Service interface {
	Products(ctx context.Context, groupID string) (*billing.Catalog, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.products"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	groupID := r.URL.Query().Get("gid")
	catalog, err := h.service.Products(r.Context(), groupID)
	if err != nil {
		log.Error("failed to load catalog", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("catalog loaded", slog.Int("count", len(catalog.Products)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": catalog.Products,
		"groups":   catalog.Groups,
	}))
}
