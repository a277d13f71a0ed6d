// Package check реализует HTTP-обработчик проверки доступности
// доменного имени.
package check

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

// Handler обрабатывает запросы проверки доступности домена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики проверки домена.
type Service interface {
	Check(ctx context.Context, domainName string) (*models.DomainAvailability, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.domain.check"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	domainName := r.URL.Query().Get("domain")
	res, err := h.service.Check(r.Context(), domainName)
	if err != nil {
		log.Error("failed to check domain", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("domain checked", slog.String("domain", res.Domain), slog.String("status", res.Status))
	render.JSON(w, r, response.StatusOKWithData(res))
}
