// Package recommend реализует HTTP-обработчик подбора тарифного плана
// по анкете пользователя.
package recommend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hosting-portal/internal/http/response"
	"github.com/magabrotheeeer/hosting-portal/internal/lib/sl"
	"github.com/magabrotheeeer/hosting-portal/internal/models"
	"github.com/magabrotheeeer/hosting-portal/internal/services/advisor"
)

// Handler обрабатывает запросы рекомендации плана.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики рекомендации.
type Service interface {
	Recommend(ctx context.Context, req models.RecommendRequest) (*advisor.Recommendation, error)
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
	const op = "handlers.advisor.recommend"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RecommendRequest
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

	rec, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		log.Error("failed to build recommendation", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("recommendation built", slog.String("product_id", rec.ProductID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"recommendation": rec,
	}))
}
