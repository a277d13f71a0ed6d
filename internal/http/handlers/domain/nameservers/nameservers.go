// Package nameservers реализует HTTP-обработчик замены NS-записей домена.
//
// Список из менее чем двух или более чем пяти записей отклоняется до
// обращения к биллинг-системе.
package nameservers

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

// Handler обрабатывает запросы смены NS-записей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены NS-записей.
type Service interface {
	UpdateNameservers(ctx context.Context, clientID, domainID string, nameservers []string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить NS-записи домена
// @Description Заменяет список NS-записей домена (от 2 до 5 значений).
// @Tags Domains
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор домена"
// @Param request body models.NameserversRequest true "Новый список NS-записей"
// @Success 200 {object} map[string]any "NS-записи обновлены"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /domains/{id}/nameservers [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.domain.nameservers"
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

	var req models.NameserversRequest
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
	if err := h.service.UpdateNameservers(r.Context(), clientID, domainID, req.Nameservers); err != nil {
		log.Error("failed to update nameservers", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("nameservers updated", slog.String("domain_id", domainID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"nameservers": req.Nameservers,
	}))
}
