// Package layouts реализует HTTP-обработчик списка макетов витрины.
package layouts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ovrlab/overlay-hub/internal/http/response"
	"github.com/ovrlab/overlay-hub/internal/lib/sl"
	"github.com/ovrlab/overlay-hub/internal/models"
)

// Handler управляет HTTP-запросами списка макетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики витрины макетов.
type Service interface {
	Layouts(ctx context.Context) ([]*models.Layout, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список макетов
// @Description Возвращает активные макеты оверлеев в порядке отображения.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список макетов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /layouts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.layouts"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	layouts, err := h.service.Layouts(r.Context())
	if err != nil {
		log.Error("failed to list layouts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list layouts"))
		return
	}

	log.Info("layouts listed", slog.Int("count", len(layouts)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"layouts": layouts,
	}))
}
