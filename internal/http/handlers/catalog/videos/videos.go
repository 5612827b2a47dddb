// Package videos реализует HTTP-обработчик списка обучающих видео.
package videos

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

// Handler управляет HTTP-запросами списка обучающих видео.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обучающих видео.
type Service interface {
	InstallationVideos(ctx context.Context) ([]*models.InstallationVideo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список обучающих видео
// @Description Возвращает видео по установке оверлеев в порядке отображения.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список видео"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /installation-videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.videos"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	videos, err := h.service.InstallationVideos(r.Context())
	if err != nil {
		log.Error("failed to list installation videos", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list installation videos"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"videos": videos,
	}))
}
