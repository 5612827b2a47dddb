// Package settings реализует HTTP-обработчик публичных настроек витрины.
package settings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ovrlab/overlay-hub/internal/http/response"
	"github.com/ovrlab/overlay-hub/internal/lib/sl"
)

// Handler управляет HTTP-запросами чтения настроек.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики настроек витрины.
type Service interface {
	Settings(ctx context.Context) (map[string]string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Публичные настройки
// @Description Возвращает глобальные настройки витрины как пары ключ-значение.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Настройки"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /settings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.settings"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	settings, err := h.service.Settings(r.Context())
	if err != nil {
		log.Error("failed to list settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list settings"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"settings": settings,
	}))
}
