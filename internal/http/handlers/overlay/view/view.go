// Package view реализует HTTP-обработчик публичного просмотра оверлея.
//
// Handler извлекает публичный токен из URL, разрешает его в конфигурацию
// через бизнес-логику и возвращает конфигурацию в JSON-формате. Если запрос
// сопровождается идентификатором сессии, загрузка страницы захватывает
// сессию просмотра.
package view

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ovrlab/overlay-hub/internal/http/response"
	"github.com/ovrlab/overlay-hub/internal/lib/sl"
	"github.com/ovrlab/overlay-hub/internal/metrics"
	"github.com/ovrlab/overlay-hub/internal/models"
	"github.com/ovrlab/overlay-hub/internal/services/entitlement"
)

// Handler обрабатывает запросы публичного просмотра оверлея по токену.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики разрешения доступа
}

// Service описывает интерфейс бизнес-логики разрешения публичного доступа.
type Service interface {
	ResolvePublicAccess(ctx context.Context, token, sessionID string) (*models.AccessResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Публичный просмотр оверлея
// @Description Разрешает публичный токен в конфигурацию оверлея для OBS. Необязательный sessionId захватывает сессию просмотра.
// @Tags Public
// @Produce  json
// @Param token path string true "Публичный токен"
// @Param sessionId query string false "Идентификатор сессии просмотрщика"
// @Success 200 {object} map[string]any "Конфигурация оверлея"
// @Failure 404 {object} response.ErrorResponse "Токен неизвестен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /public/{token} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.overlay.view"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := chi.URLParam(r, "token")
	sessionID := r.URL.Query().Get("sessionId")

	res, err := h.service.ResolvePublicAccess(r.Context(), token, sessionID)
	if err != nil {
		if errors.Is(err, entitlement.ErrNotFound) {
			log.Info("public token not found")
			metrics.PublicViewRequestsTotal.WithLabelValues("not_found").Inc()
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("layout invalid or expired"))
			return
		}
		log.Error("failed to resolve public access", sl.Err(err))
		metrics.PublicViewRequestsTotal.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve public access"))
		return
	}

	if res.IsExpired {
		metrics.PublicViewRequestsTotal.WithLabelValues("expired").Inc()
	} else {
		metrics.PublicViewRequestsTotal.WithLabelValues("ok").Inc()
	}

	log.Info("public access resolved", slog.String("layout_id", res.LayoutID),
		slog.Bool("is_expired", res.IsExpired))
	render.JSON(w, r, response.OKWithData(res))
}
