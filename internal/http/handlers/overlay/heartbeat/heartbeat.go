// Package heartbeat реализует HTTP-обработчик продления сессии просмотра.
//
// Handler принимает JSON-запрос с токеном и идентификатором сессии,
// валидирует их и продлевает сессию через бизнес-логику. Если сессия
// была перехвачена другой загрузкой страницы, возвращается конфликт.
package heartbeat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ovrlab/overlay-hub/internal/http/response"
	"github.com/ovrlab/overlay-hub/internal/lib/sl"
	"github.com/ovrlab/overlay-hub/internal/metrics"
	"github.com/ovrlab/overlay-hub/internal/models"
	"github.com/ovrlab/overlay-hub/internal/services/entitlement"
	"github.com/ovrlab/overlay-hub/internal/services/sessionlease"
)

// Handler управляет HTTP-запросами продления сессии просмотра.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики сессий просмотра
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики heartbeat.
type Service interface {
	Heartbeat(ctx context.Context, token, sessionID string) error
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
// @Summary Продлить сессию просмотра
// @Description Обновляет отметку heartbeat активной сессии. Конфликт означает, что сессия перехвачена другой загрузкой страницы.
// @Tags Public
// @Accept  json
// @Produce  json
// @Param request body models.DummyHeartbeat true "Токен и идентификатор сессии"
// @Success 200 {object} response.Response "Сессия продлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Токен неизвестен"
// @Failure 409 {object} response.ErrorResponse "Сессия перехвачена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /public/heartbeat [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.overlay.heartbeat"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyHeartbeat
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

	if err := h.service.Heartbeat(r.Context(), req.Token, req.SessionID); err != nil {
		switch {
		case errors.Is(err, entitlement.ErrNotFound):
			log.Info("public token not found")
			metrics.HeartbeatsTotal.WithLabelValues("not_found").Inc()
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("token not found"))
		case errors.Is(err, sessionlease.ErrLockLost):
			log.Info("session lock lost", slog.String("session_id", req.SessionID))
			metrics.HeartbeatsTotal.WithLabelValues("lock_lost").Inc()
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("session taken over"))
		default:
			log.Error("failed to renew session", sl.Err(err))
			metrics.HeartbeatsTotal.WithLabelValues("error").Inc()
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not renew session"))
		}
		return
	}

	metrics.HeartbeatsTotal.WithLabelValues("ok").Inc()
	render.JSON(w, r, response.OKWithData(map[string]any{
		"renewed": true,
	}))
}
