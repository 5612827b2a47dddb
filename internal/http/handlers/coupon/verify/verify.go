// Package verify реализует HTTP-обработчик проверки купона.
//
// Handler принимает JSON-запрос с кодом купона и контекстом покупки,
// валидирует его и возвращает применимую скидку. Проверка не имеет
// побочных эффектов: счётчик использований купона не меняется.
package verify

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
	"github.com/ovrlab/overlay-hub/internal/services/coupon"
)

// Handler управляет HTTP-запросами проверки купонов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики купонов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики проверки купона.
type Service interface {
	Verify(ctx context.Context, code string, purchase models.CouponContext) (*models.Discount, error)
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
// @Summary Проверить купон
// @Description Проверяет код купона против контекста покупки и возвращает применимую скидку. Счётчик использований не меняется.
// @Tags Coupons
// @Accept  json
// @Produce  json
// @Param request body models.DummyVerifyCoupon true "Код купона и контекст покупки"
// @Success 200 {object} map[string]any "Применимая скидка"
// @Failure 400 {object} response.ErrorResponse "Купон не применим, просрочен или исчерпан"
// @Failure 404 {object} response.ErrorResponse "Код неизвестен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coupons/verify [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coupon.verify"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyVerifyCoupon
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

	purchase := models.CouponContext{
		LayoutID:  req.LayoutID,
		PlanID:    req.PlanID,
		ProductID: req.ProductID,
	}

	discount, err := h.service.Verify(r.Context(), req.Code, purchase)
	if err != nil {
		writeVerifyError(w, r, log, err)
		return
	}

	metrics.CouponVerificationsTotal.WithLabelValues("ok").Inc()
	log.Info("coupon verified", slog.String("code", discount.Code))
	render.JSON(w, r, response.OKWithData(discount))
}

// writeVerifyError переводит ошибки проверки купона в HTTP-статусы.
// Неизвестный код отличим от известного, но неприменимого.
func writeVerifyError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, coupon.ErrNotFound):
		log.Info("coupon not found")
		metrics.CouponVerificationsTotal.WithLabelValues("not_found").Inc()
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("invalid coupon code"))
	case errors.Is(err, coupon.ErrExpired):
		log.Info("coupon expired")
		metrics.CouponVerificationsTotal.WithLabelValues("expired").Inc()
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("coupon expired"))
	case errors.Is(err, coupon.ErrLimitReached):
		log.Info("coupon usage limit reached")
		metrics.CouponVerificationsTotal.WithLabelValues("limit_reached").Inc()
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("coupon usage limit reached"))
	case errors.Is(err, coupon.ErrNotApplicable):
		log.Info("coupon not applicable")
		metrics.CouponVerificationsTotal.WithLabelValues("not_applicable").Inc()
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("coupon is not applicable to this purchase"))
	default:
		log.Error("failed to verify coupon", sl.Err(err))
		metrics.CouponVerificationsTotal.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not verify coupon"))
	}
}
