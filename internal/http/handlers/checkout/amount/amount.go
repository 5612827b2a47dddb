// Package amount реализует HTTP-обработчик расчёта суммы заказа.
//
// Handler принимает JSON-запрос с базовой ценой, необязательным кодом купона
// и контекстом покупки, и возвращает итоговую сумму в минорных единицах,
// пригодную для передачи платёжному шлюзу.
package amount

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
	"github.com/ovrlab/overlay-hub/internal/models"
	"github.com/ovrlab/overlay-hub/internal/services/coupon"
)

// Handler управляет HTTP-запросами расчёта суммы заказа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики расчёта суммы
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики расчёта суммы заказа.
type Service interface {
	ComputeOrderAmount(ctx context.Context, basePriceMajor float64, code string, purchase models.CouponContext) (int64, error)
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
// @Summary Рассчитать сумму заказа
// @Description Считает итоговую сумму заказа в минорных единицах валюты с учётом купона.
// @Tags Checkout
// @Accept  json
// @Produce  json
// @Param request body models.DummyCheckoutAmount true "Базовая цена, купон и контекст покупки"
// @Success 200 {object} map[string]any "Итоговая сумма в минорных единицах"
// @Failure 400 {object} response.ErrorResponse "Купон не применим, просрочен или исчерпан"
// @Failure 404 {object} response.ErrorResponse "Код купона неизвестен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /checkout/amount [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.amount"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCheckoutAmount
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

	amountMinor, err := h.service.ComputeOrderAmount(r.Context(), req.BasePrice, req.Code, purchase)
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrNotFound):
			log.Info("coupon not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("invalid coupon code"))
		case errors.Is(err, coupon.ErrExpired),
			errors.Is(err, coupon.ErrLimitReached),
			errors.Is(err, coupon.ErrNotApplicable):
			log.Info("coupon rejected", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("coupon is not applicable to this purchase"))
		default:
			log.Error("failed to compute order amount", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not compute order amount"))
		}
		return
	}

	log.Info("order amount computed", slog.Int64("amount_minor", amountMinor))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"amount_minor": amountMinor,
	}))
}
