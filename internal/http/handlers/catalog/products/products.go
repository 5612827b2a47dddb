// Package products реализует HTTP-обработчики витрины продуктов:
// список активных продуктов и чтение одного продукта по ID.
package products

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ovrlab/overlay-hub/internal/http/response"
	"github.com/ovrlab/overlay-hub/internal/lib/sl"
	"github.com/ovrlab/overlay-hub/internal/models"
)

// Handler управляет HTTP-запросами витрины продуктов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики витрины продуктов.
type Service interface {
	Products(ctx context.Context) ([]*models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// List godoc
// @Summary Список продуктов
// @Description Возвращает активные цифровые продукты, новые первыми.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список продуктов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.products.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	products, err := h.service.Products(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list products"))
		return
	}

	log.Info("products listed", slog.Int("count", len(products)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"products": products,
	}))
}

// Read godoc
// @Summary Прочитать продукт
// @Description Возвращает один активный продукт по ID.
// @Tags Catalog
// @Produce  json
// @Param id path int true "Идентификатор продукта"
// @Success 200 {object} map[string]any "Продукт"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Продукт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /products/{id} [get]
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.products.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid product id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product id"))
		return
	}

	product, err := h.service.Product(r.Context(), id)
	if err != nil {
		log.Error("failed to read product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read product"))
		return
	}
	if product == nil {
		log.Info("product not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	render.JSON(w, r, response.OKWithData(product))
}
