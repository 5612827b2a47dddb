// Package overlayhub предоставляет маршруты основного приложения.
package overlayhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ovrlab/overlay-hub/internal/http/handlers/catalog/layouts"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/catalog/plans"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/catalog/products"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/catalog/settings"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/catalog/videos"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/checkout/amount"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/coupon/verify"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/overlay/health"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/overlay/heartbeat"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/overlay/view"
	"github.com/ovrlab/overlay-hub/internal/http/handlers/support/create"
	"github.com/ovrlab/overlay-hub/internal/http/middlewarectx"
	"github.com/ovrlab/overlay-hub/internal/metrics"
	catalogservice "github.com/ovrlab/overlay-hub/internal/services/catalog"
	checkoutservice "github.com/ovrlab/overlay-hub/internal/services/checkout"
	couponservice "github.com/ovrlab/overlay-hub/internal/services/coupon"
	entitlementservice "github.com/ovrlab/overlay-hub/internal/services/entitlement"
	supportservice "github.com/ovrlab/overlay-hub/internal/services/support"
)

// Services группирует сервисы, которые нужны маршрутам.
type Services struct {
	Entitlement *entitlementservice.Service
	Coupons     *couponservice.Verifier
	Checkout    *checkoutservice.Service
	Catalog     *catalogservice.Service
	Support     *supportservice.Service
	Readiness   health.ReadinessChecker
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services) {
	metrics.InitMetrics()

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	productsHandler := products.New(logger, svc.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		// Публичная ссылка просмотра и heartbeat сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/public/{token}", view.New(logger, svc.Entitlement).ServeHTTP)
			r.Post("/public/heartbeat", heartbeat.New(logger, svc.Entitlement).ServeHTTP)
		})

		// Витрина
		r.Get("/layouts", layouts.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/subscription-plans", plans.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/products", productsHandler.List)
		r.Get("/products/{id}", productsHandler.Read)
		r.Get("/settings", settings.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/installation-videos", videos.New(logger, svc.Catalog).ServeHTTP)

		// Купоны и оплата
		r.Post("/coupons/verify", verify.New(logger, svc.Coupons).ServeHTTP)
		r.Post("/checkout/amount", amount.New(logger, svc.Checkout).ServeHTTP)

		// Поддержка
		r.Post("/support", create.New(logger, svc.Support).ServeHTTP)
	})

	r.Get("/health", health.New(logger, svc.Readiness).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
