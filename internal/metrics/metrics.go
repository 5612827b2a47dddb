// Package metrics содержит прометеус-метрики сервиса оверлеев.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Метрики публичного просмотра
	PublicViewRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlay_public_view_requests_total",
			Help: "Total number of public overlay view requests",
		},
		[]string{"result"},
	)
	HeartbeatsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlay_heartbeats_total",
			Help: "Total number of viewer session heartbeats",
		},
		[]string{"result"},
	)

	// Метрики купонов
	CouponVerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlay_coupon_verifications_total",
			Help: "Total number of coupon verification attempts",
		},
		[]string{"result"},
	)
)

// InitMetrics регистрирует все метрики в реестре по умолчанию.
func InitMetrics() {
	prometheus.MustRegister(PublicViewRequestsTotal)
	prometheus.MustRegister(HeartbeatsTotal)
	prometheus.MustRegister(CouponVerificationsTotal)
}
