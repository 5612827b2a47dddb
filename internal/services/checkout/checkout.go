// Package checkout содержит бизнес-логику расчёта суммы заказа,
// передаваемой платёжному шлюзу.
package checkout

import (
	"context"
	"log/slog"

	"github.com/ovrlab/overlay-hub/internal/lib/pricing"
	"github.com/ovrlab/overlay-hub/internal/models"
)

// CouponVerifier определяет интерфейс проверки купона.
type CouponVerifier interface {
	Verify(ctx context.Context, code string, purchase models.CouponContext) (*models.Discount, error)
}

// Service реализует расчёт итоговой суммы заказа.
type Service struct {
	coupons CouponVerifier
	log     *slog.Logger
}

// New создает новый Service с переданным верификатором купонов и логгером.
func New(coupons CouponVerifier, log *slog.Logger) *Service {
	return &Service{
		coupons: coupons,
		log:     log,
	}
}

// ComputeOrderAmount считает сумму заказа в минорных единицах валюты.
// Если передан код купона, купон сначала проверяется против контекста
// покупки; ошибки проверки возвращаются вызывающему без изменений.
// Счётчик использований купона здесь не трогается.
func (s *Service) ComputeOrderAmount(ctx context.Context, basePriceMajor float64, code string, purchase models.CouponContext) (int64, error) {
	var discount *models.Discount

	if code != "" {
		d, err := s.coupons.Verify(ctx, code, purchase)
		if err != nil {
			return 0, err
		}
		discount = d
	}

	amount := pricing.ComputeFinalAmount(basePriceMajor, discount)
	s.log.Info("order amount computed",
		slog.Float64("base_price", basePriceMajor),
		slog.Int64("amount_minor", amount))
	return amount, nil
}
