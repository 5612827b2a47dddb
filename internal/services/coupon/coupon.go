// Package coupon содержит бизнес-логику проверки промокодов против
// контекста покупки: макета, тарифного плана или продукта.
package coupon

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// Ожидаемые исходы проверки купона. Каждый возвращается вызывающему
// как различимый результат, а не прячется в общей ошибке.
var (
	ErrNotFound      = errors.New("coupon not found")
	ErrExpired       = errors.New("coupon expired")
	ErrLimitReached  = errors.New("coupon usage limit reached")
	ErrNotApplicable = errors.New("coupon not applicable to this item")
)

// CouponRepository определяет методы хранилища для чтения купонов.
type CouponRepository interface {
	FindCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// Verifier реализует проверку купонов. Проверка не имеет побочных эффектов:
// счётчик использований инкрементирует только внешний шаг финализации заказа,
// поэтому её можно безопасно вызывать повторно для живого предпросмотра цены.
type Verifier struct {
	repo CouponRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewVerifier создает новый Verifier с переданным хранилищем и логгером.
func NewVerifier(repo CouponRepository, log *slog.Logger) *Verifier {
	return &Verifier{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Verify проверяет купон против контекста покупки и возвращает дескриптор
// скидки. Проверки выполняются по порядку с коротким замыканием:
// существование, срок действия, лимит использований, применимость.
func (v *Verifier) Verify(ctx context.Context, code string, purchase models.CouponContext) (*models.Discount, error) {
	c, err := v.repo.FindCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if c.ExpiryDate != nil && c.ExpiryDate.Before(v.now()) {
		return nil, ErrExpired
	}

	if c.MaxUses != -1 && c.UsedCount >= c.MaxUses {
		return nil, ErrLimitReached
	}

	// Купон несёт не более одного измерения ограничения.
	switch {
	case c.LayoutID != nil:
		// Купон на макет никогда не применим к покупке плана или продукта.
		if purchase.LayoutID == "" || purchase.LayoutID != *c.LayoutID {
			return nil, ErrNotApplicable
		}
	case c.PlanID != nil:
		if purchase.PlanID == "" || purchase.PlanID != *c.PlanID {
			return nil, ErrNotApplicable
		}
	case c.ProductID != nil:
		if purchase.ProductID == nil || *purchase.ProductID != *c.ProductID {
			return nil, ErrNotApplicable
		}
	}

	v.log.Info("coupon verified", slog.String("code", c.Code),
		slog.String("discount_type", c.DiscountType))

	return &models.Discount{
		Type:  c.DiscountType,
		Value: c.DiscountValue,
		Code:  c.Code,
	}, nil
}
