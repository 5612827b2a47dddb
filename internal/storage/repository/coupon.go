package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// FindCouponByCode возвращает купон по точному совпадению кода.
// Если купона нет, возвращает (nil, nil). Счётчик использований читается,
// но никогда не изменяется этим слоем: инкремент принадлежит внешнему
// шагу финализации заказа.
func (s *Storage) FindCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	const op = "storage.FindCouponByCode"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT code, discount_type, discount_value, layout_id, plan_id, product_id,
				  expiry_date, max_uses, used_count
			  FROM coupons
			  WHERE code = $1`
	row := s.DB.QueryRowContext(ctx, query, code)

	var result models.Coupon
	if err := row.Scan(&result.Code, &result.DiscountType, &result.DiscountValue,
		&result.LayoutID, &result.PlanID, &result.ProductID,
		&result.ExpiryDate, &result.MaxUses, &result.UsedCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
