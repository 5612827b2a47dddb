package models

import "time"

// Типы скидки купона.
const (
	DiscountTypePercent = "PERCENT"
	DiscountTypeFixed   = "FIXED"
)

// Coupon представляет промокод. Купон ограничен не более чем одним
// измерением: макетом, планом или продуктом; купон без ограничения
// применим к любой покупке. MaxUses равный -1 означает безлимитный купон.
type Coupon struct {
	Code          string     // Код купона, как его вводит пользователь
	DiscountType  string     // PERCENT или FIXED
	DiscountValue float64    // Процент либо сумма в мажорных единицах
	LayoutID      *string    // Ограничение по макету
	PlanID        *string    // Ограничение по плану
	ProductID     *int64     // Ограничение по продукту
	ExpiryDate    *time.Time // Срок действия, nil — бессрочный
	MaxUses       int        // Лимит использований, -1 — без лимита
	UsedCount     int        // Текущее количество использований
}

// Discount — применимая скидка, результат успешной проверки купона.
type Discount struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Code  string  `json:"code"`
}

// CouponContext описывает контекст покупки, против которого проверяется
// купон. Заполнено не более одного измерения.
type CouponContext struct {
	LayoutID  string
	PlanID    string
	ProductID *int64
}
