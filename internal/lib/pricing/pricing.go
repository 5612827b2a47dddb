// Package pricing считает итоговую сумму заказа: применение скидки купона
// и перевод цены в минорные единицы валюты для платёжного шлюза.
package pricing

import (
	"math"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// ComputeFinalAmount считает итоговую сумму заказа в минорных единицах валюты.
// Цена приходит в основных единицах; платёжный шлюз требует целое число
// минорных единиц, расхождение в копейке ломает последующую сверку платежа.
func ComputeFinalAmount(basePriceMajor float64, discount *models.Discount) int64 {
	final := basePriceMajor

	if discount != nil {
		switch discount.Type {
		case models.DiscountTypePercent:
			final -= basePriceMajor * discount.Value / 100
		case models.DiscountTypeFixed:
			final -= discount.Value
		}
	}

	// Скидка не может увести сумму ниже нуля
	if final < 0 {
		final = 0
	}

	// Округление к ближайшему, половина — от нуля
	return int64(math.Round(final * 100))
}
