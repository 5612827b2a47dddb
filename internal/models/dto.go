package models

// DummyHeartbeat используется для приёма heartbeat-запроса из JSON.
type DummyHeartbeat struct {
	Token     string `json:"token" validate:"required"`      // Публичный токен ссылки просмотра
	SessionID string `json:"session_id" validate:"required"` // Идентификатор сессии просмотрщика
}

// DummyVerifyCoupon используется для приёма запроса проверки купона из JSON.
// Поля контекста покупки необязательны: заполняется то измерение,
// к которому относится покупка.
type DummyVerifyCoupon struct {
	Code      string `json:"code" validate:"required"` // Код купона
	LayoutID  string `json:"layout_id"`                // Покупаемый макет
	PlanID    string `json:"plan_id"`                  // Покупаемый план
	ProductID *int64 `json:"product_id"`               // Покупаемый продукт
}

// DummyCheckoutAmount используется для приёма запроса расчёта суммы заказа.
type DummyCheckoutAmount struct {
	BasePrice float64 `json:"base_price" validate:"required,gt=0"` // Базовая цена в мажорных единицах
	Code      string  `json:"code"`                                // Необязательный код купона
	LayoutID  string  `json:"layout_id"`                           // Покупаемый макет
	PlanID    string  `json:"plan_id"`                             // Покупаемый план
	ProductID *int64  `json:"product_id"`                          // Покупаемый продукт
}

// DummySupportQuery используется для приёма обращения в поддержку из JSON.
type DummySupportQuery struct {
	Name    string `json:"name" validate:"required"`        // Имя отправителя
	Email   string `json:"email" validate:"required,email"` // Адрес для ответа
	Subject string `json:"subject" validate:"required"`     // Тема обращения
	Message string `json:"message" validate:"required"`     // Текст обращения
}
