// Package models содержит доменные структуры хаба оверлеев,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"encoding/json"
	"time"
)

// Статусы подписки, как они хранятся в базе.
const (
	SubscriptionStatusActive  = "ACTIVE"
	SubscriptionStatusExpired = "EXPIRED"
	SubscriptionStatusRevoked = "REVOKED"
)

// Subscription представляет подписку пользователя на макет оверлея.
// Публичный токен выдаётся при покупке и встраивается в ссылку для OBS.
type Subscription struct {
	ID          int64     // Идентификатор подписки
	UserID      int64     // Владелец подписки
	LayoutID    string    // Макет, на который оформлена подписка
	PublicToken string    // Публичный токен для ссылки просмотра
	Status      string    // ACTIVE, EXPIRED или REVOKED
	ExpiryDate  time.Time // Дата окончания подписки
	CreatedAt   time.Time // Дата оформления
}

// Customization хранит пользовательскую конфигурацию макета и состояние
// сессии просмотра. Строка создаётся при первом сохранении настроек
// в редакторе; публичный токен здесь независим от токена подписки.
type Customization struct {
	UserID          int64      // Владелец кастомизации
	LayoutID        string     // Макет, к которому относится конфигурация
	Config          []byte     // Конфигурация оверлея в формате JSON
	PublicToken     *string    // Публичный токен кастомизации, может отсутствовать
	ActiveSessionID *string    // Идентификатор активной сессии просмотра
	LastHeartbeat   *time.Time // Отметка последнего heartbeat
}

// AccessResult — результат разрешения публичного токена.
// Для просроченной подписки IsExpired выставлен, а конфигурация пуста.
type AccessResult struct {
	LayoutID  string          `json:"layout_id"`
	Config    json.RawMessage `json:"config"`
	IsExpired bool            `json:"is_expired"`
}
