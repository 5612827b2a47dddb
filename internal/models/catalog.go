package models

import "time"

// Layout описывает макет оверлея из витрины.
type Layout struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	DisplayOrder int    `json:"display_order"`
}

// Plan описывает тарифный план подписки на макет.
type Plan struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	DurationMonths int     `json:"duration_months"`
	Price          float64 `json:"price"`
	DisplayOrder   int     `json:"display_order"`
}

// Product описывает разовый цифровой продукт (пак алертов, стингеры).
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ThumbnailURL string    `json:"thumbnail_url"`
	FileType     string    `json:"file_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// InstallationVideo описывает обучающее видео по установке оверлея.
type InstallationVideo struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	VideoURL     string `json:"video_url"`
	DisplayOrder int    `json:"display_order"`
}
