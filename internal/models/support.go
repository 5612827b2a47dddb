package models

// SupportQuery представляет обращение с публичной формы поддержки.
type SupportQuery struct {
	Name    string
	Email   string
	Subject string
	Message string
}
