// Package sl содержит мелкие помощники для логгера slog.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут с ключом "error", чтобы ошибки
// во всех журналах сервиса выглядели одинаково:
//
//	log.Error("failed to renew session", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
