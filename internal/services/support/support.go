// Package support содержит бизнес-логику приёма обращений с публичной
// формы поддержки.
package support

import (
	"context"
	"log/slog"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// SupportRepository определяет методы хранилища для обращений в поддержку.
type SupportRepository interface {
	CreateSupportQuery(ctx context.Context, q models.SupportQuery) (int64, error)
}

// Service реализует приём обращений в поддержку.
type Service struct {
	repo SupportRepository
	log  *slog.Logger
}

// New создает новый Service с переданным хранилищем и логгером.
func New(repo SupportRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Submit сохраняет обращение и возвращает его ID. Доставка ответа
// пользователю — забота внешней почтовой службы.
func (s *Service) Submit(ctx context.Context, q models.SupportQuery) (int64, error) {
	id, err := s.repo.CreateSupportQuery(ctx, q)
	if err != nil {
		return 0, err
	}
	s.log.Info("support query submitted", slog.Int64("id", id), slog.String("subject", q.Subject))
	return id, nil
}
