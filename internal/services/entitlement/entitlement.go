// Package entitlement содержит бизнес-логику разрешения публичного доступа
// к конфигурации оверлея по токену из публичной ссылки.
package entitlement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// ErrNotFound возвращается, когда токен не принадлежит ни подписке,
// ни кастомизации.
var ErrNotFound = errors.New("public token not found")

// Repository определяет методы хранилища для разрешения доступа.
type Repository interface {
	// FindActiveSubscriptionByToken ищет подписку со статусом ACTIVE по токену.
	FindActiveSubscriptionByToken(ctx context.Context, token string) (*models.Subscription, error)
	// FindSubscriptionOwnerByToken возвращает владельца подписки по токену
	// вне зависимости от статуса.
	FindSubscriptionOwnerByToken(ctx context.Context, token string) (int64, string, bool, error)
	// FindCustomizationByToken ищет кастомизацию по токену.
	FindCustomizationByToken(ctx context.Context, token string) (*models.Customization, error)
	// FindCustomizationByUserAndLayout ищет кастомизацию по составному ключу.
	FindCustomizationByUserAndLayout(ctx context.Context, userID int64, layoutID string) (*models.Customization, error)
}

// LeaseManager определяет операции над сессией просмотра.
type LeaseManager interface {
	AcquireOrRenew(ctx context.Context, userID int64, layoutID, sessionID string) error
	Heartbeat(ctx context.Context, userID int64, layoutID, sessionID string) error
}

// Service реализует разрешение публичного доступа и проксирует heartbeat
// от токена к сессии просмотра.
type Service struct {
	repo  Repository
	lease LeaseManager
	log   *slog.Logger
	now   func() time.Time
}

// New создает новый Service с переданными хранилищем, менеджером сессий и логгером.
func New(repo Repository, lease LeaseManager, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		lease: lease,
		log:   log,
		now:   time.Now,
	}
}

// ResolvePublicAccess разрешает публичный токен в конфигурацию оверлея.
//
// Порядок проверки:
//  1. Подписка со статусом ACTIVE по точному совпадению токена. Просроченная
//     подписка даёт ответ isExpired без конфигурации.
//  2. Кастомизация по точному совпадению токена. Наличия строки достаточно:
//     срок триала на этой ветке не проверяется.
//
// Конфигурация всегда берётся из строки кастомизации для пары
// (пользователь, макет) — пользователь может держать и подписку,
// и кастомизацию одновременно. Если запрос сопровождается идентификатором
// сессии, как побочный эффект захватывается сессия просмотра.
func (s *Service) ResolvePublicAccess(ctx context.Context, token, sessionID string) (*models.AccessResult, error) {
	sub, err := s.repo.FindActiveSubscriptionByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	var userID int64
	var layoutID string

	if sub != nil {
		if sub.ExpiryDate.Before(s.now()) {
			s.log.Info("subscription expired", slog.String("layout_id", sub.LayoutID))
			return &models.AccessResult{IsExpired: true}, nil
		}
		userID, layoutID = sub.UserID, sub.LayoutID
	} else {
		cust, err := s.repo.FindCustomizationByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if cust == nil {
			return nil, ErrNotFound
		}
		userID, layoutID = cust.UserID, cust.LayoutID
	}

	cust, err := s.repo.FindCustomizationByUserAndLayout(ctx, userID, layoutID)
	if err != nil {
		return nil, err
	}

	var config []byte
	if cust != nil {
		config = cust.Config

		if sessionID != "" {
			if err := s.lease.AcquireOrRenew(ctx, userID, layoutID, sessionID); err != nil {
				return nil, err
			}
		}
	}

	return &models.AccessResult{
		LayoutID:  layoutID,
		Config:    config,
		IsExpired: false,
	}, nil
}

// Heartbeat продлевает сессию просмотра по публичному токену.
// Владелец определяется сначала по подписке (любой статус), затем по
// кастомизации; неизвестный токен даёт ErrNotFound. Перехваченная сессия
// даёт sessionlease.ErrLockLost.
func (s *Service) Heartbeat(ctx context.Context, token, sessionID string) error {
	userID, layoutID, found, err := s.repo.FindSubscriptionOwnerByToken(ctx, token)
	if err != nil {
		return err
	}
	if !found {
		cust, err := s.repo.FindCustomizationByToken(ctx, token)
		if err != nil {
			return err
		}
		if cust == nil {
			return ErrNotFound
		}
		userID, layoutID = cust.UserID, cust.LayoutID
	}

	return s.lease.Heartbeat(ctx, userID, layoutID, sessionID)
}
