package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// FindActiveSubscriptionByToken возвращает подписку со статусом ACTIVE
// по точному совпадению публичного токена. Если такой подписки нет,
// возвращает (nil, nil) — отсутствие строки не является ошибкой,
// решение о дальнейшей проверке принимает вызывающая бизнес-логика.
func (s *Storage) FindActiveSubscriptionByToken(ctx context.Context, token string) (*models.Subscription, error) {
	const op = "storage.FindActiveSubscriptionByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, layout_id, public_token, status, expiry_date, created_at
			  FROM subscriptions
			  WHERE public_token = $1 AND status = 'ACTIVE'`
	row := s.DB.QueryRowContext(ctx, query, token)

	var result models.Subscription
	if err := row.Scan(&result.ID, &result.UserID, &result.LayoutID, &result.PublicToken,
		&result.Status, &result.ExpiryDate, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// FindSubscriptionOwnerByToken возвращает пару (пользователь, макет) для
// подписки с данным токеном вне зависимости от статуса. Используется
// обработчиком heartbeat для определения владельца сессии.
func (s *Storage) FindSubscriptionOwnerByToken(ctx context.Context, token string) (int64, string, bool, error) {
	const op = "storage.FindSubscriptionOwnerByToken"
	select {
	case <-ctx.Done():
		return 0, "", false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, layout_id FROM subscriptions WHERE public_token = $1`
	var userID int64
	var layoutID string
	if err := s.DB.QueryRowContext(ctx, query, token).Scan(&userID, &layoutID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", false, nil
		}
		return 0, "", false, fmt.Errorf("%s: %w", op, err)
	}
	return userID, layoutID, true, nil
}
