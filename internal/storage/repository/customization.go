package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// FindCustomizationByToken возвращает строку кастомизации по точному
// совпадению публичного токена. Если строки нет, возвращает (nil, nil).
func (s *Storage) FindCustomizationByToken(ctx context.Context, token string) (*models.Customization, error) {
	const op = "storage.FindCustomizationByToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, layout_id, config, public_token, active_session_id, last_heartbeat
			  FROM theme_customizations
			  WHERE public_token = $1`
	return s.scanCustomization(s.DB.QueryRowContext(ctx, query, token), op)
}

// FindCustomizationByUserAndLayout возвращает строку кастомизации по
// составному ключу (пользователь, макет). Если строки нет, возвращает (nil, nil).
func (s *Storage) FindCustomizationByUserAndLayout(ctx context.Context, userID int64, layoutID string) (*models.Customization, error) {
	const op = "storage.FindCustomizationByUserAndLayout"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_id, layout_id, config, public_token, active_session_id, last_heartbeat
			  FROM theme_customizations
			  WHERE user_id = $1 AND layout_id = $2`
	return s.scanCustomization(s.DB.QueryRowContext(ctx, query, userID, layoutID), op)
}

func (s *Storage) scanCustomization(row *sql.Row, op string) (*models.Customization, error) {
	var result models.Customization
	if err := row.Scan(&result.UserID, &result.LayoutID, &result.Config,
		&result.PublicToken, &result.ActiveSessionID, &result.LastHeartbeat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// AcquireSession безусловно записывает идентификатор сессии и отметку
// heartbeat в строку кастомизации. Загрузка страницы просмотра и есть захват:
// новая загрузка всегда перехватывает сессию у предыдущего просмотрщика.
// Возвращает количество обновлённых строк.
func (s *Storage) AcquireSession(ctx context.Context, userID int64, layoutID, sessionID string, now time.Time) (int, error) {
	const op = "storage.AcquireSession"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE theme_customizations
			  SET active_session_id = $3, last_heartbeat = $4
			  WHERE user_id = $1 AND layout_id = $2`
	result, err := s.DB.ExecContext(ctx, query, userID, layoutID, sessionID, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RenewSession обновляет отметку heartbeat только если сохранённый
// идентификатор сессии совпадает с переданным. Сравнение и запись выполняются
// одним условным UPDATE: параллельный захват не может вклиниться между
// проверкой и записью. Возвращает количество обновлённых строк; ноль означает,
// что сессия вызывающего была перехвачена либо строка отсутствует.
func (s *Storage) RenewSession(ctx context.Context, userID int64, layoutID, sessionID string, now time.Time) (int, error) {
	const op = "storage.RenewSession"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE theme_customizations
			  SET last_heartbeat = $4
			  WHERE user_id = $1 AND layout_id = $2 AND active_session_id = $3`
	result, err := s.DB.ExecContext(ctx, query, userID, layoutID, sessionID, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
