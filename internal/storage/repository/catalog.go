package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// ListLayouts возвращает активные макеты в порядке display_order.
func (s *Storage) ListLayouts(ctx context.Context) ([]*models.Layout, error) {
	const op = "storage.ListLayouts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, thumbnail_url, display_order
			  FROM layouts
			  WHERE is_active = true
			  ORDER BY display_order`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Layout
	for rows.Next() {
		var item models.Layout
		if err := rows.Scan(&item.ID, &item.Name, &item.Description,
			&item.ThumbnailURL, &item.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListPlans возвращает активные тарифные планы в порядке display_order.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, duration_months, price, display_order
			  FROM subscription_plans
			  WHERE is_active = true
			  ORDER BY display_order`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var item models.Plan
		if err := rows.Scan(&item.ID, &item.Name, &item.Description,
			&item.DurationMonths, &item.Price, &item.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListProducts возвращает активные продукты, новые первыми.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, thumbnail_url, file_type, created_at
			  FROM products
			  WHERE is_active = true
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.ThumbnailURL, &item.FileType, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadProduct возвращает один активный продукт по ID.
// Если продукта нет, возвращает (nil, nil).
func (s *Storage) ReadProduct(ctx context.Context, id int64) (*models.Product, error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, thumbnail_url, file_type, created_at
			  FROM products
			  WHERE id = $1 AND is_active = true`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Product
	if err := row.Scan(&result.ID, &result.Name, &result.Description, &result.Price,
		&result.ThumbnailURL, &result.FileType, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListSettings возвращает все глобальные настройки как пары ключ-значение.
func (s *Storage) ListSettings(ctx context.Context) (map[string]string, error) {
	const op = "storage.ListSettings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT key_name, value FROM settings`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListInstallationVideos возвращает обучающие видео в порядке display_order.
func (s *Storage) ListInstallationVideos(ctx context.Context) ([]*models.InstallationVideo, error) {
	const op = "storage.ListInstallationVideos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, video_url, display_order
			  FROM installation_videos
			  ORDER BY display_order`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.InstallationVideo
	for rows.Next() {
		var item models.InstallationVideo
		if err := rows.Scan(&item.ID, &item.Title, &item.VideoURL, &item.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateSupportQuery вставляет обращение в поддержку и возвращает его ID.
func (s *Storage) CreateSupportQuery(ctx context.Context, q models.SupportQuery) (int64, error) {
	const op = "storage.CreateSupportQuery"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO support_queries (name, email, subject, message)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query, q.Name, q.Email, q.Subject, q.Message).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
