// Package catalog содержит бизнес-логику чтения публичного каталога:
// макеты, тарифные планы, продукты, настройки и обучающие видео.
// Списки кешируются: каталог меняется редко, а читается на каждой
// витринной странице.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ovrlab/overlay-hub/internal/models"
)

// CatalogRepository определяет методы хранилища для чтения каталога.
type CatalogRepository interface {
	ListLayouts(ctx context.Context) ([]*models.Layout, error)
	ListPlans(ctx context.Context) ([]*models.Plan, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ReadProduct(ctx context.Context, id int64) (*models.Product, error)
	ListSettings(ctx context.Context) (map[string]string, error)
	ListInstallationVideos(ctx context.Context) ([]*models.InstallationVideo, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

const cacheTTL = time.Hour

// Service реализует чтение каталога с кешированием.
type Service struct {
	repo  CatalogRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service с переданными хранилищем, кешем и логгером.
func New(repo CatalogRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Layouts возвращает активные макеты, используя кеш или хранилище.
func (s *Service) Layouts(ctx context.Context) ([]*models.Layout, error) {
	var result []*models.Layout
	if ok := s.fromCache("catalog:layouts", &result); ok {
		return result, nil
	}
	result, err := s.repo.ListLayouts(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache("catalog:layouts", result)
	return result, nil
}

// Plans возвращает активные тарифные планы, используя кеш или хранилище.
func (s *Service) Plans(ctx context.Context) ([]*models.Plan, error) {
	var result []*models.Plan
	if ok := s.fromCache("catalog:plans", &result); ok {
		return result, nil
	}
	result, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache("catalog:plans", result)
	return result, nil
}

// Products возвращает активные продукты, используя кеш или хранилище.
func (s *Service) Products(ctx context.Context) ([]*models.Product, error) {
	var result []*models.Product
	if ok := s.fromCache("catalog:products", &result); ok {
		return result, nil
	}
	result, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache("catalog:products", result)
	return result, nil
}

// Product возвращает один активный продукт либо nil, если его нет.
func (s *Service) Product(ctx context.Context, id int64) (*models.Product, error) {
	cacheKey := fmt.Sprintf("catalog:product:%d", id)
	var result *models.Product
	if ok := s.fromCache(cacheKey, &result); ok {
		return result, nil
	}
	result, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if result != nil {
		s.toCache(cacheKey, result)
	}
	return result, nil
}

// Settings возвращает глобальные настройки одним объектом ключ-значение.
func (s *Service) Settings(ctx context.Context) (map[string]string, error) {
	var result map[string]string
	if ok := s.fromCache("catalog:settings", &result); ok {
		return result, nil
	}
	result, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache("catalog:settings", result)
	return result, nil
}

// InstallationVideos возвращает обучающие видео.
func (s *Service) InstallationVideos(ctx context.Context) ([]*models.InstallationVideo, error) {
	var result []*models.InstallationVideo
	if ok := s.fromCache("catalog:videos", &result); ok {
		return result, nil
	}
	result, err := s.repo.ListInstallationVideos(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache("catalog:videos", result)
	return result, nil
}

func (s *Service) fromCache(key string, result any) bool {
	found, err := s.cache.Get(key, result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), slog.Any("err", err))
		return false
	}
	return found
}

func (s *Service) toCache(key string, value any) {
	if err := s.cache.Set(key, value, cacheTTL); err != nil {
		s.log.Warn("failed to cache catalog data", slog.String("key", key), slog.Any("err", err))
	}
}
