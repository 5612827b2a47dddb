package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ovrlab/overlay-hub/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListLayouts(ctx context.Context) ([]*models.Layout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Layout), args.Error(1)
}
func (m *RepoMock) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}
func (m *RepoMock) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}
func (m *RepoMock) ReadProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *RepoMock) ListSettings(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
func (m *RepoMock) ListInstallationVideos(ctx context.Context) ([]*models.InstallationVideo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InstallationVideo), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Layouts(t *testing.T) {
	layouts := []*models.Layout{{ID: "orex", Name: "Orex Theme"}}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantErr    bool
	}{
		{
			name: "промах кеша идет в хранилище и кеширует",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "catalog:layouts", mock.Anything).Return(false, nil).Once()
				r.On("ListLayouts", mock.Anything).Return(layouts, nil).Once()
				c.On("Set", "catalog:layouts", layouts, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "ошибка кеша не мешает чтению из хранилища",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "catalog:layouts", mock.Anything).Return(false, errors.New("redis down")).Once()
				r.On("ListLayouts", mock.Anything).Return(layouts, nil).Once()
				c.On("Set", "catalog:layouts", layouts, time.Hour).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "ошибка хранилища возвращается",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "catalog:layouts", mock.Anything).Return(false, nil).Once()
				r.On("ListLayouts", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)

			svc := New(repo, cache, newNoopLogger())

			got, err := svc.Layouts(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, layouts, got)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_Product(t *testing.T) {
	product := &models.Product{ID: 999, Name: "Test Product", Price: 500}

	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", "catalog:product:999", mock.Anything).Return(false, nil).Once()
	repo.On("ReadProduct", mock.Anything, int64(999)).Return(product, nil).Once()
	cache.On("Set", "catalog:product:999", product, time.Hour).Return(nil).Once()

	svc := New(repo, cache, newNoopLogger())

	got, err := svc.Product(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, product, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_Product_NotFoundNotCached(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", "catalog:product:1", mock.Anything).Return(false, nil).Once()
	repo.On("ReadProduct", mock.Anything, int64(1)).Return(nil, nil).Once()

	svc := New(repo, cache, newNoopLogger())

	got, err := svc.Product(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_Settings(t *testing.T) {
	settings := map[string]string{"site_name": "Overlay Hub"}

	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", "catalog:settings", mock.Anything).Return(false, nil).Once()
	repo.On("ListSettings", mock.Anything).Return(settings, nil).Once()
	cache.On("Set", "catalog:settings", settings, time.Hour).Return(nil).Once()

	svc := New(repo, cache, newNoopLogger())

	got, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
