// Package sessionlease реализует бизнес-логику эксклюзивной сессии просмотра:
// на пару (пользователь, макет) конфигурацию одновременно рендерит не более
// одного просмотрщика.
package sessionlease

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrLockLost возвращается, когда heartbeat пришёл от сессии,
// которую уже перехватил другой просмотрщик. Получив эту ошибку,
// вызывающий обязан прекратить рендеринг.
var ErrLockLost = errors.New("viewer session superseded")

// LeaseRepository определяет методы хранилища для работы с сессией просмотра.
type LeaseRepository interface {
	// AcquireSession безусловно перезаписывает сессию и отметку heartbeat.
	AcquireSession(ctx context.Context, userID int64, layoutID, sessionID string, now time.Time) (int, error)
	// RenewSession обновляет отметку heartbeat одним условным UPDATE:
	// запись происходит только при совпадении сохранённой сессии.
	RenewSession(ctx context.Context, userID int64, layoutID, sessionID string, now time.Time) (int, error)
}

// Manager реализует бизнес-логику сессий просмотра.
type Manager struct {
	repo LeaseRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewManager создает новый Manager с переданным хранилищем и логгером.
func NewManager(repo LeaseRepository, log *slog.Logger) *Manager {
	return &Manager{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// AcquireOrRenew захватывает сессию просмотра для пары (пользователь, макет).
// Захват всегда успешен: загрузка страницы просмотра перехватывает сессию
// у предыдущего просмотрщика, отдельного рукопожатия нет. Проигравший узнаёт
// о перехвате при следующем heartbeat.
func (m *Manager) AcquireOrRenew(ctx context.Context, userID int64, layoutID, sessionID string) error {
	rows, err := m.repo.AcquireSession(ctx, userID, layoutID, sessionID, m.now())
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}
	if rows == 0 {
		// Строки кастомизации ещё нет — захватывать нечего.
		m.log.Warn("no customization row to acquire",
			slog.Int64("user_id", userID), slog.String("layout_id", layoutID))
		return nil
	}
	m.log.Info("viewer session acquired",
		slog.Int64("user_id", userID),
		slog.String("layout_id", layoutID),
		slog.String("session_id", sessionID))
	return nil
}

// Heartbeat продлевает сессию просмотра. Если сохранённая сессия не совпадает
// с переданной, возвращает ErrLockLost, не меняя сохранённую сессию.
func (m *Manager) Heartbeat(ctx context.Context, userID int64, layoutID, sessionID string) error {
	rows, err := m.repo.RenewSession(ctx, userID, layoutID, sessionID, m.now())
	if err != nil {
		return fmt.Errorf("renew session: %w", err)
	}
	if rows == 0 {
		return ErrLockLost
	}
	return nil
}
