package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ErrNotAcquired is returned when a lock could not be taken in time
var ErrNotAcquired = errors.New("lock not acquired")

// Release gives a held lock back
type Release func()

// Manager hands out named locks. Locks coordinate background work and queue
// entry; balance consistency never depends on them.
type Manager interface {
	Lock(ctx context.Context, key string) (Release, error)
	TryLock(ctx context.Context, key string) (Release, bool, error)
}

// LocalManager is an in-process Manager keyed by name
type LocalManager struct {
	locks   sync.Map // map[string]*sync.Mutex
	timeout time.Duration
	logger  *logger.Logger
}

// NewLocalManager creates a process-local lock manager
func NewLocalManager(log *logger.Logger, timeout time.Duration) *LocalManager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LocalManager{timeout: timeout, logger: log}
}

// Lock acquires the lock for key, waiting at most the configured timeout
func (m *LocalManager) Lock(ctx context.Context, key string) (Release, error) {
	mu := m.getOrCreateMutex(key)

	acquired := make(chan struct{})
	abandoned := make(chan struct{})
	go func() {
		mu.Lock()
		select {
		case <-abandoned:
			mu.Unlock()
		case acquired <- struct{}{}:
		}
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case <-acquired:
		m.logger.Debug("Lock acquired", zap.String("key", key))
		return func() { mu.Unlock() }, nil
	case <-ctx.Done():
		close(abandoned)
		m.logger.Warn("Failed to acquire lock: context cancelled", zap.String("key", key), zap.Error(ctx.Err()))
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, ctx.Err())
	case <-timer.C:
		close(abandoned)
		m.logger.Warn("Failed to acquire lock: timeout", zap.String("key", key), zap.Duration("timeout", m.timeout))
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, ErrNotAcquired)
	}
}

// TryLock attempts to acquire a lock without blocking
func (m *LocalManager) TryLock(_ context.Context, key string) (Release, bool, error) {
	mu := m.getOrCreateMutex(key)
	if !mu.TryLock() {
		return nil, false, nil
	}
	return func() { mu.Unlock() }, true, nil
}

func (m *LocalManager) getOrCreateMutex(key string) *sync.Mutex {
	if mu, ok := m.locks.Load(key); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
