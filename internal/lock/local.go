package lock

import (
	"context"
	"sync"

	"rescue-site-server/internal/models"
)

var _ Locker = (*LocalLocker)(nil)

// LocalLocker держит блокировки в памяти процесса. Используется CLI
// и сервером без Redis.
type LocalLocker struct {
	mu     sync.Mutex
	held   map[int64]uint64
	nextID uint64
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[int64]uint64)}
}

func (l *LocalLocker) Acquire(ctx context.Context, tenantID int64) (ReleaseFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[tenantID]; ok {
		return nil, models.ErrGenerationInProgress
	}
	l.nextID++
	token := l.nextID
	l.held[tenantID] = token

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		// Снимаем только свою блокировку
		if current, ok := l.held[tenantID]; ok && current == token {
			delete(l.held, tenantID)
		}
		return nil
	}, nil
}

func (l *LocalLocker) IsLocked(_ context.Context, tenantID int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[tenantID]
	return ok, nil
}
