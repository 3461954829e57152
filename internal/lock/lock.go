package lock

import (
	"context"
	"strconv"
)

// ReleaseFunc снимает блокировку. Повторный вызов безопасен.
type ReleaseFunc func(ctx context.Context) error

// Locker - блокировка генерации сайта на уровне тенанта.
type Locker interface {
	// Acquire захватывает блокировку тенанта. Если она уже занята,
	// возвращает models.ErrGenerationInProgress.
	Acquire(ctx context.Context, tenantID int64) (ReleaseFunc, error)
	IsLocked(ctx context.Context, tenantID int64) (bool, error)
}

const keyPrefix = "site-generation:lock:"

func lockKey(tenantID int64) string {
	return keyPrefix + strconv.FormatInt(tenantID, 10)
}
