package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rescue-site-server/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ Locker = (*RedisLocker)(nil)

// releaseScript удаляет ключ, только если в нем наш токен.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisLocker - распределенная блокировка на SET NX PX. TTL защищает от
// вечной блокировки, если процесс упал посреди генерации.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		logger: logger.Named("RedisLocker"),
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, tenantID int64) (ReleaseFunc, error) {
	key := lockKey(tenantID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		l.logger.Error("Failed to acquire generation lock", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return nil, fmt.Errorf("failed to acquire generation lock for tenant %d: %w", tenantID, err)
	}
	if !ok {
		l.logger.Info("Generation lock is already held", zap.Int64("tenant_id", tenantID))
		return nil, models.ErrGenerationInProgress
	}
	l.logger.Debug("Generation lock acquired", zap.Int64("tenant_id", tenantID), zap.Duration("ttl", l.ttl))

	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			l.logger.Error("Failed to release generation lock", zap.Int64("tenant_id", tenantID), zap.Error(err))
			return fmt.Errorf("failed to release generation lock for tenant %d: %w", tenantID, err)
		}
		if deleted == 0 {
			l.logger.Warn("Generation lock expired before release", zap.Int64("tenant_id", tenantID))
		}
		return nil
	}, nil
}

func (l *RedisLocker) IsLocked(ctx context.Context, tenantID int64) (bool, error) {
	n, err := l.client.Exists(ctx, lockKey(tenantID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check generation lock for tenant %d: %w", tenantID, err)
	}
	return n > 0, nil
}
