package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"rescue-site-server/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RetryPolicy - повторные попытки подключения к внешним сервисам.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

// ServerRetryPolicy - для сервера в docker-compose, где зависимости стартуют медленно.
var ServerRetryPolicy = RetryPolicy{MaxRetries: 50, Delay: 3 * time.Second}

// CLIRetryPolicy - для операторских команд: ошибиться быстро.
var CLIRetryPolicy = RetryPolicy{MaxRetries: 3, Delay: time.Second}

func (p RetryPolicy) wait(ctx context.Context, attempt int) error {
	if attempt >= p.MaxRetries {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.Delay):
		return nil
	}
}

// SetupPostgres создает пул pgx с повторными попытками и ping.
func SetupPostgres(ctx context.Context, cfg *config.Config, policy RetryPolicy, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("unable to parse postgres config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	poolConfig.MaxConnIdleTime = cfg.DBIdleTimeout

	logger.Info("Attempting to connect to PostgreSQL", zap.Int("max_retries", policy.MaxRetries), zap.Duration("retry_delay", policy.Delay))

	var lastErr error
	for attempt := 1; attempt <= policy.MaxRetries; attempt++ {
		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
		connectCancel()
		if err != nil {
			lastErr = fmt.Errorf("unable to create postgres connection pool (attempt %d/%d): %w", attempt, policy.MaxRetries, err)
			logger.Warn("Postgres connection pool creation failed, retrying...", zap.Int("attempt", attempt), zap.Error(err))
			if werr := policy.wait(ctx, attempt); werr != nil {
				return nil, werr
			}
			continue
		}

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		err = pool.Ping(pingCtx)
		pingCancel()
		if err == nil {
			logger.Info("Successfully connected and pinged PostgreSQL", zap.Int("attempt", attempt))
			return pool, nil
		}

		pool.Close()
		lastErr = fmt.Errorf("unable to ping postgres database (attempt %d/%d): %w", attempt, policy.MaxRetries, err)
		logger.Warn("Postgres ping failed, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if werr := policy.wait(ctx, attempt); werr != nil {
			return nil, werr
		}
	}

	logger.Error("Failed to connect to PostgreSQL after all retries", zap.Int("attempts", policy.MaxRetries), zap.Error(lastErr))
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", policy.MaxRetries, lastErr)
}

// SetupRedis возвращает nil, nil, если REDIS_ADDR не задан.
func SetupRedis(ctx context.Context, cfg *config.Config, policy RetryPolicy, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR is not set, Redis features disabled")
		return nil, nil
	}
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	logger.Info("Attempting to connect and ping Redis", zap.String("address", opts.Addr), zap.Int("db", opts.DB))

	var lastErr error
	for attempt := 1; attempt <= policy.MaxRetries; attempt++ {
		client := redis.NewClient(opts)

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		pingCancel()
		if err == nil {
			logger.Info("Successfully connected and pinged Redis", zap.Int("attempt", attempt))
			return client, nil
		}

		_ = client.Close()
		lastErr = fmt.Errorf("unable to ping redis (attempt %d/%d): %w", attempt, policy.MaxRetries, err)
		logger.Warn("Redis ping failed, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if werr := policy.wait(ctx, attempt); werr != nil {
			return nil, werr
		}
	}

	logger.Error("Failed to connect to Redis after all retries", zap.Int("attempts", policy.MaxRetries), zap.Error(lastErr))
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", policy.MaxRetries, lastErr)
}

// ConnectRabbitMQ возвращает nil, nil, если RABBITMQ_URL не задан.
func ConnectRabbitMQ(ctx context.Context, cfg *config.Config, policy RetryPolicy, logger *zap.Logger) (*amqp091.Connection, error) {
	if cfg.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL is not set, site events will not be published")
		return nil, nil
	}
	logger.Info("Attempting to connect to RabbitMQ",
		zap.String("url", maskURL(cfg.RabbitMQURL)),
		zap.Int("max_retries", policy.MaxRetries),
		zap.Duration("retry_delay", policy.Delay),
	)

	var lastErr error
	for attempt := 1; attempt <= policy.MaxRetries; attempt++ {
		conn, err := amqp091.Dial(cfg.RabbitMQURL)
		if err == nil {
			logger.Info("Successfully connected to RabbitMQ", zap.Int("attempt", attempt))
			go watchRabbitMQ(conn, logger)
			return conn, nil
		}
		lastErr = err
		logger.Warn("RabbitMQ connection failed, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		if werr := policy.wait(ctx, attempt); werr != nil {
			return nil, werr
		}
	}

	logger.Error("Failed to connect to RabbitMQ after all retries", zap.Int("attempts", policy.MaxRetries), zap.Error(lastErr))
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", policy.MaxRetries, lastErr)
}

func watchRabbitMQ(conn *amqp091.Connection, logger *zap.Logger) {
	notifyClose := conn.NotifyClose(make(chan *amqp091.Error, 1))
	if err := <-notifyClose; err != nil {
		// TODO: переподключение паблишера вместо деградации до логирования ошибок
		logger.Error("RabbitMQ connection closed unexpectedly", zap.Error(err))
		return
	}
	logger.Info("RabbitMQ connection closed gracefully")
}

// maskURL скрывает пароль в URL для логов.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
