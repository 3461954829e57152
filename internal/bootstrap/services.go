package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"rescue-site-server/internal/ai"
	"rescue-site-server/internal/config"
	"rescue-site-server/internal/generation"
	"rescue-site-server/internal/lock"
	"rescue-site-server/internal/messaging"
	"rescue-site-server/internal/repository"
	"rescue-site-server/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services - собранные зависимости приложения.
type Services struct {
	Pool       *pgxpool.Pool
	Redis      *redis.Client      // nil без REDIS_ADDR
	RabbitConn *amqp091.Connection // nil без RABBITMQ_URL

	Organizations repository.OrganizationRepository
	Animals       repository.AnimalRepository
	Pages         repository.PageRepository
	Sections      repository.SectionRepository

	Locker         lock.Locker
	Publisher      messaging.SiteEventPublisher
	SiteGeneration service.SiteGenerationService

	closers []func() error
}

// Connect поднимает подключения к Postgres, Redis и RabbitMQ.
func Connect(ctx context.Context, cfg *config.Config, policy RetryPolicy, logger *zap.Logger) (*Services, error) {
	s := &Services{}

	pool, err := SetupPostgres(ctx, cfg, policy, logger)
	if err != nil {
		return nil, err
	}
	s.Pool = pool
	s.closers = append(s.closers, func() error { pool.Close(); return nil })

	redisClient, err := SetupRedis(ctx, cfg, policy, logger)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if redisClient != nil {
		s.Redis = redisClient
		s.closers = append(s.closers, redisClient.Close)
	}

	conn, err := ConnectRabbitMQ(ctx, cfg, policy, logger)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if conn != nil {
		s.RabbitConn = conn
		s.closers = append(s.closers, conn.Close)
	}

	s.Organizations = repository.NewPgOrganizationRepository(pool, logger)
	s.Animals = repository.NewPgAnimalRepository(pool, logger)
	s.Pages = repository.NewPgPageRepository(pool, logger)
	s.Sections = repository.NewPgSectionRepository(pool, logger)
	return s, nil
}

// NewServices собирает сервис генерации поверх подключений.
func NewServices(ctx context.Context, cfg *config.Config, policy RetryPolicy, logger *zap.Logger) (*Services, error) {
	s, err := Connect(ctx, cfg, policy, logger)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		s.Locker = lock.NewRedisLocker(s.Redis, cfg.GenerationLockTTL, logger)
	} else {
		logger.Warn("Using in-process generation lock, concurrent instances are not coordinated")
		s.Locker = lock.NewLocalLocker()
	}

	if s.RabbitConn != nil {
		publisher, err := messaging.NewRabbitMQSiteEventPublisher(s.RabbitConn, cfg.SiteEventsExchange, logger)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to create site event publisher: %w", err)
		}
		// Канал закрывается раньше соединения
		s.closers = append([]func() error{publisher.Close}, s.closers...)
		s.Publisher = publisher
	} else {
		s.Publisher = messaging.NewNoopSiteEventPublisher(logger)
	}

	client, err := ai.NewCompletionClient(ctx, cfg, logger)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	completer := generation.NewCompleter(client, cfg.AIMaxRetries, cfg.AITemperature, logger)

	s.SiteGeneration = service.NewSiteGenerationService(
		s.Organizations,
		s.Animals,
		s.Pages,
		s.Sections,
		completer,
		cfg.AIModel,
		s.Locker,
		s.Publisher,
		logger,
	)
	return s, nil
}

// Close закрывает подключения в порядке регистрации.
func (s *Services) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
