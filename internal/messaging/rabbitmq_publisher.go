package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var _ SiteEventPublisher = (*RabbitMQSiteEventPublisher)(nil)

// RabbitMQSiteEventPublisher публикует события в fanout exchange.
type RabbitMQSiteEventPublisher struct {
	ch       *amqp091.Channel
	exchange string
	mu       sync.Mutex // канал amqp не потокобезопасен
	logger   *zap.Logger
}

// NewRabbitMQSiteEventPublisher открывает канал и объявляет durable fanout exchange.
// Переподключение остается на вызывающем коде.
func NewRabbitMQSiteEventPublisher(conn *amqp091.Connection, exchange string, logger *zap.Logger) (*RabbitMQSiteEventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}
	log := logger.Named("SiteEventPublisher")

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Failed to open a channel", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		log.Error("Failed to declare exchange", zap.String("exchange", exchange), zap.Error(err))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}
	log.Info("Site events exchange declared", zap.String("exchange", exchange))

	return &RabbitMQSiteEventPublisher{ch: ch, exchange: exchange, logger: log}, nil
}

func (p *RabbitMQSiteEventPublisher) PublishSiteEvent(ctx context.Context, event SiteEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal site event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		"",         // routing key (fanout)
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   event.EventID,
			Type:        event.Type,
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish site event",
			zap.String("type", event.Type),
			zap.Int64("tenant_id", event.TenantID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish site event '%s': %w", event.Type, err)
	}

	p.logger.Debug("Site event published", zap.String("type", event.Type), zap.Int64("tenant_id", event.TenantID))
	return nil
}

// Close закрывает канал. Соединение закрывает владелец.
func (p *RabbitMQSiteEventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}
