package messaging

import (
	"context"

	"go.uber.org/zap"
)

var _ SiteEventPublisher = (*NoopSiteEventPublisher)(nil)

// NoopSiteEventPublisher используется, когда RabbitMQ не настроен.
type NoopSiteEventPublisher struct {
	logger *zap.Logger
}

func NewNoopSiteEventPublisher(logger *zap.Logger) *NoopSiteEventPublisher {
	return &NoopSiteEventPublisher{logger: logger.Named("NoopSiteEventPublisher")}
}

func (p *NoopSiteEventPublisher) PublishSiteEvent(_ context.Context, event SiteEvent) error {
	p.logger.Debug("Site event dropped, no broker configured", zap.String("type", event.Type), zap.Int64("tenant_id", event.TenantID))
	return nil
}
