package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Типы событий сайта
const (
	EventStructureGenerated = "site.structure.generated"
	EventCopyGenerated      = "site.copy.generated"
	EventPublished          = "site.published"
)

// SiteEvent - событие жизненного цикла сайта тенанта.
type SiteEvent struct {
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	TenantID       int64     `json:"tenant_id"`
	PagesCreated   int       `json:"pages_created,omitempty"`
	TotalProcessed int       `json:"total_processed,omitempty"`
	TotalUpdated   int       `json:"total_updated,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewSiteEvent заполняет идентификатор и время события.
func NewSiteEvent(eventType string, tenantID int64) SiteEvent {
	return SiteEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		TenantID:   tenantID,
		OccurredAt: time.Now().UTC(),
	}
}

// SiteEventPublisher отправляет события сайта подписчикам.
type SiteEventPublisher interface {
	PublishSiteEvent(ctx context.Context, event SiteEvent) error
}
