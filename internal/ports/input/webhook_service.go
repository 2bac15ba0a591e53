package input

import (
	"context"

	"messenger-selfcheck/internal/domain"
)

// WebhookService interface - Input port (use case)
// Defines what the application can do with inbound messaging events
type WebhookService interface {
	// HandleEvent processes one inbound messaging event: exactly one state
	// transition and at most one outward action
	HandleEvent(ctx context.Context, event domain.IncomingEvent) error
}
