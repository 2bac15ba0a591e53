package output

import (
	"context"

	"messenger-selfcheck/internal/domain"
)

// MessengerClient interface - Output port
// Defines what the application needs from the Messenger platform: delivering
// one outbound action per turn, plus the one-off profile setup calls.
// Implementations bracket each send with a typing indicator.
type MessengerClient interface {
	// SendTextMessage sends a plain text message to a user
	SendTextMessage(ctx context.Context, recipientID, text string) error

	// SendQuickReplies sends a question with quick-reply buttons; each button
	// carries its underlying value as the reply payload
	SendQuickReplies(ctx context.Context, recipientID, text string, choices []domain.ButtonChoice) error

	// SetGreeting installs the localized greeting and the Get Started payload
	SetGreeting(ctx context.Context) error

	// SetPersistentMenu installs the persistent menu
	SetPersistentMenu(ctx context.Context) error
}
