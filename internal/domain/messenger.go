package domain

// StartPayload is the postback payload Messenger sends for the Get Started
// button and the persistent menu restart entry.
const StartPayload = "start"

// IncomingEvent represents one inbound messaging event (domain entity),
// already stripped of the webhook envelope.
type IncomingEvent struct {
	SenderID          string
	IsStartSignal     bool
	HasMessage        bool
	MessageText       string
	QuickReplyPayload string
	IsEcho            bool
}

// WorthProcessing reports whether the event should change state at all.
// Echoes of the bot's own outgoing messages carry no reply to process.
func (e IncomingEvent) WorthProcessing() bool {
	return e.HasMessage && !e.IsEcho
}

// Reply extracts the user's reply value: the quick-reply payload when the user
// tapped a button, otherwise the free-text body.
func (e IncomingEvent) Reply() string {
	if e.QuickReplyPayload != "" {
		return e.QuickReplyPayload
	}
	return e.MessageText
}
