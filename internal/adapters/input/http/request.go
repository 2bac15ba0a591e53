package http

type (
	// WebhookRequest struct - Messenger webhook envelope DTO
	WebhookRequest struct {
		Object string  `json:"object" validate:"required,eq=page"`
		Entry  []Entry `json:"entry" validate:"required,min=1"`
	}

	// Entry struct - One page entry of the webhook envelope
	Entry struct {
		ID        string           `json:"id"`
		Time      int64            `json:"time"`
		Messaging []MessagingEvent `json:"messaging"`
	}

	// MessagingEvent struct - One messaging event inside an entry
	MessagingEvent struct {
		Sender    *Participant `json:"sender"`
		Recipient *Participant `json:"recipient"`
		Timestamp int64        `json:"timestamp"`
		Message   *Message     `json:"message,omitempty"`
		Postback  *Postback    `json:"postback,omitempty"`
	}

	// Participant struct
	Participant struct {
		ID string `json:"id"`
	}

	// Message struct - Inbound message body; quick_reply is set when the user
	// tapped one of the bot's buttons
	Message struct {
		MID        string      `json:"mid,omitempty"`
		Text       string      `json:"text,omitempty"`
		IsEcho     bool        `json:"is_echo,omitempty"`
		QuickReply *QuickReply `json:"quick_reply,omitempty"`
	}

	// QuickReply struct
	QuickReply struct {
		Payload string `json:"payload"`
	}

	// Postback struct
	Postback struct {
		Payload string `json:"payload"`
	}

	// ResultsQueryRequest struct - HTTP query request DTO
	ResultsQueryRequest struct {
		SenderID string `json:"sender_id" form:"sender_id" query:"sender_id" validate:"required"`
		Limit    int    `json:"limit,omitempty" form:"limit" query:"limit" validate:"omitempty,gte=1,lte=100"`
	}
)
