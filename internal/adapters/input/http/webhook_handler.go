package http

import (
	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/input"
	"messenger-selfcheck/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// WebhookHandler struct - Primary/Driving adapter for the Messenger webhook
type WebhookHandler struct {
	service     input.WebhookService
	verifyToken string
	validator   validator.Validator
}

// NewWebhookHandler func - Creates new Messenger webhook handler
func NewWebhookHandler(service input.WebhookService, verifyToken string) *WebhookHandler {
	return &WebhookHandler{
		service:     service,
		verifyToken: verifyToken,
		validator:   validator.New(),
	}
}

// HandleWebhook func - Handles incoming Messenger webhook requests
// @Summary Messenger Webhook
// @Description Handles messaging events from the Messenger platform
// @Tags Messenger
// @Accept application/json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [post]
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var request WebhookRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorf("Failed to parse webhook request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := h.validator.ValidateStruct(request); err != nil {
		logrus.Errorf("Invalid webhook envelope: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	for _, entry := range request.Entry {
		for _, messaging := range entry.Messaging {
			event := h.convertToDomainEvent(messaging)
			if event == nil {
				continue
			}

			logrus.Infof("Received messaging event: senderID=%s, start=%t, echo=%t",
				event.SenderID, event.IsStartSignal, event.IsEcho)

			if err := h.service.HandleEvent(c.Context(), *event); err != nil {
				logrus.Errorf("Failed to handle messaging event: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// VerifyWebhook func - Echoes back hub.challenge when the webhook is registered
// @Summary Webhook verification
// @Description Messenger subscription handshake
// @Tags Messenger
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *WebhookHandler) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && challenge != "" {
		if c.Query("hub.verify_token") != h.verifyToken {
			return c.Status(fiber.StatusForbidden).SendString("Verification token mismatch")
		}
		return c.SendString(challenge)
	}

	return c.SendString("Nothing to see here!")
}

// convertToDomainEvent - Converts a webhook messaging entry to a domain event
func (h *WebhookHandler) convertToDomainEvent(messaging MessagingEvent) *domain.IncomingEvent {
	if messaging.Sender == nil || messaging.Sender.ID == "" {
		logrus.Warn("Skipping messaging event without sender")
		return nil
	}

	event := &domain.IncomingEvent{
		SenderID: messaging.Sender.ID,
	}

	if messaging.Postback != nil && messaging.Postback.Payload == domain.StartPayload {
		event.IsStartSignal = true
	}

	if messaging.Message != nil {
		event.HasMessage = true
		event.MessageText = messaging.Message.Text
		event.IsEcho = messaging.Message.IsEcho
		if messaging.Message.QuickReply != nil {
			event.QuickReplyPayload = messaging.Message.QuickReply.Payload
		}
	}

	return event
}
