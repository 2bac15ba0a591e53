package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"messenger-selfcheck/configs"
	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MessengerClientAdapter implements MessengerClient interface
var _ output.MessengerClient = (*MessengerClientAdapter)(nil)

const defaultSendTimeout = 10 * time.Second

// MessengerClientAdapter struct - Output adapter for the Facebook Graph API.
// Every send is bracketed with typing_on/typing_off sender actions.
type MessengerClientAdapter struct {
	httpClient  *http.Client
	accessToken string
	graphURL    string
	profileURL  string
}

// NewMessengerClientAdapter func - Creates new Messenger client adapter
func NewMessengerClientAdapter(config configs.Facebook) *MessengerClientAdapter {
	graphURL := config.GraphURL
	if graphURL == "" {
		graphURL = "https://graph.facebook.com/v2.6/me/messages"
	}

	profileURL := config.GraphURLProfile
	if profileURL == "" {
		profileURL = "https://graph.facebook.com/v2.6/me/messenger_profile"
	}

	adapter := &MessengerClientAdapter{
		httpClient:  &http.Client{Timeout: defaultSendTimeout},
		accessToken: config.PageAccessToken,
		graphURL:    graphURL,
		profileURL:  profileURL,
	}

	logrus.Infof("Messenger client adapter initialized with graph URL: %s", graphURL)

	return adapter
}

// Graph API wire shapes

type recipient struct {
	ID string `json:"id"`
}

type quickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

type messagePayload struct {
	Text         string       `json:"text"`
	QuickReplies []quickReply `json:"quick_replies,omitempty"`
}

type sendRequest struct {
	Recipient     recipient       `json:"recipient"`
	MessagingType string          `json:"messaging_type,omitempty"`
	Message       *messagePayload `json:"message,omitempty"`
	SenderAction  string          `json:"sender_action,omitempty"`
}

// SendTextMessage - Sends a plain text message to a user
func (a *MessengerClientAdapter) SendTextMessage(ctx context.Context, recipientID, text string) error {
	return a.sendMessage(ctx, recipientID, &messagePayload{Text: text})
}

// SendQuickReplies - Sends a question with quick-reply buttons carrying choice values as payloads
func (a *MessengerClientAdapter) SendQuickReplies(ctx context.Context, recipientID, text string, choices []domain.ButtonChoice) error {
	replies := make([]quickReply, 0, len(choices))
	for _, choice := range choices {
		replies = append(replies, quickReply{
			ContentType: "text",
			Title:       choice.Label,
			Payload:     choice.Value,
		})
	}

	return a.sendMessage(ctx, recipientID, &messagePayload{Text: text, QuickReplies: replies})
}

// sendMessage delivers one message payload, bracketed by typing indicators
func (a *MessengerClientAdapter) sendMessage(ctx context.Context, recipientID string, message *messagePayload) error {
	a.sendTypingIndicator(ctx, recipientID, "typing_on")

	logrus.Infof("Sending message to %s", recipientID)
	err := a.postJSON(ctx, a.graphURL, sendRequest{
		Recipient:     recipient{ID: recipientID},
		MessagingType: "RESPONSE",
		Message:       message,
	})

	a.sendTypingIndicator(ctx, recipientID, "typing_off")

	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	return nil
}

// sendTypingIndicator - Best effort; a failed indicator never fails the turn
func (a *MessengerClientAdapter) sendTypingIndicator(ctx context.Context, recipientID, action string) {
	err := a.postJSON(ctx, a.graphURL, sendRequest{
		Recipient:    recipient{ID: recipientID},
		SenderAction: action,
	})
	if err != nil {
		logrus.Warnf("Failed to send %s to %s: %v", action, recipientID, err)
	}
}

// SetGreeting - Installs the localized greeting text and the Get Started payload
func (a *MessengerClientAdapter) SetGreeting(ctx context.Context) error {
	profile := map[string]interface{}{
		"greeting": []map[string]string{
			{
				"locale": "ar_AR",
				"text":   "التشخيص الذاتي لفيروس كورونا المستجد (حسب الأعراض فقط)",
			},
			{
				"locale": "fr_FR",
				"text":   "Testez vous contre Covid-19 (Symptômes uniquement)",
			},
			{
				"locale": "default",
				"text":   "Self check againt Covid-19 (Symptoms only)",
			},
		},
		"get_started": map[string]string{"payload": domain.StartPayload},
	}

	if err := a.postJSON(ctx, a.profileURL, profile); err != nil {
		return fmt.Errorf("failed to set greeting: %w", err)
	}
	return nil
}

// SetPersistentMenu - Installs the persistent menu
func (a *MessengerClientAdapter) SetPersistentMenu(ctx context.Context) error {
	menu := map[string]interface{}{
		"persistent_menu": []map[string]interface{}{
			{
				"locale":                  "default",
				"composer_input_disabled": false,
				"call_to_actions": []map[string]interface{}{
					{
						"type":    "postback",
						"title":   "Recommencez - أعد التشخيص",
						"payload": domain.StartPayload,
					},
					{
						"type":    "postback",
						"title":   "Appelez le 3030 اتصل بـ",
						"payload": "do_call",
					},
					{
						"type":                 "web_url",
						"title":                "موقع وزارة الصحة",
						"url":                  "http://www.sante.gov.dz",
						"webview_height_ratio": "full",
					},
				},
			},
		},
	}

	if err := a.postJSON(ctx, a.profileURL, menu); err != nil {
		return fmt.Errorf("failed to set persistent menu: %w", err)
	}
	return nil
}

// postJSON posts a JSON body to a Graph API endpoint with the page access token
func (a *MessengerClientAdapter) postJSON(ctx context.Context, endpoint string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	requestURL := fmt.Sprintf("%s?access_token=%s", endpoint, url.QueryEscape(a.accessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("graph api returned status %d - %s", resp.StatusCode, string(respBody))
	}

	return nil
}
