package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"messenger-selfcheck/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MockWebhookService is a mock implementation of input.WebhookService
type MockWebhookService struct {
	mu sync.Mutex
	// HandleEventFunc func
	HandleEventFunc func(ctx context.Context, event domain.IncomingEvent) error
	// HandledEvents captures the events passed to HandleEvent
	HandledEvents []domain.IncomingEvent
}

func (m *MockWebhookService) HandleEvent(ctx context.Context, event domain.IncomingEvent) error {
	m.mu.Lock()
	m.HandledEvents = append(m.HandledEvents, event)
	m.mu.Unlock()
	if m.HandleEventFunc != nil {
		return m.HandleEventFunc(ctx, event)
	}
	return nil
}

func newTestApp(service *MockWebhookService, verifyToken string) *fiber.App {
	handler := NewWebhookHandler(service, verifyToken)
	app := fiber.New()
	app.Get("/", handler.VerifyWebhook)
	app.Post("/", handler.HandleWebhook)
	return app
}

// TestVerifyWebhookEchoesChallenge tests the subscription handshake with a valid token
func TestVerifyWebhookEchoesChallenge(t *testing.T) {
	app := newTestApp(&MockWebhookService{}, "my-verify-token")

	req := httptest.NewRequest(http.MethodGet, "/?hub.mode=subscribe&hub.verify_token=my-verify-token&hub.challenge=12345", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "12345" {
		t.Errorf("expected challenge 12345 echoed back, got: %s", string(body))
	}
}

// TestVerifyWebhookRejectsWrongToken tests the handshake with a mismatched token
func TestVerifyWebhookRejectsWrongToken(t *testing.T) {
	app := newTestApp(&MockWebhookService{}, "my-verify-token")

	req := httptest.NewRequest(http.MethodGet, "/?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", resp.StatusCode)
	}
}

// TestVerifyWebhookWithoutHandshakeParams tests the plain GET response
func TestVerifyWebhookWithoutHandshakeParams(t *testing.T) {
	app := newTestApp(&MockWebhookService{}, "my-verify-token")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Nothing to see here!" {
		t.Errorf("unexpected body: %s", string(body))
	}
}

// TestHandleWebhookConvertsMessageEvent tests conversion of a text message entry
func TestHandleWebhookConvertsMessageEvent(t *testing.T) {
	service := &MockWebhookService{}
	app := newTestApp(service, "my-verify-token")

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [{
				"sender": {"id": "user-1"},
				"message": {"mid": "m1", "text": "hello", "quick_reply": {"payload": "ar"}}
			}]
		}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if len(service.HandledEvents) != 1 {
		t.Fatalf("expected 1 handled event, got %d", len(service.HandledEvents))
	}

	event := service.HandledEvents[0]
	if event.SenderID != "user-1" {
		t.Errorf("expected sender user-1, got %s", event.SenderID)
	}
	if !event.HasMessage || event.MessageText != "hello" {
		t.Errorf("expected message text hello, got: %+v", event)
	}
	if event.QuickReplyPayload != "ar" {
		t.Errorf("expected quick reply payload ar, got %s", event.QuickReplyPayload)
	}
	if event.IsStartSignal {
		t.Error("expected plain message not to be a start signal")
	}
}

// TestHandleWebhookConvertsStartPostback tests conversion of the Get Started postback
func TestHandleWebhookConvertsStartPostback(t *testing.T) {
	service := &MockWebhookService{}
	app := newTestApp(service, "my-verify-token")

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [{
				"sender": {"id": "user-1"},
				"postback": {"payload": "start"}
			}]
		}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if len(service.HandledEvents) != 1 {
		t.Fatalf("expected 1 handled event, got %d", len(service.HandledEvents))
	}
	if !service.HandledEvents[0].IsStartSignal {
		t.Error("expected start postback to produce a start signal event")
	}
}

// TestHandleWebhookRejectsNonPageObject tests envelope validation
func TestHandleWebhookRejectsNonPageObject(t *testing.T) {
	service := &MockWebhookService{}
	app := newTestApp(service, "my-verify-token")

	payload := `{"object": "user", "entry": [{"id": "x", "messaging": []}]}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
	if len(service.HandledEvents) != 0 {
		t.Errorf("expected no events handled, got %d", len(service.HandledEvents))
	}
}

// TestHandleWebhookSkipsEventWithoutSender tests that malformed entries are skipped
func TestHandleWebhookSkipsEventWithoutSender(t *testing.T) {
	service := &MockWebhookService{}
	app := newTestApp(service, "my-verify-token")

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [{"message": {"mid": "m1", "text": "hello"}}]
		}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if len(service.HandledEvents) != 0 {
		t.Errorf("expected no events handled, got %d", len(service.HandledEvents))
	}
}
