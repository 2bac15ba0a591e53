package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"messenger-selfcheck/configs"
	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure QuestionsClientAdapter implements QuestionsClient interface
var _ output.QuestionsClient = (*QuestionsClientAdapter)(nil)

// senderIDField is the key the scoring service expects the user identifier under
const senderIDField = "facebook_sender_id"

// QuestionsClientAdapter struct - Output adapter for the remote questions
// service: serves the catalog on GET and scores a completed answer set on POST.
// Calls are bounded by the configured timeout and never retried here.
type QuestionsClientAdapter struct {
	httpClient *http.Client
	url        string
}

// NewQuestionsClientAdapter func - Creates new questions service client adapter
func NewQuestionsClientAdapter(config configs.Questions) *QuestionsClientAdapter {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if config.TimeoutSeconds <= 0 {
		timeout = 10 * time.Second
	}

	adapter := &QuestionsClientAdapter{
		httpClient: &http.Client{Timeout: timeout},
		url:        config.URL,
	}

	logrus.Infof("Questions client adapter initialized with URL: %s, timeout: %v", config.URL, timeout)

	return adapter
}

// FetchQuestions - Retrieves the ordered question catalog
func (a *QuestionsClientAdapter) FetchQuestions(ctx context.Context) (domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("questions service returned status %d - %s", resp.StatusCode, string(body))
	}

	var catalog domain.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode question catalog: %w", err)
	}

	return catalog, nil
}

// submitResponse - Scoring service response shape
type submitResponse struct {
	Severity interface{} `json:"severity"`
}

// SubmitAnswers - Posts the collected answers for scoring and returns the severity.
// Internal question ids are mapped to the field keys the service expects.
func (a *QuestionsClientAdapter) SubmitAnswers(ctx context.Context, senderID string, answers map[string]string, catalog domain.Catalog) (string, error) {
	payload := map[string]interface{}{
		senderIDField: senderID,
	}
	for questionID, value := range answers {
		question, found := catalog.ByID(questionID)
		if !found {
			// The catalog changed since this answer was recorded
			logrus.Warnf("Answer for unknown question id %s, submitting under raw id", questionID)
			payload[questionID] = value
			continue
		}
		payload[question.SubmitKey()] = value
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode submission payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit answers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("questions service returned status %d - %s", resp.StatusCode, string(body))
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode submission response: %w", err)
	}
	if result.Severity == nil {
		return "", domain.ErrMissingSeverity
	}

	return fmt.Sprintf("%v", result.Severity), nil
}
