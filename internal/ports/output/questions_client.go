package output

import (
	"context"

	"messenger-selfcheck/internal/domain"
)

// QuestionsClient interface - Output port
// Defines what the application needs from the remote questions service:
// the ordered question catalog, and scoring of a completed answer set.
type QuestionsClient interface {
	// FetchQuestions retrieves the ordered question catalog
	FetchQuestions(ctx context.Context) (domain.Catalog, error)

	// SubmitAnswers posts the collected answers for scoring and returns the
	// severity value from the response. The catalog is needed to map internal
	// question ids to the field keys the service expects.
	SubmitAnswers(ctx context.Context, senderID string, answers map[string]string, catalog domain.Catalog) (string, error)
}
