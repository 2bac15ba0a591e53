package output

import "messenger-selfcheck/internal/domain"

// ResultRepository interface - Output port
// Persists completed assessment submissions for later review.
type ResultRepository interface {
	// SaveResult stores one confirmed submission
	SaveResult(result *domain.AssessmentResult) error

	// RecentResults returns the newest results for a sender, newest first
	RecentResults(senderID string, limit int) ([]domain.AssessmentResult, error)
}
