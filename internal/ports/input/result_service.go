package input

import "messenger-selfcheck/internal/domain"

// ResultService interface - Input port (use case)
// Read access to stored assessment results
type ResultService interface {
	// RecentResults returns the newest results for a sender, newest first
	RecentResults(senderID string, limit int) ([]domain.AssessmentResult, error)
}
