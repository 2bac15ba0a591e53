package application

import (
	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"
)

// ResultService struct - Application service for reading stored assessment results
type ResultService struct {
	results output.ResultRepository
}

// NewResultService func - Creates new result service
func NewResultService(results output.ResultRepository) *ResultService {
	return &ResultService{
		results: results,
	}
}

// RecentResults returns the newest results for a sender, newest first
func (s *ResultService) RecentResults(senderID string, limit int) ([]domain.AssessmentResult, error) {
	return s.results.RecentResults(senderID, limit)
}
