package postgres

import (
	"messenger-selfcheck/internal/domain"
	"messenger-selfcheck/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure ResultRepository implements ResultRepository interface
var _ output.ResultRepository = (*ResultRepository)(nil)

// ResultRepository struct - Secondary/Driven adapter for PostgreSQL
type ResultRepository struct {
	dbGorm *gorm.DB
}

// NewResultRepository func - Creates new PostgreSQL repository
func NewResultRepository(dbGorm *gorm.DB) *ResultRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &ResultRepository{
		dbGorm: dbGorm,
	}
}

// SaveResult func - Stores one confirmed submission
func (p *ResultRepository) SaveResult(result *domain.AssessmentResult) error {
	if err := p.dbGorm.Create(result).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// RecentResults func - Returns the newest results for a sender, newest first
func (p *ResultRepository) RecentResults(senderID string, limit int) ([]domain.AssessmentResult, error) {
	var results []domain.AssessmentResult
	query := p.dbGorm.
		Where("sender_id = ?", senderID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return results, nil
}
