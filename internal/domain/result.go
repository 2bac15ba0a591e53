package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentResult struct - Core domain entity, one completed questionnaire
// submission with the severity returned by the scoring service.
type AssessmentResult struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	SenderID  string     `gorm:"type:varchar(64);not null;index"`
	Severity  string     `gorm:"type:varchar(32);not null;"`
	Answers   string     `gorm:"type:TEXT"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *AssessmentResult) TableName() string {
	return "assessment_results"
}

// BeforeCreate hook - generates UUID before creating
func (r *AssessmentResult) BeforeCreate(tx *gorm.DB) (err error) {
	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	r.ID = &uuid
	return nil
}

// NewAssessmentResult builds a result row from a confirmed submission
func NewAssessmentResult(senderID, severity string, answers map[string]string) (*AssessmentResult, error) {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	return &AssessmentResult{
		SenderID: senderID,
		Severity: severity,
		Answers:  string(encoded),
	}, nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&AssessmentResult{})
	if err != nil {
		panic(err)
	}
}
