package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt is append-only: rows are inserted once per submission and never
// updated or deleted afterwards. TotalQuestions is a snapshot of the question
// count at submission time, not a live link to the question set.
type QuizAttempt struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz           *Quiz          `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"quiz,omitempty"`
	Score          int            `gorm:"column:score;not null" json:"score"`
	TotalQuestions int            `gorm:"column:total_questions;not null" json:"total_questions"`
	Percentage     int            `gorm:"column:percentage;not null" json:"percentage"`
	Answers        datatypes.JSON `gorm:"column:answers;type:jsonb" json:"answers"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempt" }
