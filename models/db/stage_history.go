package dbmodels

import (
	"time"

	"talentflow-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageHistoryEvent is an append-only log record. Events are never
// updated or deleted; a nil FromStage marks the genesis event.
type StageHistoryEvent struct {
	ID          string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CandidateID string        `gorm:"type:varchar(36);index" json:"candidateId"`
	FromStage   *models.Stage `gorm:"type:varchar(50)" json:"fromStage"`
	ToStage     models.Stage  `gorm:"type:varchar(50)" json:"toStage"`
	Timestamp   time.Time     `gorm:"index" json:"timestamp"`
	ChangedBy   string        `gorm:"type:varchar(36)" json:"changedBy"`
}

func (StageHistoryEvent) TableName() string {
	return "stage_history"
}

func (e *StageHistoryEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
