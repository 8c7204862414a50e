package dbmodels

import (
	"time"

	"talentflow-backend/models"
)

type Candidate struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255)" json:"name"`
	Email        string          `gorm:"type:varchar(255);index" json:"email"`
	Phone        string          `gorm:"type:varchar(50)" json:"phone"`
	JobID        string          `gorm:"type:varchar(36);index" json:"jobId"`
	Job          *Job            `gorm:"foreignKey:JobID" json:"-"`
	CurrentStage models.Stage    `gorm:"type:varchar(50);index" json:"currentStage"`
	AppliedAt    time.Time       `json:"appliedAt"`
	Notes        []CandidateNote `gorm:"foreignKey:CandidateID" json:"notes"`
}

type CandidateFilter struct {
	Search string       `json:"search"`
	Stage  models.Stage `json:"stage"`
	JobID  string       `json:"jobId"`
}
