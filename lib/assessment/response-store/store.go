package responsestore

import (
	dbmodels "talentflow-backend/models/db"

	"gorm.io/gorm"
)

// Provider writes submissions; responses are immutable once created.
type Provider interface {
	Create(rec dbmodels.AssessmentResponse) (id string, err error)
	ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssessmentResponse) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error) {
	list = []dbmodels.AssessmentResponse{}
	err = i.db.
		Where("assessment_id = ?", assessmentID).
		Order("submitted_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
