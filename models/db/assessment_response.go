package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AssessmentResponse is written once per candidate submission and
// never mutated afterwards.
type AssessmentResponse struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AssessmentID string    `gorm:"type:varchar(36);index" json:"assessmentId"`
	CandidateID  string    `gorm:"type:varchar(36);index" json:"candidateId"`
	Answers      Answers   `gorm:"type:jsonb" json:"answers"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (r *AssessmentResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Answers maps question id to the answer value. The value shape
// depends on the question type: string for choice/text/file-upload,
// []string for multi-choice, number for numeric.
type Answers map[string]interface{}

func (j Answers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Answers) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return errors.Errorf("unsupported answers column type %T", value)
}
