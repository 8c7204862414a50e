package assessmentapimodels

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

type AssessmentData struct {
	JobID       string            `json:"jobId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Sections    dbmodels.Sections `json:"sections"`
}

func (d *AssessmentData) Validate() error {
	if d.JobID == "" {
		return errors.New("jobId is required")
	}
	if d.Title == "" {
		return errors.New("assessment title is required")
	}
	if d.Sections == nil {
		d.Sections = dbmodels.Sections{}
	}
	return d.Sections.Validate()
}

// AssessmentUpdate replaces the whole sections document when present;
// there is no partial-tree merge.
type AssessmentUpdate struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Sections    *dbmodels.Sections `json:"sections"`
}

func (d AssessmentUpdate) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return errors.New("assessment title cannot be empty")
	}
	if d.Sections != nil {
		return d.Sections.Validate()
	}
	return nil
}

type ResponseData struct {
	CandidateID string           `json:"candidateId"`
	Answers     dbmodels.Answers `json:"answers"`
}

func (d ResponseData) Validate() error {
	if d.CandidateID == "" {
		return errors.New("candidateId is required")
	}
	if len(d.Answers) == 0 {
		return errors.New("answers are empty")
	}
	return nil
}
