package candidateapimodels

import (
	"strings"

	"talentflow-backend/models"

	"github.com/pkg/errors"
)

type CandidateData struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	JobID string       `json:"jobId"`
	Stage models.Stage `json:"stage"`
}

func (d *CandidateData) Validate() error {
	if d.Name == "" {
		return errors.New("candidate name is required")
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return errors.New("candidate email is invalid")
	}
	if d.JobID == "" {
		return errors.New("jobId is required")
	}
	if d.Stage == "" {
		d.Stage = models.StageApplied
	}
	if !d.Stage.IsValid() {
		return errors.Errorf("unknown stage %q", d.Stage)
	}
	return nil
}

type StageUpdate struct {
	Stage models.Stage `json:"stage"`
}

func (d StageUpdate) Validate() error {
	if !d.Stage.IsValid() {
		return errors.Errorf("unknown stage %q", d.Stage)
	}
	return nil
}

type NoteData struct {
	Text string `json:"text"`
}

func (d NoteData) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("note text is required")
	}
	return nil
}
