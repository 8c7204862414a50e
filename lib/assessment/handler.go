package assessment

import (
	"time"

	assessmentdoc "talentflow-backend/lib/assessment/document"
	responsestore "talentflow-backend/lib/assessment/response-store"
	assessmentstore "talentflow-backend/lib/assessment/store"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error)
	Update(id string, data assessmentapimodels.AssessmentUpdate) (*dbmodels.Assessment, error)
	GetByID(id string) (*dbmodels.Assessment, error)
	List(jobID string) ([]dbmodels.Assessment, error)
	Preview(id string) (assessmentapimodels.PreviewForm, error)
	SubmitResponse(assessmentID string, data assessmentapimodels.ResponseData) (*dbmodels.AssessmentResponse, error)
}

func NewHandler(store assessmentstore.Provider, responses responsestore.Provider) Provider {
	return &impl{
		store:     store,
		responses: responses,
	}
}

func NewInstance(db *gorm.DB) Provider {
	return NewHandler(assessmentstore.NewInstance(db), responsestore.NewInstance(db))
}

type impl struct {
	store     assessmentstore.Provider
	responses responsestore.Provider
}

func (i impl) Create(data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{
		JobID:       data.JobID,
		Title:       data.Title,
		Description: data.Description,
		Sections:    data.Sections,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	return i.GetByID(id)
}

// Update replaces whole fields; when sections are present the entire
// document is swapped, there is no partial-tree merge.
func (i impl) Update(id string, data assessmentapimodels.AssessmentUpdate) (*dbmodels.Assessment, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("assessment not found")
	}

	updMap := map[string]interface{}{}
	if data.Title != nil {
		updMap["title"] = *data.Title
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.Sections != nil {
		updMap["sections"] = *data.Sections
	}
	if err = i.store.Update(id, updMap); err != nil {
		return nil, err
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("assessment not found")
	}
	return rec, nil
}

func (i impl) List(jobID string) ([]dbmodels.Assessment, error) {
	return i.store.List(jobID)
}

func (i impl) Preview(id string) (assessmentapimodels.PreviewForm, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return assessmentapimodels.PreviewForm{}, err
	}
	return assessmentdoc.BuildPreview(*rec), nil
}

func (i impl) SubmitResponse(assessmentID string, data assessmentapimodels.ResponseData) (*dbmodels.AssessmentResponse, error) {
	rec, err := i.GetByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if err = assessmentdoc.ValidateAnswers(rec.Sections, data.Answers); err != nil {
		return nil, apimodels.NewValidationError(err.Error())
	}
	response := dbmodels.AssessmentResponse{
		AssessmentID: assessmentID,
		CandidateID:  data.CandidateID,
		Answers:      data.Answers,
		SubmittedAt:  time.Now().UTC(),
	}
	id, err := i.responses.Create(response)
	if err != nil {
		return nil, err
	}
	response.ID = id
	return &response, nil
}
