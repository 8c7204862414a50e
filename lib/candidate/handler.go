package candidate

import (
	"fmt"
	"time"

	historystore "talentflow-backend/lib/candidate/history-store"
	candidatestore "talentflow-backend/lib/candidate/store"
	"talentflow-backend/lib/smtp"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData, changedBy string) (*dbmodels.Candidate, error)
	GetByID(id string) (*dbmodels.Candidate, error)
	List(filter dbmodels.CandidateFilter, pagination apimodels.Pagination) (apimodels.ListResponse, error)
	History(candidateID string) ([]dbmodels.StageHistoryEvent, error)
	Transition(candidateID string, toStage models.Stage, changedBy string) (*dbmodels.Candidate, error)
	AddNote(candidateID, authorID, text string) (*dbmodels.CandidateNote, error)
	Notes(candidateID string) ([]dbmodels.CandidateNote, error)
}

func NewHandler(db *gorm.DB, mailer smtp.Provider) Provider {
	return &impl{
		db:      db,
		store:   candidatestore.NewInstance(db),
		history: historystore.NewInstance(db),
		mailer:  mailer,
	}
}

type impl struct {
	db      *gorm.DB
	store   candidatestore.Provider
	history historystore.Provider
	mailer  smtp.Provider
}

// Create inserts the candidate together with the genesis history
// event (fromStage = nil) in one transaction.
func (i impl) Create(data candidateapimodels.CandidateData, changedBy string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		JobID:        data.JobID,
		CurrentStage: data.Stage,
		AppliedAt:    time.Now().UTC(),
		Notes:        []dbmodels.CandidateNote{},
	}
	var id string
	err := i.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		id, txErr = candidatestore.NewInstance(tx).Create(rec)
		if txErr != nil {
			return txErr
		}
		_, txErr = historystore.NewInstance(tx).Append(dbmodels.StageHistoryEvent{
			CandidateID: id,
			FromStage:   nil,
			ToStage:     rec.CurrentStage,
			Timestamp:   rec.AppliedAt,
			ChangedBy:   changedBy,
		})
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("candidate not found")
	}
	return rec, nil
}

func (i impl) List(filter dbmodels.CandidateFilter, pagination apimodels.Pagination) (apimodels.ListResponse, error) {
	page, limit := pagination.GetPage(50)
	list, rowCount, err := i.store.List(filter, page, limit)
	if err != nil {
		return apimodels.ListResponse{}, err
	}
	return apimodels.NewListResponse(list, page, limit, rowCount), nil
}

func (i impl) History(candidateID string) ([]dbmodels.StageHistoryEvent, error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("candidate not found")
	}
	return i.history.ListByCandidate(candidateID)
}

// Transition appends one history event and flips currentStage in a
// single transaction. There is no adjacency check: the board allows
// dragging to any column, and a redundant move still logs an event.
func (i impl) Transition(candidateID string, toStage models.Stage, changedBy string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("candidate not found")
	}

	fromStage := rec.CurrentStage
	now := time.Now().UTC()
	err = i.db.Transaction(func(tx *gorm.DB) error {
		_, txErr := historystore.NewInstance(tx).Append(dbmodels.StageHistoryEvent{
			CandidateID: candidateID,
			FromStage:   &fromStage,
			ToStage:     toStage,
			Timestamp:   now,
			ChangedBy:   changedBy,
		})
		if txErr != nil {
			return txErr
		}
		return candidatestore.NewInstance(tx).Update(candidateID, map[string]interface{}{
			"current_stage": toStage,
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := i.mustGet(candidateID)
	if err != nil {
		return nil, err
	}
	i.notifyStageChange(*updated, fromStage)
	return updated, nil
}

func (i impl) mustGet(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Errorf("candidate %s vanished after write", id)
	}
	return rec, nil
}

func (i impl) AddNote(candidateID, authorID, text string) (*dbmodels.CandidateNote, error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("candidate not found")
	}
	note := dbmodels.CandidateNote{
		CandidateID: candidateID,
		AuthorID:    authorID,
		Text:        text,
	}
	id, err := i.store.AddNote(note)
	if err != nil {
		return nil, err
	}
	note.ID = id
	return &note, nil
}

func (i impl) Notes(candidateID string) ([]dbmodels.CandidateNote, error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("candidate not found")
	}
	return i.store.ListNotes(candidateID)
}

// Best effort: a failed notification never fails the transition.
func (i impl) notifyStageChange(rec dbmodels.Candidate, fromStage models.Stage) {
	if i.mailer == nil || rec.Email == "" || fromStage == rec.CurrentStage {
		return
	}
	subject := "Your application status changed"
	message := fmt.Sprintf("Hi %s, your application moved from %s to %s.", rec.Name, fromStage, rec.CurrentStage)
	if err := i.mailer.SendEMail(rec.Email, subject, message); err != nil {
		log.WithError(err).WithField("candidate_id", rec.ID).Error("stage change notification failed")
	}
}
