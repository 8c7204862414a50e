package candidatestore

import (
	"strings"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	List(filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, rowCount int64, err error)
	ListAll(filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	AddNote(rec dbmodels.CandidateNote) (id string, err error)
	ListNotes(candidateID string) (list []dbmodels.CandidateNote, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Order("applied_at")
	i.addFilter(tx, filter)
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err = tx.Limit(limit).Offset(offset).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter dbmodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Order("applied_at")
	i.addFilter(tx, filter)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddNote(rec dbmodels.CandidateNote) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListNotes(candidateID string) (list []dbmodels.CandidateNote, err error) {
	list = []dbmodels.CandidateNote{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(email) like ?", searchValue, searchValue)
	}
	if filter.Stage != "" {
		tx.Where("current_stage = ?", filter.Stage)
	}
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
}
