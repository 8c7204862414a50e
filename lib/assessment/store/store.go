package assessmentstore

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Assessment) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Assessment, err error)
	List(jobID string) (list []dbmodels.Assessment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Assessment) (id string, err error) {
	err = i.db.
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
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("assessment not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
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

func (i impl) List(jobID string) (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	tx := i.db.Order("created_at")
	if jobID != "" {
		tx = tx.Where("job_id = ?", jobID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
