package jobstore

import (
	"strings"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Job, err error)
	GetBySlug(slug string) (rec *dbmodels.Job, err error)
	List(filter dbmodels.JobFilter, page, limit int) (list []dbmodels.Job, rowCount int64, err error)
	ListAll(filter dbmodels.JobFilter) (list []dbmodels.Job, err error)
	Reorder(orderedIDs []string) error
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
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
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
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

func (i impl) GetBySlug(slug string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("slug = ?", slug).
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

func (i impl) List(filter dbmodels.JobFilter, page, limit int) (list []dbmodels.Job, rowCount int64, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Order("job_order")
	i.addFilter(tx, filter)

	// Tag matching happens on the decoded json column, so the page is
	// cut in memory whenever a tag filter is present.
	if len(filter.Tags) > 0 {
		var all []dbmodels.Job
		if err = tx.Find(&all).Error; err != nil {
			return nil, 0, err
		}
		matched := make([]dbmodels.Job, 0, len(all))
		for _, job := range all {
			if filter.MatchesTags(job) {
				matched = append(matched, job)
			}
		}
		rowCount = int64(len(matched))
		return cutPage(matched, page, limit), rowCount, nil
	}

	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	i.setPage(tx, page, limit)
	if err = tx.Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter dbmodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Order("job_order")
	i.addFilter(tx, filter)
	if err = tx.Find(&list).Error; err != nil {
		return nil, err
	}
	if len(filter.Tags) == 0 {
		return list, nil
	}
	matched := make([]dbmodels.Job, 0, len(list))
	for _, job := range list {
		if filter.MatchesTags(job) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

// Reorder assigns job_order = position for every id in one
// transaction; a failure leaves all orders untouched.
func (i impl) Reorder(orderedIDs []string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			res := tx.
				Model(&dbmodels.Job{}).
				Where("id = ?", id).
				Update("job_order", idx)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.Errorf("job %s not found", id)
			}
		}
		return nil
	})
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.Model(&dbmodels.Job{}).Count(&count).Error
	return count, err
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.JobFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx.Where("LOWER(title) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func cutPage(list []dbmodels.Job, page, limit int) []dbmodels.Job {
	start := (page - 1) * limit
	if start >= len(list) {
		return []dbmodels.Job{}
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
