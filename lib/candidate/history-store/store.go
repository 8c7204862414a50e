package historystore

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider exposes the append-only stage log. There is no update or
// delete on purpose.
type Provider interface {
	Append(rec dbmodels.StageHistoryEvent) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.StageHistoryEvent, err error)
	LastByCandidate(candidateID string) (rec *dbmodels.StageHistoryEvent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(rec dbmodels.StageHistoryEvent) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.StageHistoryEvent, err error) {
	list = []dbmodels.StageHistoryEvent{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("timestamp").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) LastByCandidate(candidateID string) (*dbmodels.StageHistoryEvent, error) {
	rec := dbmodels.StageHistoryEvent{}
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Order("timestamp desc").
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
