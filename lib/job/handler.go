package job

import (
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	jobstore "talentflow-backend/lib/job/store"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data jobapimodels.JobData) (*dbmodels.Job, error)
	Update(id string, data jobapimodels.JobUpdate) (*dbmodels.Job, error)
	GetByID(id string) (*dbmodels.Job, error)
	List(filter dbmodels.JobFilter, pagination apimodels.Pagination) (apimodels.ListResponse, error)
	Reorder(jobIDs []string) error
}

func NewHandler(store jobstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

// NewInstance builds the handler with a store bound to the given
// connection; used by the app wiring.
func NewInstance(db *gorm.DB) Provider {
	return NewHandler(jobstore.NewInstance(db))
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (*dbmodels.Job, error) {
	existing, err := i.store.GetBySlug(data.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "slug lookup failed")
	}
	if existing != nil {
		return nil, apimodels.NewValidationError("Slug must be unique")
	}

	// New jobs land at the tail of the board.
	count, err := i.store.Count()
	if err != nil {
		return nil, err
	}
	rec := dbmodels.Job{
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Status:      data.Status,
		Tags:        datatypes.NewJSONSlice(orEmpty(data.Tags)),
		JobOrder:    int(count),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	return i.mustGet(id)
}

func (i impl) Update(id string, data jobapimodels.JobUpdate) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("job not found")
	}

	updMap := map[string]interface{}{}
	if data.Title != nil {
		updMap["title"] = *data.Title
	}
	if data.Slug != nil && *data.Slug != rec.Slug {
		existing, err := i.store.GetBySlug(*data.Slug)
		if err != nil {
			return nil, errors.Wrap(err, "slug lookup failed")
		}
		if existing != nil {
			return nil, apimodels.NewValidationError("Slug must be unique")
		}
		updMap["slug"] = *data.Slug
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.Status != nil {
		updMap["status"] = *data.Status
	}
	if data.Tags != nil {
		updMap["tags"] = datatypes.NewJSONSlice(orEmpty(*data.Tags))
	}
	if err = i.store.Update(id, updMap); err != nil {
		return nil, err
	}
	return i.mustGet(id)
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("job not found")
	}
	return rec, nil
}

func (i impl) List(filter dbmodels.JobFilter, pagination apimodels.Pagination) (apimodels.ListResponse, error) {
	page, limit := pagination.GetPage(10)
	list, rowCount, err := i.store.List(filter, page, limit)
	if err != nil {
		return apimodels.ListResponse{}, err
	}
	return apimodels.NewListResponse(list, page, limit, rowCount), nil
}

func (i impl) Reorder(jobIDs []string) error {
	return i.store.Reorder(jobIDs)
}

func (i impl) mustGet(id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Errorf("job %s vanished after write", id)
	}
	return rec, nil
}

func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
