package jobapimodels

import (
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"

	"github.com/pkg/errors"
)

type JobData struct {
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Status      models.JobStatus `json:"status"`
	Tags        []string         `json:"tags"`
}

func (d *JobData) Validate() error {
	if d.Title == "" {
		return errors.New("job title is required")
	}
	if d.Slug == "" {
		d.Slug = helpers.Slugify(d.Title)
	}
	if d.Status == "" {
		d.Status = models.JobStatusDraft
	}
	if !d.Status.IsValid() {
		return errors.Errorf("unknown job status %q", d.Status)
	}
	return nil
}

// JobUpdate carries the PATCH body; nil fields are left untouched.
type JobUpdate struct {
	Title       *string           `json:"title"`
	Slug        *string           `json:"slug"`
	Description *string           `json:"description"`
	Status      *models.JobStatus `json:"status"`
	Tags        *[]string         `json:"tags"`
}

func (d JobUpdate) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return errors.New("job title cannot be empty")
	}
	if d.Slug != nil && *d.Slug == "" {
		return errors.New("job slug cannot be empty")
	}
	if d.Status != nil && !d.Status.IsValid() {
		return errors.Errorf("unknown job status %q", *d.Status)
	}
	return nil
}

type ReorderRequest struct {
	JobIDs []string `json:"jobIds"`
}

func (r ReorderRequest) Validate() error {
	if len(r.JobIDs) == 0 {
		return errors.New("jobIds is empty")
	}
	seen := make(map[string]struct{}, len(r.JobIDs))
	for _, id := range r.JobIDs {
		if id == "" {
			return errors.New("jobIds contains an empty id")
		}
		if _, ok := seen[id]; ok {
			return errors.Errorf("jobIds contains duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

type ReorderResponse struct {
	Success bool `json:"success"`
}
