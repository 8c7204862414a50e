package dbmodels

import (
	"strings"
	"talentflow-backend/models"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(255)" json:"title"`
	Slug        string                      `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	Description string                      `json:"description"`
	Status      models.JobStatus            `gorm:"type:varchar(50);index" json:"status"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	JobOrder    int                         `gorm:"index" json:"order"`
}

type JobFilter struct {
	Status models.JobStatus `json:"status"`
	Search string           `json:"search"`
	Tags   []string         `json:"tags"`
}

func (f JobFilter) MatchesTags(job Job) bool {
	if len(f.Tags) == 0 {
		return true
	}
	for _, want := range f.Tags {
		for _, tag := range job.Tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
