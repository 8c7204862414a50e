package xlsexport

import (
	"bytes"

	jobstore "talentflow-backend/lib/job/store"
	candidatestore "talentflow-backend/lib/candidate/store"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(filter dbmodels.CandidateFilter) (*bytes.Buffer, error)
}

func NewHandler(candidates candidatestore.Provider, jobs jobstore.Provider) Provider {
	return &impl{
		candidates: candidates,
		jobs:       jobs,
	}
}

type impl struct {
	candidates candidatestore.Provider
	jobs       jobstore.Provider
}

var candidateHeaders = []string{"Name", "Email", "Phone", "Job", "Stage", "Applied at"}

func (i impl) ExportCandidateList(filter dbmodels.CandidateFilter) (*bytes.Buffer, error) {
	list, err := i.candidates.ListAll(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidates")
	}
	jobs, err := i.jobs.ListAll(dbmodels.JobFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load jobs")
	}
	jobTitles := make(map[string]string, len(jobs))
	for _, job := range jobs {
		jobTitles[job.ID] = job.Title
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Candidates"
	if err = f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	row := 0
	row, err = writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		row++
		values := []interface{}{
			rec.Name,
			rec.Email,
			rec.Phone,
			jobTitles[rec.JobID],
			string(rec.CurrentStage),
			rec.AppliedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			if err = writeColumn(f, sheet, col+1, row, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize xlsx")
	}
	return buf, nil
}
