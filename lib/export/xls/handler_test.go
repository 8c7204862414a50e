package xlsexport

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.Migrate(conn))
	return conn
}

func TestExportCandidateList(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(candidatestore.NewInstance(conn), jobstore.NewInstance(conn))

	// enough jobs that a single list page cannot cover the lookup
	jobs := make([]dbmodels.Job, 0, 105)
	for idx := 0; idx < 105; idx++ {
		jobs = append(jobs, dbmodels.Job{
			Title:    fmt.Sprintf("Job %03d", idx),
			Slug:     fmt.Sprintf("job-%03d", idx),
			Status:   models.JobStatusActive,
			JobOrder: idx,
		})
	}
	require.Nil(t, conn.Create(&jobs).Error)

	rec := dbmodels.Candidate{
		Name:         "Alice Baker",
		Email:        "alice@example.com",
		JobID:        jobs[104].ID,
		CurrentStage: models.StageScreening,
		AppliedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.Nil(t, conn.Create(&rec).Error)

	buf, err := handler.ExportCandidateList(dbmodels.CandidateFilter{})
	require.Nil(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Name", "Email", "Phone", "Job", "Stage", "Applied at"}, rows[0])
	require.Equal(t, "Alice Baker", rows[1][0])
	// the job title resolves even when the job sits past the first page
	require.Equal(t, "Job 104", rows[1][3])
	require.Equal(t, "screening", rows[1][4])
}
