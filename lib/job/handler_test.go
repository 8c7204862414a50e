package job

import (
	"path/filepath"
	"testing"

	"talentflow-backend/db"
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
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

func mustCreateJob(t *testing.T, handler Provider, title string) *dbmodels.Job {
	t.Helper()
	payload := jobapimodels.JobData{Title: title, Status: models.JobStatusActive}
	require.Nil(t, payload.Validate())
	rec, err := handler.Create(payload)
	require.Nil(t, err)
	return rec
}

func TestJobCreate(t *testing.T) {
	handler := NewInstance(openTestDB(t))

	t.Run("slug is generated from the title", func(t *testing.T) {
		rec := mustCreateJob(t, handler, "Senior Go Engineer")
		require.Equal(t, "senior-go-engineer", rec.Slug)
		require.Equal(t, 0, rec.JobOrder)
	})

	t.Run("new jobs land at the tail of the board", func(t *testing.T) {
		rec := mustCreateJob(t, handler, "Data Analyst")
		require.Equal(t, 1, rec.JobOrder)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		payload := jobapimodels.JobData{Title: "Senior Go Engineer"}
		require.Nil(t, payload.Validate())
		_, err := handler.Create(payload)
		require.NotNil(t, err)
		require.True(t, apimodels.IsValidation(err))
		require.Equal(t, "Slug must be unique", err.Error())
	})
}

func TestJobUpdate(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	first := mustCreateJob(t, handler, "Backend Engineer")
	second := mustCreateJob(t, handler, "Frontend Engineer")

	t.Run("absent fields stay untouched", func(t *testing.T) {
		rec, err := handler.Update(first.ID, jobapimodels.JobUpdate{
			Title: helpers.Ptr("Staff Backend Engineer"),
		})
		require.Nil(t, err)
		require.Equal(t, "Staff Backend Engineer", rec.Title)
		require.Equal(t, first.Slug, rec.Slug)
		require.Equal(t, first.Status, rec.Status)
	})

	t.Run("taken slug is rejected", func(t *testing.T) {
		_, err := handler.Update(second.ID, jobapimodels.JobUpdate{
			Slug: helpers.Ptr(first.Slug),
		})
		require.NotNil(t, err)
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run("own slug can be resent", func(t *testing.T) {
		rec, err := handler.Update(second.ID, jobapimodels.JobUpdate{
			Slug: helpers.Ptr(second.Slug),
		})
		require.Nil(t, err)
		require.Equal(t, second.Slug, rec.Slug)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := handler.Update("no-such-job", jobapimodels.JobUpdate{
			Title: helpers.Ptr("Anything"),
		})
		require.NotNil(t, err)
		require.True(t, apimodels.IsNotFound(err))
	})
}

func TestJobList(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	board := mustCreateJob(t, handler, "Go Developer")
	mustCreateJob(t, handler, "Python Developer")
	archived := mustCreateJob(t, handler, "Perl Developer")

	_, err := handler.Update(archived.ID, jobapimodels.JobUpdate{
		Status: helpers.Ptr(models.JobStatusArchived),
	})
	require.Nil(t, err)
	_, err = handler.Update(board.ID, jobapimodels.JobUpdate{
		Tags: helpers.Ptr([]string{"go", "remote"}),
	})
	require.Nil(t, err)

	t.Run("status filter", func(t *testing.T) {
		resp, err := handler.List(dbmodels.JobFilter{Status: models.JobStatusActive}, apimodels.Pagination{})
		require.Nil(t, err)
		require.Equal(t, int64(2), resp.Meta.Total)
		require.Len(t, resp.Data.([]dbmodels.Job), 2)
	})

	t.Run("title search is case insensitive", func(t *testing.T) {
		resp, err := handler.List(dbmodels.JobFilter{Search: "go dev"}, apimodels.Pagination{})
		require.Nil(t, err)
		list := resp.Data.([]dbmodels.Job)
		require.Len(t, list, 1)
		require.Equal(t, board.ID, list[0].ID)
	})

	t.Run("tag filter matches any tag", func(t *testing.T) {
		resp, err := handler.List(dbmodels.JobFilter{Tags: []string{"remote", "onsite"}}, apimodels.Pagination{})
		require.Nil(t, err)
		list := resp.Data.([]dbmodels.Job)
		require.Len(t, list, 1)
		require.Equal(t, board.ID, list[0].ID)
	})

	t.Run("pagination meta", func(t *testing.T) {
		resp, err := handler.List(dbmodels.JobFilter{}, apimodels.Pagination{Page: 2, Limit: 2})
		require.Nil(t, err)
		require.Equal(t, 2, resp.Meta.Page)
		require.Equal(t, int64(3), resp.Meta.Total)
		require.Equal(t, 2, resp.Meta.TotalPages)
		require.Len(t, resp.Data.([]dbmodels.Job), 1)
	})
}

func TestJobReorder(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	jobA := mustCreateJob(t, handler, "Job A")
	jobB := mustCreateJob(t, handler, "Job B")
	jobC := mustCreateJob(t, handler, "Job C")

	t.Run("order follows list position", func(t *testing.T) {
		require.Nil(t, handler.Reorder([]string{jobC.ID, jobA.ID, jobB.ID}))

		expected := map[string]int{jobC.ID: 0, jobA.ID: 1, jobB.ID: 2}
		for id, order := range expected {
			rec, err := handler.GetByID(id)
			require.Nil(t, err)
			require.Equal(t, order, rec.JobOrder)
		}
	})

	t.Run("unknown id rolls the whole reorder back", func(t *testing.T) {
		err := handler.Reorder([]string{jobA.ID, "no-such-job", jobB.ID})
		require.NotNil(t, err)

		rec, err := handler.GetByID(jobC.ID)
		require.Nil(t, err)
		require.Equal(t, 0, rec.JobOrder)
		rec, err = handler.GetByID(jobA.ID)
		require.Nil(t, err)
		require.Equal(t, 1, rec.JobOrder)
	})
}
