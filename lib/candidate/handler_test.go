package candidate

import (
	"path/filepath"
	"testing"

	"talentflow-backend/db"
	historystore "talentflow-backend/lib/candidate/history-store"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
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

func seedJob(t *testing.T, conn *gorm.DB) string {
	t.Helper()
	job := dbmodels.Job{Title: "Go Developer", Slug: "go-developer", Status: models.JobStatusActive}
	require.Nil(t, conn.Create(&job).Error)
	return job.ID
}

func mustCreateCandidate(t *testing.T, handler Provider, jobID, name string) *dbmodels.Candidate {
	t.Helper()
	payload := candidateapimodels.CandidateData{
		Name:  name,
		Email: "test@example.com",
		JobID: jobID,
	}
	require.Nil(t, payload.Validate())
	rec, err := handler.Create(payload, "1")
	require.Nil(t, err)
	return rec
}

func TestCandidateCreate(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)

	rec := mustCreateCandidate(t, handler, jobID, "Alice Baker")
	require.Equal(t, models.StageApplied, rec.CurrentStage)

	t.Run("genesis event is written with the candidate", func(t *testing.T) {
		history, err := handler.History(rec.ID)
		require.Nil(t, err)
		require.Len(t, history, 1)
		require.Nil(t, history[0].FromStage)
		require.Equal(t, models.StageApplied, history[0].ToStage)
		require.Equal(t, "1", history[0].ChangedBy)
	})
}

func TestCandidateTransition(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)
	rec := mustCreateCandidate(t, handler, jobID, "Bob Carter")

	t.Run("moves the candidate and appends one event", func(t *testing.T) {
		updated, err := handler.Transition(rec.ID, models.StageScreening, "2")
		require.Nil(t, err)
		require.Equal(t, models.StageScreening, updated.CurrentStage)

		updated, err = handler.Transition(rec.ID, models.StageOffer, "2")
		require.Nil(t, err)
		require.Equal(t, models.StageOffer, updated.CurrentStage)

		history, err := handler.History(rec.ID)
		require.Nil(t, err)
		require.Len(t, history, 3)
		last := history[2]
		require.NotNil(t, last.FromStage)
		require.Equal(t, models.StageScreening, *last.FromStage)
		require.Equal(t, models.StageOffer, last.ToStage)
	})

	t.Run("history always ends at the current stage", func(t *testing.T) {
		current, err := handler.GetByID(rec.ID)
		require.Nil(t, err)
		history, err := handler.History(rec.ID)
		require.Nil(t, err)
		require.Equal(t, current.CurrentStage, history[len(history)-1].ToStage)
	})

	t.Run("redundant move still logs an event", func(t *testing.T) {
		before, err := handler.History(rec.ID)
		require.Nil(t, err)

		updated, err := handler.Transition(rec.ID, models.StageOffer, "2")
		require.Nil(t, err)
		require.Equal(t, models.StageOffer, updated.CurrentStage)

		after, err := handler.History(rec.ID)
		require.Nil(t, err)
		require.Len(t, after, len(before)+1)
		require.Equal(t, models.StageOffer, *after[len(after)-1].FromStage)
		require.Equal(t, models.StageOffer, after[len(after)-1].ToStage)
	})

	t.Run("unknown candidate yields not found", func(t *testing.T) {
		_, err := handler.Transition("no-such-candidate", models.StageHired, "2")
		require.NotNil(t, err)
		require.True(t, apimodels.IsNotFound(err))
	})
}

func TestCandidateTransitionReturnsStoredRow(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)
	rec := mustCreateCandidate(t, handler, jobID, "Frank Green")

	updated, err := handler.Transition(rec.ID, models.StageInterview, "2")
	require.Nil(t, err)

	stored, err := handler.GetByID(rec.ID)
	require.Nil(t, err)
	require.Equal(t, stored.CurrentStage, updated.CurrentStage)
	require.Equal(t, stored.UpdatedAt, updated.UpdatedAt)
	require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestCandidateTransitionAtomicity(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)
	rec := mustCreateCandidate(t, handler, jobID, "Carol Davis")

	// Dropping the history table makes the append fail inside the
	// transaction; the stage flip must not survive on its own.
	require.Nil(t, conn.Migrator().DropTable(&dbmodels.StageHistoryEvent{}))
	_, err := handler.Transition(rec.ID, models.StageInterview, "2")
	require.NotNil(t, err)

	current, err := handler.GetByID(rec.ID)
	require.Nil(t, err)
	require.Equal(t, models.StageApplied, current.CurrentStage)
}

func TestCandidateList(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)

	alice := mustCreateCandidate(t, handler, jobID, "Alice Baker")
	mustCreateCandidate(t, handler, jobID, "Bob Carter")
	_, err := handler.Transition(alice.ID, models.StageScreening, "1")
	require.Nil(t, err)

	t.Run("stage filter", func(t *testing.T) {
		resp, err := handler.List(dbmodels.CandidateFilter{Stage: models.StageScreening}, apimodels.Pagination{})
		require.Nil(t, err)
		list := resp.Data.([]dbmodels.Candidate)
		require.Len(t, list, 1)
		require.Equal(t, alice.ID, list[0].ID)
	})

	t.Run("name search", func(t *testing.T) {
		resp, err := handler.List(dbmodels.CandidateFilter{Search: "bob"}, apimodels.Pagination{})
		require.Nil(t, err)
		require.Equal(t, int64(1), resp.Meta.Total)
	})
}

func TestCandidateNotes(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)
	rec := mustCreateCandidate(t, handler, jobID, "Dave Evans")

	note, err := handler.AddNote(rec.ID, "7", "Strong take-home, schedule a call with @maria")
	require.Nil(t, err)
	require.NotEmpty(t, note.ID)

	list, err := handler.Notes(rec.ID)
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "7", list[0].AuthorID)

	_, err = handler.AddNote("no-such-candidate", "7", "hello")
	require.NotNil(t, err)
	require.True(t, apimodels.IsNotFound(err))
}

func TestHistoryStoreOrdering(t *testing.T) {
	conn := openTestDB(t)
	handler := NewHandler(conn, nil)
	jobID := seedJob(t, conn)
	rec := mustCreateCandidate(t, handler, jobID, "Eve Foster")

	for _, stage := range []models.Stage{models.StageScreening, models.StageInterview, models.StageHired} {
		_, err := handler.Transition(rec.ID, stage, "1")
		require.Nil(t, err)
	}

	store := historystore.NewInstance(conn)
	list, err := store.ListByCandidate(rec.ID)
	require.Nil(t, err)
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i].Timestamp.Before(list[i-1].Timestamp))
	}

	last, err := store.LastByCandidate(rec.ID)
	require.Nil(t, err)
	require.Equal(t, models.StageHired, last.ToStage)
}
