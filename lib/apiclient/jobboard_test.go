package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func newJobBoardServer(t *testing.T, rejectMutations bool) *httptest.Server {
	t.Helper()
	first := dbmodels.Job{Title: "Job A", Slug: "job-a", Status: models.JobStatusActive}
	first.ID = "job-1"
	second := dbmodels.Job{Title: "Job B", Slug: "job-b", Status: models.JobStatusActive, JobOrder: 1}
	second.ID = "job-2"

	reject := func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apimodels.NewErrorResponse("rejected"))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		page := JobsPage{
			Data: []dbmodels.Job{first, second},
			Meta: apimodels.ListMeta{Page: 1, Limit: 100, Total: 2, TotalPages: 1},
		}
		_ = json.NewEncoder(w).Encode(page)
	})
	mux.HandleFunc("/api/jobs/reorder", func(w http.ResponseWriter, r *http.Request) {
		if rejectMutations {
			reject(w)
			return
		}
		_ = json.NewEncoder(w).Encode(jobapimodels.ReorderResponse{Success: true})
	})
	mux.HandleFunc("/api/jobs/job-1", func(w http.ResponseWriter, r *http.Request) {
		if rejectMutations {
			reject(w)
			return
		}
		updated := first
		updated.Status = models.JobStatusArchived
		_ = json.NewEncoder(w).Encode(updated)
	})
	return httptest.NewServer(mux)
}

func TestJobBoardArchiveToggle(t *testing.T) {
	t.Run("commit keeps the local flip", func(t *testing.T) {
		server := newJobBoardServer(t, false)
		defer server.Close()

		board := NewJobBoard(NewClient(server.URL))
		require.Nil(t, board.Load(context.Background()))

		err := board.SetStatus(context.Background(), "job-1", models.JobStatusArchived)
		require.Nil(t, err)
		require.Nil(t, board.Err())
		require.Equal(t, models.JobStatusArchived, board.State()[0].Status)
	})

	t.Run("rejection restores the previous status", func(t *testing.T) {
		server := newJobBoardServer(t, true)
		defer server.Close()

		board := NewJobBoard(NewClient(server.URL))
		require.Nil(t, board.Load(context.Background()))

		err := board.SetStatus(context.Background(), "job-1", models.JobStatusArchived)
		require.NotNil(t, err)
		require.True(t, apimodels.IsValidation(err))
		require.NotNil(t, board.Err())
		require.Equal(t, models.JobStatusActive, board.State()[0].Status)
	})
}

func TestJobBoardReorder(t *testing.T) {
	t.Run("commit keeps the new order", func(t *testing.T) {
		server := newJobBoardServer(t, false)
		defer server.Close()

		board := NewJobBoard(NewClient(server.URL))
		require.Nil(t, board.Load(context.Background()))

		err := board.Reorder(context.Background(), []string{"job-2", "job-1"})
		require.Nil(t, err)

		state := board.State()
		require.Equal(t, "job-2", state[0].ID)
		require.Equal(t, 0, state[0].JobOrder)
		require.Equal(t, "job-1", state[1].ID)
		require.Equal(t, 1, state[1].JobOrder)
	})

	t.Run("rejection restores the previous order", func(t *testing.T) {
		server := newJobBoardServer(t, true)
		defer server.Close()

		board := NewJobBoard(NewClient(server.URL))
		require.Nil(t, board.Load(context.Background()))

		err := board.Reorder(context.Background(), []string{"job-2", "job-1"})
		require.NotNil(t, err)
		require.NotNil(t, board.Err())

		state := board.State()
		require.Equal(t, "job-1", state[0].ID)
		require.Equal(t, "job-2", state[1].ID)
	})
}
