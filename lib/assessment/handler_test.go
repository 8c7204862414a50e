package assessment

import (
	"path/filepath"
	"testing"

	"talentflow-backend/db"
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"
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

func sampleSections() dbmodels.Sections {
	return dbmodels.Sections{
		{
			ID:    "s1",
			Title: "Technical",
			Order: 0,
			Questions: []dbmodels.Question{
				{ID: "q1", Type: models.QuestionTypeSingleChoice, Text: "Preferred stack", Required: true, Order: 0, Options: []string{"go", "python"}},
				{ID: "q2", Type: models.QuestionTypeNumeric, Text: "Rate your Go skills", Required: true, Order: 1, Min: helpers.Ptr(1), Max: helpers.Ptr(10)},
			},
		},
	}
}

func TestAssessmentDocumentRoundTrip(t *testing.T) {
	handler := NewInstance(openTestDB(t))

	created, err := handler.Create(assessmentapimodels.AssessmentData{
		JobID:    "job-1",
		Title:    "Backend Screen",
		Sections: sampleSections(),
	})
	require.Nil(t, err)

	reloaded, err := handler.GetByID(created.ID)
	require.Nil(t, err)
	require.Equal(t, sampleSections(), reloaded.Sections)

	q, ok := reloaded.Sections.QuestionByID("q2")
	require.True(t, ok)
	require.Equal(t, 1, *q.Min)
	require.Equal(t, 10, *q.Max)
}

func TestAssessmentUpdate(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	created, err := handler.Create(assessmentapimodels.AssessmentData{
		JobID:    "job-1",
		Title:    "Backend Screen",
		Sections: sampleSections(),
	})
	require.Nil(t, err)

	t.Run("title only leaves the document alone", func(t *testing.T) {
		rec, err := handler.Update(created.ID, assessmentapimodels.AssessmentUpdate{
			Title: helpers.Ptr("Backend Screen v2"),
		})
		require.Nil(t, err)
		require.Equal(t, "Backend Screen v2", rec.Title)
		require.Equal(t, sampleSections(), rec.Sections)
	})

	t.Run("present sections replace the whole tree", func(t *testing.T) {
		replacement := dbmodels.Sections{
			{ID: "s9", Title: "Culture", Order: 0, Questions: []dbmodels.Question{
				{ID: "q9", Type: models.QuestionTypeShortText, Text: "Why us?", Order: 0},
			}},
		}
		rec, err := handler.Update(created.ID, assessmentapimodels.AssessmentUpdate{
			Sections: &replacement,
		})
		require.Nil(t, err)
		require.Equal(t, replacement, rec.Sections)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := handler.Update("no-such-assessment", assessmentapimodels.AssessmentUpdate{
			Title: helpers.Ptr("X"),
		})
		require.NotNil(t, err)
		require.True(t, apimodels.IsNotFound(err))
	})
}

func TestAssessmentList(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	for _, jobID := range []string{"job-1", "job-1", "job-2"} {
		_, err := handler.Create(assessmentapimodels.AssessmentData{
			JobID: jobID,
			Title: "Screen",
		})
		require.Nil(t, err)
	}

	list, err := handler.List("job-1")
	require.Nil(t, err)
	require.Len(t, list, 2)

	list, err = handler.List("")
	require.Nil(t, err)
	require.Len(t, list, 3)
}

func TestAssessmentPreview(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	created, err := handler.Create(assessmentapimodels.AssessmentData{
		JobID:    "job-1",
		Title:    "Backend Screen",
		Sections: sampleSections(),
	})
	require.Nil(t, err)

	form, err := handler.Preview(created.ID)
	require.Nil(t, err)
	require.Equal(t, created.ID, form.AssessmentID)
	require.Len(t, form.Sections, 1)
	require.Equal(t, assessmentapimodels.ControlRadioGroup, form.Sections[0].Fields[0].Control)
	require.Equal(t, assessmentapimodels.ControlNumberInput, form.Sections[0].Fields[1].Control)
}

func TestSubmitResponse(t *testing.T) {
	handler := NewInstance(openTestDB(t))
	created, err := handler.Create(assessmentapimodels.AssessmentData{
		JobID:    "job-1",
		Title:    "Backend Screen",
		Sections: sampleSections(),
	})
	require.Nil(t, err)

	t.Run("valid answers are stored", func(t *testing.T) {
		resp, err := handler.SubmitResponse(created.ID, assessmentapimodels.ResponseData{
			CandidateID: "cand-1",
			Answers:     dbmodels.Answers{"q1": "go", "q2": 7},
		})
		require.Nil(t, err)
		require.NotEmpty(t, resp.ID)
		require.False(t, resp.SubmittedAt.IsZero())
	})

	t.Run("answers outside the rules are rejected", func(t *testing.T) {
		_, err := handler.SubmitResponse(created.ID, assessmentapimodels.ResponseData{
			CandidateID: "cand-1",
			Answers:     dbmodels.Answers{"q1": "go", "q2": 11},
		})
		require.NotNil(t, err)
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run("unknown assessment yields not found", func(t *testing.T) {
		_, err := handler.SubmitResponse("no-such-assessment", assessmentapimodels.ResponseData{
			CandidateID: "cand-1",
			Answers:     dbmodels.Answers{"q1": "go"},
		})
		require.NotNil(t, err)
		require.True(t, apimodels.IsNotFound(err))
	})
}
