package dbmodels

import (
	"testing"

	"talentflow-backend/models"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestQuestionValidate(t *testing.T) {
	t.Run("choice question needs options", func(t *testing.T) {
		q := Question{Type: models.QuestionTypeSingleChoice, Text: "Pick one"}
		require.NotNil(t, q.Validate())
	})

	t.Run("fields of another variant are rejected", func(t *testing.T) {
		cases := []Question{
			{Type: models.QuestionTypeSingleChoice, Text: "x", Options: []string{"a"}, MaxLength: intPtr(10)},
			{Type: models.QuestionTypeShortText, Text: "x", Options: []string{"a"}},
			{Type: models.QuestionTypeNumeric, Text: "x", AcceptedFormats: []string{".pdf"}},
			{Type: models.QuestionTypeFileUpload, Text: "x", Min: intPtr(1)},
		}
		for _, q := range cases {
			require.NotNil(t, q.Validate(), "type %s", q.Type)
		}
	})

	t.Run("numeric min above max", func(t *testing.T) {
		q := Question{Type: models.QuestionTypeNumeric, Text: "x", Min: intPtr(5), Max: intPtr(1)}
		require.NotNil(t, q.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		q := Question{Type: "essay", Text: "x"}
		require.NotNil(t, q.Validate())
	})

	t.Run("valid variants", func(t *testing.T) {
		cases := []Question{
			{Type: models.QuestionTypeSingleChoice, Text: "x", Options: []string{"a", "b"}},
			{Type: models.QuestionTypeMultiChoice, Text: "x", Options: []string{"a"}},
			{Type: models.QuestionTypeShortText, Text: "x", MaxLength: intPtr(100)},
			{Type: models.QuestionTypeLongText, Text: "x"},
			{Type: models.QuestionTypeNumeric, Text: "x", Min: intPtr(1), Max: intPtr(10)},
			{Type: models.QuestionTypeFileUpload, Text: "x", AcceptedFormats: []string{".pdf"}},
		}
		for _, q := range cases {
			require.Nil(t, q.Validate(), "type %s", q.Type)
		}
	})
}

func TestSectionsValidate(t *testing.T) {
	t.Run("dense orders pass", func(t *testing.T) {
		doc := Sections{
			{ID: "s1", Title: "A", Order: 1},
			{ID: "s2", Title: "B", Order: 0},
		}
		require.Nil(t, doc.Validate())
	})

	t.Run("gap in section orders", func(t *testing.T) {
		doc := Sections{
			{ID: "s1", Title: "A", Order: 0},
			{ID: "s2", Title: "B", Order: 2},
		}
		require.NotNil(t, doc.Validate())
	})

	t.Run("duplicate question orders", func(t *testing.T) {
		doc := Sections{
			{ID: "s1", Title: "A", Order: 0, Questions: []Question{
				{ID: "q1", Type: models.QuestionTypeShortText, Text: "x", Order: 0},
				{ID: "q2", Type: models.QuestionTypeShortText, Text: "y", Order: 0},
			}},
		}
		require.NotNil(t, doc.Validate())
	})

	t.Run("missing section title", func(t *testing.T) {
		doc := Sections{{ID: "s1", Order: 0}}
		require.NotNil(t, doc.Validate())
	})
}
