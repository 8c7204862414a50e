package assessmentdoc

import (
	"sort"
	"strings"

	"talentflow-backend/models"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

// BuildPreview projects the document tree into the form a respondent
// sees. It is a pure function of the tree and ignores builder state
// entirely; siblings are laid out by their order field.
func BuildPreview(rec dbmodels.Assessment) assessmentapimodels.PreviewForm {
	sections := clone(rec.Sections)
	sort.SliceStable(sections, func(a, b int) bool { return sections[a].Order < sections[b].Order })

	form := assessmentapimodels.PreviewForm{
		AssessmentID: rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Sections:     make([]assessmentapimodels.PreviewSection, 0, len(sections)),
	}
	for _, s := range sections {
		questions := s.Questions
		sort.SliceStable(questions, func(a, b int) bool { return questions[a].Order < questions[b].Order })
		ps := assessmentapimodels.PreviewSection{
			Title:       s.Title,
			Description: s.Description,
			Fields:      make([]assessmentapimodels.PreviewField, 0, len(questions)),
		}
		for _, q := range questions {
			ps.Fields = append(ps.Fields, previewField(q))
		}
		form.Sections = append(form.Sections, ps)
	}
	return form
}

func previewField(q dbmodels.Question) assessmentapimodels.PreviewField {
	field := assessmentapimodels.PreviewField{
		QuestionID: q.ID,
		Label:      q.Text,
		Required:   q.Required,
	}
	switch q.Type {
	case models.QuestionTypeSingleChoice:
		field.Control = assessmentapimodels.ControlRadioGroup
		field.Options = q.Options
	case models.QuestionTypeMultiChoice:
		field.Control = assessmentapimodels.ControlCheckboxGroup
		field.Options = q.Options
	case models.QuestionTypeShortText:
		field.Control = assessmentapimodels.ControlTextInput
		field.MaxLength = q.MaxLength
	case models.QuestionTypeLongText:
		field.Control = assessmentapimodels.ControlTextArea
		field.MaxLength = q.MaxLength
	case models.QuestionTypeNumeric:
		field.Control = assessmentapimodels.ControlNumberInput
		field.Min = q.Min
		field.Max = q.Max
	case models.QuestionTypeFileUpload:
		field.Control = assessmentapimodels.ControlFilePicker
		if len(q.AcceptedFormats) > 0 {
			field.AcceptHint = "Accepted formats: " + strings.Join(q.AcceptedFormats, ", ")
		}
	}
	return field
}
