package assessmentdoc

import (
	"strings"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Structural operations over the questionnaire tree. Every operation
// returns a fresh tree with dense 0..N-1 sibling orders; the input is
// never mutated, so a caller holding the previous tree can roll back
// by simply keeping it.

func AddSection(doc dbmodels.Sections, section dbmodels.Section) dbmodels.Sections {
	out := clone(doc)
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	if section.Questions == nil {
		section.Questions = []dbmodels.Question{}
	}
	out = append(out, section)
	return reindex(out)
}

func UpdateSection(doc dbmodels.Sections, sectionID, title, description string) (dbmodels.Sections, error) {
	out := clone(doc)
	for i := range out {
		if out[i].ID == sectionID {
			out[i].Title = title
			out[i].Description = description
			return out, nil
		}
	}
	return nil, errors.Errorf("section %s not found", sectionID)
}

func DeleteSection(doc dbmodels.Sections, sectionID string) (dbmodels.Sections, error) {
	out := make(dbmodels.Sections, 0, len(doc))
	found := false
	for _, s := range clone(doc) {
		if s.ID == sectionID {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		return nil, errors.Errorf("section %s not found", sectionID)
	}
	return reindex(out), nil
}

func MoveSection(doc dbmodels.Sections, sectionID string, toIndex int) (dbmodels.Sections, error) {
	out := clone(doc)
	from := -1
	for i := range out {
		if out[i].ID == sectionID {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, errors.Errorf("section %s not found", sectionID)
	}
	if toIndex < 0 || toIndex >= len(out) {
		return nil, errors.Errorf("move target %d out of range", toIndex)
	}
	section := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:toIndex], append(dbmodels.Sections{section}, out[toIndex:]...)...)
	return reindex(out), nil
}

func AddQuestion(doc dbmodels.Sections, sectionID string, question dbmodels.Question) (dbmodels.Sections, error) {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	out := clone(doc)
	for i := range out {
		if out[i].ID == sectionID {
			out[i].Questions = append(out[i].Questions, question)
			return reindex(out), nil
		}
	}
	return nil, errors.Errorf("section %s not found", sectionID)
}

func UpdateQuestion(doc dbmodels.Sections, sectionID string, question dbmodels.Question) (dbmodels.Sections, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}
	out := clone(doc)
	for i := range out {
		if out[i].ID != sectionID {
			continue
		}
		for k := range out[i].Questions {
			if out[i].Questions[k].ID == question.ID {
				question.Order = out[i].Questions[k].Order
				out[i].Questions[k] = question
				return out, nil
			}
		}
		return nil, errors.Errorf("question %s not found in section %s", question.ID, sectionID)
	}
	return nil, errors.Errorf("section %s not found", sectionID)
}

func DeleteQuestion(doc dbmodels.Sections, sectionID, questionID string) (dbmodels.Sections, error) {
	out := clone(doc)
	for i := range out {
		if out[i].ID != sectionID {
			continue
		}
		questions := make([]dbmodels.Question, 0, len(out[i].Questions))
		found := false
		for _, q := range out[i].Questions {
			if q.ID == questionID {
				found = true
				continue
			}
			questions = append(questions, q)
		}
		if !found {
			return nil, errors.Errorf("question %s not found in section %s", questionID, sectionID)
		}
		out[i].Questions = questions
		return reindex(out), nil
	}
	return nil, errors.Errorf("section %s not found", sectionID)
}

func MoveQuestion(doc dbmodels.Sections, sectionID, questionID string, toIndex int) (dbmodels.Sections, error) {
	out := clone(doc)
	for i := range out {
		if out[i].ID != sectionID {
			continue
		}
		questions := out[i].Questions
		from := -1
		for k := range questions {
			if questions[k].ID == questionID {
				from = k
				break
			}
		}
		if from == -1 {
			return nil, errors.Errorf("question %s not found in section %s", questionID, sectionID)
		}
		if toIndex < 0 || toIndex >= len(questions) {
			return nil, errors.Errorf("move target %d out of range", toIndex)
		}
		q := questions[from]
		questions = append(questions[:from], questions[from+1:]...)
		questions = append(questions[:toIndex], append([]dbmodels.Question{q}, questions[toIndex:]...)...)
		out[i].Questions = questions
		return reindex(out), nil
	}
	return nil, errors.Errorf("section %s not found", sectionID)
}

// reindex rewrites sibling orders to match array position. Deletions
// compact immediately, no gaps are ever persisted.
func reindex(doc dbmodels.Sections) dbmodels.Sections {
	for i := range doc {
		doc[i].Order = i
		for k := range doc[i].Questions {
			doc[i].Questions[k].Order = k
		}
	}
	return doc
}

func clone(doc dbmodels.Sections) dbmodels.Sections {
	out := make(dbmodels.Sections, len(doc))
	copy(out, doc)
	for i := range out {
		questions := make([]dbmodels.Question, len(out[i].Questions))
		copy(questions, out[i].Questions)
		out[i].Questions = questions
	}
	return out
}

// ValidateAnswers checks a submission against the document: required
// questions answered, values shaped per the question type.
func ValidateAnswers(doc dbmodels.Sections, answers dbmodels.Answers) error {
	for _, s := range doc {
		for _, q := range s.Questions {
			value, ok := answers[q.ID]
			if !ok || value == nil {
				if q.Required {
					return errors.Errorf("question %q requires an answer", q.Text)
				}
				continue
			}
			if err := validateAnswer(q, value); err != nil {
				return err
			}
		}
	}
	for id := range answers {
		if _, ok := doc.QuestionByID(id); !ok {
			return errors.Errorf("answer references unknown question %s", id)
		}
	}
	return nil
}

func validateAnswer(q dbmodels.Question, value interface{}) error {
	switch q.Type {
	case models.QuestionTypeSingleChoice:
		choice, ok := value.(string)
		if !ok {
			return answerShapeErr(q, "a string")
		}
		if !containsOption(q.Options, choice) {
			return errors.Errorf("answer %q is not an option of question %q", choice, q.Text)
		}
	case models.QuestionTypeMultiChoice:
		choices, err := toStringSlice(value)
		if err != nil {
			return answerShapeErr(q, "a string list")
		}
		if q.Required && len(choices) == 0 {
			return errors.Errorf("question %q requires an answer", q.Text)
		}
		for _, choice := range choices {
			if !containsOption(q.Options, choice) {
				return errors.Errorf("answer %q is not an option of question %q", choice, q.Text)
			}
		}
	case models.QuestionTypeShortText, models.QuestionTypeLongText:
		text, ok := value.(string)
		if !ok {
			return answerShapeErr(q, "a string")
		}
		if q.MaxLength != nil && len([]rune(text)) > *q.MaxLength {
			return errors.Errorf("answer to question %q exceeds %d characters", q.Text, *q.MaxLength)
		}
	case models.QuestionTypeNumeric:
		num, ok := toFloat(value)
		if !ok {
			return answerShapeErr(q, "a number")
		}
		if q.Min != nil && num < float64(*q.Min) {
			return errors.Errorf("answer to question %q is below %d", q.Text, *q.Min)
		}
		if q.Max != nil && num > float64(*q.Max) {
			return errors.Errorf("answer to question %q is above %d", q.Text, *q.Max)
		}
	case models.QuestionTypeFileUpload:
		key, ok := value.(string)
		if !ok || key == "" {
			return answerShapeErr(q, "a file key")
		}
		if len(q.AcceptedFormats) > 0 && !hasAcceptedFormat(q.AcceptedFormats, key) {
			return errors.Errorf("file for question %q must be one of %v", q.Text, q.AcceptedFormats)
		}
	}
	return nil
}

func hasAcceptedFormat(formats []string, key string) bool {
	lower := strings.ToLower(key)
	for _, format := range formats {
		if strings.HasSuffix(lower, strings.ToLower(format)) {
			return true
		}
	}
	return false
}

func answerShapeErr(q dbmodels.Question, want string) error {
	return errors.Errorf("answer to %s question %q must be %s", q.Type, q.Text, want)
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("not a string list")
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errors.New("not a string list")
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
