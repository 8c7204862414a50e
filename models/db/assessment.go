package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"talentflow-backend/models"

	"github.com/pkg/errors"
)

type Assessment struct {
	BaseModel
	JobID       string   `gorm:"type:varchar(36);index" json:"jobId"`
	Title       string   `gorm:"type:varchar(255)" json:"title"`
	Description string   `json:"description"`
	Sections    Sections `gorm:"type:jsonb" json:"sections"`
}

// Sections is the whole questionnaire tree, persisted as one jsonb
// document. Saves replace the document, there is no per-field diffing.
type Sections []Section

func (j Sections) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Sections) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return errors.Errorf("unsupported sections column type %T", value)
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions"`
}

// Question is a closed union over the six question types. Only the
// fields of the declared type may be set, Validate rejects leakage.
type Question struct {
	ID       string              `json:"id"`
	Type     models.QuestionType `json:"type"`
	Text     string              `json:"text"`
	Required bool                `json:"required"`
	Order    int                 `json:"order"`

	// single-choice / multi-choice
	Options []string `json:"options,omitempty"`
	// short-text / long-text
	MaxLength *int `json:"maxLength,omitempty"`
	// numeric
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
	// file-upload
	AcceptedFormats []string `json:"acceptedFormats,omitempty"`
}

func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is required")
	}
	if !q.Type.IsValid() {
		return errors.Errorf("unknown question type %q", q.Type)
	}
	switch q.Type {
	case models.QuestionTypeSingleChoice, models.QuestionTypeMultiChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("%s question %q needs at least one option", q.Type, q.Text)
		}
		if q.MaxLength != nil || q.Min != nil || q.Max != nil || len(q.AcceptedFormats) != 0 {
			return leakageErr(q)
		}
	case models.QuestionTypeShortText, models.QuestionTypeLongText:
		if q.MaxLength != nil && *q.MaxLength <= 0 {
			return fmt.Errorf("%s question %q has non-positive maxLength", q.Type, q.Text)
		}
		if len(q.Options) != 0 || q.Min != nil || q.Max != nil || len(q.AcceptedFormats) != 0 {
			return leakageErr(q)
		}
	case models.QuestionTypeNumeric:
		if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			return fmt.Errorf("numeric question %q has min above max", q.Text)
		}
		if len(q.Options) != 0 || q.MaxLength != nil || len(q.AcceptedFormats) != 0 {
			return leakageErr(q)
		}
	case models.QuestionTypeFileUpload:
		if len(q.Options) != 0 || q.MaxLength != nil || q.Min != nil || q.Max != nil {
			return leakageErr(q)
		}
	}
	return nil
}

func leakageErr(q Question) error {
	return errors.Errorf("question %q carries fields of another type than %s", q.Text, q.Type)
}

// Validate checks the whole tree: per-question variant rules and dense
// 0..N-1 order among siblings.
func (j Sections) Validate() error {
	if err := checkDenseOrder(len(j), func(i int) int { return j[i].Order }); err != nil {
		return errors.Wrap(err, "sections")
	}
	for _, s := range j {
		if s.Title == "" {
			return errors.New("section title is required")
		}
		if err := checkDenseOrder(len(s.Questions), func(i int) int { return s.Questions[i].Order }); err != nil {
			return errors.Wrapf(err, "section %q questions", s.Title)
		}
		for _, q := range s.Questions {
			if err := q.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDenseOrder(n int, orderAt func(i int) int) error {
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		o := orderAt(i)
		if o < 0 || o >= n || seen[o] {
			return errors.Errorf("order values are not a dense 0..%d permutation", n-1)
		}
		seen[o] = true
	}
	return nil
}

// QuestionByID walks the tree; used when validating response answers.
func (j Sections) QuestionByID(id string) (Question, bool) {
	for _, s := range j {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
