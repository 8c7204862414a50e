package assessmentapimodels

// Preview types describe the rendered input surface of an assessment,
// derived purely from the document tree. One control per question
// type: radio, checkbox group, bounded text, bounded textarea,
// bounded number, file picker with a format hint.
type ControlKind string

const (
	ControlRadioGroup    ControlKind = "radio-group"
	ControlCheckboxGroup ControlKind = "checkbox-group"
	ControlTextInput     ControlKind = "text-input"
	ControlTextArea      ControlKind = "text-area"
	ControlNumberInput   ControlKind = "number-input"
	ControlFilePicker    ControlKind = "file-picker"
)

type PreviewForm struct {
	AssessmentID string           `json:"assessmentId"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Sections     []PreviewSection `json:"sections"`
}

type PreviewSection struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Fields      []PreviewField `json:"fields"`
}

type PreviewField struct {
	QuestionID string      `json:"questionId"`
	Label      string      `json:"label"`
	Control    ControlKind `json:"control"`
	Required   bool        `json:"required"`
	Options    []string    `json:"options,omitempty"`
	MaxLength  *int        `json:"maxLength,omitempty"`
	Min        *int        `json:"min,omitempty"`
	Max        *int        `json:"max,omitempty"`
	AcceptHint string      `json:"acceptHint,omitempty"`
}
