package models

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages in the typical forward order. The transition engine does not
// enforce this order, any stage to stage move is accepted.
var Stages = []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected}

func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusArchived:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
	QuestionTypeShortText    QuestionType = "short-text"
	QuestionTypeLongText     QuestionType = "long-text"
	QuestionTypeNumeric      QuestionType = "numeric"
	QuestionTypeFileUpload   QuestionType = "file-upload"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeShortText,
		QuestionTypeLongText, QuestionTypeNumeric, QuestionTypeFileUpload:
		return true
	}
	return false
}
