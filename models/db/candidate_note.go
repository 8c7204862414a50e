package dbmodels

type CandidateNote struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index" json:"candidateId"`
	AuthorID    string `gorm:"type:varchar(36)" json:"authorId"`
	Text        string `json:"text"`
}
