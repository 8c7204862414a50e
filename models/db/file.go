package dbmodels

type FileRecord struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)" json:"name"`
	ObjectKey   string `gorm:"type:varchar(255);uniqueIndex" json:"objectKey"`
	ContentType string `gorm:"type:varchar(100)" json:"contentType"`
	Size        int64  `json:"size"`
}
