package dbmodels

type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(255)" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
}
