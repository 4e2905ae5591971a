package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"size:100"`
	Age          int
	Gender       string         `gorm:"size:10"`
	Location     string         `gorm:"size:100"`
	SkinTone     string         `gorm:"size:50"`
	Allergies    pq.StringArray `gorm:"type:text[]"`
	Assessments  []Assessment
}
