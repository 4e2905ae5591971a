package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Assessment is a finished wizard run together with the recommendation it produced.
type Assessment struct {
	BaseModel
	AccountID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	SkinType       string         `gorm:"size:50"`
	Allergies      pq.StringArray `gorm:"type:text[]"`
	Brand          string         `gorm:"size:100"`
	SkinCondition  string         `gorm:"size:100"`
	CommonConcern  string         `gorm:"size:50"`
	MorningRoutine pq.StringArray `gorm:"type:text[]"`
	NightRoutine   pq.StringArray `gorm:"type:text[]"`
	Treatment      string         `gorm:"type:text"`
	ProductIDs     pq.StringArray `gorm:"type:text[]"`
	Summary        string         `gorm:"type:text"`
	Source         string         `gorm:"size:20"`
}
