package careertrack

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type CareerTrack struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"size:255;not null"`
	CurrentLevel string    `gorm:"type:varchar(20);not null"`
	TargetLevel  string    `gorm:"type:varchar(20)"`
	Objectives   string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
