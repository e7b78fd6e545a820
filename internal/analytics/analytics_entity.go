package analytics

import (
	"time"

	"github.com/google/uuid"
)

const PlanStatusCompleted = "completed"

type DevelopmentPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'in_progress'"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompetencyRating holds one competency assessed by the employee and the
// manager. Either rating may be missing.
type CompetencyRating struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Competency    string    `gorm:"size:255;not null"`
	SelfRating    *float64
	ManagerRating *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Achievement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	AwardedAt time.Time
	CreatedAt time.Time
}
