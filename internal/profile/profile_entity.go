package profile

import (
	"time"

	"talentflow/internal/team"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is never hard deleted; Status carries the soft delete flag.
type Profile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	TeamID    *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`

	FullName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;uniqueIndex"`
	Role      string `gorm:"type:varchar(20);not null;default:'employee'"`
	Level     string `gorm:"type:varchar(20);not null;default:'junior'"`
	Status    string `gorm:"type:varchar(20);not null;default:'active';index"`
	Points    int    `gorm:"not null;default:0"`
	Position  string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Bio       string `gorm:"type:text"`
	Formation string `gorm:"type:text"`

	HardSkills datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	SoftSkills datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	BirthDate             *time.Time `gorm:"type:date"`
	EmergencyContactName  string     `gorm:"size:255"`
	EmergencyContactPhone string     `gorm:"size:50"`
	CareerObjectives      string     `gorm:"type:text"`

	IsOnboarded bool `gorm:"not null;default:false"`
	OnboardedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Team    *team.Team `gorm:"foreignKey:TeamID"`
	Manager *Profile   `gorm:"foreignKey:ManagerID"`
}
