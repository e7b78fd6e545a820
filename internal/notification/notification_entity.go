package notification

import (
	"time"

	"github.com/google/uuid"
)

const TypeWelcome = "welcome"

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_notification_source,priority:1"`
	// SourceEventID dedupes notifications created from broker events.
	SourceEventID *string `gorm:"size:64;uniqueIndex:uq_notification_source,priority:2"`
	Type          string  `gorm:"type:varchar(30);not null"`
	Title         string  `gorm:"size:255;not null"`
	Message       string  `gorm:"type:text"`
	ReadAt        *time.Time
	CreatedAt     time.Time
}
