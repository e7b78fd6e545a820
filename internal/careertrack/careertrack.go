package careertrack

import (
	"time"

	"talentflow/internal/domain"

	"github.com/google/uuid"
)

// NewDefault builds the first track of a freshly onboarded profile: one step
// above the current level, or the same level at the top of the ladder.
func NewDefault(companyID, profileID uuid.UUID, level, objectives string, now time.Time) *CareerTrack {
	target := domain.NextLevel(level)
	return &CareerTrack{
		ID:           uuid.New(),
		CompanyID:    companyID,
		ProfileID:    profileID,
		Title:        "Trilha de carreira",
		CurrentLevel: level,
		TargetLevel:  target,
		Objectives:   objectives,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
