package events

import "time"

const (
	OnboardingLifecycleTopic = "talentflow.onboarding.lifecycle.v1"

	OnboardingCompletedType = "onboarding_completed"
)

type OnboardingCompletedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ProfileID     string    `json:"profile_id"`
	CompanyID     string    `json:"company_id"`
	FullName      string    `json:"full_name"`
	CareerTrackID string    `json:"career_track_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
