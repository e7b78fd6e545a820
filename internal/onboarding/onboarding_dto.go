package onboarding

import "time"

type TransitionRequest struct {
	Draft Draft `json:"draft"`
}

type StateResponse struct {
	CurrentStep int    `json:"current_step"`
	StepName    string `json:"step_name"`
	TotalSteps  int    `json:"total_steps"`
	Status      Status `json:"status"`
	Draft       Draft  `json:"draft"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func toResponse(s State) StateResponse {
	resp := StateResponse{
		CurrentStep: int(s.Step),
		StepName:    s.Step.String(),
		TotalSteps:  int(LastStep),
		Status:      s.Status,
		Draft:       s.Draft,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
