package onboarding

import (
	onboardingerrors "talentflow/internal/onboarding/errors"
	"talentflow/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

// Wizard is the pure step machine. It never touches storage; callers persist
// the State it returns.
type Wizard struct {
	validate *validator.Validate
}

func NewWizard() *Wizard {
	return &Wizard{validate: apperror.NewValidator()}
}

// ValidateStep returns one message per failing field of step, or nil.
func (w *Wizard) ValidateStep(step Step, d Draft) map[string]string {
	fields, ok := stepFields[step]
	if !ok {
		return map[string]string{"current_step": "Current Step is invalid"}
	}
	if err := w.validate.StructPartial(d, fields...); err != nil {
		if msgs := apperror.FieldMessages(err); len(msgs) > 0 {
			return msgs
		}
		return map[string]string{"draft": err.Error()}
	}
	return nil
}

// Next moves one step forward when the current step validates. On failure
// the returned state is the input state.
func (w *Wizard) Next(s State) (State, error) {
	if s.Status == StatusCompleted {
		return s, onboardingerrors.ErrAlreadyCompleted
	}
	if s.Step >= LastStep {
		return s, onboardingerrors.ErrAtLastStep
	}

	s.Draft = s.Draft.Normalize()
	if msgs := w.ValidateStep(s.Step, s.Draft); msgs != nil {
		return s, apperror.ErrValidationFailed.WithDetails(msgs)
	}
	s.Step++
	return s, nil
}

// Previous moves one step back without validating; it stays on the first step.
func (w *Wizard) Previous(s State) (State, error) {
	if s.Status == StatusCompleted {
		return s, onboardingerrors.ErrAlreadyCompleted
	}
	if s.Step > FirstStep {
		s.Step--
	}
	return s, nil
}

// Complete is only allowed from the last step and requires every step to
// validate, so a tampered checkpoint cannot skip required fields.
func (w *Wizard) Complete(s State) (State, error) {
	if s.Status == StatusCompleted {
		return s, onboardingerrors.ErrAlreadyCompleted
	}
	if s.Step != LastStep {
		return s, onboardingerrors.ErrNotAtLastStep
	}

	s.Draft = s.Draft.Normalize()
	for step := FirstStep; step <= LastStep; step++ {
		if msgs := w.ValidateStep(step, s.Draft); msgs != nil {
			return s, apperror.ErrValidationFailed.WithDetails(msgs)
		}
	}
	s.Status = StatusCompleted
	return s, nil
}
