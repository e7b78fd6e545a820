package onboarding_test

import (
	"errors"
	"testing"

	"talentflow/internal/onboarding"
	onboardingerrors "talentflow/internal/onboarding/errors"
	"talentflow/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func fullDraft() onboarding.Draft {
	return onboarding.Draft{
		FullName:         "Ana Souza",
		BirthDate:        "1994-03-12",
		Phone:            "+55 11 99999-0000",
		Position:         "Backend Engineer",
		Level:            "pleno",
		Formation:        "Ciência da Computação",
		Bio:              "Gosto de sistemas distribuídos",
		HardSkills:       []string{"Go", "Postgres"},
		SoftSkills:       []string{"Comunicação"},
		CareerObjectives: "Chegar a senior em dois anos",
		AcceptTerms:      true,
		AcceptPrivacy:    true,
	}
}

func detailsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", appErr.Details)
	}
	return details
}

func TestWizard_Next(t *testing.T) {
	w := onboarding.NewWizard()

	t.Run("empty personal step stays on step one", func(t *testing.T) {
		state := onboarding.NewState(onboarding.Draft{})

		got, err := w.Next(state)

		assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
		assert.Equal(t, onboarding.StepPersonal, got.Step)
		details := detailsOf(t, err)
		assert.Len(t, details, 3)
		assert.Contains(t, details, "full_name")
		assert.Contains(t, details, "birth_date")
		assert.Contains(t, details, "phone")
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		d := fullDraft()
		d.FullName = "   "

		_, err := w.Next(onboarding.NewState(d))

		assert.Contains(t, detailsOf(t, err), "full_name")
	})

	t.Run("rejects a malformed birth date", func(t *testing.T) {
		d := fullDraft()
		d.BirthDate = "12/03/1994"

		_, err := w.Next(onboarding.NewState(d))

		assert.Contains(t, detailsOf(t, err), "birth_date")
	})

	t.Run("valid step advances and trims", func(t *testing.T) {
		d := fullDraft()
		d.FullName = "  Ana Souza  "

		got, err := w.Next(onboarding.NewState(d))

		assert.NoError(t, err)
		assert.Equal(t, onboarding.StepProfessional, got.Step)
		assert.Equal(t, "Ana Souza", got.Draft.FullName)
	})

	t.Run("skills need at least one non blank entry", func(t *testing.T) {
		d := fullDraft()
		d.HardSkills = []string{" "}
		state := onboarding.State{Step: onboarding.StepSkills, Status: onboarding.StatusInProgress, Draft: d}

		got, err := w.Next(state)

		assert.Equal(t, onboarding.StepSkills, got.Step)
		details := detailsOf(t, err)
		assert.Contains(t, details, "hard_skills")
		assert.NotContains(t, details, "soft_skills")
	})

	t.Run("emergency contact only required when shared", func(t *testing.T) {
		d := fullDraft()
		state := onboarding.State{Step: onboarding.StepEmergency, Status: onboarding.StatusInProgress, Draft: d}

		got, err := w.Next(state)
		assert.NoError(t, err)
		assert.Equal(t, onboarding.StepCareer, got.Step)

		d.ShareEmergencyContact = true
		state.Draft = d
		_, err = w.Next(state)
		details := detailsOf(t, err)
		assert.Contains(t, details, "emergency_contact_name")
		assert.Contains(t, details, "emergency_contact_phone")
	})

	t.Run("cannot move past the last step", func(t *testing.T) {
		state := onboarding.State{Step: onboarding.LastStep, Status: onboarding.StatusInProgress, Draft: fullDraft()}

		_, err := w.Next(state)

		assert.ErrorIs(t, err, onboardingerrors.ErrAtLastStep)
	})
}

func TestWizard_Previous(t *testing.T) {
	w := onboarding.NewWizard()

	t.Run("stays on the first step", func(t *testing.T) {
		got, err := w.Previous(onboarding.NewState(onboarding.Draft{}))

		assert.NoError(t, err)
		assert.Equal(t, onboarding.FirstStep, got.Step)
	})

	t.Run("goes back without validating", func(t *testing.T) {
		state := onboarding.State{Step: onboarding.StepSkills, Status: onboarding.StatusInProgress}

		got, err := w.Previous(state)

		assert.NoError(t, err)
		assert.Equal(t, onboarding.StepProfessional, got.Step)
	})

	t.Run("completed wizard is frozen", func(t *testing.T) {
		state := onboarding.State{Step: onboarding.LastStep, Status: onboarding.StatusCompleted}

		_, err := w.Previous(state)

		assert.ErrorIs(t, err, onboardingerrors.ErrAlreadyCompleted)
	})
}

func TestWizard_Complete(t *testing.T) {
	w := onboarding.NewWizard()

	t.Run("full draft on the last step completes", func(t *testing.T) {
		state := onboarding.State{Step: onboarding.LastStep, Status: onboarding.StatusInProgress, Draft: fullDraft()}

		got, err := w.Complete(state)

		assert.NoError(t, err)
		assert.Equal(t, onboarding.StatusCompleted, got.Status)
	})

	t.Run("only from the last step", func(t *testing.T) {
		state := onboarding.State{Step: onboarding.StepSkills, Status: onboarding.StatusInProgress, Draft: fullDraft()}

		_, err := w.Complete(state)

		assert.ErrorIs(t, err, onboardingerrors.ErrNotAtLastStep)
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		d := fullDraft()
		d.AcceptTerms = false
		state := onboarding.State{Step: onboarding.LastStep, Status: onboarding.StatusInProgress, Draft: d}

		got, err := w.Complete(state)

		assert.Equal(t, onboarding.StatusInProgress, got.Status)
		assert.Contains(t, detailsOf(t, err), "accept_terms")
	})

	t.Run("earlier steps are revalidated", func(t *testing.T) {
		d := fullDraft()
		d.Phone = ""
		state := onboarding.State{Step: onboarding.LastStep, Status: onboarding.StatusInProgress, Draft: d}

		_, err := w.Complete(state)

		assert.Contains(t, detailsOf(t, err), "phone")
	})
}
