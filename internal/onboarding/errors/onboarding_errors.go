package onboardingerrors

import (
	"net/http"

	"talentflow/internal/shared/apperror"
)

var (
	ErrTransitionInProgress = apperror.New(
		apperror.CodeConflict,
		"Another onboarding step is still being processed",
		http.StatusConflict,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Onboarding is already completed",
		http.StatusConflict,
	)
	ErrAtLastStep = apperror.New(
		apperror.CodeInvalidState,
		"Already at the last step, complete the onboarding instead",
		http.StatusConflict,
	)
	ErrNotAtLastStep = apperror.New(
		apperror.CodeInvalidState,
		"Onboarding can only be completed from the last step",
		http.StatusConflict,
	)
	ErrProfileInactive = apperror.New(
		apperror.CodeForbidden,
		"Inactive profiles cannot be onboarded",
		http.StatusForbidden,
	)
	// ErrPartialCompletion means the profile is onboarded but the draft could
	// not be cleared. Retrying Complete or calling Load finishes the cleanup.
	ErrPartialCompletion = apperror.NewWithKind(
		apperror.KindPartialCompletion,
		apperror.CodePartialCompletion,
		"Onboarding was saved but cleanup did not finish, retry to complete it",
		http.StatusMultiStatus,
	)
)

// PartialCompletion returns ErrPartialCompletion carrying cause.
func PartialCompletion(cause error) error {
	e := *ErrPartialCompletion
	e.Err = cause
	return &e
}
