package profileerrors

import (
	"net/http"

	"talentflow/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A profile with the same email already exists",
		http.StatusConflict,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Manager not found in this company",
		http.StatusBadRequest,
	)
	ErrReportingCycle = apperror.New(
		apperror.CodeInvalidInput,
		"Manager assignment would create a reporting cycle",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Team or manager reference does not exist",
		http.StatusBadRequest,
	)
	ErrProfileInactive = apperror.New(
		apperror.CodeInvalidState,
		"Profile is inactive",
		http.StatusConflict,
	)
)
