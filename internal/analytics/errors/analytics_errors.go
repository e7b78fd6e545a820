package analyticserrors

import (
	"net/http"

	"talentflow/internal/shared/apperror"
)

var (
	ErrUnknownMetric = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown sort metric",
		http.StatusBadRequest,
	)
	ErrReportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render team report",
		http.StatusInternalServerError,
	)
)
