package notificationerrors

import (
	"net/http"

	"talentflow/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrInvalidWelcome = apperror.New(
		apperror.CodeInvalidInput,
		"Welcome notification needs company, profile and source event",
		http.StatusBadRequest,
	)
)
