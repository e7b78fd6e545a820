package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidState      = "INVALID_STATE"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodePartialCompletion = "PARTIAL_COMPLETION"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodePersistenceFailed  = "PERSISTENCE_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Kind groups errors by how a caller is expected to react to them.
type Kind string

const (
	KindValidationFailed  Kind = "validation_failed"
	KindPersistenceFailed Kind = "persistence_failed"
	KindPartialCompletion Kind = "partial_completion"
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindForbidden         Kind = "forbidden"
	KindInternal          Kind = "internal"
)
