package dto

import "net/http"

// Error codes surfaced by the API. Domain errors carry these codes
// directly; ERR_INTERNAL covers everything unclassified.
const (
	ErrCodeInternal          = "ERR_INTERNAL"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeUnauthenticated   = "UNAUTHENTICATED"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"
	ErrCodeInactiveAccount   = "INACTIVE_ACCOUNT"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
	ErrCodeDuplicateEmail    = "DUPLICATE_EMAIL"
	ErrCodePasswordMismatch  = "PASSWORD_MISMATCH"
	ErrCodeInvalidReportType = "INVALID_REPORT_TYPE"
	ErrCodeBadRequest        = "BAD_REQUEST"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeValidationFailed:  http.StatusBadRequest,
	ErrCodeUnauthenticated:   http.StatusUnauthorized,
	ErrCodeInvalidCredential: http.StatusUnauthorized,
	ErrCodeInactiveAccount:   http.StatusUnauthorized,
	ErrCodeDuplicateUsername: http.StatusConflict,
	ErrCodeDuplicateEmail:    http.StatusConflict,
	ErrCodePasswordMismatch:  http.StatusBadRequest,
	ErrCodeInvalidReportType: http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
