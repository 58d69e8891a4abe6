package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrUnauthenticated   = NewDomainError("UNAUTHENTICATED", "Authentication required")
	ErrInvalidCredential = NewDomainError("INVALID_CREDENTIAL", "Invalid username or password")
	ErrInactiveAccount   = NewDomainError("INACTIVE_ACCOUNT", "Account is deactivated")
	ErrDuplicateUsername = NewDomainError("DUPLICATE_USERNAME", "Username already exists")
	ErrDuplicateEmail    = NewDomainError("DUPLICATE_EMAIL", "Email already exists")
	ErrPasswordMismatch  = NewDomainError("PASSWORD_MISMATCH", "Password and confirmation do not match")
	ErrInvalidReportType = NewDomainError("INVALID_REPORT_TYPE", "Unknown report type")
)

// NewValidationError creates a VALIDATION_FAILED error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_FAILED", message)
}
