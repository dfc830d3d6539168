// payments/errors.go
package payments

// ValidationError is a local input failure raised before any processor
// call is made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AuthError is an authorization failure on the charge endpoint. Its text
// is fixed; the caller never sees why the token was rejected.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "unauthorized"
}

// UpstreamError wraps a processor-side failure (network error, declined
// card, step-up required, invalid customer). The upstream text is
// surfaced to the caller unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
