package apperrors

import "errors"

// Sentinel errors shared across modules.
var (
	ErrNoSession          = errors.New("no active session")
	ErrSubmissionInFlight = errors.New("a compliance check is already in flight")
	ErrNotFound           = errors.New("not found")
)

// ValidationError is a local input failure detected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError is a registration or login rejected by the server. Session state
// is unchanged when it occurs.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// RequestError is any other non-2xx response or transport failure. The
// gateway normalizes every unexpected failure into one of these rather than
// letting heterogeneous errors escape.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsAuth reports whether err is a server-side auth rejection.
func IsAuth(err error) bool {
	var a *AuthError
	return errors.As(err, &a)
}

// IsRequest reports whether err is a normalized network failure.
func IsRequest(err error) bool {
	var r *RequestError
	return errors.As(err, &r)
}
