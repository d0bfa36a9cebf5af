package auth

import "errors"

var (
	// ErrAuthentication is matched by every AuthenticationError
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotAuthenticated indicates an operation that needs a session was called anonymously
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthenticationError is returned by Login. The message does not say which
// step failed; the cause is kept for logging.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return ErrAuthentication.Error()
}

func (e *AuthenticationError) Unwrap() []error {
	return []error{ErrAuthentication, e.Err}
}
