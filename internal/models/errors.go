package models

import "errors"

// Error kinds. Every error returned by the settlement layer wraps one of these,
// so handlers can map it to a status code with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBelowMinimum      = errors.New("below minimum")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrProvider          = errors.New("payment provider error")
	ErrProviderDisabled  = errors.New("payment provider not configured")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrConflictRetryable = errors.New("conflict, retry the operation")
	ErrAlreadyExists     = errors.New("already exists")
	ErrMalformedEvent    = errors.New("malformed provider event")
)

// Error is a user-facing error carrying a stable message and its kind.
type Error struct {
	Kind error
	Msg  string
}

// NewError creates an Error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Is reports equality by kind and message so that sentinel *Error values
// keep working after being wrapped.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}
