package errors

import (
	"errors"
	"slices"
)

// Kind classifies errors that are allowed to cross the service boundary.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindBadRequest
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a user-facing domain error. Violations is only populated for
// KindValidation.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a validation error carrying every violated rule. The
// violations are copied so later changes to the caller's slice do not leak in.
func Validation(message string, violations []string) *Error {
	return &Error{Kind: KindValidation, Message: message, Violations: slices.Clone(violations)}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// Shared sentinels, compared by identity. They are returned to every caller
// and must be treated as read-only; build a new Error instead of editing one.
var (
	ErrEmailTaken          = Conflict("Email already registered")
	ErrCredentialsRequired = BadRequest("Email and password are required")
	ErrInvalidCredentials  = Unauthorized("Invalid credentials")
	ErrAccountDeactivated  = Forbidden("Account is deactivated")
	ErrInvalidToken        = Unauthorized("Invalid or expired token")
	ErrRegistrationFailed  = Internal("Registration failed: An unexpected error occurred")
	ErrLoginFailed         = Internal("Login failed")
	ErrProfileUnavailable  = Internal("Failed to load profile")
)

// Storage level sentinels. They never leave the service layer.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)

// AsError extracts a domain error from the chain.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// KindOf reports the kind of err; anything that is not a domain error is internal.
func KindOf(err error) Kind {
	if domainErr, ok := AsError(err); ok {
		return domainErr.Kind
	}
	return KindInternal
}
