package apperr

import "errors"

// Kind is the stable, machine-readable classification of a business error.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

// Error carries a kind plus a human-readable message. The wrapped cause, if
// any, is for logs only and must never decide control flow at the boundary.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, cause: cause}
}

func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func InvalidInput(msg string) *Error { return New(KindInvalidInput, msg) }
func InvalidState(msg string) *Error { return New(KindInvalidState, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func Unavailable(msg string) *Error  { return New(KindUnavailable, msg) }

// KindOf extracts the kind from err, or "" for non-taxonomy errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
