package apperror

import "errors"

type Kind string

const (
	KindValidation Kind = "validation_error"
	KindReference  Kind = "reference_error"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "unauthorized"
	KindInternal   Kind = "internal"
)

// Error is the classified failure returned by domain services. Only one is
// reported per request.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same kind, field and message, so a
// sentinel still matches after WithCause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Field == t.Field && e.Message == t.Message
}

func (e *Error) WithCause(cause error) *Error {
	out := *e
	out.Cause = cause
	return &out
}

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func Reference(field, message string) *Error {
	return &Error{Kind: KindReference, Field: field, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
