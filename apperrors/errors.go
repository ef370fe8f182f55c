package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindSecretUnavailable
	KindConnectionFailure
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindSecretUnavailable:
		return "secret_unavailable"
	case KindConnectionFailure:
		return "connection_failure"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Status maps a kind onto the HTTP status the API answers with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a client-facing Message and, for logging, the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works for every not-found.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation        = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "not found"}
	ErrSecretUnavailable = &Error{Kind: KindSecretUnavailable, Message: "database secret unavailable"}
	ErrConnectionFailure = &Error{Kind: KindConnectionFailure, Message: "database connection failed"}
	ErrPersistence       = &Error{Kind: KindPersistence, Message: "database operation failed"}
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func SecretUnavailable(err error) *Error {
	return &Error{Kind: KindSecretUnavailable, Message: ErrSecretUnavailable.Message, Err: err}
}

func ConnectionFailure(err error) *Error {
	return &Error{Kind: KindConnectionFailure, Message: ErrConnectionFailure.Message, Err: err}
}

func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: ErrPersistence.Message, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain, or zero when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
