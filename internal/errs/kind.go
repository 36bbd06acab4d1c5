package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies a failure raised below the handler layer.
type Kind uint8

const (
	// KindUnknown is anything the domain does not expect. It is the zero value
	// so an unclassified error never passes as a normal rejection.
	KindUnknown Kind = iota

	// KindDuplicateKey means a uniqueness rule (e.g. pathway name) was violated.
	KindDuplicateKey

	// KindNotFound means no live record exists for the requested identifier.
	KindNotFound

	// KindIntegrityViolation covers the remaining constraint failures
	// (foreign key, not null, check).
	KindIntegrityViolation
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate_key"
	case KindNotFound:
		return "not_found"
	case KindIntegrityViolation:
		return "integrity_violation"
	default:
		return "unknown"
	}
}

// Expected reports whether the kind is a normal domain rejection rather than a
// fault. Expected failures are translated without being logged as errors.
func (k Kind) Expected() bool {
	return k != KindUnknown
}

// Error is a classified domain failure.
//
// Code is an optional machine-readable code (e.g. "PATHWAY_ALREADY_EXISTS").
// Message is safe to show to API clients. Err keeps the underlying cause for
// logs and errors.Is/As.
type Error struct {
	Kind    Kind
	Code    string
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

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a classified error without an underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err. A nil err yields nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound is shorthand for New(KindNotFound, message).
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// DuplicateKey is shorthand for New(KindDuplicateKey, message).
func DuplicateKey(message string) *Error {
	return New(KindDuplicateKey, message)
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the machine-readable code of the first *Error in err's chain,
// falling back to the upper-cased kind name.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return strings.ToUpper(KindOf(err).String())
}

// MessageOf returns the client-safe message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// StatusFor maps a Kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindDuplicateKey, KindIntegrityViolation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
