package errs

import "strings"

// FieldError is a field-level validation failure.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error a handler returns to the global error handler.
//
// Fields:
//   - Code: machine-friendly code (e.g. "PATHWAY_ALREADY_EXISTS").
//   - Message: human-friendly summary, becomes the envelope "message".
//   - Detail: optional explanation, becomes the envelope "error".
//   - Status: HTTP status code.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Detail  *string      `json:"detail"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors"`

	cause error
}

func (e *HTTPError) Error() string {
	if e.Detail != nil {
		return e.Message + ": " + *e.Detail
	}
	return e.Message
}

// Unwrap returns the failure the HTTPError was built from, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// WithCause returns a copy of e that keeps err for logging. The cause is
// never serialized.
func (e *HTTPError) WithCause(err error) *HTTPError {
	cp := *e
	cp.cause = err
	return &cp
}

// Is matches any *HTTPError regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetail returns a copy of e with Detail set.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = &detail
	return &cp
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
