package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewHTTPError builds an HTTPError for any status. An empty code defaults to
// the upper-cased status text.
func NewHTTPError(status int, code, message string) *HTTPError {
	if code == "" {
		code = statusCode(status)
	}
	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "", message)
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code may be nil to use "BAD_REQUEST"; errors carries field-level failures.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, "", message)
}

// NewInternalServerError creates a 500 HTTPError.
//
// The message is the generic status text; the real cause is only logged.
func NewInternalServerError() *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "", http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a generic validation error into a 400 HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}

// FromError converts a classified domain error into an HTTPError. Unknown
// errors become a generic 500 so no internal text reaches the client.
func FromError(err error) *HTTPError {
	kind := KindOf(err)
	if kind == KindUnknown {
		return NewInternalServerError().WithCause(err)
	}

	status := StatusFor(kind)
	message := MessageOf(err)
	if message == "" {
		message = http.StatusText(status)
	}
	return NewHTTPError(status, CodeOf(err), message).WithCause(err)
}
