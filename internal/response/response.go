// Package response defines the envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/YeZawHlaing/eduverse/internal/errs"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Envelope is the body of every response, successful or not. Data is null on
// failure and Error is null on success.
type Envelope struct {
	Status     Status            `json:"status"`
	HTTPStatus int               `json:"httpStatus"`
	Message    string            `json:"message"`
	Data       any               `json:"data"`
	Error      *string           `json:"error"`
	Code       string            `json:"code,omitempty"`
	Errors     []errs.FieldError `json:"errors,omitempty"`
}

func Success(status int, message string, data any) Envelope {
	return Envelope{
		Status:     StatusSuccess,
		HTTPStatus: status,
		Message:    message,
		Data:       data,
	}
}

func Failure(status int, message string, detail *string) Envelope {
	return Envelope{
		Status:     StatusError,
		HTTPStatus: status,
		Message:    message,
		Error:      detail,
	}
}

// FromHTTPError renders e. A missing detail falls back to the status text.
func FromHTTPError(e *errs.HTTPError) Envelope {
	detail := e.Detail
	if detail == nil {
		text := http.StatusText(e.Status)
		detail = &text
	}

	env := Failure(e.Status, e.Message, detail)
	env.Code = e.Code
	env.Errors = e.Errors
	return env
}
