package handler

import (
	"errors"
	"net/http"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/response"
)

// Translator maps the outcome of a service call onto the response contract:
// success is 200, a not-found is 404, a duplicate or integrity failure is
// 400, a create that produced nothing is 400 and everything else is 500.
type Translator struct {
	SuccessMessage string
	SuccessData    any

	// EmptyMessage and EmptyDetail describe a call that reported no failure
	// but produced nothing.
	EmptyMessage string
	EmptyDetail  string
}

// Translate returns the success envelope, or the *errs.HTTPError the global
// error handler renders.
func (t Translator) Translate(produced bool, err error) (response.Envelope, error) {
	if err != nil {
		return response.Envelope{}, translateError(err)
	}

	if !produced {
		httpErr := errs.NewBadRequestError(t.EmptyMessage, nil, nil)
		if t.EmptyDetail != "" {
			httpErr = httpErr.WithDetail(t.EmptyDetail)
		}
		return response.Envelope{}, httpErr
	}

	return response.Success(http.StatusOK, t.SuccessMessage, t.SuccessData), nil
}

// ok translates a read, which always produces its data when err is nil.
func ok(message string, data any, err error) (response.Envelope, error) {
	return Translator{SuccessMessage: message, SuccessData: data}.Translate(true, err)
}

func translateError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	code := errs.CodeOf(err)
	message := errs.MessageOf(err)

	switch errs.KindOf(err) {
	case errs.KindDuplicateKey, errs.KindIntegrityViolation:
		if message == "" {
			message = http.StatusText(http.StatusBadRequest)
		}
		return errs.NewBadRequestError(message, &code, nil).WithCause(err)
	case errs.KindNotFound:
		if message == "" {
			message = http.StatusText(http.StatusNotFound)
		}
		return errs.NewNotFoundError(message, &code).WithCause(err)
	case errs.KindUnknown:
		return errs.NewInternalServerError().WithCause(err)
	}
	return errs.NewInternalServerError().WithCause(err)
}

func statusOf(err error) int {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return errs.StatusFor(errs.KindOf(err))
}
