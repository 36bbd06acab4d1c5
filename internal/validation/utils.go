package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types. Validate returns
// validator.ValidationErrors from struct tags, or CustomValidationErrors for
// rules tags cannot express.
type Validatable interface {
	Validate() error
}

type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path params, query params and the JSON body into
// payload, then runs payload.Validate().
//
// Bind failures (malformed JSON, a non-numeric path id) and validation
// failures both come back as a 400 *errs.HTTPError; validation failures
// carry per-field errors.
//
// payload must be a pointer, c.Bind cannot populate a value.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil).WithCause(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewBadRequestError("Validation failed", nil, fieldErrors(err)).WithCause(err)
	}

	return nil
}

// bindErrorMessage maps echo's bind failures to a client-safe message.
// Decoder details stay on the cause for logging.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code == http.StatusUnsupportedMediaType {
		return "Unsupported content type"
	}
	return "Invalid request body"
}

func fieldErrors(err error) []errs.FieldError {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		out := make([]errs.FieldError, 0, len(custom))
		for _, e := range custom {
			out = append(out, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return out
	}

	var tagErrors validator.ValidationErrors
	if !errors.As(err, &tagErrors) {
		return []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	out := make([]errs.FieldError, 0, len(tagErrors))
	for _, fe := range tagErrors {
		out = append(out, errs.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: tagMessage(fe),
		})
	}
	return out
}

// tagMessage renders one failed tag. min and max count characters for
// strings and compare values otherwise.
func tagMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "must contain only letters and numbers"
	case "uuid":
		return "must be a valid UUID"
	case "dive":
		return "some items are invalid"
	}

	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
