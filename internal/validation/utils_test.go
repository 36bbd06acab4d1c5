package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidator = validator.New()

type courseRequest struct {
	ID   int64  `param:"courseId" json:"-"`
	Name string `json:"name" validate:"required,max=10"`
	Code string `json:"code" validate:"omitempty,alphanum"`
}

func (r *courseRequest) Validate() error {
	return testValidator.Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "end must be after start"}}
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/courses/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetParamNames("courseId")
	c.SetParamValues("7")
	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := &courseRequest{}
		require.NoError(t, BindAndValidate(newContext(`{"name":"Algebra"}`), req))
		assert.Equal(t, int64(7), req.ID)
		assert.Equal(t, "Algebra", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":`), &courseRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Invalid request body", httpErr.Message)
	})

	t.Run("field errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":"Linear Algebra II","code":"a-b"}`), &courseRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "Validation failed", httpErr.Message)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "name", Error: "must not exceed 10 characters"},
			{Field: "code", Error: "must contain only letters and numbers"},
		}, httpErr.Errors)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := BindAndValidate(newContext(`{}`), &courseRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{}`), &customRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "window", Error: "end must be after start"}}, httpErr.Errors)
	})
}
