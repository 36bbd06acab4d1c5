package pathway

import (
	"errors"
	"strings"
	"testing"

	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedTags(t *testing.T, err error) []string {
	t.Helper()

	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))

	tags := make([]string, 0, len(ve))
	for _, fe := range ve {
		tags = append(tags, fe.Field()+":"+fe.Tag())
	}
	return tags
}

func TestCreatePathwayRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &CreatePathwayRequest{Name: "Algebra I", Description: "Intro"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := &CreatePathwayRequest{}
		assert.Equal(t, []string{"Name:required"}, failedTags(t, req.Validate()))
	})

	t.Run("name too long", func(t *testing.T) {
		req := &CreatePathwayRequest{Name: strings.Repeat("a", 151)}
		assert.Equal(t, []string{"Name:max"}, failedTags(t, req.Validate()))
	})
}

func TestUpdatePathwayRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdatePathwayRequest{ID: 1, Name: "Algebra II"}).Validate())
	assert.Equal(t, []string{"Name:required"}, failedTags(t, (&UpdatePathwayRequest{ID: 1}).Validate()))

	// Ids that match no row are a not-found outcome, decided by the service.
	assert.NoError(t, (&UpdatePathwayRequest{ID: 0, Name: "x"}).Validate())
	assert.NoError(t, (&DeletePathwayRequest{ID: -1}).Validate())
}

func TestListPathwaysRequestValidate(t *testing.T) {
	ok := &ListPathwaysRequest{PageRequest: model.PageRequest{Limit: 10, Offset: 0}}
	assert.NoError(t, ok.Validate())

	bad := &ListPathwaysRequest{PageRequest: model.PageRequest{Offset: -1}}
	assert.Equal(t, []string{"Offset:min"}, failedTags(t, bad.Validate()))
}
