// Package model holds the types shared by every resource: the persisted base
// columns, page requests and paginated results. Resource types live in
// subpackages.
package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the struct tag rules of v.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// Base carries the columns every table has.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
