// Package pathway defines the learning pathway resource and its requests.
package pathway

import "github.com/YeZawHlaing/eduverse/internal/model"

type Pathway struct {
	model.Base
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type CreatePathwayRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *CreatePathwayRequest) Validate() error {
	return model.ValidateStruct(r)
}

// UpdatePathwayRequest takes its ID from the path. Any integer binds; an id
// with no row is reported as not found by the service.
type UpdatePathwayRequest struct {
	ID          int64  `param:"pathwayId" json:"-"`
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *UpdatePathwayRequest) Validate() error {
	return model.ValidateStruct(r)
}

type GetPathwayRequest struct {
	ID int64 `param:"pathwayId"`
}

func (r *GetPathwayRequest) Validate() error {
	return model.ValidateStruct(r)
}

type DeletePathwayRequest struct {
	ID int64 `param:"pathwayId"`
}

func (r *DeletePathwayRequest) Validate() error {
	return model.ValidateStruct(r)
}

type ListPathwaysRequest struct {
	model.PageRequest
}

func (r *ListPathwaysRequest) Validate() error {
	return model.ValidateStruct(r)
}
