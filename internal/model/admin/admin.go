// Package admin defines the administrator resource and its requests.
package admin

import "github.com/YeZawHlaing/eduverse/internal/model"

type Admin struct {
	model.Base
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

func (r *CreateAdminRequest) Validate() error {
	return model.ValidateStruct(r)
}

type GetAdminRequest struct {
	ID int64 `param:"adminId"`
}

func (r *GetAdminRequest) Validate() error {
	return model.ValidateStruct(r)
}

type DeleteAdminRequest struct {
	ID int64 `param:"adminId"`
}

func (r *DeleteAdminRequest) Validate() error {
	return model.ValidateStruct(r)
}

type ListAdminsRequest struct {
	model.PageRequest
}

func (r *ListAdminsRequest) Validate() error {
	return model.ValidateStruct(r)
}
