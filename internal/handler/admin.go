package handler

import (
	"context"
	"net/http"

	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/YeZawHlaing/eduverse/internal/response"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/labstack/echo/v4"
)

type AdminService interface {
	ListAdmins(ctx context.Context, page model.PageRequest) (*model.PaginatedResponse[admin.Admin], error)
	GetAdmin(ctx context.Context, id int64) (*admin.Admin, error)
	CreateAdmin(ctx context.Context, req *admin.CreateAdminRequest) (*admin.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

type AdminHandler struct {
	Handler
	admins AdminService
}

func NewAdminHandler(s *server.Server, admins AdminService) *AdminHandler {
	return &AdminHandler{
		Handler: NewHandler(s),
		admins:  admins,
	}
}

func (h *AdminHandler) ListAdmins(c echo.Context, req *admin.ListAdminsRequest) (response.Envelope, error) {
	page, err := h.admins.ListAdmins(c.Request().Context(), req.PageRequest)
	return ok("Admins retrieved successfully", page, err)
}

func (h *AdminHandler) GetAdmin(c echo.Context, req *admin.GetAdminRequest) (response.Envelope, error) {
	a, err := h.admins.GetAdmin(c.Request().Context(), req.ID)
	return ok("Admin retrieved successfully", a, err)
}

func (h *AdminHandler) CreateAdmin(c echo.Context, req *admin.CreateAdminRequest) (response.Envelope, error) {
	created, err := h.admins.CreateAdmin(c.Request().Context(), req)
	return Translator{
		SuccessMessage: "Admin created successfully",
		SuccessData:    created,
		EmptyMessage:   "Failed to create admin",
		EmptyDetail:    "Creation failed due to unknown reasons",
	}.Translate(created != nil, err)
}

func (h *AdminHandler) DeleteAdmin(c echo.Context, req *admin.DeleteAdminRequest) (response.Envelope, error) {
	err := h.admins.DeleteAdmin(c.Request().Context(), req.ID)
	return Translator{
		SuccessMessage: "Admin deleted successfully",
		SuccessData:    "deleted",
	}.Translate(true, err)
}

func (h *AdminHandler) Register(g *echo.Group) {
	g.GET("/admins", Handle(h.Handler, h.ListAdmins, http.StatusOK, &admin.ListAdminsRequest{}))
	g.POST("/admins", Handle(h.Handler, h.CreateAdmin, http.StatusOK, &admin.CreateAdminRequest{}))
	g.GET("/admins/:adminId", Handle(h.Handler, h.GetAdmin, http.StatusOK, &admin.GetAdminRequest{}))
	g.DELETE("/admins/:adminId", Handle(h.Handler, h.DeleteAdmin, http.StatusOK, &admin.DeleteAdminRequest{}))
}
