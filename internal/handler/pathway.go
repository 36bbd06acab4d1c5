package handler

import (
	"context"
	"net/http"

	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/YeZawHlaing/eduverse/internal/model/pathway"
	"github.com/YeZawHlaing/eduverse/internal/response"
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/labstack/echo/v4"
)

type PathwayService interface {
	CreatePathway(ctx context.Context, req *pathway.CreatePathwayRequest) (*pathway.Pathway, error)
	UpdatePathway(ctx context.Context, req *pathway.UpdatePathwayRequest) error
	DeletePathway(ctx context.Context, id int64) error
	GetPathway(ctx context.Context, id int64) (*pathway.Pathway, error)
	ListPathways(ctx context.Context, page model.PageRequest) (*model.PaginatedResponse[pathway.Pathway], error)
}

type PathwayHandler struct {
	Handler
	pathways PathwayService
}

func NewPathwayHandler(s *server.Server, pathways PathwayService) *PathwayHandler {
	return &PathwayHandler{
		Handler:  NewHandler(s),
		pathways: pathways,
	}
}

func (h *PathwayHandler) CreatePathway(c echo.Context, req *pathway.CreatePathwayRequest) (response.Envelope, error) {
	created, err := h.pathways.CreatePathway(c.Request().Context(), req)
	return Translator{
		SuccessMessage: "Pathway created successfully",
		SuccessData:    "created",
		EmptyMessage:   "Failed to create pathway",
		EmptyDetail:    "Creation failed due to unknown reasons",
	}.Translate(created != nil, err)
}

func (h *PathwayHandler) UpdatePathway(c echo.Context, req *pathway.UpdatePathwayRequest) (response.Envelope, error) {
	err := h.pathways.UpdatePathway(c.Request().Context(), req)
	return Translator{
		SuccessMessage: "Pathway updated successfully",
		SuccessData:    "updated",
	}.Translate(true, err)
}

func (h *PathwayHandler) DeletePathway(c echo.Context, req *pathway.DeletePathwayRequest) (response.Envelope, error) {
	err := h.pathways.DeletePathway(c.Request().Context(), req.ID)
	return Translator{
		SuccessMessage: "Pathway deleted successfully",
		SuccessData:    "deleted",
	}.Translate(true, err)
}

func (h *PathwayHandler) GetPathway(c echo.Context, req *pathway.GetPathwayRequest) (response.Envelope, error) {
	p, err := h.pathways.GetPathway(c.Request().Context(), req.ID)
	return ok("Pathway retrieved successfully", p, err)
}

func (h *PathwayHandler) ListPathways(c echo.Context, req *pathway.ListPathwaysRequest) (response.Envelope, error) {
	page, err := h.pathways.ListPathways(c.Request().Context(), req.PageRequest)
	return ok("Pathways retrieved successfully", page, err)
}

// Register mounts the pathway routes on g.
func (h *PathwayHandler) Register(g *echo.Group) {
	g.POST("/pathway/pathway/", Handle(h.Handler, h.CreatePathway, http.StatusOK, &pathway.CreatePathwayRequest{}))
	g.PUT("/pathway/:pathwayId", Handle(h.Handler, h.UpdatePathway, http.StatusOK, &pathway.UpdatePathwayRequest{}))
	g.DELETE("/pathway/:pathwayId", Handle(h.Handler, h.DeletePathway, http.StatusOK, &pathway.DeletePathwayRequest{}))
	g.GET("/pathway/:pathwayId", Handle(h.Handler, h.GetPathway, http.StatusOK, &pathway.GetPathwayRequest{}))
	g.GET("/pathways", Handle(h.Handler, h.ListPathways, http.StatusOK, &pathway.ListPathwaysRequest{}))
}
