package handler

import (
	"github.com/YeZawHlaing/eduverse/internal/server"
	"github.com/YeZawHlaing/eduverse/internal/service"
)

// Handlers groups every HTTP handler so the router takes a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Pathway *PathwayHandler
	Admin   *AdminHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Pathway: NewPathwayHandler(s, services.Pathway),
		Admin:   NewAdminHandler(s, services.Admin),
	}
}
