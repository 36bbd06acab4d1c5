package repository

import (
	"github.com/YeZawHlaing/eduverse/internal/server"
)

type Repositories struct {
	Pathway *PathwayRepository
	Admin   *AdminRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Pathway: NewPathwayRepository(s.DB.Pool),
		Admin:   NewAdminRepository(s.DB.Pool),
	}
}
