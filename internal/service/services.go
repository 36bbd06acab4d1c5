package service

import (
	"github.com/YeZawHlaing/eduverse/internal/lib/cache"
	"github.com/YeZawHlaing/eduverse/internal/lib/job"
	"github.com/YeZawHlaing/eduverse/internal/repository"
	"github.com/YeZawHlaing/eduverse/internal/server"
)

type Services struct {
	Auth    *AuthService
	Job     *job.JobService
	Pathway *PathwayService
	Admin   *AdminService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)
	pageCache := cache.NewPageCache(s.Redis, cache.DefaultTTL)

	return &Services{
		Job:     s.Job,
		Auth:    authService,
		Pathway: NewPathwayService(repos.Pathway),
		Admin:   NewAdminService(repos.Admin, pageCache, s.Job, s.Logger),
	}, nil
}
