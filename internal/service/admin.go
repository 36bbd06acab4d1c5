package service

import (
	"context"
	"fmt"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/rs/zerolog"
)

const adminCacheScope = "admins"

type AdminStore interface {
	Create(ctx context.Context, req *admin.CreateAdminRequest) (*admin.Admin, error)
	GetByID(ctx context.Context, id int64) (*admin.Admin, error)
	Delete(ctx context.Context, id int64) error
	Paginate(ctx context.Context, limit, offset int) ([]admin.Admin, error)
	Count(ctx context.Context) (int64, error)
}

type PageCache interface {
	GetPage(ctx context.Context, scope string, limit, offset int, dest any) (version int64, hit bool, err error)
	SetPage(ctx context.Context, scope string, version int64, limit, offset int, value any) error
	Invalidate(ctx context.Context, scope string) error
}

type WelcomeEmailEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, adminID int64, to, username string) error
}

// AdminService manages administrators. Listing pages are cached; cache and
// queue failures are logged and never fail the request.
type AdminService struct {
	repo   AdminStore
	cache  PageCache
	jobs   WelcomeEmailEnqueuer
	logger *zerolog.Logger
}

func NewAdminService(repo AdminStore, cache PageCache, jobs WelcomeEmailEnqueuer, logger *zerolog.Logger) *AdminService {
	return &AdminService{
		repo:   repo,
		cache:  cache,
		jobs:   jobs,
		logger: logger,
	}
}

func adminNotFound(id int64, cause error) error {
	return &errs.Error{
		Kind:    errs.KindNotFound,
		Code:    "ADMIN_NOT_FOUND",
		Message: fmt.Sprintf("Admin not found with ID: %d", id),
		Err:     cause,
	}
}

func (s *AdminService) ListAdmins(ctx context.Context, page model.PageRequest) (*model.PaginatedResponse[admin.Admin], error) {
	page = page.Normalize()

	var cached model.PaginatedResponse[admin.Admin]
	version, hit, err := s.cache.GetPage(ctx, adminCacheScope, page.Limit, page.Offset, &cached)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin page cache read failed")
	}
	if hit {
		return &cached, nil
	}

	items, err := s.repo.Paginate(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(items, page, total)
	if cacheable {
		if err := s.cache.SetPage(ctx, adminCacheScope, version, page.Limit, page.Offset, resp); err != nil {
			s.logger.Warn().Err(err).Msg("admin page cache write failed")
		}
	}

	return &resp, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id int64) (*admin.Admin, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, adminNotFound(id, err)
		}
		return nil, err
	}
	return item, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, req *admin.CreateAdminRequest) (*admin.Admin, error) {
	item, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	if err := s.jobs.EnqueueWelcomeEmail(ctx, item.ID, item.Email, item.Username); err != nil {
		s.logger.Error().Err(err).Int64("admin_id", item.ID).Msg("failed to enqueue welcome email")
	}

	return item, nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return adminNotFound(id, err)
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *AdminService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, adminCacheScope); err != nil {
		s.logger.Warn().Err(err).Msg("admin page cache invalidation failed")
	}
}
