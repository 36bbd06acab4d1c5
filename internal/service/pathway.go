package service

import (
	"context"
	"fmt"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/YeZawHlaing/eduverse/internal/model/pathway"
)

type PathwayStore interface {
	Create(ctx context.Context, req *pathway.CreatePathwayRequest) (*pathway.Pathway, error)
	GetByID(ctx context.Context, id int64) (*pathway.Pathway, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, req *pathway.UpdatePathwayRequest) (*pathway.Pathway, error)
	Delete(ctx context.Context, id int64) error
	Paginate(ctx context.Context, limit, offset int) ([]pathway.Pathway, error)
	Count(ctx context.Context) (int64, error)
}

type PathwayService struct {
	repo PathwayStore
}

func NewPathwayService(repo PathwayStore) *PathwayService {
	return &PathwayService{repo: repo}
}

func pathwayNotFound(id int64, cause error) error {
	return &errs.Error{
		Kind:    errs.KindNotFound,
		Code:    "PATHWAY_NOT_FOUND",
		Message: fmt.Sprintf("Pathway not found with ID: %d", id),
		Err:     cause,
	}
}

func pathwayNameTaken(name string, cause error) error {
	return &errs.Error{
		Kind:    errs.KindDuplicateKey,
		Code:    "PATHWAY_ALREADY_EXISTS",
		Message: fmt.Sprintf("Pathway with name '%s' already exists", name),
		Err:     cause,
	}
}

// CreatePathway inserts a pathway whose name is not yet taken. The unique
// constraint still guards against a concurrent insert of the same name.
func (s *PathwayService) CreatePathway(ctx context.Context, req *pathway.CreatePathwayRequest) (*pathway.Pathway, error) {
	exists, err := s.repo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pathwayNameTaken(req.Name, nil)
	}

	item, err := s.repo.Create(ctx, req)
	if err != nil {
		if errs.KindOf(err) == errs.KindDuplicateKey {
			return nil, pathwayNameTaken(req.Name, err)
		}
		return nil, err
	}

	return item, nil
}

func (s *PathwayService) UpdatePathway(ctx context.Context, req *pathway.UpdatePathwayRequest) error {
	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return pathwayNotFound(req.ID, err)
		}
		return err
	}

	taken, err := s.repo.ExistsByName(ctx, req.Name, req.ID)
	if err != nil {
		return err
	}
	if taken {
		return pathwayNameTaken(req.Name, nil)
	}

	if _, err := s.repo.Update(ctx, req); err != nil {
		switch errs.KindOf(err) {
		case errs.KindNotFound:
			return pathwayNotFound(req.ID, err)
		case errs.KindDuplicateKey:
			return pathwayNameTaken(req.Name, err)
		}
		return err
	}

	return nil
}

func (s *PathwayService) DeletePathway(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return pathwayNotFound(id, err)
		}
		return err
	}
	return nil
}

func (s *PathwayService) GetPathway(ctx context.Context, id int64) (*pathway.Pathway, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, pathwayNotFound(id, err)
		}
		return nil, err
	}
	return item, nil
}

func (s *PathwayService) ListPathways(ctx context.Context, page model.PageRequest) (*model.PaginatedResponse[pathway.Pathway], error) {
	page = page.Normalize()

	items, err := s.repo.Paginate(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(items, page, total)
	return &resp, nil
}
