package service

import (
	"context"
	"errors"
	"testing"

	"github.com/YeZawHlaing/eduverse/internal/errs"
	"github.com/YeZawHlaing/eduverse/internal/model"
	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	repo  *mockAdminStore
	cache *mockPageCache
	jobs  *mockEnqueuer
	svc   *AdminService
}

func newAdminFixture() *adminFixture {
	logger := zerolog.Nop()
	f := &adminFixture{
		repo:  &mockAdminStore{},
		cache: &mockPageCache{},
		jobs:  &mockEnqueuer{},
	}
	f.svc = NewAdminService(f.repo, f.cache, f.jobs, &logger)
	return f
}

func TestListAdminsCacheMiss(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	admins := []admin.Admin{{Base: model.Base{ID: 1}, Username: "mya"}}

	f.cache.On("GetPage", ctx, "admins", 20, 0, mock.Anything).Return(int64(4), false, nil)
	f.repo.On("Paginate", ctx, 20, 0).Return(admins, nil)
	f.repo.On("Count", ctx).Return(int64(1), nil)
	f.cache.On("SetPage", ctx, "admins", int64(4), 20, 0, mock.Anything).Return(nil)

	got, err := f.svc.ListAdmins(ctx, model.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, admins, got.Data)
	assert.Equal(t, 20, got.Limit)
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestListAdminsCacheHit(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.cache.On("GetPage", ctx, "admins", 10, 10, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(4).(*model.PaginatedResponse[admin.Admin])
			dest.Data = []admin.Admin{{Username: "cached"}}
			dest.Limit, dest.Offset, dest.Total = 10, 10, 11
		}).
		Return(int64(1), true, nil)

	got, err := f.svc.ListAdmins(ctx, model.PageRequest{Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Data[0].Username)
	f.repo.AssertNotCalled(t, "Paginate", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAdminsCacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.cache.On("GetPage", ctx, "admins", 20, 0, mock.Anything).Return(int64(0), false, errors.New("redis down"))
	f.repo.On("Paginate", ctx, 20, 0).Return([]admin.Admin{}, nil)
	f.repo.On("Count", ctx).Return(int64(0), nil)

	got, err := f.svc.ListAdmins(ctx, model.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, got.Data)
	f.cache.AssertNotCalled(t, "SetPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	req := &admin.CreateAdminRequest{Username: "mya", Email: "mya@eduverse.dev"}
	created := &admin.Admin{Base: model.Base{ID: 5}, Username: "mya", Email: "mya@eduverse.dev"}

	f.repo.On("Create", ctx, req).Return(created, nil)
	f.cache.On("Invalidate", ctx, "admins").Return(nil)
	f.jobs.On("EnqueueWelcomeEmail", ctx, int64(5), "mya@eduverse.dev", "mya").Return(errors.New("queue full"))

	got, err := f.svc.CreateAdmin(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	f.cache.AssertExpectations(t)
	f.jobs.AssertExpectations(t)
}

func TestCreateAdminDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	req := &admin.CreateAdminRequest{Username: "mya", Email: "mya@eduverse.dev"}

	f.repo.On("Create", ctx, req).Return(nil, &errs.Error{Kind: errs.KindDuplicateKey})

	_, err := f.svc.CreateAdmin(ctx, req)
	assert.Equal(t, errs.KindDuplicateKey, errs.KindOf(err))
	f.jobs.AssertNotCalled(t, "EnqueueWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestDeleteAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("Delete", ctx, int64(2)).Return(nil).Once()
	f.repo.On("Delete", ctx, int64(2)).Return(&errs.Error{Kind: errs.KindNotFound}).Once()
	f.cache.On("Invalidate", ctx, "admins").Return(nil).Once()

	require.NoError(t, f.svc.DeleteAdmin(ctx, 2))

	err := f.svc.DeleteAdmin(ctx, 2)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, "Admin not found with ID: 2", errs.MessageOf(err))
	f.cache.AssertExpectations(t)
}

func TestGetAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("GetByID", ctx, int64(3)).Return(&admin.Admin{Username: "kyaw"}, nil)

	got, err := f.svc.GetAdmin(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "kyaw", got.Username)
}
