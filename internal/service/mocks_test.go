package service

import (
	"context"

	"github.com/YeZawHlaing/eduverse/internal/model/admin"
	"github.com/YeZawHlaing/eduverse/internal/model/pathway"
	"github.com/stretchr/testify/mock"
)

type mockPathwayStore struct {
	mock.Mock
}

func (m *mockPathwayStore) Create(ctx context.Context, req *pathway.CreatePathwayRequest) (*pathway.Pathway, error) {
	args := m.Called(ctx, req)
	item, _ := args.Get(0).(*pathway.Pathway)
	return item, args.Error(1)
}

func (m *mockPathwayStore) GetByID(ctx context.Context, id int64) (*pathway.Pathway, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*pathway.Pathway)
	return item, args.Error(1)
}

func (m *mockPathwayStore) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPathwayStore) Update(ctx context.Context, req *pathway.UpdatePathwayRequest) (*pathway.Pathway, error) {
	args := m.Called(ctx, req)
	item, _ := args.Get(0).(*pathway.Pathway)
	return item, args.Error(1)
}

func (m *mockPathwayStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPathwayStore) Paginate(ctx context.Context, limit, offset int) ([]pathway.Pathway, error) {
	args := m.Called(ctx, limit, offset)
	items, _ := args.Get(0).([]pathway.Pathway)
	return items, args.Error(1)
}

func (m *mockPathwayStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) Create(ctx context.Context, req *admin.CreateAdminRequest) (*admin.Admin, error) {
	args := m.Called(ctx, req)
	item, _ := args.Get(0).(*admin.Admin)
	return item, args.Error(1)
}

func (m *mockAdminStore) GetByID(ctx context.Context, id int64) (*admin.Admin, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*admin.Admin)
	return item, args.Error(1)
}

func (m *mockAdminStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdminStore) Paginate(ctx context.Context, limit, offset int) ([]admin.Admin, error) {
	args := m.Called(ctx, limit, offset)
	items, _ := args.Get(0).([]admin.Admin)
	return items, args.Error(1)
}

func (m *mockAdminStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockPageCache struct {
	mock.Mock
}

func (m *mockPageCache) GetPage(ctx context.Context, scope string, limit, offset int, dest any) (int64, bool, error) {
	args := m.Called(ctx, scope, limit, offset, dest)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *mockPageCache) SetPage(ctx context.Context, scope string, version int64, limit, offset int, value any) error {
	return m.Called(ctx, scope, version, limit, offset, value).Error(0)
}

func (m *mockPageCache) Invalidate(ctx context.Context, scope string) error {
	return m.Called(ctx, scope).Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueWelcomeEmail(ctx context.Context, adminID int64, to, username string) error {
	return m.Called(ctx, adminID, to, username).Error(0)
}
