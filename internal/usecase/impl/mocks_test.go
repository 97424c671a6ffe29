package impl

import (
	"context"

	"bizprofile/internal/domain/entity"
	"bizprofile/internal/domain/repository"
	"bizprofile/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOwnerRepository mocks the OwnerRepository interface
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessOwner), args.Error(1)
}

func (m *MockOwnerRepository) FindByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessOwner), args.Error(1)
}

func (m *MockOwnerRepository) FindByEmail(ctx context.Context, email string) (*entity.BusinessOwner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessOwner), args.Error(1)
}

func (m *MockOwnerRepository) FindAll(ctx context.Context) ([]*entity.BusinessOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BusinessOwner), args.Error(1)
}

func (m *MockOwnerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *entity.BusinessOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *entity.BusinessOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOwnerRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBusinessRepository mocks the BusinessRepository interface
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByCompanyName(ctx context.Context, companyName string) (*entity.Business, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBusinessRepository) ExistsByCompanyName(ctx context.Context, companyName string) (bool, error) {
	args := m.Called(ctx, companyName)
	return args.Bool(0), args.Error(1)
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) Update(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBusinessRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockBusinessRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAuthServiceClient mocks the AuthServiceClient interface
type MockAuthServiceClient struct {
	mock.Mock
}

func (m *MockAuthServiceClient) GetUserRole(ctx context.Context, authUserID int64) (string, error) {
	args := m.Called(ctx, authUserID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthServiceClient) UserExists(ctx context.Context, authUserID int64) (bool, error) {
	args := m.Called(ctx, authUserID)
	return args.Bool(0), args.Error(1)
}

// stubRepositoryFactory hands fixed repositories to transaction callbacks.
type stubRepositoryFactory struct {
	ownerRepo    repository.OwnerRepository
	businessRepo repository.BusinessRepository
}

func (f *stubRepositoryFactory) NewOwnerRepository() repository.OwnerRepository {
	return f.ownerRepo
}

func (f *stubRepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return f.businessRepo
}

// stubTransactionManager runs the callback against the stub factory with no
// real transaction underneath.
type stubTransactionManager struct {
	factory *stubRepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeCache is an in-memory service.Cache used to assert cache effects.
// Setting failGet or failWrites simulates an unreachable cache backend.
type fakeCache struct {
	entries    map[string]map[string][]byte
	failGet    bool
	failWrites bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, region, key string) ([]byte, error) {
	if c.failGet {
		return nil, errTestCacheDown
	}
	value, ok := c.entries[region][key]
	if !ok {
		return nil, service.ErrCacheMiss
	}
	return value, nil
}

func (c *fakeCache) Set(_ context.Context, region, key string, value []byte) error {
	if c.failWrites {
		return errTestCacheDown
	}
	if c.entries[region] == nil {
		c.entries[region] = map[string][]byte{}
	}
	c.entries[region][key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, region, key string) error {
	if c.failWrites {
		return errTestCacheDown
	}
	delete(c.entries[region], key)
	return nil
}

func (c *fakeCache) DeleteAll(_ context.Context, region string) error {
	if c.failWrites {
		return errTestCacheDown
	}
	delete(c.entries, region)
	return nil
}

func (c *fakeCache) has(region, key string) bool {
	_, ok := c.entries[region][key]
	return ok
}
