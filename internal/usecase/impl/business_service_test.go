package impl

import (
	"context"
	"testing"

	"bizprofile/internal/domain/entity"
	"bizprofile/internal/domain/service"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateBusinessInput(ownerID uuid.UUID) *usecase.CreateBusinessInput {
	return &usecase.CreateBusinessInput{
		OwnerID:      ownerID,
		CompanyName:  "Acme Corp",
		BusinessType: "Manufacturing",
	}
}

func seedAllBusinessRegions(t *testing.T, cache *fakeCache) {
	t.Helper()

	business := &entity.Business{ID: uuid.New(), CompanyName: "Seeded"}
	seedCache(t, cache, service.RegionBusinessesByID, business.ID.String(), business)
	seedCache(t, cache, service.RegionBusinessesByCompanyName, business.CompanyName, business)
	seedCache(t, cache, service.RegionAllBusinesses, service.AllKey, []*entity.Business{business})
	seedCache(t, cache, service.RegionBusinessesByOwner, uuid.NewString(), []*entity.Business{business})
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.On("ExistsByCompanyName", ctx, "Acme Corp").Return(false, nil)
	fx.ownerRepo.On("ExistsByID", ctx, ownerID).Return(true, nil)
	fx.businessRepo.On("Create", ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Business).ID = businessID
		}).
		Return(nil)

	business, err := fx.service.CreateBusiness(ctx, newCreateBusinessInput(ownerID))

	require.NoError(t, err)
	assert.Equal(t, businessID, business.ID)
	assert.Equal(t, ownerID, business.OwnerID)
	fx.businessRepo.AssertExpectations(t)
}

func TestBusinessService_CreateBusiness_FlushesAllRegions(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	seedAllBusinessRegions(t, fx.cache)

	fx.businessRepo.On("ExistsByCompanyName", ctx, mock.Anything).Return(false, nil)
	fx.ownerRepo.On("ExistsByID", ctx, ownerID).Return(true, nil)
	fx.businessRepo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := fx.service.CreateBusiness(ctx, newCreateBusinessInput(ownerID))

	require.NoError(t, err)
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByID])
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByCompanyName])
	assert.Empty(t, fx.cache.entries[service.RegionAllBusinesses])
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByOwner])
}

func TestBusinessService_GetBusinessByID_IgnoresCachedEntry(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	seedCache(t, fx.cache, service.RegionBusinessesByID, businessID.String(), &entity.Business{ID: businessID, CompanyName: "Stale"})

	stored := &entity.Business{ID: businessID, CompanyName: "Fresh"}
	fx.businessRepo.On("FindByID", ctx, businessID).Return(stored, nil)

	business, err := fx.service.GetBusinessByID(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, "Fresh", business.CompanyName)
	fx.businessRepo.AssertExpectations(t)
}

func TestBusinessService_GetBusinessByCompanyName_ReadsStore(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	stored := &entity.Business{ID: uuid.New(), CompanyName: "Acme Corp"}
	fx.businessRepo.On("FindByCompanyName", ctx, "Acme Corp").Return(stored, nil)

	business, err := fx.service.GetBusinessByCompanyName(ctx, "Acme Corp")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, business.ID)
	// Lookup reads do not populate the region; only update write-through does.
	assert.False(t, fx.cache.has(service.RegionBusinessesByCompanyName, "Acme Corp"))
}

func TestBusinessService_GetAllBusinesses_CachesAggregate(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	stored := []*entity.Business{
		{ID: uuid.New(), CompanyName: "Acme Corp"},
		{ID: uuid.New(), CompanyName: "Globex"},
	}

	fx.businessRepo.On("FindAll", ctx).Return(stored, nil).Once()

	first, err := fx.service.GetAllBusinesses(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := fx.service.GetAllBusinesses(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	fx.businessRepo.AssertExpectations(t)
}

func TestBusinessService_GetBusinessesByOwnerID_CachesEmptyResult(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.On("FindByOwnerID", ctx, ownerID).Return([]*entity.Business{}, nil).Once()

	first, err := fx.service.GetBusinessesByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, first)
	assert.True(t, fx.cache.has(service.RegionBusinessesByOwner, ownerID.String()))

	second, err := fx.service.GetBusinessesByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, second)
	fx.businessRepo.AssertExpectations(t)
}

func TestBusinessService_UpdateBusiness_MergesNonNilFields(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := &entity.Business{
		ID:           businessID,
		CompanyName:  "Acme Corp",
		BusinessType: "Manufacturing",
		Phone:        "555-0100",
	}

	fx.businessRepo.On("FindByID", ctx, businessID).Return(stored, nil)
	fx.businessRepo.On("Update", ctx, mock.Anything).Return(nil)

	newType := "Logistics"
	updated, err := fx.service.UpdateBusiness(ctx, businessID, &usecase.UpdateBusinessInput{
		BusinessType: &newType,
	})

	require.NoError(t, err)
	assert.Equal(t, "Logistics", updated.BusinessType)
	// Untouched fields survive the merge.
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	assert.Equal(t, "555-0100", updated.Phone)
	// The rename path never ran, so no uniqueness probe was needed.
	fx.businessRepo.AssertNotCalled(t, "ExistsByCompanyName", mock.Anything, mock.Anything)
}

func TestBusinessService_UpdateBusiness_WritesThroughLookupRegions(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := &entity.Business{ID: businessID, CompanyName: "Acme Corp", BusinessType: "Manufacturing"}
	seedCache(t, fx.cache, service.RegionAllBusinesses, service.AllKey, []*entity.Business{stored})

	fx.businessRepo.On("FindByID", ctx, businessID).Return(stored, nil)
	fx.businessRepo.On("ExistsByCompanyName", ctx, "Acme Logistics").Return(false, nil)
	fx.businessRepo.On("Update", ctx, mock.Anything).Return(nil)

	newName := "Acme Logistics"
	_, err := fx.service.UpdateBusiness(ctx, businessID, &usecase.UpdateBusinessInput{
		CompanyName: &newName,
	})

	require.NoError(t, err)
	assert.True(t, fx.cache.has(service.RegionBusinessesByID, businessID.String()))
	assert.True(t, fx.cache.has(service.RegionBusinessesByCompanyName, "Acme Logistics"))
	assert.False(t, fx.cache.has(service.RegionAllBusinesses, service.AllKey))
}

func TestBusinessService_DeleteBusiness_EvictsByIDAndAggregate(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	business := &entity.Business{ID: businessID, CompanyName: "Acme Corp"}
	seedCache(t, fx.cache, service.RegionBusinessesByID, businessID.String(), business)
	seedCache(t, fx.cache, service.RegionBusinessesByCompanyName, "Acme Corp", business)
	seedCache(t, fx.cache, service.RegionAllBusinesses, service.AllKey, []*entity.Business{business})

	fx.businessRepo.On("Delete", ctx, businessID).Return(nil)

	err := fx.service.DeleteBusiness(ctx, businessID)

	require.NoError(t, err)
	assert.False(t, fx.cache.has(service.RegionBusinessesByID, businessID.String()))
	assert.False(t, fx.cache.has(service.RegionAllBusinesses, service.AllKey))
	// The company-name entry lingers until its TTL expires.
	assert.True(t, fx.cache.has(service.RegionBusinessesByCompanyName, "Acme Corp"))
}

func TestBusinessService_DeleteAllBusinesses_FlushesAllRegions(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	seedAllBusinessRegions(t, fx.cache)

	fx.businessRepo.On("DeleteAll", ctx).Return(nil)

	err := fx.service.DeleteAllBusinesses(ctx)

	require.NoError(t, err)
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByID])
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByCompanyName])
	assert.Empty(t, fx.cache.entries[service.RegionAllBusinesses])
	assert.Empty(t, fx.cache.entries[service.RegionBusinessesByOwner])
}

func TestBusinessService_BusinessExists(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	fx.businessRepo.On("ExistsByID", ctx, businessID).Return(true, nil)

	exists, err := fx.service.BusinessExists(ctx, businessID)

	require.NoError(t, err)
	assert.True(t, exists)
}
