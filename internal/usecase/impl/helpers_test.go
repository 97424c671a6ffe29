package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"bizprofile/config"
	"bizprofile/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errTestCacheDown = errors.New("cache backend down")

const testRequiredRole = "BUSINESS_OWNER"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		AuthService: &config.AuthServiceConfig{
			RequiredRole: testRequiredRole,
		},
	}
}

// ownerServiceFixtures holds all test dependencies for owner service tests.
type ownerServiceFixtures struct {
	service      usecase.OwnerUsecase
	ownerRepo    *MockOwnerRepository
	businessRepo *MockBusinessRepository
	cache        *fakeCache
	authClient   *MockAuthServiceClient
}

func createTestOwnerService(t *testing.T) ownerServiceFixtures {
	t.Helper()

	ownerRepo := new(MockOwnerRepository)
	businessRepo := new(MockBusinessRepository)
	cache := newFakeCache()
	authClient := new(MockAuthServiceClient)
	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{
			ownerRepo:    ownerRepo,
			businessRepo: businessRepo,
		},
	}

	service := NewOwnerService(OwnerServiceParams{
		TxManager:  txManager,
		OwnerRepo:  ownerRepo,
		Cache:      cache,
		AuthClient: authClient,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return ownerServiceFixtures{
		service:      service,
		ownerRepo:    ownerRepo,
		businessRepo: businessRepo,
		cache:        cache,
		authClient:   authClient,
	}
}

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *MockBusinessRepository
	ownerRepo    *MockOwnerRepository
	cache        *fakeCache
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	t.Helper()

	businessRepo := new(MockBusinessRepository)
	ownerRepo := new(MockOwnerRepository)
	cache := newFakeCache()

	service := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		OwnerRepo:    ownerRepo,
		Cache:        cache,
		Logger:       newDiscardLogger(),
	})

	return businessServiceFixtures{
		service:      service,
		businessRepo: businessRepo,
		ownerRepo:    ownerRepo,
		cache:        cache,
	}
}

// seedCache stores a value in the fake cache the same way the services do.
func seedCache(t *testing.T, cache *fakeCache, region, key string, value any) {
	t.Helper()

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), region, key, raw))
}
