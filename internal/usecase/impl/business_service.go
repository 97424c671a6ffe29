package impl

import (
	"context"
	"log/slog"

	"bizprofile/internal/domain/entity"
	domainerrors "bizprofile/internal/domain/errors"
	"bizprofile/internal/domain/repository"
	"bizprofile/internal/domain/service"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	ownerRepo    repository.OwnerRepository
	cache        service.Cache
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	OwnerRepo    repository.OwnerRepository
	Cache        service.Cache
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		ownerRepo:    params.OwnerRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

// CreateBusiness persists a new business for an existing owner. All four
// business cache regions are flushed so stale lists and lookups disappear
// together.
func (srv *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	srv.logger.Info("Creating business", "companyName", input.CompanyName, "ownerID", input.OwnerID)

	// 1. Company names are globally unique
	taken, err := srv.businessRepo.ExistsByCompanyName(ctx, input.CompanyName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check company name uniqueness")
	}
	if taken {
		return nil, domainerrors.ErrBusinessAlreadyExists.WrapMessage("company name already in use: " + input.CompanyName)
	}

	// 2. The owner must exist
	ownerExists, err := srv.ownerRepo.ExistsByID(ctx, input.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check owner existence")
	}
	if !ownerExists {
		return nil, domainerrors.ErrOwnerNotFound.WrapMessage("owner not found: " + input.OwnerID.String())
	}

	business := &entity.Business{
		OwnerID:      input.OwnerID,
		CompanyName:  input.CompanyName,
		BusinessType: input.BusinessType,
		Description:  input.Description,
		Website:      input.Website,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, domainerrors.ErrBusinessAlreadyExists) || errors.Is(err, domainerrors.ErrOwnerNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.flushBusinessRegions(ctx)

	srv.logger.Debug("business created", "businessID", business.ID)

	return business, nil
}

// GetBusinessByID returns a single business straight from the store.
func (srv *businessService) GetBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found: " + id.String())
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// GetBusinessByCompanyName returns a single business straight from the store.
func (srv *businessService) GetBusinessByCompanyName(ctx context.Context, companyName string) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByCompanyName(ctx, companyName)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found: " + companyName)
		}

		return nil, errors.Wrap(err, "failed to find business by company name")
	}

	return business, nil
}

// GetAllBusinesses returns every business, reading through the
// all-businesses cache.
func (srv *businessService) GetAllBusinesses(ctx context.Context) ([]*entity.Business, error) {
	if businesses, ok := cacheGet[[]*entity.Business](ctx, srv.cache, srv.logger, service.RegionAllBusinesses, service.AllKey); ok {
		return businesses, nil
	}

	businesses, err := srv.businessRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionAllBusinesses, service.AllKey, businesses)

	return businesses, nil
}

// GetBusinessesByOwnerID returns the businesses of one owner, reading
// through the businesses-by-owner cache. An owner with no businesses is a
// valid, cacheable empty result.
func (srv *businessService) GetBusinessesByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	key := ownerID.String()

	if businesses, ok := cacheGet[[]*entity.Business](ctx, srv.cache, srv.logger, service.RegionBusinessesByOwner, key); ok {
		return businesses, nil
	}

	businesses, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by owner")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionBusinessesByOwner, key, businesses)

	return businesses, nil
}

// UpdateBusiness merges the non-nil input fields into the stored business.
// The result is written through the businesses-by-id and
// businesses-by-company-name regions; the all-businesses aggregate is
// flushed.
func (srv *businessService) UpdateBusiness(ctx context.Context, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	srv.logger.Info("Updating business", "businessID", id)

	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found: " + id.String())
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if input.CompanyName != nil && *input.CompanyName != business.CompanyName {
		taken, err := srv.businessRepo.ExistsByCompanyName(ctx, *input.CompanyName)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check company name uniqueness")
		}
		if taken {
			return nil, domainerrors.ErrBusinessAlreadyExists.WrapMessage("company name already in use: " + *input.CompanyName)
		}

		business.CompanyName = *input.CompanyName
	}
	if input.BusinessType != nil {
		business.BusinessType = *input.BusinessType
	}
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.Website != nil {
		business.Website = *input.Website
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.Address != nil {
		business.Address = *input.Address
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		if errors.Is(err, domainerrors.ErrBusinessAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionBusinessesByID, id.String(), business)
	cacheSet(ctx, srv.cache, srv.logger, service.RegionBusinessesByCompanyName, business.CompanyName, business)
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionAllBusinesses)

	return business, nil
}

// DeleteBusiness removes one business, evicts its businesses-by-id entry
// and flushes the all-businesses aggregate.
func (srv *businessService) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting business", "businessID", id)

	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business not found: " + id.String())
		}

		return errors.Wrap(err, "failed to delete business")
	}

	cacheDelete(ctx, srv.cache, srv.logger, service.RegionBusinessesByID, id.String())
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionAllBusinesses)

	return nil
}

// DeleteAllBusinesses removes every business and flushes all four business
// cache regions.
func (srv *businessService) DeleteAllBusinesses(ctx context.Context) error {
	srv.logger.Info("Deleting all businesses")

	if err := srv.businessRepo.DeleteAll(ctx); err != nil {
		return errors.Wrap(err, "failed to delete all businesses")
	}

	srv.flushBusinessRegions(ctx)

	return nil
}

// BusinessExists reports existence straight from the store.
func (srv *businessService) BusinessExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := srv.businessRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check business existence")
	}

	return exists, nil
}

func (srv *businessService) flushBusinessRegions(ctx context.Context) {
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionBusinessesByID)
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionBusinessesByCompanyName)
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionAllBusinesses)
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionBusinessesByOwner)
}
