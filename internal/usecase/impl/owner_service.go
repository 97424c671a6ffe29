// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"bizprofile/config"
	"bizprofile/internal/domain/entity"
	domainerrors "bizprofile/internal/domain/errors"
	"bizprofile/internal/domain/repository"
	"bizprofile/internal/domain/service"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	txManager    repository.TransactionManager
	ownerRepo    repository.OwnerRepository
	cache        service.Cache
	authClient   service.AuthServiceClient
	requiredRole string
	logger       *slog.Logger
}

// OwnerServiceParams holds dependencies for OwnerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OwnerRepo  repository.OwnerRepository
	Cache      service.Cache
	AuthClient service.AuthServiceClient
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOwnerService is the constructor for ownerService. It receives all dependencies as interfaces.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	requiredRole := ""
	if params.Config != nil && params.Config.AuthService != nil {
		requiredRole = params.Config.AuthService.RequiredRole
	}

	return &ownerService{
		txManager:    params.TxManager,
		ownerRepo:    params.OwnerRepo,
		cache:        params.Cache,
		authClient:   params.AuthClient,
		requiredRole: requiredRole,
		logger:       params.Logger,
	}
}

// CreateOwner verifies the auth account upstream before any profile is
// written. The new profile is cached under the auth user id's lookup key in
// the owners-by-id region.
func (srv *ownerService) CreateOwner(ctx context.Context, authUserID int64, input *usecase.CreateOwnerInput) (*entity.BusinessOwner, error) {
	srv.logger.Info("Creating business owner", "authUserID", authUserID)

	// 1. Verify the auth account holds the required role
	role, err := srv.authClient.GetUserRole(ctx, authUserID)
	if err != nil {
		if errors.Is(err, service.ErrAuthUserNotFound) {
			return nil, domainerrors.ErrOwnerNotFound.WrapMessage("auth user does not exist")
		}

		return nil, domainerrors.ErrAuthServiceUnavailable.WrapMessage(err.Error())
	}
	if role != srv.requiredRole {
		return nil, domainerrors.ErrOwnerNotFound.WrapMessage("auth user does not hold the required role")
	}

	// 2. Reject duplicate auth user ids
	if _, err := srv.ownerRepo.FindByAuthUserID(ctx, authUserID); err == nil {
		return nil, domainerrors.ErrOwnerAlreadyExists.WrapMessage("profile already exists for this auth user")
	} else if !errors.Is(err, repository.ErrOwnerNotFound) {
		return nil, errors.Wrap(err, "failed to check auth user id uniqueness")
	}

	// 3. Reject duplicate emails
	if _, err := srv.ownerRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrOwnerAlreadyExists.WrapMessage("profile already exists for this email")
	} else if !errors.Is(err, repository.ErrOwnerNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	owner := &entity.BusinessOwner{
		AuthUserID:         authUserID,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		DateOfBirth:        input.DateOfBirth,
		Education:          input.Education,
		Skills:             input.Skills,
		Email:              input.Email,
		Phone:              input.Phone,
		JobTitle:           input.JobTitle,
		YearsOfExperience:  input.YearsOfExperience,
		LinkedInProfileURL: input.LinkedInProfileURL,
		Bio:                input.Bio,
	}

	if err := srv.ownerRepo.Create(ctx, owner); err != nil {
		if errors.Is(err, domainerrors.ErrOwnerAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create business owner")
	}

	// The entry is keyed by the auth user id, not the profile id; reads by
	// profile id populate their own entry on first miss.
	cacheSet(ctx, srv.cache, srv.logger, service.RegionOwnersByID, strconv.FormatInt(authUserID, 10), owner)

	srv.logger.Debug("business owner created", "ownerID", owner.ID, "authUserID", authUserID)

	return owner, nil
}

// GetOwnerByID returns a single owner, reading through the owners-by-id cache.
func (srv *ownerService) GetOwnerByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error) {
	key := id.String()

	if owner, ok := cacheGet[*entity.BusinessOwner](ctx, srv.cache, srv.logger, service.RegionOwnersByID, key); ok && owner != nil {
		return owner, nil
	}

	owner, err := srv.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound.WrapMessage("owner not found: " + key)
		}

		return nil, errors.Wrap(err, "failed to find business owner")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionOwnersByID, key, owner)

	return owner, nil
}

// GetOwnerByAuthUserID looks an owner up by the external auth account id.
// This path always reads the store.
func (srv *ownerService) GetOwnerByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error) {
	owner, err := srv.ownerRepo.FindByAuthUserID(ctx, authUserID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound.WrapMessage("no owner for auth user " + strconv.FormatInt(authUserID, 10))
		}

		return nil, errors.Wrap(err, "failed to find business owner by auth user id")
	}

	return owner, nil
}

// GetAllOwners returns every owner, reading through the all-owners cache.
func (srv *ownerService) GetAllOwners(ctx context.Context) ([]*entity.BusinessOwner, error) {
	if owners, ok := cacheGet[[]*entity.BusinessOwner](ctx, srv.cache, srv.logger, service.RegionAllOwners, service.AllKey); ok {
		return owners, nil
	}

	owners, err := srv.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business owners")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionAllOwners, service.AllKey, owners)

	return owners, nil
}

// UpdateOwner replaces the whole profile. The owners-by-id entry is written
// through; the all-owners aggregate is refreshed by TTL expiry only.
func (srv *ownerService) UpdateOwner(ctx context.Context, id uuid.UUID, input *usecase.UpdateOwnerInput) (*entity.BusinessOwner, error) {
	srv.logger.Info("Updating business owner", "ownerID", id)

	owner, err := srv.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound.WrapMessage("owner not found: " + id.String())
		}

		return nil, errors.Wrap(err, "failed to find business owner")
	}

	if input.Email != owner.Email {
		if _, err := srv.ownerRepo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domainerrors.ErrOwnerAlreadyExists.WrapMessage("profile already exists for this email")
		} else if !errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, errors.Wrap(err, "failed to check email uniqueness")
		}
	}

	owner.FirstName = input.FirstName
	owner.LastName = input.LastName
	owner.DateOfBirth = input.DateOfBirth
	owner.Education = input.Education
	owner.Skills = input.Skills
	owner.Email = input.Email
	owner.Phone = input.Phone
	owner.JobTitle = input.JobTitle
	owner.YearsOfExperience = input.YearsOfExperience
	owner.LinkedInProfileURL = input.LinkedInProfileURL
	owner.Bio = input.Bio

	if err := srv.ownerRepo.Update(ctx, owner); err != nil {
		if errors.Is(err, domainerrors.ErrOwnerAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update business owner")
	}

	cacheSet(ctx, srv.cache, srv.logger, service.RegionOwnersByID, id.String(), owner)

	return owner, nil
}

// DeleteOwner removes the profile together with every business it owns, in
// one transaction, then evicts the owners-by-id entry for the profile id.
func (srv *ownerService) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting business owner", "ownerID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		ownerRepo := repoFactory.NewOwnerRepository()

		// 1. Remove owned businesses first so the owner row has no dependents
		if err := businessRepo.DeleteByOwnerID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete owned businesses")
		}

		// 2. Remove the profile itself
		if err := ownerRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOwnerNotFound) {
				return domainerrors.ErrOwnerNotFound.WrapMessage("owner not found: " + id.String())
			}

			return errors.Wrap(err, "failed to delete business owner")
		}

		return nil
	})
	if err != nil {
		return err
	}

	cacheDelete(ctx, srv.cache, srv.logger, service.RegionOwnersByID, id.String())

	return nil
}

// DeleteAllOwners removes every profile (owned businesses cascade in the
// store) and flushes both owner cache regions.
func (srv *ownerService) DeleteAllOwners(ctx context.Context) error {
	srv.logger.Info("Deleting all business owners")

	if err := srv.ownerRepo.DeleteAll(ctx); err != nil {
		return errors.Wrap(err, "failed to delete all business owners")
	}

	cacheFlush(ctx, srv.cache, srv.logger, service.RegionOwnersByID)
	cacheFlush(ctx, srv.cache, srv.logger, service.RegionAllOwners)

	return nil
}
