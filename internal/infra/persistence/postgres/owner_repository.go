// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bizprofile/internal/domain/entity"
	domainerrors "bizprofile/internal/domain/errors"
	"bizprofile/internal/domain/repository"
	"bizprofile/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the repository.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
// It returns the repository as a repository.OwnerRepository interface, adhering to dependency inversion.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindByID retrieves a single owner profile by its internal ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error) {
	var ownerM model.BusinessOwnerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownerM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toOwnerDomain(&ownerM), nil
}

// FindByAuthUserID retrieves a single owner profile by the external auth user id.
func (repo *ownerRepository) FindByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error) {
	var ownerM model.BusinessOwnerModel
	err := repo.db.WithContext(ctx).
		Where("auth_user_id = ?", authUserID).
		First(&ownerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by auth user id")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindByEmail retrieves a single owner profile by email address.
func (repo *ownerRepository) FindByEmail(ctx context.Context, email string) (*entity.BusinessOwner, error) {
	var ownerM model.BusinessOwnerModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&ownerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by email")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindAll retrieves every owner profile.
func (repo *ownerRepository) FindAll(ctx context.Context) ([]*entity.BusinessOwner, error) {
	var ownerModels []model.BusinessOwnerModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&ownerModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find all owners")
	}

	owners := make([]*entity.BusinessOwner, 0, len(ownerModels))
	for i := range ownerModels {
		owners = append(owners, toOwnerDomain(&ownerModels[i]))
	}

	return owners, nil
}

// ExistsByID reports whether an owner profile with the given ID exists.
func (repo *ownerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BusinessOwnerModel{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check owner existence")
	}

	return count > 0, nil
}

// Create persists a new owner profile to the database.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.BusinessOwner) error {
	// Map the pure domain entity to a GORM persistence model.
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("auth user id or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required owner information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	// Update the owner entity with the generated ID and timestamps
	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// Update modifies an existing owner profile in the database. Every column is
// written, so cleared optional fields become NULL in the store.
func (repo *ownerRepository) Update(ctx context.Context, owner *entity.BusinessOwner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Save(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required owner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update owner")
	}

	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// Delete removes the owner profile with the given ID.
func (repo *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessOwnerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// DeleteAll removes every owner profile.
func (repo *ownerRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.BusinessOwnerModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all owners")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toOwnerDomain converts a GORM BusinessOwnerModel to a domain BusinessOwner entity.
func toOwnerDomain(data *model.BusinessOwnerModel) *entity.BusinessOwner {
	if data == nil {
		return nil
	}

	return &entity.BusinessOwner{
		ID:                 data.ID,
		AuthUserID:         data.AuthUserID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		DateOfBirth:        data.DateOfBirth,
		Education:          data.Education,
		Skills:             data.Skills,
		Email:              data.Email,
		Phone:              data.Phone,
		JobTitle:           data.JobTitle,
		YearsOfExperience:  data.YearsOfExperience,
		LinkedInProfileURL: data.LinkedInProfileURL,
		Bio:                data.Bio,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain BusinessOwner entity to a GORM BusinessOwnerModel for persistence.
func fromOwnerDomain(data *entity.BusinessOwner) *model.BusinessOwnerModel {
	if data == nil {
		return nil
	}

	return &model.BusinessOwnerModel{
		ID:                 data.ID,
		AuthUserID:         data.AuthUserID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		DateOfBirth:        data.DateOfBirth,
		Education:          data.Education,
		Skills:             data.Skills,
		Email:              data.Email,
		Phone:              data.Phone,
		JobTitle:           data.JobTitle,
		YearsOfExperience:  data.YearsOfExperience,
		LinkedInProfileURL: data.LinkedInProfileURL,
		Bio:                data.Bio,
		CreatedAt:          data.CreatedAt,
	}
}
