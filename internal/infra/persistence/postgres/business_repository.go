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

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a single business by its ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByCompanyName retrieves a single business by its unique company name.
func (repo *businessRepository) FindByCompanyName(ctx context.Context, companyName string) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("company_name = ?", companyName).
		First(&businessM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by company name")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwnerID retrieves all businesses owned by the given owner.
func (repo *businessRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var businessModels []model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&businessModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner id")
	}

	return toBusinessDomainSlice(businessModels), nil
}

// FindAll retrieves every business.
func (repo *businessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	var businessModels []model.BusinessModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&businessModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find all businesses")
	}

	return toBusinessDomainSlice(businessModels), nil
}

// ExistsByID reports whether a business with the given ID exists.
func (repo *businessRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check business existence")
	}

	return count > 0, nil
}

// ExistsByCompanyName reports whether any business uses the given company name.
func (repo *businessRepository) ExistsByCompanyName(ctx context.Context, companyName string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("company_name = ?", companyName).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check company name existence")
	}

	return count > 0, nil
}

// Create persists a new business to the database.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBusinessAlreadyExists.WrapMessage("company name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update modifies an existing business in the database.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Save(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBusinessAlreadyExists.WrapMessage("company name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Delete removes the business with the given ID.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// DeleteByOwnerID removes every business owned by the given owner.
func (repo *businessRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.BusinessModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete businesses by owner id")
	}

	return nil
}

// DeleteAll removes every business.
func (repo *businessRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.BusinessModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all businesses")
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:           data.ID,
		CompanyName:  data.CompanyName,
		BusinessType: data.BusinessType,
		Description:  data.Description,
		Website:      data.Website,
		Email:        data.Email,
		Phone:        data.Phone,
		Address:      data.Address,
		OwnerID:      data.OwnerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toBusinessDomainSlice(models []model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(models))
	for i := range models {
		businesses = append(businesses, toBusinessDomain(&models[i]))
	}

	return businesses
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel for persistence.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:           data.ID,
		CompanyName:  data.CompanyName,
		BusinessType: data.BusinessType,
		Description:  data.Description,
		Website:      data.Website,
		Email:        data.Email,
		Phone:        data.Phone,
		Address:      data.Address,
		OwnerID:      data.OwnerID,
		CreatedAt:    data.CreatedAt,
	}
}
