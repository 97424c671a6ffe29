package usecase

import (
	"context"

	"bizprofile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to create a business.
type CreateBusinessInput struct {
	OwnerID      uuid.UUID `json:"owner_id" validate:"required"`
	CompanyName  string    `json:"company_name" validate:"required,max=100"`
	BusinessType string    `json:"business_type" validate:"required,max=100"`
	Description  string    `json:"description,omitempty" validate:"max=255"`
	Website      string    `json:"website,omitempty" validate:"max=255"`
	Email        string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string    `json:"phone,omitempty" validate:"max=20"`
	Address      string    `json:"address,omitempty" validate:"max=255"`
}

// UpdateBusinessInput defines the data for a business update. Unlike owner
// updates, this is a partial merge: only non-nil fields overwrite the stored
// values.
type UpdateBusinessInput struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,max=100"`
	BusinessType *string `json:"business_type,omitempty" validate:"omitempty,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Website      *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// BusinessUsecase defines the interface for business operations.
type BusinessUsecase interface {
	// CreateBusiness checks company-name uniqueness and owner existence,
	// persists the business, and flushes all four business cache regions.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error)

	// GetBusinessByID reads the store directly (uncached by design).
	GetBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// GetBusinessByCompanyName reads the store directly (uncached by design).
	GetBusinessByCompanyName(ctx context.Context, companyName string) (*entity.Business, error)

	// GetAllBusinesses reads through the all-businesses cache.
	GetAllBusinesses(ctx context.Context) ([]*entity.Business, error)

	// GetBusinessesByOwnerID reads through the businesses-by-owner cache.
	// An owner with no businesses yields an empty, cacheable list.
	GetBusinessesByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// UpdateBusiness merges non-nil fields, writes the result through the
	// businesses-by-id and businesses-by-company-name caches, and flushes
	// the all-businesses aggregate.
	UpdateBusiness(ctx context.Context, id uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// DeleteBusiness removes the business, evicts its businesses-by-id
	// entry, and flushes the all-businesses aggregate.
	DeleteBusiness(ctx context.Context, id uuid.UUID) error

	// DeleteAllBusinesses removes every business and flushes all four
	// business cache regions.
	DeleteAllBusinesses(ctx context.Context) error

	// BusinessExists reports whether a business with the given id exists.
	// Direct store check, uncached.
	BusinessExists(ctx context.Context, id uuid.UUID) (bool, error)
}
