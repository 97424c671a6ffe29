package repository

import (
	"context"
	"errors"

	"bizprofile/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// FindByID retrieves a single business by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByCompanyName retrieves a single business by its unique company name.
	// The match is case-sensitive and exact.
	FindByCompanyName(ctx context.Context, companyName string) (*entity.Business, error)

	// FindByOwnerID retrieves all businesses owned by the given owner.
	// An owner without businesses yields an empty slice, not an error.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// FindAll retrieves every business.
	FindAll(ctx context.Context) ([]*entity.Business, error)

	// ExistsByID reports whether a business with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByCompanyName reports whether any business uses the given company name.
	ExistsByCompanyName(ctx context.Context, companyName string) (bool, error)

	// Create persists a new business. The unique index on company_name is the
	// authoritative duplicate guard.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business in the storage.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes the business with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwnerID removes every business owned by the given owner.
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error

	// DeleteAll removes every business.
	DeleteAll(ctx context.Context) error
}
