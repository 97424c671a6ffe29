// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bizprofile/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOwnerNotFound is a domain-specific error returned when a business owner profile is not found.
var ErrOwnerNotFound = errors.New("business owner not found")

// OwnerRepository defines the standard operations for business owner persistence.
// The application layer will depend on this interface, not the concrete implementation.
type OwnerRepository interface {
	// FindByID retrieves a single owner profile by its internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error)

	// FindByAuthUserID retrieves a single owner profile by the external auth user id.
	FindByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error)

	// FindByEmail retrieves a single owner profile by email address.
	FindByEmail(ctx context.Context, email string) (*entity.BusinessOwner, error)

	// FindAll retrieves every owner profile.
	FindAll(ctx context.Context) ([]*entity.BusinessOwner, error)

	// ExistsByID reports whether an owner profile with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new owner profile. The store enforces uniqueness of
	// auth_user_id and email authoritatively; service-level lookups are a
	// best-effort pre-check only.
	Create(ctx context.Context, owner *entity.BusinessOwner) error

	// Update modifies an existing owner profile in the storage.
	Update(ctx context.Context, owner *entity.BusinessOwner) error

	// Delete removes the owner profile with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every owner profile.
	DeleteAll(ctx context.Context) error
}
