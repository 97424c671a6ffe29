// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bizprofile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOwnerInput defines the profile data required to create a business
// owner. The external auth user id travels separately because it identifies
// the upstream account being verified, not profile data.
type CreateOwnerInput struct {
	FirstName          string     `json:"first_name" validate:"required,max=50"`
	LastName           string     `json:"last_name" validate:"required,max=50"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Education          string     `json:"education,omitempty"`
	Skills             string     `json:"skills,omitempty"`
	Email              string     `json:"email" validate:"required,email,max=100"`
	Phone              string     `json:"phone,omitempty" validate:"max=20"`
	JobTitle           string     `json:"job_title,omitempty" validate:"max=100"`
	YearsOfExperience  *int       `json:"years_of_experience,omitempty" validate:"omitempty,min=0"`
	LinkedInProfileURL string     `json:"linkedin_profile_url,omitempty" validate:"max=255"`
	Bio                string     `json:"bio,omitempty"`
}

// UpdateOwnerInput defines the data for an owner update. Updates replace the
// whole profile: every field is written as given, and fields left empty or
// nil clear the stored value. Callers must send the full profile.
type UpdateOwnerInput struct {
	FirstName          string     `json:"first_name" validate:"required,max=50"`
	LastName           string     `json:"last_name" validate:"required,max=50"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Education          string     `json:"education,omitempty"`
	Skills             string     `json:"skills,omitempty"`
	Email              string     `json:"email" validate:"required,email,max=100"`
	Phone              string     `json:"phone,omitempty" validate:"max=20"`
	JobTitle           string     `json:"job_title,omitempty" validate:"max=100"`
	YearsOfExperience  *int       `json:"years_of_experience,omitempty" validate:"omitempty,min=0"`
	LinkedInProfileURL string     `json:"linkedin_profile_url,omitempty" validate:"max=255"`
	Bio                string     `json:"bio,omitempty"`
}

// OwnerUsecase defines the interface for business-owner operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OwnerUsecase interface {
	// CreateOwner verifies the auth account's role upstream, checks
	// uniqueness of the auth user id and email, persists the profile, and
	// populates the owner cache under the auth user id's lookup key.
	CreateOwner(ctx context.Context, authUserID int64, input *CreateOwnerInput) (*entity.BusinessOwner, error)

	// GetOwnerByID reads through the owners-by-id cache.
	GetOwnerByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error)

	// GetOwnerByAuthUserID reads the store directly; this lookup is
	// intentionally uncached so the cache keyspace stays keyed by one
	// identifier scheme only.
	GetOwnerByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error)

	// GetAllOwners reads through the all-owners cache.
	GetAllOwners(ctx context.Context) ([]*entity.BusinessOwner, error)

	// UpdateOwner replaces the profile and overwrites the owners-by-id entry.
	UpdateOwner(ctx context.Context, id uuid.UUID, input *UpdateOwnerInput) (*entity.BusinessOwner, error)

	// DeleteOwner removes the profile and all owned businesses, then evicts
	// the owners-by-id entry for the id.
	DeleteOwner(ctx context.Context, id uuid.UUID) error

	// DeleteAllOwners removes every profile and flushes the owner regions.
	DeleteAllOwners(ctx context.Context) error
}
