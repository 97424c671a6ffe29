package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a company record. Every business references exactly one owner
// for its whole life; ownership is never transferred, only the record's own
// fields are mutated. Deleting the owner removes the business as well.
type Business struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"company_name"`  // Globally unique. Required.
	BusinessType string    `json:"business_type"` // Required.
	Description  string    `json:"description,omitempty"`
	Website      string    `json:"website,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	OwnerID      uuid.UUID `json:"owner_id"` // FK to the owning BusinessOwner. Never nil.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
