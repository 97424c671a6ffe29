// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessOwner represents the profile of a person allowed to run businesses.
// The profile is created only after the external auth service confirms the
// account exists and carries the business-owner role; AuthUserID is the link
// back to that external account and is unique across all profiles.
type BusinessOwner struct {
	ID                 uuid.UUID  `json:"id"`                      // Internal profile identifier.
	AuthUserID         int64      `json:"auth_user_id"`            // External auth-service user id. Unique.
	FirstName          string     `json:"first_name"`              // Required.
	LastName           string     `json:"last_name"`               // Required.
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"` // Optional.
	Education          string     `json:"education,omitempty"`
	Skills             string     `json:"skills,omitempty"`
	Email              string     `json:"email"` // Unique across all owner profiles. Required.
	Phone              string     `json:"phone,omitempty"`
	JobTitle           string     `json:"job_title,omitempty"`
	YearsOfExperience  *int       `json:"years_of_experience,omitempty"`
	LinkedInProfileURL string     `json:"linkedin_profile_url,omitempty"`
	Bio                string     `json:"bio,omitempty"`
	CreatedAt          time.Time  `json:"created_at"` // Set on insert, never updated afterwards.
	UpdatedAt          time.Time  `json:"updated_at"`
}
