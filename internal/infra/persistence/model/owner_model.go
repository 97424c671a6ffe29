// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessOwnerModel mirrors the 'business_owner_profiles' table.
// PostgreSQL generates UUIDs via uuid_generate_v7(). The unique indexes on
// auth_user_id and email are the authoritative duplicate guard; application
// lookups before insert are best-effort only.
type BusinessOwnerModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthUserID         int64      `gorm:"uniqueIndex;not null"`
	FirstName          string     `gorm:"type:varchar(50);not null"`
	LastName           string     `gorm:"type:varchar(50);not null"`
	DateOfBirth        *time.Time `gorm:"type:date"`
	Education          string     `gorm:"type:text"`
	Skills             string     `gorm:"type:text"`
	Email              string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone              string     `gorm:"type:varchar(20)"`
	JobTitle           string     `gorm:"type:varchar(100)"`
	YearsOfExperience  *int
	LinkedInProfileURL string `gorm:"type:varchar(255)"`
	Bio                string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Businesses []BusinessModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessOwnerModel) TableName() string {
	return "business_owner_profiles"
}
