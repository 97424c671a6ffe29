package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. OwnerID references
// business_owner_profiles.id with ON DELETE CASCADE as a backstop for the
// application-level cascade performed on owner deletion.
type BusinessModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	BusinessType string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:varchar(255)"`
	Website      string    `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(20)"`
	Address      string    `gorm:"type:varchar(255)"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
