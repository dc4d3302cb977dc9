// Package model contains the GORM-specific persistence structs. They mirror
// the database schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	FullName     string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	ProfilePic   string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
