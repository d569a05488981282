package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username  string                     `gorm:"type:varchar(30);not null"`
	Email     string                     `gorm:"type:varchar(254);not null"`
	Password  string                     `gorm:"type:varchar(60);not null"`
	Features  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
