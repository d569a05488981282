package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Token is 96 hex characters.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Token     string    `gorm:"type:char(96);unique;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ActivationTokenModel mirrors the 'user_activation_tokens' table.
type ActivationTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivationTokenModel) TableName() string {
	return "user_activation_tokens"
}
