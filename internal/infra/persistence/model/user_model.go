// Package model holds the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are BIGSERIAL.
// A user is owned by exactly one OAuth identity, enforced by the
// unique index on (provider, provider_id).
type UserModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(255);unique;not null"`
	Picture    string `gorm:"type:text"`
	Provider   string `gorm:"type:varchar(32);not null;uniqueIndex:idx_users_provider_identity"`
	ProviderID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_provider_identity"`
	Role       string `gorm:"type:varchar(32);not null;default:USER"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
