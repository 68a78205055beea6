package models

import "time"

// Admin represents an administrator account stored in the database.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Email       string `gorm:"type:text;not null;uniqueIndex" json:"email"` // Unique login email.
	DisplayName string `gorm:"type:text;not null" json:"displayName"`       // Name shown after login.
	Password    string `gorm:"type:text;not null" json:"-"`                 // Bcrypt hash or legacy plaintext.

	Active bool `gorm:"not null;default:true" json:"active"` // Whether the admin can sign in.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
