package models

import "time"

// Teacher represents a teacher account stored in the database.
type Teacher struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name     string `gorm:"type:text;not null" json:"name"`              // Full name.
	Email    string `gorm:"type:text;not null;uniqueIndex" json:"email"` // Unique login email.
	Phone    string `gorm:"type:text" json:"phone"`                      // Contact phone.
	Subject  string `gorm:"type:text" json:"subject"`                    // Primary subject taught.
	Password string `gorm:"type:text;not null" json:"-"`                 // Bcrypt hash or legacy plaintext.

	Active bool `gorm:"not null;default:true" json:"active"` // Whether the teacher can sign in.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
