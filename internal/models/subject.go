package models

import "time"

// Subject represents a taught subject.
type Subject struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name        string `gorm:"type:text;not null;uniqueIndex" json:"name"` // Subject name.
	Code        string `gorm:"type:text;uniqueIndex" json:"code"`          // Short subject code.
	Description string `gorm:"type:text" json:"description"`               // Free-form description.

	Active bool `gorm:"not null;default:true" json:"active"` // Soft-delete flag.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
