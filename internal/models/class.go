package models

import (
	"time"

	"gorm.io/datatypes"
)

// SchoolClass represents a class and its ordered subject list.
type SchoolClass struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	ClassNumber int    `gorm:"not null;uniqueIndex" json:"classNumber"`         // Numeric class, e.g. 10.
	ClassName   string `gorm:"type:text;not null;uniqueIndex" json:"className"` // Display name, e.g. "Class 10".
	Section     string `gorm:"type:text" json:"section"`                        // Optional section label.

	Subjects datatypes.JSON `gorm:"not null;default:'[]'" json:"subjects"` // Ordered subject names in JSON.

	Active bool `gorm:"not null;default:true" json:"active"` // Whether the class is in use.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
