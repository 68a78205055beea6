package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recheck request statuses.
const (
	// RecheckStatusPending marks a freshly filed recheck request.
	RecheckStatusPending = "PENDING"
	// RecheckStatusApproved marks an accepted recheck request.
	RecheckStatusApproved = "APPROVED"
	// RecheckStatusRejected marks a declined recheck request.
	RecheckStatusRejected = "REJECTED"
)

// RecheckRequest represents a student's request to re-evaluate a mark.
type RecheckRequest struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	StudentID uint64   `gorm:"not null;index" json:"studentId"` // Requesting student.
	Student   *Student `gorm:"foreignKey:StudentID" json:"-"`   // Requesting student record.
	MarkID    uint64   `gorm:"not null;index" json:"markId"`    // Contested mark.
	Mark      *Mark    `gorm:"foreignKey:MarkID" json:"-"`      // Contested mark record.

	Reason string `gorm:"type:text;not null" json:"reason"`                     // Student-supplied justification.
	Status string `gorm:"type:text;not null;default:'PENDING'" json:"status"`   // PENDING, APPROVED or REJECTED.

	Details datatypes.JSON `gorm:"not null;default:'{}'" json:"details"` // Reviewer notes and score adjustments in JSON.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
