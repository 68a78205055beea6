package models

import (
	"time"

	"gorm.io/gorm"
)

// Student represents a student profile stored in the database.
// Students carry no stored password; their login secret is derived from DOB.
type Student struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name      string `gorm:"type:text;not null" json:"name"`               // Full name.
	Email     string `gorm:"type:text;not null;uniqueIndex" json:"email"`  // Unique login email.
	ClassName string `gorm:"type:text;not null" json:"className"`          // Class the student belongs to.
	RollNo    string `gorm:"type:text;not null;uniqueIndex" json:"rollNo"` // Unique roll number.
	Phone     string `gorm:"type:text" json:"phone"`                       // Contact phone.
	DOB       string `gorm:"type:text" json:"dob"`                         // Date of birth, DD/MM/YYYY after normalization.

	Active bool `gorm:"not null;default:true" json:"active"` // Whether the student can sign in.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}

// BeforeSave normalizes the DOB column on create and update.
func (s *Student) BeforeSave(tx *gorm.DB) error {
	s.DOB = NormalizeDOB(s.DOB)
	return nil
}
