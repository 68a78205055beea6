package models

import "time"

// Mark represents a score awarded to a student in one subject and exam.
type Mark struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	StudentID uint64   `gorm:"not null;index" json:"studentId"`      // Owning student.
	Student   *Student `gorm:"foreignKey:StudentID" json:"-"`        // Owning student record.
	SubjectID uint64   `gorm:"not null;index" json:"subjectId"`      // Graded subject.
	Subject   *Subject `gorm:"foreignKey:SubjectID" json:"-"`        // Graded subject record.
	ExamName  string   `gorm:"type:text;not null" json:"examName"`   // Exam label, e.g. "Midterm".

	Score    float64 `gorm:"not null" json:"score"`                // Awarded score.
	MaxScore float64 `gorm:"not null;default:100" json:"maxScore"` // Maximum attainable score.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
