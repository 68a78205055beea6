package store

import (
	"context"
	"errors"

	"github.com/studentresult/srms/internal/models"
	"gorm.io/gorm"
)

// GormAdminStore implements AdminStore over a gorm connection.
type GormAdminStore struct {
	db *gorm.DB
}

// NewGormAdminStore constructs a GormAdminStore.
func NewGormAdminStore(db *gorm.DB) *GormAdminStore {
	return &GormAdminStore{db: db}
}

// FindByEmail returns the admin with the given email, matched case-insensitively.
func (s *GormAdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if errFind := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", NormalizeEmail(email)).
		First(&admin).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errFind
	}
	return &admin, nil
}

// Save persists the admin record.
func (s *GormAdminStore) Save(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Save(admin).Error
}

// GormTeacherStore implements TeacherStore over a gorm connection.
type GormTeacherStore struct {
	db *gorm.DB
}

// NewGormTeacherStore constructs a GormTeacherStore.
func NewGormTeacherStore(db *gorm.DB) *GormTeacherStore {
	return &GormTeacherStore{db: db}
}

// FindByEmail returns the teacher with the given email, matched case-insensitively.
func (s *GormTeacherStore) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var teacher models.Teacher
	if errFind := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", NormalizeEmail(email)).
		First(&teacher).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errFind
	}
	return &teacher, nil
}

// Save persists the teacher record.
func (s *GormTeacherStore) Save(ctx context.Context, teacher *models.Teacher) error {
	return s.db.WithContext(ctx).Save(teacher).Error
}

// GormStudentStore implements StudentStore over a gorm connection.
type GormStudentStore struct {
	db *gorm.DB
}

// NewGormStudentStore constructs a GormStudentStore.
func NewGormStudentStore(db *gorm.DB) *GormStudentStore {
	return &GormStudentStore{db: db}
}

// FindByEmail returns the student with the given email, matched case-insensitively.
func (s *GormStudentStore) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if errFind := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", NormalizeEmail(email)).
		First(&student).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errFind
	}
	return &student, nil
}
