package store

import (
	"context"
	"sync"

	"github.com/studentresult/srms/internal/models"
)

// MemoryAdminStore is an in-memory AdminStore used in tests and as the
// reference implementation for the conformance suite.
type MemoryAdminStore struct {
	mu     sync.RWMutex
	nextID uint64
	admins map[uint64]models.Admin
}

// NewMemoryAdminStore constructs an empty MemoryAdminStore.
func NewMemoryAdminStore() *MemoryAdminStore {
	return &MemoryAdminStore{nextID: 1, admins: map[uint64]models.Admin{}}
}

// FindByEmail returns a copy of the matching admin or ErrNotFound.
func (s *MemoryAdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	needle := NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if NormalizeEmail(admin.Email) == needle {
			found := admin
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Save stores a copy of the record, assigning an ID when missing.
func (s *MemoryAdminStore) Save(ctx context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if admin.ID == 0 {
		admin.ID = s.nextID
		s.nextID++
	} else if admin.ID >= s.nextID {
		s.nextID = admin.ID + 1
	}
	s.admins[admin.ID] = *admin
	return nil
}

// MemoryTeacherStore is an in-memory TeacherStore.
type MemoryTeacherStore struct {
	mu       sync.RWMutex
	nextID   uint64
	teachers map[uint64]models.Teacher
}

// NewMemoryTeacherStore constructs an empty MemoryTeacherStore.
func NewMemoryTeacherStore() *MemoryTeacherStore {
	return &MemoryTeacherStore{nextID: 1, teachers: map[uint64]models.Teacher{}}
}

// FindByEmail returns a copy of the matching teacher or ErrNotFound.
func (s *MemoryTeacherStore) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	needle := NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, teacher := range s.teachers {
		if NormalizeEmail(teacher.Email) == needle {
			found := teacher
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Save stores a copy of the record, assigning an ID when missing.
func (s *MemoryTeacherStore) Save(ctx context.Context, teacher *models.Teacher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if teacher.ID == 0 {
		teacher.ID = s.nextID
		s.nextID++
	} else if teacher.ID >= s.nextID {
		s.nextID = teacher.ID + 1
	}
	s.teachers[teacher.ID] = *teacher
	return nil
}

// MemoryStudentStore is an in-memory StudentStore.
type MemoryStudentStore struct {
	mu       sync.RWMutex
	nextID   uint64
	students map[uint64]models.Student
}

// NewMemoryStudentStore constructs an empty MemoryStudentStore.
func NewMemoryStudentStore() *MemoryStudentStore {
	return &MemoryStudentStore{nextID: 1, students: map[uint64]models.Student{}}
}

// FindByEmail returns a copy of the matching student or ErrNotFound.
func (s *MemoryStudentStore) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	needle := NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, student := range s.students {
		if NormalizeEmail(student.Email) == needle {
			found := student
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Add stores a copy of the profile with DOB normalized, assigning an ID when
// missing. The normalization mirrors the gorm BeforeSave hook.
func (s *MemoryStudentStore) Add(student *models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if student.ID == 0 {
		student.ID = s.nextID
		s.nextID++
	} else if student.ID >= s.nextID {
		s.nextID = student.ID + 1
	}
	student.DOB = models.NormalizeDOB(student.DOB)
	s.students[student.ID] = *student
}
