package store

import (
	"context"
	"errors"
	"strings"

	"github.com/studentresult/srms/internal/models"
)

// ErrNotFound is returned when no account matches the requested email.
var ErrNotFound = errors.New("store: not found")

// AdminStore looks up and persists admin accounts.
type AdminStore interface {
	// FindByEmail returns the admin whose email matches after trimming and
	// case folding, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	// Save persists the record, including a mutated password.
	Save(ctx context.Context, admin *models.Admin) error
}

// TeacherStore looks up and persists teacher accounts.
type TeacherStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Teacher, error)
	Save(ctx context.Context, teacher *models.Teacher) error
}

// StudentStore looks up student profiles. Students are never written by the
// auth core; their login secret is derived, not stored.
type StudentStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email for
// matching. Stored emails keep their original case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
