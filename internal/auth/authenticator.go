package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/studentresult/srms/internal/security"
	"github.com/studentresult/srms/internal/store"
)

// Authenticator verifies logins across the admin, teacher, and student
// populations. It holds no state beyond its collaborator handles and is safe
// for concurrent use.
type Authenticator struct {
	admins   store.AdminStore
	teachers store.TeacherStore
	students store.StudentStore
	hasher   *security.Hasher
	hook     Hook
}

// NewAuthenticator constructs an Authenticator. A nil hook disables event
// logging.
func NewAuthenticator(admins store.AdminStore, teachers store.TeacherStore, students store.StudentStore, hasher *security.Hasher, hook Hook) *Authenticator {
	if hook == nil {
		hook = NoopHook{}
	}
	return &Authenticator{
		admins:   admins,
		teachers: teachers,
		students: students,
		hasher:   hasher,
		hook:     hook,
	}
}

// Authenticate resolves an (email, password) pair against the admin table
// first and the teacher table second. An email present in both populations is
// authoritatively the admin's: an admin password mismatch stops the attempt
// without falling through, so a teacher row cannot shadow an admin account.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) Result {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return a.report(ctx, "login", email, "", badCredentials())
	}

	admin, errAdmin := a.admins.FindByEmail(ctx, email)
	if errAdmin != nil && !errors.Is(errAdmin, store.ErrNotFound) {
		return a.report(ctx, "login", email, "", internalError(errAdmin))
	}
	if errAdmin == nil {
		if !admin.Active {
			return a.report(ctx, "login", email, RoleAdmin, disabled(RoleAdmin))
		}
		if !verifyAndMaybeMigrate(ctx, a.hasher, a.hook, "login", admin.Password, password, func(encoded string) error {
			admin.Password = encoded
			return a.admins.Save(ctx, admin)
		}) {
			return a.report(ctx, "login", email, RoleAdmin, badCredentials())
		}
		return a.report(ctx, "login", email, RoleAdmin,
			okResult(admin.ID, RoleAdmin, admin.DisplayName, redirectAdmin))
	}

	teacher, errTeacher := a.teachers.FindByEmail(ctx, email)
	if errTeacher != nil {
		if errors.Is(errTeacher, store.ErrNotFound) {
			return a.report(ctx, "login", email, "", badCredentials())
		}
		return a.report(ctx, "login", email, "", internalError(errTeacher))
	}
	if !verifyAndMaybeMigrate(ctx, a.hasher, a.hook, "login", teacher.Password, password, func(encoded string) error {
		teacher.Password = encoded
		return a.teachers.Save(ctx, teacher)
	}) {
		return a.report(ctx, "login", email, RoleTeacher, badCredentials())
	}
	if !teacher.Active {
		return a.report(ctx, "login", email, RoleTeacher, disabled(RoleTeacher))
	}
	return a.report(ctx, "login", email, RoleTeacher,
		okResult(teacher.ID, RoleTeacher, teacher.Name, redirectTeacher))
}

// AuthenticateStudent resolves an (email, password) pair against the student
// table. The expected password is derived from the stored date of birth;
// students with a missing or unparseable DOB cannot log in, and the failure
// is indistinguishable from a wrong password. The student record is never
// mutated.
func (a *Authenticator) AuthenticateStudent(ctx context.Context, email, password string) Result {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return a.report(ctx, "student-login", email, "", badCredentials())
	}

	student, errFind := a.students.FindByEmail(ctx, email)
	if errFind != nil {
		if errors.Is(errFind, store.ErrNotFound) {
			return a.report(ctx, "student-login", email, "", badCredentials())
		}
		return a.report(ctx, "student-login", email, "", internalError(errFind))
	}

	expected, ok := DeriveStudentPassword(student.DOB)
	if !ok {
		return a.report(ctx, "student-login", email, RoleStudent, badCredentials())
	}
	if !security.ConstantTimeEquals(password, expected) {
		return a.report(ctx, "student-login", email, RoleStudent, badCredentials())
	}
	if !student.Active {
		return a.report(ctx, "student-login", email, RoleStudent, disabled(RoleStudent))
	}
	return a.report(ctx, "student-login", email, RoleStudent,
		okResult(student.ID, RoleStudent, student.Name, redirectStudent))
}

// report emits the event hook and passes the result through.
func (a *Authenticator) report(ctx context.Context, operation, email string, role Role, result Result) Result {
	event := Event{Operation: operation, Email: email, Role: role, Err: result.Err}
	switch result.Outcome {
	case OutcomeOK:
		event.Outcome = "ok"
	case OutcomeBadCredentials:
		event.Outcome = "bad-credentials"
	case OutcomeDisabled:
		event.Outcome = "disabled"
	case OutcomeError:
		event.Outcome = "error"
	}
	a.hook.OnEvent(ctx, event)
	return result
}
