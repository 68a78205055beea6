package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/studentresult/srms/internal/models"
	"github.com/studentresult/srms/internal/security"
	"github.com/studentresult/srms/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() *security.Hasher {
	return security.NewHasher(bcrypt.MinCost)
}

type authFixture struct {
	admins        *store.MemoryAdminStore
	teachers      *store.MemoryTeacherStore
	students      *store.MemoryStudentStore
	authenticator *Authenticator
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	fx := &authFixture{
		admins:   store.NewMemoryAdminStore(),
		teachers: store.NewMemoryTeacherStore(),
		students: store.NewMemoryStudentStore(),
	}
	fx.authenticator = NewAuthenticator(fx.admins, fx.teachers, fx.students, testHasher(), nil)
	return fx
}

func (fx *authFixture) seedAdmin(t *testing.T, admin models.Admin) {
	t.Helper()
	if errSave := fx.admins.Save(context.Background(), &admin); errSave != nil {
		t.Fatalf("seed admin: %v", errSave)
	}
}

func (fx *authFixture) seedTeacher(t *testing.T, teacher models.Teacher) {
	t.Helper()
	if errSave := fx.teachers.Save(context.Background(), &teacher); errSave != nil {
		t.Fatalf("seed teacher: %v", errSave)
	}
}

func TestAdminLegacyLoginMigratesPassword(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.seedAdmin(t, models.Admin{Email: "admin@x", DisplayName: "Root", Password: "pw123", Active: true})

	result := fx.authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if result.Outcome != OutcomeOK {
		t.Fatalf("outcome = %v, want OK", result.Outcome)
	}
	if result.Identity.Role != RoleAdmin || result.Identity.DisplayName != "Root" || result.Identity.Redirect != "/admin" {
		t.Fatalf("unexpected identity %+v", result.Identity)
	}

	stored, errFind := fx.admins.FindByEmail(context.Background(), "admin@x")
	if errFind != nil {
		t.Fatalf("find admin: %v", errFind)
	}
	if !security.IsHash(stored.Password) {
		t.Fatalf("password not migrated to hash: %q", stored.Password)
	}
	if !testHasher().Verify("pw123", stored.Password) {
		t.Fatalf("migrated hash does not verify against the original password")
	}
}

func TestSecondLoginDoesNotRewriteHash(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.seedAdmin(t, models.Admin{Email: "admin@x", DisplayName: "Root", Password: "pw123", Active: true})

	first := fx.authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if first.Outcome != OutcomeOK {
		t.Fatalf("first login outcome = %v, want OK", first.Outcome)
	}
	migrated, _ := fx.admins.FindByEmail(context.Background(), "admin@x")

	second := fx.authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if second.Outcome != OutcomeOK {
		t.Fatalf("second login outcome = %v, want OK", second.Outcome)
	}
	after, _ := fx.admins.FindByEmail(context.Background(), "admin@x")
	if after.Password != migrated.Password {
		t.Fatalf("second login rewrote the stored hash")
	}
}

func TestAdminMismatchDoesNotFallThroughToTeacher(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.seedAdmin(t, models.Admin{Email: "admin@x", DisplayName: "Root", Password: "pw123", Active: true})
	fx.seedTeacher(t, models.Teacher{Email: "admin@x", Name: "Shadow", Password: "teach!", Active: true})

	result := fx.authenticator.Authenticate(context.Background(), "admin@x", "teach!")
	if result.Outcome != OutcomeBadCredentials {
		t.Fatalf("outcome = %v, want BadCredentials", result.Outcome)
	}
}

func TestDisabledAdminRejectedBeforeVerify(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.seedAdmin(t, models.Admin{Email: "admin@x", DisplayName: "Root", Password: "pw123", Active: false})

	result := fx.authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if result.Outcome != OutcomeDisabled || result.Role != RoleAdmin {
		t.Fatalf("result = %+v, want Disabled{ADMIN}", result)
	}
	// The disabled account must not be migrated.
	stored, _ := fx.admins.FindByEmail(context.Background(), "admin@x")
	if stored.Password != "pw123" {
		t.Fatalf("disabled admin record mutated: %q", stored.Password)
	}
}

func TestTeacherDisabledAfterValidPassword(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	hash, errHash := testHasher().Hash("Secret#9")
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	fx.seedTeacher(t, models.Teacher{Email: "t@x", Name: "T", Password: hash, Active: false})

	result := fx.authenticator.Authenticate(context.Background(), "t@x", "Secret#9")
	if result.Outcome != OutcomeDisabled || result.Role != RoleTeacher {
		t.Fatalf("result = %+v, want Disabled{TEACHER}", result)
	}

	wrong := fx.authenticator.Authenticate(context.Background(), "t@x", "nope")
	if wrong.Outcome != OutcomeBadCredentials {
		t.Fatalf("wrong password on disabled teacher = %v, want BadCredentials", wrong.Outcome)
	}
}

func TestTeacherLegacyLoginMigrates(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.seedTeacher(t, models.Teacher{Email: "sharma@teacher.com", Name: "Sharma", Password: "SHA3210", Active: true})

	result := fx.authenticator.Authenticate(context.Background(), " Sharma@Teacher.COM ", "SHA3210")
	if result.Outcome != OutcomeOK {
		t.Fatalf("outcome = %v, want OK", result.Outcome)
	}
	if result.Identity.Role != RoleTeacher || result.Identity.Redirect != "/teacher/dashboard" {
		t.Fatalf("unexpected identity %+v", result.Identity)
	}

	stored, _ := fx.teachers.FindByEmail(context.Background(), "sharma@teacher.com")
	if !security.IsHash(stored.Password) {
		t.Fatalf("teacher password not migrated: %q", stored.Password)
	}
}

func TestUnknownEmailAndEmptyInputs(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	for _, tc := range []struct{ email, password string }{
		{"ghost@x", "whatever"},
		{"", "pw"},
		{"admin@x", ""},
		{"   ", "   "},
	} {
		result := fx.authenticator.Authenticate(context.Background(), tc.email, tc.password)
		if result.Outcome != OutcomeBadCredentials {
			t.Fatalf("Authenticate(%q, %q) = %v, want BadCredentials", tc.email, tc.password, result.Outcome)
		}
	}
}

func TestStudentLoginByDOB(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.students.Add(&models.Student{Name: "Asha", Email: "s@x", ClassName: "Class 10", RollNo: "10-01", DOB: "2011-04-09", Active: true})

	result := fx.authenticator.AuthenticateStudent(context.Background(), "s@x", "09042011ok")
	if result.Outcome != OutcomeOK {
		t.Fatalf("outcome = %v, want OK", result.Outcome)
	}
	if result.Identity.Role != RoleStudent || result.Identity.Redirect != "/student/dashboard" {
		t.Fatalf("unexpected identity %+v", result.Identity)
	}

	// The suffix is case-sensitive.
	upper := fx.authenticator.AuthenticateStudent(context.Background(), "s@x", "09042011OK")
	if upper.Outcome != OutcomeBadCredentials {
		t.Fatalf("upper-case suffix accepted")
	}
}

func TestStudentLoginNeverMutatesRecord(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.students.Add(&models.Student{Name: "Asha", Email: "s@x", ClassName: "Class 10", RollNo: "10-01", DOB: "09/04/2011", Active: true})
	before, _ := fx.students.FindByEmail(context.Background(), "s@x")

	fx.authenticator.AuthenticateStudent(context.Background(), "s@x", "09042011ok")
	fx.authenticator.AuthenticateStudent(context.Background(), "s@x", "wrong")

	after, _ := fx.students.FindByEmail(context.Background(), "s@x")
	if *before != *after {
		t.Fatalf("student record mutated by authentication: %+v != %+v", before, after)
	}
}

func TestStudentWithoutDerivableSecretGetsBadCredentials(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.students.Add(&models.Student{Name: "No Date", Email: "nodate@x", ClassName: "Class 8", RollNo: "8-02", DOB: "unknown", Active: true})
	fx.students.Add(&models.Student{Name: "No DOB", Email: "nodob@x", ClassName: "Class 8", RollNo: "8-03", Active: true})

	for _, email := range []string{"nodate@x", "nodob@x"} {
		result := fx.authenticator.AuthenticateStudent(context.Background(), email, "anything")
		if result.Outcome != OutcomeBadCredentials {
			t.Fatalf("student %q without derivable secret = %v, want BadCredentials", email, result.Outcome)
		}
	}
}

func TestDisabledStudentAfterValidPassword(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)
	fx.students.Add(&models.Student{Name: "Asha", Email: "s@x", ClassName: "Class 10", RollNo: "10-01", DOB: "09/04/2011", Active: false})

	result := fx.authenticator.AuthenticateStudent(context.Background(), "s@x", "09042011ok")
	if result.Outcome != OutcomeDisabled || result.Role != RoleStudent {
		t.Fatalf("result = %+v, want Disabled{STUDENT}", result)
	}
}

// failingSaveAdminStore forces Save to fail, simulating a migration write
// failure after a successful legacy verification.
type failingSaveAdminStore struct {
	*store.MemoryAdminStore
}

func (s *failingSaveAdminStore) Save(ctx context.Context, admin *models.Admin) error {
	return errors.New("disk full")
}

func TestMigrationWriteFailureDoesNotFailLogin(t *testing.T) {
	t.Parallel()

	inner := store.NewMemoryAdminStore()
	if errSave := inner.Save(context.Background(), &models.Admin{Email: "admin@x", DisplayName: "Root", Password: "pw123", Active: true}); errSave != nil {
		t.Fatalf("seed admin: %v", errSave)
	}
	admins := &failingSaveAdminStore{MemoryAdminStore: inner}
	authenticator := NewAuthenticator(admins, store.NewMemoryTeacherStore(), store.NewMemoryStudentStore(), testHasher(), nil)

	result := authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if result.Outcome != OutcomeOK {
		t.Fatalf("outcome = %v, want OK despite failed migration write", result.Outcome)
	}

	// The stored secret is still legacy plaintext; the next login retries.
	stored, _ := inner.FindByEmail(context.Background(), "admin@x")
	if stored.Password != "pw123" {
		t.Fatalf("stored password = %q, want unchanged plaintext", stored.Password)
	}
	again := authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if again.Outcome != OutcomeOK {
		t.Fatalf("retry outcome = %v, want OK", again.Outcome)
	}
}

// erroringAdminStore fails every lookup.
type erroringAdminStore struct{}

func (erroringAdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return nil, errors.New("connection refused")
}

func (erroringAdminStore) Save(ctx context.Context, admin *models.Admin) error {
	return errors.New("connection refused")
}

func TestStoreFailureSurfacesAsInternalError(t *testing.T) {
	t.Parallel()

	authenticator := NewAuthenticator(erroringAdminStore{}, store.NewMemoryTeacherStore(), store.NewMemoryStudentStore(), testHasher(), nil)
	result := authenticator.Authenticate(context.Background(), "admin@x", "pw123")
	if result.Outcome != OutcomeError {
		t.Fatalf("outcome = %v, want InternalError", result.Outcome)
	}
	if result.Err == nil {
		t.Fatalf("internal error carries no diagnostic")
	}
}
