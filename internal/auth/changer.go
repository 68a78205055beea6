package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/studentresult/srms/internal/security"
	"github.com/studentresult/srms/internal/store"
)

// PasswordPolicy judges whether a proposed new password is acceptable.
type PasswordPolicy func(password string) bool

// PasswordChanger rotates stored passwords for teacher and admin accounts.
// Student passwords are derived from the date of birth and cannot be changed.
type PasswordChanger struct {
	admins   store.AdminStore
	teachers store.TeacherStore
	hasher   *security.Hasher
	policy   PasswordPolicy
	hook     Hook
}

// NewPasswordChanger constructs a PasswordChanger. A nil policy falls back to
// security.IsStrongPassword; a nil hook disables event logging.
func NewPasswordChanger(admins store.AdminStore, teachers store.TeacherStore, hasher *security.Hasher, policy PasswordPolicy, hook Hook) *PasswordChanger {
	if policy == nil {
		policy = security.IsStrongPassword
	}
	if hook == nil {
		hook = NoopHook{}
	}
	return &PasswordChanger{
		admins:   admins,
		teachers: teachers,
		hasher:   hasher,
		policy:   policy,
		hook:     hook,
	}
}

// ChangePassword verifies the current password and stores the new one in
// encoded form. Teachers are checked first, then active admins. The strength
// policy applies to the new password before any store lookup, so a weak
// password reveals nothing about whether the email exists.
func (p *PasswordChanger) ChangePassword(ctx context.Context, email, current, next string) ChangeResult {
	email = strings.TrimSpace(email)
	current = strings.TrimSpace(current)
	if email == "" || current == "" {
		return p.report(ctx, email, "", ChangeBadCredentials)
	}
	if !p.policy(next) {
		return p.report(ctx, email, "", ChangeWeakPassword)
	}

	teacher, errTeacher := p.teachers.FindByEmail(ctx, email)
	if errTeacher != nil && !errors.Is(errTeacher, store.ErrNotFound) {
		return p.report(ctx, email, "", ChangeError)
	}
	if errTeacher == nil {
		if !verifyAndMaybeMigrate(ctx, p.hasher, p.hook, "change-password", teacher.Password, current, func(encoded string) error {
			teacher.Password = encoded
			return p.teachers.Save(ctx, teacher)
		}) {
			return p.report(ctx, email, RoleTeacher, ChangeBadCredentials)
		}
		encoded, errHash := p.hasher.Hash(next)
		if errHash != nil {
			return p.report(ctx, email, RoleTeacher, ChangeError)
		}
		teacher.Password = encoded
		if errSave := p.teachers.Save(ctx, teacher); errSave != nil {
			return p.report(ctx, email, RoleTeacher, ChangeError)
		}
		return p.report(ctx, email, RoleTeacher, ChangeOK)
	}

	admin, errAdmin := p.admins.FindByEmail(ctx, email)
	if errAdmin != nil {
		if errors.Is(errAdmin, store.ErrNotFound) {
			return p.report(ctx, email, "", ChangeBadCredentials)
		}
		return p.report(ctx, email, "", ChangeError)
	}
	if !admin.Active {
		return p.report(ctx, email, RoleAdmin, ChangeBadCredentials)
	}
	if !verifyAndMaybeMigrate(ctx, p.hasher, p.hook, "change-password", admin.Password, current, func(encoded string) error {
		admin.Password = encoded
		return p.admins.Save(ctx, admin)
	}) {
		return p.report(ctx, email, RoleAdmin, ChangeBadCredentials)
	}
	encoded, errHash := p.hasher.Hash(next)
	if errHash != nil {
		return p.report(ctx, email, RoleAdmin, ChangeError)
	}
	admin.Password = encoded
	if errSave := p.admins.Save(ctx, admin); errSave != nil {
		return p.report(ctx, email, RoleAdmin, ChangeError)
	}
	return p.report(ctx, email, RoleAdmin, ChangeOK)
}

// report emits the event hook and passes the result through.
func (p *PasswordChanger) report(ctx context.Context, email string, role Role, result ChangeResult) ChangeResult {
	event := Event{Operation: "change-password", Email: email, Role: role}
	switch result {
	case ChangeOK:
		event.Outcome = "ok"
	case ChangeBadCredentials:
		event.Outcome = "bad-credentials"
	case ChangeWeakPassword:
		event.Outcome = "weak-password"
	case ChangeUnsupported:
		event.Outcome = "unsupported"
	case ChangeError:
		event.Outcome = "error"
	}
	p.hook.OnEvent(ctx, event)
	return result
}
