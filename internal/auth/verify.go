package auth

import (
	"context"

	"github.com/studentresult/srms/internal/security"
)

// verifyAndMaybeMigrate checks a submitted password against a stored secret.
// Bcrypt-encoded secrets are verified as-is. Legacy plaintext secrets are
// compared in constant time and, on a match, re-encoded and persisted through
// save; after any successful login the stored form is therefore a bcrypt
// hash. A failed migration write never fails the login: verification already
// succeeded and the next successful login retries the migration.
func verifyAndMaybeMigrate(ctx context.Context, hasher *security.Hasher, hook Hook, operation, stored, submitted string, save func(encoded string) error) bool {
	if stored == "" || submitted == "" {
		return false
	}

	if security.IsHash(stored) {
		return hasher.Verify(submitted, stored)
	}

	if !security.ConstantTimeEquals(stored, submitted) {
		return false
	}
	encoded, errHash := hasher.Hash(submitted)
	if errHash != nil {
		hook.OnEvent(ctx, Event{Operation: operation, Outcome: "migration-failed", Err: errHash})
		return true
	}
	if errSave := save(encoded); errSave != nil {
		hook.OnEvent(ctx, Event{Operation: operation, Outcome: "migration-failed", Err: errSave})
	}
	return true
}
