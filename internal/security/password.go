package security

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost defines the default bcrypt work factor.
const DefaultBcryptCost = 12

// hashPrefix is the leading tag shared by all bcrypt variants ($2a, $2b, $2y).
// Stored secrets without this prefix are legacy plaintext.
const hashPrefix = "$2"

// Hasher hashes and verifies passwords using bcrypt.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the given bcrypt cost.
// Costs outside the bcrypt range fall back to DefaultBcryptCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash hashes a plaintext password using bcrypt.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares a plaintext password with a bcrypt hash.
// Malformed hashes verify as false.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHash reports whether a stored secret is in bcrypt-encoded form.
func IsHash(secret string) bool {
	return len(secret) >= len(hashPrefix) && secret[:len(hashPrefix)] == hashPrefix
}

// ConstantTimeEquals compares two strings in constant time relative to their
// lengths. Used for legacy plaintext secrets and derived student secrets.
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
