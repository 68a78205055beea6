package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)
	hash, errHash := hasher.Hash("pw123")
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("hash %q does not carry the bcrypt prefix", hash)
	}
	if !hasher.Verify("pw123", hash) {
		t.Fatalf("correct password did not verify")
	}
	if hasher.Verify("pw124", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)
	first, errFirst := hasher.Hash("same-input")
	if errFirst != nil {
		t.Fatalf("hash: %v", errFirst)
	}
	second, errSecond := hasher.Hash("same-input")
	if errSecond != nil {
		t.Fatalf("hash: %v", errSecond)
	}
	if first == second {
		t.Fatalf("two hashes of the same input are identical")
	}
	if !hasher.Verify("same-input", first) || !hasher.Verify("same-input", second) {
		t.Fatalf("salted hashes did not both verify")
	}
}

func TestVerifyMalformedHashIsFalse(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)
	for _, malformed := range []string{"", "pw123", "$2", "$2a$xx$garbage", "not-a-hash"} {
		if hasher.Verify("pw123", malformed) {
			t.Fatalf("Verify accepted malformed hash %q", malformed)
		}
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{-1, 0, 3, 32, 100} {
		hasher := NewHasher(cost)
		if hasher.cost != DefaultBcryptCost {
			t.Fatalf("NewHasher(%d).cost = %d, want %d", cost, hasher.cost, DefaultBcryptCost)
		}
	}
	if hasher := NewHasher(bcrypt.MinCost); hasher.cost != bcrypt.MinCost {
		t.Fatalf("valid cost was clamped")
	}
}

func TestIsHash(t *testing.T) {
	t.Parallel()

	cases := []struct {
		secret string
		want   bool
	}{
		{"$2a$12$abcdefghijklmnopqrstuv", true},
		{"$2b$10$x", true},
		{"$2", true},
		{"$1$legacy", false},
		{"pw123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsHash(tc.secret); got != tc.want {
			t.Fatalf("IsHash(%q) = %v, want %v", tc.secret, got, tc.want)
		}
	}
}

func TestConstantTimeEquals(t *testing.T) {
	t.Parallel()

	if !ConstantTimeEquals("secret", "secret") {
		t.Fatalf("equal strings compared unequal")
	}
	if ConstantTimeEquals("secret", "Secret") {
		t.Fatalf("case-different strings compared equal")
	}
	if ConstantTimeEquals("secret", "secret ") {
		t.Fatalf("length-different strings compared equal")
	}
	if !ConstantTimeEquals("", "") {
		t.Fatalf("empty strings compared unequal")
	}
}
