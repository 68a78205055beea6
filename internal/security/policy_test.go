package security

import "testing"

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		want     bool
	}{
		{"NewPass#1", true},
		{"Aa1!aaaa", true},
		{"abcdefgh", false},      // no upper, digit, or special
		{"ABCDEFG1!", false},     // no lower
		{"abcdefg1!", false},     // no upper
		{"Abcdefgh!", false},     // no digit
		{"Abcdefg1", false},      // no special
		{"Aa1!a", false},         // too short
		{"Aa1! aaaa", false},     // whitespace
		{"Aa1!\taaa", false},     // tab
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStrongPassword(tc.password); got != tc.want {
			t.Fatalf("IsStrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestIsStrongPasswordClosedUnderPermutation(t *testing.T) {
	t.Parallel()

	// Same multiset of characters in different orders.
	for _, password := range []string{"NewPass#1", "1#ssaPweN", "#1NewPass", "wPass1Ne#"} {
		if !IsStrongPassword(password) {
			t.Fatalf("permutation %q rejected", password)
		}
	}
}
