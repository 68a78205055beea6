package security

import "unicode"

// IsStrongPassword reports whether a proposed password satisfies the change
// policy: at least 8 runes with an uppercase letter, a lowercase letter, a
// digit, and a non-alphanumeric character, and no whitespace anywhere.
// The policy applies to password changes only, never to login submissions.
func IsStrongPassword(password string) bool {
	runes := []rune(password)
	if len(runes) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
