package util

import "strings"

// MaskEmail obscures an email address for logging, keeping only the first and
// last characters of the local part and the full domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return maskToken(email)
	}
	return maskToken(email[:at]) + email[at:]
}

// maskToken obscures a string, showing only its edges when long enough.
func maskToken(token string) string {
	if len(token) > 4 {
		return token[:2] + "..." + token[len(token)-1:]
	}
	if len(token) > 1 {
		return token[:1] + "..."
	}
	return "..."
}
