package models

import (
	"regexp"
	"strings"
	"time"
)

// dobOutputLayout is the canonical DOB form stored on students.
const dobOutputLayout = "02/01/2006"

var (
	dobISOPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dobSlashPattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	dobDashPattern  = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`)
)

// NormalizeDOB canonicalizes a date-of-birth string into DD/MM/YYYY.
// Recognized inputs: ISO date-times (truncated at 'T'), YYYY-MM-DD,
// D/M/YYYY, and D-M-YYYY. Anything else is returned as-is; the function
// never fails and is idempotent on its own output.
func NormalizeDOB(dob string) string {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return dob
	}

	// Drop time and timezone from ISO date-times.
	if idx := strings.Index(dob, "T"); idx >= 0 {
		dob = dob[:idx]
	}

	switch {
	case dobISOPattern.MatchString(dob):
		if date, err := time.Parse("2006-01-02", dob); err == nil {
			return date.Format(dobOutputLayout)
		}
	case dobSlashPattern.MatchString(dob):
		if date, err := time.Parse("2/1/2006", dob); err == nil {
			return date.Format(dobOutputLayout)
		}
	case dobDashPattern.MatchString(dob):
		if date, err := time.Parse("2-1-2006", dob); err == nil {
			return date.Format(dobOutputLayout)
		}
	}

	return dob
}
