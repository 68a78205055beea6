package auth

import (
	"regexp"

	"github.com/studentresult/srms/internal/models"
)

// studentPasswordSuffix is appended to the DOB digits to form the expected
// student password: DOB 09/04/2011 gives "09042011ok". Case-sensitive.
const studentPasswordSuffix = "ok"

var canonicalDOBPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// DeriveStudentPassword computes the expected login password from a student's
// stored date of birth. The second return value is false when the DOB is
// absent or not in (or normalizable to) canonical DD/MM/YYYY form, in which
// case the student cannot authenticate.
func DeriveStudentPassword(dob string) (string, bool) {
	canonical := models.NormalizeDOB(dob)
	groups := canonicalDOBPattern.FindStringSubmatch(canonical)
	if groups == nil {
		return "", false
	}
	return groups[1] + groups[2] + groups[3] + studentPasswordSuffix, true
}
