package auth

// Role identifies which identity population an account belongs to.
type Role string

// Roles resolvable by the authenticator.
const (
	// RoleAdmin marks administrator accounts.
	RoleAdmin Role = "ADMIN"
	// RoleTeacher marks teacher accounts.
	RoleTeacher Role = "TEACHER"
	// RoleStudent marks student profiles.
	RoleStudent Role = "STUDENT"
)

// Post-login redirect hints per role.
const (
	redirectAdmin   = "/admin"
	redirectTeacher = "/teacher/dashboard"
	redirectStudent = "/student/dashboard"
)

// Outcome classifies an authentication attempt at the core boundary.
type Outcome int

const (
	// OutcomeOK means the submitted credentials matched an active account.
	OutcomeOK Outcome = iota
	// OutcomeBadCredentials covers unknown emails, wrong secrets, and
	// students without a derivable secret. They are indistinguishable on
	// purpose, to avoid email enumeration.
	OutcomeBadCredentials
	// OutcomeDisabled means the credentials matched but the account is inactive.
	OutcomeDisabled
	// OutcomeError means a store failure prevented a decision.
	OutcomeError
)

// Identity is the non-secret descriptor of a successful authentication.
type Identity struct {
	ID          uint64 `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Redirect    string `json:"redirect"`
}

// Result is the typed outcome of an authentication attempt.
type Result struct {
	Outcome  Outcome
	Identity *Identity // Set only when Outcome is OutcomeOK.
	Role     Role      // Set when Outcome is OutcomeDisabled.
	Err      error     // Set when Outcome is OutcomeError; for logs, never for clients.
}

func okResult(id uint64, role Role, displayName, redirect string) Result {
	return Result{
		Outcome: OutcomeOK,
		Identity: &Identity{
			ID:          id,
			Role:        role,
			DisplayName: displayName,
			Redirect:    redirect,
		},
	}
}

func badCredentials() Result {
	return Result{Outcome: OutcomeBadCredentials}
}

func disabled(role Role) Result {
	return Result{Outcome: OutcomeDisabled, Role: role}
}

func internalError(err error) Result {
	return Result{Outcome: OutcomeError, Err: err}
}

// ChangeResult classifies a password-change attempt.
type ChangeResult int

const (
	// ChangeOK means the new password was encoded and persisted.
	ChangeOK ChangeResult = iota
	// ChangeBadCredentials means the email or current password did not match.
	ChangeBadCredentials
	// ChangeWeakPassword means the new password failed the strength policy.
	ChangeWeakPassword
	// ChangeUnsupported means the account kind has no stored secret to
	// change. Student passwords are derived from the date of birth.
	ChangeUnsupported
	// ChangeError means a store failure prevented a decision.
	ChangeError
)
