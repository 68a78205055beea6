package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/auth"
)

// weakPasswordMessage summarizes the password-change strength rules.
const weakPasswordMessage = "new password is too weak: use 8+ characters with upper, lower, number, and special character (no spaces)"

// AuthHandler handles login and password-change endpoints.
type AuthHandler struct {
	authenticator *auth.Authenticator
	changer       *auth.PasswordChanger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authenticator *auth.Authenticator, changer *auth.PasswordChanger) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, changer: changer}
}

// loginRequest defines the request body for login endpoints.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin or teacher and returns the identity descriptor.
func (h *AuthHandler) Login(c *gin.Context) {
	body, ok := h.bindLogin(c)
	if !ok {
		return
	}
	result := h.authenticator.Authenticate(c.Request.Context(), body.Email, body.Password)
	h.respond(c, result)
}

// TeacherLogin authenticates against the same core as Login but only accepts
// a resolved teacher identity. An admin resolving here gets the same body a
// wrong password gets.
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	body, ok := h.bindLogin(c)
	if !ok {
		return
	}
	result := h.authenticator.Authenticate(c.Request.Context(), body.Email, body.Password)
	if result.Outcome == auth.OutcomeOK && result.Identity.Role != auth.RoleTeacher {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	h.respond(c, result)
}

// StudentLogin authenticates a student using the DOB-derived password.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	body, ok := h.bindLogin(c)
	if !ok {
		return
	}
	result := h.authenticator.AuthenticateStudent(c.Request.Context(), body.Email, body.Password)
	h.respond(c, result)
}

// changePasswordRequest defines the request body for password changes.
type changePasswordRequest struct {
	Email           string `json:"email"`
	Role            string `json:"role"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword rotates a teacher or admin password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body changePasswordRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if body.CurrentPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current password is required"})
		return
	}
	if body.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new password is required"})
		return
	}
	if strings.EqualFold(strings.TrimSpace(body.Role), string(auth.RoleStudent)) {
		h.respondChange(c, auth.ChangeUnsupported)
		return
	}

	result := h.changer.ChangePassword(c.Request.Context(), body.Email, body.CurrentPassword, body.NewPassword)
	h.respondChange(c, result)
}

// bindLogin parses and validates the shared login request body.
func (h *AuthHandler) bindLogin(c *gin.Context) (loginRequest, bool) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return loginRequest{}, false
	}
	if strings.TrimSpace(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return loginRequest{}, false
	}
	if strings.TrimSpace(body.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return loginRequest{}, false
	}
	return body, true
}

// respond maps an auth result onto HTTP status codes.
func (h *AuthHandler) respond(c *gin.Context, result auth.Result) {
	switch result.Outcome {
	case auth.OutcomeOK:
		c.JSON(http.StatusOK, result.Identity)
	case auth.OutcomeBadCredentials:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case auth.OutcomeDisabled:
		c.JSON(http.StatusUnauthorized, gin.H{"error": disabledMessage(result.Role)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondChange maps a password-change result onto HTTP status codes.
func (h *AuthHandler) respondChange(c *gin.Context, result auth.ChangeResult) {
	switch result {
	case auth.ChangeOK:
		c.Status(http.StatusOK)
	case auth.ChangeBadCredentials:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or current password"})
	case auth.ChangeWeakPassword:
		c.JSON(http.StatusBadRequest, gin.H{"error": weakPasswordMessage})
	case auth.ChangeUnsupported:
		c.JSON(http.StatusBadRequest, gin.H{"error": "password change is not supported for student accounts"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// disabledMessage returns the role-specific account-disabled message.
func disabledMessage(role auth.Role) string {
	switch role {
	case auth.RoleAdmin:
		return "admin account is disabled"
	case auth.RoleStudent:
		return "student account is disabled"
	default:
		return "teacher account is disabled"
	}
}
