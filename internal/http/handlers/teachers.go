package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/models"
	"github.com/studentresult/srms/internal/security"
	"gorm.io/gorm"
)

// TeacherHandler handles teacher CRUD endpoints.
type TeacherHandler struct {
	db     *gorm.DB
	hasher *security.Hasher
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(db *gorm.DB, hasher *security.Hasher) *TeacherHandler {
	return &TeacherHandler{db: db, hasher: hasher}
}

// List returns all teachers.
func (h *TeacherHandler) List(c *gin.Context) {
	var teachers []models.Teacher
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&teachers).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query teachers failed"})
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// Get returns one teacher by ID.
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var teacher models.Teacher
	if errFind := h.db.WithContext(c.Request.Context()).First(&teacher, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query teacher failed"})
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// teacherRequest defines the request body for teacher create and update.
type teacherRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

// Create adds a teacher. The password is stored bcrypt-encoded; when omitted
// it defaults to the first three letters of the name upper-cased plus the
// last four digits of the phone number.
func (h *TeacherHandler) Create(c *gin.Context) {
	var body teacherRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	password := strings.TrimSpace(body.Password)
	if password == "" {
		password = defaultTeacherPassword(name, body.Phone)
	}
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required when name or phone cannot derive one"})
		return
	}
	hash, errHash := h.hasher.Hash(password)
	if errHash != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash password failed"})
		return
	}

	teacher := models.Teacher{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(body.Phone),
		Subject:  strings.TrimSpace(body.Subject),
		Password: hash,
		Active:   true,
	}
	if body.Active != nil {
		teacher.Active = *body.Active
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&teacher).Error; errCreate != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "create teacher failed"})
		return
	}
	c.JSON(http.StatusCreated, teacher)
}

// Update modifies a teacher. Passwords are not updated here; use the
// change-password endpoint.
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body teacherRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var teacher models.Teacher
	if errFind := h.db.WithContext(c.Request.Context()).First(&teacher, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query teacher failed"})
		return
	}

	if v := strings.TrimSpace(body.Name); v != "" {
		teacher.Name = v
	}
	if v := strings.TrimSpace(body.Email); v != "" {
		teacher.Email = v
	}
	if v := strings.TrimSpace(body.Phone); v != "" {
		teacher.Phone = v
	}
	if v := strings.TrimSpace(body.Subject); v != "" {
		teacher.Subject = v
	}
	if body.Active != nil {
		teacher.Active = *body.Active
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&teacher).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update teacher failed"})
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// Delete deactivates a teacher.
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Teacher{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete teacher failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// defaultTeacherPassword derives the initial teacher password from the name
// and phone: first three letters of the name upper-cased plus the last four
// phone digits, e.g. "Sharma" / "...3210" gives "SHA3210".
func defaultTeacherPassword(name, phone string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}

	var digits []rune
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}

	if len(letters) < 3 || len(digits) < 4 {
		return ""
	}
	return string(letters) + string(digits)
}
