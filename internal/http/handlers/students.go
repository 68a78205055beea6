package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/db"
	"github.com/studentresult/srms/internal/models"
	"gorm.io/gorm"
)

// StudentHandler handles student CRUD endpoints.
type StudentHandler struct {
	db *gorm.DB
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

// List returns students, optionally filtered by class name or a search term
// over name and email.
func (h *StudentHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Student{})
	if className := strings.TrimSpace(c.Query("className")); className != "" {
		query = query.Where("class_name = ?", className)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := db.NormalizeLikePattern(h.db, "%"+search+"%")
		query = query.Where(
			h.db.Where(db.CaseInsensitiveLikeExpr(h.db, "name"), pattern).
				Or(db.CaseInsensitiveLikeExpr(h.db, "email"), pattern),
		)
	}

	var students []models.Student
	if errFind := query.Order("id ASC").Find(&students).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query students failed"})
		return
	}
	c.JSON(http.StatusOK, students)
}

// Get returns one student by ID.
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var student models.Student
	if errFind := h.db.WithContext(c.Request.Context()).First(&student, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query student failed"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// studentRequest defines the request body for student create and update.
type studentRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ClassName string `json:"className"`
	RollNo    string `json:"rollNo"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Active    *bool  `json:"active"`
}

// Create adds a student. The DOB is normalized to DD/MM/YYYY on save.
func (h *StudentHandler) Create(c *gin.Context) {
	var body studentRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}
	if strings.TrimSpace(body.ClassName) == "" || strings.TrimSpace(body.RollNo) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "className and rollNo are required"})
		return
	}

	student := models.Student{
		Name:      strings.TrimSpace(body.Name),
		Email:     strings.TrimSpace(body.Email),
		ClassName: strings.TrimSpace(body.ClassName),
		RollNo:    strings.TrimSpace(body.RollNo),
		Phone:     strings.TrimSpace(body.Phone),
		DOB:       body.DOB,
		Active:    true,
	}
	if body.Active != nil {
		student.Active = *body.Active
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&student).Error; errCreate != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "create student failed"})
		return
	}
	c.JSON(http.StatusCreated, student)
}

// Update modifies a student. The DOB is re-normalized on save.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body studentRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var student models.Student
	if errFind := h.db.WithContext(c.Request.Context()).First(&student, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query student failed"})
		return
	}

	if v := strings.TrimSpace(body.Name); v != "" {
		student.Name = v
	}
	if v := strings.TrimSpace(body.Email); v != "" {
		student.Email = v
	}
	if v := strings.TrimSpace(body.ClassName); v != "" {
		student.ClassName = v
	}
	if v := strings.TrimSpace(body.RollNo); v != "" {
		student.RollNo = v
	}
	if v := strings.TrimSpace(body.Phone); v != "" {
		student.Phone = v
	}
	if strings.TrimSpace(body.DOB) != "" {
		student.DOB = body.DOB
	}
	if body.Active != nil {
		student.Active = *body.Active
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&student).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update student failed"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// Delete deactivates a student. Rows are kept for result history.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete student failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(c.Param("id"), 10, 64)
	if errParse != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
