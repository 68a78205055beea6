package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassHandler handles school class CRUD endpoints.
type ClassHandler struct {
	db *gorm.DB
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

// List returns all classes ordered by class number.
func (h *ClassHandler) List(c *gin.Context) {
	var classes []models.SchoolClass
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("class_number ASC").
		Find(&classes).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query classes failed"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Get returns one class by ID.
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var class models.SchoolClass
	if errFind := h.db.WithContext(c.Request.Context()).First(&class, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query class failed"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// classRequest defines the request body for class create and update.
type classRequest struct {
	ClassNumber int      `json:"classNumber"`
	ClassName   string   `json:"className"`
	Section     string   `json:"section"`
	Subjects    []string `json:"subjects"`
	Active      *bool    `json:"active"`
}

// Create adds a class with its ordered subject list.
func (h *ClassHandler) Create(c *gin.Context) {
	var body classRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	className := strings.TrimSpace(body.ClassName)
	if body.ClassNumber <= 0 || className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classNumber and className are required"})
		return
	}
	subjects, errSubjects := marshalSubjectList(body.Subjects)
	if errSubjects != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject list"})
		return
	}

	class := models.SchoolClass{
		ClassNumber: body.ClassNumber,
		ClassName:   className,
		Section:     strings.TrimSpace(body.Section),
		Subjects:    subjects,
		Active:      true,
	}
	if body.Active != nil {
		class.Active = *body.Active
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&class).Error; errCreate != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "create class failed"})
		return
	}
	c.JSON(http.StatusCreated, class)
}

// Update modifies a class.
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body classRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var class models.SchoolClass
	if errFind := h.db.WithContext(c.Request.Context()).First(&class, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query class failed"})
		return
	}

	if body.ClassNumber > 0 {
		class.ClassNumber = body.ClassNumber
	}
	if v := strings.TrimSpace(body.ClassName); v != "" {
		class.ClassName = v
	}
	if v := strings.TrimSpace(body.Section); v != "" {
		class.Section = v
	}
	if body.Subjects != nil {
		subjects, errSubjects := marshalSubjectList(body.Subjects)
		if errSubjects != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject list"})
			return
		}
		class.Subjects = subjects
	}
	if body.Active != nil {
		class.Active = *body.Active
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&class).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update class failed"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// Delete deactivates a class.
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result := h.db.WithContext(c.Request.Context()).
		Model(&models.SchoolClass{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete class failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// marshalSubjectList trims, drops empties, and encodes an ordered subject
// name list as JSON.
func marshalSubjectList(subjects []string) (datatypes.JSON, error) {
	cleaned := make([]string, 0, len(subjects))
	for _, name := range subjects {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	encoded, errMarshal := json.Marshal(cleaned)
	if errMarshal != nil {
		return nil, errMarshal
	}
	return datatypes.JSON(encoded), nil
}
