package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/db"
	"github.com/studentresult/srms/internal/models"
	"gorm.io/gorm"
)

// SubjectHandler handles subject CRUD and the subjects-by-class lookup.
type SubjectHandler struct {
	db *gorm.DB
}

// NewSubjectHandler constructs a SubjectHandler.
func NewSubjectHandler(db *gorm.DB) *SubjectHandler {
	return &SubjectHandler{db: db}
}

// List returns subjects, optionally restricted to active ones or filtered by
// a search term over name and code.
func (h *SubjectHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Subject{})
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := db.NormalizeLikePattern(h.db, "%"+search+"%")
		query = query.Where(
			h.db.Where(db.CaseInsensitiveLikeExpr(h.db, "name"), pattern).
				Or(db.CaseInsensitiveLikeExpr(h.db, "code"), pattern),
		)
	}

	var subjects []models.Subject
	if errFind := query.Order("id ASC").Find(&subjects).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query subjects failed"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// Get returns one subject by ID.
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var subject models.Subject
	if errFind := h.db.WithContext(c.Request.Context()).First(&subject, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query subject failed"})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// subjectRequest defines the request body for subject create and update.
type subjectRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// Create adds a subject.
func (h *SubjectHandler) Create(c *gin.Context) {
	var body subjectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	subject := models.Subject{
		Name:        name,
		Code:        strings.TrimSpace(body.Code),
		Description: strings.TrimSpace(body.Description),
		Active:      true,
	}
	if body.Active != nil {
		subject.Active = *body.Active
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&subject).Error; errCreate != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "create subject failed"})
		return
	}
	c.JSON(http.StatusCreated, subject)
}

// Update modifies a subject.
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body subjectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var subject models.Subject
	if errFind := h.db.WithContext(c.Request.Context()).First(&subject, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query subject failed"})
		return
	}

	if v := strings.TrimSpace(body.Name); v != "" {
		subject.Name = v
	}
	if v := strings.TrimSpace(body.Code); v != "" {
		subject.Code = v
	}
	if v := strings.TrimSpace(body.Description); v != "" {
		subject.Description = v
	}
	if body.Active != nil {
		subject.Active = *body.Active
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&subject).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update subject failed"})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// Delete soft-deletes a subject by clearing its active flag.
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Subject{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete subject failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// classSubject is one entry of the subjects-by-class response. Entries
// without a matching subject row carry the name only, so clients can still
// display and filter by it.
type classSubject struct {
	ID          uint64 `json:"id,omitempty"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ByClass returns the subjects of a class in the class's configured order.
// The class is resolved by the digits in the parameter first ("10" and
// "Class 10" both work), then by exact class name.
func (h *SubjectHandler) ByClass(c *gin.Context) {
	className := strings.TrimSpace(c.Param("className"))
	if className == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "className is required"})
		return
	}

	class, found, errResolve := h.resolveClass(c, className)
	if errResolve != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query class failed"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, []classSubject{})
		return
	}

	var names []string
	if len(class.Subjects) > 0 {
		if errUnmarshal := json.Unmarshal(class.Subjects, &names); errUnmarshal != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid class subject list"})
			return
		}
	}
	if len(names) == 0 {
		c.JSON(http.StatusOK, []classSubject{})
		return
	}

	var active []models.Subject
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("active = ?", true).
		Find(&active).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query subjects failed"})
		return
	}
	activeByName := make(map[string]models.Subject, len(active))
	for _, subject := range active {
		key := strings.ToLower(strings.TrimSpace(subject.Name))
		if _, exists := activeByName[key]; !exists && key != "" {
			activeByName[key] = subject
		}
	}

	results := make([]classSubject, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if match, ok := activeByName[strings.ToLower(name)]; ok {
			results = append(results, classSubject{
				ID:          match.ID,
				Name:        match.Name,
				Code:        match.Code,
				Description: match.Description,
				Active:      match.Active,
			})
			continue
		}
		results = append(results, classSubject{Name: name, Active: true})
	}
	c.JSON(http.StatusOK, results)
}

// resolveClass finds a class by the digits embedded in the input, falling
// back to an exact class-name match.
func (h *SubjectHandler) resolveClass(c *gin.Context, className string) (*models.SchoolClass, bool, error) {
	var digits strings.Builder
	for _, r := range className {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	var class models.SchoolClass
	if digits.Len() > 0 {
		if classNumber, errParse := strconv.Atoi(digits.String()); errParse == nil {
			errFind := h.db.WithContext(c.Request.Context()).
				Where("class_number = ?", classNumber).
				First(&class).Error
			if errFind == nil {
				return &class, true, nil
			}
			if !errors.Is(errFind, gorm.ErrRecordNotFound) {
				return nil, false, errFind
			}
		}
	}

	errFind := h.db.WithContext(c.Request.Context()).
		Where("class_name = ?", className).
		First(&class).Error
	if errFind == nil {
		return &class, true, nil
	}
	if errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	return nil, false, errFind
}
