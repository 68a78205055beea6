package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/models"
	"gorm.io/gorm"
)

// MarkHandler handles mark CRUD endpoints.
type MarkHandler struct {
	db *gorm.DB
}

// NewMarkHandler constructs a MarkHandler.
func NewMarkHandler(db *gorm.DB) *MarkHandler {
	return &MarkHandler{db: db}
}

// List returns marks, optionally filtered by student, subject, or exam name.
func (h *MarkHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Mark{})
	if studentID, errParse := strconv.ParseUint(c.Query("studentId"), 10, 64); errParse == nil && studentID > 0 {
		query = query.Where("student_id = ?", studentID)
	}
	if subjectID, errParse := strconv.ParseUint(c.Query("subjectId"), 10, 64); errParse == nil && subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}
	if examName := strings.TrimSpace(c.Query("examName")); examName != "" {
		query = query.Where("exam_name = ?", examName)
	}

	var marks []models.Mark
	if errFind := query.Order("id ASC").Find(&marks).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query marks failed"})
		return
	}
	c.JSON(http.StatusOK, marks)
}

// Get returns one mark by ID.
func (h *MarkHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var mark models.Mark
	if errFind := h.db.WithContext(c.Request.Context()).First(&mark, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mark not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query mark failed"})
		return
	}
	c.JSON(http.StatusOK, mark)
}

// markRequest defines the request body for mark create and update.
type markRequest struct {
	StudentID uint64   `json:"studentId"`
	SubjectID uint64   `json:"subjectId"`
	ExamName  string   `json:"examName"`
	Score     *float64 `json:"score"`
	MaxScore  *float64 `json:"maxScore"`
}

// Create adds a mark after checking the student and subject exist.
func (h *MarkHandler) Create(c *gin.Context) {
	var body markRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	examName := strings.TrimSpace(body.ExamName)
	if body.StudentID == 0 || body.SubjectID == 0 || examName == "" || body.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId, subjectId, examName and score are required"})
		return
	}

	mark := models.Mark{
		StudentID: body.StudentID,
		SubjectID: body.SubjectID,
		ExamName:  examName,
		Score:     *body.Score,
		MaxScore:  100,
	}
	if body.MaxScore != nil && *body.MaxScore > 0 {
		mark.MaxScore = *body.MaxScore
	}
	if mark.Score < 0 || mark.Score > mark.MaxScore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 0 and maxScore"})
		return
	}

	ctx := c.Request.Context()
	var count int64
	if errCount := h.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", mark.StudentID).Count(&count).Error; errCount != nil || count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown student"})
		return
	}
	if errCount := h.db.WithContext(ctx).Model(&models.Subject{}).
		Where("id = ?", mark.SubjectID).Count(&count).Error; errCount != nil || count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown subject"})
		return
	}

	if errCreate := h.db.WithContext(ctx).Create(&mark).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create mark failed"})
		return
	}
	c.JSON(http.StatusCreated, mark)
}

// Update modifies a mark's score, max score, or exam name.
func (h *MarkHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body markRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var mark models.Mark
	if errFind := h.db.WithContext(c.Request.Context()).First(&mark, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mark not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query mark failed"})
		return
	}

	if v := strings.TrimSpace(body.ExamName); v != "" {
		mark.ExamName = v
	}
	if body.MaxScore != nil && *body.MaxScore > 0 {
		mark.MaxScore = *body.MaxScore
	}
	if body.Score != nil {
		mark.Score = *body.Score
	}
	if mark.Score < 0 || mark.Score > mark.MaxScore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 0 and maxScore"})
		return
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&mark).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update mark failed"})
		return
	}
	c.JSON(http.StatusOK, mark)
}

// Delete removes a mark.
func (h *MarkHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result := h.db.WithContext(c.Request.Context()).Delete(&models.Mark{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete mark failed"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "mark not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
