package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecheckHandler handles recheck request endpoints.
type RecheckHandler struct {
	db *gorm.DB
}

// NewRecheckHandler constructs a RecheckHandler.
func NewRecheckHandler(db *gorm.DB) *RecheckHandler {
	return &RecheckHandler{db: db}
}

// List returns recheck requests, optionally filtered by student or status.
func (h *RecheckHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.RecheckRequest{})
	if studentID, errParse := strconv.ParseUint(c.Query("studentId"), 10, 64); errParse == nil && studentID > 0 {
		query = query.Where("student_id = ?", studentID)
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		query = query.Where("status = ?", status)
	}

	var rechecks []models.RecheckRequest
	if errFind := query.Order("id ASC").Find(&rechecks).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query rechecks failed"})
		return
	}
	c.JSON(http.StatusOK, rechecks)
}

// Get returns one recheck request by ID.
func (h *RecheckHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var recheck models.RecheckRequest
	if errFind := h.db.WithContext(c.Request.Context()).First(&recheck, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recheck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query recheck failed"})
		return
	}
	c.JSON(http.StatusOK, recheck)
}

// createRecheckRequest defines the request body for filing a recheck.
type createRecheckRequest struct {
	StudentID uint64 `json:"studentId"`
	MarkID    uint64 `json:"markId"`
	Reason    string `json:"reason"`
}

// Create files a recheck request against an existing mark owned by the
// requesting student.
func (h *RecheckHandler) Create(c *gin.Context) {
	var body createRecheckRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	reason := strings.TrimSpace(body.Reason)
	if body.StudentID == 0 || body.MarkID == 0 || reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId, markId and reason are required"})
		return
	}

	var mark models.Mark
	if errFind := h.db.WithContext(c.Request.Context()).First(&mark, body.MarkID).Error; errFind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mark"})
		return
	}
	if mark.StudentID != body.StudentID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mark does not belong to student"})
		return
	}

	recheck := models.RecheckRequest{
		StudentID: body.StudentID,
		MarkID:    body.MarkID,
		Reason:    reason,
		Status:    models.RecheckStatusPending,
		Details:   datatypes.JSON(`{}`),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&recheck).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create recheck failed"})
		return
	}
	c.JSON(http.StatusCreated, recheck)
}

// reviewRecheckRequest defines the request body for resolving a recheck.
type reviewRecheckRequest struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details"`
}

// Review resolves a pending recheck request as approved or rejected and
// records reviewer notes in the details column.
func (h *RecheckHandler) Review(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var body reviewRecheckRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	status := strings.ToUpper(strings.TrimSpace(body.Status))
	if status != models.RecheckStatusApproved && status != models.RecheckStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be APPROVED or REJECTED"})
		return
	}

	var recheck models.RecheckRequest
	if errFind := h.db.WithContext(c.Request.Context()).First(&recheck, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recheck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query recheck failed"})
		return
	}
	if recheck.Status != models.RecheckStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "recheck already resolved"})
		return
	}

	recheck.Status = status
	if body.Details != nil {
		details, errMarshal := json.Marshal(body.Details)
		if errMarshal != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid details"})
			return
		}
		recheck.Details = datatypes.JSON(details)
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&recheck).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update recheck failed"})
		return
	}
	c.JSON(http.StatusOK, recheck)
}
