package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/studentresult/srms/internal/models"
	"github.com/studentresult/srms/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTeacherTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:teachers_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := db.AutoMigrate(&models.Teacher{}); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}
	return db
}

func newTeacherRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTeacherHandler(db, security.NewHasher(bcrypt.MinCost))
	router := gin.New()
	router.POST("/api/teachers", handler.Create)
	router.PUT("/api/teachers/:id", handler.Update)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, errMarshal := json.Marshal(body)
	if errMarshal != nil {
		t.Fatalf("marshal body: %v", errMarshal)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDefaultTeacherPassword(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "Sharma", phone: "9876543210", want: "SHA3210"},
		{name: "ravi kumar", phone: "+91 98765 43210", want: "RAV3210"},
		{name: "Li", phone: "9876543210", want: ""},
		{name: "Sharma", phone: "321", want: ""},
		{name: "", phone: "", want: ""},
	}
	for _, tc := range cases {
		if got := defaultTeacherPassword(tc.name, tc.phone); got != tc.want {
			t.Fatalf("defaultTeacherPassword(%q, %q) = %q, want %q", tc.name, tc.phone, got, tc.want)
		}
	}
}

func TestTeacherCreateStoresEncodedPassword(t *testing.T) {
	db := setupTeacherTestDB(t)
	router := newTeacherRouter(db)

	w := postJSON(t, router, http.MethodPost, "/api/teachers", gin.H{
		"name":    "Sharma",
		"email":   "sharma@school.edu",
		"phone":   "9876543210",
		"subject": "Mathematics",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Teacher
	if errFind := db.Where("email = ?", "sharma@school.edu").First(&stored).Error; errFind != nil {
		t.Fatalf("find teacher: %v", errFind)
	}
	if !security.IsHash(stored.Password) {
		t.Fatalf("password stored in clear: %q", stored.Password)
	}
	hasher := security.NewHasher(bcrypt.MinCost)
	if !hasher.Verify("SHA3210", stored.Password) {
		t.Fatalf("stored password does not match derived default")
	}
	if bytes.Contains(w.Body.Bytes(), []byte(stored.Password)) {
		t.Fatalf("response leaks password hash")
	}
}

func TestTeacherCreateRequiresDerivablePassword(t *testing.T) {
	db := setupTeacherTestDB(t)
	router := newTeacherRouter(db)

	w := postJSON(t, router, http.MethodPost, "/api/teachers", gin.H{
		"name":  "Li",
		"email": "li@school.edu",
		"phone": "12",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestTeacherUpdateDoesNotTouchPassword(t *testing.T) {
	db := setupTeacherTestDB(t)
	router := newTeacherRouter(db)

	teacher := models.Teacher{
		Name:     "Sharma",
		Email:    "sharma@school.edu",
		Password: "$2a$04$fixedhashfixedhashfixedhashfixedhashfixedhashfixedha",
		Active:   true,
	}
	if errCreate := db.Create(&teacher).Error; errCreate != nil {
		t.Fatalf("create teacher: %v", errCreate)
	}

	w := postJSON(t, router, http.MethodPut, fmt.Sprintf("/api/teachers/%d", teacher.ID), gin.H{
		"subject":  "Physics",
		"password": "Sneaky#123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Teacher
	if errFind := db.First(&stored, teacher.ID).Error; errFind != nil {
		t.Fatalf("find teacher: %v", errFind)
	}
	if stored.Subject != "Physics" {
		t.Fatalf("subject = %q", stored.Subject)
	}
	if stored.Password != teacher.Password {
		t.Fatalf("password changed through update endpoint")
	}
}
