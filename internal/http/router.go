package http

import (
	"github.com/gin-gonic/gin"
	"github.com/studentresult/srms/internal/auth"
	"github.com/studentresult/srms/internal/http/handlers"
	"github.com/studentresult/srms/internal/security"
	"gorm.io/gorm"
)

// Deps bundles the collaborators the HTTP layer needs.
type Deps struct {
	DB            *gorm.DB
	Hasher        *security.Hasher
	Authenticator *auth.Authenticator
	Changer       *auth.PasswordChanger
}

// RegisterRoutes registers all SRMS routes on the engine.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	if r == nil || deps.DB == nil {
		return
	}
	r.Use(CORSMiddleware())

	healthHandler := handlers.NewHealthHandler(deps.DB)
	r.GET("/healthz", healthHandler.Healthz)

	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.Changer)
	authGroup := r.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/teachers-login", authHandler.TeacherLogin)
	authGroup.POST("/student-login", authHandler.StudentLogin)
	authGroup.POST("/change-password", authHandler.ChangePassword)

	api := r.Group("/api")

	studentHandler := handlers.NewStudentHandler(deps.DB)
	api.GET("/students", studentHandler.List)
	api.GET("/students/:id", studentHandler.Get)
	api.POST("/students", studentHandler.Create)
	api.PUT("/students/:id", studentHandler.Update)
	api.DELETE("/students/:id", studentHandler.Delete)

	teacherHandler := handlers.NewTeacherHandler(deps.DB, deps.Hasher)
	api.GET("/teachers", teacherHandler.List)
	api.GET("/teachers/:id", teacherHandler.Get)
	api.POST("/teachers", teacherHandler.Create)
	api.PUT("/teachers/:id", teacherHandler.Update)
	api.DELETE("/teachers/:id", teacherHandler.Delete)

	classHandler := handlers.NewClassHandler(deps.DB)
	api.GET("/classes", classHandler.List)
	api.GET("/classes/:id", classHandler.Get)
	api.POST("/classes", classHandler.Create)
	api.PUT("/classes/:id", classHandler.Update)
	api.DELETE("/classes/:id", classHandler.Delete)

	subjectHandler := handlers.NewSubjectHandler(deps.DB)
	api.GET("/subjects", subjectHandler.List)
	api.GET("/subjects-by-class/:className", subjectHandler.ByClass)
	api.GET("/subjects/:id", subjectHandler.Get)
	api.POST("/subjects", subjectHandler.Create)
	api.PUT("/subjects/:id", subjectHandler.Update)
	api.DELETE("/subjects/:id", subjectHandler.Delete)

	markHandler := handlers.NewMarkHandler(deps.DB)
	api.GET("/marks", markHandler.List)
	api.GET("/marks/:id", markHandler.Get)
	api.POST("/marks", markHandler.Create)
	api.PUT("/marks/:id", markHandler.Update)
	api.DELETE("/marks/:id", markHandler.Delete)

	recheckHandler := handlers.NewRecheckHandler(deps.DB)
	api.GET("/rechecks", recheckHandler.List)
	api.GET("/rechecks/:id", recheckHandler.Get)
	api.POST("/rechecks", recheckHandler.Create)
	api.PUT("/rechecks/:id/review", recheckHandler.Review)
}
