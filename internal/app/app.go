package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/studentresult/srms/internal/auth"
	"github.com/studentresult/srms/internal/config"
	"github.com/studentresult/srms/internal/db"
	srmshttp "github.com/studentresult/srms/internal/http"
	"github.com/studentresult/srms/internal/logging"
	"github.com/studentresult/srms/internal/security"
	"github.com/studentresult/srms/internal/store"
)

// Options holds process-level inputs.
type Options struct {
	ConfigPath string
}

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, opts Options) error {
	cfg, errLoad := config.Load(opts.ConfigPath)
	if errLoad != nil {
		return errLoad
	}
	conn, errOpen := db.Open(cfg.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	return db.Migrate(conn)
}

// RunServer boots the HTTP server with database-backed components and shuts
// down gracefully when the context is cancelled.
func RunServer(ctx context.Context, opts Options) error {
	cfg, errLoad := config.Load(opts.ConfigPath)
	if errLoad != nil {
		return errLoad
	}
	logging.Setup(cfg.Log)

	conn, errOpen := db.Open(cfg.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	hasher := security.NewHasher(cfg.Auth.BcryptCost)
	hook := auth.NewLogHook()
	admins := store.NewGormAdminStore(conn)
	teachers := store.NewGormTeacherStore(conn)
	students := store.NewGormStudentStore(conn)

	authenticator := auth.NewAuthenticator(admins, teachers, students, hasher, hook)
	changer := auth.NewPasswordChanger(admins, teachers, hasher, nil, hook)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	srmshttp.RegisterRoutes(engine, srmshttp.Deps{
		DB:            conn,
		Hasher:        hasher,
		Authenticator: authenticator,
		Changer:       changer,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("srms listening on %s", cfg.Server.Addr)
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			errCh <- errServe
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			log.WithError(errShutdown).Warn("server shutdown failed")
		}
		return <-errCh
	case errServe := <-errCh:
		return errServe
	}
}
