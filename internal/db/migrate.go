package db

import (
	"fmt"

	"github.com/studentresult/srms/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates all SRMS tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.Admin{},
		&models.Teacher{},
		&models.Student{},
		&models.SchoolClass{},
		&models.Subject{},
		&models.Mark{},
		&models.RecheckRequest{},
	)
}
