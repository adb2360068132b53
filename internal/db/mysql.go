package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return gormDB, nil
}

// Migrate creates or updates the schema for every model the panel manages.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Admin{},
		&model.AdminSession{},
		&model.AuditLog{},
		&model.User{},
		&model.Post{},
	)
}
