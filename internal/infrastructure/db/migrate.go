package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

// Migrate applies the SQL migrations in dir against the connected database.
// Already-applied migrations are a no-op. The schema, including the trigger
// that freezes loan applications in final states, lives in these files rather
// than in AutoMigrate so the trigger is versioned alongside the tables.
func Migrate(gdb *gorm.DB, dir string) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "mysql", driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("migrate: schema up to date")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	log.Println("migrate: schema applied")
	return nil
}
