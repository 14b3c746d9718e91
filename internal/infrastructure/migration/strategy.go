package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Strategy runs schema migrations against the database.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

type gormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() Strategy {
	return &gormAutoMigrateStrategy{}
}

func (s *gormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *gormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// gooseStrategy applies version-controlled SQL scripts. Models are ignored;
// the scripts are the source of truth.
type gooseStrategy struct {
	scriptsDir string
}

func NewGooseStrategy(scriptsDir string) Strategy {
	return &gooseStrategy{scriptsDir: scriptsDir}
}

func (s *gooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, s.scriptsDir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

func (s *gooseStrategy) GetName() string {
	return "goose"
}
