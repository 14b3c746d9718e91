package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// Manager runs database migrations with an environment-selected strategy:
// GORM AutoMigrate in development, goose scripts elsewhere.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "debug", "development":
		strategy = NewGormAutoMigrateStrategy()
	default:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
