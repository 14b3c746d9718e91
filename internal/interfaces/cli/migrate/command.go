package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/assetdesk/assetdesk/internal/infrastructure/config"
	"github.com/assetdesk/assetdesk/internal/infrastructure/database"
	"github.com/assetdesk/assetdesk/internal/infrastructure/migration"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply goose scripts or sync the schema from the model definitions.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending goose migration scripts.`,
		RunE:  runUp,
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync schema from models",
		Long:  `Run GORM AutoMigrate against the model definitions. Intended for development only.`,
		RunE:  runAuto,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	manager := migration.NewManagerWithStrategy(migration.NewGooseStrategy(scriptsPath))
	return manager.Migrate(database.Get())
}

func runAuto(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
	return manager.Migrate(database.Get(), migration.AutoMigrateModels()...)
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
