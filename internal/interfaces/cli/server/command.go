package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/assetdesk/assetdesk/internal/infrastructure/config"
	"github.com/assetdesk/assetdesk/internal/infrastructure/database"
	"github.com/assetdesk/assetdesk/internal/infrastructure/migration"
	"github.com/assetdesk/assetdesk/internal/infrastructure/permission"
	httpRouter "github.com/assetdesk/assetdesk/internal/interfaces/http"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the AssetDesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto-migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
	}

	log := logger.NewLogger()

	enforcer, err := permission.NewEnforcer(database.Get(), log)
	if err != nil {
		logger.Fatal("failed to initialize permission enforcer", "error", err)
	}
	if err := permission.InitPortalPermissions(enforcer.Raw(), log); err != nil {
		logger.Fatal("failed to seed permissions", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	logger.Info("redis connection established", "address", cfg.Redis.GetAddr())

	router := httpRouter.NewRouter(database.Get(), redisClient, enforcer, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
