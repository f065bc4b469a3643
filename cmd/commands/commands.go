// Package commands implements the cobra subcommands of the server binary
package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/learnlife319/app/internal/app"
	"github.com/learnlife319/app/internal/auth/service"
	"github.com/learnlife319/app/internal/config"
	"github.com/learnlife319/app/internal/logger"
	"github.com/learnlife319/app/internal/middlewares"
	"github.com/learnlife319/app/internal/repositories"
	"github.com/learnlife319/app/internal/services"
	"github.com/learnlife319/app/internal/storage"
	"github.com/learnlife319/app/internal/telegram"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the API server with all configured routes and middleware",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  "Apply the embedded MySQL migrations. Only meaningful with STORAGE_DRIVER=mysql.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

// NewGrantAdminCommand creates the grant-admin command
func NewGrantAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-admin",
		Short: "Grant admin rights to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			return runGrantAdmin(cmd.Context(), username)
		},
	}

	cmd.Flags().String("username", "", "Username of the user to promote (required)")
	cmd.MarkFlagRequired("username")

	return cmd
}

// setup loads the configuration and initializes the global logger
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// openStore opens the document store selected by the configuration.
// The returned function releases the underlying connection.
func openStore(cfg *config.Config) (*storage.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		db, err := storage.OpenMySQL(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := storage.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Logger.Info("Using MySQL document storage", zap.String("database", cfg.Database.DBName))
		return storage.New(storage.NewMySQLBackend(db), logger.Logger), func() { db.Close() }, nil
	default:
		backend, err := storage.NewFileBackend(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Logger.Info("Using file document storage", zap.String("dir", cfg.Storage.DataDir))
		return storage.New(backend, logger.Logger), func() {}, nil
	}
}

func runServer() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Logger.Info("Starting TOEFL Prep API")

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Logger.Error("Failed to open storage", zap.Error(err))
		return err
	}
	defer closeStore()

	router := app.NewRouter(app.Options{
		Store:          store,
		MediaDir:       cfg.Storage.MediaDir,
		Sender:         telegram.NewClient(cfg.Telegram.APIURL, cfg.Telegram.BotToken, logger.Logger),
		TokenGenerator: service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Metrics:        middlewares.NewMetrics(),
		Logger:         logger.Logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		CookieSecure:   cfg.Server.CookieSecure,
	})

	srv := app.NewServer(fmt.Sprintf(":%d", cfg.Server.Port), router)

	serverErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Logger.Error("Server failed to start", zap.Error(err))
		return err
	case <-quit:
	}

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Logger.Info("Server exited")
	return nil
}

func runMigrate() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Storage.Driver != config.StorageDriverMySQL {
		logger.Logger.Info("Nothing to migrate for file storage", zap.String("driver", cfg.Storage.Driver))
		return nil
	}

	var db *sql.DB
	if db, err = storage.OpenMySQL(cfg.DSN()); err != nil {
		return err
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		logger.Logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Logger.Info("Migrations applied")
	return nil
}

func runGrantAdmin(ctx context.Context, username string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	userService := services.NewUserService(repositories.NewUserRepository(store, logger.Logger), logger.Logger)
	user, err := userService.GrantAdminByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to grant admin to %q: %w", username, err)
	}

	logger.Logger.Info("Admin rights granted", zap.Int("userID", user.ID), zap.String("username", user.Username))
	return nil
}
