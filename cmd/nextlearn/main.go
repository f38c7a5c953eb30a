package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/nextlearn/catalog/docs"
	"github.com/nextlearn/catalog/internal/catalog"
	"github.com/nextlearn/catalog/internal/config"
	"github.com/nextlearn/catalog/internal/database"
	"github.com/nextlearn/catalog/internal/discovery"
	"github.com/nextlearn/catalog/internal/logger"
	"github.com/nextlearn/catalog/internal/models"
	"github.com/nextlearn/catalog/internal/repositories"
	"github.com/nextlearn/catalog/internal/server"
	"github.com/nextlearn/catalog/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title NextLearn Catalog API
// @version 1.0
// @description Search, filter and paginate the NextLearn course catalog

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nextlearn",
	Short: "NextLearn course catalog",
	Long: `NextLearn serves the course catalog site and its JSON API.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(coursesCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting NextLearn catalog", zap.String("catalog_source", cfg.Catalog.Source))

	courses, closeSource, err := loadCatalog(cmd.Context(), cfg, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	// The catalog is immutable once loaded, so the database is not needed past startup
	closeSource()

	engine := discovery.NewEngine(courses, logger.Logger)
	courseService := services.NewCourseService(engine, logger.Logger)

	router, err := server.NewRouter(cfg, courseService, catalog.Features(), logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create router", zap.Error(err))
	}
	srv := server.NewServer(cfg, router)

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port), zap.Int("courses", len(courses)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
	return nil
}

// loadCatalog loads the validated catalog from the configured source.
// The returned function releases the source and must be called once.
func loadCatalog(ctx context.Context, cfg *config.Config, l *zap.Logger) ([]models.Course, func(), error) {
	if cfg.Catalog.Source != config.SourceMySQL {
		courses, err := catalog.Load(ctx, catalog.NewStaticProvider())
		return courses, func() {}, err
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { closeQuietly(db, l) }

	if err := database.RunMigrations(db, l); err != nil {
		closeDB()
		return nil, nil, err
	}

	courses, err := catalog.Load(ctx, repositories.NewCourseRepository(db, l))
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return courses, closeDB, nil
}

func closeQuietly(db *sql.DB, l *zap.Logger) {
	if err := db.Close(); err != nil {
		l.Warn("failed to close database", zap.Error(err))
	}
}
