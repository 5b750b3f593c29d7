package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courierservice/cmd"
	"courierservice/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	slogLevel, _ := config.LogLevels()
	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating the database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, appLogger)
	if err != nil {
		log.Fatalf("Error building the application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config.HTTPPort, appLogger)
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	if config.DBDriver == cmd.DriverSQLite {
		return gorm.Open(sqlite.Open(config.SQLitePath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), gormConfig)
	}
	return gorm.Open(gormpostgres.Open(config.PostgresDSN()), gormConfig)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, appLogger *slog.Logger) {
	e, err := app.CreateHTTPServer(ctx)
	if err != nil {
		log.Fatalf("Error building the HTTP server: %v", err)
	}

	go func() {
		appLogger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
		return
	}
	appLogger.Info("HTTP server stopped")
}
