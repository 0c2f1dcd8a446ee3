package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/flash"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/inquiry"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/metrics"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/service"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/storage"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/config"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/logger"
)

// Usage example on the command line:
// > PORT=8080 DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
// > DBDRIVER=sqlite3 DBPATH=./inquiries.db DBMIGRATE=true go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.Mode)

	sqlDB, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := storage.Migrate(context.Background(), sqlx.NewDb(sqlDB, cfg.Database.Driver)); err != nil {
			logger.Fatalf("Failed to migrate database: %v", err)
		}
	}
	store, err := storage.NewStore(sqlDB, cfg.Database.Driver)
	if err != nil {
		logger.Fatalf("Failed to prepare statements: %v", err)
	}
	defer store.Close()

	if !cfg.Server.Logging {
		logger.Infof("Turning off HTTP request logging.")
	}
	router := service.SetupHttpRouter(service.Dependencies{
		Inquiries:      inquiry.NewService(store, model.SystemRandom()),
		Flasher:        flash.New(cfg.Session.Secret),
		Metrics:        metrics.New(),
		RequestLogging: cfg.Server.Logging,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Infof("Server stopped")
}
