package main

import (
	"context"
	"flag"
	"os"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/storage"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/config"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/logger"
)

// Without -file the built-in schema for the configured driver is applied.
//
// Usage example on the command line:
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/testdata.sql
func main() {
	filePtr := flag.String("file", "", "the sql file to execute instead of the built-in schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	sqlDB, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	db := sqlx.NewDb(sqlDB, cfg.Database.Driver)
	defer db.Close()

	ctx := context.Background()
	if *filePtr == "" {
		if err := storage.Migrate(ctx, db); err != nil {
			logger.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Infof("Schema for %s applied", cfg.Database.Driver)
		return
	}

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		logger.Fatalf("Failed to open %s: %v", *filePtr, err)
	}
	defer readFile.Close()
	if err := storage.ExecScript(ctx, db, readFile); err != nil {
		logger.Fatalf("Failed to execute %s: %v", *filePtr, err)
	}
	logger.Infof("Executed SQL script: %s", *filePtr)
}
