package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/importer"
	"portfolio-backend/internal/infrastructure/database"
)

// One-off batch tool: reads a realtime-database JSON export and writes it
// into the document store. Safe to re-run; documents are upserted.
func main() {
	exportPath := flag.String("export", "./export.json", "path to the realtime database JSON export")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[MIGRATE] No .env file found, using system environment variables")
	}

	raw, err := os.ReadFile(*exportPath)
	if err != nil {
		log.Fatalf("[MIGRATE] Cannot read export file %s: %v", *exportPath, err)
	}

	var export map[string]interface{}
	if err := json.Unmarshal(raw, &export); err != nil {
		log.Fatalf("[MIGRATE] Export file is not valid JSON: %v", err)
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("[MIGRATE] Failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("[MIGRATE] Failed to connect to database: %v", err)
	}
	defer db.Pool.Close()

	store := docstore.NewPostgresStore(db.Pool)

	log.Println("[MIGRATE] Starting migration...")

	stats, err := importer.Run(context.Background(), store, export)
	if err != nil {
		log.Fatalf("[MIGRATE] Migration failed: %v", err)
	}

	log.Printf("[MIGRATE] Done: %d documents imported, %d keys skipped",
		stats.Documents, len(stats.Skipped))
}
