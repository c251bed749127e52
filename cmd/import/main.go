package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/pkg/database"
	"github.com/ipropixel/leadfinder/pkg/importer"
	"github.com/ipropixel/leadfinder/pkg/logger"
)

func main() {
	var (
		file         = flag.String("file", "", "Path to an Apify dataset JSON export (required)")
		query        = flag.String("query", "", "Search query to record on imported rows (required)")
		allowDupes   = flag.Bool("allow-duplicates", false, "Insert rows even when a business with the same name exists")
		validateOnly = flag.Bool("validate-only", false, "Parse and reconcile without writing to the database")
	)
	flag.Parse()

	if *file == "" || *query == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("❌ Failed to open dataset: %v", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	svc := importer.NewService(db.Ent, logger.New(cfg.LogLevel, cfg.LogFormat))
	result, err := svc.ImportDataset(ctx, f, importer.Config{
		SearchQuery:    *query,
		SkipDuplicates: !*allowDupes,
		ValidateOnly:   *validateOnly,
	})
	if err != nil {
		log.Fatalf("❌ Import failed: %v", err)
	}

	log.Printf("✅ Import finished in %s", result.Duration)
	log.Printf("📊 Items: %d | Scraped: %d | Inserted: %d | Updated: %d | Duplicates: %d | Failed: %d",
		result.TotalItems, result.Stats.Scraped, result.Stats.Inserted,
		result.Stats.Updated, result.Stats.Duplicates, result.Stats.Failed)
}
