package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/ipropixel/leadfinder/config"
	"github.com/ipropixel/leadfinder/pkg/database"
	"github.com/ipropixel/leadfinder/pkg/testdata"
)

func main() {
	var (
		categories = flag.String("categories", "dentist,barber,restaurant,cafe,gym", "Comma-separated categories to seed")
		city       = flag.String("city", "Tirana", "City to seed businesses in")
		count      = flag.Int("count", 50, "Businesses per category")
	)
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	log.Println("🌱 Seeding database with sample businesses...")

	total := 0
	for _, category := range strings.Split(*categories, ",") {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}

		n, err := testdata.GenerateBusinesses(ctx, db.Ent, testdata.BusinessGeneratorConfig{
			Category:      category,
			Count:         *count,
			City:          *city,
			EmailChance:   0.6,
			PhoneChance:   0.85,
			WebsiteChance: 0.4,
			SocialChance:  0.5,
		})
		if err != nil {
			log.Printf("⚠️  Failed to seed %s: %v", category, err)
			continue
		}
		log.Printf("  ✅ %s: %d businesses", category, n)
		total += n
	}

	log.Printf("✅ Seeded %d businesses in %s", total, *city)
}
