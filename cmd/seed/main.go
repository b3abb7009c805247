// Command main runs the database seeder for Gotolinks.
package main

import (
	"flag"
	"log"

	"gotolinks/internal/config"
	"gotolinks/internal/database"
	"gotolinks/internal/seed"
)

func main() {
	// Parse command line flags
	numCreators := flag.Int("creators", 25, "Number of random creators to generate")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	demoOnly := flag.Bool("demo-only", false, "Only upsert the demo creator, skip random data")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *demoOnly {
		if err := seed.SeedDemo(db); err != nil {
			log.Fatalf("❌ Demo seeding failed: %v", err)
		}
		log.Printf("✨ Demo creator ready. Visit /%s to see it.", seed.DemoHandle)
		return
	}

	log.Printf("Target: %d creators, clean=%v\n", *numCreators, *shouldClean)

	if err := seed.Seed(db, seed.Options{NumCreators: *numCreators, ShouldClean: *shouldClean}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 Log in with %s to edit the demo profile.", seed.DemoEmail)
}
