// Command main runs the database seeder for Hearth.
package main

import (
	"flag"
	"log"

	"hearth/internal/config"
	"hearth/internal/database"
	"hearth/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numSpots := flag.Int("spots", 100, "Number of spots to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Seeding %d users, %d spots, clean=%v", *numUsers, *numSpots, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *numSpots); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done")
}
