package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"elitezone/internal/config"
	"elitezone/internal/models"
	"elitezone/internal/storage"
)

// Resets the data directory to the first-launch dataset. Pass -force to
// overwrite documents that already exist.
func main() {
	force := flag.Bool("force", false, "overwrite existing documents")
	flag.Parse()

	cfg := config.Load()
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open data dir: %v", err)
	}

	now := time.Now()
	seed(store, "elitezone_users", models.SeedUsers(now), *force)
	seed(store, "elitezone_matches", models.SeedMatches(now), *force)
	seed(store, "elitezone_transactions", []models.Transaction{}, *force)
	seed(store, "elitezone_app_config", models.DefaultAppConfig(), *force)
}

func seed(store *storage.Store, key string, value any, force bool) {
	if !force {
		var existing any
		found, err := store.Load(key, &existing)
		if err != nil {
			log.Fatalf("failed to read %s: %v", key, err)
		}
		if found {
			fmt.Printf("skipped %s (exists, use -force to overwrite)\n", key)
			return
		}
	}
	if err := store.Save(key, value); err != nil {
		log.Fatalf("failed to seed %s: %v", key, err)
	}
	fmt.Printf("seeded %s\n", key)
}
