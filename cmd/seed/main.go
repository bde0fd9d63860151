package main

import (
	"fmt"
	"log"
	"time"

	"github.com/raizel/manadabook/internal/auth"
	"github.com/raizel/manadabook/internal/config"
	"github.com/raizel/manadabook/internal/db"
)

func main() {
	// Load configuration
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := db.SeedDemoData(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")

	// Print bearer tokens for the first demo users, e.g. for grpcurl:
	//   grpcurl -H "authorization: Bearer <token>" ...
	if cfg.Auth.JWTSecret == "" {
		return
	}
	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		log.Fatalf("invalid auth config: %v", err)
	}
	for i := 1; i <= 3; i++ {
		id := db.DemoUserID(i)
		token, err := verifier.Issue(id, 24*time.Hour)
		if err != nil {
			log.Fatalf("failed to issue token for %s: %v", id, err)
		}
		fmt.Printf("%s\t%s\n", id, token)
	}
}
