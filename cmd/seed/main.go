package main

import (
	"context"
	"log"
	"time"

	"skillbridge/internal/config"
	dbpostgres "skillbridge/internal/database/postgres"
	"skillbridge/internal/database/schema"
	"skillbridge/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := schema.Ensure(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	if err := seeder.Run(ctx, db); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	log.Println("demo data seeded")
}
