// Command migrate applies the embedded schema migrations and exits.
package main

import (
	"context"
	"log"

	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	log.Printf("migrations applied")
}
