// Command seed-site-content replaces the hero, about, contact and donation
// records in data/content.db. Each record is replaced in its own
// transaction.
package main

import (
	"context"
	"os"

	"ms-content/internal/config"
	"ms-content/internal/logger"
	"ms-content/internal/seed"
	"ms-content/internal/seed/content"
)

func main() {
	log := logger.NewLogger("seed-site-content")

	if err := seed.RunScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.SiteContentPlans()...); err != nil {
		log.Error("SEED", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
