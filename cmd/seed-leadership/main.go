// Command seed-leadership replaces the leadership team in data/content.db.
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
	log := logger.NewLogger("seed-leadership")

	if err := seed.RunScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.LeadershipPlan()); err != nil {
		log.Error("SEED", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
