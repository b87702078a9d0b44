// Command content-diff compares data/content.db with the canonical content
// without writing anything. It exits 1 when any entity differs.
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
	log := logger.NewLogger("content-diff")

	if err := seed.DiffScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.DiffPlans()...); err != nil {
		log.Warn("DIFF", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
