// Command seed-programs-additional appends the four programs with
// orderIndex 9 to 12. Nothing is deleted, so running it twice duplicates
// them; use seed-programs to get back to the canonical twelve.
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
	log := logger.NewLogger("seed-programs-additional")

	if err := seed.RunScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.AdditionalProgramsPlan()); err != nil {
		log.Error("SEED", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
