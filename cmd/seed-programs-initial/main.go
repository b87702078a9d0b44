// Command seed-programs-initial resets the programs table to the initial
// eight programs.
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
	log := logger.NewLogger("seed-programs-initial")

	if err := seed.RunScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.InitialProgramsPlan()); err != nil {
		log.Error("SEED", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
