// Command seed-programs replaces every row of the programs table in
// data/content.db with the twelve-program canonical set and prints a
// verification report. It takes no arguments and reads no environment
// variables. Running it again gives the same content with new ids.
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
	log := logger.NewLogger("seed-programs")

	if err := seed.RunScript(context.Background(), os.Stdout, log, config.DefaultDatabasePath, content.ProgramsPlan()); err != nil {
		log.Error("SEED", err.Error())
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
