// apps/go-solver/main.go
//
// Entry point for the Wordle solver.
// Loads .env, then hands over to the cobra command tree (commands.go).

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
