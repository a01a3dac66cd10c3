// apps/go-solver/serve.go
//
// "serve" command: loads the word list, opens and migrates the results database,
// then runs the HTTP API until SIGINT/SIGTERM.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func runServe(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return err
	}

	srv := httpserver.New(store.NewMemoryStore(), list, db, httpserver.Options{
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		DailySalt:    cfg.DailySalt,
		MaxGuesses:   cfg.MaxGuesses,
		OpeningGuess: cfg.OpeningGuess,
		RemoveSolved: cfg.RemoveSolved,
		ClientOrigin: cfg.ClientOrigin,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting go-solver")
	return srv.Start(ctx, ":"+cfg.Port)
}
