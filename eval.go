// apps/go-solver/eval.go
//
// "eval" command: the repeated-evaluation loop. One engine with RemoveSolved
// solves every word of the list in order; each solved word leaves the pool.

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/evaluate"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

func runEval(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}
	answers := list.Words()
	if evalLimit > 0 && evalLimit < len(answers) {
		answers = answers[:evalLimit]
	}

	eng, err := newEngine(list, true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rs *results.Store
	if persist {
		db, err := openDB(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			return err
		}
		rs = results.NewStore(db)
	}

	bar := progressbar.Default(int64(len(answers)))
	sum, err := evaluate.Run(ctx, eng, answers, evaluate.Options{
		MaxGuesses: cfg.MaxGuesses,
		Progress: func(r evaluate.Result) {
			_ = bar.Add(1)
			if rs == nil {
				return
			}
			if _, err := rs.Insert(ctx, results.Run{
				Answer: r.Answer, Guesses: r.Guesses, Solved: r.Solved, Trail: r.Trail, Source: "eval",
			}); err != nil {
				log.Warn().Err(err).Str("answer", r.Answer).Msg("record run")
			}
		},
	})
	_ = bar.Finish()

	log.Info().
		Int("words", sum.Words).
		Int("solved", sum.Solved).
		Int("failed", len(sum.Failed)).
		Float64("avg", sum.Average()).
		Int("max", sum.MaxGuesses).
		Str("hardest", sum.Hardest).
		Dur("elapsed", sum.Elapsed).
		Msg("evaluation finished")

	out := cmd.OutOrStdout()
	for _, k := range sum.Buckets() {
		fmt.Fprintf(out, "%3d guesses: %d\n", k, sum.Histogram[k])
	}
	fmt.Fprintf(out, "average %.3f over %d/%d words\n", sum.Average(), sum.Solved, sum.Words)
	return err
}
