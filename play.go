// apps/go-solver/play.go
//
// "play" command: one round against a known answer, printed as Wordle tiles.
// The answer is the positional argument, today's daily target, or a random word.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vyevs/ansi"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/evaluate"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func runPlay(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}

	now := time.Now()
	answer, source, err := pickAnswer(list, args, now)
	if err != nil {
		return err
	}

	eng, err := newEngine(list, false)
	if err != nil {
		return err
	}
	res, err := evaluate.Play(eng, answer, cfg.MaxGuesses)
	if err != nil && !errors.Is(err, solver.ErrTreeExhausted) {
		return err
	}

	out := cmd.OutOrStdout()
	render(out, answer, res.Trail, useColor(out))
	if res.Solved {
		fmt.Fprintf(out, "solved in %d\n", res.Guesses)
	} else {
		fmt.Fprintf(out, "not solved after %d\n", res.Guesses)
	}

	if !persist {
		return nil
	}
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return err
	}
	rs := results.NewStore(db)
	ctx := context.Background()
	id, err := rs.Insert(ctx, results.Run{
		Answer: answer, Guesses: res.Guesses, Solved: res.Solved, Trail: res.Trail, Source: source,
	})
	if err != nil {
		return err
	}
	if playDaily {
		date := daily.DateKey(now)
		if err := rs.RecordDaily(ctx, date, daily.WordIndex(now, cfg.DailySalt, list.Len()), id); err != nil {
			return err
		}
	}
	log.Info().Int64("id", id).Str("game", res.Game).Str("answer", answer).Msg("run recorded")
	return nil
}

// pickAnswer resolves the target from the flags or the positional argument.
func pickAnswer(list *words.List, args []string, now time.Time) (answer, source string, err error) {
	switch {
	case playDaily:
		answer, source = daily.Target(now, cfg.DailySalt, list), "daily"
	case playRandom:
		answer, source = list.Random(), "random"
	case len(args) == 1:
		answer, source = strings.ToLower(strings.TrimSpace(args[0])), "cli"
	default:
		return "", "", errors.New("play needs an answer, --daily or --random")
	}
	if !list.Contains(answer) {
		return "", "", fmt.Errorf("%q is not in the word list", answer)
	}
	return answer, source, nil
}

func useColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// tileColor maps a marker to the classic tile colours.
func tileColor(m solver.Marker) string {
	switch m {
	case solver.Correct:
		return "green"
	case solver.Misplaced:
		return "yellow"
	default:
		return "light gray"
	}
}

// render writes one line per guess: the letters (coloured when color is set)
// followed by the marker string.
func render(w io.Writer, answer string, trail []string, color bool) {
	var b strings.Builder
	for _, guess := range trail {
		fb := game.Score(answer, guess)
		if color {
			for i := 0; i < len(guess); i++ {
				b.WriteString(ansi.FGColorName(tileColor(fb[i])))
				b.WriteByte(guess[i] - 'a' + 'A')
			}
			b.WriteString(ansi.Clear)
		} else {
			b.WriteString(strings.ToUpper(guess))
		}
		b.WriteString("  ")
		b.WriteString(fb.String())
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(w, b.String())
}
