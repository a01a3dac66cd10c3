// apps/go-solver/commands.go
//
// Command tree.
//   - serve: HTTP API (internal/httpserver) over the configured word list.
//   - play:  solve one answer (given, daily or random) and print the tiles.
//   - eval:  repeated evaluation of the whole list on one engine.
//
// Every command shares the persistent setup in rootCmd: configuration layers,
// log level and output format.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	configPath string
	pretty     bool
	wordLength int
	persist    bool
	playDaily  bool
	playRandom bool
	noColor    bool
	evalLimit  int

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Weighted-trie Wordle guess engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if pretty {
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			}
			if configPath == "" {
				configPath = os.Getenv("SOLVER_CONFIG")
			}
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = c
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	playCmd = &cobra.Command{
		Use:   "play [answer]",
		Short: "Solve one answer and print each guess with its feedback",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	evalCmd = &cobra.Command{
		Use:   "eval",
		Short: "Solve every word of the list on one engine, removing each solved word",
		Args:  cobra.NoArgs,
		RunE:  runEval,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $SOLVER_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable log output")
	rootCmd.PersistentFlags().IntVar(&wordLength, "length", 0, "word length to keep from the list (0: first word's length)")

	playCmd.Flags().BoolVar(&playDaily, "daily", false, "solve today's daily target")
	playCmd.Flags().BoolVar(&playRandom, "random", false, "solve a random word from the list")
	playCmd.MarkFlagsMutuallyExclusive("daily", "random")
	playCmd.Flags().BoolVar(&persist, "persist", false, "record the run in the results database")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "plain markers instead of coloured tiles")

	evalCmd.Flags().BoolVar(&persist, "persist", false, "record every run in the results database")
	evalCmd.Flags().IntVar(&evalLimit, "limit", 0, "evaluate only the first N words")

	rootCmd.AddCommand(serveCmd, playCmd, evalCmd)
}

// loadWords reads WORDS_FILE, or the embedded list when unset.
func loadWords() (*words.List, error) {
	opts := words.Options{Length: wordLength}
	var (
		list *words.List
		err  error
	)
	if cfg.WordsFile != "" {
		list, err = words.Load(cfg.WordsFile, opts)
	} else {
		list, err = words.Embedded(opts)
	}
	if err != nil {
		return nil, err
	}
	kept, dropped := list.Stats()
	log.Info().Int("kept", kept).Int("dropped", dropped).Int("length", list.WordLen()).Str("file", cfg.WordsFile).Msg("word list loaded")
	return list, nil
}

// newEngine builds an initialized engine over list.
func newEngine(list *words.List, removeSolved bool) (*solver.Engine, error) {
	eng := solver.New(solver.Options{RemoveSolved: removeSolved, OpeningGuess: cfg.OpeningGuess})
	if err := eng.Initialize(list.Words()); err != nil {
		return nil, err
	}
	return eng, nil
}
