// Command wordle plays the puzzle in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/config"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/tty"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/words"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordle: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	// validated below, after flag overrides
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	wordsFile := flag.String("words", cfg.WordsFile, "newline-delimited dictionary (default: embedded list)")
	length := flag.Int("length", cfg.WordLength, "word length in letters")
	attempts := flag.Int("attempts", cfg.MaxAttempts, "maximum number of guesses")
	seed := flag.String("seed-word", "", "debug: use this dictionary word as the first solution")
	noColor := flag.Bool("no-color", false, "disable colored tiles")
	flag.Parse()

	cfg.WordsFile, cfg.WordLength, cfg.MaxAttempts = *wordsFile, *length, *attempts
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}
	log.Logger = logger

	list, st, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return err
	}
	logger.Debug().Int("kept", st.Kept).Int("wrongShape", st.WrongShape).Msg("word list loaded")

	gen, err := game.NewGenerator(list, cfg.WordLength, cfg.MaxAttempts)
	if err != nil {
		if errors.Is(err, game.ErrEmptyDictionary) {
			return fmt.Errorf("no %d-letter words in dictionary: %w", cfg.WordLength, err)
		}
		return err
	}

	sess := game.NewSession(gen)
	if *seed != "" {
		p, err := gen.WithSolution(*seed)
		if err != nil {
			return err
		}
		sess = game.NewSessionWith(gen, p)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	color := !*noColor && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Printf("Guess the %d-letter word. You have %d attempts. Type %s to quit.\n",
		cfg.WordLength, cfg.MaxAttempts, tty.QuitCommand)

	err = tty.Play(ctx, sess, os.Stdin, os.Stdout, tty.Options{Color: color, Log: logger})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
