package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/config"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/store"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, st, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().
		Int("kept", st.Kept).
		Int("wrongShape", st.WrongShape).
		Int("duplicates", st.Duplicates).
		Str("file", cfg.WordsFile).
		Msg("word list loaded")

	gen, err := game.NewGenerator(list, cfg.WordLength, cfg.MaxAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build puzzles")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go mem.RunSweeper(ctx, time.Minute, cfg.SessionTTL, func(n int) {
		log.Debug().Int("evicted", n).Msg("swept idle sessions")
	})

	srv := httpserver.New(mem, gen, httpserver.Options{
		Secret:        cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		CookieName:    cfg.CookieName,
		SecureCookies: cfg.SecureCookies,
		ClientOrigin:  cfg.ClientOrigin,
		DailySalt:     cfg.DailySalt,
	}, log.Logger)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Int("wordLength", cfg.WordLength).Int("maxAttempts", cfg.MaxAttempts).Msg("starting go-puzzle")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}
