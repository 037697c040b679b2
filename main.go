package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/config"
	"github.com/robalobadob/beehint/internal/dictionary"
	"github.com/robalobadob/beehint/internal/hint"
	"github.com/robalobadob/beehint/internal/httpserver"
	"github.com/robalobadob/beehint/internal/lexicon"
	"github.com/robalobadob/beehint/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)
	if cfg.DevSecret() {
		log.Warn().Msg("SESSION_SECRET not set, using development secret")
	}

	if err := lexicon.Init(cfg.LexiconFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load lexicon")
	}

	dict := dictionary.New(
		dictionary.WithBaseURL(cfg.DictionaryBaseURL),
		dictionary.WithHTTPClient(&http.Client{Timeout: cfg.DictionaryTimeout}),
	)
	gen := hint.New(dict, hint.WithMaxAttempts(cfg.HintMaxAttempts))

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open session store")
	}
	defer st.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pruneSessions(ctx, st, cfg.SessionTTL)

	srv := httpserver.New(lexicon.Default(), gen, st, httpserver.Options{
		SessionSecret:  cfg.SessionSecret,
		SessionTTL:     cfg.SessionTTL,
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	log.Info().Str("port", cfg.Port).Msg("starting beehint")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// pruneSessions drops sessions older than ttl until ctx is done.
func pruneSessions(ctx context.Context, st store.Store, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := st.Prune(ctx, now.Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("prune sessions")
				continue
			}
			if n > 0 {
				log.Info().Int("removed", n).Msg("pruned sessions")
			}
		}
	}
}
