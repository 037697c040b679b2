// internal/config/config.go
//
// Process configuration read from the environment.
// main loads .env first (godotenv), then calls Load.
//
//   PORT                 listen port                       (5175)
//   LOG_LEVEL            zerolog level                     (info)
//   LOG_FORMAT           "console" for human output        (json)
//   LEXICON_FILE         word list path                    (words_alpha.txt)
//   DICTIONARY_BASE_URL  lookup endpoint                   (Collegiate JSON)
//   DICTIONARY_TIMEOUT   per-lookup timeout, 0 = none      (0)
//   HINT_MAX_ATTEMPTS    lookups per hint, 0 = pool size   (0)
//   DB_PATH              SQLite sessions, "" = in-memory   ("")
//   SESSION_SECRET       HMAC key for session cookies
//   SESSION_TTL          session cookie lifetime           (24h)
//   CLIENT_ORIGIN        allowed CORS origin               (http://localhost:5173)
//   RATE_LIMIT_RPS       per-client requests/second        (5)
//   RATE_LIMIT_BURST     per-client burst                  (10)
//
// DICTIONARY_API_KEY is deliberately absent: the dictionary client reads it
// on every call.

package config

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/dictionary"
	"github.com/robalobadob/beehint/internal/lexicon"
)

// devSecret signs cookies when SESSION_SECRET is unset.
const devSecret = "dev_secret_change_me"

// Config holds every tunable of the service.
type Config struct {
	Port              string
	LogLevel          string
	LogFormat         string
	LexiconFile       string
	DictionaryBaseURL string
	DictionaryTimeout time.Duration
	HintMaxAttempts   int
	DBPath            string
	SessionSecret     string
	SessionTTL        time.Duration
	ClientOrigin      string
	RateLimitRPS      int
	RateLimitBurst    int
}

// Load reads Config from the environment.
func Load() Config {
	c := Config{
		Port:              getEnv("PORT", "5175"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		LexiconFile:       getEnv("LEXICON_FILE", lexicon.DefaultPath),
		DictionaryBaseURL: getEnv("DICTIONARY_BASE_URL", dictionary.DefaultBaseURL),
		DictionaryTimeout: getEnvDuration("DICTIONARY_TIMEOUT", 0),
		HintMaxAttempts:   getEnvInt("HINT_MAX_ATTEMPTS", 0),
		DBPath:            os.Getenv("DB_PATH"),
		SessionSecret:     getEnv("SESSION_SECRET", devSecret),
		SessionTTL:        getEnvDuration("SESSION_TTL", 24*time.Hour),
		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RateLimitRPS:      getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 10),
	}
	return c
}

// DevSecret reports whether sessions are signed with the built-in
// development secret.
func (c Config) DevSecret() bool { return c.SessionSecret == devSecret }

// SetupLogging applies LogLevel and LogFormat to the global zerolog logger.
func (c Config) SetupLogging(w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", c.LogLevel).Msg("invalid LOG_LEVEL, keeping default")
	}
	if c.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt reads an int from the environment or returns a fallback.
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}

// getEnvDuration reads a time.Duration from the environment or returns a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Dur("default", fallback).Msg("invalid duration, using default")
		return fallback
	}
	return d
}
