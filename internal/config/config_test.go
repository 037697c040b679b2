package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/dictionary"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LEXICON_FILE", "DICTIONARY_BASE_URL", "DICTIONARY_TIMEOUT",
		"HINT_MAX_ATTEMPTS", "DB_PATH", "SESSION_TTL", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "5175" {
		t.Errorf("Port = %q", c.Port)
	}
	if c.LexiconFile != "words_alpha.txt" {
		t.Errorf("LexiconFile = %q", c.LexiconFile)
	}
	if c.DictionaryBaseURL != dictionary.DefaultBaseURL {
		t.Errorf("DictionaryBaseURL = %q", c.DictionaryBaseURL)
	}
	if c.DictionaryTimeout != 0 || c.HintMaxAttempts != 0 || c.DBPath != "" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.SessionTTL != 24*time.Hour || c.RateLimitRPS != 5 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DICTIONARY_TIMEOUT", "3s")
	t.Setenv("HINT_MAX_ATTEMPTS", "25")
	t.Setenv("DB_PATH", "./data/sessions.db")
	c := Load()
	if c.Port != "9000" || c.DictionaryTimeout != 3*time.Second || c.HintMaxAttempts != 25 || c.DBPath != "./data/sessions.db" {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("TEST_INT", "notanint")
	if got := getEnvInt("TEST_INT", 8); got != 8 {
		t.Errorf("getEnvInt fallback = %d, want 8", got)
	}
	t.Setenv("TEST_DURATION", "notaduration")
	if got := getEnvDuration("TEST_DURATION", 3*time.Second); got != 3*time.Second {
		t.Errorf("getEnvDuration fallback = %v, want 3s", got)
	}
	t.Setenv("TEST_STR", "")
	if got := getEnv("TEST_STR", "def"); got != "def" {
		t.Errorf("getEnv fallback = %q, want def", got)
	}
}

func TestLoadDoesNotLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	t.Setenv("SESSION_SECRET", "")
	c := Load()
	if !c.DevSecret() {
		t.Errorf("DevSecret() = false with SESSION_SECRET unset")
	}
	if buf.Len() != 0 {
		t.Errorf("Load logged %q before logging was configured", buf.String())
	}

	t.Setenv("SESSION_SECRET", "s3cret")
	if Load().DevSecret() {
		t.Errorf("DevSecret() = true with SESSION_SECRET set")
	}
}

func TestSetupLoggingLevel(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prev := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prev
	})

	var buf bytes.Buffer
	Config{LogLevel: "warn", LogFormat: "json"}.SetupLogging(&buf)
	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
	log.Warn().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("warn not logged: %q", buf.String())
	}
}
