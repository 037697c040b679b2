// internal/httpserver/server.go
//
// HTTP server wiring for the hint service.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     request logging, JSON, CORS, per-client rate limiting).
//   - Public endpoints: "/", "/health".
//   - Puzzle endpoints: GET /words, POST /puzzle, DELETE /puzzle, POST /hint.
//
// Notes:
//   - The server owns the per-client candidate cache (session.State), keyed
//     by a signed session cookie; the core packages stay stateless.
//   - CORS is origin-aware and credentials-enabled so the cookie works from
//     a separate front-end.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/hint"
	"github.com/robalobadob/beehint/internal/lexicon"
	"github.com/robalobadob/beehint/internal/store"
)

// Options tunes the HTTP layer.
type Options struct {
	SessionSecret  string
	SessionTTL     time.Duration
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	HandlerTimeout time.Duration
}

func (o *Options) defaults() {
	if o.SessionTTL <= 0 {
		o.SessionTTL = 24 * time.Hour
	}
	if o.ClientOrigin == "" {
		o.ClientOrigin = "http://localhost:5173"
	}
	if o.HandlerTimeout <= 0 {
		o.HandlerTimeout = 30 * time.Second
	}
}

// Server bundles router, lexicon, hint generator and session store.
type Server struct {
	r       *chi.Mux
	lex     lexicon.Lexicon
	gen     *hint.Generator
	store   store.Store
	tokens  *tokenSigner
	limiter *rateLimiter
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(lex lexicon.Lexicon, gen *hint.Generator, st store.Store, opts Options) *Server {
	opts.defaults()
	s := &Server{
		r:      chi.NewRouter(),
		lex:    lex,
		gen:    gen,
		store:  st,
		tokens: newTokenSigner(opts.SessionSecret, opts.SessionTTL),
		opts:   opts,
	}
	s.limiter = newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(requestIDLogField)
	s.r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, dur time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", size).
			Dur("dur", dur).
			Msg("http")
	}))
	s.r.Use(chimw.Recoverer)
	s.r.Use(timeout(opts.HandlerTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{opts.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "beehint",
			"endpoints": []string{"/health", "GET /words", "POST /puzzle", "DELETE /puzzle", "POST /hint"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": s.lex.Len()})
	})

	// --- puzzle ---
	s.r.Get("/words", s.handleWords)
	s.r.With(s.limiter.middleware).Post("/puzzle", s.handleSetPuzzle)
	s.r.Delete("/puzzle", s.handleClearPuzzle)
	s.r.With(s.limiter.middleware).Post("/hint", s.handleHint)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Start serves on addr until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopSweep := make(chan struct{})
	defer close(stopSweep)
	go s.limiter.sweep(stopSweep, limiterSweep, limiterIdle)

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		log.Info().Msg("shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-idleConnsClosed
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// timeout bounds each request's context by d. When the deadline passes and
// the handler has written nothing, a JSON 504 is sent; a handler that
// already answered keeps its response.
func timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				writeError(ww, http.StatusGatewayTimeout, "timeout", nil)
			}
		})
	}
}

// requestIDLogField tags the request logger with chi's request ID.
func requestIDLogField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	body := map[string]string{"error": code}
	if err != nil {
		body["message"] = err.Error()
	}
	writeJSON(w, status, body)
}
