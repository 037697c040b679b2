// internal/httpserver/handlers.go
//
// Puzzle routes.
//   - GET    /words?center=a&outer=bcdefg → candidate list (no session)
//   - POST   /puzzle {center, outer}      → store letters + candidates in a session
//   - DELETE /puzzle                      → forget the session
//   - POST   /hint   [{center, outer}]    → hint from the session (or the body letters)

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/beehint/internal/hint"
	"github.com/robalobadob/beehint/internal/puzzle"
	"github.com/robalobadob/beehint/internal/session"
	"github.com/robalobadob/beehint/internal/store"
)

// lettersReq is the body of POST /puzzle and (optionally) POST /hint.
type lettersReq struct {
	Center string `json:"center"`
	Outer  string `json:"outer"`
}

func (l lettersReq) empty() bool { return l.Center == "" && l.Outer == "" }

type wordsRes struct {
	Center   string   `json:"center"`
	Outer    string   `json:"outer"`
	Count    int      `json:"count"`
	Words    []string `json:"words"`
	Pangrams []string `json:"pangrams"`
}

type puzzleRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Center    string `json:"center"`
	Outer     string `json:"outer"`
	Count     int    `json:"count"`
}

type hintRes struct {
	Hint  string `json:"hint"`
	Found bool   `json:"found"`
}

// handleWords returns every candidate for the query letters.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	l, err := puzzle.Parse(q.Get("center"), q.Get("outer"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_letters", err)
		return
	}
	words := l.Candidates(s.lex)
	writeJSON(w, http.StatusOK, wordsRes{
		Center:   l.CenterString(),
		Outer:    l.Outer,
		Count:    len(words),
		Words:    words,
		Pangrams: l.Pangrams(words),
	})
}

// handleSetPuzzle stores letters for the caller's session, creating one if needed.
func (s *Server) handleSetPuzzle(w http.ResponseWriter, r *http.Request) {
	var req lettersReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	l, err := puzzle.Parse(req.Center, req.Outer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_letters", err)
		return
	}

	st := s.loadOrNewSession(r)
	cands, recomputed := st.Refresh(s.lex, l)
	st.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(r.Context(), st); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	tok, exp, err := s.tokens.sign(st.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed", nil)
		return
	}
	setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Debug().
		Str("session", st.ID).Str("letters", l.Key()).
		Int("candidates", len(cands)).Bool("recomputed", recomputed).
		Msg("puzzle set")

	writeJSON(w, http.StatusOK, puzzleRes{
		SessionID: st.ID,
		Token:     tok,
		Center:    l.CenterString(),
		Outer:     l.Outer,
		Count:     len(cands),
	})
}

// handleClearPuzzle drops the caller's session.
func (s *Server) handleClearPuzzle(w http.ResponseWriter, r *http.Request) {
	if sid, err := s.sessionID(r); err == nil {
		if err := s.store.Delete(r.Context(), sid); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("delete session")
		}
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleHint produces one hint.
//   - Body letters present: use them (and refresh the session cache if any).
//   - Otherwise: use the session's cached candidates.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req lettersReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}

	var cands []string
	switch {
	case !req.empty():
		l, err := puzzle.Parse(req.Center, req.Outer)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_letters", err)
			return
		}
		cands = s.candidatesFor(r, l)
	default:
		sid, err := s.sessionID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "no_puzzle", errors.New("set letters with POST /puzzle or send center and outer"))
			return
		}
		st, err := s.store.Get(r.Context(), sid)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", nil)
			return
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("load session")
			writeError(w, http.StatusInternalServerError, "load_failed", nil)
			return
		}
		cands = st.Candidates
	}

	text, err := s.gen.Give(r.Context(), cands)
	switch {
	case errors.Is(err, hint.ErrNoValidWord):
		writeJSON(w, http.StatusOK, hintRes{Hint: text, Found: false})
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timeout", nil)
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "canceled", nil)
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("generate hint")
		writeError(w, http.StatusInternalServerError, "hint_failed", nil)
	default:
		writeJSON(w, http.StatusOK, hintRes{Hint: text, Found: len(cands) > 0})
	}
}

// candidatesFor filters for l, going through the caller's session cache
// when one exists.
func (s *Server) candidatesFor(r *http.Request, l puzzle.Letters) []string {
	sid, err := s.sessionID(r)
	if err != nil {
		return l.Candidates(s.lex)
	}
	st, err := s.store.Get(r.Context(), sid)
	if err != nil {
		return l.Candidates(s.lex)
	}
	cands, recomputed := st.Refresh(s.lex, l)
	if recomputed {
		st.UpdatedAt = time.Now().UTC()
		if err := s.store.Save(r.Context(), st); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("save session")
		}
	}
	return cands
}

// loadOrNewSession returns the caller's stored session or a fresh one.
func (s *Server) loadOrNewSession(r *http.Request) session.State {
	if sid, err := s.sessionID(r); err == nil {
		if st, err := s.store.Get(r.Context(), sid); err == nil {
			return st
		}
	}
	return session.State{ID: newSessionID()}
}
