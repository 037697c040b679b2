// internal/session/state.go
//
// Per-caller candidate cache.
//
// The core filter is pure; front-ends that want to avoid refiltering the
// lexicon on every hint hold a State and call Refresh with the current
// letters. State is a single-entry cache keyed by the 7-letter alphabet:
// changing the letters recomputes, repeating them reuses the list.

package session

import (
	"time"

	"github.com/robalobadob/beehint/internal/lexicon"
	"github.com/robalobadob/beehint/internal/puzzle"
)

// State is the cached candidate list for one caller.
type State struct {
	ID          string    `json:"id"`
	LastLetters string    `json:"lastLetters"` // center first, then outer
	Candidates  []string  `json:"candidates"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Refresh returns the candidates for l, recomputing only when the letters
// differ from the cached ones. It reports whether a recompute happened.
func (s *State) Refresh(lex lexicon.Lexicon, l puzzle.Letters) ([]string, bool) {
	if s.Candidates != nil && s.LastLetters == l.Key() {
		return s.Candidates, false
	}
	s.Candidates = l.Candidates(lex)
	s.LastLetters = l.Key()
	s.UpdatedAt = time.Now().UTC()
	return s.Candidates, true
}

// Letters parses the cached alphabet back into puzzle letters.
func (s *State) Letters() (puzzle.Letters, error) {
	if len(s.LastLetters) == 0 {
		return puzzle.Parse("", "")
	}
	return puzzle.Parse(s.LastLetters[:1], s.LastLetters[1:])
}
