// internal/puzzle/letters.go
//
// Puzzle letters: one mandatory center letter plus six outer letters.
// Parse normalizes raw user input (trim + lowercase) and enforces the
// lengths; duplicate letters are tolerated.

package puzzle

import (
	"errors"
	"strings"
)

const (
	// OuterCount is the number of outer letters in a puzzle.
	OuterCount = 6
	// MinWordLength is the shortest word a puzzle accepts.
	MinWordLength = 4
)

var (
	ErrCenterLength = errors.New("center letter must be exactly 1 character")
	ErrOuterLength  = errors.New("outer letters must be exactly 6 characters")
	ErrNotLetter    = errors.New("letters must be a-z")
)

// Letters is a validated puzzle alphabet.
type Letters struct {
	Center byte
	Outer  string
}

// Parse validates center and outer input.
func Parse(center, outer string) (Letters, error) {
	center = strings.ToLower(strings.TrimSpace(center))
	outer = strings.ToLower(strings.TrimSpace(outer))
	if len(center) != 1 {
		return Letters{}, ErrCenterLength
	}
	if len(outer) != OuterCount {
		return Letters{}, ErrOuterLength
	}
	if !isAlpha(center) || !isAlpha(outer) {
		return Letters{}, ErrNotLetter
	}
	return Letters{Center: center[0], Outer: outer}, nil
}

// All returns the 7-letter alphabet, center first.
func (l Letters) All() string { return string(l.Center) + l.Outer }

// CenterString returns the center letter as a string.
func (l Letters) CenterString() string { return string(l.Center) }

// Key identifies a letter set for caching; equal keys yield equal candidates.
func (l Letters) Key() string { return l.All() }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
