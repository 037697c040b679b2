// internal/lexicon/lexicon.go
//
// Word list management for the hint generator.
//
// Responsibilities:
//   - Load a flat, whitespace-delimited word list into an in-memory set.
//   - Keep one process-wide copy loaded from LEXICON_FILE (Init / Default).
//   - Supply small lookup helpers (Contains, Len, Words).
//
// Word list:
//   - Any whitespace separates tokens (newlines, spaces, tabs).
//   - Tokens are lowercased; duplicates collapse.
//   - There is no embedded fallback: a missing file is fatal for callers.
//
// Environment variables:
//   LEXICON_FILE=/path/to/words_alpha.txt

package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultPath is used when LEXICON_FILE is unset.
const DefaultPath = "words_alpha.txt"

// Lexicon is an immutable set of lowercase words.
type Lexicon map[string]struct{}

var (
	initOnce   sync.Once
	loaded     Lexicon
	initialErr error
)

// Init loads the process-wide lexicon exactly once.
// An empty path falls back to LEXICON_FILE, then DefaultPath.
func Init(path string) error {
	initOnce.Do(func() {
		if path == "" {
			path = os.Getenv("LEXICON_FILE")
		}
		if path == "" {
			path = DefaultPath
		}
		loaded, initialErr = Load(path)
		if initialErr == nil {
			log.Info().Str("path", path).Int("words", loaded.Len()).Msg("lexicon loaded")
		}
	})
	return initialErr
}

// Default returns the lexicon loaded by Init, or nil if Init has not succeeded.
func Default() Lexicon {
	return loaded
}

// Load reads every whitespace-separated token of the file at path.
// Errors from opening or reading the file are wrapped, so callers can
// test them with errors.Is(err, fs.ErrNotExist) and friends.
func Load(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()

	lex, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return lex, nil
}

// Read builds a Lexicon from r.
func Read(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		lex[strings.ToLower(sc.Text())] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// FromWords builds a Lexicon from an in-memory list (lowercased).
func FromWords(words ...string) Lexicon {
	lex := make(Lexicon, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lex[w] = struct{}{}
		}
	}
	return lex
}

// Contains reports whether w is in the lexicon (case-insensitive).
func (l Lexicon) Contains(w string) bool {
	_, ok := l[strings.ToLower(w)]
	return ok
}

// Len returns the number of distinct words.
func (l Lexicon) Len() int { return len(l) }

// Words returns the words in sorted order.
func (l Lexicon) Words() []string {
	out := make([]string, 0, len(l))
	for w := range l {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
