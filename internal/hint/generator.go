// internal/hint/generator.go
//
// Hint generator: picks a candidate the dictionary accepts and masks it.
//
// Sampling draws candidates in a random order without replacement and
// stops at the first word the validator accepts. Attempts are bounded by
// the pool size (and by MaxAttempts when set), so a pool with no
// definable word ends with ErrNoValidWord instead of spinning forever.
// Context cancellation is checked before every lookup.

package hint

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/dictionary"
)

const (
	// NoWordsFound is returned for an empty candidate list.
	NoWordsFound = "No words found."
	// NoValidWordFound is returned when every attempt failed validation.
	NoValidWordFound = "No valid word found."
)

var (
	ErrNoCandidates = errors.New("hint: no candidates")
	ErrNoValidWord  = errors.New("hint: no candidate passed validation")
)

// Hint is a masked, validated word.
type Hint struct {
	Word          string
	Masked        string
	Revealed      int
	Length        int
	Definition    string
	HasDefinition bool
	Attempts      int
}

// String renders the hint for display.
func (h Hint) String() string {
	return Format(h.Masked, h.Length, h.Definition, h.HasDefinition)
}

// Generator produces hints from candidate lists.
type Generator struct {
	Validator   dictionary.Validator
	Rand        Source
	MaxAttempts int // 0 means one attempt per candidate
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the randomness source.
func WithSource(src Source) Option { return func(g *Generator) { g.Rand = src } }

// WithMaxAttempts caps validator calls per hint.
func WithMaxAttempts(n int) Option { return func(g *Generator) { g.MaxAttempts = n } }

// New constructs a Generator around v.
func New(v dictionary.Validator, opts ...Option) *Generator {
	g := &Generator{Validator: v, Rand: cryptoSource{}}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Give returns the display string for a hint.
//   - empty candidates → NoWordsFound, nil
//   - no valid word    → NoValidWordFound, ErrNoValidWord
//   - cancelled ctx    → "", ctx.Err()
func (g *Generator) Give(ctx context.Context, candidates []string) (string, error) {
	h, err := g.Generate(ctx, candidates)
	switch {
	case errors.Is(err, ErrNoCandidates):
		return NoWordsFound, nil
	case errors.Is(err, ErrNoValidWord):
		return NoValidWordFound, err
	case err != nil:
		return "", err
	}
	return h.String(), nil
}

// Generate selects, validates and masks one candidate.
func (g *Generator) Generate(ctx context.Context, candidates []string) (Hint, error) {
	if len(candidates) == 0 {
		return Hint{}, ErrNoCandidates
	}
	src := g.Rand
	if src == nil {
		src = cryptoSource{}
	}

	limit := len(candidates)
	if g.MaxAttempts > 0 && g.MaxAttempts < limit {
		limit = g.MaxAttempts
	}

	order := shuffled(src, len(candidates))
	for attempt := 1; attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return Hint{}, err
		}
		word := candidates[order[attempt-1]]
		res := g.Validator.Validate(ctx, word)
		if !res.Valid {
			log.Debug().Str("word", word).Int("attempt", attempt).Msg("candidate rejected")
			continue
		}
		return g.build(src, word, res, attempt), nil
	}
	if err := ctx.Err(); err != nil {
		return Hint{}, err
	}
	log.Warn().Int("candidates", len(candidates)).Int("attempts", limit).Msg("no candidate passed validation")
	return Hint{}, ErrNoValidWord
}

func (g *Generator) build(src Source, word string, res dictionary.Result, attempts int) Hint {
	n := utf8.RuneCountInString(word)
	revealed := revealCount(src, n)
	def, ok := res.Definition()
	return Hint{
		Word:          word,
		Masked:        Mask(word, revealed),
		Revealed:      revealed,
		Length:        n,
		Definition:    def,
		HasDefinition: ok,
		Attempts:      attempts,
	}
}
