// internal/puzzle/filter.go
//
// Candidate filter: selects the lexicon words usable in a puzzle.
//
// A word w is a candidate when
//   - every letter of w belongs to the puzzle alphabet,
//   - len(w) >= MinWordLength,
//   - w contains the center letter.
//
// Letter membership is a 26-bit set test. Words holding anything outside
// a–z never match; non a–z runes in the alphabet are ignored.

package puzzle

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/beehint/internal/lexicon"
)

// letterSet has bit i set when letter 'a'+i is present.
type letterSet uint32

// makeLetterSet returns the set of letters in s and whether s was all a–z.
func makeLetterSet(s string) (letterSet, bool) {
	var set letterSet
	ok := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			ok = false
			continue
		}
		set |= 1 << (c - 'a')
	}
	return set, ok
}

// FilterCandidates returns the words of lex usable with the given alphabet
// and center letter. Empty letters or center yield an empty slice.
// The result is sorted, but callers should not depend on ordering.
func FilterCandidates(lex lexicon.Lexicon, letters, center string) []string {
	if letters == "" || center == "" {
		return []string{}
	}
	allowed, _ := makeLetterSet(strings.ToLower(letters))
	center = strings.ToLower(center)

	out := lo.Filter(lo.Keys(lex), func(w string, _ int) bool {
		if len(w) < MinWordLength || !strings.Contains(w, center) {
			return false
		}
		set, ok := makeLetterSet(w)
		return ok && set&^allowed == 0
	})
	sort.Strings(out)
	return out
}

// Candidates filters lex for this puzzle.
func (l Letters) Candidates(lex lexicon.Lexicon) []string {
	return FilterCandidates(lex, l.All(), l.CenterString())
}

// IsPangram reports whether w uses every letter of the alphabet at least once.
func IsPangram(w, letters string) bool {
	want, _ := makeLetterSet(strings.ToLower(letters))
	got, ok := makeLetterSet(strings.ToLower(w))
	return ok && want != 0 && got == want
}

// Pangrams returns the candidates that use every puzzle letter.
func (l Letters) Pangrams(candidates []string) []string {
	all := l.All()
	return lo.Filter(candidates, func(w string, _ int) bool {
		return IsPangram(w, all)
	})
}
