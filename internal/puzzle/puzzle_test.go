package puzzle

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/beehint/internal/lexicon"
)

func TestFilterCandidatesExample(t *testing.T) {
	lex := lexicon.FromWords("abcd", "abcde", "cab", "ab")
	got := FilterCandidates(lex, "abcdef", "a")
	want := []string{"abcd", "abcde"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterCandidates = %v, want %v", got, want)
	}
}

func TestFilterCandidatesEmptyInput(t *testing.T) {
	lex := lexicon.FromWords("abcd", "abcde")
	cases := []struct {
		name, letters, center string
	}{
		{"empty letters", "", "a"},
		{"empty center", "abcdef", ""},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCandidates(lex, tc.letters, tc.center)
			if got == nil || len(got) != 0 {
				t.Errorf("FilterCandidates(%q, %q) = %#v, want empty slice", tc.letters, tc.center, got)
			}
		})
	}
}

func TestFilterCandidatesPredicate(t *testing.T) {
	lex := lexicon.FromWords(
		"piano", "pain", "pina", "nape", "apion", "pinion", "onion",
		"pan", "zapping", "pia", "o'pain", "panini",
	)
	letters, center := "aiponlm", "a"
	got := FilterCandidates(lex, letters, center)
	for _, w := range got {
		if len(w) < MinWordLength {
			t.Errorf("%q shorter than %d", w, MinWordLength)
		}
		if !strings.Contains(w, center) {
			t.Errorf("%q lacks center %q", w, center)
		}
		for _, r := range w {
			if !strings.ContainsRune(letters, r) {
				t.Errorf("%q uses %q outside %q", w, r, letters)
			}
		}
	}
	want := []string{"apion", "pain", "panini", "piano", "pina"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterCandidates = %v, want %v", got, want)
	}
}

func TestFilterCandidatesCaseNormalized(t *testing.T) {
	lex := lexicon.FromWords("abcd")
	if got := FilterCandidates(lex, "ABCDEF", "A"); len(got) != 1 {
		t.Errorf("FilterCandidates with uppercase input = %v, want [abcd]", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name, center, outer string
		want                Letters
		err                 error
	}{
		{"ok", "a", "bcdefg", Letters{Center: 'a', Outer: "bcdefg"}, nil},
		{"normalized", " A ", "BCDEFG ", Letters{Center: 'a', Outer: "bcdefg"}, nil},
		{"duplicates tolerated", "a", "aabbcc", Letters{Center: 'a', Outer: "aabbcc"}, nil},
		{"empty center", "", "bcdefg", Letters{}, ErrCenterLength},
		{"long center", "ab", "bcdefg", Letters{}, ErrCenterLength},
		{"short outer", "a", "bcdef", Letters{}, ErrOuterLength},
		{"long outer", "a", "bcdefgh", Letters{}, ErrOuterLength},
		{"digit", "a", "bcdef1", Letters{}, ErrNotLetter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.center, tc.outer)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse err = %v, want %v", err, tc.err)
			}
			if got != tc.want {
				t.Errorf("Parse = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLettersCandidatesAndPangrams(t *testing.T) {
	l, err := Parse("a", "bcdefg")
	if err != nil {
		t.Fatal(err)
	}
	if l.All() != "abcdefg" {
		t.Errorf("All() = %q", l.All())
	}
	lex := lexicon.FromWords("abcdefg", "gabfedc", "bead", "feed", "cafe")
	cands := l.Candidates(lex)
	if want := []string{"abcdefg", "bead", "cafe", "gabfedc"}; !reflect.DeepEqual(cands, want) {
		t.Errorf("Candidates = %v, want %v", cands, want)
	}
	if got, want := l.Pangrams(cands), []string{"abcdefg", "gabfedc"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pangrams = %v, want %v", got, want)
	}
}
