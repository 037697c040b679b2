package hint

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/dictionary"
)

func acceptAll(def string) dictionary.Validator {
	return dictionary.Func(func(ctx context.Context, word string) dictionary.Result {
		return dictionary.NewResult(true, def, def != "")
	})
}

func TestGiveEmpty(t *testing.T) {
	g := New(acceptAll(""))
	for _, in := range [][]string{nil, {}} {
		got, err := g.Give(context.Background(), in)
		if err != nil || got != NoWordsFound {
			t.Errorf("Give(%v) = (%q, %v), want (%q, nil)", in, got, err, NoWordsFound)
		}
	}
}

func TestMask(t *testing.T) {
	cases := []struct {
		word     string
		revealed int
		want     string
	}{
		{"honey", 1, "h____"},
		{"honey", 4, "hone_"},
		{"honey", 0, "_____"},
		{"honey", 9, "honey"},
		{"honey", -1, "_____"},
		{"", 1, ""},
	}
	for _, tc := range cases {
		if got := Mask(tc.word, tc.revealed); got != tc.want {
			t.Errorf("Mask(%q, %d) = %q, want %q", tc.word, tc.revealed, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got, want := Format("ba_", 3, "", false), "ba_ (Length: 3)"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	if got, want := Format("ba_", 3, "a flying mammal", true), "ba_ (a flying mammal) (Length: 3)"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

// The masked prefix matches the word, the rest is blank, and at least one
// letter is shown and one hidden.
func TestGenerateMaskRoundTrip(t *testing.T) {
	words := []string{"abcd", "abcde", "honeycomb", "beehive"}
	g := New(acceptAll(""), WithSource(rand.New(rand.NewSource(7))))
	for i := 0; i < 200; i++ {
		h, err := g.Generate(context.Background(), words)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		n := len(h.Word)
		if h.Length != n {
			t.Fatalf("Length = %d, want %d", h.Length, n)
		}
		if h.Revealed < 1 || h.Revealed > n-1 {
			t.Fatalf("Revealed = %d out of [1, %d]", h.Revealed, n-1)
		}
		if h.Masked[:h.Revealed] != h.Word[:h.Revealed] {
			t.Fatalf("prefix %q does not match %q", h.Masked[:h.Revealed], h.Word)
		}
		if rest := h.Masked[h.Revealed:]; strings.Trim(rest, "_") != "" {
			t.Fatalf("suffix %q is not all blanks", rest)
		}
		if !strings.HasSuffix(h.String(), " (Length: "+strconv.Itoa(n)+")") {
			t.Fatalf("String() = %q lacks length annotation", h.String())
		}
	}
}

func TestGiveIncludesDefinition(t *testing.T) {
	g := New(acceptAll("a flying mammal"), WithSource(rand.New(rand.NewSource(1))))
	got, err := g.Give(context.Background(), []string{"bats"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "b") || !strings.HasSuffix(got, " (a flying mammal) (Length: 4)") {
		t.Errorf("Give = %q", got)
	}
}

func TestGenerateSkipsInvalid(t *testing.T) {
	calls := map[string]int{}
	v := dictionary.Func(func(ctx context.Context, word string) dictionary.Result {
		calls[word]++
		return dictionary.NewResult(word == "good", "", false)
	})
	g := New(v, WithSource(rand.New(rand.NewSource(3))))
	h, err := g.Generate(context.Background(), []string{"badd", "good", "nope", "zzzz"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if h.Word != "good" {
		t.Errorf("Word = %q, want good", h.Word)
	}
	for w, n := range calls {
		if n > 1 {
			t.Errorf("%q validated %d times, want at most once", w, n)
		}
	}
	if h.Attempts != len(calls) {
		t.Errorf("Attempts = %d, validator calls = %d", h.Attempts, len(calls))
	}
}

func TestGenerateTerminatesWhenNothingValidates(t *testing.T) {
	calls := 0
	v := dictionary.Func(func(ctx context.Context, word string) dictionary.Result {
		calls++
		return dictionary.Result{}
	})
	pool := []string{"aaaa", "bbbb", "cccc"}
	g := New(v)
	got, err := g.Give(context.Background(), pool)
	if !errors.Is(err, ErrNoValidWord) {
		t.Fatalf("err = %v, want ErrNoValidWord", err)
	}
	if got != NoValidWordFound {
		t.Errorf("Give = %q, want %q", got, NoValidWordFound)
	}
	if calls != len(pool) {
		t.Errorf("validator calls = %d, want %d", calls, len(pool))
	}
}

func TestGenerateMaxAttempts(t *testing.T) {
	calls := 0
	v := dictionary.Func(func(ctx context.Context, word string) dictionary.Result {
		calls++
		return dictionary.Result{}
	})
	g := New(v, WithMaxAttempts(2))
	if _, err := g.Generate(context.Background(), []string{"aaaa", "bbbb", "cccc", "dddd"}); !errors.Is(err, ErrNoValidWord) {
		t.Fatalf("err = %v, want ErrNoValidWord", err)
	}
	if calls != 2 {
		t.Errorf("validator calls = %d, want 2", calls)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	v := dictionary.Func(func(ctx context.Context, word string) dictionary.Result {
		cancel()
		return dictionary.Result{}
	})
	_, err := New(v).Give(ctx, []string{"aaaa", "bbbb", "cccc"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRevealCountShortWords(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	if got := revealCount(src, 1); got != 1 {
		t.Errorf("revealCount(1) = %d, want 1", got)
	}
	if got := revealCount(src, 0); got != 0 {
		t.Errorf("revealCount(0) = %d, want 0", got)
	}
	if got := revealCount(src, 2); got != 1 {
		t.Errorf("revealCount(2) = %d, want 1", got)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	idx := shuffled(rand.New(rand.NewSource(42)), 10)
	seen := make(map[int]bool)
	for _, i := range idx {
		if i < 0 || i >= 10 || seen[i] {
			t.Fatalf("shuffled = %v is not a permutation", idx)
		}
		seen[i] = true
	}
}

func TestCryptoSourceReadFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	src := cryptoSource{r: iotest.ErrReader(errors.New("entropy unavailable"))}
	for i := 0; i < 20; i++ {
		if got := src.Intn(7); got < 0 || got >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", got)
		}
	}
	if !strings.Contains(buf.String(), "entropy unavailable") || !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("read failure not logged at warn: %q", buf.String())
	}
}
