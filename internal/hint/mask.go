// internal/hint/mask.go
//
// Masking and formatting of a chosen word.
//
//   mask("honey", 2)              → "ho___"
//   Format("ho___", 5, "", false) → "ho___ (Length: 5)"
//   Format("ho___", 5, "a sweet liquid", true)
//                                 → "ho___ (a sweet liquid) (Length: 5)"

package hint

import (
	"fmt"
	"strings"
)

// Blank replaces hidden letters.
const Blank = '_'

// Mask keeps the first revealed runes of word and blanks the rest.
// revealed is clamped to [0, len(word)].
func Mask(word string, revealed int) string {
	rs := []rune(word)
	if revealed < 0 {
		revealed = 0
	}
	if revealed > len(rs) {
		revealed = len(rs)
	}
	var b strings.Builder
	b.Grow(len(rs))
	for i, r := range rs {
		if i < revealed {
			b.WriteRune(r)
		} else {
			b.WriteRune(Blank)
		}
	}
	return b.String()
}

// revealCount picks how many leading letters to show: uniform in [1, n-1].
// Words shorter than 2 letters cannot hide and reveal at once; they are
// returned fully revealed. The candidate filter never yields such words.
func revealCount(src Source, n int) int {
	if n < 2 {
		return n
	}
	return 1 + src.Intn(n-1)
}

// Format renders a masked word with its optional definition and length.
func Format(masked string, length int, def string, hasDef bool) string {
	if hasDef {
		return fmt.Sprintf("%s (%s) (Length: %d)", masked, def, length)
	}
	return fmt.Sprintf("%s (Length: %d)", masked, length)
}
