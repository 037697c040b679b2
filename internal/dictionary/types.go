// internal/dictionary/types.go
//
// Response model for the Collegiate dictionary API.
//
// The API answers with a JSON array whose elements are either
//   - structured entries (objects), when the word is known, or
//   - bare suggestion strings, when it is not.
// Item keeps that distinction explicit: callers switch on Kind and never
// inspect raw JSON. An element of any other shape decodes as KindUnknown
// and an object whose fields have unexpected types still decodes as
// KindEntry, so one odd element never fails the whole lookup.

package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemKind tags which variant an Item holds.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindEntry
	KindSuggestion
)

func (k ItemKind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	case KindSuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}

// Entry is the subset of a dictionary entry the validator needs.
type Entry struct {
	Meta            EntryMeta `json:"meta"`
	FunctionalLabel string    `json:"fl"`
	ShortDefs       []string  `json:"shortdef"`
}

// EntryMeta carries the entry identifier (e.g. "bat:1").
type EntryMeta struct {
	ID        string `json:"id"`
	Offensive bool   `json:"offensive"`
}

// Item is one element of the response array.
type Item struct {
	Kind       ItemKind
	Entry      *Entry
	Suggestion string
}

// UnmarshalJSON picks the variant from the JSON token type. It only fails
// on malformed JSON, which the enclosing decoder rejects first.
func (it *Item) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*it = Item{}
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '{':
		// Fields that do decode are kept; type mismatches leave zero values.
		var e Entry
		_ = json.Unmarshal(b, &e)
		*it = Item{Kind: KindEntry, Entry: &e}
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("dictionary: decode suggestion: %w", err)
		}
		*it = Item{Kind: KindSuggestion, Suggestion: s}
	}
	return nil
}

// Response is the decoded body of a lookup.
type Response []Item

// Valid reports whether the first item is a structured entry.
func (r Response) Valid() bool {
	return len(r) > 0 && r[0].Kind == KindEntry
}

// ShortDefinition returns the first short definition of the first entry
// carrying a functional label. Later entries are not consulted when that
// entry has no short definitions.
func (r Response) ShortDefinition() (string, bool) {
	for _, it := range r {
		if it.Kind != KindEntry || it.Entry.FunctionalLabel == "" {
			continue
		}
		if len(it.Entry.ShortDefs) == 0 {
			return "", false
		}
		return it.Entry.ShortDefs[0], true
	}
	return "", false
}

// Suggestions lists the suggestion strings in the response.
func (r Response) Suggestions() []string {
	var out []string
	for _, it := range r {
		if it.Kind == KindSuggestion {
			out = append(out, it.Suggestion)
		}
	}
	return out
}

// Result is the outcome of validating one word.
type Result struct {
	Valid      bool
	definition string
	hasDef     bool
}

// NewResult builds a Result; def is only kept when hasDef is true.
func NewResult(valid bool, def string, hasDef bool) Result {
	if !hasDef {
		def = ""
	}
	return Result{Valid: valid, definition: def, hasDef: hasDef}
}

// Definition returns the short definition, if any.
func (r Result) Definition() (string, bool) { return r.definition, r.hasDef }
