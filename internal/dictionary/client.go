// internal/dictionary/client.go
//
// Word validator backed by the Merriam-Webster Collegiate API.
//
//   GET {base}/{word}?key={api_key}
//
// Every failure (transport, timeout, non-2xx, undecodable body) is folded
// into an invalid Result: the hint generator treats it as "try another
// word", so nothing here returns an error to the caller.
//
// Environment variables (read on every call, not cached):
//   DICTIONARY_API_KEY=<key>

package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the Collegiate JSON reference endpoint.
const DefaultBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json/"

// maxBody bounds how much of a response we read.
const maxBody = 1 << 20

// Validator confirms that a word is real and definable.
type Validator interface {
	Validate(ctx context.Context, word string) Result
}

// Client performs lookups against the dictionary API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	APIKey     func() string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the lookup endpoint (tests, proxies).
func WithBaseURL(u string) Option { return func(c *Client) { c.BaseURL = u } }

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.HTTPClient = hc } }

// WithAPIKey pins the API key instead of reading DICTIONARY_API_KEY.
func WithAPIKey(key string) Option { return func(c *Client) { c.APIKey = func() string { return key } } }

// New constructs a Client with defaults.
func New(opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		APIKey:     func() string { return os.Getenv("DICTIONARY_API_KEY") },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Validate looks word up and reports whether it is a real entry, plus its
// short definition when one is available.
func (c *Client) Validate(ctx context.Context, word string) Result {
	resp, err := c.Lookup(ctx, word)
	if err != nil {
		log.Debug().Err(err).Str("word", word).Msg("dictionary lookup failed")
		return Result{}
	}
	def, ok := resp.ShortDefinition()
	return NewResult(resp.Valid(), def, ok)
}

// Lookup fetches and decodes the raw response for word.
func (c *Client) Lookup(ctx context.Context, word string) (Response, error) {
	u, err := c.lookupURL(word)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	res, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", word, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBody))
		return nil, fmt.Errorf("get %s: status %d", word, res.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBody)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", word, err)
	}
	return out, nil
}

// lookupURL joins base, escaped word and key.
func (c *Client) lookupURL(word string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base + url.PathEscape(word))
	if err != nil {
		return "", fmt.Errorf("parse lookup url: %w", err)
	}
	key := ""
	if c.APIKey != nil {
		key = c.APIKey()
	}
	q := u.Query()
	q.Set("key", key)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Func adapts a plain function to the Validator interface.
type Func func(ctx context.Context, word string) Result

// Validate calls f.
func (f Func) Validate(ctx context.Context, word string) Result { return f(ctx, word) }
