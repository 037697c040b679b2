// internal/httpserver/session.go
//
// Session cookie handling. The cookie carries an HS256 JWT whose subject is
// the session ID; the candidate cache itself lives in the store.

package httpserver

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookieName = "beehint_session"

var errNoSession = errors.New("no session")

type tokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func newTokenSigner(secret string, ttl time.Duration) *tokenSigner {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	return &tokenSigner{secret: []byte(secret), ttl: ttl}
}

// newSessionID returns a fresh random session identifier.
func newSessionID() string { return uuid.NewString() }

// sign creates a token for sid and returns it with its expiry.
func (t *tokenSigner) sign(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse validates a token and returns its session ID.
func (t *tokenSigner) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errNoSession
	}
	return claims.Subject, nil
}

// sessionID extracts and validates the caller's session, if any.
func (s *Server) sessionID(r *http.Request) (string, error) {
	tok := bearerOrCookie(r)
	if tok == "" {
		return "", errNoSession
	}
	return s.tokens.parse(tok)
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := os.Getenv("APP_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// clearSessionCookie deletes the session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
