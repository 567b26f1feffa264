// Package session tracks the per-browser "intro shown" flag.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CookieName carries the session id.
const CookieName = "petra_session"

const defaultSize = 4096

// Store keeps the intro flag of recently seen sessions. Sessions evicted from
// the cache simply see the splash again.
type Store struct {
	cache  *lru.Cache[string, bool]
	secure bool
}

// Options configures a Store.
type Options struct {
	Size         int
	SecureCookie bool
}

// NewStore constructs a bounded Store.
func NewStore(opts Options) (*Store, error) {
	size := opts.Size
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New[string, bool](size)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &Store{cache: c, secure: opts.SecureCookie}, nil
}

// IntroShown reports whether the session already passed the splash.
func (s *Store) IntroShown(id string) bool {
	if id == "" {
		return false
	}
	v, ok := s.cache.Get(id)
	return ok && v
}

// MarkIntroShown sets the flag; it is never cleared for the session.
func (s *Store) MarkIntroShown(id string) {
	if id == "" {
		return
	}
	s.cache.Add(id, true)
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int { return s.cache.Len() }

// ID returns the session id of r, issuing a new cookie when absent.
func (s *Store) ID(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && validID(c.Value) {
		return c.Value, nil
	}
	id, err := NewID()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}

// NewID returns 16 random bytes hex-encoded.
func NewID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

func validID(s string) bool {
	if len(s) != 32 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
