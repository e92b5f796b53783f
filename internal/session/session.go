// Package session carries the session token between the server and the
// browser in an HttpOnly cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
)

//go:generate mockgen -source=session.go -destination=../mock/session_mock.go -package=mock

var (
	ErrNoSession     = errors.New("no session cookie")
	ErrEmptyToken    = errors.New("session token is empty")
	ErrInvalidCookie = errors.New("invalid session cookie")
)

// Store attaches, clears and reads the session token of a request.
type Store interface {
	Set(w http.ResponseWriter, token string) error
	Clear(w http.ResponseWriter) error
	Read(r *http.Request) (string, error)
}

// CookieStore is a [Store] backed by a single cookie. HttpOnly is always set.
type CookieStore struct {
	name     string
	path     string
	domain   string
	secure   bool
	sameSite http.SameSite
	maxAge   time.Duration
	now      func() time.Time
}

// NewCookieStore builds a CookieStore from the cookie settings. maxAge is
// normally the token lifetime so that the browser drops the cookie when the
// token expires.
func NewCookieStore(cfg config.Cookie, maxAge time.Duration) (*CookieStore, error) {
	sameSite, err := parseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	store := &CookieStore{
		name:     cfg.Name,
		path:     cfg.Path,
		domain:   cfg.Domain,
		secure:   !cfg.Insecure,
		sameSite: sameSite,
		maxAge:   maxAge,
		now:      time.Now,
	}

	// probe the attributes once so that a bad name or domain fails at startup
	if err := store.cookie("probe", maxAge).Valid(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	return store, nil
}

// Name returns the cookie name.
func (s *CookieStore) Name() string {
	return s.name
}

// Set attaches token to the response.
func (s *CookieStore) Set(w http.ResponseWriter, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	cookie := s.cookie(token, s.maxAge)
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

// Clear instructs the browser to drop the session cookie. It is safe to call
// when no cookie was ever set.
func (s *CookieStore) Clear(w http.ResponseWriter) error {
	cookie := s.cookie("", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

// Read returns the session token sent with r, or ErrNoSession.
func (s *CookieStore) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	return cookie.Value, nil
}

func (s *CookieStore) cookie(value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     s.path,
		Domain:   s.domain,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: s.sameSite,
	}

	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
		cookie.Expires = s.now().Add(maxAge).UTC()
	}

	return cookie
}

func parseSameSite(mode string) (http.SameSite, error) {
	switch strings.ToLower(mode) {
	case config.SameSiteStrict, "":
		return http.SameSiteStrictMode, nil
	case config.SameSiteLax:
		return http.SameSiteLaxMode, nil
	case config.SameSiteNone:
		return http.SameSiteNoneMode, nil
	default:
		return http.SameSiteDefaultMode, fmt.Errorf("%w: unknown same-site mode %q", ErrInvalidCookie, mode)
	}
}
