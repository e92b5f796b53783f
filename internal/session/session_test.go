package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCookieConfig() config.Cookie {
	return config.Cookie{
		Name:     "token",
		Path:     "/",
		SameSite: config.SameSiteStrict,
	}
}

func newTestStore(t *testing.T, cfg config.Cookie) *CookieStore {
	t.Helper()
	store, err := NewCookieStore(cfg, time.Hour)
	require.NoError(t, err)
	store.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return store
}

func TestCookieStore_Set(t *testing.T) {
	store := newTestStore(t, defaultCookieConfig())
	w := httptest.NewRecorder()

	require.NoError(t, store.Set(w, "abc.def.ghi"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "abc.def.ghi", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC).Equal(c.Expires), "unexpected expiry %v", c.Expires)
}

func TestCookieStore_Set_Attributes(t *testing.T) {
	cfg := defaultCookieConfig()
	cfg.Name = "sid"
	cfg.Domain = "example.com"
	cfg.Insecure = true
	cfg.SameSite = config.SameSiteLax

	store := newTestStore(t, cfg)
	w := httptest.NewRecorder()

	require.NoError(t, store.Set(w, "value"))

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "sid=value")
	assert.Contains(t, header, "Domain=example.com")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.NotContains(t, header, "Secure")
}

func TestCookieStore_Set_EmptyToken(t *testing.T) {
	store := newTestStore(t, defaultCookieConfig())
	w := httptest.NewRecorder()

	assert.ErrorIs(t, store.Set(w, ""), ErrEmptyToken)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestCookieStore_Clear(t *testing.T) {
	store := newTestStore(t, defaultCookieConfig())

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	require.NoError(t, store.Clear(first))
	require.NoError(t, store.Clear(second))

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.Contains(t, first.Header().Get("Set-Cookie"), "Max-Age=0")

	// clearing is idempotent
	assert.Equal(t, first.Header().Get("Set-Cookie"), second.Header().Get("Set-Cookie"))
}

func TestCookieStore_Read(t *testing.T) {
	store := newTestStore(t, defaultCookieConfig())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "abc"})

	token, err := store.Read(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestCookieStore_Read_Missing(t *testing.T) {
	store := newTestStore(t, defaultCookieConfig())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "other", Value: "abc"})

	_, err := store.Read(r)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestNewCookieStore_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Cookie
	}{
		{name: "bad same-site", cfg: config.Cookie{Name: "token", SameSite: "sometimes"}},
		{name: "bad name", cfg: config.Cookie{Name: "to ken", SameSite: config.SameSiteLax}},
		{name: "empty name", cfg: config.Cookie{Name: "", SameSite: config.SameSiteLax}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewCookieStore(tt.cfg, time.Hour)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, ErrInvalidCookie)
		})
	}
}
