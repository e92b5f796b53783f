package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	authhttp "github.com/MKhiriev/go-session-auth/internal/handler/http"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const annJSON = `{"name":"Ann","email":"ann@x.com","password":"Secret123!","role":"user"}`

// newTestServer runs the whole stack on a fresh sqlite database.
func newTestServer(t *testing.T) *utils.HTTPClient {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "auth.db"),
	}}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{
		TokenSignKey:     "e2e-secret",
		TokenIssuer:      "go-session-auth-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "e2e",
	}, log)
	require.NoError(t, err)

	validator, err := validators.NewRequestValidator()
	require.NoError(t, err)

	sessions, err := session.NewCookieStore(config.Cookie{
		Name:     "token",
		Path:     "/",
		Insecure: true,
		SameSite: config.SameSiteLax,
	}, time.Hour)
	require.NoError(t, err)

	handler := authhttp.NewHandler(services, validator, sessions, log,
		authhttp.WithPinger(storages.DB),
		authhttp.WithRequestTimeout(5*time.Second),
	)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return utils.NewHTTPClient(srv.URL, 5*time.Second)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthFlow_Ann(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().SetHeader("Content-Type", "application/json").SetBody(annJSON).Post("/api/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.NotContains(t, resp.String(), "password")

	var created struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &created))
	assert.Equal(t, "User created successfully", created.Message)
	assert.NotEmpty(t, created.User.ID)
	assert.Equal(t, "Ann", created.User.Name)
	assert.Equal(t, "ann@x.com", created.User.Email)
	assert.Equal(t, "user", created.User.Role)

	cookie := findCookie(resp.Cookies(), "token")
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	resp, err = client.R().SetHeader("Content-Type", "application/json").SetBody(annJSON).Post("/api/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Email already in use"}`, resp.String())

	resp, err = client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"ann@x.com","password":"wrong"}`).
		Post("/api/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, resp.String())
}

func TestAuthFlow_EmailKeepsCase(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"name":"Ann","email":"Ann@X.com","password":"Secret123!","role":"user"}`).
		Post("/api/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())

	var created struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &created))
	assert.Equal(t, "Ann@X.com", created.User.Email)

	resp, err = client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"name":"Ann","email":"ann@x.com","password":"Secret123!","role":"user"}`).
		Post("/api/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	resp, err = client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"ANN@X.COM","password":"Secret123!"}`).
		Post("/api/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Contains(t, resp.String(), `"email":"Ann@X.com"`)
}

func TestAuthFlow_LoginSessionLogout(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().SetHeader("Content-Type", "application/json").SetBody(annJSON).Post("/api/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())

	unknown, err := client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"bob@x.com","password":"Secret123!"}`).
		Post("/api/auth/login")
	require.NoError(t, err)
	wrong, err := client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"ann@x.com","password":"Secret123?"}`).
		Post("/api/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode())
	assert.Equal(t, unknown.String(), wrong.String())

	resp, err = client.R().SetHeader("Content-Type", "application/json").
		SetBody(`{"email":"ANN@x.com","password":"Secret123!"}`).
		Post("/api/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	cookie := findCookie(resp.Cookies(), "token")
	require.NotNil(t, cookie)

	resp, err = client.R().SetCookie(&http.Cookie{Name: "token", Value: cookie.Value}).Get("/api/auth/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Contains(t, resp.String(), `"email":"ann@x.com"`)

	resp, err = client.R().SetAuthToken(cookie.Value).Get("/api/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	first, err := client.R().Post("/api/auth/logout")
	require.NoError(t, err)
	second, err := client.R().Post("/api/auth/logout")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, first.StatusCode())
	assert.Equal(t, http.StatusOK, second.StatusCode())
	assert.JSONEq(t, `{"message":"User signed out successfully"}`, first.String())
	assert.Equal(t, first.String(), second.String())

	cleared := findCookie(first.Cookies(), "token")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestAuthFlow_HealthAndVersion(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().Get("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, resp.String())

	resp, err = client.R().Get("/api/version/")
	require.NoError(t, err)
	assert.Equal(t, "e2e", resp.String())
}
