package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

const defaultCookieName = "token"

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// BaseURL of the service; "host:port" is accepted and gets "http://".
	BaseURL string

	// CookieName is the session cookie the server sets. Defaults to "token".
	CookieName string

	// Timeout bounds every request. Zero means no limit.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client     *utils.HTTPClient
	cookieName string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. The client keeps no cookie jar: the session token is
// read from Set-Cookie and sent back as a bearer token.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	client.SetCookieJar(nil)

	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	return &httpServerAdapter{client: client, cookieName: cookieName, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (models.UserResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login posts to POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.UserResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode %s response: %w", path, err)
	}

	token := h.sessionToken(resp)
	if token == "" {
		return models.UserResponse{}, ErrNoSessionToken
	}
	h.SetToken(token)

	h.logger.Debug().Str("path", path).Str("email", out.User.Email).Msg("session started")
	return out.User, nil
}

// Logout posts to POST /api/auth/logout. The stored token is dropped even
// when the request fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Me calls GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.SessionUser, error) {
	var out models.SessionResponse

	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SessionUser{}, fmt.Errorf("decode me response: %w", err)
	}
	return out.User, nil
}

// Health calls GET /healthz.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) sessionToken(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == h.cookieName {
			return c.Value
		}
	}
	return ""
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
