package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// minimalConfig holds the fields without defaults that validate requires.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/auth"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder_FailsValidation verifies that defaults alone do not
// produce a usable config: the sign key has no default.
func TestBuild_EmptyBuilder_FailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "go-session-auth", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "token", cfg.Cookie.Name)
	assert.Equal(t, "/", cfg.Cookie.Path)
	assert.Equal(t, SameSiteStrict, cfg.Cookie.SameSite)
	assert.False(t, cfg.Cookie.Insecure)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones.
func TestBuild_LaterSourceWins(t *testing.T) {
	first := minimalConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "first"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnInvalidValue verifies that parse errors are kept.
func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_AppendsParsedConfig verifies that parsed flags are appended.
func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-token-issuer", "flag-issuer"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that parse errors are kept.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestBuilder_FullChain verifies env → flags → JSON precedence end to end.
func TestBuilder_FullChain(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/auth")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	payload := StructuredJSONConfig{}
	payload.App.TokenSignKey = "json-key"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:9999", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env/auth", cfg.Storage.DB.DSN)
}
