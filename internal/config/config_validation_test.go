package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/auth"
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "same-site none with secure cookie", mutate: func(cfg *StructuredConfig) { cfg.Cookie.SameSite = SameSiteNone }},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non-positive token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing HTTP address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown same-site",
			mutate:  func(cfg *StructuredConfig) { cfg.Cookie.SameSite = "sometimes" },
			wantErr: ErrInvalidCookieConfigs,
		},
		{
			name: "same-site none with insecure cookie",
			mutate: func(cfg *StructuredConfig) {
				cfg.Cookie.SameSite = SameSiteNone
				cfg.Cookie.Insecure = true
			},
			wantErr: ErrInvalidCookieConfigs,
		},
		{
			name:    "empty cookie name",
			mutate:  func(cfg *StructuredConfig) { cfg.Cookie.Name = "" },
			wantErr: ErrInvalidCookieConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
