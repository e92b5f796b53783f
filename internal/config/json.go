package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Cookie struct {
		Name     string `json:"name"`
		Path     string `json:"path"`
		Domain   string `json:"domain"`
		Insecure bool   `json:"insecure"`
		SameSite string `json:"same_site"`
	} `json:"cookie,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Cookie: Cookie{
			Name:     jsonCfg.Cookie.Name,
			Path:     jsonCfg.Cookie.Path,
			Domain:   jsonCfg.Cookie.Domain,
			Insecure: jsonCfg.Cookie.Insecure,
			SameSite: jsonCfg.Cookie.SameSite,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
