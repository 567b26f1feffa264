package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the dashboard.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr                  string     `json:"addr" yaml:"addr" toml:"addr"`
	InferenceURL          string     `json:"inference_url" yaml:"inference_url" toml:"inference_url"`
	PredictPath           string     `json:"predict_path" yaml:"predict_path" toml:"predict_path"`
	PredictTimeoutSeconds int        `json:"predict_timeout_seconds" yaml:"predict_timeout_seconds" toml:"predict_timeout_seconds"`
	AssetsDir             string     `json:"assets_dir" yaml:"assets_dir" toml:"assets_dir"`
	MapboxToken           string     `json:"mapbox_token" yaml:"mapbox_token" toml:"mapbox_token"`
	MaxUploadMB           int        `json:"max_upload_mb" yaml:"max_upload_mb" toml:"max_upload_mb"`
	SessionCacheSize      int        `json:"session_cache_size" yaml:"session_cache_size" toml:"session_cache_size"`
	SecureCookie          bool       `json:"secure_cookie" yaml:"secure_cookie" toml:"secure_cookie"`
	LogLevel              string     `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogPretty             bool       `json:"log_pretty" yaml:"log_pretty" toml:"log_pretty"`
	CORS                  CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
}

// CORSConfig enables cross-origin access to the JSON API.
type CORSConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
