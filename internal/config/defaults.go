package config

import (
	"fmt"
	"net/url"
	"time"

	"petra/internal/common/fsutil"
)

// Defaults applied when corresponding Config fields are unset.
const (
	DefaultAddr             = ":8501"
	DefaultInferenceURL     = "http://127.0.0.1:8000"
	DefaultPredictPath      = "/predict"
	DefaultPredictTimeout   = 60
	DefaultAssetsDir        = "./assets"
	DefaultMaxUploadMB      = 25
	DefaultSessionCacheSize = 4096
	DefaultLogLevel         = "info"
)

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.InferenceURL == "" {
		cfg.InferenceURL = DefaultInferenceURL
	}
	if cfg.PredictPath == "" {
		cfg.PredictPath = DefaultPredictPath
	}
	if cfg.PredictTimeoutSeconds <= 0 {
		cfg.PredictTimeoutSeconds = DefaultPredictTimeout
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = DefaultMaxUploadMB
	}
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = DefaultSessionCacheSize
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.CORS.Enabled {
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
		if len(cfg.CORS.AllowedMethods) == 0 {
			cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
		}
		if len(cfg.CORS.AllowedHeaders) == 0 {
			cfg.CORS.AllowedHeaders = []string{"Content-Type", "X-Log-Level"}
		}
	}
}

// Validate checks fields that defaults cannot repair.
func (c Config) Validate() error {
	u, err := url.Parse(c.InferenceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("inference_url must be an absolute http(s) URL, got %q", c.InferenceURL)
	}
	switch c.LogLevel {
	case "off", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// PredictTimeout returns the per-call prediction deadline.
func (c Config) PredictTimeout() time.Duration {
	return time.Duration(c.PredictTimeoutSeconds) * time.Second
}

// MaxUploadBytes returns the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

// Resolve layers file (optional), dotenv, environment and defaults, in that
// order of increasing precedence below explicit CLI flags.
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		c, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	if err := LoadDotEnv(); err != nil {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	ApplyEnv(&cfg)
	ApplyDefaults(&cfg)
	dir, err := fsutil.ExpandHome(cfg.AssetsDir)
	if err != nil {
		return cfg, err
	}
	cfg.AssetsDir = dir
	return cfg, nil
}
