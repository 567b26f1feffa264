package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvAddr           = "PETRA_ADDR"
	EnvInferenceURL   = "FASTAPI_URL"
	EnvPredictPath    = "PETRA_PREDICT_PATH"
	EnvPredictTimeout = "PETRA_PREDICT_TIMEOUT_SECONDS"
	EnvAssetsDir      = "PETRA_ASSETS_DIR"
	EnvMapboxToken    = "MAPBOX_API_KEY"
	EnvLogLevel       = "PETRA_LOG_LEVEL"
	EnvLogPretty      = "PETRA_LOG_PRETTY"
)

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any non-empty recognized environment variable.
func ApplyEnv(cfg *Config) {
	if v := getEnv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getEnv(EnvInferenceURL); v != "" {
		cfg.InferenceURL = v
	}
	if v := getEnv(EnvPredictPath); v != "" {
		cfg.PredictPath = v
	}
	if n, ok := getEnvInt(EnvPredictTimeout); ok {
		cfg.PredictTimeoutSeconds = n
	}
	if v := getEnv(EnvAssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	if v := getEnv(EnvMapboxToken); v != "" {
		cfg.MapboxToken = v
	}
	if v := getEnv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if b, ok := getEnvBool(EnvLogPretty); ok {
		cfg.LogPretty = b
	}
}

func getEnv(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func getEnvInt(key string) (int, bool) {
	v := getEnv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func getEnvBool(key string) (bool, bool) {
	v := getEnv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
