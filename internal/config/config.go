package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ACHGAR2024/univerdog-client/internal/logging"
)

// Config centralises all environment and runtime configuration.
type Config struct {
	Logger *zap.Logger

	APIBaseURL         string
	HTTPTimeoutSeconds int

	// TokenPath overrides the default token location under the user
	// config dir. Empty means "use the default".
	TokenPath string

	GeminiAPIKey string
	GeminiModel  string

	Production bool
}

// Load builds the Config struct from the environment.
func Load() *Config {
	production := parseBoolEnv(os.Getenv("UNIVERDOG_PRODUCTION"))
	logger := logging.New(production)

	cfg := &Config{
		Logger:             logger,
		APIBaseURL:         getEnvOrDefault("UNIVERDOG_API_URL", "https://api.univerdog.site/api"),
		HTTPTimeoutSeconds: getIntEnv("UNIVERDOG_HTTP_TIMEOUT", 25),
		TokenPath:          os.Getenv("UNIVERDOG_TOKEN_PATH"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		Production:         production,
	}

	logger.Debug("loaded configuration",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Int("http_timeout_s", cfg.HTTPTimeoutSeconds),
		zap.Bool("advisor_enabled", cfg.GeminiAPIKey != ""),
	)
	return cfg
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getIntEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
