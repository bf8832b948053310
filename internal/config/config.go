package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string
	LLM  LLMConfig
}

type LLMConfig struct {
	Model      string
	APIKey     string
	MaxRetries int
	BatchSize  int
	MaxItems   int
	MaxAspects int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = ":8081"
	} else if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port: port,
		Env:  env,
		LLM: LLMConfig{
			Model:      firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
			APIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			MaxRetries: envInt("LLM_MAX_RETRIES", 3),
			BatchSize:  envInt("ANALYSIS_BATCH_SIZE", 20),
			MaxItems:   envInt("ANALYSIS_MAX_ITEMS", 50),
			MaxAspects: envInt("ANALYSIS_MAX_ASPECTS", 12),
		},
	}, nil
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
