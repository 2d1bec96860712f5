// Package config loads all runtime tunables from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Providers accepted by PRISMA_EMBED_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	// Pipeline thresholds. All in (0,1); calibrated empirically, exposed
	// here rather than hard-coded because no specific value is "correct",
	// only internally consistent.
	ClusterThreshold   float64 // higher = smaller, tighter clusters
	DuplicateThreshold float64 // higher = less aggressive dedup
	MinGroupThreshold  float64 // fallback grouping sensitivity
	TitleRatio         float64 // textual duplicate cutoff

	// Batch size limits
	MaxItemsNational      int // default per-source cap, national feeds
	MaxItemsInternational int // default per-source cap, international feeds
	MaxInternationalTotal int // cap on relevant international items
	MaxItemsTotal         int // global batch cap
	FetchConcurrency      int

	// Embeddings
	EmbedProvider  string // gemini | openai
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string
	EmbedBatchSize int

	// Vector cache
	CacheFilePath string
	CacheTTLHours int

	// Paths and output
	SourcesConfigPath    string
	ReferencesConfigPath string
	OutputDir            string
	BaseURL              string

	// Telegram digest (optional, off when token empty)
	TelegramToken  string
	TelegramChatID string

	// App settings
	Debug          bool
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		ClusterThreshold:      getEnvFloatOrDefault("PRISMA_CLUSTER_THRESHOLD", 0.63),
		DuplicateThreshold:    getEnvFloatOrDefault("PRISMA_DUPLICATE_THRESHOLD", 0.87),
		MinGroupThreshold:     getEnvFloatOrDefault("PRISMA_MIN_GROUP_THRESHOLD", 0.5),
		TitleRatio:            getEnvFloatOrDefault("PRISMA_TITLE_RATIO", 0.90),
		MaxItemsNational:      getEnvIntOrDefault("PRISMA_MAX_ITEMS_NATIONAL", 8),
		MaxItemsInternational: getEnvIntOrDefault("PRISMA_MAX_ITEMS_INTERNATIONAL", 30),
		MaxInternationalTotal: getEnvIntOrDefault("PRISMA_MAX_INTERNATIONAL_TOTAL", 40),
		MaxItemsTotal:         getEnvIntOrDefault("PRISMA_MAX_ITEMS_TOTAL", 300),
		FetchConcurrency:      getEnvIntOrDefault("PRISMA_FETCH_CONCURRENCY", 8),
		EmbedProvider:         getEnvOrDefault("PRISMA_EMBED_PROVIDER", ProviderGemini),
		GeminiModel:           getEnvOrDefault("PRISMA_GEMINI_MODEL", "text-embedding-004"),
		OpenAIBaseURL:         getEnvOrDefault("PRISMA_OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:           getEnvOrDefault("PRISMA_OPENAI_MODEL", "text-embedding-3-small"),
		EmbedBatchSize:        getEnvIntOrDefault("PRISMA_EMBED_BATCH_SIZE", 32),
		CacheFilePath:         getEnvOrDefault("PRISMA_CACHE_FILE", "embeddings_cache.json"),
		CacheTTLHours:         getEnvIntOrDefault("PRISMA_CACHE_TTL_HOURS", 72),
		SourcesConfigPath:     getEnvOrDefault("PRISMA_SOURCES_CONFIG", "configs/sources.yaml"),
		ReferencesConfigPath:  getEnvOrDefault("PRISMA_REFERENCES_CONFIG", "configs/references.yaml"),
		OutputDir:             getEnvOrDefault("PRISMA_OUTPUT_DIR", "public"),
		BaseURL:               getEnvOrDefault("PRISMA_BASE_URL", "https://prismanews.github.io/prisma/"),
		RequestTimeout:        30 * time.Second,
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if timeout := getEnvIntOrDefault("PRISMA_REQUEST_TIMEOUT_SECONDS", 0); timeout > 0 {
		cfg.RequestTimeout = time.Duration(timeout) * time.Second
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"PRISMA_CLUSTER_THRESHOLD":   c.ClusterThreshold,
		"PRISMA_DUPLICATE_THRESHOLD": c.DuplicateThreshold,
		"PRISMA_MIN_GROUP_THRESHOLD": c.MinGroupThreshold,
		"PRISMA_TITLE_RATIO":         c.TitleRatio,
	} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("%s must be in (0,1), got %v", name, v)
		}
	}

	switch c.EmbedProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini embed provider")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai embed provider")
		}
	default:
		return fmt.Errorf("PRISMA_EMBED_PROVIDER must be %q or %q", ProviderGemini, ProviderOpenAI)
	}

	if c.TelegramToken != "" && c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
