package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Timezone    string

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig
	Qdrant   QdrantConfig

	// AI
	LLM       LLMConfig
	Embedding EmbeddingConfig
	Search    SearchConfig

	// Background jobs
	Scheduler SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	APIPrefix       string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         LogFileConfig
}

// LogFileConfig enables rotated file output when Path is set.
type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// DatabaseConfig selects the gorm driver. For sqlite DSN is the file path;
// for mysql DSN wins over the discrete fields when set.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	LogLevel string
}

type QdrantConfig struct {
	URL                 string
	CollectionName      string
	SimilarityThreshold float64
}

// EmbeddingConfig points at an OpenAI-compatible embeddings endpoint.
type EmbeddingConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	VectorSize int
}

// Enabled reports whether semantic search can run.
func (c EmbeddingConfig) Enabled() bool {
	return c.APIKey != ""
}

type SearchConfig struct {
	ImproveQuery bool
	CacheSize    int
	CacheTTL     time.Duration
}

type SchedulerConfig struct {
	Enabled           bool
	WeeklySummarySpec string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Enabled         bool             `yaml:"enabled"`
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Timezone = viper.GetString("timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.APIPrefix = viper.GetString("http_server.api_prefix")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.File.Path = viper.GetString("logger.file.path")
	cfg.Logger.File.MaxSizeMB = viper.GetInt("logger.file.max_size_mb")
	cfg.Logger.File.MaxBackups = viper.GetInt("logger.file.max_backups")
	cfg.Logger.File.MaxAgeDays = viper.GetInt("logger.file.max_age_days")
	cfg.Logger.File.Compress = viper.GetBool("logger.file.compress")

	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.Host = viper.GetString("database.host")
	cfg.Database.Port = viper.GetInt("database.port")
	cfg.Database.User = viper.GetString("database.user")
	cfg.Database.Password = expandEnvVar(viper.GetString("database.password"))
	cfg.Database.Name = viper.GetString("database.name")
	cfg.Database.LogLevel = viper.GetString("database.log_level")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.SimilarityThreshold = viper.GetFloat64("qdrant.similarity_threshold")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Embeddings
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.VectorSize = viper.GetInt("embedding.vector_size")
	if cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = viper.GetString("openai_api_key")
	}

	cfg.Search.ImproveQuery = viper.GetBool("search.improve_query")
	cfg.Search.CacheSize = viper.GetInt("search.cache_size")
	cfg.Search.CacheTTL = viper.GetDuration("search.cache_ttl")

	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.WeeklySummarySpec = viper.GetString("scheduler.weekly_summary_spec")

	// LLM Provider Abstraction
	cfg.LLM.Enabled = viper.GetBool("llm.enabled")
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	if c.Qdrant.SimilarityThreshold < 0 || c.Qdrant.SimilarityThreshold > 1 {
		return fmt.Errorf("qdrant.similarity_threshold must be within [0, 1]")
	}

	// AI features may be switched off; providers are only required when on.
	if c.LLM.Enabled {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("timezone", "Local")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.api_prefix", "/api")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.file.max_size_mb", 100)
	viper.SetDefault("logger.file.max_backups", 5)
	viper.SetDefault("logger.file.max_age_days", 30)
	viper.SetDefault("logger.file.compress", true)

	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "data/productivity.db")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.log_level", "warn")

	viper.SetDefault("qdrant.collection_name", "weekly_summaries")
	viper.SetDefault("qdrant.similarity_threshold", 0.7)

	viper.SetDefault("embedding.model", "text-embedding-ada-002")
	viper.SetDefault("embedding.vector_size", 1536)

	viper.SetDefault("search.improve_query", true)
	viper.SetDefault("search.cache_size", 500)
	viper.SetDefault("search.cache_ttl", "30m")

	viper.SetDefault("scheduler.enabled", false)
	// Mondays 06:00, seconds field first.
	viper.SetDefault("scheduler.weekly_summary_spec", "0 0 6 * * 1")

	// LLM defaults
	viper.SetDefault("llm.enabled", true)
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// splitList flattens comma separated entries, which is how list values
// arrive from environment variables.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set llm.enabled=false")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
