package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Pipeline
	Chat    ChatConfig
	Intent  IntentConfig
	Answer  AnswerConfig
	Domains []DomainConfig

	// Retrieval
	Search   SearchConfig
	Qdrant   QdrantConfig
	Voyage   VoyageConfig
	Postgres PostgresConfig

	// Persistence
	Session SessionConfig

	// Artifacts
	Assistant AssistantConfig
	Artifact  ArtifactConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// FilePath enables a rotated JSON log file next to stdout when set.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type RateLimitConfig struct {
	Enabled    bool
	PerMinute  int
	AllowedIPs []string
}

type ChatConfig struct {
	HandleTimeout time.Duration
	Persona       string
}

// IntentConfig drives the majority-vote classifier.
type IntentConfig struct {
	Samples     int
	Temperature float64
}

// AnswerConfig is the sampling profile of the primary answer call.
type AnswerConfig struct {
	Temperature  float64
	TopP         float64
	MaxTokens    int
	MaxToolSteps int
}

// DomainConfig declares one structured-query domain and the tables its
// schema context is built from.
type DomainConfig struct {
	Label       string   `mapstructure:"label"`
	Description string   `mapstructure:"description"`
	Tables      []string `mapstructure:"tables"`
	Examples    []string `mapstructure:"examples"`
}

type SearchConfig struct {
	Backend string // "qdrant" or "pgvector"
	TopK    int
	// PGTable is the pgvector table holding manual chunks.
	PGTable string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type PostgresConfig struct {
	DSN             string
	DatabaseName    string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryRowLimit   int
}

type SessionConfig struct {
	Enabled     bool
	DSN         string
	AutoMigrate bool
}

// AssistantConfig points at an Assistants v2 compatible code-execution API.
type AssistantConfig struct {
	BaseURL      string
	APIKey       string
	APIVersion   string // Azure OpenAI api-version query parameter, empty for OpenAI
	Model        string
	PollInterval time.Duration
	MaxWait      time.Duration
}

type ArtifactConfig struct {
	Store           string // "gcs" or "local"
	Bucket          string
	CredentialsFile string
	LocalDir        string
	LinkTTL         time.Duration
	SigningSecret   string
	PublicBaseURL   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
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
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.AllowedIPs = splitList(viper.GetString("rate_limit.allowed_ips"))

	// Pipeline
	cfg.Chat.HandleTimeout = viper.GetDuration("chat.handle_timeout")
	cfg.Chat.Persona = viper.GetString("chat.persona")
	cfg.Intent.Samples = viper.GetInt("intent.samples")
	cfg.Intent.Temperature = viper.GetFloat64("intent.temperature")
	cfg.Answer.Temperature = viper.GetFloat64("answer.temperature")
	cfg.Answer.TopP = viper.GetFloat64("answer.top_p")
	cfg.Answer.MaxTokens = viper.GetInt("answer.max_tokens")
	cfg.Answer.MaxToolSteps = viper.GetInt("answer.max_tool_steps")

	if err := viper.UnmarshalKey("domains", &cfg.Domains); err != nil {
		return nil, fmt.Errorf("error reading domains: %w", err)
	}
	if len(cfg.Domains) == 0 {
		cfg.Domains = DefaultDomains()
	}

	// Retrieval
	cfg.Search.Backend = viper.GetString("search.backend")
	cfg.Search.TopK = viper.GetInt("search.top_k")
	cfg.Search.PGTable = viper.GetString("search.pg_table")
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	cfg.Voyage.BaseURL = viper.GetString("voyage.base_url")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.DatabaseName = viper.GetString("postgres.database_name")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.QueryRowLimit = viper.GetInt("postgres.query_row_limit")

	// Persistence
	cfg.Session.Enabled = viper.GetBool("session.enabled")
	cfg.Session.DSN = viper.GetString("session.dsn")
	cfg.Session.AutoMigrate = viper.GetBool("session.auto_migrate")
	if cfg.Session.DSN == "" {
		cfg.Session.DSN = cfg.Postgres.DSN
	}

	// Artifacts
	cfg.Assistant.BaseURL = viper.GetString("assistant.base_url")
	cfg.Assistant.APIKey = expandEnvVar(viper.GetString("assistant.api_key"))
	cfg.Assistant.APIVersion = viper.GetString("assistant.api_version")
	cfg.Assistant.Model = viper.GetString("assistant.model")
	cfg.Assistant.PollInterval = viper.GetDuration("assistant.poll_interval")
	cfg.Assistant.MaxWait = viper.GetDuration("assistant.max_wait")

	cfg.Artifact.Store = viper.GetString("artifact.store")
	cfg.Artifact.Bucket = viper.GetString("artifact.bucket")
	cfg.Artifact.CredentialsFile = viper.GetString("artifact.credentials_file")
	cfg.Artifact.LocalDir = viper.GetString("artifact.local_dir")
	cfg.Artifact.LinkTTL = viper.GetDuration("artifact.link_ttl")
	cfg.Artifact.SigningSecret = expandEnvVar(viper.GetString("artifact.signing_secret"))
	cfg.Artifact.PublicBaseURL = strings.TrimRight(viper.GetString("artifact.public_base_url"), "/")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.file_path", "")
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 14)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 30)
	viper.SetDefault("rate_limit.allowed_ips", "")

	viper.SetDefault("chat.handle_timeout", "3m")
	viper.SetDefault("chat.persona", DefaultPersona)
	viper.SetDefault("intent.samples", 3)
	viper.SetDefault("intent.temperature", 0.9)
	viper.SetDefault("answer.temperature", 0.1)
	viper.SetDefault("answer.top_p", 0.1)
	viper.SetDefault("answer.max_tokens", 2048)
	viper.SetDefault("answer.max_tool_steps", 5)

	viper.SetDefault("search.backend", "qdrant")
	viper.SetDefault("search.top_k", 3)
	viper.SetDefault("search.pg_table", "manual_chunks")
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "manuals")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("voyage.api_key", "")
	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("voyage.base_url", "")

	viper.SetDefault("postgres.dsn", "")
	viper.SetDefault("postgres.database_name", "adventureworks")
	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.query_row_limit", 200)

	viper.SetDefault("session.enabled", true)
	viper.SetDefault("session.dsn", "")
	viper.SetDefault("session.auto_migrate", true)

	viper.SetDefault("assistant.base_url", "https://api.openai.com/v1")
	viper.SetDefault("assistant.api_key", "")
	viper.SetDefault("assistant.api_version", "")
	viper.SetDefault("assistant.model", "gpt-4o")
	viper.SetDefault("assistant.poll_interval", "500ms")
	viper.SetDefault("assistant.max_wait", "2m")

	viper.SetDefault("artifact.store", "local")
	viper.SetDefault("artifact.bucket", "")
	viper.SetDefault("artifact.credentials_file", "")
	viper.SetDefault("artifact.local_dir", "./data/artifacts")
	viper.SetDefault("artifact.link_ttl", "24h")
	viper.SetDefault("artifact.signing_secret", "")
	viper.SetDefault("artifact.public_base_url", "http://localhost:8080")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// DefaultPersona is the system instruction of the answer call.
const DefaultPersona = "You are a helpful, friendly assistant. You answer questions from product manuals " +
	"and from the sales database. When you do not know the answer, say so instead of guessing."

// DefaultDomains are the structured-query domains used when none are configured.
func DefaultDomains() []DomainConfig {
	return []DomainConfig{
		{
			Label:       "customer",
			Description: "questions about customers, their addresses and the salespeople assigned to them",
			Tables:      []string{"saleslt.customer", "saleslt.customeraddress", "saleslt.address"},
			Examples:    []string{"Which customers does salesperson adventure-works\\pamela0 handle?"},
		},
		{
			Label:       "product",
			Description: "questions about products, product categories, models and prices",
			Tables:      []string{"saleslt.product", "saleslt.productcategory", "saleslt.productmodel"},
			Examples:    []string{"What is the list price of the HL Road Frame - Red, 58?"},
		},
	}
}

var domainLabelPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	if c.Intent.Samples < 1 {
		return fmt.Errorf("intent.samples must be at least 1")
	}

	seen := make(map[string]bool, len(c.Domains))
	for i, d := range c.Domains {
		switch {
		case !domainLabelPattern.MatchString(d.Label):
			return fmt.Errorf("domain %d: label %q must match %s", i, d.Label, domainLabelPattern)
		case d.Label == "manual" || d.Label == "not_found":
			return fmt.Errorf("domain %d: label %q is reserved", i, d.Label)
		case seen[d.Label]:
			return fmt.Errorf("domain %d: duplicate label %q", i, d.Label)
		case len(d.Tables) == 0:
			return fmt.Errorf("domain %s: at least one table is required", d.Label)
		}
		seen[d.Label] = true
	}

	switch c.Search.Backend {
	case "qdrant", "pgvector":
	default:
		return fmt.Errorf("search.backend must be qdrant or pgvector, got %q", c.Search.Backend)
	}

	switch c.Artifact.Store {
	case "local":
	case "gcs":
		if c.Artifact.Bucket == "" {
			return fmt.Errorf("artifact.bucket is required for the gcs store")
		}
	default:
		return fmt.Errorf("artifact.store must be gcs or local, got %q", c.Artifact.Store)
	}
	if c.Artifact.LinkTTL <= 0 {
		return fmt.Errorf("artifact.link_ttl must be positive")
	}
	if c.Assistant.PollInterval <= 0 || c.Assistant.MaxWait <= 0 {
		return fmt.Errorf("assistant.poll_interval and assistant.max_wait must be positive")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
