package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the counsellor configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Index     IndexConfig     `yaml:"index"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Assistant AssistantConfig `yaml:"assistant"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds vector store connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis, valkey (default: redis)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	Standalone       bool     `yaml:"standalone"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds key layout settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// IndexConfig describes the per-namespace search indexes.
type IndexConfig struct {
	VectorField  string   `yaml:"vector_field"`
	ReturnFields []string `yaml:"return_fields"` // empty = all stored fields
}

// OpenAIConfig holds OpenAI-compatible provider settings.
type OpenAIConfig struct {
	APIKey    string          `yaml:"api_key"`
	BaseURL   string          `yaml:"base_url"`
	Provider  string          `yaml:"provider"` // metrics label
	Embedding EmbeddingConfig `yaml:"embedding"`
	Router    ChatConfig      `yaml:"router"`
	Answer    ChatConfig      `yaml:"answer"`
}

// EmbeddingConfig holds query embedding settings.
type EmbeddingConfig struct {
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// ChatConfig holds chat completion settings. A nil Temperature takes the default.
type ChatConfig struct {
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`
}

// Temp returns the configured temperature, or 0 when unset.
func (c ChatConfig) Temp() float32 {
	if c.Temperature == nil {
		return 0
	}
	return *c.Temperature
}

// AssistantConfig holds persona settings.
type AssistantConfig struct {
	Organization string `yaml:"organization"`
}

// RetrievalConfig holds namespace and pipeline limits.
type RetrievalConfig struct {
	Namespaces               []NamespaceConfig `yaml:"namespaces"`
	TopKPerNamespace         int               `yaml:"top_k_per_namespace"`
	MaxMatches               int               `yaml:"max_matches"`
	MaxContextChars          int               `yaml:"max_context_chars"`
	SnippetChars             int               `yaml:"snippet_chars"`
	ContactShortcutLimit     int               `yaml:"contact_shortcut_limit"`
	ParallelNamespaceQueries int               `yaml:"parallel_namespace_queries"` // 0 = sequential
}

// NamespaceConfig describes one routable namespace.
type NamespaceConfig struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"` // contact, services, blog
	Primary     bool   `yaml:"primary"`
	Description string `yaml:"description"`
}

// Load reads configuration from a YAML file by environment name (local, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit YAML path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60 // answer generation is slow
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "counsellor:"
	}
	if c.Index.VectorField == "" {
		c.Index.VectorField = "vector"
	}
	c.OpenAI.applyDefaults()
	if c.Assistant.Organization == "" {
		c.Assistant.Organization = "FES"
	}
	c.Retrieval.applyDefaults()
}

func (o *OpenAIConfig) applyDefaults() {
	if o.Provider == "" {
		o.Provider = "openai"
	}
	if o.Embedding.Model == "" {
		o.Embedding.Model = "text-embedding-3-small"
	}
	if o.Router.Model == "" {
		o.Router.Model = "gpt-4o-mini"
	}
	if o.Router.Temperature == nil {
		o.Router.Temperature = float32Ptr(0)
	}
	if o.Answer.Model == "" {
		o.Answer.Model = "gpt-4o-mini"
	}
	if o.Answer.Temperature == nil {
		o.Answer.Temperature = float32Ptr(0.2)
	}
}

func (r *RetrievalConfig) applyDefaults() {
	if len(r.Namespaces) == 0 {
		r.Namespaces = DefaultNamespaces()
	}
	if r.TopKPerNamespace <= 0 {
		r.TopKPerNamespace = 5
	}
	if r.MaxMatches <= 0 {
		r.MaxMatches = 20
	}
	if r.MaxContextChars <= 0 {
		r.MaxContextChars = 9000
	}
	if r.SnippetChars <= 0 {
		r.SnippetChars = 1200
	}
	if r.ContactShortcutLimit <= 0 {
		r.ContactShortcutLimit = 5
	}
}

// DefaultNamespaces returns the stock FES knowledge base layout.
func DefaultNamespaces() []NamespaceConfig {
	return []NamespaceConfig{
		{
			Name: "fes_blogs", Role: "blog", Primary: true,
			Description: "FES blog articles: study abroad guidance, scholarships, tips",
		},
		{
			Name: "idp_blogs", Role: "blog", Primary: false,
			Description: "IDP blog articles: general industry info, tests, scholarships",
		},
		{
			Name: "fes_pages", Role: "services", Primary: true,
			Description: "FES service pages: admissions help, process, countries, offerings",
		},
		{
			Name: "fes_contact_details", Role: "contact", Primary: true,
			Description: "branch addresses, phone numbers, emails",
		},
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis", "valkey":
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.OpenAI.Embedding.Dimensions < 0 {
		return fmt.Errorf("openai.embedding.dimensions must not be negative")
	}
	for name, chat := range map[string]ChatConfig{"router": c.OpenAI.Router, "answer": c.OpenAI.Answer} {
		if t := chat.Temp(); t < 0 || t > 2 {
			return fmt.Errorf("openai.%s.temperature must be between 0 and 2, got %g", name, t)
		}
	}
	if c.Retrieval.ParallelNamespaceQueries < 0 {
		return fmt.Errorf("retrieval.parallel_namespace_queries must not be negative")
	}
	if _, err := c.Retrieval.Catalog(); err != nil {
		return fmt.Errorf("retrieval.namespaces: %w", err)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

func float32Ptr(v float32) *float32 { return &v }
