package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Extract     ExtractConfig     `yaml:"extract"`
	Sources     SourcesConfig     `yaml:"sources"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls article fetching
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy"`
	RespectRobots bool          `yaml:"respect_robots"`
}

// CacheConfig controls fetched-page caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ExtractConfig tunes the numeric claim pipeline
type ExtractConfig struct {
	MaxItems     int `yaml:"max_items"`     // Extraction cap
	SelectK      int `yaml:"select_k"`      // Final KPI count
	ContextChars int `yaml:"context_chars"` // Context truncation (runes)
	KeyPoints    int `yaml:"key_points"`    // Draft key point count
}

// SourcesConfig restricts which publishers may be scanned
type SourcesConfig struct {
	AllowedHosts []string `yaml:"allowed_hosts"` // Suffix-matched (segye.com covers www.segye.com)
	Publisher    string   `yaml:"publisher"`     // Attribution line name
}

// LLMConfig controls the optional labeling oracle
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
	MaxInput  int    `yaml:"max_input"`  // Claims sent per labeling call
	MaxOutput int    `yaml:"max_output"` // Enriched claims kept
}

// ConcurrencyConfig tunes batch processing
type ConcurrencyConfig struct {
	Workers           int     `yaml:"workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	SVG     bool `yaml:"svg"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Infogram/0.2 (+https://github.com/minjae-lab/infogram)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Extract: ExtractConfig{
			MaxItems:     12,
			SelectK:      4,
			ContextChars: 180,
			KeyPoints:    3,
		},
		Sources: SourcesConfig{
			AllowedHosts: []string{"segye.com"},
			Publisher:    "세계일보",
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
			MaxInput:  8,
			MaxOutput: 6,
		},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			RequestsPerSecond: 0.5,
			Burst:             1,
		},
		Output: OutputConfig{
			Verbose: false,
			SVG:     true,
		},
	}
}
