package model

import "time"

// Config is the full application configuration, loadable from
// ~/.wikidump/config.yaml, WIKIDUMP_* environment variables and flags.
type Config struct {
	Dump        DumpConfig        `yaml:"dump"`
	Download    DownloadConfig    `yaml:"download"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// DumpConfig controls dump reading and conversion.
type DumpConfig struct {
	BatchSize int    `yaml:"batch_size"` // pages per batch for export and parallel processing
	IndexDir  string `yaml:"index_dir"`  // LevelDB title index location
}

// DownloadConfig controls dump file downloads.
type DownloadConfig struct {
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	CheckRobots       bool          `yaml:"check_robots"`
}

// CacheConfig controls the in-memory title-lookup cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ConcurrencyConfig controls batch-parallel processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// LLMConfig controls the optional event-extraction helper.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from OPENAI_API_KEY, never persisted
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Dump: DumpConfig{
			BatchSize: 10000,
			IndexDir:  "",
		},
		Download: DownloadConfig{
			UserAgent:         "wikidump/0.2 (+https://github.com/ndelvaux/wikidump)",
			Timeout:           10 * time.Minute,
			RequestsPerSecond: 1,
			Burst:             2,
			CheckRobots:       true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 2000,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
