// Package config holds configuration for the medu language core.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all medu configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Core pipeline settings
	Core CoreConfig `yaml:"core"`

	// Hypervector index configuration
	Vector VectorConfig `yaml:"vector"`

	// Grammar registry configuration
	Grammar GrammarConfig `yaml:"grammar"`

	// Discourse resolution configuration
	Discourse DiscourseConfig `yaml:"discourse"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CoreConfig configures workspace and language defaults.
type CoreConfig struct {
	// Workspace root; .medu/ state lives under it
	Workspace string `yaml:"workspace"`

	// Default language code for parsing (en, es, fr, de, ru)
	DefaultLanguage string `yaml:"default_language"`

	// Label the discourse layer treats as the system itself
	SelfLabel string `yaml:"self_label"`
}

// VectorConfig configures the hypervector index.
type VectorConfig struct {
	// Hypervector width in bits; must be a multiple of 64
	Dimension int `yaml:"dimension"`

	// SQLite path for the ANN table; empty means in-memory
	DatabasePath string `yaml:"database_path"`

	// Minimum similarity for a fuzzy token match
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// Neighbors fetched per approximate search
	SearchK int `yaml:"search_k"`

	// Parallel workers for batch inserts; 0 means GOMAXPROCS
	BatchWorkers int `yaml:"batch_workers"`
}

// GrammarConfig configures the grammar registry.
type GrammarConfig struct {
	// Grammar used when a caller names none
	Default string `yaml:"default"`

	// Directory of custom grammar definitions (*.toml)
	CustomDir string `yaml:"custom_dir"`

	// Watch the custom dir and hot-reload changed grammars
	Watch bool `yaml:"watch"`
}

// DiscourseConfig configures response assembly.
type DiscourseConfig struct {
	// Fallback detail level when the graph carries none: concise, normal, full
	ResponseDetail string `yaml:"response_detail"`

	// Scoring weights. Deprioritized is subtracted from predicates in
	// the deprioritized set.
	FocusBoost    int `yaml:"focus_boost"`
	IdentityBoost int `yaml:"identity_boost"`
	Deprioritized int `yaml:"deprioritized_penalty"`
	ConciseLimit  int `yaml:"concise_limit"`
	NormalLimit   int `yaml:"normal_limit"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "medu",
		Version: "0.3.0",

		Core: CoreConfig{
			Workspace:       ".",
			DefaultLanguage: "en",
			SelfLabel:       "self",
		},

		Vector: VectorConfig{
			Dimension:      8192,
			DatabasePath:   "",
			FuzzyThreshold: 0.6,
			SearchK:        8,
			BatchWorkers:   0,
		},

		Grammar: GrammarConfig{
			Default:   "formal",
			CustomDir: ".medu/grammars",
			Watch:     false,
		},

		Discourse: DiscourseConfig{
			ResponseDetail: "normal",
			FocusBoost:     10,
			IdentityBoost:  5,
			Deprioritized:  5,
			ConciseLimit:   3,
			NormalLimit:    8,
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the config path under a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".medu", "config.yaml")
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if ws := os.Getenv("MEDU_WORKSPACE"); ws != "" {
		c.Core.Workspace = ws
	}
	if lang := os.Getenv("MEDU_LANGUAGE"); lang != "" {
		c.Core.DefaultLanguage = lang
	}
	if db := os.Getenv("MEDU_VECTOR_DB"); db != "" {
		c.Vector.DatabasePath = db
	}
	if dim := os.Getenv("MEDU_DIMENSION"); dim != "" {
		if n, err := strconv.Atoi(dim); err == nil && n > 0 {
			c.Vector.Dimension = n
		}
	}
	if g := os.Getenv("MEDU_GRAMMAR"); g != "" {
		c.Grammar.Default = g
	}
	if dir := os.Getenv("MEDU_GRAMMAR_DIR"); dir != "" {
		c.Grammar.CustomDir = dir
	}
	if d := os.Getenv("MEDU_DETAIL"); d != "" {
		c.Discourse.ResponseDetail = d
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Vector.Dimension <= 0 || c.Vector.Dimension%64 != 0 {
		return fmt.Errorf("vector.dimension must be a positive multiple of 64, got %d", c.Vector.Dimension)
	}
	if c.Vector.FuzzyThreshold < 0 || c.Vector.FuzzyThreshold > 1 {
		return fmt.Errorf("vector.fuzzy_threshold must be in [0,1], got %v", c.Vector.FuzzyThreshold)
	}
	if c.Vector.SearchK <= 0 {
		return fmt.Errorf("vector.search_k must be positive, got %d", c.Vector.SearchK)
	}
	switch c.Core.DefaultLanguage {
	case "en", "es", "fr", "de", "ru":
	default:
		return fmt.Errorf("core.default_language must be one of en, es, fr, de, ru; got %q", c.Core.DefaultLanguage)
	}
	switch c.Discourse.ResponseDetail {
	case "concise", "normal", "full":
	default:
		return fmt.Errorf("discourse.response_detail must be concise, normal, or full; got %q", c.Discourse.ResponseDetail)
	}
	return nil
}
