package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "medu" {
		t.Errorf("expected Name=medu, got %s", cfg.Name)
	}
	if cfg.Vector.Dimension != 8192 {
		t.Errorf("expected Dimension=8192, got %d", cfg.Vector.Dimension)
	}
	if cfg.Vector.FuzzyThreshold != 0.6 {
		t.Errorf("expected FuzzyThreshold=0.6, got %v", cfg.Vector.FuzzyThreshold)
	}
	if cfg.Discourse.NormalLimit != 8 {
		t.Errorf("expected NormalLimit=8, got %d", cfg.Discourse.NormalLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Core.DefaultLanguage = "ru"
	cfg.Grammar.Default = "terse"
	cfg.Vector.Dimension = 4096

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", loaded.Core.DefaultLanguage)
	assert.Equal(t, "terse", loaded.Grammar.Default)
	assert.Equal(t, 4096, loaded.Vector.Dimension)
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Vector.Dimension, loaded.Vector.Dimension)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("MEDU_LANGUAGE overrides default", func(t *testing.T) {
		t.Setenv("MEDU_LANGUAGE", "fr")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "fr", cfg.Core.DefaultLanguage)
	})

	t.Run("MEDU_VECTOR_DB overrides path", func(t *testing.T) {
		t.Setenv("MEDU_VECTOR_DB", "/tmp/vectors.db")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/vectors.db", cfg.Vector.DatabasePath)
	})

	t.Run("MEDU_DIMENSION ignores garbage", func(t *testing.T) {
		t.Setenv("MEDU_DIMENSION", "not-a-number")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 8192, cfg.Vector.Dimension)
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"dimension not multiple of 64", func(c *Config) { c.Vector.Dimension = 100 }, true},
		{"dimension zero", func(c *Config) { c.Vector.Dimension = 0 }, true},
		{"threshold out of range", func(c *Config) { c.Vector.FuzzyThreshold = 1.5 }, true},
		{"unknown language", func(c *Config) { c.Core.DefaultLanguage = "tlh" }, true},
		{"unknown detail", func(c *Config) { c.Discourse.ResponseDetail = "verbose" }, true},
		{"search_k zero", func(c *Config) { c.Vector.SearchK = 0 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
