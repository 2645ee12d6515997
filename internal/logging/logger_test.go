package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func resetState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	workspace = ""
	configLoaded = false
	config = loggingConfig{}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ".medu")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, `
logging:
  level: debug
  debug_mode: true
  categories:
    boot: true
    lexicon: true
    lexer: true
    parser: true
    grammar: true
    vector: true
    entity: true
    discourse: true
    preprocess: true
`)

	resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot,
		CategoryLexicon,
		CategoryLexer,
		CategoryParser,
		CategoryGrammar,
		CategoryVector,
		CategoryEntity,
		CategoryDiscourse,
		CategoryPreprocess,
	}

	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}

		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	// Also test convenience functions
	Boot("Convenience boot log")
	Lexicon("Convenience lexicon log")
	Lexer("Convenience lexer log")
	Parser("Convenience parser log")
	Grammar("Convenience grammar log")
	Vector("Convenience vector log")
	Entity("Convenience entity log")
	Discourse("Convenience discourse log")
	Preprocess("Convenience preprocess log")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".medu", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry.Name(), string(cat)+".log") {
				found = true
				content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
				if err != nil {
					t.Errorf("Failed to read log file for %s: %v", cat, err)
					continue
				}
				if len(content) == 0 {
					t.Errorf("Log file for %s is empty", cat)
				}
				break
			}
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

// TestDebugModeDisabled tests that no logs are created when debug_mode is false
func TestDebugModeDisabled(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, `
logging:
  level: debug
  debug_mode: false
  categories:
    boot: true
    parser: true
`)

	resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsDebugMode() {
		t.Error("Expected debug mode to be DISABLED (production mode)")
	}

	for _, cat := range []Category{CategoryBoot, CategoryParser, CategoryVector} {
		if IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be DISABLED when debug_mode=false", cat)
		}
	}

	// Try to log - should be no-ops
	Boot("This should NOT be logged")
	Parser("This should NOT be logged")

	logger := Get(CategoryBoot)
	logger.Info("This should NOT be logged")
	logger.Error("This should NOT be logged")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".medu", "logs")
	if _, err := os.Stat(logsPath); err == nil {
		entries, _ := os.ReadDir(logsPath)
		if len(entries) > 0 {
			t.Errorf("Expected NO log files in production mode, but found %d files", len(entries))
		}
	}
}

// TestCategoryToggle tests individual category enable/disable
func TestCategoryToggle(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, `
logging:
  level: debug
  debug_mode: true
  categories:
    boot: true
    parser: true
    vector: false
    discourse: false
`)

	resetState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if !IsCategoryEnabled(CategoryBoot) {
		t.Error("boot should be enabled")
	}
	if !IsCategoryEnabled(CategoryParser) {
		t.Error("parser should be enabled")
	}
	if IsCategoryEnabled(CategoryVector) {
		t.Error("vector should be DISABLED")
	}
	if IsCategoryEnabled(CategoryDiscourse) {
		t.Error("discourse should be DISABLED")
	}

	// Category not in config defaults to enabled when debug_mode=true
	if !IsCategoryEnabled(CategoryLexer) {
		t.Error("lexer (not in config) should default to enabled")
	}

	Boot("This SHOULD be logged")
	Parser("This SHOULD be logged")
	Vector("This should NOT be logged")
	Discourse("This should NOT be logged")
	Lexer("This SHOULD be logged (default enabled)")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".medu", "logs")
	entries, _ := os.ReadDir(logsPath)

	var hasBoot, hasParser, hasVector, hasDiscourse bool
	for _, e := range entries {
		name := e.Name()
		if strings.Contains(name, "boot") {
			hasBoot = true
		}
		if strings.Contains(name, "parser") {
			hasParser = true
		}
		if strings.Contains(name, "vector") {
			hasVector = true
		}
		if strings.Contains(name, "discourse") {
			hasDiscourse = true
		}
	}

	if !hasBoot {
		t.Error("Expected boot log file")
	}
	if !hasParser {
		t.Error("Expected parser log file")
	}
	if hasVector {
		t.Error("Should NOT have vector log file (disabled)")
	}
	if hasDiscourse {
		t.Error("Should NOT have discourse log file (disabled)")
	}
}

// TestTimerLogging tests the timing helper
func TestTimerLogging(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, `
logging:
  level: debug
  debug_mode: true
`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timer := StartTimer(CategoryVector, "TestOperation")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("Timer should have recorded non-zero duration")
	}

	CloseAll()
}
