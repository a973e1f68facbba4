package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizzer/internal/quiz"
)

// Config holds the runtime settings of the quiz.
type Config struct {
	// BankPath is the question bank file. Empty uses the embedded bank.
	BankPath string `yaml:"bank"`

	// Count is the number of questions drawn per session. Default: 15.
	Count int `yaml:"count"`

	// Seed fixes the sampling order when non-zero.
	Seed uint64 `yaml:"seed"`

	// LogPath receives JSON log lines. Empty disables logging.
	LogPath string `yaml:"log"`
}

// DefaultConfig returns a Config with the standard set size.
func DefaultConfig() Config {
	return Config{
		Count: quiz.DefaultCount,
	}
}

// Parse decodes a YAML config document on top of the defaults. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the QUIZZER_* environment variables that
// are set.
func ApplyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("QUIZZER_BANK"); v != "" {
		cfg.BankPath = v
	}
	if v := os.Getenv("QUIZZER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("QUIZZER_COUNT: %w", err)
		}
		cfg.Count = n
	}
	if v := os.Getenv("QUIZZER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("QUIZZER_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("QUIZZER_LOG"); v != "" {
		cfg.LogPath = v
	}
	return cfg, nil
}

// Load builds the effective config: defaults, then the YAML file at path
// (if path is non-empty), then the environment.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	return ApplyEnv(cfg)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	return nil
}
