// Package config loads process configuration for cmd/japanalyze from an
// optional YAML file, with environment variables overriding whatever the
// file sets and CLI flags free to override both, grounded on the ambient
// YAML-config-plus-env-override idiom other_examples' korel bootstrap CLI
// uses (gopkg.in/yaml.v3 unmarshal over a flat settings struct).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings cmd/japanalyze needs before it can build its
// segmenter/dictionary/history collaborators.
type Config struct {
	// DBPath is the SQLite history database path.
	DBPath string `yaml:"db_path"`
	// DictPath is an explicit JMdict-Simplified JSON path; empty triggers
	// auto-download.
	DictPath string `yaml:"dict_path"`
	// NamesPath is an explicit JMnedict JSON path; empty triggers
	// auto-download.
	NamesPath string `yaml:"names_path"`
	// ReplayWorkers controls history.Replayer's analysis concurrency.
	ReplayWorkers int `yaml:"replay_workers"`
	// ReplayBatchSize controls history.Replayer's transaction batch size.
	ReplayBatchSize int `yaml:"replay_batch_size"`
}

// Default returns the built-in settings used when no config file or
// environment override is present.
func Default() Config {
	return Config{
		DBPath:          "japanalyze.db",
		ReplayWorkers:   4,
		ReplayBatchSize: 50,
	}
}

// envOverrides lists the JAPANALYZE_* environment variables that override a
// loaded Config field, applied after the file so a deployment can tweak one
// setting without forking the whole file.
func envOverrides(cfg *Config) error {
	if v := os.Getenv("JAPANALYZE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("JAPANALYZE_DICT_PATH"); v != "" {
		cfg.DictPath = v
	}
	if v := os.Getenv("JAPANALYZE_NAMES_PATH"); v != "" {
		cfg.NamesPath = v
	}
	if v := os.Getenv("JAPANALYZE_REPLAY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JAPANALYZE_REPLAY_WORKERS: %w", err)
		}
		cfg.ReplayWorkers = n
	}
	if v := os.Getenv("JAPANALYZE_REPLAY_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JAPANALYZE_REPLAY_BATCH_SIZE: %w", err)
		}
		cfg.ReplayBatchSize = n
	}
	return nil
}

// Load builds a Config starting from Default, decoding path over it with
// gopkg.in/yaml.v3 if path is non-empty, then applying any JAPANALYZE_*
// environment overrides. A missing path is not an error when path is the
// empty string (no file was requested); any other read/decode error is
// returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := envOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
