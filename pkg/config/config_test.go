package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithNoPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "japanalyze.db" || cfg.ReplayWorkers != 4 || cfg.ReplayBatchSize != 50 {
		t.Errorf("got %+v, want the built-in defaults", cfg)
	}
}

func TestLoadDecodesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "db_path: custom.db\ndict_path: my-dict.json\nreplay_workers: 8\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "custom.db" {
		t.Errorf("got DBPath=%q, want custom.db", cfg.DBPath)
	}
	if cfg.DictPath != "my-dict.json" {
		t.Errorf("got DictPath=%q, want my-dict.json", cfg.DictPath)
	}
	if cfg.ReplayWorkers != 8 {
		t.Errorf("got ReplayWorkers=%d, want 8", cfg.ReplayWorkers)
	}
	if cfg.ReplayBatchSize != 50 {
		t.Errorf("got ReplayBatchSize=%d, want the default 50 to survive an unset field", cfg.ReplayBatchSize)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestEnvOverrideWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: from-file.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JAPANALYZE_DB_PATH", "from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "from-env.db" {
		t.Errorf("got DBPath=%q, want the env override to win", cfg.DBPath)
	}
}
