// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playbymail/oldworldimport/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Fatalf("expected no error for non-existent file, got %v", err)
		}
		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.Archive.MaxEntries != 10 {
			t.Errorf("expected default MaxEntries 10, got %d", cfg.Archive.MaxEntries)
		}
		if cfg.Lock.StaleAfterSeconds != 600 {
			t.Errorf("expected default StaleAfterSeconds 600, got %d", cfg.Lock.StaleAfterSeconds)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Fatal("expected error for directory, got nil")
		}
	})

	t.Run("overrides merge over defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		name := filepath.Join(tmpDir, "cfg.json")
		body := `{
			"StorePath": "/tmp/oldworld.db",
			"Worker": {"PoolSize": 4},
			"DynastyNormalization": {"NATION_ROME_SUCCESSOR": "NATION_ROME"}
		}`
		if err := os.WriteFile(name, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := config.Load(name, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorePath != "/tmp/oldworld.db" {
			t.Errorf("StorePath not merged: %q", cfg.StorePath)
		}
		if cfg.Worker.PoolSize != 4 {
			t.Errorf("Worker.PoolSize not merged: %d", cfg.Worker.PoolSize)
		}
		// defaults not present in the file must survive the merge
		if cfg.Archive.MaxEntries != 10 {
			t.Errorf("Archive.MaxEntries clobbered by merge: %d", cfg.Archive.MaxEntries)
		}
		if got := cfg.DynastyNormalization["NATION_ROME_SUCCESSOR"]; got != "NATION_ROME" {
			t.Errorf("dynasty normalization not merged: %q", got)
		}
	})

	t.Run("malformed json falls back to defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		name := filepath.Join(tmpDir, "cfg.json")
		if err := os.WriteFile(name, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := config.Load(name, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Archive.MaxEntries != 10 {
			t.Errorf("expected defaults on malformed json, got %d", cfg.Archive.MaxEntries)
		}
	})
}
