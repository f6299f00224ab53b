// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package batch_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/playbymail/oldworldimport/internal/batch"
	"github.com/playbymail/oldworldimport/internal/config"
	"github.com/playbymail/oldworldimport/internal/orchestrator"
	"github.com/playbymail/oldworldimport/internal/stdlib"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

func writeZip(t *testing.T, dir, name, xmlPayload string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	w, err := zw.Create("snapshot.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(xmlPayload)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRun_ProcessesFilesInOrderAndContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeZip(t, dir, "a-turn1.zip", `<Root GameId="batch-game" MapWidth="4"><Game><Turn>1</Turn></Game></Root>`)
	writeZip(t, dir, "b-broken.zip", `not xml at all`)
	writeZip(t, dir, "c-turn2.zip", `<Root GameId="batch-game" MapWidth="4"><Game><Turn>2</Turn></Game></Root>`)

	files, err := stdlib.FindAllSaveFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}

	dbPath := filepath.Join(t.TempDir(), "store.db")
	if err := sqlite.Create(dbPath); err != nil {
		t.Fatal(err)
	}
	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	o := orchestrator.New(store, config.Default(), zerolog.Nop(), nil)
	summary := batch.Run(context.Background(), o, files, nil, zerolog.Nop())

	if len(summary.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(summary.Results))
	}
	if summary.Results[0].File != "a-turn1.zip" || summary.Results[1].File != "b-broken.zip" || summary.Results[2].File != "c-turn2.zip" {
		t.Fatalf("expected results in file-name order, got %+v", summary.Results)
	}
	if summary.Results[0].Err != nil {
		t.Fatalf("expected a-turn1.zip to import cleanly, got %v", summary.Results[0].Err)
	}
	if summary.Results[1].Err == nil {
		t.Fatal("expected b-broken.zip to fail")
	}
	if summary.Results[2].Err != nil {
		t.Fatalf("expected c-turn2.zip to import cleanly despite b's failure, got %v", summary.Results[2].Err)
	}
	if len(summary.Failures()) != 1 {
		t.Fatalf("expected exactly 1 failure, got %d", len(summary.Failures()))
	}
}
