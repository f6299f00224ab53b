// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

func TestNextIDCounter_MonotonicPerFamily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	if err := sqlite.Create(path); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	q := store.Queries()

	first, err := q.NextIDCounter(ctx, "character")
	if err != nil || first != 1 {
		t.Fatalf("expected first character id 1, got %d, %v", first, err)
	}
	second, err := q.NextIDCounter(ctx, "character")
	if err != nil || second != 2 {
		t.Fatalf("expected second character id 2, got %d, %v", second, err)
	}
	otherFamily, err := q.NextIDCounter(ctx, "player")
	if err != nil || otherFamily != 1 {
		t.Fatalf("expected independent counter per family, got %d, %v", otherFamily, err)
	}
}

func TestUpsertIDMapping_LoadForSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	if err := sqlite.Create(path); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	q := store.Queries()

	if err := q.UpsertIDMapping(ctx, sqlite.UpsertIDMappingParams{SnapshotID: 1, EntityFamily: "player", SourceID: "0", StoreID: 7}); err != nil {
		t.Fatalf("UpsertIDMapping: %v", err)
	}
	if err := q.UpsertIDMapping(ctx, sqlite.UpsertIDMappingParams{SnapshotID: 1, EntityFamily: "player", SourceID: "0", StoreID: 7}); err != nil {
		t.Fatalf("UpsertIDMapping (idempotent re-import): %v", err)
	}

	mappings, err := q.ListIDMappingsForSnapshot(ctx, 1)
	if err != nil {
		t.Fatalf("ListIDMappingsForSnapshot: %v", err)
	}
	if len(mappings) != 1 || mappings[0].StoreID != 7 {
		t.Fatalf("expected one stable mapping, got %+v", mappings)
	}
}
