// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package idmap_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/idmap"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	if err := sqlite.Create(path); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMapper_MapIsStableWithinSnapshot(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	m := idmap.New(ctx, store.Queries(), 1)

	first, err := m.Map("player", 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	second, err := m.Map("player", 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if first != second {
		t.Fatalf("expected repeated Map of same source id to return the same store id, got %d and %d", first, second)
	}
}

func TestMapper_LookupMissingFails(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	m := idmap.New(ctx, store.Queries(), 1)

	if _, err := m.Lookup("player", 99); !errors.Is(err, cerrs.ErrMissingLookup) {
		t.Fatalf("expected ErrMissingLookup, got %v", err)
	}
}

func TestMapper_PersistAndLoad_StableAcrossReimport(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	m1 := idmap.New(ctx, store.Queries(), 1)
	storeID, err := m1.Map("player", 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if err := m1.Persist(ctx); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	m2, err := idmap.Load(ctx, store.Queries(), 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	restored, err := m2.Lookup("player", 0)
	if err != nil {
		t.Fatalf("Lookup after Load: %v", err)
	}
	if restored != storeID {
		t.Fatalf("expected re-import to resolve the same store id %d, got %d", storeID, restored)
	}
}

func TestMapper_TribeStringSourceID(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	m := idmap.New(ctx, store.Queries(), 1)

	a, err := m.Map("tribe", "NOMADS_A")
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	b, err := m.Map("tribe", "NOMADS_A")
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if a != b {
		t.Fatalf("expected stable mapping for string source id, got %d and %d", a, b)
	}
}
