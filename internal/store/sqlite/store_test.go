// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

func TestCreate_RejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	if err := sqlite.Create(path); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := sqlite.Create(path); !errors.Is(err, cerrs.ErrDatabaseExists) {
		t.Fatalf("expected ErrDatabaseExists on second create, got %v", err)
	}
}

func TestOpen_RejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	if _, err := sqlite.Open(path); !errors.Is(err, cerrs.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestCreateOpen_RoundTripSnapshot(t *testing.T) {
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
	tx, q, err := store.Tx(ctx)
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	defer tx.Rollback()

	snapshotID, err := q.CreateSnapshot(ctx, sqlite.CreateSnapshotParams{
		GameID: "g1", Turn: 1, MapWidth: 4, ImportedAt: "2026-07-29T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}

	n, err := q.InsertPlayers(ctx, []sqlite.PlayerRow{
		{PlayerID: 1, SnapshotID: snapshotID, Name: "Romulus", Nation: "NATION_ROME", IsHuman: true},
	})
	if err != nil || n != 1 {
		t.Fatalf("InsertPlayers: n=%d, err=%v", n, err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	found, err := store.Queries().FindSnapshot(ctx, "g1", 1)
	if err != nil {
		t.Fatalf("FindSnapshot: %v", err)
	}
	if found.SnapshotID != snapshotID {
		t.Fatalf("expected snapshot id %d, got %d", snapshotID, found.SnapshotID)
	}
}

func TestAcquireLock_StalePreemption(t *testing.T) {
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

	n, err := q.AcquireLock(ctx, "game-1", "2026-01-01T00:00:00Z", "proc-a", "2020-01-01T00:00:00Z")
	if err != nil || n != 1 {
		t.Fatalf("expected first acquire to succeed: n=%d, err=%v", n, err)
	}

	n, err = q.AcquireLock(ctx, "game-1", "2026-01-02T00:00:00Z", "proc-b", "2020-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected second acquire to fail while lock is fresh, got rowsAffected=%d", n)
	}

	n, err = q.AcquireLock(ctx, "game-1", "2026-01-02T00:00:00Z", "proc-b", "2026-01-01T12:00:00Z")
	if err != nil || n != 1 {
		t.Fatalf("expected stale-lock preemption to succeed: n=%d, err=%v", n, err)
	}

	lock, err := q.GetLock(ctx, "game-1")
	if err != nil {
		t.Fatalf("GetLock: %v", err)
	}
	if lock.LockerProcessID != "proc-b" {
		t.Fatalf("expected proc-b to hold the lock after preemption, got %q", lock.LockerProcessID)
	}
}
