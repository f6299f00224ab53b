// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package idmap stabilizes per-snapshot source ids into globally
// unique, re-import-stable store ids (spec §4.6). A snapshot's source
// ids are 0-based and collide across snapshots; store ids must not
// change when the same (game_id, turn) is imported again.
package idmap

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

// Mapper owns the source-id → store-id translation for one snapshot
// import. It is single-threaded: the orchestrator mutates it only
// during insertion, inside the snapshot's transaction (spec §5).
type Mapper struct {
	ctx        context.Context
	q          *sqlite.Queries
	snapshotID int64

	cache map[string]map[string]int64 // family -> source id (string form) -> store id
}

// New constructs a mapper for a fresh (not yet imported) snapshot.
func New(ctx context.Context, q *sqlite.Queries, snapshotID int64) *Mapper {
	return &Mapper{ctx: ctx, q: q, snapshotID: snapshotID, cache: make(map[string]map[string]int64)}
}

// Load restores a mapper's cache from a prior import of the same
// snapshot (spec §4.6 "load(snapshot_id)"), used on re-import so
// foundation store ids stay stable (spec §3 invariant 5).
func Load(ctx context.Context, q *sqlite.Queries, snapshotID int64) (*Mapper, error) {
	m := New(ctx, q, snapshotID)
	rows, err := q.ListIDMappingsForSnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		m.put(row.EntityFamily, row.SourceID, row.StoreID)
	}
	return m, nil
}

func (m *Mapper) put(family, sourceID string, storeID int64) {
	fam, ok := m.cache[family]
	if !ok {
		fam = make(map[string]int64)
		m.cache[family] = fam
	}
	fam[sourceID] = storeID
}

func key(sourceID any) string {
	switch v := sourceID.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Map returns the stable store id for a source id, allocating a fresh
// one on first sight via the family's monotonic counter (spec §4.6
// "map(source_id) → store_id").
func (m *Mapper) Map(family string, sourceID any) (int64, error) {
	k := key(sourceID)
	if fam, ok := m.cache[family]; ok {
		if storeID, ok := fam[k]; ok {
			return storeID, nil
		}
	}
	storeID, err := m.q.NextIDCounter(m.ctx, family)
	if err != nil {
		return 0, err
	}
	m.put(family, k, storeID)
	return storeID, nil
}

// Lookup resolves an already-mapped source id for a FK field,
// returning a missing-reference error if it was never seen in this
// snapshot (spec §4.6 "lookup(source_id) → store_id or
// missing-reference error").
func (m *Mapper) Lookup(family string, sourceID any) (int64, error) {
	k := key(sourceID)
	if fam, ok := m.cache[family]; ok {
		if storeID, ok := fam[k]; ok {
			return storeID, nil
		}
	}
	return 0, cerrs.ErrMissingLookup
}

// Persist writes every mapping accumulated this import to the
// id_mappings table (spec §4.6 "persist()"), so a later re-import of
// the same snapshot restores identical store ids via Load.
func (m *Mapper) Persist(ctx context.Context) error {
	for family, entries := range m.cache {
		for sourceID, storeID := range entries {
			if err := m.q.UpsertIDMapping(ctx, sqlite.UpsertIDMappingParams{
				SnapshotID: m.snapshotID, EntityFamily: family, SourceID: sourceID, StoreID: storeID,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// IntKey is a convenience for callers keying by a numeric source id
// without allocating a fmt.Sprintf format string at every call site.
func IntKey(n int) string { return strconv.Itoa(n) }
