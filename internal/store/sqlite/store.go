// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package sqlite is the persistence layer for imported snapshots,
// backed by modernc.org/sqlite (pure Go, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"os"

	"github.com/playbymail/oldworldimport/cerrs"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaDDL string

// fileExists reports whether path exists and is a regular file. Open
// and Create both need this before touching the database handle, so
// it lives here rather than as a general-purpose stdlib helper.
func fileExists(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	} else if sb.IsDir() {
		return false, nil
	}
	return sb.Mode().IsRegular(), nil
}

// Store owns the database connection for the life of a process. One
// Store backs arbitrarily many snapshot imports; callers ask it for a
// Tx to do the single-transaction-per-snapshot work described in the
// import orchestrator.
type Store struct {
	path string
	db   *sql.DB
	q    *Queries
}

// Create initializes a new database file and schema. Fails if the
// file already exists; callers must remove it first to start fresh.
func Create(path string) error {
	if ok, err := fileExists(path); err != nil {
		log.Printf("store: create: %q: %v\n", path, err)
		return err
	} else if ok {
		return cerrs.ErrDatabaseExists
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("store: create: %v\n", err)
		return err
	}
	defer func() { _ = db.Close() }()

	if rslt, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		return cerrs.ErrPragmaReturnedNil
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		log.Printf("store: create: schema: %v\n", err)
		return errors.Join(cerrs.ErrCreateSchema, err)
	}

	log.Printf("store: created %s\n", path)
	return nil
}

// Open opens an existing database file. Fails if the file does not
// exist.
func Open(path string) (*Store, error) {
	if ok, err := fileExists(path); err != nil {
		return nil, err
	} else if !ok {
		return nil, cerrs.ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if rslt, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		_ = db.Close()
		return nil, cerrs.ErrPragmaReturnedNil
	}

	return &Store{path: path, db: db, q: New(db)}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Queries returns the connection-scoped query set, for work that
// doesn't participate in a snapshot's transaction (e.g. the
// orchestrator's lock-row acquire/release and its dup-check).
func (s *Store) Queries() *Queries { return s.q }

// Tx begins a transaction scoped to one snapshot import and returns a
// Queries bound to it, plus the raw *sql.Tx for Commit/Rollback. The
// orchestrator owns exactly one of these per snapshot (spec §4.9
// IMPORTING: "open a single transaction on the store").
func (s *Store) Tx(ctx context.Context) (*sql.Tx, *Queries, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return tx, s.q.WithTx(tx), nil
}
