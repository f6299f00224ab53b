// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs implements constant errors.
package cerrs

// Error defines a constant error
type Error string

// Error implements the Errors interface
func (e Error) Error() string { return string(e) }

// Security errors: archive extraction bounds and path safety (spec §4.1, §7).
const (
	ErrArchiveTooLarge        = Error("archive: compressed size exceeds bound")
	ErrUncompressedTooLarge   = Error("archive: uncompressed size exceeds bound")
	ErrTooManyEntries         = Error("archive: too many entries")
	ErrNoXMLPayload           = Error("archive: no xml payload found")
	ErrMultipleXMLPayloads    = Error("archive: more than one xml payload found")
	ErrCompressionRatio       = Error("archive: compression ratio exceeds bound")
	ErrUnsafePayloadName      = Error("archive: unsafe payload name")
	ErrPayloadNotUTF8         = Error("archive: payload is not valid utf-8")
	ErrNestedDirectory        = Error("archive: nested directories not permitted")
	ErrUnsupportedCompression = Error("archive: unsupported compression method")
)

// Format errors: malformed XML, missing/unparseable fields (spec §4.2, §7).
const (
	ErrMalformedXML      = Error("xml: malformed document")
	ErrMissingAttribute  = Error("xml: required attribute missing")
	ErrMissingChildText  = Error("xml: required child text missing")
	ErrNotParseableInt   = Error("xml: value not parseable as integer")
	ErrNotParseableFloat = Error("xml: value not parseable as float")
	ErrEmptyDocument     = Error("xml: document has no root element")
	ErrMissingGameID     = Error("xml: root element missing GameId")
	ErrMissingTurn       = Error("xml: root element missing Game/Turn")
)

// Referential errors: source ids used but never declared, FK failures (spec §4.5, §7).
const (
	ErrUnresolvedReference = Error("referential: source id not declared in snapshot")
	ErrSelfReference       = Error("referential: self-reference not permitted")
	ErrDuplicateSourceID   = Error("referential: duplicate source id in entity family")
	ErrDeathBeforeBirth    = Error("referential: death turn precedes birth turn")
	ErrNegativeTurn        = Error("referential: time-series turn is negative")
)

// Concurrency errors: per-game locking (spec §4.9, §5, §7).
const (
	ErrImportInProgress = Error("concurrency: snapshot import already in progress")
	ErrLockNotHeld      = Error("concurrency: lock row not held by this process")
)

// Store errors: underlying storage failures and schema setup (spec §4.6, §4.7, §7).
const (
	ErrCreateSchema        = Error("store: create schema")
	ErrDatabaseExists      = Error("store: database already exists")
	ErrForeignKeysDisabled = Error("store: foreign keys disabled")
	ErrInvalidPath         = Error("store: invalid path")
	ErrPragmaReturnedNil   = Error("store: pragma returned nil")
	ErrNotFound            = Error("store: not found")
	ErrMappingNotFound     = Error("store: identifier mapping not found")
	ErrNotDirectory        = Error("store: not a directory")

	// ErrMissingLookup is returned by the identifier mapper's read-only
	// lookup when a source id was never mapped. Distinct from
	// ErrMappingNotFound (a store-layer miss): the mapper can answer
	// from its in-memory cache without touching the store.
	ErrMissingLookup = Error("store: no mapping for source id")
)

// Cancellation errors (spec §5, §7).
const (
	ErrCancelled = Error("cancelled: import aborted by caller")
)

// Snapshot-lifecycle signal. Not a failure: dup-check (spec §4.9) uses
// this to short-circuit IMPORTING into a skip-with-success result.
const (
	ErrSnapshotAlreadyImported = Error("snapshot: already imported")
)
