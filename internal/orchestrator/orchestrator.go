// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package orchestrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/archive"
	"github.com/playbymail/oldworldimport/internal/config"
	"github.com/playbymail/oldworldimport/internal/idmap"
	"github.com/playbymail/oldworldimport/internal/metrics"
	"github.com/playbymail/oldworldimport/internal/progress"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
	"github.com/playbymail/oldworldimport/internal/validate"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// Orchestrator drives one snapshot import at a time per game, end to
// end: extraction, parsing, validation, the multi-pass insert order,
// and commit/rollback (spec §4.8, §4.9).
type Orchestrator struct {
	store     *sqlite.Store
	cfg       *config.Config
	logger    zerolog.Logger
	sink      progress.Sink
	processID string
	locks     *lockRegistry
}

// New constructs an Orchestrator bound to one store. processID
// identifies this process in the locks table so a crashed holder's
// stale lock can be distinguished from this process retrying.
func New(store *sqlite.Store, cfg *config.Config, logger zerolog.Logger, sink progress.Sink) *Orchestrator {
	if sink == nil {
		sink = progress.Discard
	}
	return &Orchestrator{
		store:     store,
		cfg:       cfg,
		logger:    logger.With().Str("component", "orchestrator").Logger(),
		sink:      sink,
		processID: uuid.NewString(),
		locks:     processLocks,
	}
}

// Import runs one archive through the full state machine (spec §4.9):
//
//	IDLE -> LOCKING -> DUP-CHECK -> {SKIP, IMPORTING} -> COMMITTING -> DONE
//	                                        | (failure)
//	                                   ROLLING-BACK -> FAILED
func (o *Orchestrator) Import(ctx context.Context, archivePath string) (*Result, error) {
	start := time.Now()
	o.emit(progress.PhaseExtractSetup, archivePath, 0)

	bounds := archive.Bounds{
		MaxCompressedBytes:   o.cfg.Archive.MaxCompressedBytes,
		MaxUncompressedBytes: o.cfg.Archive.MaxUncompressedBytes,
		MaxEntries:           o.cfg.Archive.MaxEntries,
		MaxRatio:             o.cfg.Archive.MaxRatio,
	}
	payload, _, err := archive.ExtractFile(archivePath, bounds)
	if err != nil {
		return o.failGame("", 0, StateIdle, fmt.Errorf("extract: %w", err))
	}
	doc, err := xmldom.Parse(payload)
	if err != nil {
		return o.failGame("", 0, StateIdle, fmt.Errorf("parse xml: %w", err))
	}
	snap, err := parseSnapshot(doc)
	if err != nil {
		return o.failGame("", 0, StateIdle, fmt.Errorf("parse snapshot: %w", err))
	}

	gameLock := o.locks.forGame(snap.GameID)
	gameLock.Lock()
	defer gameLock.Unlock()

	return o.importLocked(ctx, snap.GameID, snap.Turn, doc, start)
}

func (o *Orchestrator) importLocked(ctx context.Context, gameID string, turn int, doc *xmldom.Document, start time.Time) (*Result, error) {
	metrics.ImportsInFlight.Inc()
	defer metrics.ImportsInFlight.Dec()

	log := o.logger.With().Str("game_id", gameID).Int("turn", turn).Logger()

	// LOCKING: acquire the cross-process row lock, preempting a stale
	// holder (spec §4.9).
	q := o.store.Queries()
	now := time.Now().UTC()
	staleBefore := now.Add(-time.Duration(o.cfg.Lock.StaleAfterSeconds) * time.Second)
	affected, err := q.AcquireLock(ctx, gameID, now.Format(time.RFC3339Nano), o.processID, staleBefore.Format(time.RFC3339Nano))
	if err != nil {
		return o.failGame(gameID, turn, StateLocking, fmt.Errorf("acquire lock: %w", err))
	}
	if affected == 0 {
		log.Warn().Msg("lock held by another process, import in progress")
		return o.failGame(gameID, turn, StateLocking, cerrs.ErrImportInProgress)
	}
	defer func() {
		if err := q.ReleaseLock(context.Background(), gameID, o.processID); err != nil {
			log.Error().Err(err).Msg("failed to release lock")
		}
	}()

	// DUP-CHECK (spec §4.9).
	if _, err := q.FindSnapshot(ctx, gameID, int64(turn)); err == nil {
		log.Info().Msg("snapshot already imported, skipping")
		metrics.ImportsTotal.WithLabelValues("skipped").Inc()
		return &Result{GameID: gameID, Turn: turn, Outcome: OutcomeAlreadyImported, FinalState: StateSkip}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return o.failGame(gameID, turn, StateDupCheck, fmt.Errorf("dup-check: %w", err))
	}

	// IMPORTING.
	result, err := o.runImport(ctx, gameID, turn, doc, log)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("import failed")
		metrics.ImportsTotal.WithLabelValues("failed").Inc()
		return result, err
	}
	log.Info().Dur("elapsed", elapsed).Msg("import complete")
	metrics.ImportsTotal.WithLabelValues("imported").Inc()
	return result, nil
}

// runImport performs DUP-CHECK-passed IMPORTING through COMMITTING: one
// transaction per snapshot (spec §4.9), parallel parse waves, the
// multi-pass insertion order, and the Finalize step.
func (o *Orchestrator) runImport(ctx context.Context, gameID string, turn int, doc *xmldom.Document, log zerolog.Logger) (*Result, error) {
	tx, q, err := o.store.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	rollback := func(cause error) (*Result, error) {
		_ = tx.Rollback()
		return &Result{GameID: gameID, Turn: turn, Outcome: OutcomeFailed, FinalState: StateFailed, Err: cause}, cause
	}

	bundle, err := parseBundle(ctx, doc, o.cfg)
	if err != nil {
		return rollback(fmt.Errorf("parse bundle: %w", err))
	}

	vr := validate.Bundle(bundle)
	for _, w := range vr.Warnings {
		log.Warn().Str("family", w.Family).Msg(w.Detail)
	}
	if vr.Err != nil {
		return rollback(fmt.Errorf("validate: %w", vr.Err))
	}

	snapshotID, err := q.CreateSnapshot(ctx, sqlite.CreateSnapshotParams{
		GameID:         gameID,
		Turn:           int64(turn),
		MapWidth:       int64(bundle.Snapshot.MapWidth),
		MapSize:        int64(bundle.Snapshot.MapSize),
		MapAspectRatio: bundle.Snapshot.MapAspectRatio,
		ImportedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return rollback(fmt.Errorf("create snapshot: %w", err))
	}

	mapper := idmap.New(ctx, q, snapshotID)

	if err := insertBundle(ctx, q, mapper, snapshotID, bundle, o.phaseEmitter(gameID, turn)); err != nil {
		return rollback(fmt.Errorf("insert: %w", err))
	}

	if bundle.Snapshot.WinnerID != nil {
		winnerStoreID, err := mapper.Lookup(familyPlayer, int(*bundle.Snapshot.WinnerID))
		if err != nil {
			return rollback(fmt.Errorf("resolve winner: %w", err))
		}
		if err := q.SetSnapshotWinner(ctx, snapshotID, winnerStoreID); err != nil {
			return rollback(fmt.Errorf("set winner: %w", err))
		}
	}

	o.emit(progress.PhaseFinalize, gameID, 1)
	if err := mapper.Persist(ctx); err != nil {
		return rollback(fmt.Errorf("persist id mappings: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return rollback(fmt.Errorf("commit: %w", err))
	}

	return &Result{GameID: gameID, Turn: turn, SnapshotID: snapshotID, Outcome: OutcomeImported, FinalState: StateDone}, nil
}

func (o *Orchestrator) phaseEmitter(gameID string, turn int) func(progress.Phase) {
	return func(p progress.Phase) { o.emit(p, gameID, 1) }
}

func (o *Orchestrator) emit(phase progress.Phase, name string, fraction float64) {
	o.sink.Progress(progress.Event{
		Phase:                phase,
		FileName:             name,
		CurrentPhaseName:     string(phase),
		FileProgressFraction: fraction,
	})
}

func (o *Orchestrator) failGame(gameID string, turn int, state State, err error) (*Result, error) {
	metrics.ImportsTotal.WithLabelValues("failed").Inc()
	return &Result{GameID: gameID, Turn: turn, Outcome: OutcomeFailed, FinalState: state, Err: err}, err
}
