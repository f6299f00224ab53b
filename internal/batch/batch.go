// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package batch runs a directory of save-file archives through the
// orchestrator one at a time, each in its own isolated transaction, so
// one bad file never rolls back another's import (spec §4.10).
package batch

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/playbymail/oldworldimport/internal/metrics"
	"github.com/playbymail/oldworldimport/internal/orchestrator"
	"github.com/playbymail/oldworldimport/internal/progress"
	"github.com/playbymail/oldworldimport/internal/stdlib"
)

// FileResult is the outcome of importing one file in a batch.
type FileResult struct {
	File   string
	Result *orchestrator.Result
	Err    error
}

// Summary is the accumulated result of a batch run (spec §4.10:
// "preserves file order", "accumulates failures without stopping").
type Summary struct {
	Results []FileResult
	Elapsed time.Duration
}

// Failures returns the subset of Results that did not import cleanly.
func (s *Summary) Failures() []FileResult {
	var out []FileResult
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Run imports every file in order, continuing past failures (spec
// §4.10, §5). Progress is reported before and after each file with
// elapsed time, throughput, and an ETA derived from the files
// completed so far.
func Run(ctx context.Context, o *orchestrator.Orchestrator, files []*stdlib.File_t, sink progress.Sink, logger zerolog.Logger) *Summary {
	if sink == nil {
		sink = progress.Discard
	}
	log := logger.With().Str("component", "batch").Logger()
	start := time.Now()
	summary := &Summary{Results: make([]FileResult, 0, len(files))}

	for i, f := range files {
		if ctx.Err() != nil {
			summary.Results = append(summary.Results, FileResult{File: f.Name, Err: ctx.Err()})
			metrics.BatchFilesTotal.WithLabelValues("cancelled").Inc()
			continue
		}

		elapsed := time.Since(start)
		sink.Progress(progress.Event{
			Phase:                progress.PhaseExtractSetup,
			FileIndex:            i,
			FileTotal:            len(files),
			FileName:             f.Name,
			ElapsedMS:            elapsed.Milliseconds(),
			EstimatedRemainingMS: estimateRemainingMS(elapsed, i, len(files)),
			ThroughputPerSec:     throughputPerSec(elapsed, i),
			CurrentPhaseName:     string(progress.PhaseExtractSetup),
			FileProgressFraction: float64(i) / float64(max(1, len(files))),
		})

		result, err := o.Import(ctx, f.Path)
		summary.Results = append(summary.Results, FileResult{File: f.Name, Result: result, Err: err})

		elapsed = time.Since(start)
		sink.Progress(progress.Event{
			Phase:                progress.PhaseFinalize,
			FileIndex:            i,
			FileTotal:            len(files),
			FileName:             f.Name,
			ElapsedMS:            elapsed.Milliseconds(),
			EstimatedRemainingMS: estimateRemainingMS(elapsed, i+1, len(files)),
			ThroughputPerSec:     throughputPerSec(elapsed, i+1),
			CurrentPhaseName:     string(progress.PhaseFinalize),
			FileProgressFraction: float64(i+1) / float64(max(1, len(files))),
		})

		if err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("import failed, continuing with next file")
			metrics.BatchFilesTotal.WithLabelValues("failed").Inc()
			continue
		}
		log.Info().Str("file", f.Name).Str("outcome", string(result.Outcome)).
			Str("throughput", humanize.Bytes(uint64(f.Size))+"/file").
			Msg("file processed")
		metrics.BatchFilesTotal.WithLabelValues(string(result.Outcome)).Inc()
	}

	summary.Elapsed = time.Since(start)
	return summary
}

func throughputPerSec(elapsed time.Duration, completed int) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(completed) / elapsed.Seconds()
}

func estimateRemainingMS(elapsed time.Duration, completed, total int) int64 {
	if completed == 0 || total == 0 {
		return 0
	}
	perFile := elapsed / time.Duration(completed)
	remaining := total - completed
	if remaining < 0 {
		remaining = 0
	}
	return (perFile * time.Duration(remaining)).Milliseconds()
}
