// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/playbymail/oldworldimport/internal/batch"
	"github.com/playbymail/oldworldimport/internal/orchestrator"
	"github.com/playbymail/oldworldimport/internal/progress"
	"github.com/playbymail/oldworldimport/internal/stdlib"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

var argsImport struct {
	store    string
	batchDir string
}

var cmdImport = &cobra.Command{
	Use:   "import",
	Short: "Import Old World save archives into the history store",
}

var cmdImportFile = &cobra.Command{
	Use:   "file ARCHIVE.zip",
	Short: "Import a single save archive",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("import file: expected exactly one archive path\n")
		}
		o, closeStore := openOrchestrator()
		defer closeStore()

		result, err := o.Import(context.Background(), args[0])
		if err != nil {
			log.Fatalf("import file: %v\n", err)
		}
		log.Printf("import file: %s turn %d: %s\n", result.GameID, result.Turn, result.Outcome)
	},
}

var cmdImportBatch = &cobra.Command{
	Use:   "batch",
	Short: "Import every *.zip archive in a directory, in name order",
	Run: func(cmd *cobra.Command, args []string) {
		files, err := stdlib.FindAllSaveFiles(argsImport.batchDir)
		if err != nil {
			log.Fatalf("import batch: %v\n", err)
		}
		o, closeStore := openOrchestrator()
		defer closeStore()

		summary := batch.Run(context.Background(), o, files, sinkFunc(), globalLogger)
		log.Printf("import batch: %d files, %d failed, elapsed %s\n", len(summary.Results), len(summary.Failures()), summary.Elapsed)
		for _, f := range summary.Failures() {
			log.Printf("import batch: %s: %v\n", f.File, f.Err)
		}
	},
}

func openOrchestrator() (*orchestrator.Orchestrator, func()) {
	store, err := sqlite.Open(argsImport.store)
	if err != nil {
		log.Fatalf("import: open store: %v\n", err)
	}
	return orchestrator.New(store, globalConfig, globalLogger, sinkFunc()), func() { _ = store.Close() }
}

func sinkFunc() progress.Sink {
	return progress.SinkFunc(func(e progress.Event) {
		globalLogger.Info().
			Str("phase", string(e.Phase)).
			Str("file", e.FileName).
			Int("file_index", e.FileIndex).
			Int("file_total", e.FileTotal).
			Msg("progress")
	})
}
