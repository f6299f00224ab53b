// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the oldworldctl application.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/playbymail/oldworldimport/internal/config"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
	globalLogger zerolog.Logger
)

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "oldworldctl.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}
	globalConfig = cfg
	globalLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cmdRoot.AddCommand(cmdDb)
	cmdDb.AddCommand(cmdDbInit)
	cmdDbInit.Flags().StringVar(&argsDb.store, "store", "", "path to the database file to create")
	if err := cmdDbInit.MarkFlagRequired("store"); err != nil {
		log.Fatalf("store: %v\n", err)
	}

	cmdRoot.AddCommand(cmdImport)
	cmdImport.PersistentFlags().StringVar(&argsImport.store, "store", "", "path to the database file")
	if err := cmdImport.MarkPersistentFlagRequired("store"); err != nil {
		log.Fatalf("store: %v\n", err)
	}

	cmdImport.AddCommand(cmdImportFile)
	cmdImport.AddCommand(cmdImportBatch)
	cmdImportBatch.Flags().StringVar(&argsImport.batchDir, "dir", "", "directory of zip archives to import, in name order")
	if err := cmdImportBatch.MarkFlagRequired("dir"); err != nil {
		log.Fatalf("dir: %v\n", err)
	}

	cmdRoot.AddCommand(cmdVersion)

	return cmdRoot.Execute()
}

var cmdRoot = &cobra.Command{
	Use:   "oldworldctl",
	Short: "Root command for our application",
	Long:  `Ingest Old World save files into a queryable history store.`,
}
