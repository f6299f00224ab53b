// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

var argsDb struct {
	store string // path to the database file to create
}

var cmdDb = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
}

var cmdDbInit = &cobra.Command{
	Use:   "init",
	Short: "Create a new, empty history store",
	Run: func(cmd *cobra.Command, args []string) {
		if err := sqlite.Create(argsDb.store); err != nil {
			log.Fatalf("db init: %v\n", err)
		}
		log.Printf("db init: created %q\n", argsDb.store)
	},
}
