// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package orchestrator drives one snapshot import end-to-end: lock
// acquisition, duplicate detection, parallel entity parsing, the
// multi-pass insertion order, and commit/rollback (spec §4.8, §4.9).
package orchestrator
