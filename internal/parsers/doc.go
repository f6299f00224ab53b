// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package parsers implements the entity parsers from spec §4.4: one
// pure function per entity family, mostly of shape
// `ParseX(*xmldom.Document) ([]*model.X_t, error)`; some take an extra
// argument (such as the map width) and the extended-data parsers
// return several slices at once. Every parser
// reads only its own slice of the tree, allocates its own result
// slice, and touches no shared mutable state — the orchestrator runs
// them concurrently within a wave (spec §4.9, §5) and only needs to
// join the results.
//
// Shared rules (spec §4.4) — sentinel translation, attribute
// precedence, last-wins deduplication, and sparse time-series
// iteration — live in common.go so every per-family parser applies
// them identically instead of re-implementing them.
package parsers
