// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package xmldom parses an extracted save-file payload into a
// read-only, in-memory node tree and exposes typed accessors with two
// contracts (spec §4.2): required attribute/child-text lookups that
// fail with a structured, located error, and optional lookups that
// return a missing-value indicator instead.
//
// The tree is built once from a decoded string and never mutated
// after Parse returns, so it is safe to hand a *Document by reference
// to every entity parser running in its own goroutine (spec §4.4,
// §5). The Document retains its backing string for the life of the
// tree — nothing here aliases the caller's buffer — so diagnostic
// tooling can always recover the source text a node came from.
package xmldom
