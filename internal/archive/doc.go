// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package archive validates and extracts a zip-wrapped save-file
// payload under the strict safety bounds in spec §4.1: compressed and
// uncompressed size limits, entry-count limit, a compression-ratio
// zip-bomb guard, path-safety checks on the payload name, and a
// UTF-8 decoding requirement. Every bound violation fails with a
// distinct, named error before any further work happens.
//
// The zip-opening approach follows the teacher's own
// internal/stores/office docx reader, which opens a zip archive with
// stdlib archive/zip to pull a single named member out of a small
// office-document container — the same shape of problem, now with
// explicit bounds instead of implicit trust.
package archive
