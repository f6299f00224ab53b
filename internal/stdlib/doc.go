// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stdlib provides file discovery and filesystem utilities for
// finding zipped save files on disk for the batch runner. It returns
// file metadata including size, SHA1 hash, and modification time, and
// provides a directory-existence check.
package stdlib
