// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stdlib

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File_t describes an archive file discovered on disk, ready to be
// handed to the batch runner (spec §4.10). Hash is computed eagerly so
// the caller can log/compare it without re-reading the file.
type File_t struct {
	Path     string    // full path to file
	Name     string    // file name
	Hash     string    // SHA1 hash of the file contents
	Size     int64     // size in bytes
	Modified time.Time // last modified time, hopefully always UTC
}

// FindAllSaveFiles returns every ".zip" file in the requested
// directory, sorted by name — the order the batch runner processes
// files in (spec §4.10, §5: "order of files in a batch is respected").
func FindAllSaveFiles(dir string) ([]*File_t, error) {
	if ok, err := IsDirExists(dir); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var list []*File_t
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			continue
		}
		item, err := FindSaveFile(dir, entry.Name())
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// FindSaveFile stats and hashes a single save file.
func FindSaveFile(dir, name string) (*File_t, error) {
	path := filepath.Join(dir, name)
	sb, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if sb.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	} else if !sb.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum(data)
	return &File_t{
		Path:     path,
		Name:     name,
		Hash:     fmt.Sprintf("%x", sum),
		Size:     sb.Size(),
		Modified: sb.ModTime().UTC(),
	}, nil
}
