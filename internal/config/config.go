// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/playbymail/oldworldimport/cerrs"
)

// Config holds every tunable the ingestion pipeline needs that isn't
// hard-coded invariant behavior: where the store lives, how much
// parallelism the parser waves get, the archive safety bounds from
// spec §4.1, the dynasty-normalization table (an explicit Open
// Question in spec §9 — data, not core behavior), and the stale-lock
// window from spec §4.9.
type Config struct {
	StorePath string `json:"StorePath,omitempty"`

	Worker  Worker_t  `json:"Worker"`
	Archive Archive_t `json:"Archive"`
	Lock    Lock_t    `json:"Lock"`

	// DynastyNormalization maps a source nation code that denotes a
	// successor dynasty to the parent civilization's nation code. An
	// empty map disables normalization entirely; the mapping is
	// configuration, not core behavior (spec §4.4, §9).
	DynastyNormalization map[string]string `json:"DynastyNormalization,omitempty"`
}

type Worker_t struct {
	// PoolSize bounds how many entity-family parsers run concurrently
	// within a parse wave (spec §4.9, §5). Zero means "use GOMAXPROCS".
	PoolSize int `json:"PoolSize,omitempty"`
}

type Archive_t struct {
	MaxCompressedBytes   int64 `json:"MaxCompressedBytes,omitempty"`
	MaxUncompressedBytes int64 `json:"MaxUncompressedBytes,omitempty"`
	MaxEntries           int   `json:"MaxEntries,omitempty"`
	MaxRatio             int64 `json:"MaxRatio,omitempty"`
}

type Lock_t struct {
	// StaleAfterSeconds is the age at which a locks row is considered
	// abandoned and may be preempted (spec §4.9: "10 minutes").
	StaleAfterSeconds int `json:"StaleAfterSeconds,omitempty"`
}

const (
	ErrIsDirectory = cerrs.Error("is directory")
	ErrIsNotAFile  = cerrs.Error("is not a file")
)

// Default returns the configuration every import runs with unless a
// configuration file overrides specific fields (see Load).
func Default() *Config {
	return &Config{
		Worker: Worker_t{
			PoolSize: 0,
		},
		Archive: Archive_t{
			MaxCompressedBytes:   50 * 1024 * 1024,
			MaxUncompressedBytes: 100 * 1024 * 1024,
			MaxEntries:           10,
			MaxRatio:             100,
		},
		Lock: Lock_t{
			StaleAfterSeconds: 600,
		},
		DynastyNormalization: map[string]string{},
	}
}

// Load reads a JSON configuration file and merges its non-zero fields
// over the defaults. A missing file is not an error — the caller gets
// Default() back, the same tolerant-of-absence behavior the rest of
// this corpus's config loaders use.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, ErrIsNotAFile
	}

	var tmp Config
	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}
	if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	copyNonZeroFields(&tmp, cfg)
	for k, v := range tmp.DynastyNormalization {
		cfg.DynastyNormalization[k] = v
	}

	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		case reflect.Map:
			// handled explicitly by the caller (DynastyNormalization);
			// a zero-value check above already skips nil maps.
		default:
			dstField.Set(srcField)
		}
	}
}
