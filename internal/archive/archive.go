// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/playbymail/oldworldimport/cerrs"
)

// Bounds carries the limits from spec §4.1. DefaultBounds returns the
// spec's own numbers.
type Bounds struct {
	MaxCompressedBytes   int64
	MaxUncompressedBytes int64
	MaxEntries           int
	MaxRatio             int64
}

func DefaultBounds() Bounds {
	return Bounds{
		MaxCompressedBytes:   50 * 1024 * 1024,
		MaxUncompressedBytes: 100 * 1024 * 1024,
		MaxEntries:           10,
		MaxRatio:             100,
	}
}

// ExtractBytes validates and extracts the single XML payload from a
// zip archive already loaded into memory. Returns the payload as a
// UTF-8 string plus the member's name.
func ExtractBytes(data []byte, bounds Bounds) (payload string, name string, err error) {
	if int64(len(data)) > bounds.MaxCompressedBytes {
		return "", "", cerrs.ErrArchiveTooLarge
	}
	r, zerr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zerr != nil {
		return "", "", cerrs.ErrMalformedXML
	}
	return extract(r, bounds)
}

// ExtractFile validates and extracts the single XML payload from a
// zip archive on disk, checking the compressed-size bound against the
// sum of the entries' declared compressed sizes before reading any
// entry into memory.
func ExtractFile(pathOnDisk string, bounds Bounds) (payload string, name string, err error) {
	zr, zerr := zip.OpenReader(pathOnDisk)
	if zerr != nil {
		return "", "", cerrs.ErrMalformedXML
	}
	defer zr.Close()

	var compressedTotal int64
	for _, f := range zr.File {
		compressedTotal += int64(f.CompressedSize64)
	}
	if compressedTotal > bounds.MaxCompressedBytes {
		return "", "", cerrs.ErrArchiveTooLarge
	}
	return extract(&zr.Reader, bounds)
}

func extract(r *zip.Reader, bounds Bounds) (string, string, error) {
	if len(r.File) > bounds.MaxEntries {
		return "", "", cerrs.ErrTooManyEntries
	}

	var compressedTotal, uncompressedTotal int64
	var xmlEntries []*zip.File
	for _, f := range r.File {
		if err := validateEntryName(f.Name); err != nil {
			return "", "", err
		}
		if f.FileInfo().IsDir() {
			return "", "", cerrs.ErrNestedDirectory
		}
		switch f.Method {
		case zip.Store, zip.Deflate:
			// allowed (spec §6: "ZIP (STORE or DEFLATE)")
		default:
			return "", "", cerrs.ErrUnsupportedCompression
		}
		compressedTotal += int64(f.CompressedSize64)
		uncompressedTotal += int64(f.UncompressedSize64)
		if strings.EqualFold(path.Ext(f.Name), ".xml") {
			xmlEntries = append(xmlEntries, f)
		}
	}

	if uncompressedTotal > bounds.MaxUncompressedBytes {
		return "", "", cerrs.ErrUncompressedTooLarge
	}
	if compressedTotal > 0 && uncompressedTotal/compressedTotal > bounds.MaxRatio {
		return "", "", cerrs.ErrCompressionRatio
	}

	if len(xmlEntries) == 0 {
		return "", "", cerrs.ErrNoXMLPayload
	} else if len(xmlEntries) > 1 {
		return "", "", cerrs.ErrMultipleXMLPayloads
	}
	entry := xmlEntries[0]

	rc, err := entry.Open()
	if err != nil {
		return "", "", cerrs.ErrMalformedXML
	}
	defer rc.Close()

	// Bound the read independently of the declared uncompressed size —
	// a crafted header cannot be trusted past the declared-size check
	// already performed above.
	limited := io.LimitReader(rc, bounds.MaxUncompressedBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", "", cerrs.ErrMalformedXML
	}
	if int64(len(data)) > bounds.MaxUncompressedBytes {
		return "", "", cerrs.ErrUncompressedTooLarge
	}
	if !utf8.Valid(data) {
		return "", "", cerrs.ErrPayloadNotUTF8
	}

	return string(data), entry.Name, nil
}

// validateEntryName enforces spec §4.1's payload-name rules: no
// absolute paths, no "..", no control characters, must normalize to a
// single path component.
func validateEntryName(name string) error {
	if name == "" {
		return cerrs.ErrUnsafePayloadName
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return cerrs.ErrUnsafePayloadName
		}
	}
	if path.IsAbs(name) || strings.HasPrefix(name, "/") {
		return cerrs.ErrUnsafePayloadName
	}
	cleaned := path.Clean(name)
	if cleaned != name || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return cerrs.ErrUnsafePayloadName
	}
	if strings.Contains(cleaned, "/") {
		return cerrs.ErrNestedDirectory
	}
	return nil
}
