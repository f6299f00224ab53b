// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package archive_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/archive"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractBytes_Happy(t *testing.T) {
	data := buildZip(t, map[string]string{"save.xml": `<Root GameId="g1"/>`})
	payload, name, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "save.xml" {
		t.Errorf("name = %q", name)
	}
	if payload != `<Root GameId="g1"/>` {
		t.Errorf("payload = %q", payload)
	}
}

func TestExtractBytes_NoXML(t *testing.T) {
	data := buildZip(t, map[string]string{"readme.txt": "hello"})
	_, _, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if !errors.Is(err, cerrs.ErrNoXMLPayload) {
		t.Fatalf("expected ErrNoXMLPayload, got %v", err)
	}
}

func TestExtractBytes_MultipleXML(t *testing.T) {
	data := buildZip(t, map[string]string{"a.xml": "<A/>", "b.xml": "<B/>"})
	_, _, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if !errors.Is(err, cerrs.ErrMultipleXMLPayloads) {
		t.Fatalf("expected ErrMultipleXMLPayloads, got %v", err)
	}
}

func TestExtractBytes_TooManyEntries(t *testing.T) {
	files := map[string]string{"save.xml": "<A/>"}
	for i := 0; i < 15; i++ {
		files["pad"+string(rune('a'+i))+".txt"] = "x"
	}
	data := buildZip(t, files)
	bounds := archive.DefaultBounds()
	bounds.MaxEntries = 10
	_, _, err := archive.ExtractBytes(data, bounds)
	if !errors.Is(err, cerrs.ErrTooManyEntries) {
		t.Fatalf("expected ErrTooManyEntries, got %v", err)
	}
}

func TestExtractBytes_PathTraversal(t *testing.T) {
	data := buildZip(t, map[string]string{"../evil.xml": "<A/>"})
	_, _, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if err == nil {
		t.Fatal("expected error for path traversal entry")
	}
}

func TestExtractBytes_NestedDirectory(t *testing.T) {
	data := buildZip(t, map[string]string{"dir/save.xml": "<A/>"})
	_, _, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if !errors.Is(err, cerrs.ErrNestedDirectory) {
		t.Fatalf("expected ErrNestedDirectory, got %v", err)
	}
}

func TestExtractBytes_NotUTF8(t *testing.T) {
	data := buildZip(t, map[string]string{"save.xml": string([]byte{0xff, 0xfe, 0x00})})
	_, _, err := archive.ExtractBytes(data, archive.DefaultBounds())
	if !errors.Is(err, cerrs.ErrPayloadNotUTF8) {
		t.Fatalf("expected ErrPayloadNotUTF8, got %v", err)
	}
}

func TestExtractBytes_UncompressedTooLarge(t *testing.T) {
	big := strings.Repeat("x", 1024)
	data := buildZip(t, map[string]string{"save.xml": big})
	bounds := archive.DefaultBounds()
	bounds.MaxUncompressedBytes = 100
	_, _, err := archive.ExtractBytes(data, bounds)
	if !errors.Is(err, cerrs.ErrUncompressedTooLarge) {
		t.Fatalf("expected ErrUncompressedTooLarge, got %v", err)
	}
}

func TestExtractBytes_CompressedTooLarge(t *testing.T) {
	data := buildZip(t, map[string]string{"save.xml": "<A/>"})
	bounds := archive.DefaultBounds()
	bounds.MaxCompressedBytes = 1
	_, _, err := archive.ExtractBytes(data, bounds)
	if !errors.Is(err, cerrs.ErrArchiveTooLarge) {
		t.Fatalf("expected ErrArchiveTooLarge, got %v", err)
	}
}
