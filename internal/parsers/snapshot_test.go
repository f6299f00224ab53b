// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseSnapshot(t *testing.T) {
	doc, err := xmldom.Parse(`<Root GameId="g1" MapWidth="4" MapSize="2" MapAspectRatio="1.5" Winner="-1"><Game><Turn>7</Turn></Game></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	snap, err := parsers.ParseSnapshot(doc)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if snap.GameID != "g1" || snap.Turn != 7 || snap.MapWidth != 4 || snap.MapSize != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.WinnerID != nil {
		t.Fatalf("expected nil winner for sentinel -1, got %v", *snap.WinnerID)
	}
}

func TestParseSnapshot_MissingGameID(t *testing.T) {
	doc, err := xmldom.Parse(`<Root MapWidth="4"><Game><Turn>1</Turn></Game></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsers.ParseSnapshot(doc); err == nil {
		t.Fatal("expected error for missing GameId")
	}
}

func TestParseSnapshot_MissingTurn(t *testing.T) {
	doc, err := xmldom.Parse(`<Root GameId="g1" MapWidth="4"></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsers.ParseSnapshot(doc); err == nil {
		t.Fatal("expected error for missing Game/Turn")
	}
}
