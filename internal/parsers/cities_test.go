// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseCities_AnarchySentinel(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><City ID="0" Player="-1" TileID="3" Family="-1"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	cities, err := parsers.ParseCities(doc)
	if err != nil {
		t.Fatalf("ParseCities: %v", err)
	}
	if len(cities) != 1 {
		t.Fatalf("expected 1 city, got %d", len(cities))
	}
	if cities[0].PlayerID != nil {
		t.Fatalf("expected nil owner for anarchy sentinel, got %v", *cities[0].PlayerID)
	}
	if cities[0].TileID != 3 {
		t.Fatalf("expected tile id 3, got %d", cities[0].TileID)
	}
}

func TestParseCities_MissingTileID(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><City ID="0" Player="-1"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsers.ParseCities(doc); err == nil {
		t.Fatal("expected error for missing TileID")
	}
}
