// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseTiles_DerivedCoordinates(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Tile ID="0" Terrain="Plains" Owner="-1"/>
		<Tile ID="5" Terrain="Hills" Owner="0"/>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	tiles, err := parsers.ParseTiles(doc, 4)
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	if tiles[0].X != 0 || tiles[0].Y != 0 {
		t.Fatalf("expected (0,0) for id 0, got (%d,%d)", tiles[0].X, tiles[0].Y)
	}
	if tiles[1].X != 1 || tiles[1].Y != 1 {
		t.Fatalf("expected (1,1) for id 5 with width 4, got (%d,%d)", tiles[1].X, tiles[1].Y)
	}
	if tiles[0].OwnerID != nil {
		t.Fatalf("expected nil owner for sentinel -1, got %v", *tiles[0].OwnerID)
	}
	if tiles[1].OwnerID == nil || *tiles[1].OwnerID != 0 {
		t.Fatalf("expected owner 0, got %v", tiles[1].OwnerID)
	}
}

func TestParseTiles_CityTerritoryUnresolved(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Tile ID="0" CityTerritory="2"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	tiles, err := parsers.ParseTiles(doc, 4)
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	if tiles[0].CityTerritoryID == nil || *tiles[0].CityTerritoryID != 2 {
		t.Fatalf("expected city territory source id 2 carried through, got %v", tiles[0].CityTerritoryID)
	}
}
