// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseCharacters_CyclicParents(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Character ID="0" Player="-1" BirthTurn="1" Father="1" Mother="-1"/>
		<Character ID="1" Player="-1" BirthTurn="0" Father="-1" Mother="-1"/>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	characters, err := parsers.ParseCharacters(doc)
	if err != nil {
		t.Fatalf("ParseCharacters: %v", err)
	}
	if len(characters) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(characters))
	}
	if characters[0].FatherID == nil || *characters[0].FatherID != 1 {
		t.Fatalf("expected character 0 father to be source id 1, got %v", characters[0].FatherID)
	}
	if characters[0].PlayerID != nil {
		t.Fatalf("expected nil player for sentinel -1, got %v", *characters[0].PlayerID)
	}
}

func TestParseCharacters_TribeStringID(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Character ID="0" Player="-1" BirthTurn="1" Tribe="NOMADS_A"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	characters, err := parsers.ParseCharacters(doc)
	if err != nil {
		t.Fatalf("ParseCharacters: %v", err)
	}
	if characters[0].TribeID == nil || *characters[0].TribeID != "NOMADS_A" {
		t.Fatalf("expected tribe string id NOMADS_A, got %v", characters[0].TribeID)
	}
}

func TestParseCharacters_MissingBirthTurn(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Character ID="0" Player="-1"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsers.ParseCharacters(doc); err == nil {
		t.Fatal("expected error for missing BirthTurn")
	}
}
