// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package xmldom_test

import (
	"errors"
	"testing"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

const sample = `<Root GameId="g1" MapWidth="4">
  <Game><Turn>7</Turn></Game>
  <Player ID="0" Name="A" Nation="NATION_ROME"/>
  <Player ID="1" Name="B" Nation="NATION_GREECE">
    <Points><T2>0</T2><T5>3</T5></Points>
  </Player>
</Root>`

func mustParse(t *testing.T) *xmldom.Document {
	t.Helper()
	doc, err := xmldom.Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestRequiredAttr(t *testing.T) {
	doc := mustParse(t)
	v, err := doc.Root.RequiredAttr("GameId")
	if err != nil || v != "g1" {
		t.Fatalf("GameId = %q, %v", v, err)
	}
	if _, err := doc.Root.RequiredAttr("NoSuchAttr"); !errors.Is(err, cerrs.ErrMissingAttribute) {
		t.Fatalf("expected ErrMissingAttribute, got %v", err)
	}
}

func TestRequiredIntAttr(t *testing.T) {
	doc := mustParse(t)
	w, err := doc.Root.RequiredIntAttr("MapWidth")
	if err != nil || w != 4 {
		t.Fatalf("MapWidth = %d, %v", w, err)
	}
	players := doc.Root.ChildrenByTag("Player")
	if _, err := players[0].RequiredIntAttr("Missing"); !errors.Is(err, cerrs.ErrMissingAttribute) {
		t.Fatalf("expected missing attribute error, got %v", err)
	}
}

func TestOptionalIntAttr_AbsentVsUnparseable(t *testing.T) {
	doc, err := xmldom.Parse(`<Tile ID="5" Owner="bogus"/>`)
	if err != nil {
		t.Fatal(err)
	}
	v, err := doc.Root.OptionalIntAttr("Missing")
	if err != nil || v != nil {
		t.Fatalf("expected nil,nil for absent optional attr; got %v, %v", v, err)
	}
	if _, err := doc.Root.OptionalIntAttr("Owner"); !errors.Is(err, cerrs.ErrNotParseableInt) {
		t.Fatalf("expected not-parseable error for present-but-bad value, got %v", err)
	}
}

func TestChildText(t *testing.T) {
	doc := mustParse(t)
	game := doc.Root.FirstChild("Game")
	if game == nil {
		t.Fatal("expected Game child")
	}
	turn, err := game.RequiredChildText("Turn")
	if err != nil || turn != "7" {
		t.Fatalf("Turn = %q, %v", turn, err)
	}
	if _, ok := game.OptionalChildText("NoSuchChild"); ok {
		t.Fatal("expected missing optional child to report false")
	}
}

func TestPathIsStableAcrossSiblings(t *testing.T) {
	doc := mustParse(t)
	players := doc.Root.ChildrenByTag("Player")
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Path == players[1].Path {
		t.Fatalf("expected distinct paths for sibling elements, both were %q", players[0].Path)
	}
}

func TestMalformedXML(t *testing.T) {
	_, err := xmldom.Parse(`<Root><Unclosed></Root>`)
	if err == nil {
		t.Fatal("expected error for malformed xml")
	}
}

func TestEmptyDocument(t *testing.T) {
	_, err := xmldom.Parse(``)
	if !errors.Is(err, cerrs.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}
