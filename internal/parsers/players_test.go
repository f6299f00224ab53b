// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParsePlayers(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Player ID="0" Name="Romulus" Nation="NATION_ROME" AIControlledToTurn="0" StateReligion="-1"/>
		<Player ID="1" Name="Leonidas" Nation="NATION_GREECE" AIControlledToTurn="12"/>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	players, err := parsers.ParsePlayers(doc, nil)
	if err != nil {
		t.Fatalf("ParsePlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if !players[0].IsHuman {
		t.Fatal("player 0 should be human (AIControlledToTurn=0)")
	}
	if players[1].IsHuman {
		t.Fatal("player 1 should not be human")
	}
	if players[0].StateReligion != nil {
		t.Fatalf("expected nil state religion for sentinel -1, got %v", *players[0].StateReligion)
	}
}

func TestParsePlayers_DynastyNormalization(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Player ID="0" Name="Romulus" Nation="NATION_WESTROME"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	table := map[string]string{"NATION_WESTROME": "NATION_ROME"}
	players, err := parsers.ParsePlayers(doc, table)
	if err != nil {
		t.Fatalf("ParsePlayers: %v", err)
	}
	if players[0].Nation != "NATION_ROME" || players[0].Dynasty != "NATION_WESTROME" {
		t.Fatalf("expected normalization to rewrite nation and preserve dynasty, got %+v", players[0])
	}
}

func TestParsePlayers_DedupLastWins(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Player ID="0" Name="First" Nation="NATION_ROME"/>
		<Player ID="0" Name="Second" Nation="NATION_ROME"/>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	players, err := parsers.ParsePlayers(doc, nil)
	if err != nil {
		t.Fatalf("ParsePlayers: %v", err)
	}
	if len(players) != 1 || players[0].Name != "Second" {
		t.Fatalf("expected last-wins dedup to keep Second, got %+v", players)
	}
}

func TestParsePlayers_MissingRequiredAttr(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Player ID="0" Nation="NATION_ROME"/></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsers.ParsePlayers(doc, nil); err == nil {
		t.Fatal("expected error for missing Name attribute")
	}
}
