// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseCharacterExtended(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Character ID="0">
			<Stats><Wisdom Value="5"/><Charisma Value="3"/></Stats>
			<Traits><Trait Name="Brave" EndTurn="10"/><Trait Name="Wise"/></Traits>
			<Relationships>
				<Relationship ID="1" Kind="Rival"/>
				<Relationship Kind="Friend"/>
			</Relationships>
			<Marriages><Marriage SpouseID="2" StartTurn="3"/></Marriages>
		</Character>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	stats, traits, relationships, marriages, err := parsers.ParseCharacterExtended(doc)
	if err != nil {
		t.Fatalf("ParseCharacterExtended: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	if len(traits) != 2 || traits[0].EndTurn == nil || *traits[0].EndTurn != 10 {
		t.Fatalf("unexpected traits: %+v", traits)
	}
	if traits[1].EndTurn != nil {
		t.Fatalf("expected nil EndTurn for trait with no EndTurn attribute")
	}
	if len(relationships) != 1 || relationships[0].RelatedID != 1 {
		t.Fatalf("expected relationship missing ID to be skipped, got %+v", relationships)
	}
	if len(marriages) != 1 || marriages[0].SpouseID != 2 {
		t.Fatalf("unexpected marriages: %+v", marriages)
	}
}

func TestParseCharacterExtended_StatsDedupLastWins(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Character ID="0">
			<Stats><Wisdom Value="5"/></Stats>
		</Character>
		<Character ID="0">
			<Stats><Wisdom Value="9"/></Stats>
		</Character>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	stats, _, _, _, err := parsers.ParseCharacterExtended(doc)
	if err != nil {
		t.Fatalf("ParseCharacterExtended: %v", err)
	}
	if len(stats) != 1 || stats[0].Value != 9 {
		t.Fatalf("expected last-wins dedup on (character,stat) key, got %+v", stats)
	}
}
