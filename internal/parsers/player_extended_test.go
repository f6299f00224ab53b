// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParsePlayerExtended(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<Player ID="0">
			<Resources><Food Amount="100"/></Resources>
			<Technologies>
				<Technology Name="Bronze" Progress="40"/>
				<Technology Name="Iron" CompletedTurn="8" State="Researched"/>
			</Technologies>
			<Council><Position Title="Chancellor" CharacterID="3"/></Council>
			<Laws><Law Name="Slavery" Choice="Abolished"/></Laws>
			<Goals><Goal Name="Expand" Progress="2"/></Goals>
		</Player>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	resources, progress, completed, states, council, laws, goals, err := parsers.ParsePlayerExtended(doc)
	if err != nil {
		t.Fatalf("ParsePlayerExtended: %v", err)
	}
	if len(resources) != 1 || resources[0].Amount != 100 {
		t.Fatalf("unexpected resources: %+v", resources)
	}
	if len(progress) != 1 || progress[0].Technology != "Bronze" {
		t.Fatalf("unexpected tech progress: %+v", progress)
	}
	if len(completed) != 1 || completed[0].Turn != 8 {
		t.Fatalf("unexpected tech completed: %+v", completed)
	}
	if len(states) != 1 || states[0].State != "Researched" {
		t.Fatalf("unexpected tech states: %+v", states)
	}
	if len(council) != 1 || council[0].CharacterID == nil || *council[0].CharacterID != 3 {
		t.Fatalf("unexpected council: %+v", council)
	}
	if len(laws) != 1 || laws[0].Choice != "Abolished" {
		t.Fatalf("unexpected laws: %+v", laws)
	}
	if len(goals) != 1 || goals[0].Progress != 2 {
		t.Fatalf("unexpected goals: %+v", goals)
	}
}

func TestParsePlayerExtended_VacantCouncilSeat(t *testing.T) {
	doc, err := xmldom.Parse(`<Root><Player ID="0"><Council><Position Title="Chancellor" CharacterID="-1"/></Council></Player></Root>`)
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, _, council, _, _, err := parsers.ParsePlayerExtended(doc)
	if err != nil {
		t.Fatalf("ParsePlayerExtended: %v", err)
	}
	if len(council) != 1 || council[0].CharacterID != nil {
		t.Fatalf("expected nil character for vacant seat sentinel, got %+v", council)
	}
}
