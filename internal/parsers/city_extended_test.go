// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers_test

import (
	"testing"

	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func TestParseCityExtended(t *testing.T) {
	doc, err := xmldom.Parse(`<Root>
		<City ID="0">
			<Yields><Food Amount="40"/><Gold Amount="15"/></Yields>
			<Culture><Roman Amount="100"/></Culture>
			<Religions><Religion ID="0" Amount="80"/></Religions>
			<ProductionQueue><Item Project="Granary"/><Item Project="Wall"/></ProductionQueue>
			<CompletedProjects><Project Name="Aqueduct" Turn="12"/></CompletedProjects>
		</City>
	</Root>`)
	if err != nil {
		t.Fatal(err)
	}
	yields, culture, religions, queue, completed, err := parsers.ParseCityExtended(doc)
	if err != nil {
		t.Fatalf("ParseCityExtended: %v", err)
	}
	if len(yields) != 2 || yields[1].Good != "Gold" || yields[1].Amount != 15 {
		t.Fatalf("unexpected yields: %+v", yields)
	}
	if len(culture) != 1 || culture[0].Culture != "Roman" {
		t.Fatalf("unexpected culture: %+v", culture)
	}
	if len(religions) != 1 || religions[0].ReligionID != 0 {
		t.Fatalf("unexpected religions: %+v", religions)
	}
	if len(queue) != 2 || queue[0].Position != 0 || queue[1].Position != 1 {
		t.Fatalf("expected production queue to preserve source order positions, got %+v", queue)
	}
	if len(completed) != 1 || completed[0].Turn != 12 {
		t.Fatalf("unexpected completed projects: %+v", completed)
	}
}
