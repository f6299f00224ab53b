// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseCharacters parses every <Character> element (spec §3
// "Character", §4.4 "Characters"). Father/mother/birth-city are parsed
// here as source ids but must remain unresolved until the Pass 2
// update waves (spec §4.8) — this parser never looks them up.
func ParseCharacters(doc *xmldom.Document) ([]*model.Character_t, error) {
	var out []*model.Character_t
	for _, n := range doc.Root.ChildrenByTag("Character") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		playerID, err := sentinelRef(n, "Player")
		if err != nil {
			return nil, err
		}
		birthTurn, err := n.RequiredIntAttr("BirthTurn")
		if err != nil {
			return nil, err
		}
		deathTurn, err := n.OptionalIntAttr("DeathTurn")
		if err != nil {
			return nil, err
		}
		gender, _ := n.OptionalAttr("Gender")
		familyID, err := sentinelRef(n, "Family")
		if err != nil {
			return nil, err
		}
		religionID, err := sentinelRef(n, "Religion")
		if err != nil {
			return nil, err
		}
		fatherID, err := sentinelRef(n, "Father")
		if err != nil {
			return nil, err
		}
		motherID, err := sentinelRef(n, "Mother")
		if err != nil {
			return nil, err
		}
		birthCityID, err := sentinelRef(n, "BirthCity")
		if err != nil {
			return nil, err
		}

		var tribeID *string
		if v, ok := n.OptionalAttr("Tribe"); ok && v != "" && v != "-1" {
			tribeID = &v
		}

		out = append(out, &model.Character_t{
			ID:          id,
			PlayerID:    playerID,
			BirthTurn:   birthTurn,
			DeathTurn:   deathTurn,
			Gender:      gender,
			FamilyID:    familyID,
			TribeID:     tribeID,
			ReligionID:  religionID,
			FatherID:    fatherID,
			MotherID:    motherID,
			BirthCityID: birthCityID,
		})
	}
	out = dedupLastWins(out, func(c *model.Character_t) model.SourceID { return c.ID })
	return out, nil
}
