// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseCities parses every <City> element (spec §3 "City", §4.4
// "Cities"). Player="-1" means "no current owner"; the city is still
// a valid record (spec §8 boundary behavior).
func ParseCities(doc *xmldom.Document) ([]*model.City_t, error) {
	var out []*model.City_t
	for _, n := range doc.Root.ChildrenByTag("City") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		playerID, err := sentinelRef(n, "Player")
		if err != nil {
			return nil, err
		}
		tileID, err := requiredID(n, "TileID")
		if err != nil {
			return nil, err
		}
		familyID, err := sentinelRef(n, "Family")
		if err != nil {
			return nil, err
		}

		out = append(out, &model.City_t{
			ID:       id,
			PlayerID: playerID,
			TileID:   tileID,
			FamilyID: familyID,
		})
	}
	out = dedupLastWins(out, func(c *model.City_t) model.SourceID { return c.ID })
	return out, nil
}
