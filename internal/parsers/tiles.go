// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseTiles parses every <Tile> element (spec §3 "Tile", §4.4
// "Tiles"). (x,y) are derived from id and mapWidth — they are never
// present in the XML. City-territory ownership is intentionally left
// unresolved here; Pass 2b fills it in once cities exist (spec §4.8).
func ParseTiles(doc *xmldom.Document, mapWidth int) ([]*model.Tile_t, error) {
	var out []*model.Tile_t
	for _, n := range doc.Root.ChildrenByTag("Tile") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		terrain, _ := n.OptionalAttr("Terrain")
		vegetation, _ := n.OptionalAttr("Vegetation")
		improvement, _ := n.OptionalAttr("Improvement")
		specialist, _ := n.OptionalAttr("Specialist")
		resource, _ := n.OptionalAttr("Resource")
		ownerID, err := sentinelRef(n, "Owner")
		if err != nil {
			return nil, err
		}
		cityTerritoryID, err := sentinelRef(n, "CityTerritory")
		if err != nil {
			return nil, err
		}

		x, y := 0, 0
		if mapWidth > 0 {
			x = int(id) % mapWidth
			y = int(id) / mapWidth
		}

		out = append(out, &model.Tile_t{
			ID:              id,
			X:               x,
			Y:               y,
			Terrain:         terrain,
			Vegetation:      vegetation,
			Improvement:     improvement,
			Specialist:      specialist,
			Resource:        resource,
			OwnerID:         ownerID,
			CityTerritoryID: cityTerritoryID,
		})
	}
	out = dedupLastWins(out, func(t *model.Tile_t) model.SourceID { return t.ID })
	return out, nil
}
