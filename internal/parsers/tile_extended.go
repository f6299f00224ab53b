// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseTileExtended walks every <Tile> element's nested sub-trees
// (spec §3 "Tile extended"): ownership history, recorded as a sparse
// time-series of player id keyed by T{turn} elements (-1 for
// unowned), and per-player visibility flags.
func ParseTileExtended(doc *xmldom.Document) (
	ownership []*model.TileOwnershipHistory_t,
	visibility []*model.TileVisibility_t,
	err error,
) {
	for _, n := range doc.Root.ChildrenByTag("Tile") {
		tileID, idErr := requiredID(n, "ID")
		if idErr != nil {
			err = idErr
			return
		}

		if histNode := n.FirstChild("OwnershipHistory"); histNode != nil {
			for _, tv := range parseTimeSeriesNode(histNode) {
				var owner *model.SourceID
				if tv.Value != -1 {
					id := model.SourceID(tv.Value)
					owner = &id
				}
				ownership = append(ownership, &model.TileOwnershipHistory_t{
					TileID: tileID, Turn: tv.Turn, OwnerID: owner,
				})
			}
		}

		if visNode := n.FirstChild("Visibility"); visNode != nil {
			for _, v := range visNode.ChildrenByTag("Player") {
				playerID, perr := requiredID(v, "ID")
				if perr != nil {
					err = perr
					return
				}
				visible, verr := v.OptionalIntAttr("Visible")
				if verr != nil {
					err = verr
					return
				}
				visibility = append(visibility, &model.TileVisibility_t{
					TileID: tileID, PlayerID: playerID, Visible: visible == nil || *visible != 0,
				})
			}
		}
	}

	ownership = dedupLastWins(ownership, func(o *model.TileOwnershipHistory_t) [2]any { return [2]any{o.TileID, o.Turn} })
	visibility = dedupLastWins(visibility, func(v *model.TileVisibility_t) [2]any { return [2]any{v.TileID, v.PlayerID} })
	return
}
