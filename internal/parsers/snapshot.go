// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"strconv"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseSnapshot reads the root-level attributes and the <Game><Turn>
// child (spec §6 "XML format contract").
func ParseSnapshot(doc *xmldom.Document) (*model.Snapshot_t, error) {
	root := doc.Root
	gameID, err := root.RequiredAttr("GameId")
	if err != nil {
		return nil, cerrs.ErrMissingGameID
	}
	width, err := root.RequiredIntAttr("MapWidth")
	if err != nil {
		return nil, err
	}
	mapSize, _ := root.OptionalIntAttr("MapSize")
	aspect, err := root.OptionalFloatAttr("MapAspectRatio")
	if err != nil {
		return nil, err
	}

	game := root.FirstChild("Game")
	if game == nil {
		return nil, cerrs.ErrMissingTurn
	}
	turnText, err := game.RequiredChildText("Turn")
	if err != nil {
		return nil, cerrs.ErrMissingTurn
	}
	turn, err := strconv.Atoi(turnText)
	if err != nil {
		return nil, cerrs.ErrMissingTurn
	}

	winner, err := sentinelRef(root, "Winner")
	if err != nil {
		return nil, err
	}

	snap := &model.Snapshot_t{
		GameID:   gameID,
		Turn:     turn,
		MapWidth: width,
		WinnerID: winner,
	}
	if mapSize != nil {
		snap.MapSize = *mapSize
	}
	if aspect != nil {
		snap.MapAspectRatio = *aspect
	}
	return snap, nil
}
