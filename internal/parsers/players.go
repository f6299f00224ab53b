// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParsePlayers parses every <Player> element under the root (spec §3
// "Player", §4.4 "Players"). AI-vs-human is derived from the
// "AIControlledToTurn" attribute: human iff it equals 0.
//
// dynastyTable implements the optional dynasty-normalization policy
// layer (spec §4.4, §9 Open Question): a nation code present as a key
// is rewritten to its value, and the original code is preserved in
// Dynasty. A nil or empty table disables the rewrite entirely.
func ParsePlayers(doc *xmldom.Document, dynastyTable map[string]string) ([]*model.Player_t, error) {
	var out []*model.Player_t
	for _, n := range doc.Root.ChildrenByTag("Player") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		name, err := n.RequiredAttr("Name")
		if err != nil {
			return nil, err
		}
		nation, err := n.RequiredAttr("Nation")
		if err != nil {
			return nil, err
		}
		team, err := n.OptionalIntAttr("Team")
		if err != nil {
			return nil, err
		}
		legitimacy, err := n.OptionalIntAttr("Legitimacy")
		if err != nil {
			return nil, err
		}
		stateReligion, err := sentinelRef(n, "StateReligion")
		if err != nil {
			return nil, err
		}
		aiToTurn, err := n.OptionalIntAttr("AIControlledToTurn")
		if err != nil {
			return nil, err
		}
		difficulty, _ := n.OptionalAttr("Difficulty")

		dynasty := ""
		if parent, ok := dynastyTable[nation]; ok && parent != "" {
			dynasty = nation
			nation = parent
		}

		out = append(out, &model.Player_t{
			ID:            id,
			Name:          name,
			Nation:        nation,
			Dynasty:       dynasty,
			Team:          team,
			IsHuman:       aiToTurn != nil && *aiToTurn == 0,
			Difficulty:    difficulty,
			Legitimacy:    legitimacy,
			StateReligion: stateReligion,
		})
	}
	out = dedupLastWins(out, func(p *model.Player_t) model.SourceID { return p.ID })
	return out, nil
}
