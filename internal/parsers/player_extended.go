// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParsePlayerExtended walks every <Player> element's nested
// sub-trees (spec §3 "Player extended"): resources, technology
// progress/completed/state, council positions, laws, and goals.
func ParsePlayerExtended(doc *xmldom.Document) (
	resources []*model.PlayerResource_t,
	techProgress []*model.PlayerTechnologyProgress_t,
	techCompleted []*model.PlayerTechnologyCompleted_t,
	techState []*model.PlayerTechnologyState_t,
	council []*model.PlayerCouncilPosition_t,
	laws []*model.PlayerLaw_t,
	goals []*model.PlayerGoal_t,
	err error,
) {
	for _, n := range doc.Root.ChildrenByTag("Player") {
		playerID, idErr := requiredID(n, "ID")
		if idErr != nil {
			err = idErr
			return
		}

		if resNode := n.FirstChild("Resources"); resNode != nil {
			for _, r := range resNode.Children {
				amt, aerr := r.RequiredIntAttr("Amount")
				if aerr != nil {
					err = aerr
					return
				}
				resources = append(resources, &model.PlayerResource_t{PlayerID: playerID, Resource: r.Tag, Amount: amt})
			}
		}

		if techNode := n.FirstChild("Technologies"); techNode != nil {
			for _, t := range techNode.ChildrenByTag("Technology") {
				name, nerr := t.RequiredAttr("Name")
				if nerr != nil {
					err = nerr
					return
				}
				progress, perr := t.OptionalIntAttr("Progress")
				if perr != nil {
					err = perr
					return
				}
				if progress != nil {
					techProgress = append(techProgress, &model.PlayerTechnologyProgress_t{
						PlayerID: playerID, Technology: name, Progress: *progress,
					})
				}
				completedTurn, cterr := t.OptionalIntAttr("CompletedTurn")
				if cterr != nil {
					err = cterr
					return
				}
				if completedTurn != nil {
					techCompleted = append(techCompleted, &model.PlayerTechnologyCompleted_t{
						PlayerID: playerID, Technology: name, Turn: *completedTurn,
					})
				}
				if state, ok := t.OptionalAttr("State"); ok && state != "" {
					techState = append(techState, &model.PlayerTechnologyState_t{
						PlayerID: playerID, Technology: name, State: state,
					})
				}
			}
		}

		if councilNode := n.FirstChild("Council"); councilNode != nil {
			for _, c := range councilNode.ChildrenByTag("Position") {
				title, terr := c.RequiredAttr("Title")
				if terr != nil {
					err = terr
					return
				}
				holder, herr := sentinelRef(c, "CharacterID")
				if herr != nil {
					err = herr
					return
				}
				council = append(council, &model.PlayerCouncilPosition_t{
					PlayerID: playerID, Position: title, CharacterID: holder,
				})
			}
		}

		if lawsNode := n.FirstChild("Laws"); lawsNode != nil {
			for _, l := range lawsNode.ChildrenByTag("Law") {
				name, nerr := l.RequiredAttr("Name")
				if nerr != nil {
					err = nerr
					return
				}
				choice, _ := l.OptionalAttr("Choice")
				laws = append(laws, &model.PlayerLaw_t{PlayerID: playerID, Law: name, Choice: choice})
			}
		}

		if goalsNode := n.FirstChild("Goals"); goalsNode != nil {
			for _, g := range goalsNode.ChildrenByTag("Goal") {
				name, nerr := g.RequiredAttr("Name")
				if nerr != nil {
					err = nerr
					return
				}
				progress, perr := g.RequiredIntAttr("Progress")
				if perr != nil {
					err = perr
					return
				}
				goals = append(goals, &model.PlayerGoal_t{PlayerID: playerID, Goal: name, Progress: progress})
			}
		}
	}

	resources = dedupLastWins(resources, func(r *model.PlayerResource_t) [2]any { return [2]any{r.PlayerID, r.Resource} })
	techProgress = dedupLastWins(techProgress, func(t *model.PlayerTechnologyProgress_t) [2]any { return [2]any{t.PlayerID, t.Technology} })
	techCompleted = dedupLastWins(techCompleted, func(t *model.PlayerTechnologyCompleted_t) [2]any { return [2]any{t.PlayerID, t.Technology} })
	techState = dedupLastWins(techState, func(t *model.PlayerTechnologyState_t) [2]any { return [2]any{t.PlayerID, t.Technology} })
	council = dedupLastWins(council, func(c *model.PlayerCouncilPosition_t) [2]any { return [2]any{c.PlayerID, c.Position} })
	laws = dedupLastWins(laws, func(l *model.PlayerLaw_t) [2]any { return [2]any{l.PlayerID, l.Law} })
	goals = dedupLastWins(goals, func(g *model.PlayerGoal_t) [2]any { return [2]any{g.PlayerID, g.Goal} })
	return
}
