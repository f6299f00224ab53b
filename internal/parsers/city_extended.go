// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseCityExtended walks every <City> element's nested sub-trees
// (spec §3 "City extended"): yields, culture, religions, production
// queue, and completed projects.
func ParseCityExtended(doc *xmldom.Document) (
	yields []*model.CityYield_t,
	culture []*model.CityCulture_t,
	religions []*model.CityReligion_t,
	queue []*model.CityProductionQueueItem_t,
	completed []*model.CityCompletedProject_t,
	err error,
) {
	for _, n := range doc.Root.ChildrenByTag("City") {
		cityID, idErr := requiredID(n, "ID")
		if idErr != nil {
			err = idErr
			return
		}

		if yNode := n.FirstChild("Yields"); yNode != nil {
			for _, y := range yNode.Children {
				amt, aerr := y.RequiredIntAttr("Amount")
				if aerr != nil {
					err = aerr
					return
				}
				yields = append(yields, &model.CityYield_t{CityID: cityID, Good: y.Tag, Amount: amt})
			}
		}

		if cNode := n.FirstChild("Culture"); cNode != nil {
			for _, c := range cNode.Children {
				amt, aerr := c.RequiredIntAttr("Amount")
				if aerr != nil {
					err = aerr
					return
				}
				culture = append(culture, &model.CityCulture_t{CityID: cityID, Culture: c.Tag, Amount: amt})
			}
		}

		if rNode := n.FirstChild("Religions"); rNode != nil {
			for _, r := range rNode.ChildrenByTag("Religion") {
				religionID, rerr := requiredID(r, "ID")
				if rerr != nil {
					err = rerr
					return
				}
				amt, aerr := r.RequiredIntAttr("Amount")
				if aerr != nil {
					err = aerr
					return
				}
				religions = append(religions, &model.CityReligion_t{CityID: cityID, ReligionID: religionID, Amount: amt})
			}
		}

		if qNode := n.FirstChild("ProductionQueue"); qNode != nil {
			for i, q := range qNode.ChildrenByTag("Item") {
				project, perr := q.RequiredAttr("Project")
				if perr != nil {
					err = perr
					return
				}
				queue = append(queue, &model.CityProductionQueueItem_t{CityID: cityID, Position: i, Project: project})
			}
		}

		if pNode := n.FirstChild("CompletedProjects"); pNode != nil {
			for _, p := range pNode.ChildrenByTag("Project") {
				name, nerr := p.RequiredAttr("Name")
				if nerr != nil {
					err = nerr
					return
				}
				turn, terr := p.RequiredIntAttr("Turn")
				if terr != nil {
					err = terr
					return
				}
				completed = append(completed, &model.CityCompletedProject_t{CityID: cityID, Project: name, Turn: turn})
			}
		}
	}

	yields = dedupLastWins(yields, func(y *model.CityYield_t) [2]any { return [2]any{y.CityID, y.Good} })
	culture = dedupLastWins(culture, func(c *model.CityCulture_t) [2]any { return [2]any{c.CityID, c.Culture} })
	religions = dedupLastWins(religions, func(r *model.CityReligion_t) [2]any { return [2]any{r.CityID, r.ReligionID} })
	queue = dedupLastWins(queue, func(q *model.CityProductionQueueItem_t) [2]any { return [2]any{q.CityID, q.Position} })
	completed = dedupLastWins(completed, func(p *model.CityCompletedProject_t) [2]any { return [2]any{p.CityID, p.Project} })
	return
}
