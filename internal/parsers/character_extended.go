// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseCharacterExtended walks every <Character> element's nested
// sub-trees (spec §3 "Character extended"): stats, traits (optional
// end turn), relationships, and marriages. Relationship records
// missing an "ID" attribute are tolerated and skipped rather than
// aborting the parse (spec §4.4 "Characters": "missing ID ... is
// tolerated and such relationships are skipped").
func ParseCharacterExtended(doc *xmldom.Document) (
	stats []*model.CharacterStat_t,
	traits []*model.CharacterTrait_t,
	relationships []*model.CharacterRelationship_t,
	marriages []*model.CharacterMarriage_t,
	err error,
) {
	for _, n := range doc.Root.ChildrenByTag("Character") {
		charID, idErr := requiredID(n, "ID")
		if idErr != nil {
			err = idErr
			return
		}

		if statsNode := n.FirstChild("Stats"); statsNode != nil {
			for _, s := range statsNode.Children {
				v, verr := s.RequiredIntAttr("Value")
				if verr != nil {
					err = verr
					return
				}
				stats = append(stats, &model.CharacterStat_t{CharacterID: charID, Name: s.Tag, Value: v})
			}
		}

		if traitsNode := n.FirstChild("Traits"); traitsNode != nil {
			for _, tr := range traitsNode.ChildrenByTag("Trait") {
				name, nerr := tr.RequiredAttr("Name")
				if nerr != nil {
					err = nerr
					return
				}
				endTurn, eerr := tr.OptionalIntAttr("EndTurn")
				if eerr != nil {
					err = eerr
					return
				}
				traits = append(traits, &model.CharacterTrait_t{CharacterID: charID, Name: name, EndTurn: endTurn})
			}
		}

		if relNode := n.FirstChild("Relationships"); relNode != nil {
			for _, r := range relNode.ChildrenByTag("Relationship") {
				relatedID, ok := r.OptionalAttr("ID")
				if !ok || relatedID == "" {
					continue // tolerated: skip relationships missing ID (spec §4.4)
				}
				related, rerr := requiredID(r, "ID")
				if rerr != nil {
					continue
				}
				kind, _ := r.OptionalAttr("Kind")
				relationships = append(relationships, &model.CharacterRelationship_t{
					CharacterID: charID, RelatedID: related, Kind: kind,
				})
			}
		}

		if marrNode := n.FirstChild("Marriages"); marrNode != nil {
			for _, m := range marrNode.ChildrenByTag("Marriage") {
				spouse, serr := requiredID(m, "SpouseID")
				if serr != nil {
					err = serr
					return
				}
				startTurn, sterr := m.OptionalIntAttr("StartTurn")
				if sterr != nil {
					err = sterr
					return
				}
				endTurn, eterr := m.OptionalIntAttr("EndTurn")
				if eterr != nil {
					err = eterr
					return
				}
				marriages = append(marriages, &model.CharacterMarriage_t{
					CharacterID: charID, SpouseID: spouse, StartTurn: startTurn, EndTurn: endTurn,
				})
			}
		}
	}

	stats = dedupLastWins(stats, func(s *model.CharacterStat_t) [2]any { return [2]any{s.CharacterID, s.Name} })
	traits = dedupLastWins(traits, func(t *model.CharacterTrait_t) [2]any { return [2]any{t.CharacterID, t.Name} })
	relationships = dedupLastWins(relationships, func(r *model.CharacterRelationship_t) [2]any { return [2]any{r.CharacterID, r.RelatedID} })
	marriages = dedupLastWins(marriages, func(m *model.CharacterMarriage_t) [2]any { return [2]any{m.CharacterID, m.SpouseID} })
	return
}
