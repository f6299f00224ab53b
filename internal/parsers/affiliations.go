// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// ParseFamilies parses every <Family> element (spec §3 "Affiliation entities").
func ParseFamilies(doc *xmldom.Document) ([]*model.Family_t, error) {
	var out []*model.Family_t
	for _, n := range doc.Root.ChildrenByTag("Family") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		name, _ := n.OptionalAttr("Name")
		out = append(out, &model.Family_t{ID: id, Name: name})
	}
	return dedupLastWins(out, func(f *model.Family_t) model.SourceID { return f.ID }), nil
}

// ParseReligions parses every <Religion> element (spec §3 "Affiliation entities").
func ParseReligions(doc *xmldom.Document) ([]*model.Religion_t, error) {
	var out []*model.Religion_t
	for _, n := range doc.Root.ChildrenByTag("Religion") {
		id, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		name, _ := n.OptionalAttr("Name")
		out = append(out, &model.Religion_t{ID: id, Name: name})
	}
	return dedupLastWins(out, func(r *model.Religion_t) model.SourceID { return r.ID }), nil
}

// ParseTribes parses every <Tribe> element. Tribes use string
// identifiers in the source, not integers (spec §3, §4.4).
func ParseTribes(doc *xmldom.Document) ([]*model.Tribe_t, error) {
	var out []*model.Tribe_t
	for _, n := range doc.Root.ChildrenByTag("Tribe") {
		id, err := n.RequiredAttr("StringID")
		if err != nil {
			return nil, err
		}
		name, _ := n.OptionalAttr("Name")
		out = append(out, &model.Tribe_t{StringID: id, Name: name})
	}
	return dedupLastWins(out, func(t *model.Tribe_t) string { return t.StringID }), nil
}
