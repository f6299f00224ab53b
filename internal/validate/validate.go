// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package validate checks an assembled record bundle before any
// insertion (spec §4.5). Most checks are advisory; foreign-key
// violations between core (foundation) entities, a character named as
// its own parent, and a death turn before the birth turn abort the
// import.
package validate

import (
	"fmt"

	"github.com/playbymail/oldworldimport/cerrs"
	"github.com/playbymail/oldworldimport/internal/model"
)

// Warning is an advisory finding: logged, never fatal.
type Warning struct {
	Family string
	Detail string
}

func (w Warning) String() string { return fmt.Sprintf("%s: %s", w.Family, w.Detail) }

// Result carries every advisory warning found. A non-nil Err means the
// import must abort: a core foreign-key reference does not resolve, a
// character is its own father or mother, or a death turn precedes the
// birth turn. Only the first such finding is kept.
type Result struct {
	Warnings []Warning
	Err      error
}

func (r *Result) warn(family, detail string) {
	r.Warnings = append(r.Warnings, Warning{Family: family, Detail: detail})
}

// Bundle validates the full record set assembled for one snapshot.
func Bundle(b *model.Bundle_t) *Result {
	r := &Result{}

	players := indexByID(b.Players, func(p *model.Player_t) model.SourceID { return p.ID })
	characters := indexByID(b.Characters, func(c *model.Character_t) model.SourceID { return c.ID })
	tiles := indexByID(b.Tiles, func(t *model.Tile_t) model.SourceID { return t.ID })
	cities := indexByID(b.Cities, func(c *model.City_t) model.SourceID { return c.ID })
	families := indexByID(b.Families, func(f *model.Family_t) model.SourceID { return f.ID })
	religions := indexByID(b.Religions, func(rl *model.Religion_t) model.SourceID { return rl.ID })
	tribes := make(map[string]bool, len(b.Tribes))
	for _, t := range b.Tribes {
		tribes[t.StringID] = true
	}

	checkDuplicates(r, "player", toAnySlice(b.Players, func(p *model.Player_t) model.SourceID { return p.ID }))
	checkDuplicates(r, "character", toAnySlice(b.Characters, func(c *model.Character_t) model.SourceID { return c.ID }))
	checkDuplicates(r, "tile", toAnySlice(b.Tiles, func(t *model.Tile_t) model.SourceID { return t.ID }))
	checkDuplicates(r, "city", toAnySlice(b.Cities, func(c *model.City_t) model.SourceID { return c.ID }))

	// Core FK checks: character -> player/family/religion/tribe/father/mother/birth_city.
	for _, c := range b.Characters {
		requireFK(r, "character.player_id", c.PlayerID, players)
		requireFK(r, "character.family_id", c.FamilyID, families)
		requireFK(r, "character.religion_id", c.ReligionID, religions)
		if c.TribeID != nil && !tribes[*c.TribeID] {
			r.abort(cerrs.ErrUnresolvedReference, fmt.Sprintf("character %d: tribe %q not declared", c.ID, *c.TribeID))
		}
		if c.FatherID != nil {
			if *c.FatherID == c.ID {
				r.abort(cerrs.ErrSelfReference, fmt.Sprintf("character %d: self-reference as father", c.ID))
			}
			requireFK(r, "character.father_id", c.FatherID, characters)
		}
		if c.MotherID != nil {
			if *c.MotherID == c.ID {
				r.abort(cerrs.ErrSelfReference, fmt.Sprintf("character %d: self-reference as mother", c.ID))
			}
			requireFK(r, "character.mother_id", c.MotherID, characters)
		}
		requireFK(r, "character.birth_city_id", c.BirthCityID, cities)
		if c.DeathTurn != nil && *c.DeathTurn < c.BirthTurn {
			r.abort(cerrs.ErrDeathBeforeBirth, fmt.Sprintf("character %d: death turn %d precedes birth turn %d", c.ID, *c.DeathTurn, c.BirthTurn))
		}
	}

	// Core FK checks: tile -> player, city -> player/tile/family.
	for _, t := range b.Tiles {
		requireFK(r, "tile.owner_id", t.OwnerID, players)
		requireFK(r, "tile.city_territory_id", t.CityTerritoryID, cities)
	}
	for _, c := range b.Cities {
		requireFK(r, "city.player_id", c.PlayerID, players)
		if _, ok := tiles[c.TileID]; !ok {
			r.abort(cerrs.ErrUnresolvedReference, fmt.Sprintf("city %d: tile %d not declared", c.ID, c.TileID))
		}
		requireFK(r, "city.family_id", c.FamilyID, families)
	}
	for _, p := range b.Players {
		requireFK(r, "player.state_religion", p.StateReligion, religions)
	}

	// Extended/nested data: advisory only.
	for _, ts := range b.TimeSeries {
		if ts.Turn < 0 {
			r.warn(ts.Series, fmt.Sprintf("owner %d: negative turn %d dropped", ts.OwnerID, ts.Turn))
		}
	}
	for _, oh := range b.TileOwnershipHistory {
		if oh.Turn < 0 {
			r.warn("tile_ownership_history", fmt.Sprintf("tile %d: negative turn %d", oh.TileID, oh.Turn))
		}
	}

	return r
}

func (r *Result) abort(kind error, detail string) {
	if r.Err == nil {
		r.Err = fmt.Errorf("%w: %s", kind, detail)
	}
}

func indexByID[T any](items []T, idOf func(T) model.SourceID) map[model.SourceID]bool {
	out := make(map[model.SourceID]bool, len(items))
	for _, it := range items {
		out[idOf(it)] = true
	}
	return out
}

func toAnySlice[T any](items []T, idOf func(T) model.SourceID) []model.SourceID {
	out := make([]model.SourceID, len(items))
	for i, it := range items {
		out[i] = idOf(it)
	}
	return out
}

func checkDuplicates(r *Result, family string, ids []model.SourceID) {
	seen := make(map[model.SourceID]int, len(ids))
	for _, id := range ids {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			r.warn(family, fmt.Sprintf("source id %d appears %d times (last-wins dedup applied upstream)", id, n))
		}
	}
}

// requireFK aborts the import when a non-nil foundation-entity
// reference doesn't resolve within the bundle (spec §4.5: "every
// non-NULL foreign source id resolves to a record of the correct
// family in the same bundle").
func requireFK(r *Result, field string, ref *model.SourceID, index map[model.SourceID]bool) {
	if ref == nil || index[*ref] {
		return
	}
	r.abort(cerrs.ErrUnresolvedReference, fmt.Sprintf("%s: source id %d not found", field, *ref))
}
