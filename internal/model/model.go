// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package model defines the typed in-memory records produced by the
// entity parsers (spec §4.3, §4.4) and consumed by the validator,
// identifier mapper, and inserters. Records carry source ids, not
// store ids — translation happens at insertion time (spec §4.6, §4.7).
//
// Optional integer fields and foreign references are pointers; a nil
// pointer is the NULL store value. Optional text fields, and the
// snapshot's MapSize and MapAspectRatio, are plain values that hold
// the zero value when the attribute is absent. Foreign
// references that carry the source-side sentinel -1 are normalized to
// nil by the parsers before the record is ever handed to the
// validator (spec §3 invariant 3, §4.4).
package model

// SourceID is a per-snapshot XML identifier. 0-based; 0 is valid.
type SourceID int

// Snapshot is the top-level unit of ingestion (spec §3).
type Snapshot_t struct {
	GameID         string
	Turn           int
	MapWidth       int
	MapSize        int
	MapAspectRatio float64
	WinnerID       *SourceID // player source id, nil if no winner yet
}

// Player_t is a foundation entity (spec §3, §4.4). FK references into
// characters/cities are resolved in later passes (spec §4.8).
type Player_t struct {
	ID            SourceID
	Name          string
	Nation        string
	Dynasty       string // normalized-away nation code, if any (spec §9)
	Team          *int
	IsHuman       bool
	Difficulty    string
	Legitimacy    *int
	StateReligion *SourceID // religion source id
}

// Character_t is a foundation entity. Parent and birth-city references
// are deliberately left unresolved here; Pass 2 fills them in (spec §4.8).
type Character_t struct {
	ID          SourceID
	PlayerID    *SourceID // nil ⇒ tribal/no player (sentinel -1)
	BirthTurn   int
	DeathTurn   *int
	Gender      string
	FamilyID    *SourceID
	TribeID     *string // tribes use string ids (spec §3)
	ReligionID  *SourceID
	FatherID    *SourceID // may be cyclic; resolved in Pass 2a
	MotherID    *SourceID
	BirthCityID *SourceID // resolved in Pass 2d
}

// Tile_t is a foundation entity. (x,y) are derived, never stored in
// XML (spec §3, §4.4).
type Tile_t struct {
	ID              SourceID
	X, Y            int
	Terrain         string
	Vegetation      string
	Improvement     string
	Specialist      string
	Resource        string
	OwnerID         *SourceID // player source id, nil ⇒ unowned (sentinel -1)
	CityTerritoryID *SourceID // resolved in Pass 2b, requires cities
}

// City_t is a foundation entity. Player=-1 means "no current owner";
// the row still exists (spec §3, §4.4, §8 boundary behaviors).
type City_t struct {
	ID       SourceID
	PlayerID *SourceID // nil ⇒ anarchy / being captured
	TileID   SourceID
	FamilyID *SourceID
}

// Family_t, Religion_t, Tribe_t are affiliation entities referencing
// foundation entities (spec §3).
type Family_t struct {
	ID   SourceID
	Name string
}

type Religion_t struct {
	ID   SourceID
	Name string
}

// Tribe_t uses a string identifier in the source — it has no xml_id
// field (spec §3, §4.4).
type Tribe_t struct {
	StringID string
	Name     string
}
