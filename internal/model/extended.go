// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package model

// TimeSeriesPoint_t is the generic sparse series record (spec §3
// "Time-series", §4.4 "Time-series parsing"). Series is the logical
// series name (e.g. "player_points", "city_yield_history:Food") so one
// table backs every sparse history in the model (spec SPEC_FULL §3).
type TimeSeriesPoint_t struct {
	Series  string
	OwnerID SourceID
	Turn    int
	Value   int
}

// --- Character extended (spec §3 "Character extended") ---

type CharacterStat_t struct {
	CharacterID SourceID
	Name        string
	Value       int
}

type CharacterTrait_t struct {
	CharacterID SourceID
	Name        string
	EndTurn     *int // optional (spec §3)
}

type CharacterRelationship_t struct {
	CharacterID SourceID
	RelatedID   SourceID
	Kind        string
}

type CharacterMarriage_t struct {
	CharacterID SourceID
	SpouseID    SourceID
	StartTurn   *int // shape uncertain in the source (spec §9 Open Question)
	EndTurn     *int
}

// --- City extended (spec §3 "City extended") ---

type CityYield_t struct {
	CityID SourceID
	Good   string
	Amount int // preserved raw, as the scaled integer found in the source (not divided by 10)
}

type CityCulture_t struct {
	CityID  SourceID
	Culture string
	Amount  int
}

type CityReligion_t struct {
	CityID     SourceID
	ReligionID SourceID
	Amount     int
}

type CityProductionQueueItem_t struct {
	CityID   SourceID
	Position int
	Project  string
}

type CityCompletedProject_t struct {
	CityID  SourceID
	Project string
	Turn    int
}

// --- Tile extended (spec §3 "Tile extended") ---

// TileOwnershipHistory_t is inserted in Pass 2c, requiring tiles to be
// final (spec §4.8). Sparse: recorded only at changes.
type TileOwnershipHistory_t struct {
	TileID  SourceID
	Turn    int
	OwnerID *SourceID // nil ⇒ unowned (sentinel -1)
}

type TileVisibility_t struct {
	TileID   SourceID
	PlayerID SourceID
	Visible  bool
}

// --- Player extended (spec §3 "Player extended") ---

type PlayerResource_t struct {
	PlayerID SourceID
	Resource string
	Amount   int
}

type PlayerTechnologyProgress_t struct {
	PlayerID   SourceID
	Technology string
	Progress   int
}

type PlayerTechnologyCompleted_t struct {
	PlayerID   SourceID
	Technology string
	Turn       int
}

type PlayerTechnologyState_t struct {
	PlayerID   SourceID
	Technology string
	State      string
}

type PlayerCouncilPosition_t struct {
	PlayerID    SourceID
	Position    string
	CharacterID *SourceID
}

type PlayerLaw_t struct {
	PlayerID SourceID
	Law      string
	Choice   string
}

type PlayerGoal_t struct {
	PlayerID SourceID
	Goal     string
	Progress int
}
