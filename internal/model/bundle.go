// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package model

// Bundle_t is the full assembled set of record vectors for one
// snapshot import, produced by the parallel entity parsers (spec
// §4.4) and consumed by the validator (spec §4.5) and the multi-pass
// inserters (spec §4.8). Each field is written by exactly one parse
// task (TimeSeries is assembled from two parsers' results after the
// last wave joins); nothing in this struct is mutated concurrently
// once a parse wave has joined.
type Bundle_t struct {
	Snapshot *Snapshot_t

	Players    []*Player_t
	Characters []*Character_t
	Tiles      []*Tile_t
	Cities     []*City_t

	Families  []*Family_t
	Religions []*Religion_t
	Tribes    []*Tribe_t

	CharacterStats         []*CharacterStat_t
	CharacterTraits        []*CharacterTrait_t
	CharacterRelationships []*CharacterRelationship_t
	CharacterMarriages     []*CharacterMarriage_t

	CityYields            []*CityYield_t
	CityCulture           []*CityCulture_t
	CityReligions         []*CityReligion_t
	CityProductionQueue   []*CityProductionQueueItem_t
	CityCompletedProjects []*CityCompletedProject_t

	TileOwnershipHistory []*TileOwnershipHistory_t
	TileVisibility       []*TileVisibility_t

	PlayerResources           []*PlayerResource_t
	PlayerTechnologyProgress  []*PlayerTechnologyProgress_t
	PlayerTechnologyCompleted []*PlayerTechnologyCompleted_t
	PlayerTechnologyStates    []*PlayerTechnologyState_t
	PlayerCouncilPositions    []*PlayerCouncilPosition_t
	PlayerLaws                []*PlayerLaw_t
	PlayerGoals               []*PlayerGoal_t

	TimeSeries []*TimeSeriesPoint_t
}
