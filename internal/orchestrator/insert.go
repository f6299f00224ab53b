// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package orchestrator

import (
	"context"
	"time"

	"github.com/playbymail/oldworldimport/internal/idmap"
	"github.com/playbymail/oldworldimport/internal/metrics"
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/progress"
	"github.com/playbymail/oldworldimport/internal/store/sqlite"
)

// Entity-family names used as the identifier mapper's namespace (spec
// §4.6). Kept as constants so a typo doesn't silently split one
// family's ids across two caches.
const (
	familyPlayer    = "player"
	familyCharacter = "character"
	familyTile      = "tile"
	familyCity      = "city"
	familyFamily    = "family"
	familyReligion  = "religion"
	familyTribe     = "tribe"
)

// insertBundle runs the multi-pass insertion order from spec §4.8,
// translating every source id through mapper before it reaches the
// store. Passes run in sequence inside the caller's transaction; nesting
// them further would add no parallelism since SQLite serializes writes
// to a single connection.
func insertBundle(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, b *model.Bundle_t, emit func(progress.Phase)) error {
	timed := func(phase progress.Phase, fn func() error) error {
		emit(phase)
		t0 := time.Now()
		err := fn()
		metrics.PhaseDuration.WithLabelValues(string(phase)).Observe(time.Since(t0).Seconds())
		return err
	}

	// Pass 1a-d + 2a/2b/2d: foundation rows, then fill in the FK fields
	// left NULL above now that every foundation family has a store id.
	if err := timed(progress.PhaseFoundation, func() error {
		if err := insertPlayers(ctx, q, mapper, snapshotID, b.Players); err != nil {
			return err
		}
		if err := insertCharactersPass1(ctx, q, mapper, snapshotID, b.Characters); err != nil {
			return err
		}
		if err := insertTilesPass1(ctx, q, mapper, snapshotID, b.Tiles); err != nil {
			return err
		}
		if err := insertCities(ctx, q, mapper, snapshotID, b.Cities); err != nil {
			return err
		}
		if err := updateCharacterParents(ctx, q, mapper, snapshotID, b.Characters); err != nil {
			return err
		}
		if err := updateCharacterBirthCity(ctx, q, mapper, snapshotID, b.Characters); err != nil {
			return err
		}
		return updateTileCityTerritory(ctx, q, mapper, snapshotID, b.Tiles)
	}); err != nil {
		return err
	}

	// Pass 3: affiliations.
	if err := timed(progress.PhaseDiplomacy, func() error {
		if err := insertFamilies(ctx, q, mapper, snapshotID, b.Families); err != nil {
			return err
		}
		if err := insertReligions(ctx, q, mapper, snapshotID, b.Religions); err != nil {
			return err
		}
		return insertTribes(ctx, q, mapper, snapshotID, b.Tribes)
	}); err != nil {
		return err
	}

	// Pass 2c: tile ownership history, requires tiles final.
	if err := timed(progress.PhaseTimeSeries, func() error {
		if err := insertTileOwnershipHistory(ctx, q, mapper, snapshotID, b.TileOwnershipHistory); err != nil {
			return err
		}
		return insertTimeSeries(ctx, q, mapper, snapshotID, b.TimeSeries)
	}); err != nil {
		return err
	}

	// Pass 4a: city production queue and completed projects.
	if err := timed(progress.PhaseUnitProduction, func() error {
		return insertUnitProduction(ctx, q, mapper, snapshotID, b)
	}); err != nil {
		return err
	}

	// Pass 4b: per-character and per-city nested data.
	if err := timed(progress.PhaseExtendedCharCity, func() error {
		return insertExtendedCharCity(ctx, q, mapper, snapshotID, b)
	}); err != nil {
		return err
	}

	// Pass 4c: player resources, tech tree, council, laws, goals.
	if err := timed(progress.PhaseGameplayData, func() error {
		return insertGameplayData(ctx, q, mapper, snapshotID, b)
	}); err != nil {
		return err
	}

	return nil
}

func mapRequired(mapper *idmap.Mapper, family string, id model.SourceID) (int64, error) {
	return mapper.Map(family, int(id))
}

func mapOptional(mapper *idmap.Mapper, family string, id *model.SourceID) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	v, err := mapper.Map(family, int(*id))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapOptionalInt(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

func insertPlayers(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, players []*model.Player_t) error {
	rows := make([]sqlite.PlayerRow, len(players))
	for i, p := range players {
		storeID, err := mapRequired(mapper, familyPlayer, p.ID)
		if err != nil {
			return err
		}
		stateReligion, err := mapOptional(mapper, familyReligion, p.StateReligion)
		if err != nil {
			return err
		}
		rows[i] = sqlite.PlayerRow{
			PlayerID:      storeID,
			SnapshotID:    snapshotID,
			Name:          p.Name,
			Nation:        p.Nation,
			Dynasty:       p.Dynasty,
			Team:          mapOptionalInt(p.Team),
			IsHuman:       p.IsHuman,
			Difficulty:    p.Difficulty,
			Legitimacy:    mapOptionalInt(p.Legitimacy),
			StateReligion: stateReligion,
		}
	}
	n, err := q.InsertPlayers(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("player").Add(float64(n))
	}
	return err
}

func insertCharactersPass1(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, characters []*model.Character_t) error {
	rows := make([]sqlite.CharacterRow, len(characters))
	for i, c := range characters {
		storeID, err := mapRequired(mapper, familyCharacter, c.ID)
		if err != nil {
			return err
		}
		playerID, err := mapOptional(mapper, familyPlayer, c.PlayerID)
		if err != nil {
			return err
		}
		familyID, err := mapOptional(mapper, familyFamily, c.FamilyID)
		if err != nil {
			return err
		}
		religionID, err := mapOptional(mapper, familyReligion, c.ReligionID)
		if err != nil {
			return err
		}
		var tribeID *string
		if c.TribeID != nil {
			if _, err := mapper.Map(familyTribe, *c.TribeID); err != nil {
				return err
			}
			tribeID = c.TribeID
		}
		rows[i] = sqlite.CharacterRow{
			CharacterID: storeID,
			SnapshotID:  snapshotID,
			PlayerID:    playerID,
			BirthTurn:   int64(c.BirthTurn),
			DeathTurn:   mapOptionalInt(c.DeathTurn),
			Gender:      c.Gender,
			FamilyID:    familyID,
			TribeID:     tribeID,
			ReligionID:  religionID,
		}
	}
	n, err := q.InsertCharacters(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("character").Add(float64(n))
	}
	return err
}

func updateCharacterParents(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, characters []*model.Character_t) error {
	for _, c := range characters {
		if c.FatherID == nil && c.MotherID == nil {
			continue
		}
		storeID, err := mapRequired(mapper, familyCharacter, c.ID)
		if err != nil {
			return err
		}
		father, err := mapOptional(mapper, familyCharacter, c.FatherID)
		if err != nil {
			return err
		}
		mother, err := mapOptional(mapper, familyCharacter, c.MotherID)
		if err != nil {
			return err
		}
		if err := q.UpdateCharacterParents(ctx, storeID, snapshotID, father, mother); err != nil {
			return err
		}
	}
	return nil
}

func updateCharacterBirthCity(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, characters []*model.Character_t) error {
	for _, c := range characters {
		if c.BirthCityID == nil {
			continue
		}
		storeID, err := mapRequired(mapper, familyCharacter, c.ID)
		if err != nil {
			return err
		}
		birthCity, err := mapOptional(mapper, familyCity, c.BirthCityID)
		if err != nil {
			return err
		}
		if err := q.UpdateCharacterBirthCity(ctx, storeID, snapshotID, birthCity); err != nil {
			return err
		}
	}
	return nil
}

func insertTilesPass1(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, tiles []*model.Tile_t) error {
	rows := make([]sqlite.TileRow, len(tiles))
	for i, t := range tiles {
		storeID, err := mapRequired(mapper, familyTile, t.ID)
		if err != nil {
			return err
		}
		owner, err := mapOptional(mapper, familyPlayer, t.OwnerID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.TileRow{
			TileID:      storeID,
			SnapshotID:  snapshotID,
			X:           int64(t.X),
			Y:           int64(t.Y),
			Terrain:     t.Terrain,
			Vegetation:  t.Vegetation,
			Improvement: t.Improvement,
			Specialist:  t.Specialist,
			Resource:    t.Resource,
			OwnerID:     owner,
		}
	}
	n, err := q.InsertTiles(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("tile").Add(float64(n))
	}
	return err
}

func updateTileCityTerritory(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, tiles []*model.Tile_t) error {
	for _, t := range tiles {
		if t.CityTerritoryID == nil {
			continue
		}
		storeID, err := mapRequired(mapper, familyTile, t.ID)
		if err != nil {
			return err
		}
		cityTerritory, err := mapOptional(mapper, familyCity, t.CityTerritoryID)
		if err != nil {
			return err
		}
		if err := q.UpdateTileCityTerritory(ctx, storeID, snapshotID, cityTerritory); err != nil {
			return err
		}
	}
	return nil
}

func insertCities(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, cities []*model.City_t) error {
	rows := make([]sqlite.CityRow, len(cities))
	for i, c := range cities {
		storeID, err := mapRequired(mapper, familyCity, c.ID)
		if err != nil {
			return err
		}
		playerID, err := mapOptional(mapper, familyPlayer, c.PlayerID)
		if err != nil {
			return err
		}
		tileID, err := mapRequired(mapper, familyTile, c.TileID)
		if err != nil {
			return err
		}
		familyID, err := mapOptional(mapper, familyFamily, c.FamilyID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.CityRow{
			CityID:     storeID,
			SnapshotID: snapshotID,
			PlayerID:   playerID,
			TileID:     tileID,
			FamilyID:   familyID,
		}
	}
	n, err := q.InsertCities(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("city").Add(float64(n))
	}
	return err
}

func insertFamilies(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, families []*model.Family_t) error {
	rows := make([]sqlite.FamilyRow, len(families))
	for i, f := range families {
		storeID, err := mapRequired(mapper, familyFamily, f.ID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.FamilyRow{FamilyID: storeID, SnapshotID: snapshotID, Name: f.Name}
	}
	n, err := q.InsertFamilies(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("family").Add(float64(n))
	}
	return err
}

func insertReligions(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, religions []*model.Religion_t) error {
	rows := make([]sqlite.ReligionRow, len(religions))
	for i, r := range religions {
		storeID, err := mapRequired(mapper, familyReligion, r.ID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.ReligionRow{ReligionID: storeID, SnapshotID: snapshotID, Name: r.Name}
	}
	n, err := q.InsertReligions(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("religion").Add(float64(n))
	}
	return err
}

func insertTribes(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, tribes []*model.Tribe_t) error {
	rows := make([]sqlite.TribeRow, len(tribes))
	for i, t := range tribes {
		storeID, err := mapper.Map(familyTribe, t.StringID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.TribeRow{TribeID: storeID, SnapshotID: snapshotID, StringID: t.StringID, Name: t.Name}
	}
	n, err := q.InsertTribes(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("tribe").Add(float64(n))
	}
	return err
}

func insertTileOwnershipHistory(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, history []*model.TileOwnershipHistory_t) error {
	if len(history) == 0 {
		return nil
	}
	rows := make([]sqlite.TileOwnershipHistoryRow, len(history))
	for i, h := range history {
		tileID, err := mapRequired(mapper, familyTile, h.TileID)
		if err != nil {
			return err
		}
		owner, err := mapOptional(mapper, familyPlayer, h.OwnerID)
		if err != nil {
			return err
		}
		rows[i] = sqlite.TileOwnershipHistoryRow{TileID: tileID, SnapshotID: snapshotID, Turn: int64(h.Turn), OwnerID: owner}
	}
	n, err := q.InsertTileOwnershipHistory(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("tile_ownership_history").Add(float64(n))
	}
	return err
}

func insertTimeSeries(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, points []*model.TimeSeriesPoint_t) error {
	if len(points) == 0 {
		return nil
	}
	rows := make([]sqlite.TimeseriesPointRow, 0, len(points))
	for _, p := range points {
		if p.Turn < 0 {
			continue // advisory-only negative turns never reach the store (spec §3 invariant)
		}
		// Map (not Lookup) here: a series owner was already mapped in
		// the foundation pass, so this just resolves the stable id
		// Map already assigned it.
		ownerID, err := mapper.Map(seriesOwnerFamily(p.Series), int(p.OwnerID))
		if err != nil {
			return err
		}
		rows = append(rows, sqlite.TimeseriesPointRow{
			Series: p.Series, OwnerID: ownerID, SnapshotID: snapshotID, Turn: int64(p.Turn), Value: int64(p.Value),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	n, err := q.InsertTimeseriesPoints(ctx, rows)
	if err == nil {
		metrics.RowsInserted.WithLabelValues("timeseries_point").Add(float64(n))
	}
	return err
}

// seriesOwnerFamily maps a time-series name to the identifier family
// that owns it, so the generic timeseries_points table still stores
// correctly-translated store ids (spec §3 "Time-series").
func seriesOwnerFamily(series string) string {
	switch {
	case series == "player_points":
		return familyPlayer
	case len(series) >= len("city_yield_history:") && series[:len("city_yield_history:")] == "city_yield_history:":
		return familyCity
	default:
		return familyPlayer
	}
}

// insertUnitProduction handles the per-city build queue and completed
// projects, the one piece of extended data that maps directly onto
// the production milestone.
func insertUnitProduction(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, b *model.Bundle_t) error {
	if rows, err := cityProductionQueueRows(mapper, snapshotID, b.CityProductionQueue); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCityProductionQueue(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("city_production_queue").Add(float64(n))
		}
	}
	if rows, err := cityCompletedProjectRows(mapper, snapshotID, b.CityCompletedProjects); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCityCompletedProjects(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("city_completed_project").Add(float64(n))
		}
	}
	return nil
}

// insertExtendedCharCity handles the per-character and per-city nested
// tables that don't belong to any other milestone.
func insertExtendedCharCity(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, b *model.Bundle_t) error {
	if rows, err := characterStatRows(mapper, snapshotID, b.CharacterStats); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCharacterStats(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("character_stat").Add(float64(n))
		}
	}
	if rows, err := characterTraitRows(mapper, snapshotID, b.CharacterTraits); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCharacterTraits(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("character_trait").Add(float64(n))
		}
	}
	if rows, err := characterRelationshipRows(mapper, snapshotID, b.CharacterRelationships); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCharacterRelationships(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("character_relationship").Add(float64(n))
		}
	}
	if rows, err := characterMarriageRows(mapper, snapshotID, b.CharacterMarriages); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCharacterMarriages(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("character_marriage").Add(float64(n))
		}
	}
	if rows, err := cityYieldRows(mapper, snapshotID, b.CityYields); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCityYields(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("city_yield").Add(float64(n))
		}
	}
	if rows, err := cityCultureRows(mapper, snapshotID, b.CityCulture); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCityCulture(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("city_culture").Add(float64(n))
		}
	}
	if rows, err := cityReligionRows(mapper, snapshotID, b.CityReligions); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertCityReligions(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("city_religion").Add(float64(n))
		}
	}
	if rows, err := tileVisibilityRows(mapper, snapshotID, b.TileVisibility); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertTileVisibility(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("tile_visibility").Add(float64(n))
		}
	}
	return nil
}

// insertGameplayData handles player-level economy, tech, council,
// laws, and goals.
func insertGameplayData(ctx context.Context, q *sqlite.Queries, mapper *idmap.Mapper, snapshotID int64, b *model.Bundle_t) error {
	if rows, err := playerResourceRows(mapper, snapshotID, b.PlayerResources); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerResources(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_resource").Add(float64(n))
		}
	}
	if rows, err := playerTechnologyProgressRows(mapper, snapshotID, b.PlayerTechnologyProgress); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerTechnologyProgress(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_technology_progress").Add(float64(n))
		}
	}
	if rows, err := playerTechnologyCompletedRows(mapper, snapshotID, b.PlayerTechnologyCompleted); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerTechnologyCompleted(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_technology_completed").Add(float64(n))
		}
	}
	if rows, err := playerTechnologyStateRows(mapper, snapshotID, b.PlayerTechnologyStates); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerTechnologyStates(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_technology_state").Add(float64(n))
		}
	}
	if rows, err := playerCouncilPositionRows(mapper, snapshotID, b.PlayerCouncilPositions); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerCouncilPositions(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_council_position").Add(float64(n))
		}
	}
	if rows, err := playerLawRows(mapper, snapshotID, b.PlayerLaws); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerLaws(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_law").Add(float64(n))
		}
	}
	if rows, err := playerGoalRows(mapper, snapshotID, b.PlayerGoals); err != nil {
		return err
	} else if len(rows) > 0 {
		if n, err := q.InsertPlayerGoals(ctx, rows); err != nil {
			return err
		} else {
			metrics.RowsInserted.WithLabelValues("player_goal").Add(float64(n))
		}
	}
	return nil
}

func characterStatRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CharacterStat_t) ([]sqlite.CharacterStatRow, error) {
	out := make([]sqlite.CharacterStatRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCharacter, v.CharacterID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CharacterStatRow{CharacterID: id, SnapshotID: snapshotID, Name: v.Name, Value: int64(v.Value)}
	}
	return out, nil
}

func characterTraitRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CharacterTrait_t) ([]sqlite.CharacterTraitRow, error) {
	out := make([]sqlite.CharacterTraitRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCharacter, v.CharacterID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CharacterTraitRow{CharacterID: id, SnapshotID: snapshotID, Name: v.Name, EndTurn: mapOptionalInt(v.EndTurn)}
	}
	return out, nil
}

func characterRelationshipRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CharacterRelationship_t) ([]sqlite.CharacterRelationshipRow, error) {
	out := make([]sqlite.CharacterRelationshipRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCharacter, v.CharacterID)
		if err != nil {
			return nil, err
		}
		related, err := mapRequired(mapper, familyCharacter, v.RelatedID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CharacterRelationshipRow{CharacterID: id, SnapshotID: snapshotID, RelatedID: related, Kind: v.Kind}
	}
	return out, nil
}

func characterMarriageRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CharacterMarriage_t) ([]sqlite.CharacterMarriageRow, error) {
	out := make([]sqlite.CharacterMarriageRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCharacter, v.CharacterID)
		if err != nil {
			return nil, err
		}
		spouse, err := mapRequired(mapper, familyCharacter, v.SpouseID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CharacterMarriageRow{
			CharacterID: id, SnapshotID: snapshotID, SpouseID: spouse,
			StartTurn: mapOptionalInt(v.StartTurn), EndTurn: mapOptionalInt(v.EndTurn),
		}
	}
	return out, nil
}

func cityYieldRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CityYield_t) ([]sqlite.CityYieldRow, error) {
	out := make([]sqlite.CityYieldRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCity, v.CityID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CityYieldRow{CityID: id, SnapshotID: snapshotID, Good: v.Good, Amount: int64(v.Amount)}
	}
	return out, nil
}

func cityCultureRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CityCulture_t) ([]sqlite.CityCultureRow, error) {
	out := make([]sqlite.CityCultureRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCity, v.CityID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CityCultureRow{CityID: id, SnapshotID: snapshotID, Culture: v.Culture, Amount: int64(v.Amount)}
	}
	return out, nil
}

func cityReligionRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CityReligion_t) ([]sqlite.CityReligionRow, error) {
	out := make([]sqlite.CityReligionRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCity, v.CityID)
		if err != nil {
			return nil, err
		}
		religionID, err := mapRequired(mapper, familyReligion, v.ReligionID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CityReligionRow{CityID: id, SnapshotID: snapshotID, ReligionID: religionID, Amount: int64(v.Amount)}
	}
	return out, nil
}

func cityProductionQueueRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CityProductionQueueItem_t) ([]sqlite.CityProductionQueueRow, error) {
	out := make([]sqlite.CityProductionQueueRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCity, v.CityID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CityProductionQueueRow{CityID: id, SnapshotID: snapshotID, Position: int64(v.Position), Project: v.Project}
	}
	return out, nil
}

func cityCompletedProjectRows(mapper *idmap.Mapper, snapshotID int64, in []*model.CityCompletedProject_t) ([]sqlite.CityCompletedProjectRow, error) {
	out := make([]sqlite.CityCompletedProjectRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyCity, v.CityID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.CityCompletedProjectRow{CityID: id, SnapshotID: snapshotID, Project: v.Project, Turn: int64(v.Turn)}
	}
	return out, nil
}

func tileVisibilityRows(mapper *idmap.Mapper, snapshotID int64, in []*model.TileVisibility_t) ([]sqlite.TileVisibilityRow, error) {
	out := make([]sqlite.TileVisibilityRow, len(in))
	for i, v := range in {
		tileID, err := mapRequired(mapper, familyTile, v.TileID)
		if err != nil {
			return nil, err
		}
		playerID, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.TileVisibilityRow{TileID: tileID, SnapshotID: snapshotID, PlayerID: playerID, Visible: v.Visible}
	}
	return out, nil
}

func playerResourceRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerResource_t) ([]sqlite.PlayerResourceRow, error) {
	out := make([]sqlite.PlayerResourceRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerResourceRow{PlayerID: id, SnapshotID: snapshotID, Resource: v.Resource, Amount: int64(v.Amount)}
	}
	return out, nil
}

func playerTechnologyProgressRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerTechnologyProgress_t) ([]sqlite.PlayerTechnologyProgressRow, error) {
	out := make([]sqlite.PlayerTechnologyProgressRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerTechnologyProgressRow{PlayerID: id, SnapshotID: snapshotID, Technology: v.Technology, Progress: int64(v.Progress)}
	}
	return out, nil
}

func playerTechnologyCompletedRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerTechnologyCompleted_t) ([]sqlite.PlayerTechnologyCompletedRow, error) {
	out := make([]sqlite.PlayerTechnologyCompletedRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerTechnologyCompletedRow{PlayerID: id, SnapshotID: snapshotID, Technology: v.Technology, Turn: int64(v.Turn)}
	}
	return out, nil
}

func playerTechnologyStateRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerTechnologyState_t) ([]sqlite.PlayerTechnologyStateRow, error) {
	out := make([]sqlite.PlayerTechnologyStateRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerTechnologyStateRow{PlayerID: id, SnapshotID: snapshotID, Technology: v.Technology, State: v.State}
	}
	return out, nil
}

func playerCouncilPositionRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerCouncilPosition_t) ([]sqlite.PlayerCouncilPositionRow, error) {
	out := make([]sqlite.PlayerCouncilPositionRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		characterID, err := mapOptional(mapper, familyCharacter, v.CharacterID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerCouncilPositionRow{PlayerID: id, SnapshotID: snapshotID, Position: v.Position, CharacterID: characterID}
	}
	return out, nil
}

func playerLawRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerLaw_t) ([]sqlite.PlayerLawRow, error) {
	out := make([]sqlite.PlayerLawRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerLawRow{PlayerID: id, SnapshotID: snapshotID, Law: v.Law, Choice: v.Choice}
	}
	return out, nil
}

func playerGoalRows(mapper *idmap.Mapper, snapshotID int64, in []*model.PlayerGoal_t) ([]sqlite.PlayerGoalRow, error) {
	out := make([]sqlite.PlayerGoalRow, len(in))
	for i, v := range in {
		id, err := mapRequired(mapper, familyPlayer, v.PlayerID)
		if err != nil {
			return nil, err
		}
		out[i] = sqlite.PlayerGoalRow{PlayerID: id, SnapshotID: snapshotID, Goal: v.Goal, Progress: int64(v.Progress)}
	}
	return out, nil
}
