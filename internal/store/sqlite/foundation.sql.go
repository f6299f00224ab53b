// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

var playerColumns = []string{"player_id", "snapshot_id", "name", "nation", "dynasty", "team", "is_human", "difficulty", "legitimacy", "state_religion"}

type PlayerRow struct {
	PlayerID      int64
	SnapshotID    int64
	Name          string
	Nation        string
	Dynasty       string
	Team          *int64
	IsHuman       bool
	Difficulty    string
	Legitimacy    *int64
	StateReligion *int64
}

// InsertPlayers is Pass 1a (spec §4.8): players carry no cross-foundation FKs.
func (q *Queries) InsertPlayers(ctx context.Context, rows []PlayerRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Name, r.Nation, r.Dynasty, r.Team, r.IsHuman, r.Difficulty, r.Legitimacy, r.StateReligion}
	}
	return BulkInsert(ctx, q.db, "players", playerColumns, values)
}

var characterColumns = []string{"character_id", "snapshot_id", "player_id", "birth_turn", "death_turn", "gender", "family_id", "tribe_id", "religion_id"}

type CharacterRow struct {
	CharacterID SourceRef
	SnapshotID  int64
	PlayerID    *int64
	BirthTurn   int64
	DeathTurn   *int64
	Gender      string
	FamilyID    *int64
	TribeID     *string
	ReligionID  *int64
}

// SourceRef is a plain store-id alias, kept distinct from other int64
// fields only for call-site readability across the inserter wrappers.
type SourceRef = int64

// InsertCharacters is Pass 1b (spec §4.8): inserted without
// parent/birth-city references; those arrive in Pass 2a/2d.
func (q *Queries) InsertCharacters(ctx context.Context, rows []CharacterRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CharacterID, r.SnapshotID, r.PlayerID, r.BirthTurn, r.DeathTurn, r.Gender, r.FamilyID, r.TribeID, r.ReligionID}
	}
	return BulkInsert(ctx, q.db, "characters", characterColumns, values)
}

const updateCharacterParents = `-- name: UpdateCharacterParents :exec
UPDATE characters
SET father_id = ?3, mother_id = ?4
WHERE character_id = ?1 AND snapshot_id = ?2
`

// UpdateCharacterParents is Pass 2a (spec §4.8): must run before any
// table that references characters.
func (q *Queries) UpdateCharacterParents(ctx context.Context, characterID, snapshotID int64, fatherID, motherID *int64) error {
	_, err := q.db.ExecContext(ctx, updateCharacterParents, characterID, snapshotID, fatherID, motherID)
	return err
}

const updateCharacterBirthCity = `-- name: UpdateCharacterBirthCity :exec
UPDATE characters
SET birth_city_id = ?3
WHERE character_id = ?1 AND snapshot_id = ?2
`

// UpdateCharacterBirthCity is Pass 2d (spec §4.8): requires cities to exist.
func (q *Queries) UpdateCharacterBirthCity(ctx context.Context, characterID, snapshotID int64, birthCityID *int64) error {
	_, err := q.db.ExecContext(ctx, updateCharacterBirthCity, characterID, snapshotID, birthCityID)
	return err
}

var tileColumns = []string{"tile_id", "snapshot_id", "x", "y", "terrain", "vegetation", "improvement", "specialist", "resource", "owner_id"}

type TileRow struct {
	TileID      int64
	SnapshotID  int64
	X, Y        int64
	Terrain     string
	Vegetation  string
	Improvement string
	Specialist  string
	Resource    string
	OwnerID     *int64
}

// InsertTiles is Pass 1c (spec §4.8): inserted without city-territory.
func (q *Queries) InsertTiles(ctx context.Context, rows []TileRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.TileID, r.SnapshotID, r.X, r.Y, r.Terrain, r.Vegetation, r.Improvement, r.Specialist, r.Resource, r.OwnerID}
	}
	return BulkInsert(ctx, q.db, "tiles", tileColumns, values)
}

const updateTileCityTerritory = `-- name: UpdateTileCityTerritory :exec
UPDATE tiles
SET city_territory_id = ?3
WHERE tile_id = ?1 AND snapshot_id = ?2
`

// UpdateTileCityTerritory is Pass 2b (spec §4.8): requires cities.
func (q *Queries) UpdateTileCityTerritory(ctx context.Context, tileID, snapshotID int64, cityTerritoryID *int64) error {
	_, err := q.db.ExecContext(ctx, updateTileCityTerritory, tileID, snapshotID, cityTerritoryID)
	return err
}

var cityColumns = []string{"city_id", "snapshot_id", "player_id", "tile_id", "family_id"}

type CityRow struct {
	CityID     int64
	SnapshotID int64
	PlayerID   *int64
	TileID     int64
	FamilyID   *int64
}

// InsertCities is Pass 1d (spec §4.8).
func (q *Queries) InsertCities(ctx context.Context, rows []CityRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.PlayerID, r.TileID, r.FamilyID}
	}
	return BulkInsert(ctx, q.db, "cities", cityColumns, values)
}
