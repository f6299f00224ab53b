// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

// The extended/nested tables (Pass 4, spec §4.8) share one shape:
// append-only rows scoped by (owner, snapshot_id). Each gets a thin
// typed wrapper over BulkInsert rather than a bespoke query file,
// since none of them participate in later FK-update passes the way
// characters/tiles do.

var characterStatColumns = []string{"character_id", "snapshot_id", "name", "value"}

type CharacterStatRow struct {
	CharacterID int64
	SnapshotID  int64
	Name        string
	Value       int64
}

func (q *Queries) InsertCharacterStats(ctx context.Context, rows []CharacterStatRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CharacterID, r.SnapshotID, r.Name, r.Value}
	}
	return BulkInsert(ctx, q.db, "character_stats", characterStatColumns, values)
}

var characterTraitColumns = []string{"character_id", "snapshot_id", "name", "end_turn"}

type CharacterTraitRow struct {
	CharacterID int64
	SnapshotID  int64
	Name        string
	EndTurn     *int64
}

func (q *Queries) InsertCharacterTraits(ctx context.Context, rows []CharacterTraitRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CharacterID, r.SnapshotID, r.Name, r.EndTurn}
	}
	return BulkInsert(ctx, q.db, "character_traits", characterTraitColumns, values)
}

var characterRelationshipColumns = []string{"character_id", "snapshot_id", "related_id", "kind"}

type CharacterRelationshipRow struct {
	CharacterID int64
	SnapshotID  int64
	RelatedID   int64
	Kind        string
}

func (q *Queries) InsertCharacterRelationships(ctx context.Context, rows []CharacterRelationshipRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CharacterID, r.SnapshotID, r.RelatedID, r.Kind}
	}
	return BulkInsert(ctx, q.db, "character_relationships", characterRelationshipColumns, values)
}

var characterMarriageColumns = []string{"character_id", "snapshot_id", "spouse_id", "start_turn", "end_turn"}

type CharacterMarriageRow struct {
	CharacterID int64
	SnapshotID  int64
	SpouseID    int64
	StartTurn   *int64
	EndTurn     *int64
}

func (q *Queries) InsertCharacterMarriages(ctx context.Context, rows []CharacterMarriageRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CharacterID, r.SnapshotID, r.SpouseID, r.StartTurn, r.EndTurn}
	}
	return BulkInsert(ctx, q.db, "character_marriages", characterMarriageColumns, values)
}

var cityYieldColumns = []string{"city_id", "snapshot_id", "good", "amount"}

type CityYieldRow struct {
	CityID     int64
	SnapshotID int64
	Good       string
	Amount     int64
}

func (q *Queries) InsertCityYields(ctx context.Context, rows []CityYieldRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.Good, r.Amount}
	}
	return BulkInsert(ctx, q.db, "city_yields", cityYieldColumns, values)
}

var cityCultureColumns = []string{"city_id", "snapshot_id", "culture", "amount"}

type CityCultureRow struct {
	CityID     int64
	SnapshotID int64
	Culture    string
	Amount     int64
}

func (q *Queries) InsertCityCulture(ctx context.Context, rows []CityCultureRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.Culture, r.Amount}
	}
	return BulkInsert(ctx, q.db, "city_culture", cityCultureColumns, values)
}

var cityReligionColumns = []string{"city_id", "snapshot_id", "religion_id", "amount"}

type CityReligionRow struct {
	CityID     int64
	SnapshotID int64
	ReligionID int64
	Amount     int64
}

func (q *Queries) InsertCityReligions(ctx context.Context, rows []CityReligionRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.ReligionID, r.Amount}
	}
	return BulkInsert(ctx, q.db, "city_religions", cityReligionColumns, values)
}

var cityProductionQueueColumns = []string{"city_id", "snapshot_id", "position", "project"}

type CityProductionQueueRow struct {
	CityID     int64
	SnapshotID int64
	Position   int64
	Project    string
}

func (q *Queries) InsertCityProductionQueue(ctx context.Context, rows []CityProductionQueueRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.Position, r.Project}
	}
	return BulkInsert(ctx, q.db, "city_production_queue", cityProductionQueueColumns, values)
}

var cityCompletedProjectColumns = []string{"city_id", "snapshot_id", "project", "turn"}

type CityCompletedProjectRow struct {
	CityID     int64
	SnapshotID int64
	Project    string
	Turn       int64
}

func (q *Queries) InsertCityCompletedProjects(ctx context.Context, rows []CityCompletedProjectRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.CityID, r.SnapshotID, r.Project, r.Turn}
	}
	return BulkInsert(ctx, q.db, "city_completed_projects", cityCompletedProjectColumns, values)
}

var tileOwnershipHistoryColumns = []string{"tile_id", "snapshot_id", "turn", "owner_id"}

type TileOwnershipHistoryRow struct {
	TileID     int64
	SnapshotID int64
	Turn       int64
	OwnerID    *int64
}

// InsertTileOwnershipHistory is Pass 2c (spec §4.8): requires tiles final.
func (q *Queries) InsertTileOwnershipHistory(ctx context.Context, rows []TileOwnershipHistoryRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.TileID, r.SnapshotID, r.Turn, r.OwnerID}
	}
	return BulkInsert(ctx, q.db, "tile_ownership_history", tileOwnershipHistoryColumns, values)
}

var tileVisibilityColumns = []string{"tile_id", "snapshot_id", "player_id", "visible"}

type TileVisibilityRow struct {
	TileID     int64
	SnapshotID int64
	PlayerID   int64
	Visible    bool
}

func (q *Queries) InsertTileVisibility(ctx context.Context, rows []TileVisibilityRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.TileID, r.SnapshotID, r.PlayerID, r.Visible}
	}
	return BulkInsert(ctx, q.db, "tile_visibility", tileVisibilityColumns, values)
}

var playerResourceColumns = []string{"player_id", "snapshot_id", "resource", "amount"}

type PlayerResourceRow struct {
	PlayerID   int64
	SnapshotID int64
	Resource   string
	Amount     int64
}

func (q *Queries) InsertPlayerResources(ctx context.Context, rows []PlayerResourceRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Resource, r.Amount}
	}
	return BulkInsert(ctx, q.db, "player_resources", playerResourceColumns, values)
}

var playerTechnologyProgressColumns = []string{"player_id", "snapshot_id", "technology", "progress"}

type PlayerTechnologyProgressRow struct {
	PlayerID   int64
	SnapshotID int64
	Technology string
	Progress   int64
}

func (q *Queries) InsertPlayerTechnologyProgress(ctx context.Context, rows []PlayerTechnologyProgressRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Technology, r.Progress}
	}
	return BulkInsert(ctx, q.db, "player_technology_progress", playerTechnologyProgressColumns, values)
}

var playerTechnologyCompletedColumns = []string{"player_id", "snapshot_id", "technology", "turn"}

type PlayerTechnologyCompletedRow struct {
	PlayerID   int64
	SnapshotID int64
	Technology string
	Turn       int64
}

func (q *Queries) InsertPlayerTechnologyCompleted(ctx context.Context, rows []PlayerTechnologyCompletedRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Technology, r.Turn}
	}
	return BulkInsert(ctx, q.db, "player_technology_completed", playerTechnologyCompletedColumns, values)
}

var playerTechnologyStateColumns = []string{"player_id", "snapshot_id", "technology", "state"}

type PlayerTechnologyStateRow struct {
	PlayerID   int64
	SnapshotID int64
	Technology string
	State      string
}

func (q *Queries) InsertPlayerTechnologyStates(ctx context.Context, rows []PlayerTechnologyStateRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Technology, r.State}
	}
	return BulkInsert(ctx, q.db, "player_technology_states", playerTechnologyStateColumns, values)
}

var playerCouncilPositionColumns = []string{"player_id", "snapshot_id", "position", "character_id"}

type PlayerCouncilPositionRow struct {
	PlayerID    int64
	SnapshotID  int64
	Position    string
	CharacterID *int64
}

func (q *Queries) InsertPlayerCouncilPositions(ctx context.Context, rows []PlayerCouncilPositionRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Position, r.CharacterID}
	}
	return BulkInsert(ctx, q.db, "player_council_positions", playerCouncilPositionColumns, values)
}

var playerLawColumns = []string{"player_id", "snapshot_id", "law", "choice"}

type PlayerLawRow struct {
	PlayerID   int64
	SnapshotID int64
	Law        string
	Choice     string
}

func (q *Queries) InsertPlayerLaws(ctx context.Context, rows []PlayerLawRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Law, r.Choice}
	}
	return BulkInsert(ctx, q.db, "player_laws", playerLawColumns, values)
}

var playerGoalColumns = []string{"player_id", "snapshot_id", "goal", "progress"}

type PlayerGoalRow struct {
	PlayerID   int64
	SnapshotID int64
	Goal       string
	Progress   int64
}

func (q *Queries) InsertPlayerGoals(ctx context.Context, rows []PlayerGoalRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.PlayerID, r.SnapshotID, r.Goal, r.Progress}
	}
	return BulkInsert(ctx, q.db, "player_goals", playerGoalColumns, values)
}

var timeseriesPointColumns = []string{"series", "owner_id", "snapshot_id", "turn", "value"}

type TimeseriesPointRow struct {
	Series     string
	OwnerID    int64
	SnapshotID int64
	Turn       int64
	Value      int64
}

func (q *Queries) InsertTimeseriesPoints(ctx context.Context, rows []TimeseriesPointRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.Series, r.OwnerID, r.SnapshotID, r.Turn, r.Value}
	}
	return BulkInsert(ctx, q.db, "timeseries_points", timeseriesPointColumns, values)
}
