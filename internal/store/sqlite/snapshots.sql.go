// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

const findSnapshot = `-- name: FindSnapshot :one
SELECT snapshot_id, game_id, turn, map_width, map_size, map_aspect_ratio, winner_store_id, imported_at
FROM snapshots
WHERE game_id = ?1
  AND turn = ?2
`

// FindSnapshot implements the DUP-CHECK transition (spec §4.9):
// returns sql.ErrNoRows when no prior import of (game_id, turn) exists.
func (q *Queries) FindSnapshot(ctx context.Context, gameID string, turn int64) (Snapshot, error) {
	row := q.db.QueryRowContext(ctx, findSnapshot, gameID, turn)
	var s Snapshot
	err := row.Scan(&s.SnapshotID, &s.GameID, &s.Turn, &s.MapWidth, &s.MapSize, &s.MapAspectRatio, &s.WinnerStoreID, &s.ImportedAt)
	return s, err
}

const createSnapshot = `-- name: CreateSnapshot :one
INSERT INTO snapshots (game_id, turn, map_width, map_size, map_aspect_ratio, imported_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6)
RETURNING snapshot_id
`

type CreateSnapshotParams struct {
	GameID         string
	Turn           int64
	MapWidth       int64
	MapSize        int64
	MapAspectRatio float64
	ImportedAt     string
}

func (q *Queries) CreateSnapshot(ctx context.Context, arg CreateSnapshotParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createSnapshot, arg.GameID, arg.Turn, arg.MapWidth, arg.MapSize, arg.MapAspectRatio, arg.ImportedAt)
	var snapshotID int64
	err := row.Scan(&snapshotID)
	return snapshotID, err
}

const setSnapshotWinner = `-- name: SetSnapshotWinner :exec
UPDATE snapshots
SET winner_store_id = ?2
WHERE snapshot_id = ?1
`

func (q *Queries) SetSnapshotWinner(ctx context.Context, snapshotID int64, winnerStoreID int64) error {
	_, err := q.db.ExecContext(ctx, setSnapshotWinner, snapshotID, winnerStoreID)
	return err
}
