// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

const nextIDCounter = `-- name: NextIDCounter :one
INSERT INTO id_counters (entity_family, next_value)
VALUES (?1, 2)
ON CONFLICT (entity_family) DO UPDATE SET next_value = id_counters.next_value + 1
RETURNING next_value - 1
`

// NextIDCounter implements the identifier mapper's monotonic
// per-family "next id" allocation (spec §4.6). The first call for a
// family returns 1 and leaves the counter at 2; every later call
// returns the counter's pre-increment value.
func (q *Queries) NextIDCounter(ctx context.Context, entityFamily string) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextIDCounter, entityFamily)
	var storeID int64
	err := row.Scan(&storeID)
	return storeID, err
}

const upsertIDMapping = `-- name: UpsertIDMapping :exec
INSERT INTO id_mappings (snapshot_id, entity_family, source_id, store_id)
VALUES (?1, ?2, ?3, ?4)
ON CONFLICT (snapshot_id, entity_family, source_id) DO UPDATE SET store_id = excluded.store_id
`

type UpsertIDMappingParams struct {
	SnapshotID   int64
	EntityFamily string
	SourceID     string
	StoreID      int64
}

func (q *Queries) UpsertIDMapping(ctx context.Context, arg UpsertIDMappingParams) error {
	_, err := q.db.ExecContext(ctx, upsertIDMapping, arg.SnapshotID, arg.EntityFamily, arg.SourceID, arg.StoreID)
	return err
}

const listIDMappingsForSnapshot = `-- name: ListIDMappingsForSnapshot :many
SELECT snapshot_id, entity_family, source_id, store_id
FROM id_mappings
WHERE snapshot_id = ?1
`

// ListIDMappingsForSnapshot implements the mapper's load(snapshot_id)
// restore path, used when re-importing (spec §4.6).
func (q *Queries) ListIDMappingsForSnapshot(ctx context.Context, snapshotID int64) ([]IDMapping, error) {
	rows, err := q.db.QueryContext(ctx, listIDMappingsForSnapshot, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IDMapping
	for rows.Next() {
		var m IDMapping
		if err := rows.Scan(&m.SnapshotID, &m.EntityFamily, &m.SourceID, &m.StoreID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
