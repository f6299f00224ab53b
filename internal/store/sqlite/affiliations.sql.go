// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

var familyColumns = []string{"family_id", "snapshot_id", "name"}

type FamilyRow struct {
	FamilyID   int64
	SnapshotID int64
	Name       string
}

// InsertFamilies is part of Pass 3 (spec §4.8 "affiliations").
func (q *Queries) InsertFamilies(ctx context.Context, rows []FamilyRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.FamilyID, r.SnapshotID, r.Name}
	}
	return BulkInsert(ctx, q.db, "families", familyColumns, values)
}

var religionColumns = []string{"religion_id", "snapshot_id", "name"}

type ReligionRow struct {
	ReligionID int64
	SnapshotID int64
	Name       string
}

func (q *Queries) InsertReligions(ctx context.Context, rows []ReligionRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.ReligionID, r.SnapshotID, r.Name}
	}
	return BulkInsert(ctx, q.db, "religions", religionColumns, values)
}

var tribeColumns = []string{"tribe_id", "snapshot_id", "string_id", "name"}

type TribeRow struct {
	TribeID    int64
	SnapshotID int64
	StringID   string
	Name       string
}

func (q *Queries) InsertTribes(ctx context.Context, rows []TribeRow) (int64, error) {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.TribeID, r.SnapshotID, r.StringID, r.Name}
	}
	return BulkInsert(ctx, q.db, "tribes", tribeColumns, values)
}
