// Hand-written row types in the style of sqlc output; there is no
// sqlc configuration behind them.

package sqlite

type Snapshot struct {
	SnapshotID     int64
	GameID         string
	Turn           int64
	MapWidth       int64
	MapSize        int64
	MapAspectRatio float64
	WinnerStoreID  *int64
	ImportedAt     string
}

type Lock struct {
	GameID          string
	LockedAt        string
	LockerProcessID string
}

type IDMapping struct {
	SnapshotID   int64
	EntityFamily string
	SourceID     string
	StoreID      int64
}
