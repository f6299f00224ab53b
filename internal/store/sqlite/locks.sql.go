// Hand-written query code in the style of sqlc output; there is no
// .sql source file or sqlc configuration behind it.

package sqlite

import (
	"context"
)

const acquireLock = `-- name: AcquireLock :execrows
INSERT INTO locks (game_id, locked_at, locker_process_id)
VALUES (?1, ?2, ?3)
ON CONFLICT (game_id) DO UPDATE SET locked_at         = excluded.locked_at,
                                    locker_process_id = excluded.locker_process_id
WHERE locks.locked_at < ?4
`

// AcquireLock implements the LOCKING transition's stale-lock
// preemption (spec §4.9): the row is inserted outright on first sight,
// or overwritten only if the existing lock's locked_at is older than
// staleBefore. Returns the number of rows affected; 0 means another
// holder's lock is still fresh and acquisition failed.
func (q *Queries) AcquireLock(ctx context.Context, gameID, lockedAt, lockerProcessID, staleBefore string) (int64, error) {
	result, err := q.db.ExecContext(ctx, acquireLock, gameID, lockedAt, lockerProcessID, staleBefore)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const releaseLock = `-- name: ReleaseLock :exec
DELETE FROM locks WHERE game_id = ?1 AND locker_process_id = ?2
`

func (q *Queries) ReleaseLock(ctx context.Context, gameID, lockerProcessID string) error {
	_, err := q.db.ExecContext(ctx, releaseLock, gameID, lockerProcessID)
	return err
}

const getLock = `-- name: GetLock :one
SELECT game_id, locked_at, locker_process_id FROM locks WHERE game_id = ?1
`

func (q *Queries) GetLock(ctx context.Context, gameID string) (Lock, error) {
	row := q.db.QueryRowContext(ctx, getLock, gameID)
	var l Lock
	err := row.Scan(&l.GameID, &l.LockedAt, &l.LockerProcessID)
	return l, err
}
