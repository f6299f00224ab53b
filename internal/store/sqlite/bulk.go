// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package sqlite

import (
	"context"
	"strings"
)

// maxBulkRowsPerStatement bounds chunked multi-row inserts, staying
// well under sqlite's default 999 bound-parameter limit even for the
// widest row (tiles, 10 columns).
const maxBulkRowsPerStatement = 90

// BulkInsert is the store's append-optimized path (spec §4.7: "bulk
// append rows using the store's append-optimized path; row-by-row
// INSERTs are forbidden in the hot path"). It builds chunked
// multi-row `INSERT ... VALUES (...),(...)` statements, mirroring the
// hand-written sqlc-style query files elsewhere in this package but
// generalized across every extended/time-series table so each of the
// ~20 nested-data tables doesn't need its own bespoke query file.
func BulkInsert(ctx context.Context, db DBTX, table string, columns []string, rows [][]any) (int64, error) {
	var total int64
	for start := 0; start < len(rows); start += maxBulkRowsPerStatement {
		end := start + maxBulkRowsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO ")
		sb.WriteString(table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(columns, ", "))
		sb.WriteString(") VALUES ")

		args := make([]any, 0, len(chunk)*len(columns))
		placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
		for i, row := range chunk {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(placeholder)
			args = append(args, row...)
		}

		result, err := db.ExecContext(ctx, sb.String(), args...)
		if err != nil {
			return total, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
