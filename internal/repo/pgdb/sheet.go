package pgdb

import (
	"context"
	"database/sql"

	"bid-tracking-api/pkg/postgres"

	"github.com/lib/pq"
)

// sheetRepo gives every sheet-backed repo the positional row primitives:
// ordered full reads, in-place writes by index, appends at the tail.
type sheetRepo struct {
	*postgres.Postgres
	sheet string
}

func (r *sheetRepo) readAll(ctx context.Context) ([][]string, error) {
	query, args, _ := r.SqlBuilder.
		Select("cells").
		From("sheet_row").
		Where("sheet = ?", r.sheet).
		OrderBy("idx").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cells pq.StringArray
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}

		result = append(result, []string(cells))
	}

	return result, rows.Err()
}

func (r *sheetRepo) writeRow(ctx context.Context, idx int, cells []string) error {
	query, args, _ := r.SqlBuilder.
		Update("sheet_row").
		Set("cells", pq.Array(cells)).
		Where("sheet = ? and idx = ?", r.sheet, idx).
		ToSql()

	_, err := r.Database.ExecContext(ctx, query, args...)

	return err
}

func (r *sheetRepo) appendRow(ctx context.Context, cells []string) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := r.appendRowTx(ctx, tx, cells); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	return tx.Commit()
}

// appendRowTx reads the tail index and inserts behind it. Overlapping runs
// could race here; the scheduler guarantees at most one active run.
func (r *sheetRepo) appendRowTx(ctx context.Context, tx *sql.Tx, cells []string) error {
	maxQuery, args, _ := r.SqlBuilder.
		Select("coalesce(max(idx) + 1, 0)").
		From("sheet_row").
		Where("sheet = ?", r.sheet).
		ToSql()

	var next int
	if err := tx.QueryRowContext(ctx, maxQuery, args...).Scan(&next); err != nil {
		return err
	}

	insertQuery, args, _ := r.SqlBuilder.
		Insert("sheet_row").
		Columns("sheet", "idx", "cells").
		Values(r.sheet, next, pq.Array(cells)).
		ToSql()

	_, err := tx.ExecContext(ctx, insertQuery, args...)

	return err
}
