package pgdb

import (
	"context"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/rowcodec"
	"bid-tracking-api/pkg/postgres"

	"github.com/lib/pq"
)

type BidRepo struct {
	sheetRepo
}

func NewBidRepo(p *postgres.Postgres) *BidRepo {
	return &BidRepo{sheetRepo{p, common.BidSheet}}
}

func (r *BidRepo) ListRows(ctx context.Context) ([][]string, error) {
	return r.readAll(ctx)
}

// WriteBatch flushes all pending row updates of one sync pass in a single
// transaction.
func (r *BidRepo) WriteBatch(ctx context.Context, rows []entity.BidRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, row := range rows {
		query, args, _ := r.SqlBuilder.
			Update("sheet_row").
			Set("cells", pq.Array(rowcodec.EncodeBid(row.Bid))).
			Where("sheet = ? and idx = ?", r.sheet, row.Index).
			ToSql()

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	return tx.Commit()
}

func (r *BidRepo) AppendBid(ctx context.Context, b entity.Bid) error {
	return r.appendRow(ctx, rowcodec.EncodeBid(b))
}
