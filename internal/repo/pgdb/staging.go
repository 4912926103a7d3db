package pgdb

import (
	"context"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/rowcodec"
	"bid-tracking-api/pkg/postgres"
)

type StagingRepo struct {
	sheetRepo
}

func NewStagingRepo(p *postgres.Postgres) *StagingRepo {
	return &StagingRepo{sheetRepo{p, common.StagingSheet}}
}

func (r *StagingRepo) ListCandidates(ctx context.Context) ([]entity.StagingRow, error) {
	raw, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []entity.StagingRow
	for idx, cells := range raw {
		if rowcodec.IsBlank(cells) {
			continue
		}

		result = append(result, entity.StagingRow{Index: idx, Candidate: rowcodec.DecodeStaging(cells)})
	}

	return result, nil
}

func (r *StagingRepo) AppendCandidate(ctx context.Context, c entity.StagingCandidate) error {
	return r.appendRow(ctx, rowcodec.EncodeStaging(c))
}

func (r *StagingRepo) MarkImported(ctx context.Context, index int, c entity.StagingCandidate) error {
	c.Imported = true

	return r.writeRow(ctx, index, rowcodec.EncodeStaging(c))
}
