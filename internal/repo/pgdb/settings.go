package pgdb

import (
	"context"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/pkg/postgres"
)

type SettingsRepo struct {
	sheetRepo
}

func NewSettingsRepo(p *postgres.Postgres) *SettingsRepo {
	return &SettingsRepo{sheetRepo{p, common.SettingsSheet}}
}

// GetSettings reads the key/value settings sheet fresh and overlays it onto
// the defaults. Rows without a key cell are skipped.
func (r *SettingsRepo) GetSettings(ctx context.Context) (entity.Settings, error) {
	raw, err := r.readAll(ctx)
	if err != nil {
		return entity.Settings{}, err
	}

	pairs := make(map[string]string, len(raw))
	for _, cells := range raw {
		if len(cells) < 1 || cells[0] == "" {
			continue
		}

		value := ""
		if len(cells) > 1 {
			value = cells[1]
		}
		pairs[cells[0]] = value
	}

	return entity.SettingsFromPairs(pairs), nil
}
