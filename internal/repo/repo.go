package repo

import (
	"context"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/pgdb"
	"bid-tracking-api/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

// Bid is the bids sheet. Rows are positional and ordered; ListRows returns
// the raw cells so callers can decode per row and keep failures isolated.
type Bid interface {
	ListRows(ctx context.Context) ([][]string, error)
	WriteBatch(ctx context.Context, rows []entity.BidRow) error
	AppendBid(ctx context.Context, b entity.Bid) error
}

type Staging interface {
	ListCandidates(ctx context.Context) ([]entity.StagingRow, error)
	AppendCandidate(ctx context.Context, c entity.StagingCandidate) error
	MarkImported(ctx context.Context, index int, c entity.StagingCandidate) error
}

// Settings reads the key/value settings sheet fresh on every call.
type Settings interface {
	GetSettings(ctx context.Context) (entity.Settings, error)
}

type Repositories struct {
	Diagnostics
	Bid
	Staging
	Settings
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		Staging:     pgdb.NewStagingRepo(p),
		Settings:    pgdb.NewSettingsRepo(p),
	}
}
