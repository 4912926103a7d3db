package pgdb

import (
	"bid-tracking-api/pkg/postgres"
)

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(p *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{p}
}

func (r *DiagnosticsRepo) Ping() error {
	return r.Database.Ping()
}
