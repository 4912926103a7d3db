package service

import "bid-tracking-api/internal/repo"

type DiagnosticsService struct {
	repo repo.Diagnostics
}

func NewDiagnosticsService(repos *repo.Repositories) *DiagnosticsService {
	return &DiagnosticsService{repo: repos.Diagnostics}
}

func (s *DiagnosticsService) Ping() error {
	return s.repo.Ping()
}
