package service

import (
	"context"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo"

	"github.com/sirupsen/logrus"
)

type Diagnostics interface {
	Ping() error
}

type Bid interface {
	ListBids(ctx context.Context) ([]entity.BidOutputModel, error)
	GetBid(ctx context.Context, bidId string) (*entity.BidOutputModel, error)
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	UpdateBid(ctx context.Context, bidId string, input *entity.UpdateBidInput) (*entity.BidOutputModel, error)
}

// SyncReport summarizes one orchestrator pass.
type SyncReport struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	New       int `json:"new"`
	Updated   int `json:"updated"`
}

type Sync interface {
	Run(ctx context.Context) (*SyncReport, error)
}

// PollReport summarizes one discovery pass.
type PollReport struct {
	Fetched  int `json:"fetched"`
	Staged   int `json:"staged"`
	Imported int `json:"imported"`
}

type Discovery interface {
	Poll(ctx context.Context) (*PollReport, error)
	PromoteStaged(ctx context.Context) (int, error)
	ListStaged(ctx context.Context) ([]entity.StagingOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Bid         Bid
	Sync        Sync
	Discovery   Discovery
}

func NewServices(repos *repo.Repositories, adapters *external.Adapters, logger *logrus.Logger) *Services {
	bidService := NewBidService(repos)

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Bid:         bidService,
		Sync:        NewSyncService(repos, adapters, logger),
		Discovery:   NewDiscoveryService(repos, adapters, bidService, logger),
	}
}
