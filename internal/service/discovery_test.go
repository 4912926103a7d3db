package service

import (
	"context"
	"testing"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discoveryFixture struct {
	bidRepo     *fakeBidRepo
	stagingRepo *fakeStagingRepo
	settings    *fakeSettingsRepo
	listings    *fakeListings
	service     *DiscoveryService
}

func newDiscoveryFixture(settings entity.Settings, listings map[string][]external.Listing) *discoveryFixture {
	f := &discoveryFixture{
		bidRepo:     &fakeBidRepo{},
		stagingRepo: &fakeStagingRepo{},
		settings:    &fakeSettingsRepo{settings: settings},
		listings:    &fakeListings{byKeyword: listings},
	}
	repos := &repo.Repositories{Bid: f.bidRepo, Staging: f.stagingRepo, Settings: f.settings}
	f.service = NewDiscoveryService(
		repos,
		&external.Adapters{Listings: f.listings},
		NewBidService(repos),
		quietLogger(),
	)

	return f
}

func discoverySettings(autoImport bool) entity.Settings {
	s := entity.DefaultSettings()
	s.Keywords = []string{"roofing"}
	s.AutoImport = autoImport

	return s
}

func roofingListings() map[string][]external.Listing {
	return map[string][]external.Listing{
		"roofing": {
			{BidNumber: "24-117", Title: "Gym roof replacement", Url: "https://bids.example.com/117", Agency: "School District", DueDateRaw: "2024-08-15", BidType: "ITB"},
			{Title: "Library reroof", Url: "https://bids.example.com/118", Agency: "County"},
		},
	}
}

func TestPollStagesNewListings(t *testing.T) {
	f := newDiscoveryFixture(discoverySettings(false), roofingListings())

	report, err := f.service.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Fetched)
	assert.Equal(t, 2, report.Staged)
	assert.Equal(t, 0, report.Imported)

	require.Len(t, f.stagingRepo.candidates, 2)
	first := f.stagingRepo.candidates[0]
	assert.Equal(t, "roofing", first.MatchedKeyword)
	assert.Equal(t, "24-117", first.BidNumber)
	assert.False(t, first.Imported)
	assert.False(t, first.DiscoveredAt.IsZero())
}

func TestPollSecondRunStagesNothingNew(t *testing.T) {
	f := newDiscoveryFixture(discoverySettings(false), roofingListings())
	ctx := context.Background()

	_, err := f.service.Poll(ctx)
	require.NoError(t, err)

	report, err := f.service.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Staged)
	assert.Len(t, f.stagingRepo.candidates, 2)
}

func TestPollSkipsUrlsAlreadyTrackedAsBids(t *testing.T) {
	f := newDiscoveryFixture(discoverySettings(false), roofingListings())
	ctx := context.Background()

	_, err := NewBidService(&repo.Repositories{Bid: f.bidRepo, Settings: f.settings}).
		CreateBid(ctx, &entity.CreateBidInput{Name: "Gym roof replacement", PostingUrl: "https://bids.example.com/117"})
	require.NoError(t, err)

	report, err := f.service.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Staged)
	assert.Equal(t, "https://bids.example.com/118", f.stagingRepo.candidates[0].Url)
}

func TestPollAutoImportCreatesBidsDirectly(t *testing.T) {
	f := newDiscoveryFixture(discoverySettings(true), roofingListings())
	ctx := context.Background()

	report, err := f.service.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Staged)
	assert.Empty(t, f.stagingRepo.candidates)

	bids, err := NewBidService(&repo.Repositories{Bid: f.bidRepo, Settings: f.settings}).ListBids(ctx)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.NotEqual(t, bids[0].Id, bids[1].Id)
	assert.Contains(t, bids[0].Notes, "roofing")
	assert.Equal(t, "2024-08-15", bids[0].DueDate)
}

func TestPromoteStagedIsIdempotent(t *testing.T) {
	f := newDiscoveryFixture(discoverySettings(false), roofingListings())
	ctx := context.Background()

	_, err := f.service.Poll(ctx)
	require.NoError(t, err)

	promoted, err := f.service.PromoteStaged(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, promoted)

	promoted, err = f.service.PromoteStaged(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, promoted)

	bids, err := NewBidService(&repo.Repositories{Bid: f.bidRepo, Settings: f.settings}).ListBids(ctx)
	require.NoError(t, err)
	assert.Len(t, bids, 2)

	staged, err := f.service.ListStaged(ctx)
	require.NoError(t, err)
	for _, row := range staged {
		assert.True(t, row.Imported)
	}
}

func TestPollWithoutKeywordsDoesNothing(t *testing.T) {
	f := newDiscoveryFixture(entity.DefaultSettings(), roofingListings())

	report, err := f.service.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Fetched)
}
