package service

import (
	"context"
	"fmt"
	"time"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo"
	"bid-tracking-api/internal/repo/rowcodec"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// dueDateLayouts are tried in order against the listing page's free-form due
// date text. Anything unparseable stays raw in the staging row.
var dueDateLayouts = []string{
	rowcodec.DateFormat,
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// DiscoveryService polls the external listing source per configured keyword,
// deduplicates candidates by url against confirmed bids and the staging
// sheet, and stages or auto-imports whatever is genuinely new.
type DiscoveryService struct {
	bidRepo      repo.Bid
	stagingRepo  repo.Staging
	settingsRepo repo.Settings
	listings     external.ListingSource
	bids         Bid
	logger       *logrus.Logger
}

func NewDiscoveryService(repos *repo.Repositories, adapters *external.Adapters, bids Bid, logger *logrus.Logger) *DiscoveryService {
	return &DiscoveryService{
		bidRepo:      repos.Bid,
		stagingRepo:  repos.Staging,
		settingsRepo: repos.Settings,
		listings:     adapters.Listings,
		bids:         bids,
		logger:       logger,
	}
}

func (s *DiscoveryService) Poll(ctx context.Context) (*PollReport, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.Keywords) == 0 {
		return &PollReport{}, nil
	}

	seen, err := s.knownUrls(ctx)
	if err != nil {
		return nil, err
	}

	runLog := s.logger.WithField("runId", uuid.NewString())
	report := &PollReport{}

	for _, keyword := range settings.Keywords {
		found, err := s.listings.Fetch(ctx, keyword)
		if err != nil {
			runLog.WithField("keyword", keyword).WithError(err).Warn("listing fetch failed")
			continue
		}

		report.Fetched += len(found)
		for _, listing := range found {
			if listing.Url == "" || seen[listing.Url] {
				continue
			}
			seen[listing.Url] = true

			if settings.AutoImport {
				if err := s.importListing(ctx, listing, keyword); err != nil {
					runLog.WithField("url", listing.Url).WithError(err).Warn("auto-import failed")
					continue
				}
				report.Imported++
			} else {
				if err := s.stageListing(ctx, listing, keyword); err != nil {
					runLog.WithField("url", listing.Url).WithError(err).Warn("staging failed")
					continue
				}
				report.Staged++
			}
		}
	}

	runLog.WithFields(logrus.Fields{
		"fetched":  report.Fetched,
		"staged":   report.Staged,
		"imported": report.Imported,
	}).Info("discovery pass finished")

	return report, nil
}

// PromoteStaged turns every not-yet-imported staging row into a bid and marks
// it imported. Already-imported rows are skipped, so re-invocation is a no-op.
func (s *DiscoveryService) PromoteStaged(ctx context.Context) (int, error) {
	staged, err := s.stagingRepo.ListCandidates(ctx)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, row := range staged {
		if row.Candidate.Imported {
			continue
		}

		input := candidateToInput(row.Candidate)
		if _, err := s.bids.CreateBid(ctx, input); err != nil {
			return promoted, err
		}
		if err := s.stagingRepo.MarkImported(ctx, row.Index, row.Candidate); err != nil {
			return promoted, err
		}

		promoted++
	}

	return promoted, nil
}

func (s *DiscoveryService) ListStaged(ctx context.Context) ([]entity.StagingOutputModel, error) {
	staged, err := s.stagingRepo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.StagingOutputModel, 0, len(staged))
	for i := range staged {
		result = append(result, mapStaging(&staged[i].Candidate))
	}

	return result, nil
}

// knownUrls collects every posting url already tracked, confirmed bids and
// staging rows alike. Built once per pass.
func (s *DiscoveryService) knownUrls(ctx context.Context) (map[string]bool, error) {
	seen := make(map[string]bool)

	raw, err := s.bidRepo.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, cells := range raw {
		if rowcodec.IsBlank(cells) {
			continue
		}

		bid, err := rowcodec.DecodeBid(cells)
		if err != nil {
			continue
		}
		if bid.PostingUrl != "" {
			seen[bid.PostingUrl] = true
		}
	}

	staged, err := s.stagingRepo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range staged {
		if row.Candidate.Url != "" {
			seen[row.Candidate.Url] = true
		}
	}

	return seen, nil
}

func (s *DiscoveryService) importListing(ctx context.Context, listing external.Listing, keyword string) error {
	input := &entity.CreateBidInput{
		Name:       listing.Title,
		Client:     listing.Agency,
		PostingUrl: listing.Url,
		DueDate:    parseListingDate(listing.DueDateRaw),
		Notes:      provenanceNote(listing, keyword),
	}

	_, err := s.bids.CreateBid(ctx, input)

	return err
}

func (s *DiscoveryService) stageListing(ctx context.Context, listing external.Listing, keyword string) error {
	return s.stagingRepo.AppendCandidate(ctx, entity.StagingCandidate{
		DiscoveredAt:   time.Now().UTC(),
		BidNumber:      listing.BidNumber,
		Title:          listing.Title,
		Url:            listing.Url,
		Agency:         listing.Agency,
		DueDateRaw:     listing.DueDateRaw,
		BidType:        listing.BidType,
		MatchedKeyword: keyword,
	})
}

func candidateToInput(c entity.StagingCandidate) *entity.CreateBidInput {
	return &entity.CreateBidInput{
		Name:       c.Title,
		Client:     c.Agency,
		PostingUrl: c.Url,
		DueDate:    parseListingDate(c.DueDateRaw),
		Notes:      promotionNote(c),
	}
}

func parseListingDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}

func provenanceNote(listing external.Listing, keyword string) string {
	note := fmt.Sprintf("Auto-imported from bid listing (keyword %q)", keyword)
	if listing.BidNumber != "" {
		note += fmt.Sprintf(", listing number %s", listing.BidNumber)
	}
	if listing.BidType != "" {
		note += fmt.Sprintf(", type %s", listing.BidType)
	}

	return note
}

func promotionNote(c entity.StagingCandidate) string {
	note := fmt.Sprintf("Promoted from staging (keyword %q)", c.MatchedKeyword)
	if c.BidNumber != "" {
		note += fmt.Sprintf(", listing number %s", c.BidNumber)
	}

	return note
}
