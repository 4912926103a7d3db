package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo"
	"bid-tracking-api/internal/repo/rowcodec"
)

type BidService struct {
	bidRepo      repo.Bid
	settingsRepo repo.Settings
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo:      repos.Bid,
		settingsRepo: repos.Settings,
	}
}

// loadBids decodes all non-blank bid rows. Rows that fail to decode or lack
// both id and name are dropped here; only the sync pass cares about them.
func (s *BidService) loadBids(ctx context.Context) ([]entity.BidRow, error) {
	raw, err := s.bidRepo.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	var rows []entity.BidRow
	for idx, cells := range raw {
		if rowcodec.IsBlank(cells) {
			continue
		}

		bid, err := rowcodec.DecodeBid(cells)
		if err != nil {
			continue
		}
		if bid.Id == "" && bid.Name == "" {
			continue
		}

		rows = append(rows, entity.BidRow{Index: idx, Bid: bid})
	}

	return rows, nil
}

func (s *BidService) ListBids(ctx context.Context) ([]entity.BidOutputModel, error) {
	rows, err := s.loadBids(ctx)
	if err != nil {
		return nil, err
	}

	bids := make([]entity.Bid, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, row.Bid)
	}

	return mapBids(bids), nil
}

func (s *BidService) GetBid(ctx context.Context, bidId string) (*entity.BidOutputModel, error) {
	row, err := s.findRow(ctx, bidId)
	if err != nil {
		return nil, err
	}

	return mapBid(&row.Bid), nil
}

func (s *BidService) CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.loadBids(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Bid.Id)
	}

	bid := entity.Bid{
		Id:           nextBidId(ids, settings.IdPrefix, time.Now().Year()),
		Name:         input.Name,
		Client:       input.Client,
		PostingUrl:   input.PostingUrl,
		DueDate:      input.DueDate,
		WalkDateTime: input.WalkDateTime,
		WalkLocation: input.WalkLocation,
		OwnerName:    input.OwnerName,
		OwnerEmail:   input.OwnerEmail,
		Status:       common.StatusNew,
		RfpSourceRef: input.RfpSourceRef,
		RfpAttach:    input.RfpAttach,
		Notes:        input.Notes,
	}

	if err := s.bidRepo.AppendBid(ctx, bid); err != nil {
		return nil, err
	}

	return mapBid(&bid), nil
}

func (s *BidService) UpdateBid(ctx context.Context, bidId string, input *entity.UpdateBidInput) (*entity.BidOutputModel, error) {
	row, err := s.findRow(ctx, bidId)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !common.ValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		row.Bid.Status = *input.Status
	}
	if input.Notes != nil {
		row.Bid.Notes = *input.Notes
	}
	if input.Archived != nil && *input.Archived {
		row.Bid.Status = common.StatusArchived
	}

	if err := s.bidRepo.WriteBatch(ctx, []entity.BidRow{*row}); err != nil {
		return nil, err
	}

	return mapBid(&row.Bid), nil
}

func (s *BidService) findRow(ctx context.Context, bidId string) (*entity.BidRow, error) {
	rows, err := s.loadBids(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].Bid.Id == bidId {
			return &rows[i], nil
		}
	}

	return nil, ErrBidNotFound
}

// nextBidId builds `{prefix}-{year}-{seq}` by scanning every existing id for
// the current year and taking max+1. There is deliberately no persisted
// counter; the full scan is the authority.
func nextBidId(existing []string, prefix string, year int) string {
	idPrefix := fmt.Sprintf("%s-%d-", prefix, year)

	maxSeq := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, idPrefix) {
			continue
		}

		seq, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
		if err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%03d", idPrefix, maxSeq+1)
}
