package service

import (
	"time"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/rowcodec"
)

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	out := &entity.BidOutputModel{
		Id:           b.Id,
		Name:         b.Name,
		Client:       b.Client,
		PostingUrl:   b.PostingUrl,
		WalkLocation: b.WalkLocation,
		OwnerName:    b.OwnerName,
		OwnerEmail:   b.OwnerEmail,
		Status:       b.Status,
		FolderRef:    b.FolderRef,
		DraftDocRef:  b.DraftDocRef,
		FinalDocRef:  b.FinalDocRef,
		Notes:        b.Notes,
	}
	if b.DueDate != nil {
		out.DueDate = b.DueDate.Format(rowcodec.DateFormat)
	}
	if b.WalkDateTime != nil {
		out.WalkDateTime = b.WalkDateTime.Format(rowcodec.DateTimeFormat)
	}

	return out
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	result := make([]entity.BidOutputModel, 0, len(bids))
	for i := range bids {
		result = append(result, *mapBid(&bids[i]))
	}

	return result
}

func mapStaging(c *entity.StagingCandidate) entity.StagingOutputModel {
	out := entity.StagingOutputModel{
		BidNumber:      c.BidNumber,
		Title:          c.Title,
		Url:            c.Url,
		Agency:         c.Agency,
		DueDate:        c.DueDateRaw,
		BidType:        c.BidType,
		MatchedKeyword: c.MatchedKeyword,
		Imported:       c.Imported,
	}
	if !c.DiscoveredAt.IsZero() {
		out.DiscoveredAt = c.DiscoveredAt.UTC().Format(time.RFC3339)
	}

	return out
}
