package service

import (
	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
)

// ApplyAutoStatus derives the status a bid should carry from the refs present
// on it. Locked statuses are never touched. The derivation runs fresh on
// every sync pass, so a bid manually reverted to New while a draft is still
// attached flips back on the next pass; that is the intended behavior.
func ApplyAutoStatus(b entity.Bid) entity.Bid {
	if common.IsLockedStatus(b.Status) {
		return b
	}

	switch {
	case b.FinalDocRef != "":
		b.Status = common.StatusSubmitted
	case b.DraftDocRef != "" && b.Status == common.StatusNew:
		b.Status = common.StatusReviewing
	case b.WalkDateTime != nil && b.Status == common.StatusNew:
		b.Status = common.StatusReviewing
	}

	return b
}
