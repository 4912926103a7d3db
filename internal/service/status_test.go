package service

import (
	"testing"
	"time"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestApplyAutoStatus(t *testing.T) {
	walk := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bid      entity.Bid
		expected string
	}{
		{
			name:     "final doc submits",
			bid:      entity.Bid{Status: common.StatusNew, FinalDocRef: "doc-9"},
			expected: common.StatusSubmitted,
		},
		{
			name:     "final doc submits from reviewing",
			bid:      entity.Bid{Status: common.StatusReviewing, FinalDocRef: "doc-9"},
			expected: common.StatusSubmitted,
		},
		{
			name:     "draft moves new to reviewing",
			bid:      entity.Bid{Status: common.StatusNew, DraftDocRef: "doc-1"},
			expected: common.StatusReviewing,
		},
		{
			name:     "walkthrough moves new to reviewing",
			bid:      entity.Bid{Status: common.StatusNew, WalkDateTime: &walk},
			expected: common.StatusReviewing,
		},
		{
			name:     "no refs leaves new alone",
			bid:      entity.Bid{Status: common.StatusNew},
			expected: common.StatusNew,
		},
		{
			name:     "submitted stays submitted without final doc",
			bid:      entity.Bid{Status: common.StatusSubmitted, DraftDocRef: "doc-1"},
			expected: common.StatusSubmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyAutoStatus(tt.bid)
			assert.Equal(t, tt.expected, result.Status)
		})
	}
}

func TestApplyAutoStatusNeverTouchesLockedBids(t *testing.T) {
	walk := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	for _, status := range []string{common.StatusWon, common.StatusLost, common.StatusArchived} {
		t.Run(status, func(t *testing.T) {
			bid := entity.Bid{
				Status:       status,
				DraftDocRef:  "doc-1",
				FinalDocRef:  "doc-2",
				WalkDateTime: &walk,
			}

			result := ApplyAutoStatus(bid)
			assert.Equal(t, status, result.Status)
		})
	}
}

func TestApplyAutoStatusIsIdempotent(t *testing.T) {
	walk := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	bids := []entity.Bid{
		{Status: common.StatusNew},
		{Status: common.StatusNew, DraftDocRef: "doc-1"},
		{Status: common.StatusNew, WalkDateTime: &walk},
		{Status: common.StatusReviewing, FinalDocRef: "doc-2"},
		{Status: common.StatusSubmitted},
		{Status: common.StatusWon, FinalDocRef: "doc-2"},
	}

	for _, bid := range bids {
		once := ApplyAutoStatus(bid)
		twice := ApplyAutoStatus(once)
		assert.Equal(t, once.Status, twice.Status)
	}
}
