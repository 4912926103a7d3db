package common

const (
	StatusNew       = "New"
	StatusReviewing = "Reviewing"
	StatusSubmitted = "Submitted"
	StatusWon       = "Won"
	StatusLost      = "Lost"
	StatusArchived  = "Archived"
)

const (
	RfpModeCopy = "copy"
	RfpModeMove = "move"
)

const (
	BidSheet      = "bids"
	StagingSheet  = "staging"
	SettingsSheet = "settings"
)

// legacyStatuses maps status values from the previous schema revision to the
// current set. Decoding falls back to StatusNew for anything unrecognized.
var legacyStatuses = map[string]string{
	"Open":                  StatusNew,
	"Walkthrough Scheduled": StatusReviewing,
	"In Progress":           StatusReviewing,
	"No Bid":                StatusLost,
	"On Hold":               StatusArchived,
}

var lockedStatuses = map[string]bool{
	StatusWon:      true,
	StatusLost:     true,
	StatusArchived: true,
}

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReviewing, StatusSubmitted, StatusWon, StatusLost, StatusArchived:
		return true
	default:
		return false
	}
}

// NormalizeStatus resolves raw sheet values to the canonical status set,
// translating legacy values and defaulting everything else to StatusNew.
func NormalizeStatus(raw string) string {
	if ValidStatus(raw) {
		return raw
	}

	if mapped, ok := legacyStatuses[raw]; ok {
		return mapped
	}

	return StatusNew
}

// IsLockedStatus reports whether automatic transitions must leave the bid alone.
func IsLockedStatus(s string) bool {
	return lockedStatuses[s]
}
