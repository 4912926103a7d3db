package entity

import "time"

// sheet-backed model, one row per discovered listing awaiting review
type StagingCandidate struct {
	DiscoveredAt   time.Time
	BidNumber      string
	Title          string
	Url            string
	Agency         string
	DueDateRaw     string
	BidType        string
	MatchedKeyword string
	Imported       bool
}

type StagingRow struct {
	Index     int
	Candidate StagingCandidate
}

// controller model
type StagingOutputModel struct {
	DiscoveredAt   string `json:"discoveredAt"`
	BidNumber      string `json:"bidNumber"`
	Title          string `json:"title"`
	Url            string `json:"url"`
	Agency         string `json:"agency"`
	DueDate        string `json:"dueDate"`
	BidType        string `json:"bidType"`
	MatchedKeyword string `json:"matchedKeyword"`
	Imported       bool   `json:"imported"`
}
