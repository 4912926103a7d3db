package entity

import "time"

// sheet-backed model, one row per opportunity
type Bid struct {
	Id           string
	Name         string
	Client       string
	PostingUrl   string
	DueDate      *time.Time
	WalkDateTime *time.Time
	WalkLocation string
	OwnerName    string
	OwnerEmail   string
	Status       string
	RfpSourceRef string
	RfpAttach    bool
	FolderRef    string
	RfpCopyRef   string
	DraftDocRef  string
	FinalDocRef  string
	Notes        string
	DueEventId   string
	WalkEventId  string
	Fingerprint  string
	Notified     bool
}

// BidRow ties a decoded bid to its position in the sheet. The index is the
// write-back address; it never leaves the repo/service layers.
type BidRow struct {
	Index int
	Bid   Bid
}

// service + repo input model
type CreateBidInput struct {
	Name         string // given
	Client       string // given
	PostingUrl   string // given
	DueDate      *time.Time
	WalkDateTime *time.Time
	WalkLocation string
	OwnerName    string
	OwnerEmail   string
	RfpSourceRef string
	RfpAttach    bool
	Notes        string
	// Id is generated from the configured prefix + year + sequence
	// Status is set to the default open status
}

// service input model for partial edits arriving from the dashboard
type UpdateBidInput struct {
	Status   *string
	Notes    *string
	Archived *bool
}

// controller model
type BidOutputModel struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Client       string `json:"client"`
	PostingUrl   string `json:"postingUrl"`
	DueDate      string `json:"dueDate"`
	WalkDateTime string `json:"walkDateTime"`
	WalkLocation string `json:"walkLocation"`
	OwnerName    string `json:"ownerName"`
	OwnerEmail   string `json:"ownerEmail"`
	Status       string `json:"status"`
	FolderRef    string `json:"folderRef"`
	DraftDocRef  string `json:"draftDocRef"`
	FinalDocRef  string `json:"finalDocRef"`
	Notes        string `json:"notes"`
}
