package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/repo/rowcodec"
)

// fingerprintFields is the canonical serialization of a bid's mutable
// identity. The stored fingerprint, event ids and notified flag are excluded
// so the hash never references its own bookkeeping.
type fingerprintFields struct {
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
	RfpCopyRef   string `json:"rfpCopyRef"`
	DraftDocRef  string `json:"draftDocRef"`
	FinalDocRef  string `json:"finalDocRef"`
	Notes        string `json:"notes"`
}

// Fingerprint hashes the mutable fields of a bid into a stable hex digest
// used to detect external edits since the last sync.
func Fingerprint(b entity.Bid) string {
	fields := fingerprintFields{
		Name:         b.Name,
		Client:       b.Client,
		PostingUrl:   b.PostingUrl,
		WalkLocation: b.WalkLocation,
		OwnerName:    b.OwnerName,
		OwnerEmail:   b.OwnerEmail,
		Status:       b.Status,
		FolderRef:    b.FolderRef,
		RfpCopyRef:   b.RfpCopyRef,
		DraftDocRef:  b.DraftDocRef,
		FinalDocRef:  b.FinalDocRef,
		Notes:        b.Notes,
	}
	if b.DueDate != nil {
		fields.DueDate = b.DueDate.UTC().Format(rowcodec.DateFormat)
	}
	if b.WalkDateTime != nil {
		fields.WalkDateTime = b.WalkDateTime.UTC().Format(rowcodec.DateTimeFormat)
	}

	raw, _ := json.Marshal(fields)
	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:])
}

// NeedsSync reports whether the bid changed since its fingerprint was last
// stored. A bid that was never fingerprinted always needs sync.
func NeedsSync(b entity.Bid) bool {
	return Fingerprint(b) != b.Fingerprint
}
