// Package rowcodec is the serialization boundary between sheet rows and the
// structured entities. Column positions are fixed; everything above this
// package works with entity values only.
package rowcodec

import (
	"fmt"
	"strings"
	"time"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

// Bid sheet column positions.
const (
	colId = iota
	colName
	colClient
	colPostingUrl
	colDueDate
	colWalkDateTime
	colWalkLocation
	colOwnerName
	colOwnerEmail
	colStatus
	colRfpSourceRef
	colRfpAttach
	colFolderRef
	colRfpCopyRef
	colDraftDocRef
	colFinalDocRef
	colNotes
	colDueEventId
	colWalkEventId
	colFingerprint
	colNotified

	BidColumns = 21
)

// Staging sheet column positions.
const (
	stagingColDiscoveredAt = iota
	stagingColBidNumber
	stagingColTitle
	stagingColUrl
	stagingColAgency
	stagingColDueDate
	stagingColBidType
	stagingColMatchedKeyword
	stagingColImported

	StagingColumns = 9
)

// IsBlank reports whether every cell of the row is empty.
func IsBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// DecodeBid converts a raw sheet row into a Bid. Missing trailing cells
// default to empty values; legacy status strings are normalized. A non-empty
// cell holding an unparseable date is the one condition that fails decoding.
func DecodeBid(cells []string) (entity.Bid, error) {
	dueDate, err := parseCellDate(cell(cells, colDueDate), DateFormat)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("due date: %w", err)
	}

	walk, err := parseCellDate(cell(cells, colWalkDateTime), DateTimeFormat)
	if err != nil {
		return entity.Bid{}, fmt.Errorf("walkthrough date: %w", err)
	}

	return entity.Bid{
		Id:           cell(cells, colId),
		Name:         cell(cells, colName),
		Client:       cell(cells, colClient),
		PostingUrl:   cell(cells, colPostingUrl),
		DueDate:      dueDate,
		WalkDateTime: walk,
		WalkLocation: cell(cells, colWalkLocation),
		OwnerName:    cell(cells, colOwnerName),
		OwnerEmail:   cell(cells, colOwnerEmail),
		Status:       common.NormalizeStatus(cell(cells, colStatus)),
		RfpSourceRef: cell(cells, colRfpSourceRef),
		RfpAttach:    decodeBool(cell(cells, colRfpAttach)),
		FolderRef:    cell(cells, colFolderRef),
		RfpCopyRef:   cell(cells, colRfpCopyRef),
		DraftDocRef:  cell(cells, colDraftDocRef),
		FinalDocRef:  cell(cells, colFinalDocRef),
		Notes:        cell(cells, colNotes),
		DueEventId:   cell(cells, colDueEventId),
		WalkEventId:  cell(cells, colWalkEventId),
		Fingerprint:  cell(cells, colFingerprint),
		Notified:     decodeBool(cell(cells, colNotified)),
	}, nil
}

// EncodeBid converts a Bid back into its positional row representation.
func EncodeBid(b entity.Bid) []string {
	cells := make([]string, BidColumns)
	cells[colId] = b.Id
	cells[colName] = b.Name
	cells[colClient] = b.Client
	cells[colPostingUrl] = b.PostingUrl
	cells[colDueDate] = formatCellDate(b.DueDate, DateFormat)
	cells[colWalkDateTime] = formatCellDate(b.WalkDateTime, DateTimeFormat)
	cells[colWalkLocation] = b.WalkLocation
	cells[colOwnerName] = b.OwnerName
	cells[colOwnerEmail] = b.OwnerEmail
	cells[colStatus] = b.Status
	cells[colRfpSourceRef] = b.RfpSourceRef
	cells[colRfpAttach] = encodeBool(b.RfpAttach)
	cells[colFolderRef] = b.FolderRef
	cells[colRfpCopyRef] = b.RfpCopyRef
	cells[colDraftDocRef] = b.DraftDocRef
	cells[colFinalDocRef] = b.FinalDocRef
	cells[colNotes] = b.Notes
	cells[colDueEventId] = b.DueEventId
	cells[colWalkEventId] = b.WalkEventId
	cells[colFingerprint] = b.Fingerprint
	cells[colNotified] = encodeBool(b.Notified)

	return cells
}

// DecodeStaging converts a raw staging row into a candidate. Staging rows are
// best-effort all the way down: a malformed timestamp decodes to zero time.
func DecodeStaging(cells []string) entity.StagingCandidate {
	discoveredAt, _ := time.Parse(time.RFC3339, cell(cells, stagingColDiscoveredAt))

	return entity.StagingCandidate{
		DiscoveredAt:   discoveredAt,
		BidNumber:      cell(cells, stagingColBidNumber),
		Title:          cell(cells, stagingColTitle),
		Url:            cell(cells, stagingColUrl),
		Agency:         cell(cells, stagingColAgency),
		DueDateRaw:     cell(cells, stagingColDueDate),
		BidType:        cell(cells, stagingColBidType),
		MatchedKeyword: cell(cells, stagingColMatchedKeyword),
		Imported:       decodeBool(cell(cells, stagingColImported)),
	}
}

func EncodeStaging(c entity.StagingCandidate) []string {
	cells := make([]string, StagingColumns)
	if !c.DiscoveredAt.IsZero() {
		cells[stagingColDiscoveredAt] = c.DiscoveredAt.UTC().Format(time.RFC3339)
	}
	cells[stagingColBidNumber] = c.BidNumber
	cells[stagingColTitle] = c.Title
	cells[stagingColUrl] = c.Url
	cells[stagingColAgency] = c.Agency
	cells[stagingColDueDate] = c.DueDateRaw
	cells[stagingColBidType] = c.BidType
	cells[stagingColMatchedKeyword] = c.MatchedKeyword
	cells[stagingColImported] = encodeBool(c.Imported)

	return cells
}

func cell(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[idx])
}

func parseCellDate(raw string, layout string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func formatCellDate(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}

	return t.Format(layout)
}

func decodeBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

func encodeBool(b bool) string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}
