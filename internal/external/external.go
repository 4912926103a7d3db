// Package external declares the collaborator interfaces the pipeline consumes.
// Implementations live in restclient; tests swap in fakes.
package external

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound signals that a remembered external reference no longer resolves
// (the object was deleted externally). Upsert logic falls through to create.
var ErrNotFound = errors.New("external object not found")

type Event struct {
	Title       string
	Start       time.Time
	End         *time.Time
	AllDay      bool
	Location    string
	Description string
}

type Calendar interface {
	GetEvent(ctx context.Context, calendarId string, eventId string) error
	CreateEvent(ctx context.Context, calendarId string, ev Event) (string, error)
	UpdateEvent(ctx context.Context, calendarId string, eventId string, ev Event) (string, error)
}

type Storage interface {
	CreateFolder(ctx context.Context, parentRef string, name string) (string, error)
	CopyFile(ctx context.Context, srcRef string, destFolder string, name string) (string, error)
	MoveFile(ctx context.Context, srcRef string, destFolder string) (string, error)
	CreateBlankDoc(ctx context.Context, folderRef string, name string) (string, error)
}

// Notifier is fire-and-forget: send failures are logged by callers, never
// retried within a pass.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Listing is one candidate row parsed from the external bid listing page.
// Every field is best-effort; the due date stays a raw string.
type Listing struct {
	BidNumber  string
	Title      string
	Url        string
	Agency     string
	DueDateRaw string
	BidType    string
}

type ListingSource interface {
	Fetch(ctx context.Context, keyword string) ([]Listing, error)
}

type Adapters struct {
	Calendar Calendar
	Storage  Storage
	Notifier Notifier
	Listings ListingSource
}
