package service

import (
	"context"
	"fmt"
	"io"

	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo/rowcodec"

	"github.com/sirupsen/logrus"
)

// fakeBidRepo is an in-memory bids sheet.
type fakeBidRepo struct {
	rows    [][]string
	batches [][]entity.BidRow
}

func (f *fakeBidRepo) ListRows(_ context.Context) ([][]string, error) {
	return f.rows, nil
}

func (f *fakeBidRepo) WriteBatch(_ context.Context, rows []entity.BidRow) error {
	f.batches = append(f.batches, rows)
	for _, row := range rows {
		if row.Index < len(f.rows) {
			f.rows[row.Index] = rowcodec.EncodeBid(row.Bid)
		}
	}

	return nil
}

func (f *fakeBidRepo) AppendBid(_ context.Context, b entity.Bid) error {
	f.rows = append(f.rows, rowcodec.EncodeBid(b))

	return nil
}

type fakeStagingRepo struct {
	candidates []entity.StagingCandidate
}

func (f *fakeStagingRepo) ListCandidates(_ context.Context) ([]entity.StagingRow, error) {
	rows := make([]entity.StagingRow, 0, len(f.candidates))
	for i, c := range f.candidates {
		rows = append(rows, entity.StagingRow{Index: i, Candidate: c})
	}

	return rows, nil
}

func (f *fakeStagingRepo) AppendCandidate(_ context.Context, c entity.StagingCandidate) error {
	f.candidates = append(f.candidates, c)

	return nil
}

func (f *fakeStagingRepo) MarkImported(_ context.Context, index int, _ entity.StagingCandidate) error {
	f.candidates[index].Imported = true

	return nil
}

type fakeSettingsRepo struct {
	settings entity.Settings
}

func (f *fakeSettingsRepo) GetSettings(_ context.Context) (entity.Settings, error) {
	return f.settings, nil
}

// fakeCalendar remembers created events by generated id.
type fakeCalendar struct {
	events  map[string]external.Event
	created int
	updated int
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{events: make(map[string]external.Event)}
}

func (f *fakeCalendar) GetEvent(_ context.Context, _ string, eventId string) error {
	if _, ok := f.events[eventId]; !ok {
		return external.ErrNotFound
	}

	return nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ string, ev external.Event) (string, error) {
	f.created++
	id := fmt.Sprintf("ev-%d", f.created)
	f.events[id] = ev

	return id, nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, _ string, eventId string, ev external.Event) (string, error) {
	f.updated++
	f.events[eventId] = ev

	return eventId, nil
}

type fakeStorage struct {
	refs      int
	folders   int
	copies    int
	moves     int
	docs      int
	folderErr error
}

func (f *fakeStorage) nextRef(kind string) string {
	f.refs++

	return fmt.Sprintf("%s-%d", kind, f.refs)
}

func (f *fakeStorage) CreateFolder(_ context.Context, _ string, _ string) (string, error) {
	if f.folderErr != nil {
		return "", f.folderErr
	}
	f.folders++

	return f.nextRef("folder"), nil
}

func (f *fakeStorage) CopyFile(_ context.Context, _ string, _ string, _ string) (string, error) {
	f.copies++

	return f.nextRef("copy"), nil
}

func (f *fakeStorage) MoveFile(_ context.Context, _ string, _ string) (string, error) {
	f.moves++

	return f.nextRef("moved"), nil
}

func (f *fakeStorage) CreateBlankDoc(_ context.Context, _ string, _ string) (string, error) {
	f.docs++

	return f.nextRef("doc"), nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.messages = append(f.messages, text)

	return nil
}

type fakeListings struct {
	byKeyword map[string][]external.Listing
}

func (f *fakeListings) Fetch(_ context.Context, keyword string) ([]external.Listing, error) {
	return f.byKeyword[keyword], nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
