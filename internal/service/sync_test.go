package service

import (
	"context"
	"testing"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncFixture struct {
	bidRepo  *fakeBidRepo
	settings *fakeSettingsRepo
	calendar *fakeCalendar
	storage  *fakeStorage
	notifier *fakeNotifier
	service  *SyncService
}

func newSyncFixture(rows [][]string, settings entity.Settings) *syncFixture {
	f := &syncFixture{
		bidRepo:  &fakeBidRepo{rows: rows},
		settings: &fakeSettingsRepo{settings: settings},
		calendar: newFakeCalendar(),
		storage:  &fakeStorage{},
		notifier: &fakeNotifier{},
	}
	f.service = NewSyncService(
		&repo.Repositories{Bid: f.bidRepo, Settings: f.settings},
		&external.Adapters{Calendar: f.calendar, Storage: f.storage, Notifier: f.notifier},
		quietLogger(),
	)

	return f
}

func syncSettings() entity.Settings {
	s := entity.DefaultSettings()
	s.CalendarId = "cal-1"

	return s
}

func bidCells(id string, name string, dueDate string) []string {
	cells := make([]string, 21)
	cells[0] = id
	cells[1] = name
	cells[4] = dueDate
	cells[9] = common.StatusNew

	return cells
}

func TestSyncRunRequiresCalendarId(t *testing.T) {
	settings := entity.DefaultSettings()
	f := newSyncFixture(nil, settings)

	_, err := f.service.Run(context.Background())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSyncRunFirstPassSyncsCalendarAndNotifies(t *testing.T) {
	f := newSyncFixture([][]string{bidCells("BID-2024-001", "Roof replacement", "2024-07-01")}, syncSettings())

	report, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.New)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 1, f.calendar.created)

	require.Len(t, f.bidRepo.batches, 1)
	written := f.bidRepo.batches[0][0].Bid
	assert.NotEmpty(t, written.DueEventId)
	assert.NotEmpty(t, written.Fingerprint)
	assert.True(t, written.Notified)

	require.Len(t, f.notifier.messages, 1)
	assert.Contains(t, f.notifier.messages[0], "Roof replacement")
}

func TestSyncRunSecondPassIsQuietWhenNothingChanged(t *testing.T) {
	f := newSyncFixture([][]string{bidCells("BID-2024-001", "Roof replacement", "2024-07-01")}, syncSettings())
	ctx := context.Background()

	_, err := f.service.Run(ctx)
	require.NoError(t, err)

	report, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.New)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 1, f.calendar.created, "no event recreated on an unchanged pass")
	assert.Len(t, f.notifier.messages, 1, "no second digest when nothing changed")
}

func TestSyncRunExternalEditTriggersUpdateBranch(t *testing.T) {
	settings := syncSettings()
	settings.NotifyOnUpdate = true
	f := newSyncFixture([][]string{bidCells("BID-2024-001", "Roof replacement", "2024-07-01")}, settings)
	ctx := context.Background()

	_, err := f.service.Run(ctx)
	require.NoError(t, err)

	// external edit to the notes cell
	f.bidRepo.rows[0][16] = "scope changed"

	report, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.New, "new and update branches are mutually exclusive")
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, f.calendar.updated)
}

func TestSyncRunRecreatesExternallyDeletedEvent(t *testing.T) {
	f := newSyncFixture([][]string{bidCells("BID-2024-001", "Roof replacement", "2024-07-01")}, syncSettings())
	ctx := context.Background()

	_, err := f.service.Run(ctx)
	require.NoError(t, err)

	// event deleted on the calendar side, then the row edited
	f.calendar.events = map[string]external.Event{}
	f.bidRepo.rows[0][16] = "scope changed"

	_, err = f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calendar.created)
	assert.Equal(t, 0, f.calendar.updated)
}

func TestSyncRunIsolatesFailingRows(t *testing.T) {
	rows := [][]string{
		bidCells("BID-2024-001", "First", "2024-07-01"),
		bidCells("BID-2024-002", "Second", "not a date"),
		bidCells("BID-2024-003", "Third", "2024-07-03"),
	}
	f := newSyncFixture(rows, syncSettings())

	report, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)

	require.Len(t, f.bidRepo.batches, 1)
	batch := f.bidRepo.batches[0]
	require.Len(t, batch, 2)
	assert.Equal(t, 0, batch[0].Index)
	assert.Equal(t, 2, batch[1].Index)

	// the failed row keeps its stale cells and will retry next pass
	assert.Equal(t, "not a date", f.bidRepo.rows[1][4])
}

func TestSyncRunFailedAdapterLeavesRowUnwritten(t *testing.T) {
	settings := syncSettings()
	settings.CreateFolders = true
	f := newSyncFixture([][]string{bidCells("BID-2024-001", "Roof replacement", "2024-07-01")}, settings)
	f.storage.folderErr = assert.AnError

	report, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, f.bidRepo.batches[0])
	assert.Equal(t, 0, f.calendar.created)
}

func TestSyncRunEnsuresFolderRfpAndDraftOnce(t *testing.T) {
	settings := syncSettings()
	settings.CreateFolders = true
	settings.CreateDocs = true

	cells := bidCells("BID-2024-001", "Roof replacement", "2024-07-01")
	cells[10] = "rfp-src-1" // rfp source
	cells[11] = "TRUE"     // attach flag
	f := newSyncFixture([][]string{cells}, settings)
	ctx := context.Background()

	_, err := f.service.Run(ctx)
	require.NoError(t, err)
	_, err = f.service.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, f.storage.folders, "folder created once, ref reused afterwards")
	assert.Equal(t, 1, f.storage.copies)
	assert.Equal(t, 0, f.storage.moves)
	assert.Equal(t, 1, f.storage.docs)
}

func TestSyncRunMovesRfpInMoveMode(t *testing.T) {
	settings := syncSettings()
	settings.CreateFolders = true
	settings.RfpMode = common.RfpModeMove

	cells := bidCells("BID-2024-001", "Roof replacement", "2024-07-01")
	cells[10] = "rfp-src-1"
	cells[11] = "TRUE"
	f := newSyncFixture([][]string{cells}, settings)

	_, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.storage.moves)
	assert.Equal(t, 0, f.storage.copies)
}

func TestSyncRunSkipsBlankAndInvalidRows(t *testing.T) {
	rows := [][]string{
		make([]string, 21),
		{"", "", "client but no id or name"},
		bidCells("BID-2024-001", "Real bid", ""),
	}
	f := newSyncFixture(rows, syncSettings())

	report, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Processed)
}

func TestSyncRunLeavesLockedStatusAlone(t *testing.T) {
	cells := bidCells("BID-2024-001", "Won job", "2024-07-01")
	cells[9] = common.StatusWon
	cells[15] = "final-doc-1"
	f := newSyncFixture([][]string{cells}, syncSettings())

	_, err := f.service.Run(context.Background())
	require.NoError(t, err)

	written := f.bidRepo.batches[0][0].Bid
	assert.Equal(t, common.StatusWon, written.Status)
}
