package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bid-tracking-api/internal/common"
	"bid-tracking-api/internal/entity"
	"bid-tracking-api/internal/external"
	"bid-tracking-api/internal/repo"
	"bid-tracking-api/internal/repo/rowcodec"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SyncService walks every bid row once per invocation: applies the status
// rules, ensures folder/RFP/draft artifacts, upserts calendar events when the
// fingerprint moved, and flushes all row mutations in one batched write.
// Rows fail in isolation; a failed row keeps its stale cells and is retried
// on the next scheduled pass.
type SyncService struct {
	bidRepo      repo.Bid
	settingsRepo repo.Settings
	calendar     external.Calendar
	storage      external.Storage
	notifier     external.Notifier
	logger       *logrus.Logger
}

func NewSyncService(repos *repo.Repositories, adapters *external.Adapters, logger *logrus.Logger) *SyncService {
	return &SyncService{
		bidRepo:      repos.Bid,
		settingsRepo: repos.Settings,
		calendar:     adapters.Calendar,
		storage:      adapters.Storage,
		notifier:     adapters.Notifier,
		logger:       logger,
	}
}

type rowOutcome struct {
	notifiedNew     bool
	notifiedUpdated bool
}

func (s *SyncService) Run(ctx context.Context) (*SyncReport, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings.CalendarId == "" {
		return nil, fmt.Errorf("%w: calendar_id", ErrConfiguration)
	}

	raw, err := s.bidRepo.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	runLog := s.logger.WithField("runId", uuid.NewString())
	report := &SyncReport{}
	var pending []entity.BidRow
	var newNames, updatedNames []string

	for idx, cells := range raw {
		if rowcodec.IsBlank(cells) {
			report.Skipped++
			continue
		}

		bid, err := rowcodec.DecodeBid(cells)
		if err != nil {
			runLog.WithField("row", idx).WithError(err).Warn("row left unsynced")
			report.Failed++
			continue
		}
		if bid.Id == "" && bid.Name == "" {
			report.Skipped++
			continue
		}

		outcome, err := s.processRow(ctx, settings, &bid)
		if err != nil {
			runLog.WithField("bidId", bid.Id).WithError(err).Warn("row left unsynced")
			report.Failed++
			continue
		}

		pending = append(pending, entity.BidRow{Index: idx, Bid: bid})
		report.Processed++
		if outcome.notifiedNew {
			report.New++
			newNames = append(newNames, bid.Name)
		}
		if outcome.notifiedUpdated {
			report.Updated++
			updatedNames = append(updatedNames, bid.Name)
		}
	}

	if err := s.bidRepo.WriteBatch(ctx, pending); err != nil {
		return nil, err
	}

	s.sendDigest(ctx, runLog, settings, newNames, updatedNames)
	runLog.WithFields(logrus.Fields{
		"processed": report.Processed,
		"skipped":   report.Skipped,
		"failed":    report.Failed,
		"new":       report.New,
		"updated":   report.Updated,
	}).Info("sync pass finished")

	return report, nil
}

func (s *SyncService) processRow(ctx context.Context, settings entity.Settings, bid *entity.Bid) (rowOutcome, error) {
	*bid = ApplyAutoStatus(*bid)

	if err := s.ensureFolder(ctx, settings, bid); err != nil {
		return rowOutcome{}, err
	}
	if err := s.ensureRfp(ctx, settings, bid); err != nil {
		return rowOutcome{}, err
	}
	if err := s.ensureDraftDoc(ctx, settings, bid); err != nil {
		return rowOutcome{}, err
	}

	firstSync := bid.DueEventId == "" && bid.WalkEventId == ""
	fingerprint := Fingerprint(*bid)
	changed := fingerprint != bid.Fingerprint

	if firstSync || changed {
		if err := s.syncCalendar(ctx, settings, bid); err != nil {
			return rowOutcome{}, err
		}

		bid.Fingerprint = fingerprint
	}

	outcome := rowOutcome{}
	calendarNowSynced := bid.DueEventId != "" || bid.WalkEventId != ""
	switch {
	case firstSync && calendarNowSynced && !bid.Notified && settings.NotifyOnNew:
		bid.Notified = true
		outcome.notifiedNew = true
	case bid.Notified && changed && settings.NotifyOnUpdate:
		outcome.notifiedUpdated = true
	}

	return outcome, nil
}

// ensureFolder creates the bid's folder once. Ref presence is the guard; the
// ref is never recreated, only reused.
func (s *SyncService) ensureFolder(ctx context.Context, settings entity.Settings, bid *entity.Bid) error {
	if !settings.CreateFolders || bid.FolderRef != "" {
		return nil
	}

	ref, err := s.storage.CreateFolder(ctx, settings.ParentFolderRef, bid.Id+" - "+bid.Name)
	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	bid.FolderRef = ref

	return nil
}

// ensureRfp attaches the RFP source document to the bid folder, copying or
// moving it depending on the configured mode.
func (s *SyncService) ensureRfp(ctx context.Context, settings entity.Settings, bid *entity.Bid) error {
	if !bid.RfpAttach || bid.RfpSourceRef == "" || bid.RfpCopyRef != "" || bid.FolderRef == "" {
		return nil
	}

	var ref string
	var err error
	if settings.RfpMode == common.RfpModeMove {
		ref, err = s.storage.MoveFile(ctx, bid.RfpSourceRef, bid.FolderRef)
	} else {
		ref, err = s.storage.CopyFile(ctx, bid.RfpSourceRef, bid.FolderRef, "RFP - "+bid.Name)
	}
	if err != nil {
		return fmt.Errorf("attach rfp: %w", err)
	}
	bid.RfpCopyRef = ref

	return nil
}

// ensureDraftDoc creates the working draft once a folder exists. The final
// document is always authored manually, so only its presence is ever read.
func (s *SyncService) ensureDraftDoc(ctx context.Context, settings entity.Settings, bid *entity.Bid) error {
	if !settings.CreateDocs || bid.FolderRef == "" || bid.DraftDocRef != "" {
		return nil
	}

	ref, err := s.storage.CreateBlankDoc(ctx, bid.FolderRef, bid.Name+" - Draft")
	if err != nil {
		return fmt.Errorf("create draft doc: %w", err)
	}
	bid.DraftDocRef = ref

	return nil
}

func (s *SyncService) syncCalendar(ctx context.Context, settings entity.Settings, bid *entity.Bid) error {
	if bid.DueDate != nil {
		ev := external.Event{
			Title:       "DUE: " + bid.Name,
			Start:       *bid.DueDate,
			AllDay:      true,
			Description: calendarDescription(bid),
		}

		id, err := s.upsertEvent(ctx, settings.CalendarId, bid.DueEventId, ev)
		if err != nil {
			return fmt.Errorf("due date event: %w", err)
		}
		bid.DueEventId = id
	}

	if bid.WalkDateTime != nil {
		end := bid.WalkDateTime.Add(time.Hour)
		ev := external.Event{
			Title:       "Walkthrough: " + bid.Name,
			Start:       *bid.WalkDateTime,
			End:         &end,
			Location:    bid.WalkLocation,
			Description: calendarDescription(bid),
		}

		id, err := s.upsertEvent(ctx, settings.CalendarId, bid.WalkEventId, ev)
		if err != nil {
			return fmt.Errorf("walkthrough event: %w", err)
		}
		bid.WalkEventId = id
	}

	return nil
}

// upsertEvent updates the remembered event when it still exists and creates a
// fresh one otherwise, including when the remembered event was deleted on the
// calendar side.
func (s *SyncService) upsertEvent(ctx context.Context, calendarId string, eventId string, ev external.Event) (string, error) {
	if eventId != "" {
		err := s.calendar.GetEvent(ctx, calendarId, eventId)
		if err == nil {
			return s.calendar.UpdateEvent(ctx, calendarId, eventId, ev)
		}
		if !errors.Is(err, external.ErrNotFound) {
			return "", err
		}
	}

	return s.calendar.CreateEvent(ctx, calendarId, ev)
}

func (s *SyncService) sendDigest(ctx context.Context, runLog *logrus.Entry, settings entity.Settings, newNames []string, updatedNames []string) {
	if len(newNames) == 0 && len(updatedNames) == 0 {
		return
	}

	var lines []string
	if len(newNames) > 0 {
		lines = append(lines, fmt.Sprintf("%d new bid(s) synced: %s", len(newNames), strings.Join(newNames, ", ")))
	}
	if len(updatedNames) > 0 {
		lines = append(lines, fmt.Sprintf("%d bid(s) updated: %s", len(updatedNames), strings.Join(updatedNames, ", ")))
	}

	if err := s.notifier.Send(ctx, strings.Join(lines, "\n")); err != nil {
		runLog.WithError(err).Warn("digest notification failed")
	}
}

func calendarDescription(bid *entity.Bid) string {
	var parts []string
	if bid.Client != "" {
		parts = append(parts, "Client: "+bid.Client)
	}
	if bid.OwnerName != "" {
		parts = append(parts, "Owner: "+bid.OwnerName)
	}
	if bid.PostingUrl != "" {
		parts = append(parts, bid.PostingUrl)
	}

	return strings.Join(parts, "\n")
}
