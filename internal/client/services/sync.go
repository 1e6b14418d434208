// Package services contains the client-side sync engine: the component that
// decides, for every write and read, whether to go to the network or fall
// back to local state, and that reconciles the draft queue with the server
// once connectivity returns.
package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/client/remote"
	"github.com/reflecta-app/reflecta/internal/client/repositories/cache"
	"github.com/reflecta-app/reflecta/internal/client/repositories/drafts"
	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/logging"
)

// DefaultStaleness is the maximum cache age before a refresh is preferred
// over reuse.
const DefaultStaleness = 5 * time.Minute

// Prober reports backend reachability. Satisfied by *netx.Prober.
type Prober interface {
	IsOnline(ctx context.Context) bool
}

// CreateResult is the outcome of CreateEntry. Exactly one of Entry and
// DraftID is populated.
type CreateResult struct {
	Entry     *models.CachedEntry
	DraftID   string
	IsOffline bool
}

// ListResult is the outcome of ListEntries.
type ListResult struct {
	Entries   []models.CachedEntry
	FromCache bool
	Fresh     bool
}

// FlushResult is the outcome of FlushDrafts. Errors holds per-draft failure
// strings in queue order; concurrency and offline rejections produce a
// single-element Errors slice.
type FlushResult struct {
	Success       bool
	SyncedEntries int
	FailedEntries int
	Errors        []string
}

// RefreshResult is the outcome of ForceRefresh.
type RefreshResult struct {
	Success bool
	Error   string
	Entries []models.CachedEntry
}

// SyncService composes the prober, the two local stores and the remote
// collaborator into the offline-first engine. It exclusively owns draft
// lifecycle transitions and cache replacement; the stores own only
// serialization.
type SyncService struct {
	remote    remote.Client
	drafts    drafts.Store
	cache     cache.Store
	prober    Prober
	log       logging.Logger
	staleness time.Duration
	pageSize  int
	now       func() time.Time

	// syncing is the single-flight guard for FlushDrafts: at most one flush
	// runs at a time, later callers are rejected immediately.
	syncing atomic.Bool

	// refreshSeq tags every refresh attempt; appliedSeq remembers the newest
	// applied one so a slow stale refresh cannot overwrite fresher data.
	refreshSeq atomic.Int64
	appliedSeq atomic.Int64
}

// NewSyncService wires the engine. A non-positive staleness falls back to
// DefaultStaleness.
func NewSyncService(rc remote.Client, ds drafts.Store, cs cache.Store, p Prober, log logging.Logger, staleness time.Duration) *SyncService {
	if staleness <= 0 {
		staleness = DefaultStaleness
	}
	return &SyncService{
		remote:    rc,
		drafts:    ds,
		cache:     cs,
		prober:    p,
		log:       log,
		staleness: staleness,
		pageSize:  common.DefaultPageLen,
		now:       time.Now,
	}
}

// CreateEntry records one journal entry. Online, it tries the remote create
// and prepends the confirmed entry to the cache; on any remote failure or
// offline it saves a draft instead. Every call ends in either a confirmed
// remote entry or a valid local draft. The only returned errors are invalid
// input and a failed draft write.
func (s *SyncService) CreateEntry(ctx context.Context, fields models.EntryFields) (*CreateResult, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	if s.prober.IsOnline(ctx) {
		entry, err := s.remote.CreateEntry(ctx, fields, "")
		if err == nil {
			if err := s.cache.Prepend(ctx, *entry); err != nil {
				// The entry is confirmed remotely; a cache hiccup must not
				// turn a successful create into a failure.
				s.log.Warn(ctx, "failed to cache confirmed entry", "entry_id", entry.Id, "error", err)
			}
			return &CreateResult{Entry: entry}, nil
		}
		s.log.Warn(ctx, "remote create failed, falling back to draft", "error", err)
	}

	id, err := s.drafts.Save(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &CreateResult{DraftID: id, IsOffline: true}, nil
}

// ListEntries returns the confirmed entries, refreshing from the server when
// forced, never synced, or the cache is older than the staleness threshold.
// Any remote failure falls through to the cached snapshot.
func (s *SyncService) ListEntries(ctx context.Context, forceRefresh bool) *ListResult {
	seq := s.refreshSeq.Add(1)

	last, ok := s.cache.LastSync(ctx)
	shouldRefresh := forceRefresh || !ok || s.now().Sub(last) > s.staleness

	if shouldRefresh && s.prober.IsOnline(ctx) {
		entries, err := s.remote.ListEntries(ctx, 1, s.pageSize)
		if err == nil && s.applyRefresh(ctx, seq, entries) {
			return &ListResult{Entries: entries, Fresh: true}
		}
		if err != nil {
			s.log.Warn(ctx, "remote list failed, serving cache", "error", err)
		}
	}

	return &ListResult{Entries: s.cache.List(ctx), FromCache: true}
}

// applyRefresh replaces the cache with a fetched snapshot unless a fresher
// attempt already won. Returns true when the snapshot was applied.
func (s *SyncService) applyRefresh(ctx context.Context, seq int64, entries []models.CachedEntry) bool {
	for {
		applied := s.appliedSeq.Load()
		if seq <= applied {
			s.log.Debug(ctx, "discarding superseded refresh", "seq", seq, "applied", applied)
			return false
		}
		if s.appliedSeq.CompareAndSwap(applied, seq) {
			break
		}
	}
	if err := s.cache.Replace(ctx, entries); err != nil {
		s.log.Error(ctx, "failed to replace cache", "error", err)
		return false
	}
	return true
}

// FlushDrafts pushes every queued draft to the server in insertion order.
// Each draft is attempted independently; failures are recorded and the pass
// continues. Confirmed drafts are deleted only after the full pass, so a
// crash mid-pass never deletes an unconfirmed draft. At most one flush runs
// at a time; a second caller is rejected immediately.
func (s *SyncService) FlushDrafts(ctx context.Context) *FlushResult {
	if !s.syncing.CompareAndSwap(false, true) {
		return &FlushResult{Success: false, Errors: []string{common.ErrSyncInProgress.Error()}}
	}
	defer s.syncing.Store(false)

	if !s.prober.IsOnline(ctx) {
		return &FlushResult{Success: false, Errors: []string{common.ErrDeviceOffline.Error()}}
	}

	queue := s.drafts.List(ctx)
	result := &FlushResult{}
	confirmed := make([]string, 0, len(queue))

	for _, draft := range queue {
		// The draft id doubles as the idempotency key, so a crash between
		// remote confirmation and local deletion cannot duplicate the
		// entry on the next flush.
		if _, err := s.remote.CreateEntry(ctx, draft.EntryFields, draft.Id); err != nil {
			result.FailedEntries++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", draft.Id, err))
			continue
		}
		result.SyncedEntries++
		confirmed = append(confirmed, draft.Id)
	}

	for _, id := range confirmed {
		if err := s.drafts.Delete(ctx, id); err != nil {
			// The entry is already confirmed; the leftover draft will be
			// deduplicated by its idempotency key on the next flush.
			s.log.Error(ctx, "failed to delete confirmed draft", "draft_id", id, "error", err)
		}
	}

	result.Success = result.FailedEntries == 0
	s.log.Info(ctx, "flush finished", "synced", result.SyncedEntries, "failed", result.FailedEntries)
	return result
}

// AutoSync flushes the draft queue when there is something to flush and the
// device is online. Best-effort: outcomes are logged, never propagated.
// The host decides when to call it; no scheduling happens here.
func (s *SyncService) AutoSync(ctx context.Context) {
	if s.syncing.Load() {
		return
	}
	if len(s.drafts.List(ctx)) == 0 {
		return
	}
	if !s.prober.IsOnline(ctx) {
		return
	}

	res := s.FlushDrafts(ctx)
	if !res.Success {
		s.log.Warn(ctx, "auto sync incomplete", "errors", res.Errors)
	}
}

// Status composes the derived engine state. Read-only, no side effects
// beyond the connectivity probe.
func (s *SyncService) Status(ctx context.Context) models.SyncState {
	online := s.prober.IsOnline(ctx)
	draftCount := len(s.drafts.List(ctx))

	state := models.SyncState{
		IsOnline:   online,
		DraftCount: draftCount,
		NeedsSync:  draftCount > 0 && online,
		IsSyncing:  s.syncing.Load(),
	}
	if last, ok := s.cache.LastSync(ctx); ok {
		state.LastSync = &last
	}
	return state
}

// ForceRefresh drops the snapshot and refetches it. Offline, it reports a
// structured failure and leaves the cache untouched.
func (s *SyncService) ForceRefresh(ctx context.Context) *RefreshResult {
	if !s.prober.IsOnline(ctx) {
		return &RefreshResult{Success: false, Error: common.ErrDeviceOffline.Error()}
	}

	if err := s.cache.Clear(ctx); err != nil {
		return &RefreshResult{Success: false, Error: err.Error()}
	}

	lr := s.ListEntries(ctx, true)
	if lr.FromCache {
		return &RefreshResult{Success: false, Error: "refresh failed", Entries: lr.Entries}
	}
	return &RefreshResult{Success: true, Entries: lr.Entries}
}
