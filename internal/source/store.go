// Package source owns the process-wide holiday state: it decides which feed
// text reaches the parser (network, cache or the bundled preset), runs the
// reconciler and publishes the result as an atomically swapped snapshot.
package source

import (
	"context"
	_ "embed"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/feed"
	"github.com/null993/holidown/internal/logger"
	"github.com/null993/holidown/internal/models"
	"github.com/null993/holidown/internal/reconcile"
	"github.com/null993/holidown/internal/storage"
)

//go:embed assets/holidayCal.ics
var bundledFeed string

// Status records where the current holiday list came from.
type Status int

const (
	StatusLive Status = iota
	StatusCached
	StatusBundled
)

// Prefix returns the user-visible data-freshness marker for the status.
func (s Status) Prefix() string {
	switch s {
	case StatusCached:
		return "[offline]"
	case StatusBundled:
		return "[preset]"
	default:
		return ""
	}
}

// Snapshot is one complete, immutable view of the holiday state. Readers
// always get either the previous snapshot or the next one, never a mix.
type Snapshot struct {
	Holidays []models.Holiday
	Status   Status
	Err      string // user-visible error message, empty when none
	Loaded   bool   // false until the first reload finishes
}

// FetchFunc downloads the feed body for a URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Store coordinates reloads and holds the shared snapshot. Overlapping
// reloads are not coalesced: each runs to completion and the last writer
// wins. Callers needing strict ordering must serialize Reload themselves.
type Store struct {
	storage storage.Provider
	fetch   FetchFunc
	now     func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func New(st storage.Provider, fetch FetchFunc) *Store {
	return &Store{
		storage: st,
		fetch:   fetch,
		now:     time.Now,
	}
}

// Snapshot returns the current holiday state. The holiday slice is copied so
// a later swap can never show through.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.Holidays = append([]models.Holiday(nil), s.snap.Holidays...)
	return snap
}

// ReloadAsync runs Reload on its own goroutine, off the rendering path.
func (s *Store) ReloadAsync(ctx context.Context) {
	go s.Reload(ctx)
}

// Reload runs the fetch-or-fallback chain once and swaps in the resulting
// snapshot: live data refreshes the cache; on network failure the cached
// feed is shown with an "[offline]" marker, then the bundled preset with a
// "[preset]" marker; when everything fails the previous list stays in place
// with an explicit error.
func (s *Store) Reload(ctx context.Context) {
	id := uuid.NewString()[:8]
	logger.Info("reload start", "reload_id", id)

	url := constants.DefaultFeedURL
	if settings, err := s.storage.GetSettings(); err == nil && settings.FeedURL != "" {
		url = settings.FeedURL
	}

	text, err := s.fetch(ctx, url)
	if err == nil {
		holidays := reconcile.Reconcile(feed.Parse(text), s.now())
		if cacheErr := s.storage.SaveFeedCache(text); cacheErr != nil {
			logger.Warn("feed cache save failed", "reload_id", id, "error", cacheErr)
		}
		s.swap(Snapshot{Holidays: holidays, Status: StatusLive, Loaded: true})
		logger.Info("reload done", "reload_id", id, "source", "network", "holidays", len(holidays))
		return
	}

	logger.Warn("feed fetch failed, falling back", "reload_id", id, "error", err)

	cached, cacheErr := s.storage.LoadFeedCache()
	if cacheErr == nil {
		if holidays := reconcile.Reconcile(feed.Parse(cached), s.now()); len(holidays) > 0 {
			s.swap(Snapshot{
				Holidays: holidays,
				Status:   StatusCached,
				Err:      "network unavailable, showing cached data",
				Loaded:   true,
			})
			logger.Info("reload done", "reload_id", id, "source", "cache", "holidays", len(holidays))
			return
		}
		// Cache present but yields nothing usable; treat like a missing
		// cache and fall through to the bundled preset.
		logger.Warn("cached feed unusable", "reload_id", id)
	}

	if holidays := reconcile.Reconcile(feed.Parse(bundledFeed), s.now()); len(holidays) > 0 {
		s.swap(Snapshot{
			Holidays: holidays,
			Status:   StatusBundled,
			Err:      "network unavailable, showing preset data",
			Loaded:   true,
		})
		logger.Info("reload done", "reload_id", id, "source", "bundled", "holidays", len(holidays))
		return
	}

	// Hard failure: keep whatever list we had, record the error.
	s.mu.Lock()
	s.snap.Err = "unable to load holiday data (network error and local data unusable)"
	s.snap.Loaded = true
	s.mu.Unlock()
	logger.Error("reload failed", "reload_id", id)
}

func (s *Store) swap(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
