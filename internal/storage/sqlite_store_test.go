package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/models"
)

func newTempStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "holidown.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInit_SeedsDefaultSettings(t *testing.T) {
	s := newTempStore(t)

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.OffworkMid != constants.DefaultOffworkMid {
		t.Errorf("OffworkMid = %q, want %q", settings.OffworkMid, constants.DefaultOffworkMid)
	}
	if settings.OffworkNight != constants.DefaultOffworkNight {
		t.Errorf("OffworkNight = %q, want %q", settings.OffworkNight, constants.DefaultOffworkNight)
	}
	if settings.FeedURL != constants.DefaultFeedURL {
		t.Errorf("FeedURL = %q, want default", settings.FeedURL)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	s := newTempStore(t)

	want := models.Settings{
		FeedURL:      "https://example.com/cal.ics",
		OffworkMid:   "11:30",
		OffworkNight: "19:00",
		Timezone:     "Asia/Shanghai",
	}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestFeedCache(t *testing.T) {
	s := newTempStore(t)

	if _, err := s.LoadFeedCache(); !errors.Is(err, ErrNoCache) {
		t.Errorf("LoadFeedCache() on empty store = %v, want ErrNoCache", err)
	}

	const body = "BEGIN:VCALENDAR\nEND:VCALENDAR\n"
	if err := s.SaveFeedCache(body); err != nil {
		t.Fatalf("SaveFeedCache() failed: %v", err)
	}

	got, err := s.LoadFeedCache()
	if err != nil {
		t.Fatalf("LoadFeedCache() failed: %v", err)
	}
	if got != body {
		t.Errorf("LoadFeedCache() = %q, want %q", got, body)
	}

	// Overwriting reuses the single slot.
	if err := s.SaveFeedCache("updated"); err != nil {
		t.Fatalf("SaveFeedCache() overwrite failed: %v", err)
	}
	if got, _ := s.LoadFeedCache(); got != "updated" {
		t.Errorf("LoadFeedCache() after overwrite = %q, want %q", got, "updated")
	}
}

func TestLoad_RequiresInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}
