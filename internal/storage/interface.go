package storage

import (
	"errors"

	"github.com/null993/holidown/internal/models"
)

// ErrNoCache is returned by LoadFeedCache when no feed has been cached yet.
var ErrNoCache = errors.New("no cached feed")

// Provider persists the small amount of local state holidown keeps: the
// key/value settings and the single cached-feed text slot.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Feed cache
	SaveFeedCache(text string) error
	LoadFeedCache() (string, error)

	GetConfigPath() string
}
