package ocean

import (
	"log/slog"
	"time"

	"github.com/oceannotes/ocean/pkg/adapters/fs"
	"github.com/oceannotes/ocean/pkg/core"
)

// options holds the internal configuration for opening a store.
type options struct {
	storage core.Storage
	logger  *slog.Logger
	clock   func() time.Time
	key     string
}

// Option defines a functional option for configuring Ocean Notes.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		key: core.StorageKey,
	}
}

// WithStorage injects a custom substrate (e.g. the memory adapter).
// If provided, the default filesystem adapter is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithLogger sets the logger for the store and its substrate.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock injects the time source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithStorageKey overrides the substrate key the envelope persists under.
func WithStorageKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// Open loads the note collection from the data directory at path, creating
// it (and seeding the welcome note) on first run.
func Open(path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		fsStore, err := fs.NewStore(fs.Config{Dir: path, Logger: o.logger})
		if err != nil {
			return nil, err
		}
		storage = fsStore
	}

	storeOpts := []core.StoreOption{core.WithKey(o.key)}
	if o.logger != nil {
		storeOpts = append(storeOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}
	return core.NewStore(storage, storeOpts...), nil
}

// String returns a pointer to s, for building core.Patch values inline.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building core.Patch values inline.
func Bool(b bool) *bool { return &b }
