package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oceannotes/ocean/pkg/debounce"
)

// DefaultWatchDebounce coalesces the bursts of filesystem events an atomic
// write produces (create temp, write, rename) into one notification.
const DefaultWatchDebounce = 50 * time.Millisecond

// Watch observes external changes to key's backing file and delivers a
// notification on the returned channel after each debounced burst of
// events. The channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context, key string, delay time.Duration) (<-chan struct{}, error) {
	if delay <= 0 {
		delay = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic renames replace the inode.
	if err := watcher.Add(s.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	path := s.keyPath(key)
	out := make(chan struct{}, 1)

	// The debouncer fires on a timer goroutine; it signals the event loop
	// instead of writing to out directly so only one goroutine ever sends
	// on (and eventually closes) the output channel.
	fired := make(chan struct{}, 1)
	notify := debounce.New(delay, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	go func() {
		defer close(out)
		defer watcher.Close()
		defer notify.Cancel()

		for {
			select {
			case <-ctx.Done():
				return

			case <-fired:
				select {
				case out <- struct{}{}:
				default:
					// A notification is already pending; changes coalesce.
				}

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					s.logger.Debug("substrate change", "key", key, "op", event.Op.String())
					notify.Trigger()
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Error("fsnotify error", "error", wErr)
			}
		}
	}()

	return out, nil
}
