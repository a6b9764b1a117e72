package storage

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reports external changes to a single stored document. It watches the
// containing directory (editors replace files rather than write in place)
// and emits one debounced signal per burst of events touching the file.
// The watcher lives for the remainder of the process.
func Watch(path string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	name := filepath.Base(path)
	changes := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(changes)

		var debounceTimer *time.Timer
		debounceDelay := 100 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					select {
					case changes <- struct{}{}:
					default:
						// Signal already pending, drop
					}
				})

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching; the watcher is advisory
			}
		}
	}()

	return changes, nil
}
