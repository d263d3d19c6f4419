package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/searchbot/searchbot/internal/logging"
)

// Watch reloads documents edited on disk outside the process, so terms
// changed in an external editor show up on the next /api/load. It blocks
// until the context is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch store dir: %w", err)
	}

	logging.Infof("store: watching %s for changes", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleFSEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Errorf("store: watcher error: %v", err)
		}
	}
}

func (s *Store) handleFSEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch filepath.Base(event.Name) {
	case termsFile:
		s.reloadTermsLocked()
	case selectedProfilesFile:
		s.reloadSelectedLocked()
	}
}
