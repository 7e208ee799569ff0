package catalog

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
)

// SyncFunc receives the freshly loaded catalog.
type SyncFunc func(colleges []entity.College) error

// Watcher reloads the catalog file whenever it is written or recreated.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	log     *logrus.Logger
	sync    SyncFunc
}

func NewWatcher(path string, log *logrus.Logger, sync SyncFunc) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{
		watcher: w,
		path:    abs,
		log:     log,
		sync:    sync,
	}, nil
}

// Run blocks until ctx is cancelled. The parent directory is watched so
// editors that replace the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("college catalog watcher error")
		}
	}
}

func (w *Watcher) reload() {
	colleges, found, err := LoadFile(w.path)
	if err != nil {
		// half-written files fail to parse; the next write retries
		w.log.WithError(err).Warn("college catalog reload skipped")
		return
	}
	if !found {
		return
	}
	if err := w.sync(colleges); err != nil {
		w.log.WithError(err).Error("college catalog sync failed")
		return
	}
	w.log.WithFields(logrus.Fields{
		"path":     w.path,
		"colleges": len(colleges),
	}).Info("college catalog reloaded")
}
