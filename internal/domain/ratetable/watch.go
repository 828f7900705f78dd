package ratetable

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReloadHook observes every reload attempt. err is nil on success.
type ReloadHook func(source string, err error)

// Watcher reloads rate table files into a registry when they change on disk.
// A file that fails to load or validate is logged and skipped; the set
// previously registered for that year stays active.
type Watcher struct {
	dir      string
	registry *Registry
	log      *zap.Logger
	hook     ReloadHook
}

func NewWatcher(dir string, registry *Registry, log *zap.Logger, hook ReloadHook) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{dir: dir, registry: registry, log: log, hook: hook}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create rate table watcher")
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return errors.Wrapf(err, "watch rate table dir %s", w.dir)
	}
	w.log.Info("watching rate tables", zap.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isTableFile(event.Name) {
				continue
			}
			w.reload(event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("rate table watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload(path string) {
	set, err := LoadFile(path)
	if err == nil {
		err = w.registry.Put(set)
	}
	if w.hook != nil {
		w.hook("file", err)
	}
	if err != nil {
		w.log.Warn("rate table reload ignored", zap.String("file", filepath.Base(path)), zap.Error(err))
		return
	}
	w.log.Info("rate table reloaded", zap.String("file", filepath.Base(path)), zap.Int("fiscal_year", set.FiscalYear))
}
