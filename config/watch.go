package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lone-faerie/uomgrade/log"
)

// Watch calls fn with the reloaded config every time one of the given files
// is written or replaced, until ctx is done. The parent directories are
// watched rather than the files, so that editors which save by renaming
// are handled. If a file is a directory, any yaml file in it is watched.
// A config that fails to load is logged and skipped.
func Watch(ctx context.Context, fn func(*Config), file ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool, len(file))
	dirs := make(map[string]bool)
	for _, f := range file {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
			dirs[abs] = true
			if err := w.Add(abs); err != nil {
				return err
			}
			continue
		}
		watched[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	match := func(name string) bool {
		name = filepath.Clean(name)
		if watched[name] {
			return true
		}
		ext := filepath.Ext(name)
		return dirs[filepath.Dir(name)] && (ext == ".yaml" || ext == ".yml")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("Config watcher", err)
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !match(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("Config changed", "event", event)
			cfg, err := Load(file...)
			if err != nil {
				log.Error("Unable to reload config", err, "path", event.Name)
				continue
			}
			fn(cfg)
		}
	}
}
