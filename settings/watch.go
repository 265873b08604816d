package settings

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Watch reloads the settings file whenever it is rewritten and hands
// each successfully parsed Display to onChange. Blocks until ctx is
// done. The parent directory is watched so editors that replace the
// file (write temp + rename) are still seen.
func Watch(ctx context.Context, path string, onChange func(Display)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create settings watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			d, err := Load(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("settings reload failed")
				continue
			}
			log.Info().Str("path", path).Str("resolution", d.Resolution()).Msg("settings reloaded")
			onChange(d)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("settings watcher error")
		}
	}
}
