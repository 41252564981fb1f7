// Package watcher monitors a directory tree and indexes new or changed
// text files automatically.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
	"github.com/mindvault-labs/mindvault-cli/internal/logger"
)

// Watcher ingests text files from a watched directory tree. Content
// already in the vault is skipped silently; the fingerprint check in
// the ingest path makes repeated write events harmless.
type Watcher struct {
	ingest driving.IngestService
	fsw    *fsnotify.Watcher
}

// New creates a Watcher feeding the given ingest service.
func New(ingest driving.IngestService) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fs watcher: %w", err)
	}
	return &Watcher{ingest: ingest, fsw: fsw}, nil
}

// Close releases the underlying fs watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watch blocks processing events for dir and its subdirectories until
// the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.addRecursive(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// addRecursive registers dir and every non-hidden subdirectory.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isHidden(path) && path != dir {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	// New directories join the watch set.
	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) && !isHidden(event.Name) {
			if err := w.fsw.Add(event.Name); err != nil {
				logger.Warn("watching new directory %s: %v", event.Name, err)
			}
		}
		return
	}

	if !isTextFile(event.Name) || isHidden(event.Name) {
		return
	}

	w.ingestFile(ctx, event.Name)
}

func (w *Watcher) ingestFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reading %s: %v", path, err)
		return
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	doc, err := w.ingest.Ingest(ctx, title, string(data))
	switch {
	case errors.Is(err, domain.ErrDuplicateDocument):
		logger.Debug("skipping %s: content already in vault", path)
	case errors.Is(err, domain.ErrMalformedInput):
		logger.Debug("skipping %s: empty or non-UTF-8 content", path)
	case err != nil:
		logger.Warn("indexing %s: %v", path, err)
	default:
		logger.Info("indexed %s as %s", path, doc.ID)
	}
}

// isTextFile reports whether the path has an indexable extension.
func isTextFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

// isHidden reports whether any path element starts with a dot.
// "." and ".." are not considered hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
