package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

func fsnotifyEvent(path string, create bool) fsnotify.Event {
	op := fsnotify.Write
	if create {
		op = fsnotify.Create
	}
	return fsnotify.Event{Name: path, Op: op}
}

// recordingIngest records ingested titles and can simulate duplicates.
type recordingIngest struct {
	mu     sync.Mutex
	titles []string
	err    error
}

func (r *recordingIngest) Ingest(_ context.Context, title, _ string) (*domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.titles = append(r.titles, title)
	return &domain.Document{ID: "doc-" + title, Title: title}, nil
}

func (r *recordingIngest) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.titles...)
}

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"notes.txt", true},
		{"readme.md", true},
		{"README.MD", true},
		{"image.png", false},
		{"archive.tar.gz", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isTextFile(tt.path))
		})
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".hidden.txt", true},
		{"dir/.hidden.txt", true},
		{"/a/.b/file.txt", true},
		{"visible.txt", false},
		{"path/to/file.txt", false},
		{".", false},
		{"..", false},
		{"path/./file", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(tt.path))
		})
	}
}

func TestHandleEvent_IngestsNewTextFile(t *testing.T) {
	dir := t.TempDir()
	ingest := &recordingIngest{}

	w, err := New(ingest)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("some words to index"), 0644))

	w.handleEvent(context.Background(), fsnotifyEvent(path, true))

	assert.Equal(t, []string{"note"}, ingest.seen())
}

func TestHandleEvent_SkipsNonTextAndHidden(t *testing.T) {
	dir := t.TempDir()
	ingest := &recordingIngest{}

	w, err := New(ingest)
	require.NoError(t, err)
	defer w.Close()

	binary := filepath.Join(dir, "photo.png")
	hidden := filepath.Join(dir, ".secret.txt")
	require.NoError(t, os.WriteFile(binary, []byte{0x89, 0x50}, 0644))
	require.NoError(t, os.WriteFile(hidden, []byte("hidden"), 0644))

	w.handleEvent(context.Background(), fsnotifyEvent(binary, true))
	w.handleEvent(context.Background(), fsnotifyEvent(hidden, true))

	assert.Empty(t, ingest.seen())
}

func TestHandleEvent_DuplicateContentIsSilent(t *testing.T) {
	dir := t.TempDir()
	ingest := &recordingIngest{err: domain.ErrDuplicateDocument}

	w, err := New(ingest)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(path, []byte("already stored"), 0644))

	// Must not panic or record anything.
	w.handleEvent(context.Background(), fsnotifyEvent(path, true))

	assert.Empty(t, ingest.seen())
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	ingest := &recordingIngest{}

	w, err := New(ingest)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, dir)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}

func TestWatch_PicksUpCreatedFile(t *testing.T) {
	dir := t.TempDir()
	ingest := &recordingIngest{}

	w, err := New(ingest)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go w.Watch(ctx, dir) //nolint:errcheck

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "fresh.md")
	require.NoError(t, os.WriteFile(path, []byte("brand new note"), 0644))

	require.Eventually(t, func() bool {
		seen := ingest.seen()
		return len(seen) == 1 && seen[0] == "fresh"
	}, 3*time.Second, 50*time.Millisecond)
}
