package lineio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/opal-lang/asciinum/core/invariant"
)

// FollowReader reads a file and, at end of file, waits for more data to be
// appended instead of returning io.EOF. It reports io.EOF once ctx is done
// or the file is removed or renamed.
type FollowReader struct {
	ctx     context.Context
	file    *os.File
	watcher *fsnotify.Watcher
}

// Follow opens path for following.
func Follow(ctx context.Context, path string) (*FollowReader, error) {
	invariant.ContextNotBackground(ctx, "Follow")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error watching file %s: %w", path, err)
	}
	if err := w.Add(path); err != nil {
		_ = w.Close()
		_ = f.Close()
		return nil, fmt.Errorf("error watching file %s: %w", path, err)
	}

	return &FollowReader{ctx: ctx, file: f, watcher: w}, nil
}

// Read implements io.Reader.
func (r *FollowReader) Read(p []byte) (int, error) {
	for {
		n, err := r.file.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}

		select {
		case <-r.ctx.Done():
			return 0, io.EOF
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return 0, io.EOF
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				// Drain whatever was written before the file went away.
				n, err := r.file.Read(p)
				if n > 0 {
					return n, nil
				}
				if err != nil && !errors.Is(err, io.EOF) {
					return 0, err
				}
				return 0, io.EOF
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("watching %s: %w", r.file.Name(), err)
		}
	}
}

// Close stops watching and closes the file.
func (r *FollowReader) Close() error {
	return errors.Join(r.watcher.Close(), r.file.Close())
}
