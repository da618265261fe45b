// Package walker enumerates candidate files under one or more roots.
//
// Directory errors are reported through a callback and never abort the walk:
// a tree with one unreadable subdirectory still yields every readable file.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dupescout/dupescout/internal/scanerr"
)

// FileEntry is one candidate file produced by the walk. Immutable; the
// size and mtime captured here are later used to re-verify identity before
// destructive actions.
type FileEntry struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Options narrow the walk.
type Options struct {
	MinSize        int64
	MaxSize        int64    // 0 = unbounded
	Extensions     []string // normalized allow list; empty = all
	Exclude        []string // glob patterns matched against base names
	MaxDepth       int      // levels walked counting the root itself; 1 = root only, 0 = unlimited
	FollowSymlinks bool
}

// ignoreDirNames are never descended into.
var ignoreDirNames = map[string]bool{
	".git": true,
}

type walker struct {
	opts    Options
	visited map[string]bool // canonical dir paths, guards symlink cycles
	emit    func(FileEntry)
	onError func(error)
}

// Walk enumerates regular files under roots, applying the filters in opts.
// Every accepted file is passed to emit; per-path access failures go to
// onError. Walk only returns a non-nil error when ctx is cancelled.
func Walk(ctx context.Context, roots []string, opts Options, emit func(FileEntry), onError func(error)) error {
	w := &walker{
		opts:    opts,
		visited: make(map[string]bool),
		emit:    emit,
		onError: onError,
	}

	for _, root := range roots {
		root = filepath.Clean(root)
		info, err := os.Stat(root)
		if err != nil {
			w.onError(&scanerr.AccessError{Path: root, Err: err})
			continue
		}

		if !info.IsDir() {
			// A plain file root bypasses depth but not the content filters.
			if info.Mode().IsRegular() && w.accepts(root, info) {
				w.emit(FileEntry{Path: root, Size: info.Size(), ModTime: info.ModTime()})
			}
			continue
		}

		if err := w.walkDir(ctx, root, 0); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) walkDir(ctx context.Context, dir string, depth int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.onError(&scanerr.AccessError{Path: dir, Err: err})
		return nil
	}
	if w.visited[canonical] {
		return nil
	}
	w.visited[canonical] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.onError(&scanerr.AccessError{Path: dir, Err: err})
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if w.excluded(entry.Name()) {
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			if err := w.visitSymlink(ctx, path, depth); err != nil {
				return err
			}
			continue
		}

		if entry.IsDir() {
			if ignoreDirNames[entry.Name()] {
				continue
			}
			if w.opts.MaxDepth > 0 && depth+1 >= w.opts.MaxDepth {
				continue
			}
			if err := w.walkDir(ctx, path, depth+1); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.onError(&scanerr.AccessError{Path: path, Err: err})
			continue
		}
		if w.accepts(path, info) {
			w.emit(FileEntry{Path: path, Size: info.Size(), ModTime: info.ModTime()})
		}
	}

	return nil
}

// visitSymlink resolves a symlink entry when following is enabled. The
// visited set keeps link loops from recursing forever.
func (w *walker) visitSymlink(ctx context.Context, path string, depth int) error {
	if !w.opts.FollowSymlinks {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		w.onError(&scanerr.AccessError{Path: path, Err: err})
		return nil
	}

	if info.IsDir() {
		if ignoreDirNames[filepath.Base(path)] {
			return nil
		}
		if w.opts.MaxDepth > 0 && depth+1 >= w.opts.MaxDepth {
			return nil
		}
		return w.walkDir(ctx, path, depth+1)
	}

	if info.Mode().IsRegular() && w.accepts(path, info) {
		w.emit(FileEntry{Path: path, Size: info.Size(), ModTime: info.ModTime()})
	}
	return nil
}

func (w *walker) accepts(path string, info fs.FileInfo) bool {
	size := info.Size()
	if size < w.opts.MinSize {
		return false
	}
	if w.opts.MaxSize > 0 && size > w.opts.MaxSize {
		return false
	}

	if len(w.opts.Extensions) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		found := false
		for _, allowed := range w.opts.Extensions {
			if ext == allowed {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (w *walker) excluded(name string) bool {
	for _, pattern := range w.opts.Exclude {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
