package driver

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"clangview/internal/clang"
	"clangview/internal/observ"
	"clangview/internal/source"
	"clangview/internal/trace"
)

// Session keeps one translation unit per main file open so that changes
// are picked up by reparsing instead of parsing from scratch.
type Session struct {
	w *worker

	mu    sync.Mutex
	paths []string
	units map[string]*clang.TranslationUnit
	// deps maps a main file to every non-system file its unit read,
	// itself included.
	deps map[string][]string
}

// OpenSession parses paths and returns the first results in input order.
// Files that fail to parse are reported in their result and retried on
// every Refresh.
func OpenSession(ctx context.Context, b *clang.Binding, paths []string, opts Options, mode Mode) (*Session, []FileResult, error) {
	fileSet := source.NewFileSet()
	if opts.BaseDir != "" {
		fileSet.SetBaseDir(opts.BaseDir)
	}
	ix, err := b.NewIndex(false, false)
	if err != nil {
		return nil, nil, err
	}
	s := &Session{
		w: &worker{
			b: b, ix: ix, opts: &opts, mode: mode,
			loader: newFileLoader(fileSet, opts.Unsaved),
			m:      &Metrics{Workers: 1},
		},
		paths: slices.Clone(paths),
		units: make(map[string]*clang.TranslationUnit),
		deps:  make(map[string][]string),
	}
	out := make([]FileResult, 0, len(paths))
	for _, p := range paths {
		out = append(out, s.Refresh(ctx, p))
	}
	return s, out, nil
}

func (s *Session) FileSet() *source.FileSet { return s.w.loader.fs }
func (s *Session) Metrics() *Metrics        { return s.w.m }

// Paths returns the main files of the session.
func (s *Session) Paths() []string { return slices.Clone(s.paths) }

// Refresh reparses path, or parses it if it has no unit yet, and
// analyzes it again.
func (s *Session) Refresh(ctx context.Context, path string) FileResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deps[path] {
		s.w.loader.forget(d)
	}
	s.w.loader.forget(path)
	return s.w.do(ctx, path, func(ctx context.Context, timer *observ.Timer, fr *FileResult) error {
		tu, err := s.unit(ctx, timer, path)
		if err != nil {
			return err
		}
		s.deps[path] = watchedFiles(tu)
		if s.w.mode == ModeDocument {
			return s.w.extract(ctx, timer, tu, fr)
		}
		return s.w.collect(ctx, timer, tu, fr)
	})
}

func (s *Session) unit(ctx context.Context, timer *observ.Timer, path string) (*clang.TranslationUnit, error) {
	tu, ok := s.units[path]
	if !ok {
		fresh, err := s.w.parse(ctx, timer, path, s.w.opts.argsFor(path))
		if err != nil {
			return nil, err
		}
		s.units[path] = fresh
		return fresh, nil
	}
	_, span := trace.Start(ctx, trace.ScopePhase, "reparse")
	idx := timer.Begin("reparse")
	err := tu.Reparse(s.w.opts.Unsaved)
	timer.End(idx, "")
	span.End("")
	if err != nil {
		// A unit that failed to reparse is unusable; parse it afresh next time.
		delete(s.units, path)
		return nil, errors.Join(err, tu.Close())
	}
	s.w.m.Parsed.Add(1)
	return tu, nil
}

func watchedFiles(tu *clang.TranslationUnit) []string {
	var out []string
	for _, inc := range tu.Inclusions() {
		if inc.File.IsZero() {
			continue
		}
		if inc.Depth() > 0 && tu.Location(inc.File, 1, 1).IsInSystemHeader() {
			continue
		}
		out = append(out, inc.File.Name())
	}
	return out
}

// Affected returns the main files whose units read changed, in session
// order.
func (s *Session) Affected(changed string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed = filepath.Clean(changed)
	var out []string
	for _, p := range s.paths {
		if filepath.Clean(p) == changed {
			out = append(out, p)
			continue
		}
		for _, d := range s.deps[p] {
			if filepath.Clean(d) == changed {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// watchDirs lists the directories holding the files of the session.
func (s *Session) watchDirs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	for _, p := range s.paths {
		add(p)
		for _, d := range s.deps[p] {
			add(d)
		}
	}
	slices.Sort(out)
	return out
}

// Close releases every unit and the index.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, p := range s.paths {
		if tu, ok := s.units[p]; ok {
			errs = append(errs, tu.Close())
		}
	}
	s.units = nil
	errs = append(errs, s.w.ix.Close())
	return errors.Join(errs...)
}

// Watch refreshes the affected files of s whenever a file they read
// changes on disk, and hands each new result to fn. Changes arriving
// within debounce of each other are handled together. Watch returns when
// ctx is done.
func Watch(ctx context.Context, s *Session, debounce time.Duration, fn func(FileResult)) error {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	for _, dir := range s.watchDirs() {
		if err := fw.Add(dir); err != nil {
			return err
		}
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			for _, p := range s.Affected(ev.Name) {
				pending[p] = struct{}{}
			}
			if len(pending) > 0 {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "watch.error", err.Error(), trace.CurrentSpan(ctx).SpanID)
		case <-timer.C:
			for _, p := range s.Paths() {
				if _, ok := pending[p]; ok {
					fn(s.Refresh(ctx, p))
				}
			}
			clear(pending)
		}
	}
}
