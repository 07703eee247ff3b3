package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"clangview/internal/clang"
	"clangview/internal/diag"
	"clangview/internal/docgen"
	"clangview/internal/kinds"
	"clangview/internal/observ"
	"clangview/internal/source"
	"clangview/internal/trace"
)

// Mode selects what the driver does with each file.
type Mode uint8

const (
	// ModeDiagnose collects compiler diagnostics.
	ModeDiagnose Mode = iota
	// ModeDocument extracts documentation, consulting the cache.
	ModeDocument
)

func (m Mode) String() string {
	if m == ModeDocument {
		return "document"
	}
	return "diagnose"
}

// Options configure a run. The zero value parses every file with no
// arguments on GOMAXPROCS workers.
type Options struct {
	Args           ArgsResolver
	Flags          kinds.ParseFlags
	Jobs           int
	MaxDiagnostics int
	// Cache is used by ModeDocument only. Nil disables caching.
	Cache    *DiskCache
	Progress ProgressSink
	// Timings adds an ObsTimings diagnostic per file.
	Timings bool
	// Lint adds documentation findings to the bags of ModeDocument.
	Lint    bool
	Unsaved []clang.UnsavedFile
	// BaseDir is the base of the FileSet, used for relative paths.
	BaseDir string
}

func (o *Options) argsFor(path string) []string {
	if o.Args == nil {
		return nil
	}
	return o.Args.ArgsFor(path)
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path   string
	Bag    *diag.Bag
	Doc    *docgen.FileDoc
	Cached bool
	Timing *observ.Report
}

// Result is the outcome of a run. Files keeps the input order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Metrics *Metrics
}

// Bag merges the bags of all files into one holding at most max entries,
// sorted. A finding repeated by several units, typically in a shared
// header, is kept once.
func (r *Result) Bag(max int) *diag.Bag {
	out := diag.NewBag(max)
	rep := diag.NewDedupReporter(diag.NewBagReporter(out))
	for _, f := range r.Files {
		if f.Bag == nil {
			continue
		}
		for _, d := range f.Bag.Items() {
			rep.Report(d)
		}
	}
	out.Sort()
	return out
}

func (r *Result) HasErrors() bool {
	for _, f := range r.Files {
		if f.Bag != nil && f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Docs returns the extracted documentation in input order.
func (r *Result) Docs() []docgen.FileDoc {
	var out []docgen.FileDoc
	for _, f := range r.Files {
		if f.Doc != nil {
			out = append(out, *f.Doc)
		}
	}
	return out
}

// Diagnose parses every file and collects its diagnostics.
func Diagnose(ctx context.Context, b *clang.Binding, paths []string, opts Options) (*Result, error) {
	return run(ctx, b, paths, opts, ModeDiagnose)
}

// Document extracts the documentation of every file.
func Document(ctx context.Context, b *clang.Binding, paths []string, opts Options) (*Result, error) {
	return run(ctx, b, paths, opts, ModeDocument)
}

type worker struct {
	b      *clang.Binding
	ix     *clang.Index
	opts   *Options
	mode   Mode
	loader *fileLoader
	m      *Metrics
}

func run(ctx context.Context, b *clang.Binding, paths []string, opts Options, mode Mode) (*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "driver."+mode.String())
	defer span.End("")

	fileSet := source.NewFileSet()
	if opts.BaseDir != "" {
		fileSet.SetBaseDir(opts.BaseDir)
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = max(1, min(jobs, len(paths)))
	res := &Result{
		FileSet: fileSet,
		Files:   make([]FileResult, len(paths)),
		Metrics: &Metrics{Workers: jobs},
	}
	if len(paths) == 0 {
		return res, nil
	}
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("workers", strconv.Itoa(jobs))
	loader := newFileLoader(fileSet, opts.Unsaved)

	queue := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(queue)
		for i, p := range paths {
			emit(opts.Progress, Event{File: p, Stage: StageParse, Status: StatusQueued})
			select {
			case queue <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for range jobs {
		g.Go(func() error {
			ix, err := b.NewIndex(false, false)
			if err != nil {
				return err
			}
			defer ix.Close()
			w := &worker{b: b, ix: ix, opts: &opts, mode: mode, loader: loader, m: res.Metrics}
			for i := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				res.Files[i] = w.handle(gctx, paths[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

type step func(ctx context.Context, timer *observ.Timer, fr *FileResult) error

func (w *worker) handle(ctx context.Context, path string) FileResult {
	if w.mode == ModeDocument {
		return w.do(ctx, path, w.document)
	}
	return w.do(ctx, path, w.diagnose)
}

// do runs fn for path and turns its error, timings and progress into the
// FileResult.
func (w *worker) do(ctx context.Context, path string, fn step) FileResult {
	ctx, span := trace.Start(ctx, trace.ScopeFile, path)
	w.m.Files.Add(1)
	start := time.Now()
	timer := observ.NewTimer()
	fr := FileResult{Path: path, Bag: diag.NewBag(w.opts.MaxDiagnostics)}

	err := fn(ctx, timer, &fr)

	status := StatusDone
	if err != nil {
		w.m.Failed.Add(1)
		fr.Bag.Add(w.loader.ioDiagnostic(path, codeOf(err), err))
		status = StatusError
	}
	report := timer.Report()
	fr.Timing = &report
	if w.opts.Timings {
		appendTimingDiagnostic(fr.Bag, source.Span{File: w.loader.id(path)}, timingPayload{
			Kind:    w.mode.String(),
			Path:    path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	elapsed := time.Since(start)
	emit(w.opts.Progress, Event{File: path, Stage: StageAnalyze, Status: status, Err: err, Elapsed: elapsed})
	span.WithExtra("cached", strconv.FormatBool(fr.Cached)).End(string(status))
	return fr
}

func codeOf(err error) diag.Code {
	var ce *clang.ConstructionError
	switch {
	case errors.As(err, &ce):
		return diag.ClgParseFailed
	case errors.Is(err, clang.ErrUnsupported):
		return diag.ClgUnsupported
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
		return diag.IOLoadFileError
	}
	return diag.ClgParseFailed
}

func (w *worker) parse(ctx context.Context, timer *observ.Timer, path string, args []string) (*clang.TranslationUnit, error) {
	emit(w.opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	_, span := trace.Start(ctx, trace.ScopePhase, "parse")
	idx := timer.Begin("parse")
	tu, err := w.ix.Parse(path, args, w.opts.Unsaved, w.opts.Flags)
	timer.End(idx, "")
	span.End("")
	if err != nil {
		return nil, err
	}
	w.m.Parsed.Add(1)
	return tu, nil
}

func (w *worker) diagnose(ctx context.Context, timer *observ.Timer, fr *FileResult) error {
	tu, err := w.parse(ctx, timer, fr.Path, w.opts.argsFor(fr.Path))
	if err != nil {
		return err
	}
	defer tu.Close()
	return w.collect(ctx, timer, tu, fr)
}

func (w *worker) collect(ctx context.Context, timer *observ.Timer, tu *clang.TranslationUnit, fr *FileResult) error {
	_, span := trace.Start(ctx, trace.ScopePhase, "diagnostics")
	idx := timer.Begin("diagnostics")
	_, err := w.loader.collect(tu, fr.Bag)
	timer.End(idx, strconv.Itoa(fr.Bag.Len()))
	span.End("")
	return err
}

func (w *worker) content(path string) ([]byte, error) {
	for _, u := range w.opts.Unsaved {
		if u.Filename == path {
			return u.Contents, nil
		}
	}
	return os.ReadFile(path)
}

func (w *worker) document(ctx context.Context, timer *observ.Timer, fr *FileResult) error {
	args := w.opts.argsFor(fr.Path)
	content, err := w.content(fr.Path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(fr.Path)
	if err != nil {
		abs = fr.Path
	}
	key := KeyFor(w.b.RawVersion(), abs, args, uint32(w.opts.Flags), content)

	if w.opts.Cache != nil {
		emit(w.opts.Progress, Event{File: fr.Path, Stage: StageCache, Status: StatusWorking})
		idx := timer.Begin("cache")
		entry, ok, err := w.opts.Cache.Get(key)
		timer.End(idx, key.String())
		switch {
		case err != nil:
			w.m.CacheErrors.Add(1)
			fr.Bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: w.loader.id(fr.Path)}, err.Error()))
		case ok:
			w.m.CacheHits.Add(1)
			entry.Doc.Path = fr.Path
			fr.Doc = &entry.Doc
			fr.Cached = true
			w.lint(fr)
			return nil
		default:
			w.m.CacheMisses.Add(1)
		}
	}

	tu, err := w.parse(ctx, timer, fr.Path, args)
	if err != nil {
		return err
	}
	defer tu.Close()

	if err := w.extract(ctx, timer, tu, fr); err != nil {
		return err
	}

	if w.opts.Cache != nil {
		deps, err := HashDeps(fr.Doc.Deps)
		if err == nil {
			err = w.opts.Cache.Put(key, &CacheEntry{Doc: *fr.Doc, Deps: deps})
		}
		if err != nil {
			w.m.CacheErrors.Add(1)
			fr.Bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: w.loader.id(fr.Path)}, err.Error()))
		}
	}
	return nil
}

func (w *worker) extract(ctx context.Context, timer *observ.Timer, tu *clang.TranslationUnit, fr *FileResult) error {
	_, span := trace.Start(ctx, trace.ScopePhase, "extract")
	idx := timer.Begin("extract")
	doc, err := docgen.Extract(tu)
	timer.End(idx, strconv.Itoa(len(doc.Symbols)))
	span.End("")
	if err != nil {
		return fmt.Errorf("extract %s: %w", fr.Path, err)
	}
	doc.Path = fr.Path
	fr.Doc = &doc
	w.lint(fr)
	return nil
}

func (w *worker) lint(fr *FileResult) {
	if !w.opts.Lint || fr.Doc == nil {
		return
	}
	id := w.loader.id(fr.Path)
	for _, f := range docgen.Lint(*fr.Doc) {
		lc := lineCol(f.Line, f.Col)
		sp := w.loader.fs.SpanOf(id, lc, lc)
		fr.Bag.Add(diag.New(f.Severity, f.Code, sp, f.Message))
	}
}
