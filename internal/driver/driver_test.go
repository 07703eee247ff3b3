package driver

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"clangview/internal/clang"
	"clangview/internal/diag"
	"clangview/internal/testkit"
	"clangview/internal/testkit/fakeclang"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const docC = `#include "dep.h"

/** Brief. */
int f(int x);

int g(void);
`

const depH = `int helper(void);
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// fixture writes a small project to a temp dir and binds a fake libclang.
func fixture(t *testing.T) (*clang.Binding, *fakeclang.Lib, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "list.c"), fakeclang.ListC)
	writeFile(t, filepath.Join(dir, "doc.c"), docC)
	writeFile(t, filepath.Join(dir, "dep.h"), depH)
	l := fakeclang.New("17.0.6")
	b, err := clang.Load(l)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() {
		if n := l.Live(); n != 0 {
			t.Errorf("%d handles leaked", n)
		}
		if v := l.Violations(); len(v) != 0 {
			t.Errorf("violations: %v", v)
		}
	})
	return b, l, dir
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) count(stage Stage, status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if ev.Stage == stage && ev.Status == status {
			n++
		}
	}
	return n
}

func TestDiagnose(t *testing.T) {
	b, _, dir := fixture(t)
	paths := []string{filepath.Join(dir, "list.c"), filepath.Join(dir, "doc.c"), filepath.Join(dir, "missing.c")}
	sink := &recordingSink{}
	res, err := Diagnose(context.Background(), b, paths, Options{Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Files))
	}
	for i, fr := range res.Files {
		if fr.Path != paths[i] {
			t.Fatalf("result %d is %s, want %s", i, fr.Path, paths[i])
		}
	}

	list := res.Files[0].Bag.Items()
	if len(list) != 1 {
		t.Fatalf("list.c: expected 1 diagnostic, got %d", len(list))
	}
	d := list[0]
	if d.Severity != diag.SevError || d.Code != diag.ClgDiagnostic {
		t.Fatalf("list.c diagnostic = %v %v", d.Severity, d.Code)
	}
	start, end := res.FileSet.Resolve(d.Primary)
	if start.Line != 6 || start.Col != 9 || end.Col != 14 {
		t.Fatalf("span %v-%v", start, end)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, "previous use") {
		t.Fatalf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "struct" {
		t.Fatalf("fixes = %+v", d.Fixes)
	}

	if res.Files[1].Bag.Len() != 0 {
		t.Fatalf("doc.c: unexpected diagnostics %+v", res.Files[1].Bag.Items())
	}
	missing := res.Files[2].Bag.Items()
	if len(missing) != 1 || missing[0].Code != diag.ClgParseFailed {
		t.Fatalf("missing.c: %+v", missing)
	}
	if !res.HasErrors() {
		t.Fatalf("expected errors")
	}
	if err := testkit.CheckDiagnosticSpans(res.FileSet, res.Bag(0).Items()); err != nil {
		t.Fatalf("spans: %v", err)
	}
	if got := res.Bag(0).Len(); got != 2 {
		t.Fatalf("merged bag has %d entries", got)
	}
	if res.Metrics.Workers != 2 || res.Metrics.Files.Load() != 3 || res.Metrics.Parsed.Load() != 2 || res.Metrics.Failed.Load() != 1 {
		t.Fatalf("metrics: %s", res.Metrics)
	}
	if sink.count(StageParse, StatusQueued) != 3 || sink.count(StageAnalyze, StatusError) != 1 || sink.count(StageAnalyze, StatusDone) != 2 {
		t.Fatalf("events: %+v", sink.events)
	}
}

func TestDiagnoseTimings(t *testing.T) {
	b, _, dir := fixture(t)
	res, err := Diagnose(context.Background(), b, []string{filepath.Join(dir, "doc.c")}, Options{Timings: true})
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	items := res.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.ObsTimings {
		t.Fatalf("expected one timing entry, got %+v", items)
	}
	if len(items[0].Notes) != 1 || !strings.Contains(items[0].Notes[0].Msg, `"phases"`) {
		t.Fatalf("timing note = %+v", items[0].Notes)
	}
	if res.Files[0].Timing == nil || len(res.Files[0].Timing.Phases) != 2 {
		t.Fatalf("timing = %+v", res.Files[0].Timing)
	}
}

func TestDocumentCache(t *testing.T) {
	b, _, dir := fixture(t)
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	paths := []string{filepath.Join(dir, "doc.c")}
	opts := Options{Cache: cache, Lint: true}

	first, err := Document(context.Background(), b, paths, opts)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	fr := first.Files[0]
	if fr.Cached || fr.Doc == nil {
		t.Fatalf("first run: cached=%v doc=%v", fr.Cached, fr.Doc)
	}
	f, ok := fr.Doc.Find("f")
	if !ok || f.Brief != "Brief." {
		t.Fatalf("f = %+v", f)
	}
	if len(fr.Doc.Deps) != 1 || filepath.Base(fr.Doc.Deps[0]) != "dep.h" {
		t.Fatalf("deps = %v", fr.Doc.Deps)
	}
	lints := fr.Bag.Items()
	if len(lints) != 1 || lints[0].Code != diag.DocMissingComment {
		t.Fatalf("lints = %+v", lints)
	}
	if first.Metrics.CacheMisses.Load() != 1 {
		t.Fatalf("metrics: %s", first.Metrics)
	}

	second, err := Document(context.Background(), b, paths, opts)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if !second.Files[0].Cached || second.Metrics.Parsed.Load() != 0 {
		t.Fatalf("second run was not served from the cache: %s", second.Metrics)
	}
	if _, ok := second.Files[0].Doc.Find("g"); !ok {
		t.Fatalf("cached doc lost g: %+v", second.Files[0].Doc)
	}
	if second.Files[0].Bag.Len() != 1 {
		t.Fatalf("lints are not recomputed on a hit")
	}

	writeFile(t, filepath.Join(dir, "dep.h"), "int helper(int);\n")
	third, err := Document(context.Background(), b, paths, opts)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if third.Files[0].Cached {
		t.Fatalf("changed header must invalidate the entry")
	}

	keys, err := cache.Keys()
	if err != nil || len(keys) != 1 {
		t.Fatalf("keys = %v, %v", keys, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if keys, _ := cache.Keys(); len(keys) != 0 {
		t.Fatalf("keys after drop = %v", keys)
	}
}

func TestKeyFor(t *testing.T) {
	base := KeyFor("17.0.6", "/a.c", []string{"-DX"}, 0, []byte("int x;"))
	variants := []Key{
		KeyFor("18.1.0", "/a.c", []string{"-DX"}, 0, []byte("int x;")),
		KeyFor("17.0.6", "/b.c", []string{"-DX"}, 0, []byte("int x;")),
		KeyFor("17.0.6", "/a.c", []string{"-D", "X"}, 0, []byte("int x;")),
		KeyFor("17.0.6", "/a.c", []string{"-DX"}, 1, []byte("int x;")),
		KeyFor("17.0.6", "/a.c", []string{"-DX"}, 0, []byte("int y;")),
	}
	for i, k := range variants {
		if k == base {
			t.Fatalf("variant %d hashes like the base", i)
		}
	}
	if again := KeyFor("17.0.6", "/a.c", []string{"-DX"}, 0, []byte("int x;")); again != base {
		t.Fatalf("key is not stable")
	}
}

func TestSession(t *testing.T) {
	b, _, dir := fixture(t)
	doc := filepath.Join(dir, "doc.c")
	dep := filepath.Join(dir, "dep.h")
	s, first, err := OpenSession(context.Background(), b, []string{doc}, Options{}, ModeDocument)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if first[0].Doc == nil || len(first[0].Doc.Symbols) != 2 {
		t.Fatalf("first = %+v", first[0].Doc)
	}
	if got := s.Affected(dep); !slices.Equal(got, []string{doc}) {
		t.Fatalf("affected(dep.h) = %v", got)
	}
	if got := s.Affected(filepath.Join(dir, "other.h")); len(got) != 0 {
		t.Fatalf("affected(other.h) = %v", got)
	}

	writeFile(t, doc, docC+"\n/** Added. */\nint h(void);\n")
	fr := s.Refresh(context.Background(), doc)
	if fr.Bag.HasErrors() {
		t.Fatalf("refresh: %+v", fr.Bag.Items())
	}
	if _, ok := fr.Doc.Find("h"); !ok {
		t.Fatalf("refresh did not pick up h: %+v", fr.Doc.Symbols)
	}
	if s.Metrics().Parsed.Load() != 2 {
		t.Fatalf("metrics: %s", s.Metrics())
	}
}

func TestWatch(t *testing.T) {
	b, _, dir := fixture(t)
	list := filepath.Join(dir, "list.c")
	s, first, err := OpenSession(context.Background(), b, []string{list}, Options{}, ModeDiagnose)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if first[0].Bag.Len() != 1 {
		t.Fatalf("expected the list.c error, got %+v", first[0].Bag.Items())
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan FileResult, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s, 20*time.Millisecond, func(fr FileResult) { results <- fr })
	}()

	fixed := strings.Replace(fakeclang.ListC, "union List", "struct List", 1)
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case fr := <-results:
			if fr.Bag.Len() == 0 {
				break loop
			}
		case <-tick.C:
			writeFile(t, list, fixed)
		case <-deadline:
			t.Fatalf("no clean result after the fix")
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}
}

func TestParseArgs(t *testing.T) {
	got := ParseArgs([]string{"cc", "-c", "-Iinc", "-I", "gen", "-I/abs", "-DX=1", "-o", "a.o", "a.c"}, "/src")
	want := []string{"-I/src/inc", "-I/src/gen", "-I/abs", "-DX=1"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if ParseArgs(nil, "/src") != nil {
		t.Fatalf("empty command must yield nil")
	}
}

func TestCompDBArgs(t *testing.T) {
	b, l, dir := fixture(t)
	list := filepath.Join(dir, "list.c")
	l.AddCompilationDatabase(dir, fakeclang.Command{
		Directory: dir,
		Filename:  list,
		Args:      []string{"clang", "-Iinc", "-c", list},
	})
	db, err := b.CompilationDatabaseFromDirectory(dir)
	if err != nil {
		t.Fatalf("compdb: %v", err)
	}
	defer db.Close()
	r := &CompDBArgs{DB: db, Fallback: []string{"-DFALLBACK"}}
	if got := r.ArgsFor(list); !slices.Equal(got, []string{"-I" + filepath.Join(dir, "inc")}) {
		t.Fatalf("list.c args = %q", got)
	}
	if got := r.ArgsFor(filepath.Join(dir, "doc.c")); !slices.Equal(got, []string{"-DFALLBACK"}) {
		t.Fatalf("doc.c args = %q", got)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.c", "a.h", "notes.txt", "sub/c.c"} {
		writeFile(t, filepath.Join(dir, name), "")
	}
	extra := filepath.Join(dir, "notes.txt")
	got, err := ExpandPaths([]string{dir, extra, filepath.Join(dir, "b.c")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.h"),
		filepath.Join(dir, "b.c"),
		filepath.Join(dir, "sub", "c.c"),
		extra,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if _, err := ExpandPaths([]string{filepath.Join(dir, "nope")}); err == nil {
		t.Fatalf("expected an error for a missing path")
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a.c", Stage: StageParse, Status: StatusDone})
	if ev := <-ch; ev.File != "a.c" || ev.Status != StatusDone {
		t.Fatalf("event = %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{})
}
