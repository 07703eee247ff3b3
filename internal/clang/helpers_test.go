package clang_test

import (
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/testkit/fakeclang"
)

func load(t *testing.T, l *fakeclang.Lib) *clang.Binding {
	t.Helper()
	b, err := clang.Load(l)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

// open parses path and registers a cleanup that tears the unit down and
// checks the fake saw no misuse and no leaks.
func open(t *testing.T, l *fakeclang.Lib, path string) *clang.TranslationUnit {
	t.Helper()
	b := load(t, l)
	ix, err := b.NewIndex(false, false)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	tu, err := ix.Parse(path, nil, nil, kinds.ParseDetailedPreprocessingRecord)
	if err != nil {
		ix.Close()
		t.Fatalf("parse %s: %v", path, err)
	}
	t.Cleanup(func() {
		tu.Close()
		ix.Close()
		if v := l.Violations(); len(v) != 0 {
			t.Errorf("violations: %v", v)
		}
		if n := l.Live(); n != 0 {
			t.Errorf("live handles after teardown = %d", n)
		}
	})
	return tu
}

func listUnit(t *testing.T, version string) (*fakeclang.Lib, *clang.TranslationUnit) {
	t.Helper()
	l := fakeclang.New(version)
	l.AddFile("list.c", fakeclang.ListC)
	return l, open(t, l, "list.c")
}

func sampleUnit(t *testing.T, version string) (*fakeclang.Lib, *clang.TranslationUnit) {
	t.Helper()
	l := fakeclang.Sample(version)
	return l, open(t, l, "sample.c")
}

func find(t *testing.T, tu *clang.TranslationUnit, kind kinds.CursorKind, name string) clang.Cursor {
	t.Helper()
	c, ok, err := tu.Cursor().FindFirst(func(c, _ clang.Cursor) bool {
		return c.Kind() == kind && c.Spelling() == name
	})
	if err != nil {
		t.Fatalf("find %s %q: %v", kind, name, err)
	}
	if !ok {
		t.Fatalf("no %s named %q", kind, name)
	}
	return c
}

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", want)
		}
		if err, ok := r.(error); !ok || err != want {
			t.Fatalf("panic value = %v, want %v", r, want)
		}
	}()
	fn()
}
