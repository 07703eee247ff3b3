package clang_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/testkit/fakeclang"
)

func TestLoadRejectsUnknownVersion(t *testing.T) {
	if _, err := clang.Load(fakeclang.New("not a version")); err == nil {
		t.Fatalf("load should fail on an unparsable version")
	}
}

func TestLoadPrereleaseVersion(t *testing.T) {
	b := load(t, fakeclang.New("Apple LLVM version 4.2 (clang-425.0.28) (based on LLVM 3.2svn)"))
	if v := b.Version(); v.Major != 3 || v.Minor != 1 {
		t.Fatalf("version = %v, want 3.1", v)
	}
	if !strings.Contains(b.RawVersion(), "3.2svn") {
		t.Fatalf("raw version = %q", b.RawVersion())
	}
	if b.Has(libver.FeatureVisitFields) {
		t.Fatalf("3.1 should not visit fields")
	}
}

func TestTranslationUnitKindAcrossVersions(t *testing.T) {
	for _, v := range []string{"14.0.6", "17.0.6"} {
		t.Run(v, func(t *testing.T) {
			_, tu := listUnit(t, v)
			if k := tu.Cursor().Kind(); k != kinds.CursorTranslationUnit {
				t.Fatalf("root kind = %v", k)
			}
			if !tu.Cursor().IsTranslationUnit() {
				t.Fatalf("root should be in the translation unit class")
			}
		})
	}
}

func TestGatedAccessorReportsUnsupported(t *testing.T) {
	_, tu := listUnit(t, "15.0.7")
	list := find(t, tu, kinds.CursorStructDecl, "List")
	_, err := list.VarDeclInitializer()
	if !errors.Is(err, clang.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	var ue *clang.UnsupportedError
	if !errors.As(err, &ue) || ue.Feature != libver.FeatureVarDeclInitializer {
		t.Fatalf("err = %#v", err)
	}
}

func TestParseMissingFile(t *testing.T) {
	l := fakeclang.New("17.0.6")
	b := load(t, l)
	ix, err := b.NewIndex(false, false)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	_, err = ix.Parse(filepath.Join(t.TempDir(), "missing.c"), nil, nil, 0)
	var ce *clang.ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConstructionError", err)
	}
	if ce.Code != int32(kinds.ErrorFailure) {
		t.Fatalf("code = %d", ce.Code)
	}
	ix.Close()
	if l.Live() != 0 {
		t.Fatalf("live = %d", l.Live())
	}
}

func TestIndexOutlivedByUnit(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	b := load(t, l)
	ix, err := b.NewIndex(false, false)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	tu, err := ix.Parse("list.c", nil, nil, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ix.Close()
	if n := l.Disposed(fakeclang.KindIndex); n != 0 {
		t.Fatalf("index disposed while a unit is alive")
	}
	if got := len(mustChildren(t, tu.Cursor())); got != 2 {
		t.Fatalf("children = %d", got)
	}
	tu.Close()
	if l.Disposed(fakeclang.KindUnit) != 1 || l.Disposed(fakeclang.KindIndex) != 1 {
		t.Fatalf("disposed unit=%d index=%d", l.Disposed(fakeclang.KindUnit), l.Disposed(fakeclang.KindIndex))
	}
	if v := l.Violations(); len(v) != 0 {
		t.Fatalf("violations: %v", v)
	}
}

func TestUseAfterClosePanics(t *testing.T) {
	l, tu := listUnit(t, "17.0.6")
	root := tu.Cursor()
	decl := mustChildren(t, root)[0]
	typ, err := decl.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	loc := decl.Location()
	ext := decl.Extent()
	file := loc.File()
	toks, err := tu.Tokenize(ext)
	if err != nil || toks.Len() == 0 {
		t.Fatalf("tokenize: %v (%d tokens)", err, toks.Len())
	}
	tok := toks.All()[0]

	tu.Close()
	tu.Close()
	mustPanic(t, clang.ErrReleased, func() { tu.Cursor() })
	mustPanic(t, clang.ErrReleased, func() { tu.Spelling() })
	mustPanic(t, clang.ErrReleased, func() { decl.Spelling() })
	mustPanic(t, clang.ErrReleased, func() { root.Children() })
	mustPanic(t, clang.ErrReleased, func() { typ.Spelling() })
	mustPanic(t, clang.ErrReleased, func() { loc.Line() })
	mustPanic(t, clang.ErrReleased, func() { ext.Start() })
	mustPanic(t, clang.ErrReleased, func() { file.Name() })
	mustPanic(t, clang.ErrReleased, func() { tok.Spelling() })
	if l.Disposed(fakeclang.KindUnit) != 0 {
		t.Fatalf("unit disposed while its tokens are open")
	}

	toks.Close()
	mustPanic(t, clang.ErrReleased, func() { tok.Kind() })
	if l.Disposed(fakeclang.KindUnit) != 1 {
		t.Fatalf("unit disposed %d times", l.Disposed(fakeclang.KindUnit))
	}
	if v := l.Violations(); len(v) != 0 {
		t.Fatalf("violations: %v", v)
	}
}

func TestUnitQueries(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	if tu.Spelling() != "sample.c" || tu.Path() != "sample.c" {
		t.Fatalf("spelling = %q", tu.Spelling())
	}

	var names []string
	for _, inc := range tu.Inclusions() {
		names = append(names, inc.File.Name())
	}
	want := []string{"sample.c", filepath.Join(fakeclang.SystemDir, "stddef.h"), "shapes.h"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("inclusions = %v", names)
	}

	shapes, ok := tu.File("shapes.h")
	if !ok || !shapes.IsIncludeGuarded() || !tu.IsIncludeGuarded(shapes) {
		t.Fatalf("shapes.h should be include guarded")
	}
	main, ok := tu.MainFile()
	if !ok || main.Name() != "sample.c" || main.Equal(shapes) {
		t.Fatalf("main file = %v", main)
	}
	if _, err := main.UniqueID(); err != nil {
		t.Fatalf("unique id: %v", err)
	}

	ti, err := tu.TargetInfo()
	if err != nil {
		t.Fatalf("target info: %v", err)
	}
	if ti.Triple != "x86_64-pc-linux-gnu" || ti.PointerWidth != 64 {
		t.Fatalf("target = %+v", ti)
	}
	if n := len(tu.ResourceUsage()); n != 4 {
		t.Fatalf("resource usage entries = %d", n)
	}
}

func TestLocationLookup(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	f, _ := tu.MainFile()
	loc := tu.Location(f, 35, 5)
	if loc.Line() != 35 || loc.Column() != 5 || loc.File().Name() != "sample.c" {
		t.Fatalf("location = %v", loc)
	}
	if !loc.IsFromMainFile() || loc.IsInSystemHeader() {
		t.Fatalf("location classification wrong")
	}
	c, err := tu.CursorAt(loc)
	if err != nil {
		t.Fatalf("cursor at: %v", err)
	}
	if c.Spelling() != "counter" {
		t.Fatalf("cursor at 35:5 = %v", c)
	}
	if !tu.Location(f, -1, 1).IsNull() {
		t.Fatalf("negative line should give the null location")
	}
}

func TestSaveAndLoadAST(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	path := filepath.Join(t.TempDir(), "sample.ast")
	if err := tu.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := tu.Index().LoadAST(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a, b := len(mustChildren(t, loaded.Cursor())), len(mustChildren(t, tu.Cursor())); a != b {
		t.Fatalf("loaded unit has %d top-level cursors, want %d", a, b)
	}
	loaded.Close()

	_, err = tu.Index().LoadAST(filepath.Join(t.TempDir(), "none.ast"))
	var ce *clang.ConstructionError
	if !errors.As(err, &ce) || ce.Reason != kinds.ErrorASTReadError.String() {
		t.Fatalf("err = %v", err)
	}
}

func TestSaveRefusesErrors(t *testing.T) {
	_, tu := listUnit(t, "17.0.6")
	err := tu.Save(filepath.Join(t.TempDir(), "list.ast"))
	var ne *clang.NativeError
	if !errors.As(err, &ne) || ne.Code != int32(kinds.SaveErrorTranslationErrors) {
		t.Fatalf("err = %v", err)
	}
}

func TestReparseBumpsGeneration(t *testing.T) {
	_, tu := listUnit(t, "17.0.6")
	if tu.Generation() != 0 {
		t.Fatalf("generation = %d", tu.Generation())
	}
	err := tu.Reparse([]clang.UnsavedFile{{Filename: "list.c", Contents: []byte("int only = 1;\n")}})
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if tu.Generation() != 1 {
		t.Fatalf("generation = %d", tu.Generation())
	}
	kids := mustChildren(t, tu.Cursor())
	if len(kids) != 1 || kids[0].Spelling() != "only" {
		t.Fatalf("children after reparse = %v", kids)
	}
}

func mustChildren(t *testing.T, c clang.Cursor) []clang.Cursor {
	t.Helper()
	kids, err := c.Children()
	if err != nil {
		t.Fatalf("children of %v: %v", c, err)
	}
	return kids
}
