package clang_test

import (
	"errors"
	"slices"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/testkit/fakeclang"
)

func TestDiagnostics(t *testing.T) {
	l, tu := listUnit(t, "17.0.6")
	ds, err := tu.Diagnostics()
	if err != nil {
		t.Fatalf("diagnostics: %v", err)
	}
	if ds.Len() != 1 || !ds.HasErrors() {
		t.Fatalf("diagnostics = %d errors = %v", ds.Len(), ds.HasErrors())
	}
	d, _ := ds.At(0)
	want := "list.c:6:9: error: use of 'List' with tag type that does not match previous declaration"
	if got := d.Format(tu.Binding().DefaultDiagnosticDisplayOptions()); got != want {
		t.Fatalf("format:\n got %q\nwant %q", got, want)
	}
	if sev, err := d.Severity(); err != nil || sev != kinds.SeverityError {
		t.Fatalf("severity = %v, %v", sev, err)
	}
	if loc := d.Location(); loc.Line() != 6 || loc.Column() != 9 {
		t.Fatalf("location = %v", loc)
	}
	fixits := d.FixIts()
	if len(fixits) != 1 || fixits[0].Text != "struct" {
		t.Fatalf("fix-its = %+v", fixits)
	}
	notes := d.Children()
	if len(notes) != 1 || notes[0].Spelling() != "previous use is here" {
		t.Fatalf("notes = %v", notes)
	}
	if _, err := ds.At(1); !errors.Is(err, clang.ErrOutOfRange) {
		t.Fatalf("At(1): %v", err)
	}

	tu.Close()
	if l.Disposed(fakeclang.KindUnit) != 0 {
		t.Fatalf("unit released while its diagnostics are open")
	}
	if d.Spelling() == "" {
		t.Fatalf("diagnostic unusable after the unit was closed")
	}
	ds.Close()
	if l.Disposed(fakeclang.KindDiagnostic) != 1 || l.Disposed(fakeclang.KindUnit) != 1 {
		t.Fatalf("disposed diagnostics=%d units=%d", l.Disposed(fakeclang.KindDiagnostic), l.Disposed(fakeclang.KindUnit))
	}
	mustPanic(t, clang.ErrReleased, func() { d.Spelling() })
	mustPanic(t, clang.ErrReleased, func() { notes[0].Spelling() })
}

func TestTokens(t *testing.T) {
	l, tu := listUnit(t, "17.0.6")
	list := find(t, tu, kinds.CursorStructDecl, "List")
	toks, err := tu.Tokenize(list.Extent())
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if toks.Len() != 12 {
		t.Fatalf("tokens = %d", toks.Len())
	}
	first, _ := toks.At(0)
	if k, err := first.Kind(); err != nil || k != kinds.TokenKeyword || first.Spelling() != "struct" {
		t.Fatalf("first token = %v %q", k, first.Spelling())
	}
	if first.Location().Line() != 1 || first.Location().Column() != 1 {
		t.Fatalf("first token at %v", first.Location())
	}
	cursors, err := tu.AnnotateTokens(toks)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if len(cursors) != toks.Len() || !cursors[1].Equal(list) {
		t.Fatalf("token 1 not annotated with the struct")
	}
	var spelled []string
	for _, tok := range toks.All() {
		spelled = append(spelled, tok.Spelling())
	}
	if spelled[1] != "List" || spelled[len(spelled)-1] != "}" {
		t.Fatalf("tokens = %v", spelled)
	}
	if _, err := toks.At(12); !errors.Is(err, clang.ErrOutOfRange) {
		t.Fatalf("At(12): %v", err)
	}
	toks.Close()
	toks.Close()
	if l.Disposed(fakeclang.KindTokens) != 1 {
		t.Fatalf("token buffer released %d times", l.Disposed(fakeclang.KindTokens))
	}
}

func TestCodeCompletion(t *testing.T) {
	l, tu := sampleUnit(t, "17.0.6")
	res, err := tu.CodeComplete("sample.c", 35, 5, nil, tu.Binding().DefaultCodeCompleteOptions())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	res.Sort()
	all, err := res.All()
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	var names []string
	for _, r := range all {
		names = append(names, r.String.TypedText())
	}
	for _, want := range []string{"add", "counter", "total", "a", "MAX_ITEMS", "Point"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing completion %q", want)
		}
	}
	if res.Contexts()&kinds.ContextAnyValue == 0 {
		t.Fatalf("contexts should include values inside a body")
	}
	if k, err := res.ContainerKind(); err != nil || k != kinds.CursorInvalidCode || res.IsIncomplete() {
		t.Fatalf("container = %v, %v", k, err)
	}
	if diags, err := res.Diagnostics(); err != nil || len(diags) != 0 {
		t.Fatalf("completion diagnostics = %v, %v", diags, err)
	}

	for _, r := range all {
		if r.String.TypedText() != "add" {
			continue
		}
		chunks, err := r.String.Chunks()
		if err != nil {
			t.Fatalf("chunks: %v", err)
		}
		var kindsSeen []kinds.ChunkKind
		for _, c := range chunks {
			kindsSeen = append(kindsSeen, c.Kind)
		}
		if !slices.Contains(kindsSeen, kinds.ChunkResultType) || !slices.Contains(kindsSeen, kinds.ChunkPlaceholder) {
			t.Fatalf("chunks of add = %v", kindsSeen)
		}
	}

	str := all[0].String
	res.Close()
	if l.Disposed(fakeclang.KindCompletion) != 1 {
		t.Fatalf("results not released")
	}
	mustPanic(t, clang.ErrReleased, func() { str.NumChunks() })

	if _, err := tu.CodeComplete("nowhere.c", 1, 1, nil, 0); err == nil {
		t.Fatalf("completion in an unknown file should fail")
	}
}

func TestCompilationDatabase(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddCompilationDatabase("/proj",
		fakeclang.Command{Directory: "/proj", Filename: "/proj/a.c", Args: []string{"cc", "-c", "a.c"}},
		fakeclang.Command{Directory: "/proj", Filename: "/proj/b.c", Args: []string{"cc", "-DX=1", "-c", "b.c"}},
	)
	b := load(t, l)
	db, err := b.CompilationDatabaseFromDirectory("/proj")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	all, err := db.AllCompileCommands()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if all.Len() != 2 {
		t.Fatalf("commands = %d", all.Len())
	}
	only, err := db.CompileCommands("/proj/b.c")
	if err != nil {
		t.Fatalf("commands for b.c: %v", err)
	}
	cmd, err := only.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if !slices.Equal(cmd.Args(), []string{"cc", "-DX=1", "-c", "b.c"}) || cmd.Directory() != "/proj" {
		t.Fatalf("command = %v in %s", cmd.Args(), cmd.Directory())
	}
	if name, err := cmd.Filename(); err != nil || name != "/proj/b.c" {
		t.Fatalf("filename = %q, %v", name, err)
	}
	if _, err := cmd.MappedSources(); !errors.Is(err, clang.ErrNotImplemented) {
		t.Fatalf("mapped sources: %v", err)
	}
	none, err := db.CompileCommands("/proj/unknown.c")
	if err != nil || none.Len() != 0 {
		t.Fatalf("unknown file = %d, %v", none.Len(), err)
	}

	db.Close()
	if l.Disposed(fakeclang.KindDatabase) != 0 {
		t.Fatalf("database released while command sets are open")
	}
	none.Close()
	only.Close()
	all.Close()
	if l.Disposed(fakeclang.KindDatabase) != 1 || l.Live() != 0 {
		t.Fatalf("database released %d times, %d live", l.Disposed(fakeclang.KindDatabase), l.Live())
	}
	if v := l.Violations(); len(v) != 0 {
		t.Fatalf("violations: %v", v)
	}

	var ce *clang.ConstructionError
	if _, err := b.CompilationDatabaseFromDirectory(t.TempDir()); !errors.As(err, &ce) {
		t.Fatalf("missing database: %v", err)
	}
}
