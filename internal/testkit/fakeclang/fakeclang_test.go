package fakeclang_test

import (
	"path/filepath"
	"strings"
	"testing"

	"clangview/internal/kinds"
	"clangview/internal/native"
	"clangview/internal/testkit/fakeclang"
)

func parse(t *testing.T, l *fakeclang.Lib, path string, flags kinds.ParseFlags) native.Handle {
	t.Helper()
	idx := l.CreateIndex(false, false)
	tu, code := l.ParseTranslationUnit(idx, path, nil, nil, uint32(flags))
	if code != int32(kinds.ErrorSuccess) || tu == 0 {
		t.Fatalf("parse %s: code %d", path, code)
	}
	t.Cleanup(func() {
		l.DisposeTranslationUnit(tu)
		l.DisposeIndex(idx)
	})
	return tu
}

func children(l *fakeclang.Lib, c native.Cursor) []native.Cursor {
	var out []native.Cursor
	l.VisitChildren(c, func(c, _ native.Cursor) int32 {
		out = append(out, c)
		return int32(kinds.ChildVisitContinue)
	})
	return out
}

func find(t *testing.T, l *fakeclang.Lib, tu native.Handle, kind kinds.CursorKind, name string) native.Cursor {
	t.Helper()
	reg := kinds.NewRegistry(l.Capabilities())
	var found native.Cursor
	ok := false
	l.VisitChildren(l.TranslationUnitCursor(tu), func(c, _ native.Cursor) int32 {
		k, err := reg.Cursor(c.Kind)
		if err != nil {
			t.Fatalf("decode %d: %v", c.Kind, err)
		}
		if k == kind && l.CursorSpelling(c) == name {
			found, ok = c, true
			return int32(kinds.ChildVisitBreak)
		}
		return int32(kinds.ChildVisitRecurse)
	})
	if !ok {
		t.Fatalf("no %s named %q", kind, name)
	}
	return found
}

func TestTagMismatchDiagnostic(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	tu := parse(t, l, "list.c", 0)

	if n := l.NumDiagnostics(tu); n != 1 {
		t.Fatalf("diagnostics = %d, want 1", n)
	}
	d := l.GetDiagnostic(tu, 0)
	defer l.DisposeDiagnostic(d)
	if sev := kinds.Severity(l.DiagnosticSeverity(d)); sev != kinds.SeverityError {
		t.Fatalf("severity = %v, want error", sev)
	}
	got := l.FormatDiagnostic(d, l.DefaultDiagnosticDisplayOptions())
	want := "list.c:6:9: error: use of 'List' with tag type that does not match previous declaration"
	if got != want {
		t.Fatalf("format:\n got %q\nwant %q", got, want)
	}
	if n := l.DiagnosticNumFixIts(d); n != 1 {
		t.Fatalf("fix-its = %d, want 1", n)
	}
	if _, text := l.DiagnosticFixIt(d, 0); text != "struct" {
		t.Fatalf("fix-it text = %q, want struct", text)
	}
	set := l.ChildDiagnostics(d)
	if l.NumDiagnosticsInSet(set) != 1 {
		t.Fatalf("expected one note")
	}
	if msg := l.DiagnosticSpelling(l.DiagnosticInSet(set, 0)); msg != "previous use is here" {
		t.Fatalf("note = %q", msg)
	}
}

func TestTopLevelChildrenAndExtent(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	tu := parse(t, l, "list.c", 0)

	kids := children(l, l.TranslationUnitCursor(tu))
	var names []string
	for _, c := range kids {
		names = append(names, l.CursorSpelling(c))
	}
	if strings.Join(names, ",") != "List,sum" {
		t.Fatalf("children = %v", names)
	}

	list := find(t, l, tu, kinds.CursorStructDecl, "List")
	ext := l.CursorExtent(list)
	begin := l.ExpansionLocation(l.RangeStart(ext))
	end := l.ExpansionLocation(l.RangeEnd(ext))
	if begin.Line != 1 || end.Line != 4 {
		t.Fatalf("extent lines %d-%d, want 1-4", begin.Line, end.Line)
	}
	if l.FileName(begin.File) != "list.c" {
		t.Fatalf("file = %q", l.FileName(begin.File))
	}
}

func TestTokenizeStructExtent(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	tu := parse(t, l, "list.c", 0)
	list := find(t, l, tu, kinds.CursorStructDecl, "List")

	buf, n := l.Tokenize(tu, l.CursorExtent(list))
	if n != 12 {
		t.Fatalf("tokens = %d, want 12", n)
	}
	first := l.TokenAt(buf, 0)
	if kinds.TokenKind(l.TokenKind(first)) != kinds.TokenKeyword || l.TokenSpelling(tu, first) != "struct" {
		t.Fatalf("first token = %v %q", kinds.TokenKind(l.TokenKind(first)), l.TokenSpelling(tu, first))
	}
	cursors := l.AnnotateTokens(tu, buf, n)
	if len(cursors) != n {
		t.Fatalf("annotated %d of %d tokens", len(cursors), n)
	}
	if !l.EqualCursors(cursors[1], list) {
		t.Fatalf("token 1 not annotated with the struct")
	}
	l.DisposeTokens(tu, buf, n)
	if l.Disposed(fakeclang.KindTokens) != 1 {
		t.Fatalf("token buffer not released")
	}
}

func TestDocCommentParagraph(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("docs.h", fakeclang.DocsH)
	tu := parse(t, l, "docs.h", 0)
	f := find(t, l, tu, kinds.CursorFunctionDecl, "f")

	full := l.ParsedComment(f)
	if kinds.CommentKind(l.CommentKind(full)) != kinds.CommentFull {
		t.Fatalf("kind = %v", kinds.CommentKind(l.CommentKind(full)))
	}
	para := l.CommentChild(full, 0)
	if kinds.CommentKind(l.CommentKind(para)) != kinds.CommentParagraph {
		t.Fatalf("child kind = %v", kinds.CommentKind(l.CommentKind(para)))
	}
	var parts []string
	for i := 0; i < l.CommentNumChildren(para); i++ {
		parts = append(parts, strings.TrimSpace(l.TextCommentText(l.CommentChild(para, i))))
	}
	if got := strings.Join(parts, " "); got != "Brief. Longer line 1 Longer line 2" {
		t.Fatalf("text = %q", got)
	}
	if got := l.BriefCommentText(f); got != "Brief. Longer line 1 Longer line 2" {
		t.Fatalf("brief = %q", got)
	}
}

func TestSampleParsesClean(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", kinds.ParseDetailedPreprocessingRecord)
	for i := 0; i < l.NumDiagnostics(tu); i++ {
		d := l.GetDiagnostic(tu, i)
		t.Errorf("unexpected diagnostic: %s", l.FormatDiagnostic(d, l.DefaultDiagnosticDisplayOptions()))
		l.DisposeDiagnostic(d)
	}

	var included []string
	l.GetInclusions(tu, func(file native.Handle, stack []native.SourceLocation) {
		included = append(included, l.FileName(file))
	})
	want := []string{"sample.c", filepath.Join(fakeclang.SystemDir, "stddef.h"), "shapes.h"}
	if strings.Join(included, ",") != strings.Join(want, ",") {
		t.Fatalf("inclusions = %v, want %v", included, want)
	}
	if !l.IsFileMultipleIncludeGuarded(tu, l.GetFile(tu, "shapes.h")) {
		t.Fatalf("shapes.h should be include guarded")
	}
}

func TestRecordLayout(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	flags := find(t, l, tu, kinds.CursorStructDecl, "Flags")
	typ := l.CursorType(flags)

	if size := l.SizeOf(typ); size != 16 {
		t.Fatalf("sizeof = %d, want 16", size)
	}
	cases := []struct {
		field string
		bits  int64
	}{
		{"ready", 0},
		{"mode", 1},
		{"i", 32},
		{"f", 32},
		{"name", 64},
		{"missing", int64(kinds.LayoutErrorInvalidFieldName)},
	}
	for _, tc := range cases {
		if got := l.OffsetOf(typ, tc.field); got != tc.bits {
			t.Errorf("offsetof(%s) = %d, want %d", tc.field, got, tc.bits)
		}
	}
	mode := find(t, l, tu, kinds.CursorFieldDecl, "mode")
	if w := l.FieldDeclBitWidth(mode); w != 3 {
		t.Fatalf("bit width = %d", w)
	}
	name := find(t, l, tu, kinds.CursorFieldDecl, "name")
	if w := l.FieldDeclBitWidth(name); w != -1 {
		t.Fatalf("bit width of a plain field = %d, want -1", w)
	}
}

func TestDefinitionAndCanonical(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	var decls []native.Cursor
	reg := kinds.NewRegistry(l.Capabilities())
	for _, c := range children(l, l.TranslationUnitCursor(tu)) {
		if k, _ := reg.Cursor(c.Kind); k == kinds.CursorFunctionDecl && l.CursorSpelling(c) == "add" {
			decls = append(decls, c)
		}
	}
	if len(decls) != 2 {
		t.Fatalf("add declared %d times, want 2", len(decls))
	}
	proto, def := decls[0], decls[1]
	if l.CursorFlag(proto, native.FlagDefinition) || !l.CursorFlag(def, native.FlagDefinition) {
		t.Fatalf("definition flags wrong")
	}
	viaDef := l.Definition(proto)
	if viaDef == def || !l.EqualCursors(viaDef, def) {
		t.Fatalf("definition should be equal but not identical")
	}
	if l.HashCursor(viaDef) != l.HashCursor(def) {
		t.Fatalf("hash differs for equal cursors")
	}
	if !l.EqualCursors(l.CanonicalCursor(def), proto) {
		t.Fatalf("canonical of the definition should be the prototype")
	}
	if got := l.CursorUSR(def); got != "c:@F@add" {
		t.Fatalf("usr = %q", got)
	}
}

func TestNestedVisitUsesSeparateFrames(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	root := l.TranslationUnitCursor(tu)
	outer := 0
	inner := 0
	l.VisitChildren(root, func(c, _ native.Cursor) int32 {
		outer++
		if native.Frames.Len() != 1 {
			t.Fatalf("outer frames = %d", native.Frames.Len())
		}
		l.VisitChildren(c, func(native.Cursor, native.Cursor) int32 {
			inner++
			if native.Frames.Len() != 2 {
				t.Fatalf("inner frames = %d", native.Frames.Len())
			}
			return int32(kinds.ChildVisitContinue)
		})
		return int32(kinds.ChildVisitContinue)
	})
	if outer == 0 || inner == 0 {
		t.Fatalf("outer %d inner %d", outer, inner)
	}
	if native.Frames.Len() != 0 {
		t.Fatalf("frames leaked: %d", native.Frames.Len())
	}
}

func TestBreakStopsWalk(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	seen := 0
	r := l.VisitChildren(l.TranslationUnitCursor(tu), func(native.Cursor, native.Cursor) int32 {
		seen++
		if seen == 5 {
			return int32(kinds.ChildVisitBreak)
		}
		return int32(kinds.ChildVisitRecurse)
	})
	if r == 0 || seen != 5 {
		t.Fatalf("result %d after %d nodes", r, seen)
	}
}

func TestFindReferences(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	counter := find(t, l, tu, kinds.CursorVarDecl, "counter")
	file := l.GetFile(tu, "sample.c")

	var lines []uint32
	res := l.FindReferencesInFile(counter, file, func(c native.Cursor, r native.SourceRange) int32 {
		lines = append(lines, l.ExpansionLocation(l.RangeStart(r)).Line)
		return int32(kinds.VisitorContinue)
	})
	if kinds.Result(res) != kinds.ResultSuccess {
		t.Fatalf("result = %d", res)
	}
	if len(lines) != 2 || lines[0] != 31 || lines[1] != 35 {
		t.Fatalf("reference lines = %v, want [31 35]", lines)
	}
}

func TestAvailability(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)

	legacy := find(t, l, tu, kinds.CursorFunctionDecl, "legacy")
	if a := kinds.Availability(l.CursorAvailability(legacy)); a != kinds.AvailabilityDeprecated {
		t.Fatalf("availability = %v", a)
	}
	hdr, buf, n := l.CursorPlatformAvailability(legacy)
	if !hdr.AlwaysDeprecated || hdr.DeprecatedMessage != "use add" || n != 0 || buf != 0 {
		t.Fatalf("header = %+v n=%d", hdr, n)
	}

	modern := find(t, l, tu, kinds.CursorFunctionDecl, "modern")
	_, buf, n = l.CursorPlatformAvailability(modern)
	if n != 1 {
		t.Fatalf("platforms = %d", n)
	}
	pa := l.PlatformAvailabilityAt(buf, 0)
	if pa.Platform != "macos" || pa.Introduced.Major != 10 || pa.Introduced.Minor != 12 || pa.Message != "gone" {
		t.Fatalf("platform = %+v", pa)
	}
	l.DisposePlatformAvailability(buf, n)
	if len(l.Violations()) != 0 {
		t.Fatalf("violations: %v", l.Violations())
	}
}

func TestStructuredComment(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	add := find(t, l, tu, kinds.CursorFunctionDecl, "add")
	if got := l.BriefCommentText(add); got != "Adds two numbers." {
		t.Fatalf("brief = %q", got)
	}

	full := l.ParsedComment(add)
	var params []string
	for i := 0; i < l.CommentNumChildren(full); i++ {
		c := l.CommentChild(full, i)
		if kinds.CommentKind(l.CommentKind(c)) != kinds.CommentParamCommand {
			continue
		}
		params = append(params, l.ParamCommandName(c))
		if l.ParamCommandName(c) == "a" {
			if !l.ParamCommandDirectionExplicit(c) || kinds.ParamDirection(l.ParamCommandDirection(c)) != kinds.ParamDirectionIn {
				t.Fatalf("param a direction wrong")
			}
			if !l.ParamCommandIndexValid(c) || l.ParamCommandIndex(c) != 0 {
				t.Fatalf("param a index wrong")
			}
		}
	}
	if strings.Join(params, ",") != "a,b" {
		t.Fatalf("params = %v", params)
	}
	if html := l.FullCommentAsHTML(full); !strings.Contains(html, "<b>integer</b>") {
		t.Fatalf("html = %q", html)
	}
}

func TestCompletionInsideBody(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	res := l.CodeCompleteAt(tu, "sample.c", 35, 5, nil, l.DefaultCodeCompleteOptions())
	if res == 0 {
		t.Fatalf("no results")
	}
	defer l.DisposeCodeCompleteResults(res)

	seen := map[string]bool{}
	for i := 0; i < l.NumCompletionResults(res); i++ {
		_, cs := l.CompletionResult(res, i)
		for j := 0; j < l.CompletionNumChunks(cs); j++ {
			if kinds.ChunkKind(l.CompletionChunkKind(cs, j)) == kinds.ChunkTypedText {
				seen[l.CompletionChunkText(cs, j)] = true
			}
		}
	}
	for _, name := range []string{"add", "counter", "total", "a", "MAX_ITEMS", "Point"} {
		if !seen[name] {
			t.Errorf("missing completion %q", name)
		}
	}
	if kinds.CompletionContext(l.CodeCompleteContexts(res))&kinds.ContextAnyValue == 0 {
		t.Fatalf("contexts should include values inside a body")
	}
}

func TestCompilationDatabase(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddCompilationDatabase("/proj",
		fakeclang.Command{Directory: "/proj", Filename: "/proj/a.c", Args: []string{"cc", "-c", "a.c"}},
		fakeclang.Command{Directory: "/proj", Filename: "/proj/b.c", Args: []string{"cc", "-DX=1", "-c", "b.c"}},
	)
	db, code := l.CompilationDatabaseFromDirectory("/proj")
	if code != int32(kinds.CompilationDatabaseNoError) {
		t.Fatalf("load: %d", code)
	}
	all := l.AllCompileCommands(db)
	if l.NumCompileCommands(all) != 2 {
		t.Fatalf("commands = %d", l.NumCompileCommands(all))
	}
	if h := l.CompileCommandsFor(db, "/proj/unknown.c"); h != 0 {
		t.Fatalf("unknown file got command set %#x", h)
	}
	only := l.CompileCommandsFor(db, "/proj/b.c")
	cmd := l.CompileCommand(only, 0)
	if l.CompileCommandNumArgs(cmd) != 4 || l.CompileCommandArg(cmd, 1) != "-DX=1" {
		t.Fatalf("unexpected command for b.c")
	}
	l.DisposeCompileCommands(only)
	l.DisposeCompileCommands(all)
	l.DisposeCompilationDatabase(db)

	if _, code := l.CompilationDatabaseFromDirectory(t.TempDir()); code != int32(kinds.CompilationDatabaseCanNotLoadDatabase) {
		t.Fatalf("missing database code = %d", code)
	}
	if l.Live() != 0 {
		t.Fatalf("live handles = %d", l.Live())
	}
}

func TestSaveAndLoad(t *testing.T) {
	l := fakeclang.Sample("17.0.6")
	tu := parse(t, l, "sample.c", 0)
	path := filepath.Join(t.TempDir(), "sample.ast")
	if code := l.SaveTranslationUnit(tu, path, l.DefaultSaveOptions(tu)); code != int32(kinds.SaveErrorNone) {
		t.Fatalf("save = %d", code)
	}

	idx := l.CreateIndex(false, false)
	loaded, code := l.CreateTranslationUnit(idx, path)
	if code != int32(kinds.ErrorSuccess) {
		t.Fatalf("load = %d", code)
	}
	if got := len(children(l, l.TranslationUnitCursor(loaded))); got != len(children(l, l.TranslationUnitCursor(tu))) {
		t.Fatalf("loaded unit has %d top-level cursors", got)
	}
	l.DisposeTranslationUnit(loaded)
	l.DisposeIndex(idx)

	if _, code := l.CreateTranslationUnit(l.CreateIndex(false, false), filepath.Join(t.TempDir(), "none.ast")); code != int32(kinds.ErrorASTReadError) {
		t.Fatalf("missing AST code = %d", code)
	}
}

func TestViolations(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	idx := l.CreateIndex(false, false)
	tu, _ := l.ParseTranslationUnit(idx, "list.c", nil, nil, 0)
	d := l.GetDiagnostic(tu, 0)

	l.DisposeIndex(idx)
	l.DisposeTranslationUnit(tu)
	l.DisposeDiagnostic(d)
	l.DisposeDiagnostic(d)

	got := l.Violations()
	if len(got) != 3 {
		t.Fatalf("violations = %v", got)
	}
	if !strings.Contains(got[0], "before translation unit") ||
		!strings.Contains(got[1], "outlived translation unit") ||
		!strings.Contains(got[2], "released twice") {
		t.Fatalf("violations = %v", got)
	}
}

func TestVersionGatedSymbolsPanic(t *testing.T) {
	l := fakeclang.New("15.0.7")
	l.AddFile("list.c", fakeclang.ListC)
	tu := parse(t, l, "list.c", 0)
	list := find(t, l, tu, kinds.CursorStructDecl, "List")
	defer func() {
		if recover() == nil {
			t.Fatalf("VarDeclInitializer on 15.0 should panic")
		}
	}()
	l.VarDeclInitializer(list)
}
