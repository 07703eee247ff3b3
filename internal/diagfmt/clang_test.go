package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/source"
	"clangview/internal/testkit/fakeclang"
)

func lc(line, col uint32) source.LineCol { return source.LineCol{Line: line, Col: col} }

func listUnit(t *testing.T) *clang.TranslationUnit {
	t.Helper()
	l := fakeclang.New("17.0.6")
	l.AddFile("list.c", fakeclang.ListC)
	b, err := clang.Load(l)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ix, err := b.NewIndex(false, false)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	tu, err := ix.Parse("list.c", nil, nil, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Cleanup(func() {
		tu.Close()
		ix.Close()
		if l.Live() != 0 {
			t.Errorf("%d handles leaked", l.Live())
		}
	})
	return tu
}

func TestCursorTree(t *testing.T) {
	tu := listUnit(t)
	tree, err := BuildCursorTree(tu.Cursor(), TreeOpts{ShowTypes: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if tree.Kind != "TranslationUnit" || len(tree.Children) != 2 {
		t.Fatalf("root = %s with %d children", tree.Kind, len(tree.Children))
	}
	next, ok := tree.Find("FieldDecl", "next")
	if !ok || next.Type != "struct List *" {
		t.Fatalf("field next = %+v, %v", next, ok)
	}

	var buf bytes.Buffer
	if err := FormatCursorTreePretty(&buf, tree); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "TranslationUnit list.c\n") {
		t.Fatalf("root line:\n%s", out)
	}
	for _, want := range []string{"├─ StructDecl List", "│  ├─ FieldDecl next : struct List *", "└─ FunctionDecl sum"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") != tree.Count() {
		t.Fatalf("%d lines for %d nodes", strings.Count(out, "\n"), tree.Count())
	}
}

func TestCursorTreeDepthAndKinds(t *testing.T) {
	tu := listUnit(t)
	flat, err := BuildCursorTree(tu.Cursor(), TreeOpts{MaxDepth: 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if flat.Count() != 3 {
		t.Fatalf("depth 1 has %d nodes", flat.Count())
	}

	fields, err := BuildCursorTree(tu.Cursor(), TreeOpts{Kinds: []kinds.CursorKind{kinds.CursorFieldDecl}, MainFileOnly: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var names []string
	for _, c := range fields.Children {
		names = append(names, c.Spelling)
	}
	if strings.Join(names, ",") != "next,value" {
		t.Fatalf("fields = %v", names)
	}

	var buf bytes.Buffer
	if err := FormatCursorTreeJSON(&buf, fields); err != nil {
		t.Fatalf("json: %v", err)
	}
	var back CursorNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil || back.Count() != fields.Count() {
		t.Fatalf("round trip = %d nodes, %v", back.Count(), err)
	}
}

func TestTokens(t *testing.T) {
	tu := listUnit(t)
	list, ok, err := tu.Cursor().FindFirst(func(c, _ clang.Cursor) bool { return c.Spelling() == "List" })
	if err != nil || !ok {
		t.Fatalf("find List: %v", err)
	}
	toks, err := tu.Tokenize(list.Extent())
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	defer toks.Close()
	cursors, err := tu.AnnotateTokens(toks)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	out, err := CollectTokens(toks, cursors)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(out) != 12 || out[0].Kind != "keyword" || out[0].Text != "struct" || out[0].Line != 1 || out[0].Col != 1 {
		t.Fatalf("tokens = %+v", out)
	}
	if out[1].Text != "List" || out[1].Cursor != "StructDecl" {
		t.Fatalf("token 1 = %+v", out[1])
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, out); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 12 || !strings.HasPrefix(lines[0], "  1: keyword") || !strings.HasSuffix(lines[1], "(StructDecl)") {
		t.Fatalf("pretty tokens:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, nil); err != nil || strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty json = %q, %v", buf.String(), err)
	}
}
