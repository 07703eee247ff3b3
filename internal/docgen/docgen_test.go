package docgen_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"clangview/internal/clang"
	"clangview/internal/diag"
	"clangview/internal/docgen"
	"clangview/internal/testkit/fakeclang"
)

func sampleDoc(t *testing.T) docgen.FileDoc {
	t.Helper()
	l := fakeclang.Sample("17.0.6")
	b, err := clang.Load(l)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ix, err := b.NewIndex(false, false)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	defer ix.Close()
	tu, err := ix.Parse("sample.c", nil, nil, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer tu.Close()
	doc, err := docgen.Extract(tu)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return doc
}

func TestExtractStructuredComment(t *testing.T) {
	doc := sampleDoc(t)
	add, ok := doc.Find("add")
	if !ok {
		t.Fatalf("add not extracted: %+v", doc.Symbols)
	}
	if add.Kind != "FunctionDecl" || !add.HasComment || !add.Defined {
		t.Fatalf("add = %+v", add)
	}
	if add.Brief != "Adds two numbers." {
		t.Fatalf("brief = %q", add.Brief)
	}
	if len(add.Paragraphs) != 1 || add.Paragraphs[0] != "Uses integer arithmetic on signed values." {
		t.Fatalf("paragraphs = %q", add.Paragraphs)
	}
	if len(add.Params) != 2 {
		t.Fatalf("params = %+v", add.Params)
	}
	a, b := add.Params[0], add.Params[1]
	if a.Name != "a" || a.Direction != "in" || a.Index != 0 || a.Text != "first operand" {
		t.Fatalf("param a = %+v", a)
	}
	if b.Name != "b" || b.Direction != "" || b.Index != 1 || b.Text != "second operand" {
		t.Fatalf("param b = %+v", b)
	}
	if add.Returns != "the sum" || strings.Join(add.ParamNames, ",") != "a,b" {
		t.Fatalf("returns = %q, param names = %v", add.Returns, add.ParamNames)
	}
}

func TestExtractDeclarations(t *testing.T) {
	doc := sampleDoc(t)
	count := 0
	for _, s := range doc.Symbols {
		if s.Name == "add" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("add appears %d times", count)
	}
	counter, ok := doc.Find("counter")
	if !ok || !counter.Internal || counter.HasComment {
		t.Fatalf("counter = %+v", counter)
	}
	flags, ok := doc.Find("Flags")
	if !ok || flags.Kind != "StructDecl" || len(flags.Members) < 2 {
		t.Fatalf("Flags = %+v", flags)
	}
	if flags.Members[0].Name != "ready" || flags.Members[1].Name != "mode" {
		t.Fatalf("members = %+v", flags.Members)
	}
	if _, ok := doc.Find("Point"); ok {
		t.Fatalf("declarations of included headers must be skipped")
	}
	if strings.Join(doc.Deps, ",") != "shapes.h" {
		t.Fatalf("deps = %v", doc.Deps)
	}
}

func TestLintSample(t *testing.T) {
	var missing []string
	for _, f := range docgen.Lint(sampleDoc(t)) {
		if f.Code != diag.DocMissingComment || f.Severity != diag.SevWarning {
			t.Errorf("unexpected finding %+v", f)
			continue
		}
		missing = append(missing, f.Symbol)
	}
	if strings.Join(missing, ",") != "Flags,legacy,modern,main" {
		t.Fatalf("undocumented = %v", missing)
	}
}

func TestLintComments(t *testing.T) {
	doc := docgen.FileDoc{Path: "f.c", Symbols: []docgen.Symbol{
		{
			Name: "copy", Kind: "FunctionDecl", Line: 3, Col: 5, HasComment: true, Brief: "Copies.",
			ParamNames: []string{"dst", "src", "n"},
			Params:     []docgen.Param{{Name: "dst", Index: 0}, {Name: "source", Index: -1}},
		},
		{Name: "empty", Kind: "FunctionDecl", Line: 9, Col: 6, HasComment: true},
		{Name: "hidden", Kind: "FunctionDecl", Internal: true},
		{Name: "MAX", Kind: "MacroDefinition"},
	}}
	var got []string
	for _, f := range docgen.Lint(doc) {
		got = append(got, f.Code.ID()+" "+f.Symbol)
	}
	want := []string{"DOC2002 copy", "DOC2003 copy", "DOC2003 copy", "DOC2004 empty"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("findings = %v, want %v", got, want)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := docgen.Text(&buf, []docgen.FileDoc{sampleDoc(t)}, docgen.TextOpts{}); err != nil {
		t.Fatalf("text: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "sample.c\n") {
		t.Fatalf("missing file header:\n%s", out)
	}
	for _, want := range []string{"FunctionDecl add", "Adds two numbers.", "a [in]  first operand", "Returns: the sum"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "legacy") {
		t.Fatalf("undocumented symbols listed by default")
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("escape codes without color")
	}

	buf.Reset()
	docgen.Text(&buf, []docgen.FileDoc{sampleDoc(t)}, docgen.TextOpts{Undocumented: true})
	if !strings.Contains(buf.String(), "FunctionDecl legacy") {
		t.Fatalf("undocumented symbols missing:\n%s", buf.String())
	}
}

func TestJSONAndYAML(t *testing.T) {
	docs := []docgen.FileDoc{sampleDoc(t)}
	var buf bytes.Buffer
	if err := docgen.Render(&buf, docs, docgen.FormatJSON, docgen.TextOpts{}); err != nil {
		t.Fatalf("json: %v", err)
	}
	var back []docgen.FileDoc
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(back) != 1 || len(back[0].Symbols) != len(docs[0].Symbols) {
		t.Fatalf("json lost symbols")
	}

	buf.Reset()
	if err := docgen.Render(&buf, docs, docgen.FormatYAML, docgen.TextOpts{}); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	back = nil
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	add, ok := back[0].Find("add")
	if !ok || add.Brief != "Adds two numbers." || add.Params[0].Direction != "in" {
		t.Fatalf("yaml add = %+v", add)
	}

	buf.Reset()
	docgen.JSON(&buf, nil)
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty json = %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]docgen.Format{"": docgen.FormatText, "JSON": docgen.FormatJSON, "yaml": docgen.FormatYAML} {
		if got, err := docgen.ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := docgen.ParseFormat("html"); err == nil {
		t.Fatalf("expected error")
	}
}
