package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/diagfmt"
	"clangview/internal/docgen"
	"clangview/internal/testkit/fakeclang"
)

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

// setupProject writes the fixture sources to a temp dir and makes the commands
// load a fake libclang.
func setupProject(t *testing.T) (*fakeclang.Lib, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "list.c"), fakeclang.ListC)
	writeFile(t, filepath.Join(dir, "doc.c"), docC)
	writeFile(t, filepath.Join(dir, "dep.h"), depH)
	writeFile(t, filepath.Join(dir, "sample.c"), fakeclang.SampleC)
	writeFile(t, filepath.Join(dir, "shapes.h"), fakeclang.ShapesH)

	l := fakeclang.New("17.0.6")
	l.AddSystemHeader("stddef.h", fakeclang.StddefH)
	old := openBinding
	openBinding = func() (*clang.Binding, error) { return clang.Load(l) }
	t.Cleanup(func() {
		openBinding = old
		if n := l.Live(); n != 0 {
			t.Errorf("%d handles leaked", n)
		}
		if v := l.Violations(); len(v) != 0 {
			t.Errorf("violations: %v", v)
		}
	})
	return l, dir
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--color", "off", "--quiet"}, args...)
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDiagReportsErrors(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "diag", "--format", "json", "--ui", "off", filepath.Join(dir, "list.c"))
	if code != 1 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var got diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.Count != 1 || !strings.Contains(got.Diagnostics[0].Message, "tag type") {
		t.Fatalf("diagnostics = %+v", got)
	}
	if got.Diagnostics[0].Location.StartLine != 6 {
		t.Fatalf("location = %+v", got.Diagnostics[0].Location)
	}
}

func TestDiagCleanFile(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "diag", "--ui", "off", filepath.Join(dir, "doc.c"))
	if code != 0 || strings.TrimSpace(out) != "" {
		t.Fatalf("exit = %d, stdout:\n%s\nstderr:\n%s", code, out, errOut)
	}
}

func TestDiagFlagConflict(t *testing.T) {
	_, dir := setupProject(t)
	code, _, errOut := run(t, "diag", "--no-warnings", "--warnings-as-errors", filepath.Join(dir, "doc.c"))
	if code != 2 || !strings.Contains(errOut, "cannot be used together") {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
}

func TestDocJSON(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "doc", "--format", "json", "--no-cache", "--ui", "off", filepath.Join(dir, "doc.c"))
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var docs []docgen.FileDoc
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %+v", docs)
	}
	f, ok := docs[0].Find("f")
	if !ok || f.Brief != "Brief." {
		t.Fatalf("f = %+v", f)
	}
}

func TestDocManifestCache(t *testing.T) {
	_, dir := setupProject(t)
	manifest := filepath.Join(dir, "clangview.toml")
	writeFile(t, manifest, `[sources]
include = ["doc.c"]

[cache]
enabled = true
dir = "cache"

[output]
format = "yaml"
`)
	for i := range 2 {
		code, out, errOut := run(t, "--config", manifest, "doc", "--ui", "off")
		if code != 0 {
			t.Fatalf("run %d: exit = %d, stderr:\n%s", i, code, errOut)
		}
		if !strings.Contains(out, "brief: Brief.") {
			t.Fatalf("run %d: output is not YAML:\n%s", i, out)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, "cache", "docs"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("cache entries = %v, %v", entries, err)
	}
}

func TestTokenize(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "tokenize", "--lines", "1", filepath.Join(dir, "list.c"))
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.Contains(lines[0], "keyword") || !strings.HasSuffix(lines[1], "(StructDecl)") {
		t.Fatalf("tokens:\n%s", out)
	}
}

func TestAST(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "ast", "--json", "--kind", "FunctionDecl", filepath.Join(dir, "sample.c"))
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var tree diagfmt.CursorNodeOutput
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := tree.Find("FunctionDecl", "main"); !ok {
		t.Fatalf("main not found in\n%s", out)
	}
	for _, c := range tree.Children {
		if c.Kind != "FunctionDecl" {
			t.Fatalf("unexpected top-level %s %s", c.Kind, c.Spelling)
		}
	}

	code, _, errOut = run(t, "ast", "--kind", "FunctionDcl", filepath.Join(dir, "sample.c"))
	if code != 2 || !strings.Contains(errOut, "FunctionDecl") {
		t.Fatalf("misspelled kind: exit = %d, stderr:\n%s", code, errOut)
	}
}

func TestRefs(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "refs", filepath.Join(dir, "sample.c"), "35:5")
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "VarDecl counter declared at ") || !strings.Contains(out, "1 reference(s)") {
		t.Fatalf("refs:\n%s", out)
	}

	code, _, _ = run(t, "refs", filepath.Join(dir, "sample.c"), "35")
	if code != 2 {
		t.Fatalf("bad position: exit = %d", code)
	}
}

func TestComplete(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "complete", "--json", "--prefix", "co", filepath.Join(dir, "sample.c"), "35:5")
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var got []completionOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var typed []string
	for _, c := range got {
		if !strings.HasPrefix(c.Typed, "co") {
			t.Fatalf("candidate %q ignores the prefix", c.Typed)
		}
		typed = append(typed, c.Typed)
	}
	if !slices.Contains(typed, "counter") {
		t.Fatalf("candidates = %v", typed)
	}
}

func TestCommands(t *testing.T) {
	l, dir := setupProject(t)
	list := filepath.Join(dir, "list.c")
	l.AddCompilationDatabase(dir, fakeclang.Command{
		Directory: dir,
		Filename:  list,
		Args:      []string{"clang", "-Iinc", "-c", list},
	})
	code, out, errOut := run(t, "commands", "--json", dir, list)
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var got []commandOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].File != list || !slices.Equal(got[0].Parse, []string{"-I" + filepath.Join(dir, "inc")}) {
		t.Fatalf("commands = %+v", got)
	}

	code, _, errOut = run(t, "commands", dir, filepath.Join(dir, "doc.c"))
	if code != 2 || !strings.Contains(errOut, "no compile command") {
		t.Fatalf("unknown file: exit = %d, stderr:\n%s", code, errOut)
	}
}

func TestVersion(t *testing.T) {
	setupProject(t)
	code, out, _ := run(t, "version")
	if code != 0 || !strings.Contains(out, "libclang:  clang version 17.0.6") {
		t.Fatalf("exit = %d, output:\n%s", code, out)
	}
}

func TestParsePositions(t *testing.T) {
	if l, c, err := parseLineCol("12:3"); err != nil || l != 12 || c != 3 {
		t.Fatalf("parseLineCol = %d, %d, %v", l, c, err)
	}
	for _, bad := range []string{"12", "0:1", "a:b", "3:0"} {
		if _, _, err := parseLineCol(bad); err == nil {
			t.Fatalf("parseLineCol(%q) should fail", bad)
		}
	}
	tests := []struct {
		in       string
		from, to int
		ok       bool
	}{
		{"", 0, 0, true},
		{"4", 4, 4, true},
		{"2:5", 2, 5, true},
		{"5:2", 0, 0, false},
		{"x", 0, 0, false},
	}
	for _, tt := range tests {
		from, to, err := parseLineRange(tt.in)
		if (err == nil) != tt.ok || from != tt.from || to != tt.to {
			t.Fatalf("parseLineRange(%q) = %d, %d, %v", tt.in, from, to, err)
		}
	}
}

func TestTraceFile(t *testing.T) {
	_, dir := setupProject(t)
	for _, mode := range []string{"stream", "ring"} {
		out := filepath.Join(t.TempDir(), "trace.log")
		code, _, errOut := run(t, "--trace", out, "--trace-mode", mode, "diag", "--ui", "off", filepath.Join(dir, "doc.c"))
		if code != 0 {
			t.Fatalf("%s: exit = %d, stderr:\n%s", mode, code, errOut)
		}
		data, err := os.ReadFile(out)
		if err != nil || !strings.Contains(string(data), "driver.diagnose") {
			t.Fatalf("%s: trace = %q, %v", mode, data, err)
		}
	}
}

func TestDiagFix(t *testing.T) {
	_, dir := setupProject(t)
	list := filepath.Join(dir, "list.c")
	code, _, errOut := run(t, "diag", "--ui", "off", "--fix", "--dry-run", list)
	if code != 1 || !strings.Contains(errOut, "would change") {
		t.Fatalf("dry run: exit = %d, stderr:\n%s", code, errOut)
	}
	if data, _ := os.ReadFile(list); string(data) != fakeclang.ListC {
		t.Fatalf("dry run changed the file:\n%s", data)
	}

	code, _, errOut = run(t, "diag", "--ui", "off", "--fix", list)
	if code != 1 || !strings.Contains(errOut, "fixed") {
		t.Fatalf("fix: exit = %d, stderr:\n%s", code, errOut)
	}
	data, err := os.ReadFile(list)
	if err != nil || !strings.Contains(string(data), "int sum(struct List *L)") {
		t.Fatalf("fixed file = %q, %v", data, err)
	}
	code, _, errOut = run(t, "diag", "--ui", "off", list)
	if code != 0 {
		t.Fatalf("after fix: exit = %d, stderr:\n%s", code, errOut)
	}
}

func TestDiagSarif(t *testing.T) {
	_, dir := setupProject(t)
	code, out, errOut := run(t, "diag", "--format", "sarif", "--ui", "off", filepath.Join(dir, "list.c"))
	if code != 1 {
		t.Fatalf("exit = %d, stderr:\n%s", code, errOut)
	}
	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				Level string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &log); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 || len(log.Runs[0].Results) != 1 || log.Runs[0].Results[0].Level != "error" {
		t.Fatalf("sarif = %+v", log)
	}
}
