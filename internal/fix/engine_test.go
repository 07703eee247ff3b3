package fix

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clangview/internal/diag"
	"clangview/internal/source"
)

const sumC = "int sum(union List *L);\nint x = 1\n"

func load(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sum.c")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return fs, id, path
}

func replace(id source.FileID, start, end uint32, text string) diag.Diagnostic {
	sp := source.Span{File: id, Start: start, End: end}
	return diag.NewError(diag.ClgDiagnostic, sp, "msg").
		WithFix("replace with "+text, diag.FixEdit{Span: sp, NewText: text})
}

func TestApplyAll(t *testing.T) {
	fs, id, path := load(t, sumC)
	semi := uint32(strings.Index(sumC, "1\n") + 1)
	diags := []diag.Diagnostic{
		replace(id, 8, 13, "struct"),
		replace(id, semi, semi, ";"),
	}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(res.Applied) != 2 || len(res.Skipped) != 0 {
		t.Fatalf("applied %+v, skipped %+v", res.Applied, res.Skipped)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].EditCount != 2 {
		t.Fatalf("changes = %+v", res.FileChanges)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := "int sum(struct List *L);\nint x = 1;\n"; string(got) != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestApplySkipsConflicts(t *testing.T) {
	fs, id, _ := load(t, sumC)
	diags := []diag.Diagnostic{
		replace(id, 8, 13, "struct"),
		replace(id, 10, 18, "enum List"),
	}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 || !strings.Contains(res.Skipped[0].Reason, "conflicts") {
		t.Fatalf("applied %+v, skipped %+v", res.Applied, res.Skipped)
	}
}

func TestApplyOnceAndDryRun(t *testing.T) {
	fs, id, path := load(t, sumC)
	diags := []diag.Diagnostic{
		replace(id, 20, 21, "list"),
		replace(id, 8, 13, "struct"),
	}
	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].Title != "replace with struct" {
		t.Fatalf("applied = %+v", res.Applied)
	}
	if !strings.HasPrefix(string(res.FileChanges[0].Content), "int sum(struct List") {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
	got, _ := os.ReadFile(path)
	if string(got) != sumC {
		t.Fatalf("dry run wrote the file: %q", got)
	}
}

func TestApplyByID(t *testing.T) {
	fs, id, _ := load(t, sumC)
	d := replace(id, 8, 13, "struct")
	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: d.FixID(0), DryRun: true})
	if err != nil || len(res.Applied) != 1 {
		t.Fatalf("apply by id = %+v, %v", res, err)
	}
	res, err = Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: "nope"})
	if !errors.Is(err, ErrNoFixes) || len(res.Skipped) != 1 || res.Skipped[0].Reason != "fix id not found" {
		t.Fatalf("unknown id = %+v, %v", res, err)
	}
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(""))
	d := replace(id, 0, 0, ";")
	candidates, skips := gatherCandidates([]diag.Diagnostic{d, d})
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 1 || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("skips = %+v", skips)
	}

	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) || len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is not on disk" {
		t.Fatalf("virtual file = %+v, %v", res, err)
	}
}

func TestSpansConflict(t *testing.T) {
	edit := func(start, end uint32) diag.FixEdit {
		return diag.FixEdit{Span: source.Span{Start: start, End: end}}
	}
	tests := []struct {
		a, b diag.FixEdit
		want bool
	}{
		{edit(1, 1), edit(1, 1), false},
		{edit(2, 2), edit(1, 4), true},
		{edit(1, 1), edit(1, 4), false},
		{edit(1, 3), edit(3, 5), false},
		{edit(1, 4), edit(3, 5), true},
	}
	for _, tt := range tests {
		if got := spansConflict(tt.a, tt.b); got != tt.want {
			t.Fatalf("spansConflict(%v, %v) = %v", tt.a.Span, tt.b.Span, got)
		}
	}
}
