package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"clangview/internal/diag"
	"clangview/internal/source"
	"clangview/internal/testkit/fakeclang"
)

func decode(t *testing.T, buf *bytes.Buffer) DiagnosticsOutput {
	t.Helper()
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	return out
}

func TestJSONBasic(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := decode(t, &buf)
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "CLG1001" || d.Option != "-Wmismatched-tags" {
		t.Fatalf("diagnostic = %+v", d)
	}
	loc := d.Location
	if loc.File != "list.c" || loc.StartLine != 6 || loc.StartCol != 9 || loc.EndCol != 14 {
		t.Fatalf("location = %+v", loc)
	}
	if loc.EndByte-loc.StartByte != 5 {
		t.Fatalf("byte range = %d-%d", loc.StartByte, loc.EndByte)
	}
	if d.Notes != nil || d.Fixes != nil {
		t.Fatalf("notes and fixes were not requested")
	}
}

func TestJSONNotesFixesPreviews(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	opts := JSONOpts{PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true, IncludePreviews: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	d := decode(t, &buf).Diagnostics[0]
	if len(d.Notes) != 1 || d.Notes[0].Message != "previous use is here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
	if d.Notes[0].Location.StartLine != 0 {
		t.Fatalf("positions were not requested")
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != "struct" || edit.AfterLines[0] != "int sum(struct List *L) {" || edit.BeforeLines[0] != "int sum(union List *L) {" {
		t.Fatalf("edit = %+v", edit)
	}
}

func TestJSONMaxAndDropped(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("list.c", []byte(fakeclang.ListC))
	bag := diag.NewBag(2)
	for i := range 4 {
		bag.Add(diag.NewWarning(diag.DocMissingComment, fs.SpanOf(id, lc(uint32(i+1), 1), lc(uint32(i+1), 2)), "undocumented"))
	}
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := decode(t, &buf)
	if out.Count != 1 || out.Dropped != 2 {
		t.Fatalf("count = %d dropped = %d", out.Count, out.Dropped)
	}
	if out.Diagnostics[0].Severity != "WARNING" {
		t.Fatalf("severity = %s", out.Diagnostics[0].Severity)
	}
}
