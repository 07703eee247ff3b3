package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"clangview/internal/diag"
	"clangview/internal/source"
	"clangview/internal/testkit/fakeclang"
)

// listBag holds the tag-mismatch error of fakeclang.ListC with a note and a
// fix-it.
func listBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.AddVirtual("/home/user/project/src/list.c", []byte(fakeclang.ListC))
	primary := fs.SpanOf(id, source.LineCol{Line: 6, Col: 9}, source.LineCol{Line: 6, Col: 14})
	d := diag.NewError(diag.ClgDiagnostic, primary, "use of 'List' with tag type that does not match previous declaration").
		WithNote(fs.SpanOf(id, source.LineCol{Line: 1, Col: 8}, source.LineCol{Line: 1, Col: 12}), "previous use is here").
		WithFix("replace with \"struct\"", diag.FixEdit{Span: primary, NewText: "struct"})
	d.Option = "-Wmismatched-tags"
	bag := diag.NewBag(10)
	bag.Add(d)
	return bag, fs
}

func TestPathModes(t *testing.T) {
	bag, fs := listBag(t)
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/list.c:6:9:"},
		{PathModeRelative, "src/list.c:6:9:"},
		{PathModeBasename, "list.c:6:9:"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Fatalf("output does not start with %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestPrettyContextAndCaret(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})
	out := buf.String()

	for _, want := range []string{
		"list.c:6:9: ERROR CLG1001: use of 'List' with tag type that does not match previous declaration [-Wmismatched-tags]\n",
		" 5 | \n",
		" 6 | int sum(union List *L) {\n   |         ^~~~~\n",
		" 7 |     return 0;\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "note:") || strings.Contains(out, "fix:") {
		t.Fatalf("notes and fixes are off by default:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colors leaked into plain output")
	}
}

func TestPrettyNotesFixesPreview(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true, ShowPreview: true})
	out := buf.String()
	for _, want := range []string{
		"  note: list.c:1:8: previous use is here\n",
		" 1 | struct List {\n   |        ^~~~\n",
		"  fix: replace with \"struct\"\n",
		"    - int sum(union List *L) {\n",
		"    + int sum(struct List *L) {\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrettyColorAndWidth(t *testing.T) {
	bag, fs := listBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true, Width: 10})
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes:\n%q", out)
	}
	if !strings.Contains(out, "int sum(u…") {
		t.Fatalf("long source lines should be clipped:\n%s", out)
	}
}

func TestCaretLine(t *testing.T) {
	cases := []struct {
		text     string
		from, to uint32
		want     string
	}{
		{"abc", 1, 1, "^"},
		{"abc", 2, 4, " ^~"},
		{"\tx = 1", 2, 3, "\t^"},
		{"αβ x", 6, 7, "   ^"},
		{"ab", 9, 12, "  ^"},
	}
	for _, tc := range cases {
		if got := caretLine(tc.text, tc.from, tc.to); got != tc.want {
			t.Errorf("caretLine(%q, %d, %d) = %q, want %q", tc.text, tc.from, tc.to, got, tc.want)
		}
	}
}
