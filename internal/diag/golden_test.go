package diag

import (
	"testing"

	"clangview/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/src/list.c", []byte("a\nb\n"), 0)
	sysFile := fs.Add("/usr/include/stdio.h", []byte("x\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     ClgDiagnostic,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: sysFile, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     DocMissingComment,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error CLG1001 src/list.c:1:1 first line second\n" +
		"note CLG1001 src/list.c:2:1 note line\n" +
		"warning DOC2001 src/list.c:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	short := FormatShortDiagnostics(diags, fs, true)
	if want := "note CLG1001 /usr/include/stdio.h:1:1 skip me"; !containsLine(short, want) {
		t.Fatalf("short output should keep system headers:\n%s", short)
	}
}

func containsLine(out, line string) bool {
	for start := 0; start <= len(out); {
		end := start
		for end < len(out) && out[end] != '\n' {
			end++
		}
		if out[start:end] == line {
			return true
		}
		start = end + 1
	}
	return false
}
