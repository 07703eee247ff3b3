package testkit

import (
	"strings"
	"testing"

	"clangview/internal/diag"
	"clangview/internal/source"
)

func TestCheckDiagnosticSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("a.c", []byte("int x;\n"), 0)
	ok := source.Span{File: id, Start: 4, End: 5}
	d := diag.NewError(diag.ClgDiagnostic, ok, "m").WithNote(ok, "n")
	if err := CheckDiagnosticSpans(fs, []diag.Diagnostic{d}); err != nil {
		t.Fatalf("valid spans: %v", err)
	}

	tests := []struct {
		name string
		d    diag.Diagnostic
		want string
	}{
		{"past end", diag.NewError(diag.ClgDiagnostic, source.Span{File: id, Start: 4, End: 9}, "m"), "beyond"},
		{"reversed", diag.NewError(diag.ClgDiagnostic, source.Span{File: id, Start: 5, End: 4}, "m"), "ends before"},
		{"unknown file", diag.NewError(diag.ClgDiagnostic, source.Span{File: 7}, "m"), "unknown file"},
		{"fix edit", d.WithFix("f", diag.FixEdit{Span: source.Span{File: id, Start: 2, End: 40}}), "fix 0 edit 0"},
	}
	for _, tt := range tests {
		err := CheckDiagnosticSpans(fs, []diag.Diagnostic{tt.d})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: err = %v, want %q", tt.name, err, tt.want)
		}
	}

	empty := fs.AddVirtual("gone.c", nil)
	if err := CheckSpan(fs, source.Span{File: empty, Start: 3, End: 6}); err != nil {
		t.Fatalf("virtual placeholder: %v", err)
	}
}
