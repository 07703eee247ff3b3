package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.c", []byte("int a;"), 0)
	id2 := fs.Add("./main.c", []byte("int b;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("ids = %d, %d", id1, id2)
	}
	latest, ok := fs.GetLatest("main.c")
	if !ok || latest != id2 {
		t.Fatalf("latest = %d, %v", latest, ok)
	}
	if string(fs.Get(id1).Content) != "int a;" {
		t.Fatalf("first version lost: %q", fs.Get(id1).Content)
	}
	f, ok := fs.GetByPath("main.c")
	if !ok || string(f.Content) != "int b;" {
		t.Fatalf("GetByPath = %v, %v", f, ok)
	}
	if fs.Get(id1).Path != fs.Get(id2).Path {
		t.Fatalf("paths differ: %q %q", fs.Get(id1).Path, fs.Get(id2).Path)
	}
	if fs.Get(id2).Hash != xxhash.Sum64String("int b;") {
		t.Fatalf("hash mismatch")
	}
	if fs.Len() != 2 {
		t.Fatalf("len = %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.c", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v", file.LineIdx)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("FileVirtual flag not set")
	}
	if file.LineCount() != 2 {
		t.Errorf("line count = %d", file.LineCount())
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()
	cases := []struct {
		name    string
		content string
		idx     int
		lines   int
	}{
		{"empty.c", "", 0, 0},
		{"no_newline.c", "hello", 0, 1},
		{"only_newline.c", "\n", 1, 1},
	}
	for _, tc := range cases {
		f := fs.Get(fs.AddVirtual(tc.name, []byte(tc.content)))
		if len(f.LineIdx) != tc.idx || f.LineCount() != tc.lines {
			t.Errorf("%s: LineIdx = %v, lines = %d", tc.name, f.LineIdx, f.LineCount())
		}
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.c", []byte("α\nint x;\n\nend"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}},
		{3, LineCol{2, 1}},
		{7, LineCol{2, 5}},
		{9, LineCol{2, 7}},
		{10, LineCol{3, 1}},
		{11, LineCol{4, 1}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("offset %d = %+v, want %+v", tc.off, start, tc.want)
		}
		if got := fs.Get(id).Offset(tc.want); got != tc.off {
			t.Errorf("Offset(%+v) = %d, want %d", tc.want, got, tc.off)
		}
	}
}

func TestSpanOfClamps(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("s.c", []byte("int x;\nint y;\n"))

	sp := fs.SpanOf(id, LineCol{2, 5}, LineCol{2, 6})
	if sp.Start != 11 || sp.End != 12 {
		t.Fatalf("span = %v", sp)
	}
	sp = fs.SpanOf(id, LineCol{1, 5}, LineCol{1, 99})
	if sp.End != 6 {
		t.Fatalf("column past the line end should clamp: %v", sp)
	}
	sp = fs.SpanOf(id, LineCol{9, 1}, LineCol{9, 1})
	if !sp.Empty() || sp.Start != 14 {
		t.Fatalf("line past the end should clamp to EOF: %v", sp)
	}
	sp = fs.SpanOf(id, LineCol{2, 3}, LineCol{1, 1})
	if !sp.Empty() {
		t.Fatalf("reversed positions should give an empty span: %v", sp)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("g.c", []byte("first\nsecond\nthird")))
	for line, want := range map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""} {
		if got := f.GetLine(line); got != want {
			t.Errorf("line %d = %q, want %q", line, got, want)
		}
	}
}

func TestNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed || string(normalized) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q, %v", normalized, changed)
	}
	if _, changed := normalizeCRLF([]byte("plain\n")); changed {
		t.Fatalf("plain content reported as changed")
	}
	stripped, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !had || string(stripped) != "x\n" {
		t.Fatalf("removeBOM = %q, %v", stripped, had)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		raw  string
		flag FileFlags
	}{
		{"plain.c", "a\nb\n", 0},
		{"bom.c", "\xEF\xBB\xBFa\nb\n", FileHadBOM},
		{"crlf.c", "a\r\nb\r\n", FileNormalizedCRLF},
	}
	fs := NewFileSet()
	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, []byte(tc.raw), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		id, err := fs.Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", tc.name, err)
		}
		f := fs.Get(id)
		if string(f.Content) != "a\nb\n" || f.Flags != tc.flag {
			t.Errorf("%s: content %q flags %b", tc.name, f.Content, f.Flags)
		}
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.c")); err == nil {
		t.Fatalf("loading a missing file should fail")
	}
}
