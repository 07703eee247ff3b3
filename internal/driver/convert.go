package driver

import (
	"fmt"
	"sync"

	"fortio.org/safecast"

	"clangview/internal/clang"
	"clangview/internal/diag"
	"clangview/internal/kinds"
	"clangview/internal/source"
)

// fileLoader maps the file names libclang reports to FileSet entries,
// loading each file once. Files that cannot be read become empty virtual
// files so that spans still carry a path.
type fileLoader struct {
	fs *source.FileSet

	mu  sync.Mutex
	ids map[string]source.FileID
	// over holds unsaved buffers, which win over the disk.
	over map[string][]byte
}

func newFileLoader(fs *source.FileSet, unsaved []clang.UnsavedFile) *fileLoader {
	l := &fileLoader{fs: fs, ids: make(map[string]source.FileID), over: make(map[string][]byte)}
	for _, u := range unsaved {
		l.over[u.Filename] = u.Contents
	}
	return l
}

func (l *fileLoader) id(path string) source.FileID {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id, ok := l.ids[path]; ok {
		return id
	}
	var id source.FileID
	if b, ok := l.over[path]; ok {
		id = l.fs.AddVirtual(path, b)
	} else if loaded, err := l.fs.Load(path); err == nil {
		id = loaded
	} else {
		id = l.fs.AddVirtual(path, nil)
	}
	l.ids[path] = id
	return id
}

// forget drops path so that the next lookup reloads it.
func (l *fileLoader) forget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ids, path)
}

func lineCol(line, col int) source.LineCol {
	ln, err := safecast.Conv[uint32](max(line, 1))
	if err != nil {
		ln = 1
	}
	c, err := safecast.Conv[uint32](max(col, 1))
	if err != nil {
		c = 1
	}
	return source.LineCol{Line: ln, Col: c}
}

// pointSpan is the empty span at loc, or at the start of fallback when loc
// has no file.
func (l *fileLoader) pointSpan(loc clang.SourceLocation, fallback string) source.Span {
	if loc.IsNull() {
		return source.Span{File: l.id(fallback)}
	}
	pos := loc.Expansion()
	if pos.File.IsZero() {
		return source.Span{File: l.id(fallback)}
	}
	id := l.id(pos.File.Name())
	lc := lineCol(pos.Line, pos.Column)
	return l.fs.SpanOf(id, lc, lc)
}

// rangeSpan converts r. Ranges spanning two files keep only the start.
func (l *fileLoader) rangeSpan(r clang.SourceRange, fallback string) source.Span {
	if r.IsNull() {
		return source.Span{File: l.id(fallback)}
	}
	start, end := r.Start().Expansion(), r.End().Expansion()
	if start.File.IsZero() {
		return source.Span{File: l.id(fallback)}
	}
	id := l.id(start.File.Name())
	if !end.File.Equal(start.File) {
		lc := lineCol(start.Line, start.Column)
		return l.fs.SpanOf(id, lc, lc)
	}
	return l.fs.SpanOf(id, lineCol(start.Line, start.Column), lineCol(end.Line, end.Column))
}

// severityOf maps a libclang severity. Ignored diagnostics report false.
func severityOf(s kinds.Severity) (diag.Severity, diag.Code, bool) {
	switch s {
	case kinds.SeverityNote:
		return diag.SevInfo, diag.ClgInfo, true
	case kinds.SeverityWarning:
		return diag.SevWarning, diag.ClgDiagnostic, true
	case kinds.SeverityError:
		return diag.SevError, diag.ClgDiagnostic, true
	case kinds.SeverityFatal:
		return diag.SevError, diag.ClgFatal, true
	}
	return 0, 0, false
}

// convert turns one libclang diagnostic into a diag.Diagnostic. The
// primary span is the first range when it starts at the location, the
// location otherwise. Children become notes and fix-its become one fix
// each.
func (l *fileLoader) convert(d *clang.Diagnostic, mainFile string) (diag.Diagnostic, bool, error) {
	sev, err := d.Severity()
	if err != nil {
		return diag.Diagnostic{}, false, err
	}
	dsev, code, ok := severityOf(sev)
	if !ok {
		return diag.Diagnostic{}, false, nil
	}
	loc := d.Location()
	primary := l.pointSpan(loc, mainFile)
	for _, r := range d.Ranges() {
		sp := l.rangeSpan(r, mainFile)
		if sp.File == primary.File && sp.Start == primary.Start {
			primary = sp
			break
		}
	}
	out := diag.New(dsev, code, primary, d.Spelling())
	if enable, _ := d.Option(); enable != "" {
		out.Option = enable
	}
	for _, child := range d.Children() {
		out = out.WithNote(l.pointSpan(child.Location(), mainFile), child.Spelling())
	}
	for _, fix := range d.FixIts() {
		title := fmt.Sprintf("replace with %q", fix.Text)
		if fix.Text == "" {
			title = "remove"
		}
		out = out.WithFix(title, diag.FixEdit{Span: l.rangeSpan(fix.Range, mainFile), NewText: fix.Text})
	}
	return out, true, nil
}

// collect adds the diagnostics of tu to bag and reports whether any was
// an error.
func (l *fileLoader) collect(tu *clang.TranslationUnit, bag *diag.Bag) (bool, error) {
	ds, err := tu.Diagnostics()
	if err != nil {
		return false, err
	}
	defer ds.Close()
	hasErrors := false
	for _, d := range ds.All() {
		out, ok, err := l.convert(d, tu.Path())
		if err != nil {
			return hasErrors, err
		}
		if !ok {
			continue
		}
		if out.Severity >= diag.SevError {
			hasErrors = true
		}
		bag.Add(out)
	}
	return hasErrors, nil
}

// ioDiagnostic reports a file the driver could not handle at all.
func (l *fileLoader) ioDiagnostic(path string, code diag.Code, err error) diag.Diagnostic {
	return diag.NewError(code, source.Span{File: l.id(path)}, err.Error())
}
