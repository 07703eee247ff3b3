package fakeclang

import (
	"fmt"
	"strings"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

func (l *Lib) NumDiagnostics(tu native.Handle) int { return len(l.unit(tu).diags) }

func (l *Lib) GetDiagnostic(tu native.Handle, i int) native.Handle {
	u := l.unit(tu)
	if i < 0 || i >= len(u.diags) {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.diags[h] = &diagRef{u: u, d: u.diags[i], owned: true}
	return h
}

func (l *Lib) DisposeDiagnostic(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, ok := l.diags[h]
	if !ok {
		l.violate("diagnostic %#x released twice or never created", h)
		return
	}
	if !d.owned {
		// Diagnostics taken from a child set belong to their parent.
		return
	}
	delete(l.diags, h)
	l.disposed[KindDiagnostic]++
}

func (l *Lib) diag(h native.Handle) *diagRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, ok := l.diags[h]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released diagnostic %#x", h))
	}
	return d
}

func (l *Lib) DiagnosticSpelling(h native.Handle) string { return l.diag(h).d.message }

var severityWords = map[kinds.Severity]string{
	kinds.SeverityIgnored: "ignored",
	kinds.SeverityNote:    "note",
	kinds.SeverityWarning: "warning",
	kinds.SeverityError:   "error",
	kinds.SeverityFatal:   "fatal error",
}

// FormatDiagnostic renders a diagnostic the way clang's text printer does,
// e.g. "a.c:3:9: error: use of undeclared identifier 'x' [-Wfoo]".
func (l *Lib) FormatDiagnostic(h native.Handle, opts uint32) string {
	r := l.diag(h)
	d, u := r.d, r.u
	o := kinds.DisplayOptions(opts)
	var b strings.Builder
	if o&kinds.DisplaySourceLocation != 0 && d.file >= 0 && d.file < len(u.files) {
		f := u.files[d.file]
		line, col := f.lineCol(d.offset)
		fmt.Fprintf(&b, "%s:%d", f.path, line)
		if o&kinds.DisplayColumn != 0 {
			fmt.Fprintf(&b, ":%d", col)
		}
		if o&kinds.DisplaySourceRanges != 0 && len(d.ranges) > 0 {
			for _, rg := range d.ranges {
				rf := u.files[rg[0]]
				bl, bc := rf.lineCol(rg[1])
				el, ec := rf.lineCol(rg[2])
				fmt.Fprintf(&b, "{%d:%d-%d:%d}", bl, bc, el, ec)
			}
			b.WriteString(":")
		}
		b.WriteString(": ")
	}
	b.WriteString(severityWords[d.severity])
	b.WriteString(": ")
	b.WriteString(d.message)

	var extra []string
	if o&kinds.DisplayOption != 0 && d.option != "" {
		extra = append(extra, d.option)
	}
	switch {
	case o&kinds.DisplayCategoryName != 0 && d.category != 0:
		extra = append(extra, categoryNames[d.category])
	case o&kinds.DisplayCategoryID != 0 && d.category != 0:
		extra = append(extra, fmt.Sprint(d.category))
	}
	if len(extra) > 0 {
		b.WriteString(" [" + strings.Join(extra, ",") + "]")
	}
	return b.String()
}

func (l *Lib) DefaultDiagnosticDisplayOptions() uint32 {
	return uint32(kinds.DisplaySourceLocation | kinds.DisplayColumn | kinds.DisplayOption)
}

func (l *Lib) DiagnosticSeverity(h native.Handle) int32 { return int32(l.diag(h).d.severity) }

func (l *Lib) DiagnosticLocation(h native.Handle) native.SourceLocation {
	r := l.diag(h)
	return l.loc(r.u, r.d.file, r.d.offset)
}

func (l *Lib) DiagnosticOption(h native.Handle) (string, string) {
	opt := l.diag(h).d.option
	if opt == "" {
		return "", ""
	}
	return opt, "-Wno-" + strings.TrimPrefix(opt, "-W")
}

func (l *Lib) DiagnosticCategory(h native.Handle) uint32 { return l.diag(h).d.category }

func (l *Lib) DiagnosticCategoryText(h native.Handle) string {
	return categoryNames[l.diag(h).d.category]
}

func (l *Lib) DiagnosticNumRanges(h native.Handle) int { return len(l.diag(h).d.ranges) }

func (l *Lib) DiagnosticRange(h native.Handle, i int) native.SourceRange {
	r := l.diag(h)
	if i < 0 || i >= len(r.d.ranges) {
		return native.SourceRange{}
	}
	rg := r.d.ranges[i]
	return l.span(r.u, int(rg[0]), rg[1], rg[2])
}

func (l *Lib) DiagnosticNumFixIts(h native.Handle) int { return len(l.diag(h).d.fixits) }

func (l *Lib) DiagnosticFixIt(h native.Handle, i int) (native.SourceRange, string) {
	r := l.diag(h)
	if i < 0 || i >= len(r.d.fixits) {
		return native.SourceRange{}, ""
	}
	f := r.d.fixits[i]
	return l.span(r.u, f.file, f.begin, f.end), f.text
}

func (l *Lib) ChildDiagnostics(h native.Handle) native.Handle {
	r := l.diag(h)
	l.mu.Lock()
	defer l.mu.Unlock()
	if set, ok := l.setOf[r.d]; ok {
		return set
	}
	set := l.alloc()
	kids := make([]native.Handle, len(r.d.notes))
	for i, n := range r.d.notes {
		kh := l.alloc()
		l.diags[kh] = &diagRef{u: r.u, d: n}
		kids[i] = kh
	}
	l.sets[set] = kids
	l.setOf[r.d] = set
	return set
}

func (l *Lib) NumDiagnosticsInSet(set native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sets[set])
}

func (l *Lib) DiagnosticInSet(set native.Handle, i int) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	kids := l.sets[set]
	if i < 0 || i >= len(kids) {
		return 0
	}
	return kids[i]
}
