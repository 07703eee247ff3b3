package clang

import (
	"clangview/internal/kinds"
	"clangview/internal/native"
)

// Diagnostic is one message libclang produced. Diagnostics taken from a
// Diagnostics set are released by its Close; child diagnostics belong to
// their parent.
type Diagnostic struct {
	tu     *TranslationUnit
	own    *owned[native.Handle]
	h      native.Handle
	parent *Diagnostic
}

func (d *Diagnostic) handle() native.Handle {
	if d.own != nil {
		return d.own.borrow()
	}
	d.parent.handle()
	return d.h
}

func (d *Diagnostic) lib() native.Library { return d.tu.b.lib }

func (tu *TranslationUnit) ownedDiagnostic(h native.Handle) (*Diagnostic, error) {
	own, err := acquire(h, tu.b.lib.DisposeDiagnostic)
	if err != nil {
		return nil, err
	}
	return &Diagnostic{tu: tu, own: own}, nil
}

func (d *Diagnostic) Spelling() string { return d.lib().DiagnosticSpelling(d.handle()) }

// Format renders d as clang would print it.
func (d *Diagnostic) Format(opts kinds.DisplayOptions) string {
	return d.lib().FormatDiagnostic(d.handle(), uint32(opts))
}

func (d *Diagnostic) String() string {
	return d.Format(kinds.DisplayOptions(d.lib().DefaultDiagnosticDisplayOptions()))
}

func (d *Diagnostic) Severity() (kinds.Severity, error) {
	return d.tu.b.reg.Severity(d.lib().DiagnosticSeverity(d.handle()))
}

func (d *Diagnostic) Location() SourceLocation {
	return SourceLocation{loc: d.lib().DiagnosticLocation(d.handle()), tu: d.tu}
}

// Option returns the warning flag that enables d and the one that disables
// it, e.g. "-Wunused-variable" and "-Wno-unused-variable".
func (d *Diagnostic) Option() (enable, disable string) {
	return d.lib().DiagnosticOption(d.handle())
}

func (d *Diagnostic) CategoryID() int { return int(d.lib().DiagnosticCategory(d.handle())) }

func (d *Diagnostic) CategoryText() string { return d.lib().DiagnosticCategoryText(d.handle()) }

func (d *Diagnostic) Ranges() []SourceRange {
	h := d.handle()
	out := make([]SourceRange, d.lib().DiagnosticNumRanges(h))
	for i := range out {
		out[i] = SourceRange{r: d.lib().DiagnosticRange(h, i), tu: d.tu}
	}
	return out
}

// FixIt is a suggested replacement of Range by Text.
type FixIt struct {
	Range SourceRange
	Text  string
}

func (d *Diagnostic) FixIts() []FixIt {
	h := d.handle()
	out := make([]FixIt, d.lib().DiagnosticNumFixIts(h))
	for i := range out {
		r, text := d.lib().DiagnosticFixIt(h, i)
		out[i] = FixIt{Range: SourceRange{r: r, tu: d.tu}, Text: text}
	}
	return out
}

// Children returns the notes attached to d. They stay valid as long as d.
func (d *Diagnostic) Children() []*Diagnostic {
	set := d.lib().ChildDiagnostics(d.handle())
	if set == 0 {
		return nil
	}
	n := d.lib().NumDiagnosticsInSet(set)
	out := make([]*Diagnostic, 0, n)
	for i := range n {
		if h := d.lib().DiagnosticInSet(set, i); h != 0 {
			out = append(out, &Diagnostic{tu: d.tu, h: h, parent: d})
		}
	}
	return out
}

// Diagnostics is the set of diagnostics of a translation unit.
type Diagnostics struct {
	items   []*Diagnostic
	release func()
}

// Diagnostics collects the diagnostics of the unit. Close the result.
func (tu *TranslationUnit) Diagnostics() (*Diagnostics, error) {
	h := tu.handle()
	n := tu.b.lib.NumDiagnostics(h)
	ds := &Diagnostics{items: make([]*Diagnostic, 0, n), release: tu.own.retain()}
	for i := range n {
		d, err := tu.ownedDiagnostic(tu.b.lib.GetDiagnostic(h, i))
		if err != nil {
			ds.Close()
			return nil, &ConstructionError{Op: "diagnostic", Input: tu.path}
		}
		ds.items = append(ds.items, d)
	}
	return ds, nil
}

func (ds *Diagnostics) Len() int { return len(ds.items) }

func (ds *Diagnostics) At(i int) (*Diagnostic, error) {
	if i < 0 || i >= len(ds.items) {
		return nil, outOfRange(i, len(ds.items))
	}
	return ds.items[i], nil
}

func (ds *Diagnostics) All() []*Diagnostic { return append([]*Diagnostic(nil), ds.items...) }

// HasErrors reports whether any diagnostic is an error or fatal.
func (ds *Diagnostics) HasErrors() bool {
	for _, d := range ds.items {
		if s, err := d.Severity(); err == nil && s >= kinds.SeverityError {
			return true
		}
	}
	return false
}

// Close disposes every diagnostic in the set.
func (ds *Diagnostics) Close() error {
	for _, d := range ds.items {
		d.own.Close()
	}
	ds.release()
	return nil
}
