package clang

import (
	"fmt"
	"sync/atomic"

	"fortio.org/safecast"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// TranslationUnit is one parsed source file with everything it includes.
// Cursors, types, comments, files and locations obtained from it are only
// valid until Close, and until the next Reparse.
type TranslationUnit struct {
	b     *Binding
	index *Index
	own   *owned[native.Handle]
	path  string
	gen   atomic.Uint64
}

// Close releases the unit once every Tokens, Diagnostics and other owned
// resource derived from it is closed. Later calls are no-ops.
func (tu *TranslationUnit) Close() error { return tu.own.Close() }

func (tu *TranslationUnit) Binding() *Binding { return tu.b }
func (tu *TranslationUnit) Index() *Index     { return tu.index }
func (tu *TranslationUnit) Path() string      { return tu.path }

// Generation counts successful reparses. Views taken under an older
// generation must not be used.
func (tu *TranslationUnit) Generation() uint64 { return tu.gen.Load() }

func (tu *TranslationUnit) handle() native.Handle { return tu.own.borrow() }

// lib is the library for views of tu. It panics with ErrReleased once tu
// is closed and with ErrNoUnit for the zero value of a view.
func (tu *TranslationUnit) lib() native.Library {
	if tu == nil {
		panic(ErrNoUnit)
	}
	tu.own.borrow()
	return tu.b.lib
}

// Spelling returns the name of the main file as libclang reports it.
func (tu *TranslationUnit) Spelling() string {
	return tu.b.lib.TranslationUnitSpelling(tu.handle())
}

// Cursor returns the root cursor.
func (tu *TranslationUnit) Cursor() Cursor {
	c, err := tu.cursor(tu.b.lib.TranslationUnitCursor(tu.handle()))
	if err != nil {
		// the registry always knows the translation unit tag of its own version
		panic(err)
	}
	return c
}

// CursorAt returns the innermost cursor covering loc.
func (tu *TranslationUnit) CursorAt(loc SourceLocation) (Cursor, error) {
	return tu.cursor(tu.b.lib.GetCursor(tu.handle(), loc.loc))
}

// File looks up a file that takes part in the unit.
func (tu *TranslationUnit) File(name string) (File, bool) {
	h := tu.b.lib.GetFile(tu.handle(), name)
	if h == 0 {
		return File{}, false
	}
	return File{h: h, tu: tu}, true
}

// MainFile returns the file the unit was parsed from.
func (tu *TranslationUnit) MainFile() (File, bool) {
	return tu.File(tu.Spelling())
}

// Location returns the location of a 1-based line and column in f. Out of
// range positions yield a null location.
func (tu *TranslationUnit) Location(f File, line, column int) SourceLocation {
	l, err1 := safecast.Conv[uint32](line)
	c, err2 := safecast.Conv[uint32](column)
	if err1 != nil || err2 != nil {
		return tu.nullLocation()
	}
	return SourceLocation{loc: tu.b.lib.GetLocation(tu.handle(), f.h, l, c), tu: tu}
}

// LocationOffset returns the location of a byte offset in f.
func (tu *TranslationUnit) LocationOffset(f File, offset int) SourceLocation {
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		return tu.nullLocation()
	}
	return SourceLocation{loc: tu.b.lib.GetLocationForOffset(tu.handle(), f.h, off), tu: tu}
}

func (tu *TranslationUnit) nullLocation() SourceLocation {
	return SourceLocation{loc: tu.b.lib.NullLocation(), tu: tu}
}

func (tu *TranslationUnit) DefaultSaveOptions() uint32 {
	return tu.b.lib.DefaultSaveOptions(tu.handle())
}

// Save serializes the unit to path. LoadAST reads it back.
func (tu *TranslationUnit) Save(path string) error {
	h := tu.handle()
	code := tu.b.lib.SaveTranslationUnit(h, path, tu.b.lib.DefaultSaveOptions(h))
	if code != int32(kinds.SaveErrorNone) {
		return &NativeError{Op: "save", Path: path, Code: code, Detail: kinds.SaveError(code).String()}
	}
	return nil
}

func (tu *TranslationUnit) DefaultReparseOptions() uint32 {
	return tu.b.lib.DefaultReparseOptions(tu.handle())
}

// Reparse re-reads the sources, overriding files listed in unsaved. Every
// view taken before the call is invalid afterwards. On failure libclang
// leaves the unit unusable; close it.
func (tu *TranslationUnit) Reparse(unsaved []UnsavedFile) error {
	h := tu.handle()
	code := tu.b.lib.ReparseTranslationUnit(h, nativeUnsaved(unsaved), tu.b.lib.DefaultReparseOptions(h))
	if code != 0 {
		return &NativeError{Op: "reparse", Path: tu.path, Code: code, Detail: kinds.ErrorCode(code).String()}
	}
	tu.gen.Add(1)
	return nil
}

// ResourceUsage is one entry of the unit's memory accounting.
type ResourceUsage struct {
	Kind   kinds.ResourceUsageKind
	Name   string
	Amount uint64
}

func (tu *TranslationUnit) ResourceUsage() []ResourceUsage {
	entries := tu.b.lib.ResourceUsage(tu.handle())
	out := make([]ResourceUsage, len(entries))
	for i, e := range entries {
		out[i] = ResourceUsage{
			Kind:   kinds.ResourceUsageKind(e.Kind),
			Name:   tu.b.lib.ResourceUsageName(e.Kind),
			Amount: e.Amount,
		}
	}
	return out
}

// Inclusion is a file pulled into the unit and the chain of #include
// directives that brought it in, innermost first. The main file has an
// empty stack.
type Inclusion struct {
	File  File
	Stack []SourceLocation
}

func (i Inclusion) Depth() int { return len(i.Stack) }

func (tu *TranslationUnit) Inclusions() []Inclusion {
	var out []Inclusion
	tu.b.lib.GetInclusions(tu.handle(), func(file native.Handle, stack []native.SourceLocation) {
		inc := Inclusion{File: File{h: file, tu: tu}, Stack: make([]SourceLocation, len(stack))}
		for i, l := range stack {
			inc.Stack[i] = SourceLocation{loc: l, tu: tu}
		}
		out = append(out, inc)
	})
	return out
}

// TargetInfo describes the target the unit was compiled for.
type TargetInfo struct {
	Triple       string
	PointerWidth int
}

func (tu *TranslationUnit) TargetInfo() (TargetInfo, error) {
	if err := tu.b.require(libver.FeatureTargetInfo); err != nil {
		return TargetInfo{}, err
	}
	info, ok := tu.b.lib.TargetInfo(tu.handle())
	if !ok {
		return TargetInfo{}, fmt.Errorf("clang: no target info for %s", tu.path)
	}
	return TargetInfo{Triple: info.Triple, PointerWidth: int(info.PointerWidth)}, nil
}

func (tu *TranslationUnit) String() string {
	return "TranslationUnit(" + tu.path + ")"
}
