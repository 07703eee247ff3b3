package clang

import (
	"clangview/internal/kinds"
	"clangview/internal/native"
)

// Index is a set of translation units that share declarations.
type Index struct {
	b   *Binding
	own *owned[native.Handle]
}

// NewIndex creates an index. excludeDecls hides declarations from PCH
// files; displayDiagnostics makes libclang print diagnostics to stderr.
func (b *Binding) NewIndex(excludeDecls, displayDiagnostics bool) (*Index, error) {
	own, err := acquire(b.lib.CreateIndex(excludeDecls, displayDiagnostics), b.lib.DisposeIndex)
	if err != nil {
		return nil, &ConstructionError{Op: "create index"}
	}
	return &Index{b: b, own: own}, nil
}

// Close releases the index once every translation unit parsed from it is
// closed too.
func (ix *Index) Close() error { return ix.own.Close() }

func (ix *Index) Binding() *Binding { return ix.b }

func (ix *Index) SetGlobalOptions(opts kinds.GlobalOptions) {
	ix.b.lib.SetGlobalOptions(ix.own.borrow(), uint32(opts))
}

func (ix *Index) GlobalOptions() kinds.GlobalOptions {
	return kinds.GlobalOptions(ix.b.lib.GlobalOptions(ix.own.borrow()))
}

// Parse parses path with the given compiler arguments. An empty path lets
// libclang take the source file from args.
func (ix *Index) Parse(path string, args []string, unsaved []UnsavedFile, flags kinds.ParseFlags) (*TranslationUnit, error) {
	h, code := ix.b.lib.ParseTranslationUnit(ix.own.borrow(), path, args, nativeUnsaved(unsaved), uint32(flags))
	if code != int32(kinds.ErrorSuccess) || h == 0 {
		return nil, &ConstructionError{Op: "parse", Input: path, Code: code, Reason: kinds.ErrorCode(code).String()}
	}
	return ix.adopt(h, path)
}

// LoadAST loads a translation unit written by TranslationUnit.Save.
func (ix *Index) LoadAST(path string) (*TranslationUnit, error) {
	h, code := ix.b.lib.CreateTranslationUnit(ix.own.borrow(), path)
	if code != int32(kinds.ErrorSuccess) || h == 0 {
		return nil, &ConstructionError{Op: "load ast", Input: path, Code: code, Reason: kinds.ErrorCode(code).String()}
	}
	return ix.adopt(h, path)
}

func (ix *Index) adopt(h native.Handle, path string) (*TranslationUnit, error) {
	lib := ix.b.lib
	dropIndex := ix.own.retain()
	own, err := acquire(h, func(h native.Handle) {
		lib.DisposeTranslationUnit(h)
		dropIndex()
	})
	if err != nil {
		dropIndex()
		return nil, &ConstructionError{Op: "parse", Input: path}
	}
	return &TranslationUnit{b: ix.b, index: ix, own: own, path: path}, nil
}
