package driver

import (
	"context"
	"errors"

	"clangview/internal/clang"
	"clangview/internal/diag"
	"clangview/internal/source"
	"clangview/internal/trace"
)

// Unit is a single parsed file together with the index that owns it, for
// commands that inspect one translation unit.
type Unit struct {
	Index   *clang.Index
	TU      *clang.TranslationUnit
	FileSet *source.FileSet

	loader *fileLoader
}

// OpenUnit parses path with the arguments opts resolves for it.
func OpenUnit(ctx context.Context, b *clang.Binding, path string, opts Options) (*Unit, error) {
	_, span := trace.Start(ctx, trace.ScopeFile, path)
	defer span.End("")
	ix, err := b.NewIndex(false, false)
	if err != nil {
		return nil, err
	}
	tu, err := ix.Parse(path, opts.argsFor(path), opts.Unsaved, opts.Flags)
	if err != nil {
		return nil, errors.Join(err, ix.Close())
	}
	fs := source.NewFileSet()
	if opts.BaseDir != "" {
		fs.SetBaseDir(opts.BaseDir)
	}
	return &Unit{Index: ix, TU: tu, FileSet: fs, loader: newFileLoader(fs, opts.Unsaved)}, nil
}

// Diagnostics converts the diagnostics of the unit into a bag.
func (u *Unit) Diagnostics(max int) (*diag.Bag, error) {
	bag := diag.NewBag(max)
	_, err := u.loader.collect(u.TU, bag)
	return bag, err
}

// Span converts r into a span of the unit's FileSet.
func (u *Unit) Span(r clang.SourceRange) source.Span {
	return u.loader.rangeSpan(r, u.TU.Path())
}

// Close releases the unit, then the index.
func (u *Unit) Close() error {
	return errors.Join(u.TU.Close(), u.Index.Close())
}
