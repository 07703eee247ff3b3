// Package testkit holds checks shared by the tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"clangview/internal/diag"
	"clangview/internal/source"
)

// CheckSpan verifies that sp names a file of fs and lies within its
// content.
func CheckSpan(fs *source.FileSet, sp source.Span) error {
	if int(sp.File) >= fs.Len() {
		return fmt.Errorf("span %v: unknown file %d", sp, sp.File)
	}
	f := fs.Get(sp.File)
	if sp.End < sp.Start {
		return fmt.Errorf("span %v of %s ends before it starts", sp, f.Path)
	}
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	// Virtual files stand in for content that is not available.
	if f.Flags&source.FileVirtual != 0 && n == 0 {
		return nil
	}
	if sp.End > n {
		return fmt.Errorf("span %v beyond the %d bytes of %s", sp, n, f.Path)
	}
	return nil
}

// CheckDiagnosticSpans runs CheckSpan on every span of diags:
//  1. the primary span,
//  2. the span of each note,
//  3. the span of each fix edit.
func CheckDiagnosticSpans(fs *source.FileSet, diags []diag.Diagnostic) error {
	for i, d := range diags {
		if err := CheckSpan(fs, d.Primary); err != nil {
			return fmt.Errorf("diagnostic %d (%s) primary: %w", i, d.Code.ID(), err)
		}
		for j, n := range d.Notes {
			if err := CheckSpan(fs, n.Span); err != nil {
				return fmt.Errorf("diagnostic %d note %d: %w", i, j, err)
			}
		}
		for j, f := range d.Fixes {
			for k, e := range f.Edits {
				if err := CheckSpan(fs, e.Span); err != nil {
					return fmt.Errorf("diagnostic %d fix %d edit %d: %w", i, j, k, err)
				}
			}
		}
	}
	return nil
}
