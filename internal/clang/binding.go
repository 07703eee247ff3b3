// Package clang is an object model over the libclang C API.
//
// A Binding wraps one loaded library. Index, TranslationUnit, Tokens,
// Diagnostics, CodeCompletionResults, CompilationDatabase, PrintingPolicy
// and PlatformAvailabilities own native memory and must be closed. Cursor,
// Type, Comment, SourceLocation, SourceRange, File and Token are values
// borrowed from their translation unit; using one after the unit is closed
// panics with ErrReleased.
//
// libclang is not thread safe per index. Use one Index per goroutine.
package clang

import (
	"fmt"
	"sync"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
	"clangview/internal/native/libclang"
)

// Binding is a loaded libclang with its version-resolved kind registry.
// It is immutable after Load.
type Binding struct {
	lib  native.Library
	raw  string
	caps libver.Capabilities
	reg  *kinds.Registry
}

// Load resolves the version of lib and builds its kind registry. An
// unrecognizable version string is an error: without it no kind tag can be
// decoded safely.
func Load(lib native.Library) (*Binding, error) {
	raw := lib.Version()
	v, err := libver.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("clang: load: %w", err)
	}
	caps := libver.For(v)
	return &Binding{lib: lib, raw: raw, caps: caps, reg: kinds.NewRegistry(caps)}, nil
}

var (
	defaultOnce sync.Once
	defaultB    *Binding
	defaultErr  error
)

// Open loads the linked libclang once per process. Later calls return the
// same Binding or the same error.
func Open() (*Binding, error) {
	defaultOnce.Do(func() {
		lib, err := libclang.Open()
		if err != nil {
			defaultErr = err
			return
		}
		defaultB, defaultErr = Load(lib)
	})
	return defaultB, defaultErr
}

func (b *Binding) Version() libver.Version           { return b.caps.Version }
func (b *Binding) RawVersion() string                { return b.raw }
func (b *Binding) Capabilities() libver.Capabilities { return b.caps }
func (b *Binding) Registry() *kinds.Registry         { return b.reg }
func (b *Binding) Has(f libver.Feature) bool         { return b.caps.Has(f) }

func (b *Binding) DefaultEditingOptions() kinds.ParseFlags {
	return kinds.ParseFlags(b.lib.DefaultEditingOptions())
}

// DefaultDiagnosticDisplayOptions returns the options libclang formats with
// by default.
func (b *Binding) DefaultDiagnosticDisplayOptions() kinds.DisplayOptions {
	return kinds.DisplayOptions(b.lib.DefaultDiagnosticDisplayOptions())
}

// DefaultCodeCompleteOptions returns libclang's default completion flags.
func (b *Binding) DefaultCodeCompleteOptions() kinds.CompleteFlags {
	return kinds.CompleteFlags(b.lib.DefaultCodeCompleteOptions())
}

func (b *Binding) require(f libver.Feature) error {
	if b.caps.Has(f) {
		return nil
	}
	return &UnsupportedError{Feature: f, Have: b.caps.Version}
}
