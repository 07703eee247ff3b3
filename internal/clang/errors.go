package clang

import (
	"errors"
	"fmt"

	"clangview/internal/libver"
)

var (
	// ErrReleased is the panic value for use of a handle after its final release.
	ErrReleased = errors.New("clang: use of released handle")
	// ErrNoUnit is the panic value for native queries on the zero Cursor,
	// SourceLocation or SourceRange.
	ErrNoUnit = errors.New("clang: view has no translation unit")
	// ErrOutOfRange is returned by At on a bad index.
	ErrOutOfRange = errors.New("clang: index out of range")
	// ErrKindMismatch is returned by kind-guarded accessors.
	ErrKindMismatch = errors.New("clang: accessor does not apply to this kind")
	// ErrNotImplemented matches every *NotImplementedError.
	ErrNotImplemented = errors.New("clang: not implemented")
	// ErrUnsupported matches every *UnsupportedError.
	ErrUnsupported = errors.New("clang: not supported by the loaded libclang")
)

// ConstructionError reports that libclang refused to build a resource.
type ConstructionError struct {
	Op    string // "parse", "load ast", "load compilation database", "create index"
	Input string
	Code  int32
	// Reason is the decoded Code, when the family is known.
	Reason string
}

func (e *ConstructionError) Error() string {
	msg := "clang: " + e.Op
	if e.Input != "" {
		msg += " " + e.Input
	}
	msg += " failed"
	if e.Reason != "" {
		msg += ": " + e.Reason
	} else if e.Code != 0 {
		msg += fmt.Sprintf(": code %d", e.Code)
	}
	return msg
}

// NotImplementedError names a libclang feature the binding does not expose.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return "clang: " + e.Feature + " is not implemented"
}

func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

// UnsupportedError is returned by accessors gated on a newer libclang.
type UnsupportedError struct {
	Feature libver.Feature
	Have    libver.Version
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("clang: %s needs libclang %s, have %s",
		e.Feature, libver.Introduced(e.Feature), e.Have)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// NativeError reports a failed mutating call (save, reparse).
type NativeError struct {
	Op     string
	Path   string
	Code   int32
	Detail string
}

func (e *NativeError) Error() string {
	msg := fmt.Sprintf("clang: %s %s: code %d", e.Op, e.Path, e.Code)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func kindMismatch(op string, k fmt.Stringer) error {
	return fmt.Errorf("%w: %s on %s", ErrKindMismatch, op, k)
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, n)
}
