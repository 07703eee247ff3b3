// Package native describes the C calling surface of libclang as a Go
// interface. Values in this package mirror the C structs bit for bit so the
// cgo backend can pass them through unchanged; nothing outside this package
// and its backends looks inside them.
package native

import "errors"

// ErrUnavailable is returned by Open when the binary was built without the
// libclang backend.
var ErrUnavailable = errors.New("libclang backend not compiled in (build with -tags libclang)")

type (
	// Handle is an opaque pointer owned by libclang (CXIndex,
	// CXTranslationUnit, CXDiagnostic, CXFile, token buffers, ...).
	Handle uintptr

	// Cursor mirrors CXCursor.
	Cursor struct {
		Kind  int32
		Xdata int32
		Data  [3]uintptr
	}

	// Type mirrors CXType.
	Type struct {
		Kind int32
		Data [2]uintptr
	}

	// Comment mirrors CXComment.
	Comment struct {
		ASTNode uintptr
		TU      uintptr
	}

	// SourceLocation mirrors CXSourceLocation.
	SourceLocation struct {
		Ptr [2]uintptr
		Int uint32
	}

	// SourceRange mirrors CXSourceRange.
	SourceRange struct {
		Ptr   [2]uintptr
		Begin uint32
		End   uint32
	}

	// Token mirrors CXToken.
	Token struct {
		Int [4]uint32
		Ptr uintptr
	}
)

// Position is a decomposed source location.
type Position struct {
	File   Handle
	Line   uint32
	Column uint32
	Offset uint32
}

// Presumed is the #line-adjusted position of a location.
type Presumed struct {
	Filename string
	Line     uint32
	Column   uint32
}

// FileUniqueID mirrors CXFileUniqueID.
type FileUniqueID struct {
	Data [3]uint64
}

// UnsavedFile is an in-memory override for a file on disk.
type UnsavedFile struct {
	Filename string
	Contents []byte
}

// Version mirrors CXVersion. Negative components are absent.
type Version struct {
	Major    int32
	Minor    int32
	Subminor int32
}

// PlatformAvailability is one element of the array filled by
// clang_getCursorPlatformAvailability, with its strings already extracted.
type PlatformAvailability struct {
	Platform    string
	Introduced  Version
	Deprecated  Version
	Obsoleted   Version
	Unavailable bool
	Message     string
}

// AvailabilityHeader holds the scalar outputs of
// clang_getCursorPlatformAvailability.
type AvailabilityHeader struct {
	AlwaysDeprecated   bool
	DeprecatedMessage  string
	AlwaysUnavailable  bool
	UnavailableMessage string
}

// ResourceUsageEntry mirrors CXTUResourceUsageEntry.
type ResourceUsageEntry struct {
	Kind   int32
	Amount uint64
}

// TargetInfo is the decoded CXTargetInfo of a translation unit.
type TargetInfo struct {
	Triple       string
	PointerWidth int32
}

// KindClass selects one of the clang_is* cursor kind predicates.
type KindClass uint8

const (
	ClassDeclaration KindClass = iota
	ClassReference
	ClassExpression
	ClassStatement
	ClassAttribute
	ClassInvalid
	ClassTranslationUnit
	ClassPreprocessing
	ClassUnexposed
)

// CursorFlag selects one of the boolean cursor queries.
type CursorFlag uint8

const (
	FlagNull CursorFlag = iota
	FlagDefinition
	FlagBitField
	FlagVirtualBase
	FlagVirtual
	FlagPureVirtual
	FlagStatic
	FlagConst
	FlagDynamicCall
	FlagVariadic
	FlagAnonymousRecord
)

// Callback signatures the trampolines dispatch to. Results are the raw
// CXChildVisitResult / CXVisitorResult values.
type (
	VisitFunc      func(c, parent Cursor) int32
	RefVisitFunc   func(c Cursor, r SourceRange) int32
	FieldVisitFunc func(c Cursor) int32
	InclusionFunc  func(file Handle, stack []SourceLocation)
)
