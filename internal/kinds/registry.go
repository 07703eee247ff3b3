package kinds

import (
	"fmt"

	"clangview/internal/libver"
)

// UnknownError reports a native tag with no entry in the registry of the
// running library.
type UnknownError struct {
	Family string
	Value  int64
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unrecognized %s kind %d", e.Family, e.Value)
}

// Registry decodes native kind tags for one library release. It is built once
// from the capability table and never mutated afterwards.
type Registry struct {
	caps    libver.Capabilities
	tuTag   int32
	ompHigh bool
}

// NewRegistry builds the decoder for the release described by caps.
func NewRegistry(caps libver.Capabilities) *Registry {
	return &Registry{
		caps:    caps,
		tuTag:   caps.TranslationUnitTag,
		ompHigh: caps.OpenMPMasked,
	}
}

// Capabilities returns the table the registry was built from.
func (r *Registry) Capabilities() libver.Capabilities { return r.caps }

// Cursor decodes a native CXCursorKind.
func (r *Registry) Cursor(v int32) (CursorKind, error) {
	if v == r.tuTag {
		return CursorTranslationUnit, nil
	}
	k := CursorKind(v)
	if k == CursorTranslationUnit {
		// 350 is unassigned before the renumbering.
		return 0, &UnknownError{Family: "cursor", Value: int64(v)}
	}
	if k >= CursorOMPParallelMaskedDirective && k <= CursorOMPErrorDirective && !r.ompHigh {
		return 0, &UnknownError{Family: "cursor", Value: int64(v)}
	}
	if _, ok := cursorNames[k]; !ok {
		return 0, &UnknownError{Family: "cursor", Value: int64(v)}
	}
	return k, nil
}

// NativeCursor encodes k back into the tag the running library expects.
func (r *Registry) NativeCursor(k CursorKind) int32 {
	if k == CursorTranslationUnit {
		return r.tuTag
	}
	return int32(k)
}

// Type decodes a native CXTypeKind.
func (r *Registry) Type(v int32) (TypeKind, error) {
	k := TypeKind(v)
	if _, ok := typeNames[k]; !ok {
		return 0, &UnknownError{Family: "type", Value: int64(v)}
	}
	return k, nil
}

// Comment decodes a native CXCommentKind.
func (r *Registry) Comment(v int32) (CommentKind, error) {
	k := CommentKind(v)
	if _, ok := commentNames[k]; !ok {
		return 0, &UnknownError{Family: "comment", Value: int64(v)}
	}
	return k, nil
}

// Token decodes a native CXTokenKind.
func (r *Registry) Token(v int32) (TokenKind, error) {
	k := TokenKind(v)
	if k < TokenPunctuation || k > TokenComment {
		return 0, &UnknownError{Family: "token", Value: int64(v)}
	}
	return k, nil
}

// Severity decodes a native CXDiagnosticSeverity.
func (r *Registry) Severity(v int32) (Severity, error) {
	s := Severity(v)
	if s < SeverityIgnored || s > SeverityFatal {
		return 0, &UnknownError{Family: "severity", Value: int64(v)}
	}
	return s, nil
}

// Chunk decodes a native CXCompletionChunkKind.
func (r *Registry) Chunk(v int32) (ChunkKind, error) {
	k := ChunkKind(v)
	if k < ChunkOptional || k > ChunkVerticalSpace {
		return 0, &UnknownError{Family: "completion chunk", Value: int64(v)}
	}
	return k, nil
}
