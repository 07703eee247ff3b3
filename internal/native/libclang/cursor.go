//go:build libclang

package libclang

/*
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"clangview/internal/native"
)

func (l *Lib) NullCursor() native.Cursor { return goCursor(C.clang_getNullCursor()) }

func (l *Lib) EqualCursors(a, b native.Cursor) bool {
	return C.clang_equalCursors(cCursor(a), cCursor(b)) != 0
}

func (l *Lib) HashCursor(c native.Cursor) uint32 { return uint32(C.clang_hashCursor(cCursor(c))) }

func (l *Lib) CursorKindSpelling(kind int32) string {
	return str(C.clang_getCursorKindSpelling(C.enum_CXCursorKind(kind)))
}

func (l *Lib) KindIs(kind int32, class native.KindClass) bool {
	k := C.enum_CXCursorKind(kind)
	var r C.uint
	switch class {
	case native.ClassDeclaration:
		r = C.clang_isDeclaration(k)
	case native.ClassReference:
		r = C.clang_isReference(k)
	case native.ClassExpression:
		r = C.clang_isExpression(k)
	case native.ClassStatement:
		r = C.clang_isStatement(k)
	case native.ClassAttribute:
		r = C.clang_isAttribute(k)
	case native.ClassInvalid:
		r = C.clang_isInvalid(k)
	case native.ClassTranslationUnit:
		r = C.clang_isTranslationUnit(k)
	case native.ClassPreprocessing:
		r = C.clang_isPreprocessing(k)
	case native.ClassUnexposed:
		r = C.clang_isUnexposed(k)
	}
	return r != 0
}

func (l *Lib) CursorFlag(c native.Cursor, f native.CursorFlag) bool {
	cc := cCursor(c)
	switch f {
	case native.FlagNull:
		return C.clang_Cursor_isNull(cc) != 0
	case native.FlagDefinition:
		return C.clang_isCursorDefinition(cc) != 0
	case native.FlagBitField:
		return C.clang_Cursor_isBitField(cc) != 0
	case native.FlagVirtualBase:
		return C.clang_isVirtualBase(cc) != 0
	case native.FlagVirtual:
		return C.clang_CXXMethod_isVirtual(cc) != 0
	case native.FlagPureVirtual:
		return C.clang_CXXMethod_isPureVirtual(cc) != 0
	case native.FlagStatic:
		return C.clang_CXXMethod_isStatic(cc) != 0
	case native.FlagConst:
		return C.clang_CXXMethod_isConst(cc) != 0
	case native.FlagDynamicCall:
		return C.clang_Cursor_isDynamicCall(cc) != 0
	case native.FlagVariadic:
		return C.clang_Cursor_isVariadic(cc) != 0
	case native.FlagAnonymousRecord:
		if l.sym.anonymousRecord == nil {
			return false
		}
		return C.cv_cursorToUnsigned(l.sym.anonymousRecord, cc) != 0
	}
	return false
}

func (l *Lib) CursorLocation(c native.Cursor) native.SourceLocation {
	return goLoc(C.clang_getCursorLocation(cCursor(c)))
}

func (l *Lib) CursorExtent(c native.Cursor) native.SourceRange {
	return goRange(C.clang_getCursorExtent(cCursor(c)))
}

func (l *Lib) CursorSpelling(c native.Cursor) string {
	return str(C.clang_getCursorSpelling(cCursor(c)))
}

func (l *Lib) CursorDisplayName(c native.Cursor) string {
	return str(C.clang_getCursorDisplayName(cCursor(c)))
}

func (l *Lib) CursorUSR(c native.Cursor) string { return str(C.clang_getCursorUSR(cCursor(c))) }

func (l *Lib) CursorMangling(c native.Cursor) string {
	return str(C.clang_Cursor_getMangling(cCursor(c)))
}

func (l *Lib) CursorType(c native.Cursor) native.Type {
	return goType(C.clang_getCursorType(cCursor(c)))
}

func (l *Lib) CursorResultType(c native.Cursor) native.Type {
	return goType(C.clang_getCursorResultType(cCursor(c)))
}

func (l *Lib) TypedefDeclUnderlyingType(c native.Cursor) native.Type {
	return goType(C.clang_getTypedefDeclUnderlyingType(cCursor(c)))
}

func (l *Lib) EnumDeclIntegerType(c native.Cursor) native.Type {
	return goType(C.clang_getEnumDeclIntegerType(cCursor(c)))
}

func (l *Lib) EnumConstantDeclValue(c native.Cursor) int64 {
	return int64(C.clang_getEnumConstantDeclValue(cCursor(c)))
}

func (l *Lib) EnumConstantDeclUnsignedValue(c native.Cursor) uint64 {
	return uint64(C.clang_getEnumConstantDeclUnsignedValue(cCursor(c)))
}

func (l *Lib) FieldDeclBitWidth(c native.Cursor) int32 {
	return int32(C.clang_getFieldDeclBitWidth(cCursor(c)))
}

func (l *Lib) OffsetOfField(c native.Cursor) int64 {
	return int64(C.clang_Cursor_getOffsetOfField(cCursor(c)))
}

func (l *Lib) CursorNumArguments(c native.Cursor) int32 {
	return int32(C.clang_Cursor_getNumArguments(cCursor(c)))
}

func (l *Lib) CursorArgument(c native.Cursor, i int) native.Cursor {
	return goCursor(C.clang_Cursor_getArgument(cCursor(c), C.uint(i)))
}

func (l *Lib) NumOverloadedDecls(c native.Cursor) int {
	return int(C.clang_getNumOverloadedDecls(cCursor(c)))
}

func (l *Lib) OverloadedDecl(c native.Cursor, i int) native.Cursor {
	return goCursor(C.clang_getOverloadedDecl(cCursor(c), C.uint(i)))
}

func (l *Lib) OverriddenCursors(c native.Cursor) []native.Cursor {
	var arr *C.CXCursor
	var n C.uint
	C.clang_getOverriddenCursors(cCursor(c), &arr, &n)
	if arr == nil {
		return nil
	}
	defer C.clang_disposeOverriddenCursors(arr)
	out := make([]native.Cursor, int(n))
	for i, oc := range unsafe.Slice(arr, int(n)) {
		out[i] = goCursor(oc)
	}
	return out
}

func (l *Lib) SemanticParent(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getCursorSemanticParent(cCursor(c)))
}

func (l *Lib) LexicalParent(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getCursorLexicalParent(cCursor(c)))
}

func (l *Lib) Referenced(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getCursorReferenced(cCursor(c)))
}

func (l *Lib) Definition(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getCursorDefinition(cCursor(c)))
}

func (l *Lib) CanonicalCursor(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getCanonicalCursor(cCursor(c)))
}

func (l *Lib) SpecializedCursorTemplate(c native.Cursor) native.Cursor {
	return goCursor(C.clang_getSpecializedCursorTemplate(cCursor(c)))
}

func (l *Lib) TemplateCursorKind(c native.Cursor) int32 {
	return int32(C.clang_getTemplateCursorKind(cCursor(c)))
}

func (l *Lib) CursorLinkage(c native.Cursor) int32 {
	return int32(C.clang_getCursorLinkage(cCursor(c)))
}

func (l *Lib) CursorAvailability(c native.Cursor) int32 {
	return int32(C.clang_getCursorAvailability(cCursor(c)))
}

func (l *Lib) CursorLanguage(c native.Cursor) int32 {
	return int32(C.clang_getCursorLanguage(cCursor(c)))
}

func (l *Lib) CXXAccessSpecifier(c native.Cursor) int32 {
	return int32(C.clang_getCXXAccessSpecifier(cCursor(c)))
}

func (l *Lib) IncludedFile(c native.Cursor) native.Handle {
	return handle(C.clang_getIncludedFile(cCursor(c)))
}

func (l *Lib) RawCommentText(c native.Cursor) string {
	return str(C.clang_Cursor_getRawCommentText(cCursor(c)))
}

func (l *Lib) BriefCommentText(c native.Cursor) string {
	return str(C.clang_Cursor_getBriefCommentText(cCursor(c)))
}

func (l *Lib) ParsedComment(c native.Cursor) native.Comment {
	return goComment(C.clang_Cursor_getParsedComment(cCursor(c)))
}

func (l *Lib) CursorCompletionString(c native.Cursor) native.Handle {
	return handle(C.clang_getCursorCompletionString(cCursor(c)))
}

func goVersion(v C.CXVersion) native.Version {
	return native.Version{Major: int32(v.Major), Minor: int32(v.Minor), Subminor: int32(v.Subminor)}
}

func (l *Lib) CursorPlatformAvailability(c native.Cursor) (native.AvailabilityHeader, native.Handle, int) {
	cc := cCursor(c)
	n := int(C.clang_getCursorPlatformAvailability(cc, nil, nil, nil, nil, nil, 0))

	var hdr native.AvailabilityHeader
	var deprecated, unavailable C.int
	var depMsg, unavailMsg C.CXString
	var buf *C.CXPlatformAvailability
	if n > 0 {
		buf = (*C.CXPlatformAvailability)(C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(C.CXPlatformAvailability{}))))
	}
	n = int(C.clang_getCursorPlatformAvailability(cc, &deprecated, &depMsg, &unavailable, &unavailMsg, buf, C.int(n)))
	hdr.AlwaysDeprecated = deprecated != 0
	hdr.DeprecatedMessage = str(depMsg)
	hdr.AlwaysUnavailable = unavailable != 0
	hdr.UnavailableMessage = str(unavailMsg)
	return hdr, handle(unsafe.Pointer(buf)), n
}

func (l *Lib) PlatformAvailabilityAt(buf native.Handle, i int) native.PlatformAvailability {
	a := unsafe.Slice((*C.CXPlatformAvailability)(ptr(buf)), i+1)[i]
	return native.PlatformAvailability{
		Platform:    borrowed(a.Platform),
		Introduced:  goVersion(a.Introduced),
		Deprecated:  goVersion(a.Deprecated),
		Obsoleted:   goVersion(a.Obsoleted),
		Unavailable: a.Unavailable != 0,
		Message:     borrowed(a.Message),
	}
}

func (l *Lib) DisposePlatformAvailability(buf native.Handle, n int) {
	if buf == 0 {
		return
	}
	arr := (*C.CXPlatformAvailability)(ptr(buf))
	view := unsafe.Slice(arr, n)
	for i := range view {
		C.clang_disposeCXPlatformAvailability(&view[i])
	}
	C.free(unsafe.Pointer(arr))
}

func (l *Lib) VisitChildren(c native.Cursor, fn native.VisitFunc) uint32 {
	var r C.uint
	native.Frames.With(fn, func(token uintptr) {
		r = C.cv_visitChildren(cCursor(c), C.uintptr_t(token))
	})
	return uint32(r)
}

func (l *Lib) FindReferencesInFile(c native.Cursor, file native.Handle, fn native.RefVisitFunc) int32 {
	var r C.CXResult
	native.Frames.With(fn, func(token uintptr) {
		r = C.cv_findReferencesInFile(cCursor(c), C.CXFile(ptr(file)), C.uintptr_t(token))
	})
	return int32(r)
}

func (l *Lib) VarDeclInitializer(c native.Cursor) native.Cursor {
	if l.sym.varDeclInit == nil {
		return l.NullCursor()
	}
	return goCursor(C.cv_cursorToCursor(l.sym.varDeclInit, cCursor(c)))
}

// Printing policies.

func (l *Lib) CursorPrintingPolicy(c native.Cursor) native.Handle {
	if l.sym.policyGet == nil {
		return 0
	}
	return handle(C.cv_cursorPrintingPolicy(l.sym.policyGet, cCursor(c)))
}

func (l *Lib) DisposePrintingPolicy(p native.Handle) {
	if l.sym.policyDispose == nil {
		return
	}
	C.cv_disposePrintingPolicy(l.sym.policyDispose, ptr(p))
}

func (l *Lib) PrintingPolicyProperty(p native.Handle, prop int32) uint32 {
	if l.sym.policyProperty == nil {
		return 0
	}
	return uint32(C.cv_policyProperty(l.sym.policyProperty, ptr(p), C.int(prop)))
}

func (l *Lib) SetPrintingPolicyProperty(p native.Handle, prop int32, v uint32) {
	if l.sym.policySetProperty == nil {
		return
	}
	C.cv_setPolicyProperty(l.sym.policySetProperty, ptr(p), C.int(prop), C.uint(v))
}

func (l *Lib) CursorPrettyPrinted(c native.Cursor, p native.Handle) string {
	if l.sym.prettyPrinted == nil {
		return ""
	}
	return str(C.cv_prettyPrinted(l.sym.prettyPrinted, cCursor(c), ptr(p)))
}
