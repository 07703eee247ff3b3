//go:build libclang

// Package libclang is the cgo backend of native.Library. It links against
// libclang at build time; functions newer than the oldest supported release
// are looked up with dlsym so that an older library never has an absent
// symbol called.
package libclang

/*
#cgo LDFLAGS: -lclang -ldl
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"clangview/internal/native"
)

// Lib implements native.Library over the linked libclang.
type Lib struct {
	sym symbols
}

type symbols struct {
	visitFields       unsafe.Pointer
	namedType         unsafe.Pointer
	unqualifiedType   unsafe.Pointer
	typedefName       unsafe.Pointer
	anonymousRecord   unsafe.Pointer
	varDeclInit       unsafe.Pointer
	fileUniqueID      unsafe.Pointer
	commandFilename   unsafe.Pointer
	targetInfo        unsafe.Pointer
	targetTriple      unsafe.Pointer
	targetWidth       unsafe.Pointer
	targetDispose     unsafe.Pointer
	policyGet         unsafe.Pointer
	policyDispose     unsafe.Pointer
	policyProperty    unsafe.Pointer
	policySetProperty unsafe.Pointer
	prettyPrinted     unsafe.Pointer
}

var _ native.Library = (*Lib)(nil)

// Open resolves the optional symbols of the linked library.
func Open() (native.Library, error) {
	l := &Lib{}
	l.sym = symbols{
		visitFields:       lookup("clang_Type_visitFields"),
		namedType:         lookup("clang_Type_getNamedType"),
		unqualifiedType:   lookup("clang_getUnqualifiedType"),
		typedefName:       lookup("clang_getTypedefName"),
		anonymousRecord:   lookup("clang_Cursor_isAnonymousRecordDecl"),
		varDeclInit:       lookup("clang_Cursor_getVarDeclInitializer"),
		fileUniqueID:      lookup("clang_getFileUniqueID"),
		commandFilename:   lookup("clang_CompileCommand_getFilename"),
		targetInfo:        lookup("clang_getTranslationUnitTargetInfo"),
		targetTriple:      lookup("clang_TargetInfo_getTriple"),
		targetWidth:       lookup("clang_TargetInfo_getPointerWidth"),
		targetDispose:     lookup("clang_TargetInfo_dispose"),
		policyGet:         lookup("clang_getCursorPrintingPolicy"),
		policyDispose:     lookup("clang_PrintingPolicy_dispose"),
		policyProperty:    lookup("clang_PrintingPolicy_getProperty"),
		policySetProperty: lookup("clang_PrintingPolicy_setProperty"),
		prettyPrinted:     lookup("clang_getCursorPrettyPrinted"),
	}
	return l, nil
}

func lookup(name string) unsafe.Pointer {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return C.cv_sym(cs)
}

// str extracts a CXString and disposes it.
func str(s C.CXString) string {
	defer C.clang_disposeString(s)
	p := C.clang_getCString(s)
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// borrowed copies a CXString that is owned by a parent structure.
func borrowed(s C.CXString) string {
	p := C.clang_getCString(s)
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func ptr(h native.Handle) unsafe.Pointer { return unsafe.Pointer(uintptr(h)) }

func handle(p unsafe.Pointer) native.Handle { return native.Handle(uintptr(p)) }

func tu(h native.Handle) C.CXTranslationUnit { return C.CXTranslationUnit(ptr(h)) }

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func cCursor(c native.Cursor) C.CXCursor { return *(*C.CXCursor)(unsafe.Pointer(&c)) }

func goCursor(c C.CXCursor) native.Cursor { return *(*native.Cursor)(unsafe.Pointer(&c)) }

func cType(t native.Type) C.CXType { return *(*C.CXType)(unsafe.Pointer(&t)) }

func goType(t C.CXType) native.Type { return *(*native.Type)(unsafe.Pointer(&t)) }

func cComment(c native.Comment) C.CXComment { return *(*C.CXComment)(unsafe.Pointer(&c)) }

func goComment(c C.CXComment) native.Comment { return *(*native.Comment)(unsafe.Pointer(&c)) }

func cLoc(l native.SourceLocation) C.CXSourceLocation {
	return *(*C.CXSourceLocation)(unsafe.Pointer(&l))
}

func goLoc(l C.CXSourceLocation) native.SourceLocation {
	return *(*native.SourceLocation)(unsafe.Pointer(&l))
}

func cRange(r native.SourceRange) C.CXSourceRange { return *(*C.CXSourceRange)(unsafe.Pointer(&r)) }

func goRange(r C.CXSourceRange) native.SourceRange {
	return *(*native.SourceRange)(unsafe.Pointer(&r))
}

// cStrings copies ss into a C array of C strings.
func cStrings(ss []string) (**C.char, func()) {
	if len(ss) == 0 {
		return nil, func() {}
	}
	arr := (**C.char)(C.malloc(C.size_t(len(ss)) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	view := unsafe.Slice(arr, len(ss))
	for i, s := range ss {
		view[i] = C.CString(s)
	}
	return arr, func() {
		for _, p := range view {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(arr))
	}
}

// cUnsaved copies files into a C array of CXUnsavedFile.
func cUnsaved(files []native.UnsavedFile) (*C.struct_CXUnsavedFile, C.uint, func()) {
	if len(files) == 0 {
		return nil, 0, func() {}
	}
	arr := (*C.struct_CXUnsavedFile)(C.malloc(C.size_t(len(files)) * C.size_t(unsafe.Sizeof(C.struct_CXUnsavedFile{}))))
	view := unsafe.Slice(arr, len(files))
	for i, f := range files {
		view[i].Filename = C.CString(f.Filename)
		view[i].Contents = (*C.char)(C.CBytes(f.Contents))
		view[i].Length = C.ulong(len(f.Contents))
	}
	return arr, C.uint(len(files)), func() {
		for _, f := range view {
			C.free(unsafe.Pointer(f.Filename))
			C.free(unsafe.Pointer(f.Contents))
		}
		C.free(unsafe.Pointer(arr))
	}
}

func (l *Lib) Version() string { return str(C.clang_getClangVersion()) }

// Index.

func (l *Lib) CreateIndex(excludeDecls, displayDiagnostics bool) native.Handle {
	return handle(C.clang_createIndex(cbool(excludeDecls), cbool(displayDiagnostics)))
}

func (l *Lib) DisposeIndex(idx native.Handle) { C.clang_disposeIndex(C.CXIndex(ptr(idx))) }

func (l *Lib) SetGlobalOptions(idx native.Handle, opts uint32) {
	C.clang_CXIndex_setGlobalOptions(C.CXIndex(ptr(idx)), C.uint(opts))
}

func (l *Lib) GlobalOptions(idx native.Handle) uint32 {
	return uint32(C.clang_CXIndex_getGlobalOptions(C.CXIndex(ptr(idx))))
}

// Translation units.

func (l *Lib) ParseTranslationUnit(idx native.Handle, path string, args []string, unsaved []native.UnsavedFile, flags uint32) (native.Handle, int32) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	argv, freeArgs := cStrings(args)
	defer freeArgs()
	files, n, freeFiles := cUnsaved(unsaved)
	defer freeFiles()

	var out C.CXTranslationUnit
	code := C.clang_parseTranslationUnit2(C.CXIndex(ptr(idx)), cpath, argv, C.int(len(args)), files, n, C.uint(flags), &out)
	return handle(unsafe.Pointer(out)), int32(code)
}

func (l *Lib) CreateTranslationUnit(idx native.Handle, astPath string) (native.Handle, int32) {
	cpath := C.CString(astPath)
	defer C.free(unsafe.Pointer(cpath))
	var out C.CXTranslationUnit
	code := C.clang_createTranslationUnit2(C.CXIndex(ptr(idx)), cpath, &out)
	return handle(unsafe.Pointer(out)), int32(code)
}

func (l *Lib) DisposeTranslationUnit(h native.Handle) { C.clang_disposeTranslationUnit(tu(h)) }

func (l *Lib) TranslationUnitSpelling(h native.Handle) string {
	return str(C.clang_getTranslationUnitSpelling(tu(h)))
}

func (l *Lib) TranslationUnitCursor(h native.Handle) native.Cursor {
	return goCursor(C.clang_getTranslationUnitCursor(tu(h)))
}

func (l *Lib) DefaultEditingOptions() uint32 {
	return uint32(C.clang_defaultEditingTranslationUnitOptions())
}

func (l *Lib) DefaultSaveOptions(h native.Handle) uint32 {
	return uint32(C.clang_defaultSaveOptions(tu(h)))
}

func (l *Lib) SaveTranslationUnit(h native.Handle, path string, opts uint32) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.clang_saveTranslationUnit(tu(h), cpath, C.uint(opts)))
}

func (l *Lib) DefaultReparseOptions(h native.Handle) uint32 {
	return uint32(C.clang_defaultReparseOptions(tu(h)))
}

func (l *Lib) ReparseTranslationUnit(h native.Handle, unsaved []native.UnsavedFile, opts uint32) int32 {
	files, n, free := cUnsaved(unsaved)
	defer free()
	return int32(C.clang_reparseTranslationUnit(tu(h), n, files, C.uint(opts)))
}

func (l *Lib) ResourceUsage(h native.Handle) []native.ResourceUsageEntry {
	usage := C.clang_getCXTUResourceUsage(tu(h))
	defer C.clang_disposeCXTUResourceUsage(usage)
	if usage.numEntries == 0 || usage.entries == nil {
		return nil
	}
	entries := unsafe.Slice(usage.entries, int(usage.numEntries))
	out := make([]native.ResourceUsageEntry, len(entries))
	for i, e := range entries {
		out[i] = native.ResourceUsageEntry{Kind: int32(e.kind), Amount: uint64(e.amount)}
	}
	return out
}

func (l *Lib) ResourceUsageName(kind int32) string {
	p := C.clang_getTUResourceUsageName(C.enum_CXTUResourceUsageKind(kind))
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func (l *Lib) GetFile(h native.Handle, name string) native.Handle {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return handle(C.clang_getFile(tu(h), cname))
}

func (l *Lib) GetLocation(h, file native.Handle, line, column uint32) native.SourceLocation {
	return goLoc(C.clang_getLocation(tu(h), C.CXFile(ptr(file)), C.uint(line), C.uint(column)))
}

func (l *Lib) GetLocationForOffset(h, file native.Handle, offset uint32) native.SourceLocation {
	return goLoc(C.clang_getLocationForOffset(tu(h), C.CXFile(ptr(file)), C.uint(offset)))
}

func (l *Lib) GetCursor(h native.Handle, loc native.SourceLocation) native.Cursor {
	return goCursor(C.clang_getCursor(tu(h), cLoc(loc)))
}

func (l *Lib) GetInclusions(h native.Handle, fn native.InclusionFunc) {
	native.Frames.With(fn, func(token uintptr) {
		C.cv_getInclusions(tu(h), C.uintptr_t(token))
	})
}

func (l *Lib) TargetInfo(h native.Handle) (native.TargetInfo, bool) {
	s := l.sym
	if s.targetInfo == nil || s.targetTriple == nil || s.targetWidth == nil || s.targetDispose == nil {
		return native.TargetInfo{}, false
	}
	var triple C.CXString
	var width C.int
	if C.cv_targetInfo(s.targetInfo, s.targetTriple, s.targetWidth, s.targetDispose, tu(h), &triple, &width) == 0 {
		return native.TargetInfo{}, false
	}
	return native.TargetInfo{Triple: str(triple), PointerWidth: int32(width)}, true
}

func (l *Lib) IsFileMultipleIncludeGuarded(h, file native.Handle) bool {
	return C.clang_isFileMultipleIncludeGuarded(tu(h), C.CXFile(ptr(file))) != 0
}

// Diagnostics.

func diag(h native.Handle) C.CXDiagnostic { return C.CXDiagnostic(ptr(h)) }

func (l *Lib) NumDiagnostics(h native.Handle) int { return int(C.clang_getNumDiagnostics(tu(h))) }

func (l *Lib) GetDiagnostic(h native.Handle, i int) native.Handle {
	return handle(C.clang_getDiagnostic(tu(h), C.uint(i)))
}

func (l *Lib) DisposeDiagnostic(d native.Handle) { C.clang_disposeDiagnostic(diag(d)) }

func (l *Lib) DiagnosticSpelling(d native.Handle) string {
	return str(C.clang_getDiagnosticSpelling(diag(d)))
}

func (l *Lib) FormatDiagnostic(d native.Handle, opts uint32) string {
	return str(C.clang_formatDiagnostic(diag(d), C.uint(opts)))
}

func (l *Lib) DefaultDiagnosticDisplayOptions() uint32 {
	return uint32(C.clang_defaultDiagnosticDisplayOptions())
}

func (l *Lib) DiagnosticSeverity(d native.Handle) int32 {
	return int32(C.clang_getDiagnosticSeverity(diag(d)))
}

func (l *Lib) DiagnosticLocation(d native.Handle) native.SourceLocation {
	return goLoc(C.clang_getDiagnosticLocation(diag(d)))
}

func (l *Lib) DiagnosticOption(d native.Handle) (string, string) {
	var disable C.CXString
	enable := str(C.clang_getDiagnosticOption(diag(d), &disable))
	return enable, str(disable)
}

func (l *Lib) DiagnosticCategory(d native.Handle) uint32 {
	return uint32(C.clang_getDiagnosticCategory(diag(d)))
}

func (l *Lib) DiagnosticCategoryText(d native.Handle) string {
	return str(C.clang_getDiagnosticCategoryText(diag(d)))
}

func (l *Lib) DiagnosticNumRanges(d native.Handle) int {
	return int(C.clang_getDiagnosticNumRanges(diag(d)))
}

func (l *Lib) DiagnosticRange(d native.Handle, i int) native.SourceRange {
	return goRange(C.clang_getDiagnosticRange(diag(d), C.uint(i)))
}

func (l *Lib) DiagnosticNumFixIts(d native.Handle) int {
	return int(C.clang_getDiagnosticNumFixIts(diag(d)))
}

func (l *Lib) DiagnosticFixIt(d native.Handle, i int) (native.SourceRange, string) {
	var r C.CXSourceRange
	text := str(C.clang_getDiagnosticFixIt(diag(d), C.uint(i), &r))
	return goRange(r), text
}

func (l *Lib) ChildDiagnostics(d native.Handle) native.Handle {
	return handle(C.clang_getChildDiagnostics(diag(d)))
}

func (l *Lib) NumDiagnosticsInSet(set native.Handle) int {
	return int(C.clang_getNumDiagnosticsInSet(C.CXDiagnosticSet(ptr(set))))
}

func (l *Lib) DiagnosticInSet(set native.Handle, i int) native.Handle {
	return handle(C.clang_getDiagnosticInSet(C.CXDiagnosticSet(ptr(set)), C.uint(i)))
}
