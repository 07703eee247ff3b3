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

func (l *Lib) NullLocation() native.SourceLocation { return goLoc(C.clang_getNullLocation()) }

func (l *Lib) EqualLocations(a, b native.SourceLocation) bool {
	return C.clang_equalLocations(cLoc(a), cLoc(b)) != 0
}

type locFn func(C.CXSourceLocation, *C.CXFile, *C.uint, *C.uint, *C.uint)

func decompose(loc native.SourceLocation, fn locFn) native.Position {
	var file C.CXFile
	var line, col, off C.uint
	fn(cLoc(loc), &file, &line, &col, &off)
	return native.Position{File: handle(unsafe.Pointer(file)), Line: uint32(line), Column: uint32(col), Offset: uint32(off)}
}

func (l *Lib) ExpansionLocation(loc native.SourceLocation) native.Position {
	return decompose(loc, func(cl C.CXSourceLocation, f *C.CXFile, ln, col, off *C.uint) {
		C.clang_getExpansionLocation(cl, f, ln, col, off)
	})
}

func (l *Lib) SpellingLocation(loc native.SourceLocation) native.Position {
	return decompose(loc, func(cl C.CXSourceLocation, f *C.CXFile, ln, col, off *C.uint) {
		C.clang_getSpellingLocation(cl, f, ln, col, off)
	})
}

func (l *Lib) FileLocation(loc native.SourceLocation) native.Position {
	return decompose(loc, func(cl C.CXSourceLocation, f *C.CXFile, ln, col, off *C.uint) {
		C.clang_getFileLocation(cl, f, ln, col, off)
	})
}

func (l *Lib) PresumedLocation(loc native.SourceLocation) native.Presumed {
	var name C.CXString
	var line, col C.uint
	C.clang_getPresumedLocation(cLoc(loc), &name, &line, &col)
	return native.Presumed{Filename: str(name), Line: uint32(line), Column: uint32(col)}
}

func (l *Lib) LocationInSystemHeader(loc native.SourceLocation) bool {
	return C.clang_Location_isInSystemHeader(cLoc(loc)) != 0
}

func (l *Lib) LocationFromMainFile(loc native.SourceLocation) bool {
	return C.clang_Location_isFromMainFile(cLoc(loc)) != 0
}

func (l *Lib) NullRange() native.SourceRange { return goRange(C.clang_getNullRange()) }

func (l *Lib) GetRange(begin, end native.SourceLocation) native.SourceRange {
	return goRange(C.clang_getRange(cLoc(begin), cLoc(end)))
}

func (l *Lib) EqualRanges(a, b native.SourceRange) bool {
	return C.clang_equalRanges(cRange(a), cRange(b)) != 0
}

func (l *Lib) RangeIsNull(r native.SourceRange) bool { return C.clang_Range_isNull(cRange(r)) != 0 }

func (l *Lib) RangeStart(r native.SourceRange) native.SourceLocation {
	return goLoc(C.clang_getRangeStart(cRange(r)))
}

func (l *Lib) RangeEnd(r native.SourceRange) native.SourceLocation {
	return goLoc(C.clang_getRangeEnd(cRange(r)))
}

func (l *Lib) FileName(f native.Handle) string { return str(C.clang_getFileName(C.CXFile(ptr(f)))) }

func (l *Lib) FileTime(f native.Handle) int64 { return int64(C.clang_getFileTime(C.CXFile(ptr(f)))) }

func (l *Lib) FileUniqueID(f native.Handle) (native.FileUniqueID, bool) {
	if l.sym.fileUniqueID == nil {
		return native.FileUniqueID{}, false
	}
	var id C.CXFileUniqueID
	if C.cv_fileUniqueID(l.sym.fileUniqueID, C.CXFile(ptr(f)), &id) != 0 {
		return native.FileUniqueID{}, false
	}
	return native.FileUniqueID{Data: [3]uint64{uint64(id.data[0]), uint64(id.data[1]), uint64(id.data[2])}}, true
}

// Tokens.

func tokens(buf native.Handle) *C.CXToken { return (*C.CXToken)(ptr(buf)) }

func (l *Lib) Tokenize(h native.Handle, r native.SourceRange) (native.Handle, int) {
	var buf *C.CXToken
	var n C.uint
	C.clang_tokenize(tu(h), cRange(r), &buf, &n)
	return handle(unsafe.Pointer(buf)), int(n)
}

func (l *Lib) TokenAt(buf native.Handle, i int) native.Token {
	t := unsafe.Slice(tokens(buf), i+1)[i]
	return *(*native.Token)(unsafe.Pointer(&t))
}

func (l *Lib) DisposeTokens(h, buf native.Handle, n int) {
	C.clang_disposeTokens(tu(h), tokens(buf), C.uint(n))
}

func cToken(t native.Token) C.CXToken { return *(*C.CXToken)(unsafe.Pointer(&t)) }

func (l *Lib) TokenKind(t native.Token) int32 { return int32(C.clang_getTokenKind(cToken(t))) }

func (l *Lib) TokenSpelling(h native.Handle, t native.Token) string {
	return str(C.clang_getTokenSpelling(tu(h), cToken(t)))
}

func (l *Lib) TokenLocation(h native.Handle, t native.Token) native.SourceLocation {
	return goLoc(C.clang_getTokenLocation(tu(h), cToken(t)))
}

func (l *Lib) TokenExtent(h native.Handle, t native.Token) native.SourceRange {
	return goRange(C.clang_getTokenExtent(tu(h), cToken(t)))
}

func (l *Lib) AnnotateTokens(h, buf native.Handle, n int) []native.Cursor {
	if n == 0 {
		return nil
	}
	arr := (*C.CXCursor)(C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(C.CXCursor{}))))
	defer C.free(unsafe.Pointer(arr))
	C.clang_annotateTokens(tu(h), tokens(buf), C.uint(n), arr)
	out := make([]native.Cursor, n)
	for i, c := range unsafe.Slice(arr, n) {
		out[i] = goCursor(c)
	}
	return out
}
