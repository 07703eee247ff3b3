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

// The functions below are called from C with the token registered in
// native.Frames as client data. A missing frame means the traversal
// outlived its registration; breaking is the only safe answer.

//export cvGoVisitor
func cvGoVisitor(c, parent C.CXCursor, data C.CXClientData) C.enum_CXChildVisitResult {
	fn, ok := native.Frames.Lookup(uintptr(data)).(native.VisitFunc)
	if !ok {
		return C.CXChildVisit_Break
	}
	return C.enum_CXChildVisitResult(fn(goCursor(c), goCursor(parent)))
}

//export cvGoRefVisitor
func cvGoRefVisitor(c C.CXCursor, r C.CXSourceRange, token C.uintptr_t) C.int {
	fn, ok := native.Frames.Lookup(uintptr(token)).(native.RefVisitFunc)
	if !ok {
		return C.int(C.CXVisit_Break)
	}
	return C.int(fn(goCursor(c), goRange(r)))
}

//export cvGoFieldVisitor
func cvGoFieldVisitor(c C.CXCursor, data C.CXClientData) C.enum_CXVisitorResult {
	fn, ok := native.Frames.Lookup(uintptr(data)).(native.FieldVisitFunc)
	if !ok {
		return C.CXVisit_Break
	}
	return C.enum_CXVisitorResult(fn(goCursor(c)))
}

//export cvGoInclusionVisitor
func cvGoInclusionVisitor(file C.CXFile, stack *C.CXSourceLocation, n C.uint, data C.CXClientData) {
	fn, ok := native.Frames.Lookup(uintptr(data)).(native.InclusionFunc)
	if !ok {
		return
	}
	var locs []native.SourceLocation
	if n > 0 && stack != nil {
		locs = make([]native.SourceLocation, int(n))
		for i, l := range unsafe.Slice(stack, int(n)) {
			locs[i] = goLoc(l)
		}
	}
	fn(handle(unsafe.Pointer(file)), locs)
}
