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

func (l *Lib) TypeSpelling(t native.Type) string { return str(C.clang_getTypeSpelling(cType(t))) }

func (l *Lib) TypeKindSpelling(kind int32) string {
	return str(C.clang_getTypeKindSpelling(C.enum_CXTypeKind(kind)))
}

func (l *Lib) EqualTypes(a, b native.Type) bool { return C.clang_equalTypes(cType(a), cType(b)) != 0 }

func (l *Lib) CanonicalType(t native.Type) native.Type {
	return goType(C.clang_getCanonicalType(cType(t)))
}

func (l *Lib) PointeeType(t native.Type) native.Type {
	return goType(C.clang_getPointeeType(cType(t)))
}

func (l *Lib) ResultType(t native.Type) native.Type {
	return goType(C.clang_getResultType(cType(t)))
}

func (l *Lib) ElementType(t native.Type) native.Type {
	return goType(C.clang_getElementType(cType(t)))
}

func (l *Lib) ArrayElementType(t native.Type) native.Type {
	return goType(C.clang_getArrayElementType(cType(t)))
}

func (l *Lib) ClassType(t native.Type) native.Type {
	return goType(C.clang_Type_getClassType(cType(t)))
}

func (l *Lib) invalidType() native.Type { return native.Type{} }

func (l *Lib) NamedType(t native.Type) native.Type {
	if l.sym.namedType == nil {
		return l.invalidType()
	}
	return goType(C.cv_typeToType(l.sym.namedType, cType(t)))
}

func (l *Lib) UnqualifiedType(t native.Type) native.Type {
	if l.sym.unqualifiedType == nil {
		return l.invalidType()
	}
	return goType(C.cv_typeToType(l.sym.unqualifiedType, cType(t)))
}

func (l *Lib) TypeDeclaration(t native.Type) native.Cursor {
	return goCursor(C.clang_getTypeDeclaration(cType(t)))
}

func (l *Lib) NumArgTypes(t native.Type) int32 { return int32(C.clang_getNumArgTypes(cType(t))) }

func (l *Lib) ArgType(t native.Type, i int) native.Type {
	return goType(C.clang_getArgType(cType(t), C.uint(i)))
}

func (l *Lib) IsFunctionTypeVariadic(t native.Type) bool {
	return C.clang_isFunctionTypeVariadic(cType(t)) != 0
}

func (l *Lib) FunctionTypeCallingConv(t native.Type) int32 {
	return int32(C.clang_getFunctionTypeCallingConv(cType(t)))
}

func (l *Lib) CXXRefQualifier(t native.Type) int32 {
	return int32(C.clang_Type_getCXXRefQualifier(cType(t)))
}

func (l *Lib) NumElements(t native.Type) int64 { return int64(C.clang_getNumElements(cType(t))) }

func (l *Lib) ArraySize(t native.Type) int64 { return int64(C.clang_getArraySize(cType(t))) }

func (l *Lib) SizeOf(t native.Type) int64 { return int64(C.clang_Type_getSizeOf(cType(t))) }

func (l *Lib) AlignOf(t native.Type) int64 { return int64(C.clang_Type_getAlignOf(cType(t))) }

func (l *Lib) OffsetOf(t native.Type, field string) int64 {
	cf := C.CString(field)
	defer C.free(unsafe.Pointer(cf))
	return int64(C.clang_Type_getOffsetOf(cType(t), cf))
}

func (l *Lib) IsPOD(t native.Type) bool { return C.clang_isPODType(cType(t)) != 0 }

func (l *Lib) IsConstQualified(t native.Type) bool {
	return C.clang_isConstQualifiedType(cType(t)) != 0
}

func (l *Lib) IsVolatileQualified(t native.Type) bool {
	return C.clang_isVolatileQualifiedType(cType(t)) != 0
}

func (l *Lib) IsRestrictQualified(t native.Type) bool {
	return C.clang_isRestrictQualifiedType(cType(t)) != 0
}

func (l *Lib) TypedefName(t native.Type) string {
	if l.sym.typedefName == nil {
		return ""
	}
	return str(C.cv_typeToString(l.sym.typedefName, cType(t)))
}

func (l *Lib) NumTemplateArguments(t native.Type) int32 {
	return int32(C.clang_Type_getNumTemplateArguments(cType(t)))
}

func (l *Lib) TemplateArgumentAsType(t native.Type, i int) native.Type {
	return goType(C.clang_Type_getTemplateArgumentAsType(cType(t), C.uint(i)))
}

func (l *Lib) VisitFields(t native.Type, fn native.FieldVisitFunc) uint32 {
	if l.sym.visitFields == nil {
		return 0
	}
	var r C.uint
	native.Frames.With(fn, func(token uintptr) {
		r = C.cv_visitFields(l.sym.visitFields, cType(t), C.uintptr_t(token))
	})
	return uint32(r)
}
