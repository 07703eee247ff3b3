package kinds

import "fmt"

// TypeKind is a CXTypeKind value.
type TypeKind int32

func (k TypeKind) String() string {
	if s, ok := typeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TypeKind(%d)", int32(k))
}

// IsBuiltin reports whether k is a builtin scalar type.
func (k TypeKind) IsBuiltin() bool {
	return k >= TypeVoid && k <= TypeIbm128
}

// TypeVariant is the view shape a type kind dispatches to.
type TypeVariant uint8

const (
	VariantGeneric TypeVariant = iota
	VariantPointer
	VariantArray
	VariantVector
	VariantFunction
	VariantElaborated
	VariantRecord
	VariantTypedef
)

func (v TypeVariant) String() string {
	switch v {
	case VariantPointer:
		return "pointer"
	case VariantArray:
		return "array"
	case VariantVector:
		return "vector"
	case VariantFunction:
		return "function"
	case VariantElaborated:
		return "elaborated"
	case VariantRecord:
		return "record"
	case VariantTypedef:
		return "typedef"
	}
	return "generic"
}

// Variant returns the view shape for k.
func (k TypeKind) Variant() TypeVariant {
	switch k {
	case TypePointer, TypeBlockPointer, TypeObjCObjectPointer, TypeMemberPointer:
		return VariantPointer
	case TypeConstantArray, TypeIncompleteArray, TypeVariableArray, TypeDependentSizedArray:
		return VariantArray
	case TypeVector, TypeExtVector:
		return VariantVector
	case TypeFunctionNoProto, TypeFunctionProto:
		return VariantFunction
	case TypeElaborated:
		return VariantElaborated
	case TypeRecord:
		return VariantRecord
	case TypeTypedef:
		return VariantTypedef
	}
	return VariantGeneric
}

// CallingConv is a CXCallingConv value.
type CallingConv int32

const (
	CallingConvDefault           CallingConv = 0
	CallingConvC                 CallingConv = 1
	CallingConvX86StdCall        CallingConv = 2
	CallingConvX86FastCall       CallingConv = 3
	CallingConvX86ThisCall       CallingConv = 4
	CallingConvX86Pascal         CallingConv = 5
	CallingConvAAPCS             CallingConv = 6
	CallingConvAAPCSVFP          CallingConv = 7
	CallingConvX86RegCall        CallingConv = 8
	CallingConvIntelOclBicc      CallingConv = 9
	CallingConvWin64             CallingConv = 10
	CallingConvX8664SysV         CallingConv = 11
	CallingConvX86VectorCall     CallingConv = 12
	CallingConvSwift             CallingConv = 13
	CallingConvPreserveMost      CallingConv = 14
	CallingConvPreserveAll       CallingConv = 15
	CallingConvAArch64VectorCall CallingConv = 16
	CallingConvInvalid           CallingConv = 100
	CallingConvUnexposed         CallingConv = 200
)

var callingConvNames = map[CallingConv]string{
	CallingConvDefault:           "default",
	CallingConvC:                 "c",
	CallingConvX86StdCall:        "x86_stdcall",
	CallingConvX86FastCall:       "x86_fastcall",
	CallingConvX86ThisCall:       "x86_thiscall",
	CallingConvX86Pascal:         "x86_pascal",
	CallingConvAAPCS:             "aapcs",
	CallingConvAAPCSVFP:          "aapcs_vfp",
	CallingConvX86RegCall:        "x86_regcall",
	CallingConvIntelOclBicc:      "intel_ocl_bicc",
	CallingConvWin64:             "win64",
	CallingConvX8664SysV:         "x86_64_sysv",
	CallingConvX86VectorCall:     "x86_vectorcall",
	CallingConvSwift:             "swift",
	CallingConvPreserveMost:      "preserve_most",
	CallingConvPreserveAll:       "preserve_all",
	CallingConvAArch64VectorCall: "aarch64_vector_call",
	CallingConvInvalid:           "invalid",
	CallingConvUnexposed:         "unexposed",
}

func (c CallingConv) String() string {
	if s, ok := callingConvNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CallingConv(%d)", int32(c))
}

// RefQualifier is a CXRefQualifierKind value.
type RefQualifier int32

const (
	RefQualifierNone   RefQualifier = 0
	RefQualifierLValue RefQualifier = 1
	RefQualifierRValue RefQualifier = 2
)

func (r RefQualifier) String() string {
	switch r {
	case RefQualifierNone:
		return "none"
	case RefQualifierLValue:
		return "lvalue"
	case RefQualifierRValue:
		return "rvalue"
	}
	return fmt.Sprintf("RefQualifier(%d)", int32(r))
}

// LayoutError is the negative result of the layout queries (size, align, offset).
type LayoutError int64

const (
	LayoutErrorInvalid          LayoutError = -1
	LayoutErrorIncomplete       LayoutError = -2
	LayoutErrorDependent        LayoutError = -3
	LayoutErrorNotConstantSize  LayoutError = -4
	LayoutErrorInvalidFieldName LayoutError = -5
	LayoutErrorUndeduced        LayoutError = -6
)

func (e LayoutError) Error() string {
	switch e {
	case LayoutErrorInvalid:
		return "layout: invalid type"
	case LayoutErrorIncomplete:
		return "layout: incomplete type"
	case LayoutErrorDependent:
		return "layout: dependent type"
	case LayoutErrorNotConstantSize:
		return "layout: type is not constant size"
	case LayoutErrorInvalidFieldName:
		return "layout: invalid field name"
	case LayoutErrorUndeduced:
		return "layout: undeduced type"
	}
	return fmt.Sprintf("layout error %d", int64(e))
}

// LayoutResult splits a layout query result into a value or a LayoutError.
func LayoutResult(v int64) (int64, error) {
	if v < 0 {
		return 0, LayoutError(v)
	}
	return v, nil
}
