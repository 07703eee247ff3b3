package clang

import (
	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// Type is the type of a cursor or expression. The concrete value is one of
// *PointerType, *ArrayType, *VectorType, *FunctionType, *ElaboratedType,
// *RecordType, *TypedefType or *GenericType, chosen by kind.
type Type interface {
	Kind() kinds.TypeKind
	KindSpelling() string
	Spelling() string
	Canonical() (Type, error)
	Declaration() (Cursor, error)
	// SizeOf and AlignOf are in bytes; negative results are
	// kinds.LayoutError codes.
	SizeOf() int64
	AlignOf() int64
	IsPOD() bool
	IsConst() bool
	IsVolatile() bool
	IsRestrict() bool
	Unqualified() (Type, error)
	Equal(Type) bool
	String() string

	base() *typeBase
}

type typeBase struct {
	t    native.Type
	kind kinds.TypeKind
	tu   *TranslationUnit
}

type (
	PointerType    struct{ typeBase }
	ArrayType      struct{ typeBase }
	VectorType     struct{ typeBase }
	FunctionType   struct{ typeBase }
	ElaboratedType struct{ typeBase }
	RecordType     struct{ typeBase }
	TypedefType    struct{ typeBase }
	GenericType    struct{ typeBase }
)

// newType dispatches on the kind tag of t.
func (tu *TranslationUnit) newType(t native.Type) (Type, error) {
	k, err := tu.b.reg.Type(t.Kind)
	if err != nil {
		return nil, err
	}
	b := typeBase{t: t, kind: k, tu: tu}
	switch k.Variant() {
	case kinds.VariantPointer:
		return &PointerType{b}, nil
	case kinds.VariantArray:
		return &ArrayType{b}, nil
	case kinds.VariantVector:
		return &VectorType{b}, nil
	case kinds.VariantFunction:
		return &FunctionType{b}, nil
	case kinds.VariantElaborated:
		return &ElaboratedType{b}, nil
	case kinds.VariantRecord:
		return &RecordType{b}, nil
	case kinds.VariantTypedef:
		return &TypedefType{b}, nil
	}
	return &GenericType{b}, nil
}

func (t *typeBase) base() *typeBase      { return t }
func (t *typeBase) lib() native.Library  { return t.tu.lib() }
func (t *typeBase) Kind() kinds.TypeKind { return t.kind }
func (t *typeBase) KindSpelling() string { return t.lib().TypeKindSpelling(t.t.Kind) }
func (t *typeBase) Spelling() string     { return t.lib().TypeSpelling(t.t) }
func (t *typeBase) String() string       { return t.Spelling() }
func (t *typeBase) SizeOf() int64        { return t.lib().SizeOf(t.t) }
func (t *typeBase) AlignOf() int64       { return t.lib().AlignOf(t.t) }
func (t *typeBase) IsPOD() bool          { return t.lib().IsPOD(t.t) }
func (t *typeBase) IsConst() bool        { return t.lib().IsConstQualified(t.t) }
func (t *typeBase) IsVolatile() bool     { return t.lib().IsVolatileQualified(t.t) }
func (t *typeBase) IsRestrict() bool     { return t.lib().IsRestrictQualified(t.t) }

func (t *typeBase) Canonical() (Type, error) {
	return t.tu.newType(t.lib().CanonicalType(t.t))
}

// Declaration is the cursor that declares the type, or a null cursor for
// builtins.
func (t *typeBase) Declaration() (Cursor, error) {
	return t.tu.cursor(t.lib().TypeDeclaration(t.t))
}

// Unqualified strips const, volatile and restrict.
func (t *typeBase) Unqualified() (Type, error) {
	if err := t.tu.b.require(libver.FeatureUnqualifiedType); err != nil {
		return nil, err
	}
	return t.tu.newType(t.lib().UnqualifiedType(t.t))
}

func (t *typeBase) Equal(o Type) bool {
	if o == nil {
		return false
	}
	return t.lib().EqualTypes(t.t, o.base().t)
}

// Pointee is the type pointed to.
func (t *PointerType) Pointee() (Type, error) {
	return t.tu.newType(t.lib().PointeeType(t.t))
}

func (t *PointerType) IsMemberPointer() bool { return t.kind == kinds.TypeMemberPointer }

// ClassType is the class of a pointer to member.
func (t *PointerType) ClassType() (Type, error) {
	if !t.IsMemberPointer() {
		return nil, kindMismatch("ClassType", t.kind)
	}
	return t.tu.newType(t.lib().ClassType(t.t))
}

// IsForwardDeclaration reports whether the pointee is a record named
// through an elaborated type whose first declaration in the unit is a
// forward declaration. It is a heuristic built on
// Cursor.IsForwardDeclaration.
func (t *PointerType) IsForwardDeclaration() bool {
	pointee, err := t.Pointee()
	if err != nil {
		return false
	}
	if _, ok := pointee.(*ElaboratedType); !ok {
		return false
	}
	canon, err := pointee.Canonical()
	if err != nil {
		return false
	}
	if _, ok := canon.(*RecordType); !ok {
		return false
	}
	decl, err := canon.Declaration()
	if err != nil || decl.IsNull() {
		return false
	}
	usr := decl.USR()
	first, found, err := t.tu.Cursor().FindFirst(func(c, _ Cursor) bool { return c.USR() == usr })
	if err != nil || !found {
		return false
	}
	return first.IsForwardDeclaration()
}

// Element is the element type of the array.
func (t *ArrayType) Element() (Type, error) {
	return t.tu.newType(t.lib().ArrayElementType(t.t))
}

// Size is the number of elements, or -1 when the size is not constant.
func (t *ArrayType) Size() int64 { return t.lib().ArraySize(t.t) }

func (t *VectorType) Element() (Type, error) {
	return t.tu.newType(t.lib().ElementType(t.t))
}

func (t *VectorType) Size() int64 { return t.lib().NumElements(t.t) }

func (t *FunctionType) Result() (Type, error) {
	return t.tu.newType(t.lib().ResultType(t.t))
}

// NumArgs counts the parameters, or returns -1 for an unprototyped
// function.
func (t *FunctionType) NumArgs() int { return int(t.lib().NumArgTypes(t.t)) }

func (t *FunctionType) ArgType(i int) (Type, error) {
	n := t.NumArgs()
	if i < 0 || i >= n {
		return nil, outOfRange(i, n)
	}
	return t.tu.newType(t.lib().ArgType(t.t, i))
}

func (t *FunctionType) ArgTypes() ([]Type, error) {
	n := t.NumArgs()
	if n <= 0 {
		return nil, nil
	}
	out := make([]Type, n)
	for i := range out {
		a, err := t.ArgType(i)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func (t *FunctionType) IsVariadic() bool { return t.lib().IsFunctionTypeVariadic(t.t) }

func (t *FunctionType) CallingConv() kinds.CallingConv {
	return kinds.CallingConv(t.lib().FunctionTypeCallingConv(t.t))
}

func (t *FunctionType) RefQualifier() kinds.RefQualifier {
	return kinds.RefQualifier(t.lib().CXXRefQualifier(t.t))
}

// NamedType is the type an elaborated type spells, without its keyword or
// qualifier.
func (t *ElaboratedType) NamedType() (Type, error) {
	if err := t.tu.b.require(libver.FeatureNamedType); err != nil {
		return nil, err
	}
	return t.tu.newType(t.lib().NamedType(t.t))
}

// OffsetOf is the bit offset of field, which may be a member of a nested
// anonymous record. Negative results are kinds.LayoutError codes.
func (t *RecordType) OffsetOf(field string) int64 { return t.lib().OffsetOf(t.t, field) }

// Fields lists the field declarations of the record in order.
func (t *RecordType) Fields() ([]Cursor, error) {
	if err := t.tu.b.require(libver.FeatureVisitFields); err != nil {
		return nil, err
	}
	var (
		out  []Cursor
		fail error
	)
	t.lib().VisitFields(t.t, func(n native.Cursor) int32 {
		c, err := t.tu.cursor(n)
		if err != nil {
			fail = err
			return int32(kinds.VisitorBreak)
		}
		out = append(out, c)
		return int32(kinds.VisitorContinue)
	})
	if fail != nil {
		return nil, fail
	}
	return out, nil
}

// NumTemplateArgs is -1 unless the record is a template specialization.
func (t *RecordType) NumTemplateArgs() int { return int(t.lib().NumTemplateArguments(t.t)) }

func (t *RecordType) TemplateArg(i int) (Type, error) {
	n := t.NumTemplateArgs()
	if i < 0 || i >= n {
		return nil, outOfRange(i, n)
	}
	return t.tu.newType(t.lib().TemplateArgumentAsType(t.t, i))
}

// TypedefName is the name the typedef introduces.
func (t *TypedefType) TypedefName() (string, error) {
	if err := t.tu.b.require(libver.FeatureTypedefName); err != nil {
		return "", err
	}
	return t.lib().TypedefName(t.t), nil
}
