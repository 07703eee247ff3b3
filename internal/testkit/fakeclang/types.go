package fakeclang

import (
	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

func (l *Lib) ty(t native.Type) (*unit, int) {
	if t.Data[1] == 0 {
		return nil, 0
	}
	u := l.unit(native.Handle(t.Data[1]))
	id := int(t.Data[0])
	if id < 0 || id >= len(u.types) {
		return u, 0
	}
	return u, id
}

func (l *Lib) TypeSpelling(t native.Type) string {
	u, id := l.ty(t)
	if id == 0 {
		return ""
	}
	return u.types[id].spelling
}

func (l *Lib) TypeKindSpelling(kind int32) string {
	if _, err := l.reg.Type(kind); err != nil {
		return "Unexposed"
	}
	return kinds.TypeKind(kind).String()
}

func (l *Lib) EqualTypes(a, b native.Type) bool {
	return a.Kind == b.Kind && a.Data == b.Data
}

func (l *Lib) CanonicalType(t native.Type) native.Type {
	u, id := l.ty(t)
	if u == nil {
		return t
	}
	return l.typ(u, u.canonicalType(id))
}

func (l *Lib) PointeeType(t native.Type) native.Type {
	u, id := l.ty(t)
	if u == nil || u.types[id].kind != kinds.TypePointer {
		return l.typ(u, 0)
	}
	return l.typ(u, u.types[id].inner)
}

func (l *Lib) ResultType(t native.Type) native.Type {
	u, id := l.ty(t)
	if u == nil {
		return native.Type{}
	}
	switch u.types[id].kind {
	case kinds.TypeFunctionProto, kinds.TypeFunctionNoProto:
		return l.typ(u, u.types[id].inner)
	}
	return l.typ(u, 0)
}

func isArray(k kinds.TypeKind) bool {
	return k == kinds.TypeConstantArray || k == kinds.TypeIncompleteArray
}

func (l *Lib) ElementType(t native.Type) native.Type {
	u, id := l.ty(t)
	if u == nil || !isArray(u.types[id].kind) {
		return l.typ(u, 0)
	}
	return l.typ(u, u.types[id].inner)
}

func (l *Lib) ArrayElementType(t native.Type) native.Type { return l.ElementType(t) }

func (l *Lib) ClassType(t native.Type) native.Type {
	u, _ := l.ty(t)
	return l.typ(u, 0)
}

func (l *Lib) NamedType(t native.Type) native.Type {
	l.require(libver.FeatureNamedType)
	u, id := l.ty(t)
	if u == nil || u.types[id].kind != kinds.TypeElaborated {
		return l.typ(u, 0)
	}
	return l.typ(u, u.types[id].inner)
}

func (l *Lib) UnqualifiedType(t native.Type) native.Type {
	l.require(libver.FeatureUnqualifiedType)
	u, id := l.ty(t)
	if u == nil {
		return t
	}
	return l.typ(u, u.unqualified(id))
}

// declOf returns the declaration behind a record, enum or typedef type.
func (u *unit) declOf(id int) int {
	t := u.types[u.unqualified(id)]
	switch t.kind {
	case kinds.TypeElaborated:
		return u.declOf(t.inner)
	case kinds.TypeTypedef:
		return t.decl
	case kinds.TypeRecord, kinds.TypeEnum:
		if def := u.definition(t.decl); def != 0 {
			return def
		}
		return t.decl
	}
	return 0
}

func (l *Lib) TypeDeclaration(t native.Type) native.Cursor {
	u, id := l.ty(t)
	if id == 0 {
		return l.NullCursor()
	}
	return l.cursor(u, u.declOf(id))
}

func (u *unit) funcType(id int) (ftype, bool) {
	t := u.types[u.canonicalType(id)]
	return t, t.kind == kinds.TypeFunctionProto || t.kind == kinds.TypeFunctionNoProto
}

func (l *Lib) NumArgTypes(t native.Type) int32 {
	u, id := l.ty(t)
	if id == 0 {
		return -1
	}
	ft, ok := u.funcType(id)
	if !ok {
		return -1
	}
	return int32(len(ft.args))
}

func (l *Lib) ArgType(t native.Type, i int) native.Type {
	u, id := l.ty(t)
	if id == 0 {
		return l.typ(u, 0)
	}
	ft, ok := u.funcType(id)
	if !ok || i < 0 || i >= len(ft.args) {
		return l.typ(u, 0)
	}
	return l.typ(u, ft.args[i])
}

func (l *Lib) IsFunctionTypeVariadic(t native.Type) bool {
	u, id := l.ty(t)
	if id == 0 {
		return false
	}
	ft, ok := u.funcType(id)
	return ok && ft.variadic
}

func (l *Lib) FunctionTypeCallingConv(t native.Type) int32 {
	u, id := l.ty(t)
	if id == 0 {
		return int32(kinds.CallingConvInvalid)
	}
	if _, ok := u.funcType(id); !ok {
		return int32(kinds.CallingConvInvalid)
	}
	return int32(kinds.CallingConvC)
}

func (l *Lib) CXXRefQualifier(t native.Type) int32 { return int32(kinds.RefQualifierNone) }

func (l *Lib) NumElements(t native.Type) int64 {
	u, id := l.ty(t)
	if id == 0 {
		return -1
	}
	ct := u.types[u.canonicalType(id)]
	if ct.kind != kinds.TypeConstantArray {
		return -1
	}
	return ct.count
}

func (l *Lib) ArraySize(t native.Type) int64 { return l.NumElements(t) }

func (l *Lib) SizeOf(t native.Type) int64 {
	u, id := l.ty(t)
	if id == 0 {
		return layoutInvalid
	}
	size, _ := u.layout(id)
	return size
}

func (l *Lib) AlignOf(t native.Type) int64 {
	u, id := l.ty(t)
	if id == 0 {
		return layoutInvalid
	}
	_, align := u.layout(id)
	return align
}

func (l *Lib) OffsetOf(t native.Type, field string) int64 {
	u, id := l.ty(t)
	if id == 0 {
		return layoutInvalid
	}
	ct := u.types[u.canonicalType(u.unqualified(id))]
	if ct.kind != kinds.TypeRecord {
		return layoutInvalid
	}
	return u.offsetOf(ct.decl, field)
}

// offsetOf looks field up in the record decl, descending into anonymous
// members, and returns its bit offset.
func (u *unit) offsetOf(decl int, field string) int64 {
	size, _, offsets := u.recordLayout(decl)
	if size < 0 {
		return size
	}
	def := u.definition(decl)
	for _, c := range u.nodes[def].children {
		n := &u.nodes[c]
		switch {
		case n.kind == kinds.CursorFieldDecl && n.name == field:
			return offsets[c]
		case n.anon:
			if off := u.offsetOf(c, field); off >= 0 {
				return offsets[c] + off
			}
		}
	}
	return layoutBadField
}

func (l *Lib) IsPOD(t native.Type) bool {
	u, id := l.ty(t)
	if id == 0 {
		return false
	}
	switch u.types[u.canonicalType(id)].kind {
	case kinds.TypeVoid, kinds.TypeFunctionProto, kinds.TypeFunctionNoProto, kinds.TypeIncompleteArray:
		return false
	}
	return true
}

func (l *Lib) IsConstQualified(t native.Type) bool {
	u, id := l.ty(t)
	return id != 0 && u.types[id].konst
}

func (l *Lib) IsVolatileQualified(t native.Type) bool {
	u, id := l.ty(t)
	return id != 0 && u.types[id].volatile
}

func (l *Lib) IsRestrictQualified(t native.Type) bool {
	u, id := l.ty(t)
	return id != 0 && u.types[id].restrict
}

func (l *Lib) TypedefName(t native.Type) string {
	l.require(libver.FeatureTypedefName)
	u, id := l.ty(t)
	if id == 0 {
		return ""
	}
	ut := u.types[u.unqualified(id)]
	if ut.kind != kinds.TypeTypedef {
		return ""
	}
	return u.nodes[ut.decl].name
}

func (l *Lib) NumTemplateArguments(t native.Type) int32 { return -1 }

func (l *Lib) TemplateArgumentAsType(t native.Type, i int) native.Type {
	u, _ := l.ty(t)
	return l.typ(u, 0)
}

func (l *Lib) VisitFields(t native.Type, fn native.FieldVisitFunc) uint32 {
	l.require(libver.FeatureVisitFields)
	u, id := l.ty(t)
	if id == 0 {
		return 0
	}
	ct := u.types[u.canonicalType(u.unqualified(id))]
	if ct.kind != kinds.TypeRecord {
		return 0
	}
	def := u.definition(ct.decl)
	if def == 0 {
		return 0
	}
	var broken bool
	native.Frames.With(fn, func(token uintptr) {
		visit := native.Frames.Lookup(token).(native.FieldVisitFunc)
		for _, c := range u.nodes[def].children {
			if u.nodes[c].kind != kinds.CursorFieldDecl {
				continue
			}
			if kinds.VisitorResult(visit(l.cursor(u, c))) == kinds.VisitorBreak {
				broken = true
				return
			}
		}
	})
	if broken {
		return 1
	}
	return 0
}
