package fakeclang

import (
	"fmt"
	"strings"

	"clangview/internal/kinds"
)

type builtinInfo struct {
	kind     kinds.TypeKind
	spelling string
	size     int64
}

// builtins maps the sorted specifier words of a builtin type to its kind.
var builtins = map[string]builtinInfo{
	"void":                   {kinds.TypeVoid, "void", 0},
	"_Bool":                  {kinds.TypeBool, "_Bool", 1},
	"char":                   {kinds.TypeCharS, "char", 1},
	"char signed":            {kinds.TypeSChar, "signed char", 1},
	"char unsigned":          {kinds.TypeUChar, "unsigned char", 1},
	"short":                  {kinds.TypeShort, "short", 2},
	"int short":              {kinds.TypeShort, "short", 2},
	"short unsigned":         {kinds.TypeUShort, "unsigned short", 2},
	"int short unsigned":     {kinds.TypeUShort, "unsigned short", 2},
	"int":                    {kinds.TypeInt, "int", 4},
	"signed":                 {kinds.TypeInt, "int", 4},
	"int signed":             {kinds.TypeInt, "int", 4},
	"unsigned":               {kinds.TypeUInt, "unsigned int", 4},
	"int unsigned":           {kinds.TypeUInt, "unsigned int", 4},
	"long":                   {kinds.TypeLong, "long", 8},
	"int long":               {kinds.TypeLong, "long", 8},
	"long unsigned":          {kinds.TypeULong, "unsigned long", 8},
	"int long unsigned":      {kinds.TypeULong, "unsigned long", 8},
	"long long":              {kinds.TypeLongLong, "long long", 8},
	"int long long":          {kinds.TypeLongLong, "long long", 8},
	"long long unsigned":     {kinds.TypeULongLong, "unsigned long long", 8},
	"int long long unsigned": {kinds.TypeULongLong, "unsigned long long", 8},
	"float":                  {kinds.TypeFloat, "float", 4},
	"double":                 {kinds.TypeDouble, "double", 8},
	"double long":            {kinds.TypeLongDouble, "long double", 16},
}

func (u *unit) intern(t ftype) int {
	key := fmt.Sprintf("%d|%s|%d|%d|%v|%v|%v|%d|%v|%v", t.kind, t.spelling, t.inner, t.decl, t.konst, t.volatile, t.restrict, t.count, t.args, t.variadic)
	if id, ok := u.typeKeys[key]; ok {
		return id
	}
	u.types = append(u.types, t)
	id := len(u.types) - 1
	u.typeKeys[key] = id
	return id
}

func (u *unit) builtin(b builtinInfo) int {
	return u.intern(ftype{kind: b.kind, spelling: b.spelling})
}

func (u *unit) intType() int { return u.builtin(builtins["int"]) }

func (u *unit) recordType(decl int) int {
	n := &u.nodes[decl]
	kind := kinds.TypeRecord
	if n.kind == kinds.CursorEnumDecl {
		kind = kinds.TypeEnum
	}
	return u.intern(ftype{kind: kind, spelling: tagSpelling(n), decl: u.canonical(decl)})
}

// tagType is the type written as "struct X". Releases from 16 on wrap it in
// an elaborated type.
func (u *unit) tagType(decl int, elaborated bool) int {
	rec := u.recordType(decl)
	if !elaborated {
		return rec
	}
	return u.intern(ftype{kind: kinds.TypeElaborated, spelling: u.types[rec].spelling, inner: rec})
}

func tagSpelling(n *node) string {
	kw := "struct"
	switch n.kind {
	case kinds.CursorUnionDecl:
		kw = "union"
	case kinds.CursorEnumDecl:
		kw = "enum"
	}
	if n.name == "" {
		return kw + " (unnamed)"
	}
	return kw + " " + n.name
}

func (u *unit) typedefType(decl int) int {
	return u.intern(ftype{kind: kinds.TypeTypedef, spelling: u.nodes[decl].name, decl: decl})
}

func (u *unit) pointer(pointee int) int {
	p := u.types[pointee]
	var s string
	switch {
	case p.kind == kinds.TypeFunctionProto || p.kind == kinds.TypeFunctionNoProto:
		res := u.types[p.inner].spelling
		s = res + " (*)" + strings.TrimPrefix(p.spelling, res+" ")
	case strings.HasSuffix(p.spelling, "*"):
		s = p.spelling + "*"
	default:
		s = p.spelling + " *"
	}
	return u.intern(ftype{kind: kinds.TypePointer, spelling: s, inner: pointee})
}

func (u *unit) array(elem int, count int64) int {
	e := u.types[elem].spelling
	if count < 0 {
		return u.intern(ftype{kind: kinds.TypeIncompleteArray, spelling: e + "[]", inner: elem, count: -1})
	}
	return u.intern(ftype{kind: kinds.TypeConstantArray, spelling: fmt.Sprintf("%s[%d]", e, count), inner: elem, count: count})
}

func (u *unit) function(result int, args []int, variadic, proto bool) int {
	parts := make([]string, 0, len(args)+1)
	for _, a := range args {
		parts = append(parts, u.types[a].spelling)
	}
	if variadic {
		parts = append(parts, "...")
	}
	kind := kinds.TypeFunctionProto
	if !proto {
		kind = kinds.TypeFunctionNoProto
	} else if len(parts) == 0 {
		parts = append(parts, "void")
	}
	s := u.types[result].spelling + " (" + strings.Join(parts, ", ") + ")"
	return u.intern(ftype{kind: kind, spelling: s, inner: result, args: append([]int(nil), args...), variadic: variadic})
}

func (u *unit) qualified(base int, konst, volatile, restrict bool) int {
	if !konst && !volatile && !restrict {
		return base
	}
	t := u.types[base]
	var quals []string
	if konst {
		quals = append(quals, "const")
	}
	if volatile {
		quals = append(quals, "volatile")
	}
	if restrict {
		quals = append(quals, "restrict")
	}
	q := strings.Join(quals, " ")
	if t.kind == kinds.TypePointer {
		t.spelling = t.spelling + q
	} else {
		t.spelling = q + " " + t.spelling
	}
	t.konst, t.volatile, t.restrict = konst, volatile, restrict
	t.base = base
	return u.intern(t)
}

// unqualified strips qualifiers from t.
func (u *unit) unqualified(id int) int {
	if b := u.types[id].base; b != 0 {
		return b
	}
	return id
}

// canonicalType desugars typedefs and elaborated types.
func (u *unit) canonicalType(id int) int {
	if id == 0 {
		return 0
	}
	t := u.types[id]
	if t.base != 0 {
		return u.qualified(u.canonicalType(t.base), t.konst, t.volatile, t.restrict)
	}
	switch t.kind {
	case kinds.TypeElaborated:
		return u.canonicalType(t.inner)
	case kinds.TypeTypedef:
		return u.canonicalType(u.nodes[t.decl].typ)
	case kinds.TypePointer:
		return u.pointer(u.canonicalType(t.inner))
	case kinds.TypeConstantArray, kinds.TypeIncompleteArray:
		return u.array(u.canonicalType(t.inner), t.count)
	}
	return id
}

// Layout errors as returned by the clang_Type_get* layout queries.
const (
	layoutInvalid    = -1
	layoutIncomplete = -2
	layoutBadField   = -5
)

// layout returns the size and alignment of a type in bytes.
func (u *unit) layout(id int) (int64, int64) {
	id = u.canonicalType(u.unqualified(id))
	if id == 0 {
		return layoutInvalid, layoutInvalid
	}
	t := u.types[id]
	if t.base != 0 {
		return u.layout(t.base)
	}
	switch t.kind {
	case kinds.TypePointer:
		return 8, 8
	case kinds.TypeConstantArray:
		sz, al := u.layout(t.inner)
		if sz < 0 {
			return sz, al
		}
		return sz * t.count, al
	case kinds.TypeIncompleteArray:
		return layoutIncomplete, layoutIncomplete
	case kinds.TypeEnum:
		return 4, 4
	case kinds.TypeRecord:
		size, align, _ := u.recordLayout(t.decl)
		return size, align
	case kinds.TypeVoid, kinds.TypeFunctionProto, kinds.TypeFunctionNoProto:
		return 1, 1
	}
	for _, b := range builtins {
		if b.kind == t.kind {
			return b.size, b.size
		}
	}
	return layoutInvalid, layoutInvalid
}

// recordLayout returns size, alignment and the bit offset of each field of
// the record declared by decl.
func (u *unit) recordLayout(decl int) (int64, int64, map[int]int64) {
	def := u.definition(decl)
	if def == 0 {
		return layoutIncomplete, layoutIncomplete, nil
	}
	n := &u.nodes[def]
	union := n.kind == kinds.CursorUnionDecl
	offsets := make(map[int]int64)
	var bits, maxAlign, maxSize int64 = 0, 1, 0
	for _, c := range n.children {
		f := &u.nodes[c]
		typ := f.typ
		switch {
		case f.kind == kinds.CursorFieldDecl:
		case f.anon:
			typ = u.recordType(c)
		default:
			continue
		}
		sz, al := u.layout(typ)
		if sz < 0 {
			return sz, al, nil
		}
		maxAlign = max(maxAlign, al)
		if union {
			offsets[c] = 0
			maxSize = max(maxSize, sz)
			continue
		}
		if f.kind == kinds.CursorFieldDecl && f.bitWidth >= 0 {
			unit := sz * 8
			if bits/unit != (bits+int64(f.bitWidth)-1)/unit && f.bitWidth > 0 {
				bits = alignUp(bits, unit)
			}
			offsets[c] = bits
			bits += int64(f.bitWidth)
			continue
		}
		bits = alignUp(bits, al*8)
		offsets[c] = bits
		bits += sz * 8
	}
	size := alignUp(bits, 8) / 8
	if union {
		size = maxSize
	}
	return alignUp(size, maxAlign), maxAlign, offsets
}

func alignUp(v, a int64) int64 {
	if a <= 0 {
		return v
	}
	return (v + a - 1) / a * a
}
