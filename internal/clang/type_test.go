package clang_test

import (
	"errors"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
)

func TestRecordType(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	flags := find(t, tu, kinds.CursorStructDecl, "Flags")
	typ, err := flags.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	rec, ok := typ.(*clang.RecordType)
	if !ok {
		t.Fatalf("type of struct Flags is %T", typ)
	}
	if rec.SizeOf() != 16 {
		t.Fatalf("sizeof = %d", rec.SizeOf())
	}
	cases := []struct {
		field string
		bits  int64
	}{
		{"ready", 0},
		{"mode", 1},
		{"i", 32},
		{"name", 64},
		{"missing", int64(kinds.LayoutErrorInvalidFieldName)},
	}
	for _, tc := range cases {
		if got := rec.OffsetOf(tc.field); got != tc.bits {
			t.Errorf("offsetof(%s) = %d, want %d", tc.field, got, tc.bits)
		}
	}

	fields, err := rec.Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if len(fields) < 3 {
		t.Fatalf("fields = %v", fields)
	}
	if fields[0].Spelling() != "ready" || fields[1].Spelling() != "mode" || fields[len(fields)-1].Spelling() != "name" {
		t.Fatalf("fields = %v", fields)
	}
	decl, err := rec.Declaration()
	if err != nil || !decl.Equal(flags) {
		t.Fatalf("declaration = %v, %v", decl, err)
	}
}

func TestElaboratedTypesFromSixteen(t *testing.T) {
	t.Run("17", func(t *testing.T) {
		_, tu := sampleUnit(t, "17.0.6")
		p := find(t, tu, kinds.CursorVarDecl, "p")
		typ, err := p.Type()
		if err != nil {
			t.Fatalf("type: %v", err)
		}
		el, ok := typ.(*clang.ElaboratedType)
		if !ok {
			t.Fatalf("type of p is %T, want elaborated", typ)
		}
		named, err := el.NamedType()
		if err != nil {
			t.Fatalf("named type: %v", err)
		}
		td, ok := named.(*clang.TypedefType)
		if !ok {
			t.Fatalf("named type is %T", named)
		}
		if name, err := td.TypedefName(); err != nil || name != "Point" {
			t.Fatalf("typedef name = %q, %v", name, err)
		}
		canon, err := typ.Canonical()
		if err != nil {
			t.Fatalf("canonical: %v", err)
		}
		if _, ok := canon.(*clang.RecordType); !ok {
			t.Fatalf("canonical type is %T", canon)
		}
	})
	t.Run("15", func(t *testing.T) {
		_, tu := sampleUnit(t, "15.0.7")
		p := find(t, tu, kinds.CursorVarDecl, "p")
		typ, err := p.Type()
		if err != nil {
			t.Fatalf("type: %v", err)
		}
		if _, ok := typ.(*clang.TypedefType); !ok {
			t.Fatalf("type of p is %T, want typedef", typ)
		}
		if _, err := typ.Unqualified(); !errors.Is(err, clang.ErrUnsupported) {
			t.Fatalf("unqualified on 15: %v", err)
		}
	})
}

func TestPointerToRecord(t *testing.T) {
	for _, tc := range []struct {
		version    string
		elaborated bool
	}{
		{"15.0.7", false},
		{"17.0.6", true},
	} {
		t.Run(tc.version, func(t *testing.T) {
			_, tu := listUnit(t, tc.version)
			next := find(t, tu, kinds.CursorFieldDecl, "next")
			typ, err := next.Type()
			if err != nil {
				t.Fatalf("type: %v", err)
			}
			ptr, ok := typ.(*clang.PointerType)
			if !ok {
				t.Fatalf("type of next is %T", typ)
			}
			pointee, err := ptr.Pointee()
			if err != nil {
				t.Fatalf("pointee: %v", err)
			}
			_, isElaborated := pointee.(*clang.ElaboratedType)
			if isElaborated != tc.elaborated {
				t.Fatalf("pointee is %T", pointee)
			}
			canon, err := pointee.Canonical()
			if err != nil {
				t.Fatalf("canonical: %v", err)
			}
			if canon.Kind() != kinds.TypeRecord {
				t.Fatalf("canonical pointee kind = %v", canon.Kind())
			}
			if ptr.IsForwardDeclaration() {
				t.Fatalf("List is defined before use")
			}
			if _, err := ptr.ClassType(); !errors.Is(err, clang.ErrKindMismatch) {
				t.Fatalf("class type of a plain pointer: %v", err)
			}
		})
	}
}

func TestArrayAndFunctionTypes(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	values := find(t, tu, kinds.CursorVarDecl, "values")
	typ, err := values.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	arr, ok := typ.(*clang.ArrayType)
	if !ok || arr.Kind() != kinds.TypeConstantArray {
		t.Fatalf("type of values is %T", typ)
	}
	if arr.Size() != 16 {
		t.Fatalf("size = %d", arr.Size())
	}
	elem, err := arr.Element()
	if err != nil || elem.Kind() != kinds.TypeInt {
		t.Fatalf("element = %v, %v", elem, err)
	}

	add := find(t, tu, kinds.CursorFunctionDecl, "add")
	ft, err := add.Type()
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	fn, ok := ft.(*clang.FunctionType)
	if !ok {
		t.Fatalf("type of add is %T", ft)
	}
	if fn.NumArgs() != 2 || fn.IsVariadic() {
		t.Fatalf("args = %d variadic = %v", fn.NumArgs(), fn.IsVariadic())
	}
	args, err := fn.ArgTypes()
	if err != nil || len(args) != 2 || args[1].Kind() != kinds.TypeInt {
		t.Fatalf("arg types = %v, %v", args, err)
	}
	res, err := fn.Result()
	if err != nil || res.Kind() != kinds.TypeInt {
		t.Fatalf("result = %v, %v", res, err)
	}
	if _, err := fn.ArgType(2); !errors.Is(err, clang.ErrOutOfRange) {
		t.Fatalf("arg type 2: %v", err)
	}
	if !res.Equal(elem) {
		t.Fatalf("int should equal int")
	}
}

func TestUnderlyingAndEnumTypes(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	point := find(t, tu, kinds.CursorTypedefDecl, "Point")
	under, err := point.UnderlyingType()
	if err != nil {
		t.Fatalf("underlying: %v", err)
	}
	canon, err := under.Canonical()
	if err != nil || canon.Kind() != kinds.TypeRecord {
		t.Fatalf("canonical underlying = %v, %v", canon, err)
	}
	color := find(t, tu, kinds.CursorEnumDecl, "Color")
	it, err := color.EnumIntegerType()
	if err != nil || it.Kind() != kinds.TypeUInt {
		t.Fatalf("enum integer type = %v, %v", it, err)
	}
}
