package kinds_test

import (
	"errors"
	"strings"
	"testing"

	"clangview/internal/kinds"
	"clangview/internal/libver"
)

func registry(t *testing.T, version string) *kinds.Registry {
	t.Helper()
	v, err := libver.Parse(version)
	if err != nil {
		t.Fatalf("parse %q: %v", version, err)
	}
	return kinds.NewRegistry(libver.For(v))
}

func TestTranslationUnitTagFollowsVersion(t *testing.T) {
	legacy := registry(t, "clang version 14.0.6")
	k, err := legacy.Cursor(300)
	if err != nil || k != kinds.CursorTranslationUnit {
		t.Fatalf("legacy 300 = %v, %v", k, err)
	}
	if _, err := legacy.Cursor(350); err == nil {
		t.Fatalf("legacy library must reject 350")
	}
	if got := legacy.NativeCursor(kinds.CursorTranslationUnit); got != 300 {
		t.Fatalf("legacy native tag = %d", got)
	}

	modern := registry(t, "clang version 17.0.6")
	k, err = modern.Cursor(350)
	if err != nil || k != kinds.CursorTranslationUnit {
		t.Fatalf("modern 350 = %v, %v", k, err)
	}
	k, err = modern.Cursor(300)
	if err != nil || k != kinds.CursorOMPParallelMaskedDirective {
		t.Fatalf("modern 300 = %v, %v", k, err)
	}
	if got := modern.NativeCursor(kinds.CursorTranslationUnit); got != 350 {
		t.Fatalf("modern native tag = %d", got)
	}
}

func TestUnknownTagsFailLoudly(t *testing.T) {
	r := registry(t, "clang version 17.0.6")
	var unk *kinds.UnknownError
	if _, err := r.Cursor(999); !errors.As(err, &unk) || unk.Family != "cursor" || unk.Value != 999 {
		t.Fatalf("cursor 999: %v", err)
	}
	if _, err := r.Type(42); !errors.As(err, &unk) || unk.Family != "type" {
		t.Fatalf("type 42: %v", err)
	}
	if _, err := r.Comment(13); !errors.As(err, &unk) || unk.Family != "comment" {
		t.Fatalf("comment 13: %v", err)
	}
	if _, err := r.Token(5); err == nil {
		t.Fatalf("token 5 must fail")
	}
	if _, err := r.Severity(-1); err == nil {
		t.Fatalf("severity -1 must fail")
	}
}

func TestCursorCategories(t *testing.T) {
	cases := []struct {
		k    kinds.CursorKind
		want kinds.Category
	}{
		{kinds.CursorStructDecl, kinds.CategoryDeclaration},
		{kinds.CursorCXXAccessSpecifier, kinds.CategoryDeclaration},
		{kinds.CursorStaticAssert, kinds.CategoryDeclaration},
		{kinds.CursorTypeRef, kinds.CategoryReference},
		{kinds.CursorNoDeclFound, kinds.CategoryInvalid},
		{kinds.CursorCallExpr, kinds.CategoryExpression},
		{kinds.CursorBuiltinBitCastExpr, kinds.CategoryExpression},
		{kinds.CursorCompoundStmt, kinds.CategoryStatement},
		{kinds.CursorOMPParallelDirective, kinds.CategoryStatement},
		{kinds.CursorTranslationUnit, kinds.CategoryTranslationUnit},
		{kinds.CursorPackedAttr, kinds.CategoryAttribute},
		{kinds.CursorMacroDefinition, kinds.CategoryPreprocessing},
		{kinds.CursorOverloadCandidate, kinds.CategoryOther},
	}
	for _, tc := range cases {
		if got := tc.k.Category(); got != tc.want {
			t.Fatalf("%v.Category() = %v, want %v", tc.k, got, tc.want)
		}
	}
}

func TestTypeVariants(t *testing.T) {
	cases := map[kinds.TypeKind]kinds.TypeVariant{
		kinds.TypePointer:             kinds.VariantPointer,
		kinds.TypeMemberPointer:       kinds.VariantPointer,
		kinds.TypeObjCObjectPointer:   kinds.VariantPointer,
		kinds.TypeConstantArray:       kinds.VariantArray,
		kinds.TypeDependentSizedArray: kinds.VariantArray,
		kinds.TypeVector:              kinds.VariantVector,
		kinds.TypeFunctionProto:       kinds.VariantFunction,
		kinds.TypeFunctionNoProto:     kinds.VariantFunction,
		kinds.TypeElaborated:          kinds.VariantElaborated,
		kinds.TypeRecord:              kinds.VariantRecord,
		kinds.TypeTypedef:             kinds.VariantTypedef,
		kinds.TypeInt:                 kinds.VariantGeneric,
		kinds.TypeEnum:                kinds.VariantGeneric,
	}
	for k, want := range cases {
		if got := k.Variant(); got != want {
			t.Fatalf("%v.Variant() = %v, want %v", k, got, want)
		}
	}
}

func TestParseCursorKind(t *testing.T) {
	for _, name := range []string{"StructDecl", "struct_decl", "STRUCTDECL"} {
		k, err := kinds.ParseCursorKind(name)
		if err != nil || k != kinds.CursorStructDecl {
			t.Fatalf("ParseCursorKind(%q) = %v, %v", name, k, err)
		}
	}
	_, err := kinds.ParseCursorKind("StructDecel")
	var unk *kinds.UnknownNameError
	if !errors.As(err, &unk) {
		t.Fatalf("expected UnknownNameError, got %v", err)
	}
	if len(unk.Suggestions) == 0 || unk.Suggestions[0] != "StructDecl" {
		t.Fatalf("suggestions = %v", unk.Suggestions)
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("error text %q", err.Error())
	}
}

func TestParseFlags(t *testing.T) {
	f, err := kinds.ParseParseFlags([]string{"skip_function_bodies", " Keep_Going "})
	if err != nil {
		t.Fatalf("ParseParseFlags: %v", err)
	}
	if f != kinds.ParseSkipFunctionBodies|kinds.ParseKeepGoing {
		t.Fatalf("flags = %v", f)
	}
	if f.String() != "skip_function_bodies|keep_going" {
		t.Fatalf("String() = %q", f.String())
	}
	if _, err := kinds.ParseParseFlags([]string{"bogus"}); err == nil {
		t.Fatalf("bogus flag accepted")
	}
}

func TestLayoutResult(t *testing.T) {
	if v, err := kinds.LayoutResult(8); v != 8 || err != nil {
		t.Fatalf("LayoutResult(8) = %d, %v", v, err)
	}
	_, err := kinds.LayoutResult(-2)
	if !errors.Is(err, kinds.LayoutErrorIncomplete) {
		t.Fatalf("LayoutResult(-2) = %v", err)
	}
}

func TestCompletionContextNames(t *testing.T) {
	c := kinds.ContextAnyType | kinds.ContextStructTag
	if c.String() != "any_type|struct_tag" {
		t.Fatalf("String() = %q", c.String())
	}
	if kinds.ContextUnknown.String() != "unknown" {
		t.Fatalf("unknown context = %q", kinds.ContextUnknown.String())
	}
}
