package clang

import (
	"fmt"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// Cursor is a node of the AST. It is a value borrowed from its translation
// unit; copies are cheap. Two cursors for the same node may differ bit for
// bit, so compare them with Equal and key maps with Hash or USR.
//
// The zero Cursor, returned when a search finds nothing, supports only
// IsNull, Equal and String; other methods panic with ErrNoUnit.
type Cursor struct {
	c    native.Cursor
	kind kinds.CursorKind
	tu   *TranslationUnit
}

// cursor decodes the kind tag of c. Unknown tags are an error.
func (tu *TranslationUnit) cursor(c native.Cursor) (Cursor, error) {
	k, err := tu.b.reg.Cursor(c.Kind)
	if err != nil {
		return Cursor{}, err
	}
	return Cursor{c: c, kind: k, tu: tu}, nil
}

func (c Cursor) lib() native.Library { return c.tu.lib() }

func (c Cursor) TranslationUnit() *TranslationUnit { return c.tu }

func (c Cursor) Kind() kinds.CursorKind { return c.kind }

// KindSpelling is libclang's own name for the kind.
func (c Cursor) KindSpelling() string { return c.lib().CursorKindSpelling(c.c.Kind) }

func (c Cursor) Category() kinds.Category { return c.kind.Category() }

func (c Cursor) is(class native.KindClass) bool   { return c.lib().KindIs(c.c.Kind, class) }
func (c Cursor) flag(f native.CursorFlag) bool    { return c.lib().CursorFlag(c.c, f) }
func (c Cursor) IsDeclaration() bool              { return c.is(native.ClassDeclaration) }
func (c Cursor) IsReference() bool                { return c.is(native.ClassReference) }
func (c Cursor) IsExpression() bool               { return c.is(native.ClassExpression) }
func (c Cursor) IsStatement() bool                { return c.is(native.ClassStatement) }
func (c Cursor) IsAttribute() bool                { return c.is(native.ClassAttribute) }
func (c Cursor) IsInvalid() bool                  { return c.is(native.ClassInvalid) }
func (c Cursor) IsTranslationUnit() bool          { return c.is(native.ClassTranslationUnit) }
func (c Cursor) IsPreprocessing() bool            { return c.is(native.ClassPreprocessing) }
func (c Cursor) IsUnexposed() bool                { return c.is(native.ClassUnexposed) }
func (c Cursor) IsNull() bool                     { return c.tu == nil || c.flag(native.FlagNull) }
func (c Cursor) IsDefinition() bool               { return c.flag(native.FlagDefinition) }
func (c Cursor) IsBitField() bool                 { return c.flag(native.FlagBitField) }
func (c Cursor) IsVirtualBase() bool              { return c.flag(native.FlagVirtualBase) }
func (c Cursor) IsVirtual() bool                  { return c.flag(native.FlagVirtual) }
func (c Cursor) IsPureVirtual() bool              { return c.flag(native.FlagPureVirtual) }
func (c Cursor) IsStatic() bool                   { return c.flag(native.FlagStatic) }
func (c Cursor) IsConst() bool                    { return c.flag(native.FlagConst) }
func (c Cursor) IsDynamicCall() bool              { return c.flag(native.FlagDynamicCall) }
func (c Cursor) IsVariadic() bool                 { return c.flag(native.FlagVariadic) }
func (c Cursor) Spelling() string                 { return c.lib().CursorSpelling(c.c) }
func (c Cursor) DisplayName() string              { return c.lib().CursorDisplayName(c.c) }
func (c Cursor) USR() string                      { return c.lib().CursorUSR(c.c) }
func (c Cursor) Mangling() string                 { return c.lib().CursorMangling(c.c) }
func (c Cursor) RawComment() string               { return c.lib().RawCommentText(c.c) }
func (c Cursor) BriefComment() string             { return c.lib().BriefCommentText(c.c) }
func (c Cursor) Hash() uint32                     { return c.lib().HashCursor(c.c) }
func (c Cursor) Linkage() kinds.Linkage           { return kinds.Linkage(c.lib().CursorLinkage(c.c)) }
func (c Cursor) Language() kinds.Language         { return kinds.Language(c.lib().CursorLanguage(c.c)) }
func (c Cursor) Availability() kinds.Availability { return kinds.Availability(c.lib().CursorAvailability(c.c)) }

// IsAnonymousRecord reports whether c declares a struct or union without a
// name.
func (c Cursor) IsAnonymousRecord() (bool, error) {
	if err := c.tu.b.require(libver.FeatureAnonymousRecord); err != nil {
		return false, err
	}
	return c.flag(native.FlagAnonymousRecord), nil
}

// Equal uses libclang's node identity, so a declaration fetched through
// Definition compares equal to the one found by a walk.
func (c Cursor) Equal(o Cursor) bool {
	if c.tu == nil || o.tu == nil {
		return c.tu == o.tu
	}
	return c.lib().EqualCursors(c.c, o.c)
}

func (c Cursor) AccessSpecifier() kinds.AccessSpecifier {
	return kinds.AccessSpecifier(c.lib().CXXAccessSpecifier(c.c))
}

func (c Cursor) IsPublic() bool    { return c.AccessSpecifier() == kinds.AccessPublic }
func (c Cursor) IsProtected() bool { return c.AccessSpecifier() == kinds.AccessProtected }
func (c Cursor) IsPrivate() bool   { return c.AccessSpecifier() == kinds.AccessPrivate }

func (c Cursor) Location() SourceLocation {
	return SourceLocation{loc: c.lib().CursorLocation(c.c), tu: c.tu}
}

func (c Cursor) Extent() SourceRange {
	return SourceRange{r: c.lib().CursorExtent(c.c), tu: c.tu}
}

func (c Cursor) Type() (Type, error)       { return c.tu.newType(c.lib().CursorType(c.c)) }
func (c Cursor) ResultType() (Type, error) { return c.tu.newType(c.lib().CursorResultType(c.c)) }

// UnderlyingType is the aliased type of a typedef declaration.
func (c Cursor) UnderlyingType() (Type, error) {
	if c.kind != kinds.CursorTypedefDecl && c.kind != kinds.CursorTypeAliasDecl {
		return nil, kindMismatch("UnderlyingType", c.kind)
	}
	return c.tu.newType(c.lib().TypedefDeclUnderlyingType(c.c))
}

// EnumIntegerType is the integer type backing an enum declaration.
func (c Cursor) EnumIntegerType() (Type, error) {
	if c.kind != kinds.CursorEnumDecl {
		return nil, kindMismatch("EnumIntegerType", c.kind)
	}
	return c.tu.newType(c.lib().EnumDeclIntegerType(c.c))
}

func (c Cursor) EnumValue() (int64, error) {
	if c.kind != kinds.CursorEnumConstantDecl {
		return 0, kindMismatch("EnumValue", c.kind)
	}
	return c.lib().EnumConstantDeclValue(c.c), nil
}

func (c Cursor) EnumUnsignedValue() (uint64, error) {
	if c.kind != kinds.CursorEnumConstantDecl {
		return 0, kindMismatch("EnumUnsignedValue", c.kind)
	}
	return c.lib().EnumConstantDeclUnsignedValue(c.c), nil
}

// BitWidth is the width of a bit-field, or -1 when c is not one.
func (c Cursor) BitWidth() int { return int(c.lib().FieldDeclBitWidth(c.c)) }

// OffsetOfField is the bit offset of a field within its record. Negative
// values are kinds.LayoutError codes.
func (c Cursor) OffsetOfField() int64 { return c.lib().OffsetOfField(c.c) }

// NumArguments counts the parameters of a function or call, or returns -1
// when c has none.
func (c Cursor) NumArguments() int { return int(c.lib().CursorNumArguments(c.c)) }

func (c Cursor) Argument(i int) (Cursor, error) {
	n := c.NumArguments()
	if i < 0 || i >= n {
		return Cursor{}, outOfRange(i, n)
	}
	return c.tu.cursor(c.lib().CursorArgument(c.c, i))
}

func (c Cursor) Arguments() ([]Cursor, error) {
	n := c.NumArguments()
	if n <= 0 {
		return nil, nil
	}
	out := make([]Cursor, n)
	for i := range out {
		a, err := c.Argument(i)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func (c Cursor) NumOverloadedDecls() int { return c.lib().NumOverloadedDecls(c.c) }

// OverloadedDecl returns candidate i of an overloaded declaration
// reference.
func (c Cursor) OverloadedDecl(i int) (Cursor, error) {
	if c.kind != kinds.CursorOverloadedDeclRef {
		return Cursor{}, kindMismatch("OverloadedDecl", c.kind)
	}
	n := c.NumOverloadedDecls()
	if i < 0 || i >= n {
		return Cursor{}, outOfRange(i, n)
	}
	return c.tu.cursor(c.lib().OverloadedDecl(c.c, i))
}

// Overridden lists the methods c overrides.
func (c Cursor) Overridden() ([]Cursor, error) {
	return c.tu.cursors(c.lib().OverriddenCursors(c.c))
}

func (tu *TranslationUnit) cursors(in []native.Cursor) ([]Cursor, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Cursor, len(in))
	for i, n := range in {
		c, err := tu.cursor(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func (c Cursor) SemanticParent() (Cursor, error) { return c.tu.cursor(c.lib().SemanticParent(c.c)) }
func (c Cursor) LexicalParent() (Cursor, error)  { return c.tu.cursor(c.lib().LexicalParent(c.c)) }
func (c Cursor) Referenced() (Cursor, error)     { return c.tu.cursor(c.lib().Referenced(c.c)) }
func (c Cursor) Definition() (Cursor, error)     { return c.tu.cursor(c.lib().Definition(c.c)) }
func (c Cursor) Canonical() (Cursor, error)      { return c.tu.cursor(c.lib().CanonicalCursor(c.c)) }

// SpecializedTemplate is the template c specializes or instantiates.
func (c Cursor) SpecializedTemplate() (Cursor, error) {
	return c.tu.cursor(c.lib().SpecializedCursorTemplate(c.c))
}

// TemplateKind is the kind of declaration a template would produce.
func (c Cursor) TemplateKind() (kinds.CursorKind, error) {
	return c.tu.b.reg.Cursor(c.lib().TemplateCursorKind(c.c))
}

// IncludedFile is the file named by an inclusion directive.
func (c Cursor) IncludedFile() (File, error) {
	if c.kind != kinds.CursorInclusionDirective {
		return File{}, kindMismatch("IncludedFile", c.kind)
	}
	return File{h: c.lib().IncludedFile(c.c), tu: c.tu}, nil
}

// VarDeclInitializer is the initializer expression of a variable.
func (c Cursor) VarDeclInitializer() (Cursor, error) {
	if err := c.tu.b.require(libver.FeatureVarDeclInitializer); err != nil {
		return Cursor{}, err
	}
	if c.kind != kinds.CursorVarDecl {
		return Cursor{}, kindMismatch("VarDeclInitializer", c.kind)
	}
	return c.tu.cursor(c.lib().VarDeclInitializer(c.c))
}

// Comment is the parsed documentation comment attached to c. Undocumented
// cursors yield a *NullComment.
func (c Cursor) Comment() (Comment, error) {
	return c.tu.newComment(c.lib().ParsedComment(c.c))
}

// CompletionString describes how c would be offered by code completion.
func (c Cursor) CompletionString() *CompletionString {
	h := c.lib().CursorCompletionString(c.c)
	if h == 0 {
		return nil
	}
	return &CompletionString{h: h, tu: c.tu}
}

// IsForwardDeclaration is a heuristic: c declares something whose
// definition libclang can see elsewhere in the unit. It compares c with
// its own Definition and is not exact for redeclarations.
func (c Cursor) IsForwardDeclaration() bool {
	if !c.IsDeclaration() || c.IsDefinition() {
		return false
	}
	def, err := c.Definition()
	if err != nil || def.IsNull() || def.IsInvalid() {
		return false
	}
	return !def.Equal(c)
}

// IsOpaqueDeclaration is a heuristic: c is a declaration with no
// definition anywhere in the unit.
func (c Cursor) IsOpaqueDeclaration() bool {
	if !c.IsDeclaration() || c.IsDefinition() {
		return false
	}
	def, err := c.Definition()
	if err != nil {
		return false
	}
	return def.IsNull() || def.IsInvalid()
}

func (c Cursor) String() string {
	if c.tu == nil {
		return "Cursor(<nil>)"
	}
	if s := c.Spelling(); s != "" {
		return fmt.Sprintf("%s %s", c.kind, s)
	}
	return c.kind.String()
}
