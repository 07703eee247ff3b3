package native

// Library is the libclang C surface. Methods map one to one onto C
// functions unless noted. String results are already copied into Go memory
// and the CXString disposed; array results that libclang hands out for the
// caller to free (overridden cursors, resource usage) are likewise copied and
// released before returning.
//
// Version-gated methods must only be called when the capability table says
// the running library has them. Backends resolve those symbols lazily and
// return zero values when a symbol is absent.
type Library interface {
	// Version returns clang_getClangVersion.
	Version() string

	IndexAPI
	TranslationUnitAPI
	DiagnosticAPI
	CursorAPI
	TypeAPI
	CommentAPI
	LocationAPI
	TokenAPI
	CompletionAPI
	CompilationDBAPI
	PrintingPolicyAPI
}

type IndexAPI interface {
	CreateIndex(excludeDecls, displayDiagnostics bool) Handle
	DisposeIndex(idx Handle)
	SetGlobalOptions(idx Handle, opts uint32)
	GlobalOptions(idx Handle) uint32
}

type TranslationUnitAPI interface {
	// ParseTranslationUnit wraps clang_parseTranslationUnit2 and returns the
	// CXErrorCode alongside the handle.
	ParseTranslationUnit(idx Handle, path string, args []string, unsaved []UnsavedFile, flags uint32) (Handle, int32)
	// CreateTranslationUnit wraps clang_createTranslationUnit2.
	CreateTranslationUnit(idx Handle, astPath string) (Handle, int32)
	DisposeTranslationUnit(tu Handle)
	TranslationUnitSpelling(tu Handle) string
	TranslationUnitCursor(tu Handle) Cursor
	DefaultEditingOptions() uint32
	DefaultSaveOptions(tu Handle) uint32
	SaveTranslationUnit(tu Handle, path string, opts uint32) int32
	DefaultReparseOptions(tu Handle) uint32
	ReparseTranslationUnit(tu Handle, unsaved []UnsavedFile, opts uint32) int32
	ResourceUsage(tu Handle) []ResourceUsageEntry
	ResourceUsageName(kind int32) string
	GetFile(tu Handle, name string) Handle
	GetLocation(tu, file Handle, line, column uint32) SourceLocation
	GetLocationForOffset(tu, file Handle, offset uint32) SourceLocation
	GetCursor(tu Handle, loc SourceLocation) Cursor
	GetInclusions(tu Handle, fn InclusionFunc)
	// TargetInfo is gated on 5.0.
	TargetInfo(tu Handle) (TargetInfo, bool)
	IsFileMultipleIncludeGuarded(tu, file Handle) bool
}

type DiagnosticAPI interface {
	NumDiagnostics(tu Handle) int
	GetDiagnostic(tu Handle, i int) Handle
	DisposeDiagnostic(d Handle)
	DiagnosticSpelling(d Handle) string
	FormatDiagnostic(d Handle, opts uint32) string
	DefaultDiagnosticDisplayOptions() uint32
	DiagnosticSeverity(d Handle) int32
	DiagnosticLocation(d Handle) SourceLocation
	// DiagnosticOption returns the enabling and disabling flag.
	DiagnosticOption(d Handle) (string, string)
	DiagnosticCategory(d Handle) uint32
	DiagnosticCategoryText(d Handle) string
	DiagnosticNumRanges(d Handle) int
	DiagnosticRange(d Handle, i int) SourceRange
	DiagnosticNumFixIts(d Handle) int
	DiagnosticFixIt(d Handle, i int) (SourceRange, string)
	// ChildDiagnostics returns a borrowed CXDiagnosticSet.
	ChildDiagnostics(d Handle) Handle
	NumDiagnosticsInSet(set Handle) int
	DiagnosticInSet(set Handle, i int) Handle
}

type CursorAPI interface {
	NullCursor() Cursor
	EqualCursors(a, b Cursor) bool
	HashCursor(c Cursor) uint32
	CursorKindSpelling(kind int32) string
	KindIs(kind int32, class KindClass) bool
	CursorFlag(c Cursor, f CursorFlag) bool

	CursorLocation(c Cursor) SourceLocation
	CursorExtent(c Cursor) SourceRange
	CursorSpelling(c Cursor) string
	CursorDisplayName(c Cursor) string
	CursorUSR(c Cursor) string
	CursorMangling(c Cursor) string

	CursorType(c Cursor) Type
	CursorResultType(c Cursor) Type
	TypedefDeclUnderlyingType(c Cursor) Type
	EnumDeclIntegerType(c Cursor) Type
	EnumConstantDeclValue(c Cursor) int64
	EnumConstantDeclUnsignedValue(c Cursor) uint64
	FieldDeclBitWidth(c Cursor) int32
	OffsetOfField(c Cursor) int64

	CursorNumArguments(c Cursor) int32
	CursorArgument(c Cursor, i int) Cursor
	NumOverloadedDecls(c Cursor) int
	OverloadedDecl(c Cursor, i int) Cursor
	OverriddenCursors(c Cursor) []Cursor

	SemanticParent(c Cursor) Cursor
	LexicalParent(c Cursor) Cursor
	Referenced(c Cursor) Cursor
	Definition(c Cursor) Cursor
	CanonicalCursor(c Cursor) Cursor
	SpecializedCursorTemplate(c Cursor) Cursor
	TemplateCursorKind(c Cursor) int32

	CursorLinkage(c Cursor) int32
	CursorAvailability(c Cursor) int32
	CursorLanguage(c Cursor) int32
	CXXAccessSpecifier(c Cursor) int32
	IncludedFile(c Cursor) Handle

	RawCommentText(c Cursor) string
	BriefCommentText(c Cursor) string
	ParsedComment(c Cursor) Comment
	CursorCompletionString(c Cursor) Handle

	// CursorPlatformAvailability fills a native array and returns it together
	// with its element count; both go back to DisposePlatformAvailability.
	CursorPlatformAvailability(c Cursor) (AvailabilityHeader, Handle, int)
	PlatformAvailabilityAt(buf Handle, i int) PlatformAvailability
	DisposePlatformAvailability(buf Handle, n int)

	// VisitChildren runs clang_visitChildren and returns its result (non-zero
	// when the traversal was broken).
	VisitChildren(c Cursor, fn VisitFunc) uint32
	// FindReferencesInFile returns the CXResult code.
	FindReferencesInFile(c Cursor, file Handle, fn RefVisitFunc) int32

	// VarDeclInitializer is gated on 16.0.
	VarDeclInitializer(c Cursor) Cursor
}

type TypeAPI interface {
	TypeSpelling(t Type) string
	TypeKindSpelling(kind int32) string
	EqualTypes(a, b Type) bool
	CanonicalType(t Type) Type
	PointeeType(t Type) Type
	ResultType(t Type) Type
	ElementType(t Type) Type
	ArrayElementType(t Type) Type
	ClassType(t Type) Type
	// NamedType is gated on 8.0.
	NamedType(t Type) Type
	// UnqualifiedType is gated on 16.0.
	UnqualifiedType(t Type) Type
	TypeDeclaration(t Type) Cursor
	NumArgTypes(t Type) int32
	ArgType(t Type, i int) Type
	IsFunctionTypeVariadic(t Type) bool
	FunctionTypeCallingConv(t Type) int32
	CXXRefQualifier(t Type) int32
	NumElements(t Type) int64
	ArraySize(t Type) int64
	SizeOf(t Type) int64
	AlignOf(t Type) int64
	OffsetOf(t Type, field string) int64
	IsPOD(t Type) bool
	IsConstQualified(t Type) bool
	IsVolatileQualified(t Type) bool
	IsRestrictQualified(t Type) bool
	// TypedefName is gated on 5.0.
	TypedefName(t Type) string
	NumTemplateArguments(t Type) int32
	TemplateArgumentAsType(t Type, i int) Type
	// VisitFields is gated on 3.7.
	VisitFields(t Type, fn FieldVisitFunc) uint32
}

type CommentAPI interface {
	CommentKind(c Comment) int32
	CommentNumChildren(c Comment) int
	CommentChild(c Comment, i int) Comment
	CommentIsWhitespace(c Comment) bool
	InlineContentHasTrailingNewline(c Comment) bool
	TextCommentText(c Comment) string

	InlineCommandName(c Comment) string
	InlineCommandRenderKind(c Comment) int32
	InlineCommandNumArgs(c Comment) int
	InlineCommandArg(c Comment, i int) string

	HTMLTagName(c Comment) string
	HTMLStartTagSelfClosing(c Comment) bool
	HTMLNumAttrs(c Comment) int
	HTMLAttrName(c Comment, i int) string
	HTMLAttrValue(c Comment, i int) string
	HTMLTagAsString(c Comment) string

	BlockCommandName(c Comment) string
	BlockCommandNumArgs(c Comment) int
	BlockCommandArg(c Comment, i int) string
	BlockCommandParagraph(c Comment) Comment

	ParamCommandName(c Comment) string
	ParamCommandIndexValid(c Comment) bool
	ParamCommandIndex(c Comment) uint32
	ParamCommandDirectionExplicit(c Comment) bool
	ParamCommandDirection(c Comment) int32

	TParamCommandName(c Comment) string
	TParamCommandPositionValid(c Comment) bool
	TParamCommandDepth(c Comment) uint32
	TParamCommandIndex(c Comment, depth uint32) uint32

	VerbatimBlockLineText(c Comment) string
	VerbatimLineText(c Comment) string

	FullCommentAsHTML(c Comment) string
	FullCommentAsXML(c Comment) string
}

type LocationAPI interface {
	NullLocation() SourceLocation
	EqualLocations(a, b SourceLocation) bool
	ExpansionLocation(l SourceLocation) Position
	SpellingLocation(l SourceLocation) Position
	FileLocation(l SourceLocation) Position
	PresumedLocation(l SourceLocation) Presumed
	LocationInSystemHeader(l SourceLocation) bool
	LocationFromMainFile(l SourceLocation) bool

	NullRange() SourceRange
	GetRange(begin, end SourceLocation) SourceRange
	EqualRanges(a, b SourceRange) bool
	RangeIsNull(r SourceRange) bool
	RangeStart(r SourceRange) SourceLocation
	RangeEnd(r SourceRange) SourceLocation

	FileName(f Handle) string
	FileTime(f Handle) int64
	// FileUniqueID is gated on 3.3.
	FileUniqueID(f Handle) (FileUniqueID, bool)
}

type TokenAPI interface {
	// Tokenize returns the token buffer and its length. The length must be
	// passed back unchanged to DisposeTokens.
	Tokenize(tu Handle, r SourceRange) (Handle, int)
	TokenAt(buf Handle, i int) Token
	DisposeTokens(tu, buf Handle, n int)
	TokenKind(t Token) int32
	TokenSpelling(tu Handle, t Token) string
	TokenLocation(tu Handle, t Token) SourceLocation
	TokenExtent(tu Handle, t Token) SourceRange
	AnnotateTokens(tu, buf Handle, n int) []Cursor
}

type CompletionAPI interface {
	CodeCompleteAt(tu Handle, path string, line, column uint32, unsaved []UnsavedFile, opts uint32) Handle
	DefaultCodeCompleteOptions() uint32
	DisposeCodeCompleteResults(res Handle)
	NumCompletionResults(res Handle) int
	// CompletionResult returns the cursor kind and completion string of
	// result i.
	CompletionResult(res Handle, i int) (int32, Handle)
	SortCodeCompletionResults(res Handle)
	CodeCompleteNumDiagnostics(res Handle) int
	CodeCompleteDiagnostic(res Handle, i int) Handle
	CodeCompleteContexts(res Handle) uint64
	// CodeCompleteContainerKind returns the kind and whether the container
	// information is incomplete.
	CodeCompleteContainerKind(res Handle) (int32, bool)
	CodeCompleteContainerUSR(res Handle) string
	CodeCompleteObjCSelector(res Handle) string

	CompletionNumChunks(cs Handle) int
	CompletionChunkKind(cs Handle, i int) int32
	CompletionChunkText(cs Handle, i int) string
	CompletionChunkCompletionString(cs Handle, i int) Handle
	CompletionPriority(cs Handle) uint32
	CompletionAvailability(cs Handle) int32
	CompletionNumAnnotations(cs Handle) int
	CompletionAnnotation(cs Handle, i int) string
	CompletionParent(cs Handle) string
	CompletionBriefComment(cs Handle) string
}

type CompilationDBAPI interface {
	// CompilationDatabaseFromDirectory returns the handle and the
	// CXCompilationDatabase_Error code.
	CompilationDatabaseFromDirectory(dir string) (Handle, int32)
	DisposeCompilationDatabase(db Handle)
	CompileCommandsFor(db Handle, file string) Handle
	AllCompileCommands(db Handle) Handle
	DisposeCompileCommands(cmds Handle)
	NumCompileCommands(cmds Handle) int
	CompileCommand(cmds Handle, i int) Handle
	CompileCommandDirectory(cmd Handle) string
	// CompileCommandFilename is gated on 3.8.
	CompileCommandFilename(cmd Handle) string
	CompileCommandNumArgs(cmd Handle) int
	CompileCommandArg(cmd Handle, i int) string
}

// PrintingPolicyAPI is gated on 7.0 as a whole.
type PrintingPolicyAPI interface {
	CursorPrintingPolicy(c Cursor) Handle
	DisposePrintingPolicy(p Handle)
	PrintingPolicyProperty(p Handle, prop int32) uint32
	SetPrintingPolicyProperty(p Handle, prop int32, v uint32)
	CursorPrettyPrinted(c Cursor, p Handle) string
}
