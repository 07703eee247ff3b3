package kinds

import (
	"fmt"
	"strings"
)

// TokenKind is a CXTokenKind value.
type TokenKind int32

const (
	TokenPunctuation TokenKind = 0
	TokenKeyword     TokenKind = 1
	TokenIdentifier  TokenKind = 2
	TokenLiteral     TokenKind = 3
	TokenComment     TokenKind = 4
)

func (k TokenKind) String() string {
	switch k {
	case TokenPunctuation:
		return "punctuation"
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenLiteral:
		return "literal"
	case TokenComment:
		return "comment"
	}
	return fmt.Sprintf("TokenKind(%d)", int32(k))
}

// Severity is a CXDiagnosticSeverity value.
type Severity int32

const (
	SeverityIgnored Severity = 0
	SeverityNote    Severity = 1
	SeverityWarning Severity = 2
	SeverityError   Severity = 3
	SeverityFatal   Severity = 4
)

func (s Severity) String() string {
	switch s {
	case SeverityIgnored:
		return "ignored"
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("Severity(%d)", int32(s))
}

// Linkage is a CXLinkageKind value.
type Linkage int32

const (
	LinkageInvalid        Linkage = 0
	LinkageNone           Linkage = 1
	LinkageInternal       Linkage = 2
	LinkageUniqueExternal Linkage = 3
	LinkageExternal       Linkage = 4
)

func (l Linkage) String() string {
	switch l {
	case LinkageInvalid:
		return "invalid"
	case LinkageNone:
		return "none"
	case LinkageInternal:
		return "internal"
	case LinkageUniqueExternal:
		return "unique_external"
	case LinkageExternal:
		return "external"
	}
	return fmt.Sprintf("Linkage(%d)", int32(l))
}

// Availability is a CXAvailabilityKind value.
type Availability int32

const (
	AvailabilityAvailable     Availability = 0
	AvailabilityDeprecated    Availability = 1
	AvailabilityNotAvailable  Availability = 2
	AvailabilityNotAccessible Availability = 3
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityDeprecated:
		return "deprecated"
	case AvailabilityNotAvailable:
		return "not_available"
	case AvailabilityNotAccessible:
		return "not_accessible"
	}
	return fmt.Sprintf("Availability(%d)", int32(a))
}

// AccessSpecifier is a CX_CXXAccessSpecifier value.
type AccessSpecifier int32

const (
	AccessInvalid   AccessSpecifier = 0
	AccessPublic    AccessSpecifier = 1
	AccessProtected AccessSpecifier = 2
	AccessPrivate   AccessSpecifier = 3
)

func (a AccessSpecifier) String() string {
	switch a {
	case AccessInvalid:
		return "invalid"
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	}
	return fmt.Sprintf("AccessSpecifier(%d)", int32(a))
}

// Language is a CXLanguageKind value.
type Language int32

const (
	LanguageInvalid   Language = 0
	LanguageC         Language = 1
	LanguageObjC      Language = 2
	LanguageCPlusPlus Language = 3
)

func (l Language) String() string {
	switch l {
	case LanguageInvalid:
		return "invalid"
	case LanguageC:
		return "c"
	case LanguageObjC:
		return "objc"
	case LanguageCPlusPlus:
		return "c++"
	}
	return fmt.Sprintf("Language(%d)", int32(l))
}

// ChildVisitResult is a CXChildVisitResult value.
type ChildVisitResult int32

const (
	ChildVisitBreak    ChildVisitResult = 0
	ChildVisitContinue ChildVisitResult = 1
	ChildVisitRecurse  ChildVisitResult = 2
)

// VisitorResult is a CXVisitorResult value used by the reference visitor.
type VisitorResult int32

const (
	VisitorBreak    VisitorResult = 0
	VisitorContinue VisitorResult = 1
)

// Result is a CXResult value.
type Result int32

const (
	ResultSuccess    Result = 0
	ResultInvalid    Result = 1
	ResultVisitBreak Result = 2
)

// ErrorCode is a CXErrorCode value.
type ErrorCode int32

const (
	ErrorSuccess          ErrorCode = 0
	ErrorFailure          ErrorCode = 1
	ErrorCrashed          ErrorCode = 2
	ErrorInvalidArguments ErrorCode = 3
	ErrorASTReadError     ErrorCode = 4
)

func (e ErrorCode) String() string {
	switch e {
	case ErrorSuccess:
		return "success"
	case ErrorFailure:
		return "failure"
	case ErrorCrashed:
		return "crashed"
	case ErrorInvalidArguments:
		return "invalid arguments"
	case ErrorASTReadError:
		return "AST read error"
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(e))
}

// SaveError is a CXSaveError value.
type SaveError int32

const (
	SaveErrorNone                   SaveError = 0
	SaveErrorUnknown                SaveError = 1
	SaveErrorTranslationErrors      SaveError = 2
	SaveErrorInvalidTranslationUnit SaveError = 3
)

func (e SaveError) String() string {
	switch e {
	case SaveErrorNone:
		return "none"
	case SaveErrorUnknown:
		return "unknown"
	case SaveErrorTranslationErrors:
		return "translation errors"
	case SaveErrorInvalidTranslationUnit:
		return "invalid translation unit"
	}
	return fmt.Sprintf("SaveError(%d)", int32(e))
}

// ParseFlags is a CXTranslationUnit_Flags bitmask.
type ParseFlags uint32

const (
	ParseNone                              ParseFlags = 0x0
	ParseDetailedPreprocessingRecord       ParseFlags = 0x01
	ParseIncomplete                        ParseFlags = 0x02
	ParsePrecompiledPreamble               ParseFlags = 0x04
	ParseCacheCompletionResults            ParseFlags = 0x08
	ParseForSerialization                  ParseFlags = 0x10
	ParseCXXChainedPCH                     ParseFlags = 0x20
	ParseSkipFunctionBodies                ParseFlags = 0x40
	ParseIncludeBriefCommentsInCodeCompl   ParseFlags = 0x80
	ParseCreatePreambleOnFirstParse        ParseFlags = 0x100
	ParseKeepGoing                         ParseFlags = 0x200
	ParseSingleFileParse                   ParseFlags = 0x400
	ParseLimitSkipFunctionBodiesToPreamble ParseFlags = 0x800
	ParseIncludeAttributedTypes            ParseFlags = 0x1000
	ParseVisitImplicitAttributes           ParseFlags = 0x2000
	parseFlagsAll                          ParseFlags = 0x3fff
)

var parseFlagNames = []struct {
	flag ParseFlags
	name string
}{
	{ParseDetailedPreprocessingRecord, "detailed_preprocessing_record"},
	{ParseIncomplete, "incomplete"},
	{ParsePrecompiledPreamble, "precompiled_preamble"},
	{ParseCacheCompletionResults, "cache_completion_results"},
	{ParseForSerialization, "for_serialization"},
	{ParseCXXChainedPCH, "cxx_chained_pch"},
	{ParseSkipFunctionBodies, "skip_function_bodies"},
	{ParseIncludeBriefCommentsInCodeCompl, "include_brief_comments_in_code_completion"},
	{ParseCreatePreambleOnFirstParse, "create_preamble_on_first_parse"},
	{ParseKeepGoing, "keep_going"},
	{ParseSingleFileParse, "single_file_parse"},
	{ParseLimitSkipFunctionBodiesToPreamble, "limit_skip_function_bodies_to_preamble"},
	{ParseIncludeAttributedTypes, "include_attributed_type"},
	{ParseVisitImplicitAttributes, "visit_implicit_attributes"},
}

// ParseParseFlags folds flag names into a bitmask.
func ParseParseFlags(names []string) (ParseFlags, error) {
	var out ParseFlags
	for _, n := range names {
		n = strings.TrimSpace(strings.ToLower(n))
		found := false
		for _, f := range parseFlagNames {
			if f.name == n {
				out |= f.flag
				found = true
				break
			}
		}
		if !found {
			return 0, &UnknownNameError{Family: "parse flag", Name: n}
		}
	}
	return out, nil
}

func (f ParseFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, e := range parseFlagNames {
		if f&e.flag != 0 {
			parts = append(parts, e.name)
		}
	}
	if rest := f &^ parseFlagsAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// DisplayOptions is a CXDiagnosticDisplayOptions bitmask.
type DisplayOptions uint32

const (
	DisplaySourceLocation DisplayOptions = 0x01
	DisplayColumn         DisplayOptions = 0x02
	DisplaySourceRanges   DisplayOptions = 0x04
	DisplayOption         DisplayOptions = 0x08
	DisplayCategoryID     DisplayOptions = 0x10
	DisplayCategoryName   DisplayOptions = 0x20
)

// GlobalOptions is a CXGlobalOptFlags bitmask.
type GlobalOptions uint32

const (
	GlobalOptNone                                GlobalOptions = 0x0
	GlobalOptThreadBackgroundPriorityForIndexing GlobalOptions = 0x1
	GlobalOptThreadBackgroundPriorityForEditing  GlobalOptions = 0x2
	GlobalOptThreadBackgroundPriorityForAll      GlobalOptions = 0x3
)

// ResourceUsageKind is a CXTUResourceUsageKind value.
type ResourceUsageKind int32

const (
	ResourceAST                              ResourceUsageKind = 1
	ResourceIdentifiers                      ResourceUsageKind = 2
	ResourceSelectors                        ResourceUsageKind = 3
	ResourceGlobalCompletionResults          ResourceUsageKind = 4
	ResourceSourceManagerContentCache        ResourceUsageKind = 5
	ResourceASTSideTables                    ResourceUsageKind = 6
	ResourceSourceManagerMembufferMalloc     ResourceUsageKind = 7
	ResourceSourceManagerMembufferMMap       ResourceUsageKind = 8
	ResourceExternalASTSourceMembufferMalloc ResourceUsageKind = 9
	ResourceExternalASTSourceMembufferMMap   ResourceUsageKind = 10
	ResourcePreprocessor                     ResourceUsageKind = 11
	ResourcePreprocessingRecord              ResourceUsageKind = 12
	ResourceSourceManagerDataStructures      ResourceUsageKind = 13
	ResourcePreprocessorHeaderSearch         ResourceUsageKind = 14
)

var resourceNames = map[ResourceUsageKind]string{
	ResourceAST:                              "AST",
	ResourceIdentifiers:                      "Identifiers",
	ResourceSelectors:                        "Selectors",
	ResourceGlobalCompletionResults:          "GlobalCompletionResults",
	ResourceSourceManagerContentCache:        "SourceManagerContentCache",
	ResourceASTSideTables:                    "AST side tables",
	ResourceSourceManagerMembufferMalloc:     "SourceManager: malloc'ed memory buffers",
	ResourceSourceManagerMembufferMMap:       "SourceManager: mmap'ed memory buffers",
	ResourceExternalASTSourceMembufferMalloc: "ExternalASTSource: malloc'ed memory buffers",
	ResourceExternalASTSourceMembufferMMap:   "ExternalASTSource: mmap'ed memory buffers",
	ResourcePreprocessor:                     "Preprocessor",
	ResourcePreprocessingRecord:              "PreprocessingRecord",
	ResourceSourceManagerDataStructures:      "SourceManager: data structures",
	ResourcePreprocessorHeaderSearch:         "Preprocessor: header search tables",
}

func (k ResourceUsageKind) String() string {
	if s, ok := resourceNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ResourceUsageKind(%d)", int32(k))
}

// CompilationDatabaseError is a CXCompilationDatabase_Error value.
type CompilationDatabaseError int32

const (
	CompilationDatabaseNoError            CompilationDatabaseError = 0
	CompilationDatabaseCanNotLoadDatabase CompilationDatabaseError = 1
)
