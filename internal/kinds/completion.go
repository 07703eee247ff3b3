package kinds

import (
	"fmt"
	"strings"
)

// ChunkKind is a CXCompletionChunkKind value.
type ChunkKind int32

const (
	ChunkOptional ChunkKind = iota
	ChunkTypedText
	ChunkText
	ChunkPlaceholder
	ChunkInformative
	ChunkCurrentParameter
	ChunkLeftParen
	ChunkRightParen
	ChunkLeftBracket
	ChunkRightBracket
	ChunkLeftBrace
	ChunkRightBrace
	ChunkLeftAngle
	ChunkRightAngle
	ChunkComma
	ChunkResultType
	ChunkColon
	ChunkSemiColon
	ChunkEqual
	ChunkHorizontalSpace
	ChunkVerticalSpace
)

var chunkNames = [...]string{
	"optional", "typed_text", "text", "placeholder", "informative",
	"current_parameter", "left_paren", "right_paren", "left_bracket",
	"right_bracket", "left_brace", "right_brace", "left_angle", "right_angle",
	"comma", "result_type", "colon", "semi_colon", "equal", "horizontal_space",
	"vertical_space",
}

func (k ChunkKind) String() string {
	if k >= 0 && int(k) < len(chunkNames) {
		return chunkNames[k]
	}
	return fmt.Sprintf("ChunkKind(%d)", int32(k))
}

// CompleteFlags is a CXCodeComplete_Flags bitmask.
type CompleteFlags uint32

const (
	CompleteIncludeMacros                CompleteFlags = 0x01
	CompleteIncludeCodePatterns          CompleteFlags = 0x02
	CompleteIncludeBriefComments         CompleteFlags = 0x04
	CompleteSkipPreamble                 CompleteFlags = 0x08
	CompleteIncludeCompletionsWithFixIts CompleteFlags = 0x10
)

// CompletionContext is a CXCompletionContext bitmask.
type CompletionContext uint64

const (
	ContextUnexposed           CompletionContext = 0
	ContextAnyType             CompletionContext = 1 << 0
	ContextAnyValue            CompletionContext = 1 << 1
	ContextObjCObjectValue     CompletionContext = 1 << 2
	ContextObjCSelectorValue   CompletionContext = 1 << 3
	ContextCXXClassTypeValue   CompletionContext = 1 << 4
	ContextDotMemberAccess     CompletionContext = 1 << 5
	ContextArrowMemberAccess   CompletionContext = 1 << 6
	ContextObjCPropertyAccess  CompletionContext = 1 << 7
	ContextEnumTag             CompletionContext = 1 << 8
	ContextUnionTag            CompletionContext = 1 << 9
	ContextStructTag           CompletionContext = 1 << 10
	ContextClassTag            CompletionContext = 1 << 11
	ContextNamespace           CompletionContext = 1 << 12
	ContextNestedNameSpecifier CompletionContext = 1 << 13
	ContextObjCInterface       CompletionContext = 1 << 14
	ContextObjCProtocol        CompletionContext = 1 << 15
	ContextObjCCategory        CompletionContext = 1 << 16
	ContextObjCInstanceMessage CompletionContext = 1 << 17
	ContextObjCClassMessage    CompletionContext = 1 << 18
	ContextObjCSelectorName    CompletionContext = 1 << 19
	ContextMacroName           CompletionContext = 1 << 20
	ContextNaturalLanguage     CompletionContext = 1 << 21
	ContextIncludedFile        CompletionContext = 1 << 22
	ContextUnknown             CompletionContext = (1 << 23) - 1
)

var contextNames = []string{
	"any_type", "any_value", "objc_object_value", "objc_selector_value",
	"cxx_class_type_value", "dot_member_access", "arrow_member_access",
	"objc_property_access", "enum_tag", "union_tag", "struct_tag", "class_tag",
	"namespace", "nested_name_specifier", "objc_interface", "objc_protocol",
	"objc_category", "objc_instance_message", "objc_class_message",
	"objc_selector_name", "macro_name", "natural_language", "included_file",
}

// Names lists the set bits of c.
func (c CompletionContext) Names() []string {
	if c == ContextUnknown {
		return []string{"unknown"}
	}
	var out []string
	for i, n := range contextNames {
		if c&(1<<uint(i)) != 0 {
			out = append(out, n)
		}
	}
	return out
}

func (c CompletionContext) String() string {
	if c == ContextUnexposed {
		return "unexposed"
	}
	return strings.Join(c.Names(), "|")
}

// PolicyProperty is a CXPrintingPolicyProperty value.
type PolicyProperty int32

const (
	PolicyIndentation PolicyProperty = iota
	PolicySuppressSpecifiers
	PolicySuppressTagKeyword
	PolicyIncludeTagDefinition
	PolicySuppressScope
	PolicySuppressUnwrittenScope
	PolicySuppressInitializers
	PolicyConstantArraySizeAsWritten
	PolicyAnonymousTagLocations
	PolicySuppressStrongLifetime
	PolicySuppressLifetimeQualifiers
	PolicySuppressTemplateArgsInCXXConstructors
	PolicyBool
	PolicyRestrict
	PolicyAlignof
	PolicyUnderscoreAlignof
	PolicyUseVoidForZeroParams
	PolicyTerseOutput
	PolicyPolishForDeclaration
	PolicyHalf
	PolicyMSWChar
	PolicyIncludeNewlines
	PolicyMSVCFormatting
	PolicyConstantsAsWritten
	PolicySuppressImplicitBase
	PolicyFullyQualifiedName
	PolicyLastProperty = PolicyFullyQualifiedName
)
