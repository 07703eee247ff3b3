package kinds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// CursorKind is a CXCursorKind value.
type CursorKind int32

// Category is the capability class of a cursor kind.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryDeclaration
	CategoryReference
	CategoryExpression
	CategoryStatement
	CategoryAttribute
	CategoryPreprocessing
	CategoryInvalid
	CategoryTranslationUnit
)

func (c Category) String() string {
	switch c {
	case CategoryDeclaration:
		return "declaration"
	case CategoryReference:
		return "reference"
	case CategoryExpression:
		return "expression"
	case CategoryStatement:
		return "statement"
	case CategoryAttribute:
		return "attribute"
	case CategoryPreprocessing:
		return "preprocessing"
	case CategoryInvalid:
		return "invalid"
	case CategoryTranslationUnit:
		return "translation-unit"
	}
	return "other"
}

// Category classifies k by its ABI range.
func (k CursorKind) Category() Category {
	switch {
	case k >= CursorUnexposedDecl && k <= CursorCXXAccessSpecifier:
		return CategoryDeclaration
	case k >= CursorModuleImportDecl && k <= CursorConceptDecl:
		return CategoryDeclaration
	case k >= CursorObjCSuperClassRef && k <= CursorVariableRef:
		return CategoryReference
	case k >= CursorInvalidFile && k <= CursorInvalidCode:
		return CategoryInvalid
	case k >= CursorUnexposedExpr && k < CursorUnexposedStmt:
		return CategoryExpression
	case k == CursorBuiltinBitCastExpr:
		return CategoryExpression
	case k >= CursorUnexposedStmt && k < CursorTranslationUnit:
		return CategoryStatement
	case k == CursorTranslationUnit:
		return CategoryTranslationUnit
	case k >= CursorUnexposedAttr && k < CursorPreprocessingDirective:
		return CategoryAttribute
	case k >= CursorPreprocessingDirective && k <= CursorInclusionDirective:
		return CategoryPreprocessing
	}
	return CategoryOther
}

// IsDeclaration reports whether k names a declaration.
func (k CursorKind) IsDeclaration() bool { return k.Category() == CategoryDeclaration }

// IsUnexposed reports whether k is one of the catch-all unexposed kinds.
func (k CursorKind) IsUnexposed() bool {
	switch k {
	case CursorUnexposedDecl, CursorUnexposedExpr, CursorUnexposedStmt, CursorUnexposedAttr:
		return true
	}
	return false
}

// IsRecord reports whether k declares a struct, union or class.
func (k CursorKind) IsRecord() bool {
	return k == CursorStructDecl || k == CursorUnionDecl || k == CursorClassDecl
}

// IsFunctionLike reports whether k declares something callable.
func (k CursorKind) IsFunctionLike() bool {
	switch k {
	case CursorFunctionDecl, CursorCXXMethod, CursorConstructor, CursorDestructor,
		CursorConversionFunction, CursorFunctionTemplate, CursorObjCInstanceMethodDecl,
		CursorObjCClassMethodDecl:
		return true
	}
	return false
}

func (k CursorKind) String() string {
	if s, ok := cursorNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CursorKind(%d)", int32(k))
}

// ParseCursorKind resolves a kind name as printed by String. Matching ignores
// case and underscores, so "struct_decl" and "StructDecl" are equivalent.
func ParseCursorKind(name string) (CursorKind, error) {
	want := normalizeName(name)
	for k, s := range cursorNames {
		if normalizeName(s) == want {
			return k, nil
		}
	}
	err := &UnknownNameError{Family: "cursor", Name: name}
	err.Suggestions = suggest(want, cursorNames)
	return 0, err
}

// UnknownNameError reports a kind name that matches no entry.
type UnknownNameError struct {
	Family      string
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("unknown %s kind %q", e.Family, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

func suggest[K comparable](want string, names map[K]string) []string {
	type scored struct {
		name  string
		score float32
	}
	var hits []scored
	for _, s := range names {
		score, err := edlib.StringsSimilarity(want, normalizeName(s), edlib.Levenshtein)
		if err != nil || score < 0.7 {
			continue
		}
		hits = append(hits, scored{name: s, score: score})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > 3 {
		hits = hits[:3]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
