package docgen

import (
	"fmt"
	"slices"

	"clangview/internal/diag"
)

// Finding is a documentation problem at a position of a FileDoc's file.
type Finding struct {
	Code     diag.Code
	Severity diag.Severity
	Symbol   string
	Line     int
	Col      int
	Message  string
}

func lintable(kind string) bool {
	switch kind {
	case "FunctionDecl", "StructDecl", "UnionDecl", "EnumDecl", "TypedefDecl", "VarDecl":
		return true
	}
	return false
}

// Lint checks the comments of doc:
//   - externally visible declarations without a comment,
//   - \param blocks naming no parameter,
//   - parameters left out when at least one \param is written,
//   - comments whose brief is empty.
func Lint(doc FileDoc) []Finding {
	var out []Finding
	add := func(s *Symbol, code diag.Code, sev diag.Severity, format string, args ...any) {
		out = append(out, Finding{
			Code:     code,
			Severity: sev,
			Symbol:   s.Name,
			Line:     s.Line,
			Col:      s.Col,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	for i := range doc.Symbols {
		s := &doc.Symbols[i]
		if !s.HasComment {
			if lintable(s.Kind) && !s.Internal {
				add(s, diag.DocMissingComment, diag.SevWarning, "'%s' has no documentation comment", s.Name)
			}
			continue
		}
		if s.Brief == "" {
			add(s, diag.DocEmptyBrief, diag.SevWarning, "documentation of '%s' has no brief description", s.Name)
		}
		documented := make([]string, 0, len(s.Params))
		for _, p := range s.Params {
			documented = append(documented, p.Name)
			if p.Index < 0 {
				add(s, diag.DocUnknownParam, diag.SevWarning, "'%s' has no parameter named '%s'", s.Name, p.Name)
			}
		}
		if len(s.Params) == 0 {
			continue
		}
		for _, name := range s.ParamNames {
			if name != "" && !slices.Contains(documented, name) {
				add(s, diag.DocMissingParam, diag.SevInfo, "parameter '%s' of '%s' is not documented", name, s.Name)
			}
		}
	}
	return out
}
