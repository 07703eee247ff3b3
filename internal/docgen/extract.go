package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"clangview/internal/clang"
	"clangview/internal/kinds"
)

func documentable(k kinds.CursorKind) bool {
	switch k {
	case kinds.CursorFunctionDecl, kinds.CursorStructDecl, kinds.CursorUnionDecl,
		kinds.CursorEnumDecl, kinds.CursorTypedefDecl, kinds.CursorVarDecl,
		kinds.CursorMacroDefinition:
		return true
	}
	return false
}

// Extract collects the top-level declarations of the main file of tu.
// Redeclarations share one Symbol, keyed by USR; the first one with a
// comment provides the documentation.
func Extract(tu *clang.TranslationUnit) (FileDoc, error) {
	doc := FileDoc{Path: tu.Path()}
	kids, err := tu.Cursor().Children()
	if err != nil {
		return doc, err
	}
	seen := make(map[string]int)
	for _, c := range kids {
		if !documentable(c.Kind()) || !c.Location().IsFromMainFile() {
			continue
		}
		sym, err := symbolOf(c)
		if err != nil {
			return doc, fmt.Errorf("%s: %w", c.Location(), err)
		}
		if sym.Name == "" {
			continue
		}
		if sym.USR != "" {
			if i, ok := seen[sym.USR]; ok {
				doc.Symbols[i] = merge(doc.Symbols[i], sym)
				continue
			}
			seen[sym.USR] = len(doc.Symbols)
		}
		doc.Symbols = append(doc.Symbols, sym)
	}
	doc.Deps = deps(tu)
	return doc, nil
}

func deps(tu *clang.TranslationUnit) []string {
	var out []string
	for _, inc := range tu.Inclusions() {
		if inc.Depth() == 0 || inc.File.IsZero() {
			continue
		}
		if tu.Location(inc.File, 1, 1).IsInSystemHeader() {
			continue
		}
		out = append(out, inc.File.Name())
	}
	return out
}

func merge(first, next Symbol) Symbol {
	first.Defined = first.Defined || next.Defined
	if !first.HasComment && next.HasComment {
		first.HasComment = true
		first.Brief = next.Brief
		first.Paragraphs = next.Paragraphs
		first.Params = next.Params
		first.Returns = next.Returns
		first.Sections = next.Sections
	}
	if len(first.Members) == 0 {
		first.Members = next.Members
	}
	return first
}

func symbolOf(c clang.Cursor) (Symbol, error) {
	loc := c.Location()
	sym := Symbol{
		Name:     c.Spelling(),
		Kind:     c.Kind().String(),
		USR:      c.USR(),
		Line:     loc.Line(),
		Col:      loc.Column(),
		Defined:  c.IsDefinition(),
		Internal: c.Linkage() == kinds.LinkageInternal,
	}
	if c.Kind() != kinds.CursorMacroDefinition {
		t, err := c.Type()
		if err != nil {
			return sym, err
		}
		if t.Kind() != kinds.TypeInvalid {
			sym.Type = t.Spelling()
		}
	}
	switch c.Kind() {
	case kinds.CursorFunctionDecl:
		rt, err := c.ResultType()
		if err != nil {
			return sym, err
		}
		sym.Result = rt.Spelling()
		args, err := c.Arguments()
		if err != nil {
			return sym, err
		}
		for _, a := range args {
			sym.ParamNames = append(sym.ParamNames, a.Spelling())
		}
	case kinds.CursorStructDecl, kinds.CursorUnionDecl, kinds.CursorEnumDecl:
		members, err := membersOf(c)
		if err != nil {
			return sym, err
		}
		sym.Members = members
	}
	com, err := c.Comment()
	if err != nil {
		return sym, err
	}
	if full, ok := com.(*clang.FullComment); ok {
		if err := readComment(full, &sym); err != nil {
			return sym, err
		}
		sym.Brief = normalize(c.BriefComment())
		if sym.Brief == "" && len(sym.Paragraphs) > 0 {
			sym.Brief = sym.Paragraphs[0]
		}
		if len(sym.Paragraphs) > 0 && sym.Paragraphs[0] == sym.Brief {
			sym.Paragraphs = sym.Paragraphs[1:]
		}
	}
	return sym, nil
}

func membersOf(c clang.Cursor) ([]Symbol, error) {
	kids, err := c.Children()
	if err != nil {
		return nil, err
	}
	var out []Symbol
	for _, k := range kids {
		if k.Kind() != kinds.CursorFieldDecl && k.Kind() != kinds.CursorEnumConstantDecl {
			continue
		}
		m, err := symbolOf(k)
		if err != nil {
			return nil, err
		}
		if k.Kind() == kinds.CursorEnumConstantDecl {
			v, err := k.EnumValue()
			if err != nil {
				return nil, err
			}
			m.Value = strconv.FormatInt(v, 10)
		}
		out = append(out, m)
	}
	return out, nil
}

func readComment(full *clang.FullComment, sym *Symbol) error {
	sym.HasComment = true
	blocks, err := full.Children()
	if err != nil {
		return err
	}
	for _, b := range blocks {
		switch n := b.(type) {
		case *clang.ParagraphComment:
			if t := inlineText(n); t != "" {
				sym.Paragraphs = append(sym.Paragraphs, t)
			}
		case *clang.BlockCommandComment:
			text := blockText(n)
			switch n.Name() {
			case "brief", "short":
			case "return", "returns", "result":
				sym.Returns = text
			default:
				sym.Sections = append(sym.Sections, Section{Name: n.Name(), Text: text})
			}
		case *clang.ParamCommandComment:
			p := Param{Name: n.Name(), Index: -1, Text: blockText(n)}
			if n.HasValidIndex() {
				p.Index = n.Index()
			}
			if n.IsDirectionExplicit() {
				p.Direction = n.Direction().String()
			}
			sym.Params = append(sym.Params, p)
		case *clang.VerbatimBlockCommandComment:
			sym.Sections = append(sym.Sections, Section{Name: n.Name(), Text: norm.NFC.String(n.Text())})
		}
	}
	return nil
}

type paragraphed interface {
	Paragraph() (*clang.ParagraphComment, error)
}

func blockText(b paragraphed) string {
	p, err := b.Paragraph()
	if err != nil {
		return ""
	}
	return inlineText(p)
}

// inlineText renders a paragraph as one line of plain text: markup is
// dropped, inline commands keep their arguments.
func inlineText(p *clang.ParagraphComment) string {
	kids, err := p.Children()
	if err != nil {
		return ""
	}
	var sb strings.Builder
	for _, k := range kids {
		switch n := k.(type) {
		case *clang.TextComment:
			sb.WriteString(n.Text())
		case *clang.InlineCommandComment:
			sb.WriteString(strings.Join(n.Args(), " "))
		}
		if k.HasTrailingNewline() {
			sb.WriteByte(' ')
		}
	}
	return normalize(sb.String())
}

// normalize collapses runs of white space and returns the NFC form.
func normalize(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
