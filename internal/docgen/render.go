package docgen

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("invalid doc format %q (expected text|json|yaml)", s)
}

// TextOpts controls Text.
type TextOpts struct {
	Color bool
	// Undocumented lists symbols without a comment too.
	Undocumented bool
}

type palette struct {
	color  bool
	file   lipgloss.Style
	name   lipgloss.Style
	kind   lipgloss.Style
	loc    lipgloss.Style
	header lipgloss.Style
}

func newPalette(color bool) palette {
	return palette{
		color:  color,
		file:   lipgloss.NewStyle().Bold(true).Underline(true),
		name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		loc:    lipgloss.NewStyle().Faint(true),
		header: lipgloss.NewStyle().Bold(true),
	}
}

func (p palette) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Render writes docs in format.
func Render(w io.Writer, docs []FileDoc, format Format, opts TextOpts) error {
	switch format {
	case FormatJSON:
		return JSON(w, docs)
	case FormatYAML:
		return YAML(w, docs)
	default:
		return Text(w, docs, opts)
	}
}

func JSON(w io.Writer, docs []FileDoc) error {
	if docs == nil {
		docs = []FileDoc{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

func YAML(w io.Writer, docs []FileDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}
	return enc.Close()
}

// Text writes a human-readable listing, one block per symbol.
func Text(w io.Writer, docs []FileDoc, opts TextOpts) error {
	p := newPalette(opts.Color)
	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.paint(p.file, doc.Path))
		sb.WriteString("\n")
		for _, s := range doc.Symbols {
			if !s.HasComment && !opts.Undocumented {
				continue
			}
			writeSymbol(&sb, p, doc.Path, &s, "  ")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSymbol(sb *strings.Builder, p palette, path string, s *Symbol, indent string) {
	sb.WriteString("\n")
	sb.WriteString(indent)
	sb.WriteString(p.paint(p.kind, s.Kind))
	sb.WriteString(" ")
	sb.WriteString(p.paint(p.name, s.Name))
	if s.Type != "" {
		sb.WriteString(" : ")
		sb.WriteString(s.Type)
	}
	if s.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(s.Value)
	}
	sb.WriteString(" ")
	sb.WriteString(p.paint(p.loc, fmt.Sprintf("(%s:%d:%d)", path, s.Line, s.Col)))
	sb.WriteString("\n")

	body := indent + "    "
	if s.Brief != "" {
		fmt.Fprintf(sb, "%s%s\n", body, s.Brief)
	}
	for _, para := range s.Paragraphs {
		fmt.Fprintf(sb, "\n%s%s\n", body, para)
	}
	if len(s.Params) > 0 {
		fmt.Fprintf(sb, "\n%s%s\n", body, p.paint(p.header, "Parameters:"))
		width := 0
		for _, prm := range s.Params {
			width = max(width, len(paramLabel(prm)))
		}
		for _, prm := range s.Params {
			fmt.Fprintf(sb, "%s  %-*s  %s\n", body, width, paramLabel(prm), prm.Text)
		}
	}
	if s.Returns != "" {
		fmt.Fprintf(sb, "\n%s%s %s\n", body, p.paint(p.header, "Returns:"), s.Returns)
	}
	for _, sec := range s.Sections {
		fmt.Fprintf(sb, "\n%s%s %s\n", body, p.paint(p.header, sec.Name+":"), sec.Text)
	}
	for i := range s.Members {
		writeSymbol(sb, p, path, &s.Members[i], body)
	}
}

func paramLabel(p Param) string {
	if p.Direction == "" {
		return p.Name
	}
	return p.Name + " [" + p.Direction + "]"
}
