package clang

import (
	"strings"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// Comment is a node of a parsed documentation comment. The concrete value
// is picked by kind; an unknown kind tag is an error, never a fallback.
type Comment interface {
	Kind() kinds.CommentKind
	NumChildren() int
	Child(i int) (Comment, error)
	Children() ([]Comment, error)
	IsWhitespace() bool
	HasTrailingNewline() bool
	// Text is the plain text of the node and its descendants. Nodes that
	// carry no text return "".
	Text() string

	base() *commentBase
}

type commentBase struct {
	c    native.Comment
	kind kinds.CommentKind
	tu   *TranslationUnit
}

type (
	NullComment                 struct{ commentBase }
	TextComment                 struct{ commentBase }
	InlineCommandComment        struct{ commentBase }
	HTMLStartTagComment         struct{ commentBase }
	HTMLEndTagComment           struct{ commentBase }
	ParagraphComment            struct{ commentBase }
	BlockCommandComment         struct{ commentBase }
	ParamCommandComment         struct{ commentBase }
	TParamCommandComment        struct{ commentBase }
	VerbatimBlockCommandComment struct{ commentBase }
	VerbatimBlockLineComment    struct{ commentBase }
	VerbatimLineComment         struct{ commentBase }
	FullComment                 struct{ commentBase }
)

func (tu *TranslationUnit) newComment(c native.Comment) (Comment, error) {
	k, err := tu.b.reg.Comment(tu.b.lib.CommentKind(c))
	if err != nil {
		return nil, err
	}
	b := commentBase{c: c, kind: k, tu: tu}
	switch k {
	case kinds.CommentNull:
		return &NullComment{b}, nil
	case kinds.CommentText:
		return &TextComment{b}, nil
	case kinds.CommentInlineCommand:
		return &InlineCommandComment{b}, nil
	case kinds.CommentHTMLStartTag:
		return &HTMLStartTagComment{b}, nil
	case kinds.CommentHTMLEndTag:
		return &HTMLEndTagComment{b}, nil
	case kinds.CommentParagraph:
		return &ParagraphComment{b}, nil
	case kinds.CommentBlockCommand:
		return &BlockCommandComment{b}, nil
	case kinds.CommentParamCommand:
		return &ParamCommandComment{b}, nil
	case kinds.CommentTParamCommand:
		return &TParamCommandComment{b}, nil
	case kinds.CommentVerbatimBlockCommand:
		return &VerbatimBlockCommandComment{b}, nil
	case kinds.CommentVerbatimBlockLine:
		return &VerbatimBlockLineComment{b}, nil
	case kinds.CommentVerbatimLine:
		return &VerbatimLineComment{b}, nil
	case kinds.CommentFull:
		return &FullComment{b}, nil
	}
	return nil, &kinds.UnknownError{Family: "comment", Value: int64(k)}
}

func (c *commentBase) base() *commentBase       { return c }
func (c *commentBase) lib() native.Library      { return c.tu.lib() }
func (c *commentBase) Kind() kinds.CommentKind  { return c.kind }
func (c *commentBase) NumChildren() int         { return c.lib().CommentNumChildren(c.c) }
func (c *commentBase) IsWhitespace() bool       { return c.lib().CommentIsWhitespace(c.c) }
func (c *commentBase) Text() string             { return "" }
func (c *commentBase) HasTrailingNewline() bool { return c.lib().InlineContentHasTrailingNewline(c.c) }

func (c *commentBase) Child(i int) (Comment, error) {
	n := c.NumChildren()
	if i < 0 || i >= n {
		return nil, outOfRange(i, n)
	}
	return c.tu.newComment(c.lib().CommentChild(c.c, i))
}

func (c *commentBase) Children() ([]Comment, error) {
	n := c.NumChildren()
	out := make([]Comment, 0, n)
	for i := range n {
		ch, err := c.Child(i)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// joinText concatenates the Text of the children of c with sep.
func joinText(c Comment, sep string) string {
	kids, err := c.Children()
	if err != nil {
		return ""
	}
	parts := make([]string, 0, len(kids))
	for _, k := range kids {
		parts = append(parts, k.Text())
	}
	return strings.Join(parts, sep)
}

func (c *TextComment) Text() string { return c.lib().TextCommentText(c.c) }

// Text joins the text of each line of the paragraph with "\n".
func (c *ParagraphComment) Text() string { return joinText(c, "\n") }

// Text joins the non-empty text of every block, one per line.
func (c *FullComment) Text() string {
	kids, err := c.Children()
	if err != nil {
		return ""
	}
	var parts []string
	for _, k := range kids {
		if k.IsWhitespace() {
			continue
		}
		if s := k.Text(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (c *FullComment) HTML() string { return c.lib().FullCommentAsHTML(c.c) }
func (c *FullComment) XML() string  { return c.lib().FullCommentAsXML(c.c) }

func (c *InlineCommandComment) Name() string { return c.lib().InlineCommandName(c.c) }
func (c *InlineCommandComment) NumArgs() int { return c.lib().InlineCommandNumArgs(c.c) }

func (c *InlineCommandComment) RenderKind() kinds.InlineRenderKind {
	return kinds.InlineRenderKind(c.lib().InlineCommandRenderKind(c.c))
}

func (c *InlineCommandComment) Args() []string {
	out := make([]string, c.NumArgs())
	for i := range out {
		out[i] = c.lib().InlineCommandArg(c.c, i)
	}
	return out
}

// Text is the arguments of the command separated by spaces, as rendered.
func (c *InlineCommandComment) Text() string { return strings.Join(c.Args(), " ") }

// HTMLAttribute is one attribute of an HTML start tag.
type HTMLAttribute struct {
	Name  string
	Value string
}

func (c *HTMLStartTagComment) Name() string        { return c.lib().HTMLTagName(c.c) }
func (c *HTMLStartTagComment) IsSelfClosing() bool { return c.lib().HTMLStartTagSelfClosing(c.c) }
func (c *HTMLStartTagComment) String() string      { return c.lib().HTMLTagAsString(c.c) }

func (c *HTMLStartTagComment) Attributes() []HTMLAttribute {
	out := make([]HTMLAttribute, c.lib().HTMLNumAttrs(c.c))
	for i := range out {
		out[i] = HTMLAttribute{Name: c.lib().HTMLAttrName(c.c, i), Value: c.lib().HTMLAttrValue(c.c, i)}
	}
	return out
}

func (c *HTMLEndTagComment) Name() string   { return c.lib().HTMLTagName(c.c) }
func (c *HTMLEndTagComment) String() string { return c.lib().HTMLTagAsString(c.c) }

// paragraph returns the paragraph attached to a block command.
func (c *commentBase) paragraph() (*ParagraphComment, error) {
	p, err := c.tu.newComment(c.lib().BlockCommandParagraph(c.c))
	if err != nil {
		return nil, err
	}
	if para, ok := p.(*ParagraphComment); ok {
		return para, nil
	}
	return nil, kindMismatch("Paragraph", p.Kind())
}

func paragraphText(c *commentBase) string {
	p, err := c.paragraph()
	if err != nil {
		return ""
	}
	return p.Text()
}

func (c *BlockCommandComment) Name() string { return c.lib().BlockCommandName(c.c) }
func (c *BlockCommandComment) NumArgs() int { return c.lib().BlockCommandNumArgs(c.c) }

func (c *BlockCommandComment) Args() []string {
	out := make([]string, c.NumArgs())
	for i := range out {
		out[i] = c.lib().BlockCommandArg(c.c, i)
	}
	return out
}

func (c *BlockCommandComment) Paragraph() (*ParagraphComment, error) { return c.paragraph() }
func (c *BlockCommandComment) Text() string                          { return paragraphText(&c.commentBase) }

// Name is the parameter name as written.
func (c *ParamCommandComment) Name() string { return c.lib().ParamCommandName(c.c) }

// HasValidIndex reports whether Name matched a parameter of the function.
func (c *ParamCommandComment) HasValidIndex() bool { return c.lib().ParamCommandIndexValid(c.c) }

// Index is the zero-based parameter position; meaningful only when
// HasValidIndex.
func (c *ParamCommandComment) Index() int { return int(c.lib().ParamCommandIndex(c.c)) }

func (c *ParamCommandComment) IsDirectionExplicit() bool {
	return c.lib().ParamCommandDirectionExplicit(c.c)
}

func (c *ParamCommandComment) Direction() kinds.ParamDirection {
	return kinds.ParamDirection(c.lib().ParamCommandDirection(c.c))
}

func (c *ParamCommandComment) Paragraph() (*ParagraphComment, error) { return c.paragraph() }
func (c *ParamCommandComment) Text() string                          { return paragraphText(&c.commentBase) }

func (c *TParamCommandComment) Name() string { return c.lib().TParamCommandName(c.c) }

// HasValidPosition reports whether Name matched a template parameter.
func (c *TParamCommandComment) HasValidPosition() bool {
	return c.lib().TParamCommandPositionValid(c.c)
}

// Depth is the nesting depth of the template parameter list.
func (c *TParamCommandComment) Depth() int { return int(c.lib().TParamCommandDepth(c.c)) }

// Index is the position of the parameter in the list at depth.
func (c *TParamCommandComment) Index(depth int) int {
	if depth < 0 {
		return -1
	}
	return int(c.lib().TParamCommandIndex(c.c, uint32(depth)))
}

func (c *TParamCommandComment) Paragraph() (*ParagraphComment, error) { return c.paragraph() }
func (c *TParamCommandComment) Text() string                          { return paragraphText(&c.commentBase) }

func (c *VerbatimBlockCommandComment) Name() string { return c.lib().BlockCommandName(c.c) }

// Text joins the lines of the block with "\n".
func (c *VerbatimBlockCommandComment) Text() string { return joinText(c, "\n") }

func (c *VerbatimBlockLineComment) Text() string { return c.lib().VerbatimBlockLineText(c.c) }

func (c *VerbatimLineComment) Name() string { return c.lib().BlockCommandName(c.c) }
func (c *VerbatimLineComment) Text() string { return c.lib().VerbatimLineText(c.c) }
