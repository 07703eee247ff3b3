package kinds

import "fmt"

// CommentKind is a CXCommentKind value.
type CommentKind int32

const (
	CommentNull                 CommentKind = 0
	CommentText                 CommentKind = 1
	CommentInlineCommand        CommentKind = 2
	CommentHTMLStartTag         CommentKind = 3
	CommentHTMLEndTag           CommentKind = 4
	CommentParagraph            CommentKind = 5
	CommentBlockCommand         CommentKind = 6
	CommentParamCommand         CommentKind = 7
	CommentTParamCommand        CommentKind = 8
	CommentVerbatimBlockCommand CommentKind = 9
	CommentVerbatimBlockLine    CommentKind = 10
	CommentVerbatimLine         CommentKind = 11
	CommentFull                 CommentKind = 12
)

var commentNames = map[CommentKind]string{
	CommentNull:                 "Null",
	CommentText:                 "Text",
	CommentInlineCommand:        "InlineCommand",
	CommentHTMLStartTag:         "HTMLStartTag",
	CommentHTMLEndTag:           "HTMLEndTag",
	CommentParagraph:            "Paragraph",
	CommentBlockCommand:         "BlockCommand",
	CommentParamCommand:         "ParamCommand",
	CommentTParamCommand:        "TParamCommand",
	CommentVerbatimBlockCommand: "VerbatimBlockCommand",
	CommentVerbatimBlockLine:    "VerbatimBlockLine",
	CommentVerbatimLine:         "VerbatimLine",
	CommentFull:                 "FullComment",
}

func (k CommentKind) String() string {
	if s, ok := commentNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CommentKind(%d)", int32(k))
}

// InlineRenderKind is a CXCommentInlineCommandRenderKind value.
type InlineRenderKind int32

const (
	InlineRenderNormal     InlineRenderKind = 0
	InlineRenderBold       InlineRenderKind = 1
	InlineRenderMonospaced InlineRenderKind = 2
	InlineRenderEmphasized InlineRenderKind = 3
	InlineRenderAnchor     InlineRenderKind = 4
)

func (k InlineRenderKind) String() string {
	switch k {
	case InlineRenderNormal:
		return "normal"
	case InlineRenderBold:
		return "bold"
	case InlineRenderMonospaced:
		return "monospaced"
	case InlineRenderEmphasized:
		return "emphasized"
	case InlineRenderAnchor:
		return "anchor"
	}
	return fmt.Sprintf("InlineRenderKind(%d)", int32(k))
}

// ParamDirection is a CXCommentParamPassDirection value.
type ParamDirection int32

const (
	ParamDirectionIn    ParamDirection = 0
	ParamDirectionOut   ParamDirection = 1
	ParamDirectionInOut ParamDirection = 2
)

func (d ParamDirection) String() string {
	switch d {
	case ParamDirectionIn:
		return "in"
	case ParamDirectionOut:
		return "out"
	case ParamDirectionInOut:
		return "inout"
	}
	return fmt.Sprintf("ParamDirection(%d)", int32(d))
}
