package fakeclang

import (
	"math"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// comment resolves c; the null comment and comments of units that were
// reparsed since come back as nil.
func (l *Lib) comment(c native.Comment) (*unit, *fcomment) {
	if c.TU == 0 || c.ASTNode == 0 {
		return nil, nil
	}
	u := l.unit(native.Handle(c.TU))
	id := int(c.ASTNode)
	if id >= len(u.comments) {
		return u, nil
	}
	return u, &u.comments[id]
}

func (l *Lib) CommentKind(c native.Comment) int32 {
	_, fc := l.comment(c)
	if fc == nil {
		return int32(kinds.CommentNull)
	}
	return int32(fc.kind)
}

func (l *Lib) CommentNumChildren(c native.Comment) int {
	_, fc := l.comment(c)
	if fc == nil {
		return 0
	}
	return len(fc.children)
}

func (l *Lib) CommentChild(c native.Comment, i int) native.Comment {
	_, fc := l.comment(c)
	if fc == nil || i < 0 || i >= len(fc.children) {
		return native.Comment{}
	}
	return native.Comment{ASTNode: uintptr(fc.children[i]), TU: c.TU}
}

func (l *Lib) CommentIsWhitespace(c native.Comment) bool {
	u, fc := l.comment(c)
	return fc != nil && u.isWhitespace(int(c.ASTNode))
}

func (l *Lib) InlineContentHasTrailingNewline(c native.Comment) bool {
	_, fc := l.comment(c)
	return fc != nil && fc.trailing
}

func (l *Lib) TextCommentText(c native.Comment) string {
	_, fc := l.comment(c)
	if fc == nil || fc.kind != kinds.CommentText {
		return ""
	}
	return fc.text
}

func (l *Lib) inline(c native.Comment) *fcomment {
	_, fc := l.comment(c)
	if fc == nil || fc.kind != kinds.CommentInlineCommand {
		return nil
	}
	return fc
}

func (l *Lib) InlineCommandName(c native.Comment) string {
	if fc := l.inline(c); fc != nil {
		return fc.name
	}
	return ""
}

func (l *Lib) InlineCommandRenderKind(c native.Comment) int32 {
	if fc := l.inline(c); fc != nil {
		return int32(fc.render)
	}
	return int32(kinds.InlineRenderNormal)
}

func (l *Lib) InlineCommandNumArgs(c native.Comment) int {
	if fc := l.inline(c); fc != nil {
		return len(fc.args)
	}
	return 0
}

func (l *Lib) InlineCommandArg(c native.Comment, i int) string {
	if fc := l.inline(c); fc != nil && i >= 0 && i < len(fc.args) {
		return fc.args[i]
	}
	return ""
}

func (l *Lib) tag(c native.Comment) (*unit, *fcomment) {
	u, fc := l.comment(c)
	if fc == nil || fc.kind != kinds.CommentHTMLStartTag && fc.kind != kinds.CommentHTMLEndTag {
		return nil, nil
	}
	return u, fc
}

func (l *Lib) HTMLTagName(c native.Comment) string {
	if _, fc := l.tag(c); fc != nil {
		return fc.name
	}
	return ""
}

func (l *Lib) HTMLStartTagSelfClosing(c native.Comment) bool {
	_, fc := l.tag(c)
	return fc != nil && fc.selfClose
}

func (l *Lib) HTMLNumAttrs(c native.Comment) int {
	if _, fc := l.tag(c); fc != nil {
		return len(fc.attrs)
	}
	return 0
}

func (l *Lib) HTMLAttrName(c native.Comment, i int) string {
	if _, fc := l.tag(c); fc != nil && i >= 0 && i < len(fc.attrs) {
		return fc.attrs[i][0]
	}
	return ""
}

func (l *Lib) HTMLAttrValue(c native.Comment, i int) string {
	if _, fc := l.tag(c); fc != nil && i >= 0 && i < len(fc.attrs) {
		return fc.attrs[i][1]
	}
	return ""
}

func (l *Lib) HTMLTagAsString(c native.Comment) string {
	if u, fc := l.tag(c); fc != nil {
		return u.tagString(int(c.ASTNode))
	}
	return ""
}

func isBlock(k kinds.CommentKind) bool {
	switch k {
	case kinds.CommentBlockCommand, kinds.CommentParamCommand, kinds.CommentTParamCommand,
		kinds.CommentVerbatimBlockCommand, kinds.CommentVerbatimLine:
		return true
	}
	return false
}

func (l *Lib) block(c native.Comment) *fcomment {
	_, fc := l.comment(c)
	if fc == nil || !isBlock(fc.kind) {
		return nil
	}
	return fc
}

func (l *Lib) BlockCommandName(c native.Comment) string {
	if fc := l.block(c); fc != nil {
		return fc.name
	}
	return ""
}

func (l *Lib) BlockCommandNumArgs(c native.Comment) int {
	if fc := l.block(c); fc != nil && fc.kind == kinds.CommentBlockCommand {
		return len(fc.args)
	}
	return 0
}

func (l *Lib) BlockCommandArg(c native.Comment, i int) string {
	if fc := l.block(c); fc != nil && fc.kind == kinds.CommentBlockCommand && i >= 0 && i < len(fc.args) {
		return fc.args[i]
	}
	return ""
}

func (l *Lib) BlockCommandParagraph(c native.Comment) native.Comment {
	fc := l.block(c)
	if fc == nil || fc.paragraph == 0 {
		return native.Comment{}
	}
	return native.Comment{ASTNode: uintptr(fc.paragraph), TU: c.TU}
}

func (l *Lib) param(c native.Comment, kind kinds.CommentKind) *fcomment {
	_, fc := l.comment(c)
	if fc == nil || fc.kind != kind {
		return nil
	}
	return fc
}

func (l *Lib) ParamCommandName(c native.Comment) string {
	if fc := l.param(c, kinds.CommentParamCommand); fc != nil && len(fc.args) > 0 {
		return fc.args[0]
	}
	return ""
}

func (l *Lib) ParamCommandIndexValid(c native.Comment) bool {
	fc := l.param(c, kinds.CommentParamCommand)
	return fc != nil && fc.index >= 0
}

func (l *Lib) ParamCommandIndex(c native.Comment) uint32 {
	if fc := l.param(c, kinds.CommentParamCommand); fc != nil && fc.index >= 0 {
		return uint32(fc.index)
	}
	return math.MaxUint32
}

func (l *Lib) ParamCommandDirectionExplicit(c native.Comment) bool {
	fc := l.param(c, kinds.CommentParamCommand)
	return fc != nil && fc.explicit
}

func (l *Lib) ParamCommandDirection(c native.Comment) int32 {
	if fc := l.param(c, kinds.CommentParamCommand); fc != nil {
		return int32(fc.direction)
	}
	return int32(kinds.ParamDirectionIn)
}

func (l *Lib) TParamCommandName(c native.Comment) string {
	if fc := l.param(c, kinds.CommentTParamCommand); fc != nil && len(fc.args) > 0 {
		return fc.args[0]
	}
	return ""
}

// C has no templates, so template parameter positions never resolve.
func (l *Lib) TParamCommandPositionValid(c native.Comment) bool         { return false }
func (l *Lib) TParamCommandDepth(c native.Comment) uint32               { return 0 }
func (l *Lib) TParamCommandIndex(c native.Comment, depth uint32) uint32 { return 0 }

func (l *Lib) VerbatimBlockLineText(c native.Comment) string {
	if fc := l.param(c, kinds.CommentVerbatimBlockLine); fc != nil {
		return fc.text
	}
	return ""
}

func (l *Lib) VerbatimLineText(c native.Comment) string {
	if fc := l.param(c, kinds.CommentVerbatimLine); fc != nil {
		return fc.text
	}
	return ""
}

func (l *Lib) FullCommentAsHTML(c native.Comment) string {
	u, fc := l.comment(c)
	if fc == nil || fc.kind != kinds.CommentFull {
		return ""
	}
	return u.commentHTML(int(c.ASTNode))
}

func (l *Lib) FullCommentAsXML(c native.Comment) string {
	u, fc := l.comment(c)
	if fc == nil || fc.kind != kinds.CommentFull {
		return ""
	}
	return u.commentXML(int(c.ASTNode))
}
