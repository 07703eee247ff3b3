//go:build libclang

package libclang

/*
#include "shim.h"
*/
import "C"

import "clangview/internal/native"

func (l *Lib) CommentKind(c native.Comment) int32 {
	return int32(C.clang_Comment_getKind(cComment(c)))
}

func (l *Lib) CommentNumChildren(c native.Comment) int {
	return int(C.clang_Comment_getNumChildren(cComment(c)))
}

func (l *Lib) CommentChild(c native.Comment, i int) native.Comment {
	return goComment(C.clang_Comment_getChild(cComment(c), C.uint(i)))
}

func (l *Lib) CommentIsWhitespace(c native.Comment) bool {
	return C.clang_Comment_isWhitespace(cComment(c)) != 0
}

func (l *Lib) InlineContentHasTrailingNewline(c native.Comment) bool {
	return C.clang_InlineContentComment_hasTrailingNewline(cComment(c)) != 0
}

func (l *Lib) TextCommentText(c native.Comment) string {
	return str(C.clang_TextComment_getText(cComment(c)))
}

func (l *Lib) InlineCommandName(c native.Comment) string {
	return str(C.clang_InlineCommandComment_getCommandName(cComment(c)))
}

func (l *Lib) InlineCommandRenderKind(c native.Comment) int32 {
	return int32(C.clang_InlineCommandComment_getRenderKind(cComment(c)))
}

func (l *Lib) InlineCommandNumArgs(c native.Comment) int {
	return int(C.clang_InlineCommandComment_getNumArgs(cComment(c)))
}

func (l *Lib) InlineCommandArg(c native.Comment, i int) string {
	return str(C.clang_InlineCommandComment_getArgText(cComment(c), C.uint(i)))
}

func (l *Lib) HTMLTagName(c native.Comment) string {
	return str(C.clang_HTMLTagComment_getTagName(cComment(c)))
}

func (l *Lib) HTMLStartTagSelfClosing(c native.Comment) bool {
	return C.clang_HTMLStartTagComment_isSelfClosing(cComment(c)) != 0
}

func (l *Lib) HTMLNumAttrs(c native.Comment) int {
	return int(C.clang_HTMLStartTag_getNumAttrs(cComment(c)))
}

func (l *Lib) HTMLAttrName(c native.Comment, i int) string {
	return str(C.clang_HTMLStartTag_getAttrName(cComment(c), C.uint(i)))
}

func (l *Lib) HTMLAttrValue(c native.Comment, i int) string {
	return str(C.clang_HTMLStartTag_getAttrValue(cComment(c), C.uint(i)))
}

func (l *Lib) HTMLTagAsString(c native.Comment) string {
	return str(C.clang_HTMLTagComment_getAsString(cComment(c)))
}

func (l *Lib) BlockCommandName(c native.Comment) string {
	return str(C.clang_BlockCommandComment_getCommandName(cComment(c)))
}

func (l *Lib) BlockCommandNumArgs(c native.Comment) int {
	return int(C.clang_BlockCommandComment_getNumArgs(cComment(c)))
}

func (l *Lib) BlockCommandArg(c native.Comment, i int) string {
	return str(C.clang_BlockCommandComment_getArgText(cComment(c), C.uint(i)))
}

func (l *Lib) BlockCommandParagraph(c native.Comment) native.Comment {
	return goComment(C.clang_BlockCommandComment_getParagraph(cComment(c)))
}

func (l *Lib) ParamCommandName(c native.Comment) string {
	return str(C.clang_ParamCommandComment_getParamName(cComment(c)))
}

func (l *Lib) ParamCommandIndexValid(c native.Comment) bool {
	return C.clang_ParamCommandComment_isParamIndexValid(cComment(c)) != 0
}

func (l *Lib) ParamCommandIndex(c native.Comment) uint32 {
	return uint32(C.clang_ParamCommandComment_getParamIndex(cComment(c)))
}

func (l *Lib) ParamCommandDirectionExplicit(c native.Comment) bool {
	return C.clang_ParamCommandComment_isDirectionExplicit(cComment(c)) != 0
}

func (l *Lib) ParamCommandDirection(c native.Comment) int32 {
	return int32(C.clang_ParamCommandComment_getDirection(cComment(c)))
}

func (l *Lib) TParamCommandName(c native.Comment) string {
	return str(C.clang_TParamCommandComment_getParamName(cComment(c)))
}

func (l *Lib) TParamCommandPositionValid(c native.Comment) bool {
	return C.clang_TParamCommandComment_isParamPositionValid(cComment(c)) != 0
}

func (l *Lib) TParamCommandDepth(c native.Comment) uint32 {
	return uint32(C.clang_TParamCommandComment_getDepth(cComment(c)))
}

func (l *Lib) TParamCommandIndex(c native.Comment, depth uint32) uint32 {
	return uint32(C.clang_TParamCommandComment_getIndex(cComment(c), C.uint(depth)))
}

func (l *Lib) VerbatimBlockLineText(c native.Comment) string {
	return str(C.clang_VerbatimBlockLineComment_getText(cComment(c)))
}

func (l *Lib) VerbatimLineText(c native.Comment) string {
	return str(C.clang_VerbatimLineComment_getText(cComment(c)))
}

func (l *Lib) FullCommentAsHTML(c native.Comment) string {
	return str(C.clang_FullComment_getAsHTML(cComment(c)))
}

func (l *Lib) FullCommentAsXML(c native.Comment) string {
	return str(C.clang_FullComment_getAsXML(cComment(c)))
}
