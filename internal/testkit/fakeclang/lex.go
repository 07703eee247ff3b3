package fakeclang

import "clangview/internal/kinds"

type token struct {
	kind  kinds.TokenKind
	text  string
	begin uint32
	end   uint32
	// directive marks tokens that belong to a preprocessor line; hash marks
	// the '#' that opens one.
	directive bool
	hash      bool
}

var keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true, "_Bool": true, "_Complex": true,
	"__attribute__": true,
}

var punct3 = []string{"...", "<<=", ">>="}

var punct2 = []string{
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "##",
}

// lex splits src into tokens. Comments are kept so the parser can attach
// documentation; callers that want clang_tokenize output drop them.
func lex(src []byte) []token {
	var out []token
	i := 0
	lineStart := true
	inDirective := false
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			i++
			lineStart = true
			inDirective = false
			continue
		case c == '\\' && i+1 < len(src) && src[i+1] == '\n':
			i += 2
			continue
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			i++
			continue
		}

		start := i
		kind := kinds.TokenPunctuation
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			kind = kinds.TokenComment
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i = min(i+2, len(src))
			kind = kinds.TokenComment
		case isIdentStart(c):
			for i < len(src) && isIdentContinue(src[i]) {
				i++
			}
			kind = kinds.TokenIdentifier
			if keywords[string(src[start:i])] {
				kind = kinds.TokenKeyword
			}
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			for i < len(src) && (isIdentContinue(src[i]) || src[i] == '.') {
				i++
			}
			kind = kinds.TokenLiteral
		case c == '"' || c == '\'':
			i++
			for i < len(src) && src[i] != c && src[i] != '\n' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			i = min(i+1, len(src))
			kind = kinds.TokenLiteral
		default:
			i += punctLen(src[i:])
		}

		hash := lineStart && c == '#'
		if hash {
			inDirective = true
		}
		if kind != kinds.TokenComment {
			lineStart = false
		}
		out = append(out, token{
			kind:      kind,
			text:      string(src[start:i]),
			begin:     uint32(start),
			end:       uint32(i),
			directive: inDirective,
			hash:      hash,
		})
	}
	return out
}

func punctLen(s []byte) int {
	for _, p := range punct3 {
		if len(s) >= 3 && string(s[:3]) == p {
			return 3
		}
	}
	for _, p := range punct2 {
		if len(s) >= 2 && string(s[:2]) == p {
			return 2
		}
	}
	return 1
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
