package clang

import (
	"clangview/internal/kinds"
	"clangview/internal/native"
)

// tokenBuf carries the count and unit disposeTokens needs back.
type tokenBuf struct {
	tu  native.Handle
	buf native.Handle
	n   int
}

// Tokens is the token buffer of a source range. Individual tokens are
// values into it and are never released on their own.
type Tokens struct {
	tu      *TranslationUnit
	own     *owned[tokenBuf]
	n       int
	release func()
}

// Token is one lexical token.
type Token struct {
	t    native.Token
	unit native.Handle
	tu   *TranslationUnit
	buf  *owned[tokenBuf]
}

// Tokenize lexes r. An empty range yields an empty buffer that still needs
// Close.
func (tu *TranslationUnit) Tokenize(r SourceRange) (*Tokens, error) {
	h := tu.handle()
	lib := tu.b.lib
	buf, n := lib.Tokenize(h, r.r)
	toks := &Tokens{tu: tu, n: n}
	if buf == 0 {
		toks.n = 0
		toks.release = func() {}
		return toks, nil
	}
	own, err := acquire(tokenBuf{tu: h, buf: buf, n: n}, func(b tokenBuf) { lib.DisposeTokens(b.tu, b.buf, b.n) })
	if err != nil {
		return nil, &ConstructionError{Op: "tokenize", Input: r.String()}
	}
	toks.own = own
	toks.release = tu.own.retain()
	return toks, nil
}

func (ts *Tokens) Len() int { return ts.n }

func (ts *Tokens) At(i int) (Token, error) {
	if i < 0 || i >= ts.n {
		return Token{}, outOfRange(i, ts.n)
	}
	b := ts.own.borrow()
	return Token{t: ts.tu.b.lib.TokenAt(b.buf, i), unit: b.tu, tu: ts.tu, buf: ts.own}, nil
}

func (ts *Tokens) All() []Token {
	out := make([]Token, 0, ts.n)
	for i := range ts.n {
		t, _ := ts.At(i)
		out = append(out, t)
	}
	return out
}

// Close releases the buffer with the count it was created with.
func (ts *Tokens) Close() error {
	var err error
	if ts.own != nil {
		err = ts.own.Close()
	}
	ts.release()
	return err
}

// AnnotateTokens maps every token of ts to the innermost cursor that
// covers it.
func (tu *TranslationUnit) AnnotateTokens(ts *Tokens) ([]Cursor, error) {
	if ts.n == 0 {
		return nil, nil
	}
	b := ts.own.borrow()
	return tu.cursors(tu.b.lib.AnnotateTokens(b.tu, b.buf, b.n))
}

// lib panics with ErrReleased once the Tokens buffer or the unit is
// closed.
func (t Token) lib() native.Library {
	if t.buf == nil {
		panic(ErrNoUnit)
	}
	t.buf.borrow()
	return t.tu.lib()
}

func (t Token) Kind() (kinds.TokenKind, error) {
	k := t.lib().TokenKind(t.t)
	return t.tu.b.reg.Token(k)
}

func (t Token) Spelling() string { return t.lib().TokenSpelling(t.unit, t.t) }

func (t Token) Location() SourceLocation {
	return SourceLocation{loc: t.lib().TokenLocation(t.unit, t.t), tu: t.tu}
}

func (t Token) Extent() SourceRange {
	return SourceRange{r: t.lib().TokenExtent(t.unit, t.t), tu: t.tu}
}

func (t Token) String() string { return t.Spelling() }
