package fakeclang

import (
	"fmt"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// Token layout: Int[0] kind, Int[1] begin offset, Int[2] end offset,
// Int[3] file index; Ptr is the owning unit.

func (l *Lib) Tokenize(tu native.Handle, r native.SourceRange) (native.Handle, int) {
	u := l.unit(tu)
	fi := u.fileByHandle(native.Handle(r.Ptr[0]))
	if fi < 0 {
		return 0, 0
	}
	var toks []native.Token
	for _, t := range u.files[fi].tokens {
		if t.begin < r.Begin || t.begin >= r.End {
			continue
		}
		toks = append(toks, native.Token{Int: [4]uint32{uint32(t.kind), t.begin, t.end, uint32(fi)}, Ptr: uintptr(tu)})
	}
	if len(toks) == 0 {
		return 0, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.tokens[h] = &tokenBuf{tu: tu, toks: toks}
	return h, len(toks)
}

func (l *Lib) TokenAt(buf native.Handle, i int) native.Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.tokens[buf]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released token buffer %#x", buf))
	}
	return b.toks[i]
}

func (l *Lib) DisposeTokens(tu, buf native.Handle, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.tokens[buf]
	if !ok {
		l.violate("token buffer %#x released twice or never created", buf)
		return
	}
	if b.tu != tu {
		l.violate("token buffer %#x released against unit %#x, want %#x", buf, tu, b.tu)
	}
	if n != len(b.toks) {
		l.violate("token buffer %#x released with count %d, want %d", buf, n, len(b.toks))
	}
	delete(l.tokens, buf)
	l.disposed[KindTokens]++
}

func (l *Lib) TokenKind(t native.Token) int32 { return int32(t.Int[0]) }

func (l *Lib) tokenFile(tu native.Handle, t native.Token) (*unit, int) {
	u := l.unit(tu)
	fi := int(t.Int[3])
	if fi >= len(u.files) {
		return u, -1
	}
	return u, fi
}

func (l *Lib) TokenSpelling(tu native.Handle, t native.Token) string {
	u, fi := l.tokenFile(tu, t)
	if fi < 0 {
		return ""
	}
	return string(u.files[fi].content[t.Int[1]:t.Int[2]])
}

func (l *Lib) TokenLocation(tu native.Handle, t native.Token) native.SourceLocation {
	u, fi := l.tokenFile(tu, t)
	return l.loc(u, fi, t.Int[1])
}

func (l *Lib) TokenExtent(tu native.Handle, t native.Token) native.SourceRange {
	u, fi := l.tokenFile(tu, t)
	return l.span(u, fi, t.Int[1], t.Int[2])
}

// AnnotateTokens maps every token to the innermost cursor covering it.
// Comments map to the translation unit.
func (l *Lib) AnnotateTokens(tu, buf native.Handle, n int) []native.Cursor {
	u := l.unit(tu)
	l.mu.Lock()
	b, ok := l.tokens[buf]
	l.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released token buffer %#x", buf))
	}
	out := make([]native.Cursor, 0, n)
	for _, t := range b.toks[:n] {
		if kinds.TokenKind(t.Int[0]) == kinds.TokenComment {
			out = append(out, l.cursor(u, 1))
			continue
		}
		out = append(out, l.cursor(u, u.innermost(int(t.Int[3]), t.Int[1])))
	}
	return out
}
