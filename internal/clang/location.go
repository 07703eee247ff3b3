package clang

import (
	"fmt"
	"os"

	"clangview/internal/libver"
	"clangview/internal/native"
)

// SourceLocation is a point in a translation unit. Compare with Equal: two
// locations can denote the same point with different bits.
type SourceLocation struct {
	loc native.SourceLocation
	tu  *TranslationUnit
}

// Position is one projection of a location onto a file.
type Position struct {
	File   File
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File.Name(), p.Line, p.Column)
}

// PresumedPosition is a location as adjusted by #line directives.
type PresumedPosition struct {
	Filename string
	Line     int
	Column   int
}

func (l SourceLocation) lib() native.Library { return l.tu.lib() }

func (l SourceLocation) position(p native.Position) Position {
	var f File
	if p.File != 0 {
		f = File{h: p.File, tu: l.tu}
	}
	return Position{File: f, Line: int(p.Line), Column: int(p.Column), Offset: int(p.Offset)}
}

// Expansion is where the location ends up after macro expansion.
func (l SourceLocation) Expansion() Position {
	return l.position(l.lib().ExpansionLocation(l.loc))
}

// Spelling is where the characters of the location were written.
func (l SourceLocation) Spelling() Position {
	return l.position(l.lib().SpellingLocation(l.loc))
}

// FileLocation resolves macro arguments to the file they appear in.
func (l SourceLocation) FileLocation() (Position, error) {
	if err := l.tu.b.require(libver.FeatureFilePosition); err != nil {
		return Position{}, err
	}
	return l.position(l.lib().FileLocation(l.loc)), nil
}

func (l SourceLocation) Presumed() PresumedPosition {
	p := l.lib().PresumedLocation(l.loc)
	return PresumedPosition{Filename: p.Filename, Line: int(p.Line), Column: int(p.Column)}
}

func (l SourceLocation) File() File   { return l.Expansion().File }
func (l SourceLocation) Line() int    { return l.Expansion().Line }
func (l SourceLocation) Column() int  { return l.Expansion().Column }
func (l SourceLocation) Offset() int  { return l.Expansion().Offset }
func (l SourceLocation) IsNull() bool { return l.tu == nil || l.Equal(l.tu.nullLocation()) }

func (l SourceLocation) IsInSystemHeader() bool { return l.lib().LocationInSystemHeader(l.loc) }
func (l SourceLocation) IsFromMainFile() bool   { return l.lib().LocationFromMainFile(l.loc) }

// Equal uses libclang's notion of location identity.
func (l SourceLocation) Equal(o SourceLocation) bool {
	if l.tu == nil || o.tu == nil {
		return l.tu == o.tu && l.loc == o.loc
	}
	return l.lib().EqualLocations(l.loc, o.loc)
}

func (l SourceLocation) String() string {
	if l.tu == nil {
		return "<no location>"
	}
	return l.Expansion().String()
}

// SourceRange is a half-open span between two locations.
type SourceRange struct {
	r  native.SourceRange
	tu *TranslationUnit
}

// Range builds the range from begin to end. Both must come from the same
// unit.
func Range(begin, end SourceLocation) SourceRange {
	return SourceRange{r: begin.lib().GetRange(begin.loc, end.loc), tu: begin.tu}
}

func (r SourceRange) Start() SourceLocation {
	return SourceLocation{loc: r.tu.lib().RangeStart(r.r), tu: r.tu}
}

func (r SourceRange) End() SourceLocation {
	return SourceLocation{loc: r.tu.lib().RangeEnd(r.r), tu: r.tu}
}

func (r SourceRange) IsNull() bool { return r.tu == nil || r.tu.lib().RangeIsNull(r.r) }

func (r SourceRange) Equal(o SourceRange) bool {
	if r.tu == nil || o.tu == nil {
		return r.tu == o.tu && r.r == o.r
	}
	return r.tu.lib().EqualRanges(r.r, o.r)
}

// ByteSize is the distance between the expansion offsets of the ends.
func (r SourceRange) ByteSize() int {
	return r.End().Offset() - r.Start().Offset()
}

// Text reads the covered bytes from the file on disk.
func (r SourceRange) Text() (string, error) {
	start, end := r.Start().Expansion(), r.End().Expansion()
	name := start.File.Name()
	if name == "" {
		return "", fmt.Errorf("clang: range %s has no file", r)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	if start.Offset < 0 || end.Offset > len(data) || start.Offset > end.Offset {
		return "", fmt.Errorf("clang: range %s outside %s", r, name)
	}
	return string(data[start.Offset:end.Offset]), nil
}

func (r SourceRange) String() string {
	if r.IsNull() {
		return "<no range>"
	}
	s, e := r.Start().Expansion(), r.End().Expansion()
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File.Name(), s.Line, s.Column, e.Line, e.Column)
}
