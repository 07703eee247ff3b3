package clang

import (
	"iter"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// ChildVisit is what a visitor asks the walker to do after a cursor.
type ChildVisit int

const (
	// Default leaves the choice to the walk: Recurse for Walk, Continue
	// for VisitChildren.
	Default ChildVisit = iota
	Continue
	Recurse
	Break
)

func (v ChildVisit) String() string {
	switch v {
	case Continue:
		return "continue"
	case Recurse:
		return "recurse"
	case Break:
		return "break"
	}
	return "default"
}

// Visitor is called for each cursor with its parent.
type Visitor func(c, parent Cursor) ChildVisit

// VisitResult reports how a traversal ended. Traversals that stop on a
// decode failure return an error instead.
type VisitResult int

const (
	Completed VisitResult = iota
	Broken
)

func (r VisitResult) String() string {
	if r == Broken {
		return "broken"
	}
	return "completed"
}

// visitFrame is the state of one traversal. Every call builds its own, so
// a visitor may start another traversal of the same unit.
type visitFrame struct {
	tu      *TranslationUnit
	fn      Visitor
	recurse bool
	err     error
}

func (f *visitFrame) step(n, p native.Cursor) int32 {
	c, err := f.tu.cursor(n)
	if err == nil {
		var parent Cursor
		parent, err = f.tu.cursor(p)
		if err == nil {
			return int32(f.resolve(f.fn(c, parent)))
		}
	}
	f.err = err
	return int32(kinds.ChildVisitBreak)
}

func (f *visitFrame) resolve(v ChildVisit) kinds.ChildVisitResult {
	switch v {
	case Break:
		return kinds.ChildVisitBreak
	case Continue:
		return kinds.ChildVisitContinue
	case Recurse:
		if f.recurse {
			return kinds.ChildVisitRecurse
		}
		return kinds.ChildVisitContinue
	}
	if f.recurse {
		return kinds.ChildVisitRecurse
	}
	return kinds.ChildVisitContinue
}

// Visit walks the children of c. With recurseByDefault, a visitor result
// of Default descends into the child; without it the walk stays flat and
// Recurse is treated as Continue.
func (c Cursor) Visit(recurseByDefault bool, fn Visitor) (VisitResult, error) {
	f := &visitFrame{tu: c.tu, fn: fn, recurse: recurseByDefault}
	broken := c.lib().VisitChildren(c.c, f.step)
	if f.err != nil {
		return Broken, f.err
	}
	if broken != 0 {
		return Broken, nil
	}
	return Completed, nil
}

// VisitChildren visits the direct children of c only.
func (c Cursor) VisitChildren(fn Visitor) (VisitResult, error) { return c.Visit(false, fn) }

// Walk visits the whole subtree of c in preorder.
func (c Cursor) Walk(fn Visitor) (VisitResult, error) { return c.Visit(true, fn) }

// ReferenceVisitor is called for each reference with its spelled range.
type ReferenceVisitor func(c Cursor, r SourceRange) ChildVisit

// FindReferencesInFile visits every reference to the entity c names inside
// file. The visit is flat; Recurse means Continue.
func (c Cursor) FindReferencesInFile(file File, fn ReferenceVisitor) (VisitResult, error) {
	var fail error
	res := c.lib().FindReferencesInFile(c.c, file.h, func(n native.Cursor, r native.SourceRange) int32 {
		ref, err := c.tu.cursor(n)
		if err != nil {
			fail = err
			return int32(kinds.VisitorBreak)
		}
		if fn(ref, SourceRange{r: r, tu: c.tu}) == Break {
			return int32(kinds.VisitorBreak)
		}
		return int32(kinds.VisitorContinue)
	})
	if fail != nil {
		return Broken, fail
	}
	switch kinds.Result(res) {
	case kinds.ResultSuccess:
		return Completed, nil
	case kinds.ResultVisitBreak:
		return Broken, nil
	}
	return Broken, &NativeError{Op: "find references", Path: file.Name(), Code: res, Detail: "invalid cursor or file"}
}

// Children returns the direct children of c.
func (c Cursor) Children() ([]Cursor, error) {
	var out []Cursor
	_, err := c.VisitChildren(func(ch, _ Cursor) ChildVisit {
		out = append(out, ch)
		return Continue
	})
	return out, err
}

// FindFirst returns the first cursor of the subtree, in preorder, for
// which match holds.
func (c Cursor) FindFirst(match func(c, parent Cursor) bool) (Cursor, bool, error) {
	var (
		hit   Cursor
		found bool
	)
	_, err := c.Walk(func(ch, parent Cursor) ChildVisit {
		if match(ch, parent) {
			hit, found = ch, true
			return Break
		}
		return Recurse
	})
	if err != nil {
		return Cursor{}, false, err
	}
	return hit, found, nil
}

// FindAll returns every cursor of the subtree for which match holds.
func (c Cursor) FindAll(match func(c, parent Cursor) bool) ([]Cursor, error) {
	var out []Cursor
	_, err := c.Walk(func(ch, parent Cursor) ChildVisit {
		if match(ch, parent) {
			out = append(out, ch)
		}
		return Recurse
	})
	return out, err
}

// Select returns the cursors of the subtree whose kind is one of ks.
func (c Cursor) Select(ks ...kinds.CursorKind) ([]Cursor, error) {
	return c.FindAll(func(ch, _ Cursor) bool {
		for _, k := range ks {
			if ch.kind == k {
				return true
			}
		}
		return false
	})
}

// References returns the cursors of the unit that refer to c (or to the
// entity c refers to), in preorder.
func (c Cursor) References() ([]Cursor, error) {
	target := c
	if c.IsReference() || c.IsExpression() {
		ref, err := c.Referenced()
		if err != nil {
			return nil, err
		}
		target = ref
	}
	if target.IsNull() {
		return nil, nil
	}
	return c.tu.Cursor().FindAll(func(ch, _ Cursor) bool {
		if !ch.IsReference() && !ch.IsExpression() {
			return false
		}
		ref, err := ch.Referenced()
		return err == nil && !ref.IsNull() && ref.Equal(target)
	})
}

// Seq walks the subtree of c up front and yields the buffered cursors.
// Breaking out of the loop early does not shorten the walk. Decode errors
// end the sequence; use Walk to see them.
func (c Cursor) Seq() iter.Seq[Cursor] {
	all, _ := c.FindAll(func(Cursor, Cursor) bool { return true })
	return func(yield func(Cursor) bool) {
		for _, ch := range all {
			if !yield(ch) {
				return
			}
		}
	}
}
