package clang_test

import (
	"slices"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/native"
)

func TestNestedVisitUsesSeparateFrames(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	outer, inner := 0, 0
	res, err := tu.Cursor().VisitChildren(func(c, _ clang.Cursor) clang.ChildVisit {
		outer++
		if n := native.Frames.Len(); n != 1 {
			t.Fatalf("outer frames = %d", n)
		}
		if _, err := c.VisitChildren(func(clang.Cursor, clang.Cursor) clang.ChildVisit {
			inner++
			if n := native.Frames.Len(); n != 2 {
				t.Fatalf("inner frames = %d", n)
			}
			return clang.Continue
		}); err != nil {
			t.Fatalf("inner visit: %v", err)
		}
		return clang.Continue
	})
	if err != nil || res != clang.Completed {
		t.Fatalf("visit = %v, %v", res, err)
	}
	if outer == 0 || inner == 0 {
		t.Fatalf("outer %d inner %d", outer, inner)
	}
	if n := native.Frames.Len(); n != 0 {
		t.Fatalf("frames leaked: %d", n)
	}
}

func TestBreakStopsWalk(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	seen := 0
	res, err := tu.Cursor().Walk(func(clang.Cursor, clang.Cursor) clang.ChildVisit {
		seen++
		if seen == 5 {
			return clang.Break
		}
		return clang.Default
	})
	if err != nil || res != clang.Broken || seen != 5 {
		t.Fatalf("walk = %v, %v after %d cursors", res, err, seen)
	}
}

func TestVisitChildrenStaysFlat(t *testing.T) {
	_, tu := listUnit(t, "17.0.6")
	var names []string
	_, err := tu.Cursor().VisitChildren(func(c, parent clang.Cursor) clang.ChildVisit {
		if !parent.IsTranslationUnit() {
			t.Errorf("parent of %v is %v", c, parent)
		}
		names = append(names, c.Spelling())
		return clang.Recurse
	})
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if !slices.Equal(names, []string{"List", "sum"}) {
		t.Fatalf("visited = %v", names)
	}

	var deep int
	if _, err := tu.Cursor().Walk(func(clang.Cursor, clang.Cursor) clang.ChildVisit {
		deep++
		return clang.Default
	}); err != nil {
		t.Fatalf("walk: %v", err)
	}
	if deep <= len(names) {
		t.Fatalf("walk visited %d cursors, flat visit %d", deep, len(names))
	}
}

func TestSelectAndSeq(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	fields, err := tu.Cursor().Select(kinds.CursorFieldDecl)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	var names []string
	for _, f := range fields {
		names = append(names, f.Spelling())
	}
	for _, want := range []string{"ready", "mode", "name", "x", "y"} {
		if !slices.Contains(names, want) {
			t.Errorf("fields %v missing %s", names, want)
		}
	}

	all, err := tu.Cursor().FindAll(func(clang.Cursor, clang.Cursor) bool { return true })
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	i := 0
	for c := range tu.Cursor().Seq() {
		if !c.Equal(all[i]) {
			t.Fatalf("seq[%d] = %v, want %v", i, c, all[i])
		}
		i++
		if i == 3 {
			break
		}
	}
	if i != 3 {
		t.Fatalf("seq yielded %d cursors", i)
	}
}

func TestFindReferencesInFile(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	counter := find(t, tu, kinds.CursorVarDecl, "counter")
	file, _ := tu.MainFile()

	var lines []int
	res, err := counter.FindReferencesInFile(file, func(_ clang.Cursor, r clang.SourceRange) clang.ChildVisit {
		lines = append(lines, r.Start().Line())
		return clang.Continue
	})
	if err != nil || res != clang.Completed {
		t.Fatalf("find references = %v, %v", res, err)
	}
	if !slices.Equal(lines, []int{31, 35}) {
		t.Fatalf("reference lines = %v, want [31 35]", lines)
	}

	calls := 0
	res, err = counter.FindReferencesInFile(file, func(clang.Cursor, clang.SourceRange) clang.ChildVisit {
		calls++
		return clang.Break
	})
	if err != nil || res != clang.Broken || calls != 1 {
		t.Fatalf("broken search = %v, %v after %d calls", res, err, calls)
	}
}

func TestReferences(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	counter := find(t, tu, kinds.CursorVarDecl, "counter")
	refs, err := counter.References()
	if err != nil {
		t.Fatalf("references: %v", err)
	}
	if len(refs) != 1 || refs[0].Location().Line() != 35 {
		t.Fatalf("references = %v", refs)
	}
	again, err := refs[0].References()
	if err != nil || len(again) != 1 || !again[0].Equal(refs[0]) {
		t.Fatalf("references from the use = %v, %v", again, err)
	}
}

func TestVisitChildrenIsDeterministic(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	collect := func() []clang.Cursor {
		var out []clang.Cursor
		if _, err := tu.Cursor().VisitChildren(func(c, _ clang.Cursor) clang.ChildVisit {
			out = append(out, c)
			return clang.Continue
		}); err != nil {
			t.Fatalf("visit: %v", err)
		}
		return out
	}
	first, second := collect(), collect()
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("visits saw %d and %d children", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) || first[i].Hash() != second[i].Hash() {
			t.Fatalf("child %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFindFirstMissReturnsZeroCursor(t *testing.T) {
	_, tu := listUnit(t, "17.0.6")
	c, ok, err := tu.Cursor().FindFirst(func(clang.Cursor, clang.Cursor) bool { return false })
	if err != nil || ok {
		t.Fatalf("FindFirst = %v, %v", ok, err)
	}
	if !c.IsNull() || !c.Equal(clang.Cursor{}) || c.String() != "Cursor(<nil>)" {
		t.Fatalf("miss = %v", c)
	}
	mustPanic(t, clang.ErrNoUnit, func() { c.Spelling() })
	mustPanic(t, clang.ErrNoUnit, func() { c.Location().Line() })
}
