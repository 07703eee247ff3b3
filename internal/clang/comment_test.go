package clang_test

import (
	"strings"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/kinds"
	"clangview/internal/testkit/fakeclang"
)

func fullComment(t *testing.T, c clang.Cursor) *clang.FullComment {
	t.Helper()
	com, err := c.Comment()
	if err != nil {
		t.Fatalf("comment of %v: %v", c, err)
	}
	full, ok := com.(*clang.FullComment)
	if !ok {
		t.Fatalf("comment of %v is %T", c, com)
	}
	return full
}

// collect returns every node of the comment tree in preorder.
func collect(t *testing.T, c clang.Comment) []clang.Comment {
	t.Helper()
	out := []clang.Comment{c}
	kids, err := c.Children()
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	for _, k := range kids {
		out = append(out, collect(t, k)...)
	}
	return out
}

func TestParagraphText(t *testing.T) {
	l := fakeclang.New("17.0.6")
	l.AddFile("docs.h", fakeclang.DocsH)
	tu := open(t, l, "docs.h")
	f := find(t, tu, kinds.CursorFunctionDecl, "f")

	full := fullComment(t, f)
	first, err := full.Child(0)
	if err != nil {
		t.Fatalf("child: %v", err)
	}
	para, ok := first.(*clang.ParagraphComment)
	if !ok {
		t.Fatalf("first child is %T", first)
	}
	want := "Brief. Longer line 1 Longer line 2"
	if got := strings.Join(strings.Fields(para.Text()), " "); got != want {
		t.Fatalf("paragraph = %q", got)
	}
	if got := strings.Join(strings.Fields(full.Text()), " "); got != want {
		t.Fatalf("full text = %q", got)
	}
	if f.BriefComment() != want {
		t.Fatalf("brief = %q", f.BriefComment())
	}
	if _, err := full.Child(full.NumChildren()); err == nil {
		t.Fatalf("child past the end should fail")
	}
}

func TestStructuredComment(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	add := find(t, tu, kinds.CursorFunctionDecl, "add")
	if add.BriefComment() != "Adds two numbers." {
		t.Fatalf("brief = %q", add.BriefComment())
	}
	full := fullComment(t, add)

	var (
		params  []string
		returns string
		bold    *clang.InlineCommandComment
		em      *clang.HTMLStartTagComment
	)
	for _, n := range collect(t, full) {
		switch n := n.(type) {
		case *clang.ParamCommandComment:
			params = append(params, n.Name())
			if n.Name() == "a" {
				if !n.IsDirectionExplicit() || n.Direction() != kinds.ParamDirectionIn {
					t.Errorf("param a direction = %v", n.Direction())
				}
				if !n.HasValidIndex() || n.Index() != 0 {
					t.Errorf("param a index = %d", n.Index())
				}
			}
			if n.Name() == "b" && n.IsDirectionExplicit() {
				t.Errorf("param b has no explicit direction")
			}
		case *clang.BlockCommandComment:
			if n.Name() == "returns" {
				returns = strings.TrimSpace(n.Text())
			}
		case *clang.InlineCommandComment:
			bold = n
		case *clang.HTMLStartTagComment:
			em = n
		}
	}
	if strings.Join(params, ",") != "a,b" {
		t.Fatalf("params = %v", params)
	}
	if returns != "the sum" {
		t.Fatalf("returns = %q", returns)
	}
	if bold == nil || bold.Name() != "b" || bold.RenderKind() != kinds.InlineRenderBold || bold.Text() != "integer" {
		t.Fatalf("inline command = %+v", bold)
	}
	if em == nil || em.Name() != "em" || em.IsSelfClosing() {
		t.Fatalf("html start tag = %+v", em)
	}
	if html := full.HTML(); !strings.Contains(html, "<b>integer</b>") {
		t.Fatalf("html = %q", html)
	}
}

func TestUndocumentedCursor(t *testing.T) {
	_, tu := sampleUnit(t, "17.0.6")
	counter := find(t, tu, kinds.CursorVarDecl, "counter")
	com, err := counter.Comment()
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, ok := com.(*clang.NullComment); !ok {
		t.Fatalf("comment of an undocumented cursor is %T", com)
	}
	if com.Text() != "" || com.NumChildren() != 0 {
		t.Fatalf("null comment has content")
	}
}
