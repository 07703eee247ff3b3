package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"clangview/internal/clang"
	"clangview/internal/kinds"
)

type CursorNodeOutput struct {
	Kind     string             `json:"kind"`
	Spelling string             `json:"spelling,omitempty"`
	Type     string             `json:"type,omitempty"`
	Location string             `json:"location,omitempty"`
	Children []CursorNodeOutput `json:"children,omitempty"`
}

// TreeOpts selects what a cursor dump shows.
type TreeOpts struct {
	// MaxDepth limits the levels below the root; 0 means unlimited.
	MaxDepth int
	// Kinds, when set, dumps only the subtrees rooted at cursors of these
	// kinds.
	Kinds        []kinds.CursorKind
	MainFileOnly bool
	ShowTypes    bool
}

// BuildCursorTree copies the tree below root into plain values.
func BuildCursorTree(root clang.Cursor, opts TreeOpts) (CursorNodeOutput, error) {
	out := cursorNode(root, opts)
	var tops []clang.Cursor
	var err error
	if len(opts.Kinds) > 0 {
		tops, err = root.Select(opts.Kinds...)
	} else {
		tops, err = root.Children()
	}
	if err != nil {
		return out, err
	}
	for _, c := range tops {
		if opts.MainFileOnly && !c.Location().IsFromMainFile() {
			continue
		}
		child, err := buildSubtree(c, opts, 1)
		if err != nil {
			return out, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

func buildSubtree(c clang.Cursor, opts TreeOpts, depth int) (CursorNodeOutput, error) {
	node := cursorNode(c, opts)
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return node, nil
	}
	kids, err := c.Children()
	if err != nil {
		return node, err
	}
	for _, k := range kids {
		child, err := buildSubtree(k, opts, depth+1)
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func cursorNode(c clang.Cursor, opts TreeOpts) CursorNodeOutput {
	node := CursorNodeOutput{Kind: c.Kind().String(), Spelling: c.Spelling()}
	if !c.IsTranslationUnit() {
		if loc := c.Location(); !loc.IsNull() {
			node.Location = loc.String()
		}
	}
	if opts.ShowTypes {
		if t, err := c.Type(); err == nil && t.Kind() != kinds.TypeInvalid {
			node.Type = t.Spelling()
		}
	}
	return node
}

// FormatCursorTreePretty draws the tree with box-drawing prefixes.
func FormatCursorTreePretty(w io.Writer, root CursorNodeOutput) error {
	if _, err := fmt.Fprintln(w, nodeLabel(root)); err != nil {
		return err
	}
	writeChildren(w, root.Children, "")
	return nil
}

func writeChildren(w io.Writer, children []CursorNodeOutput, prefix string) {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(child))
		writeChildren(w, child.Children, prefix+next)
	}
}

func nodeLabel(n CursorNodeOutput) string {
	label := n.Kind
	if n.Spelling != "" {
		label += " " + n.Spelling
	}
	if n.Type != "" {
		label += " : " + n.Type
	}
	if n.Location != "" {
		label += " (" + n.Location + ")"
	}
	return label
}

func FormatCursorTreeJSON(w io.Writer, root CursorNodeOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

// Count returns the number of nodes in the tree, root included.
func (n CursorNodeOutput) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Find returns the first node in preorder whose kind and spelling match.
func (n CursorNodeOutput) Find(kind, spelling string) (CursorNodeOutput, bool) {
	if n.Kind == kind && n.Spelling == spelling {
		return n, true
	}
	i := slices.IndexFunc(n.Children, func(c CursorNodeOutput) bool {
		_, ok := c.Find(kind, spelling)
		return ok
	})
	if i < 0 {
		return CursorNodeOutput{}, false
	}
	return n.Children[i].Find(kind, spelling)
}
