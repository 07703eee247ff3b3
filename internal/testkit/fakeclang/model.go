package fakeclang

import (
	"sort"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// file is one source buffer of a unit.
type file struct {
	handle  native.Handle
	path    string
	content []byte
	lines   []uint32
	tokens  []token
	system  bool
	guarded bool
	mtime   int64
}

func newFile(h native.Handle, path string, content []byte) *file {
	f := &file{handle: h, path: path, content: content, lines: []uint32{0}}
	for i, b := range content {
		if b == '\n' {
			f.lines = append(f.lines, uint32(i+1))
		}
	}
	f.tokens = lex(content)
	return f
}

// lineCol converts a byte offset to a 1-based line and column.
func (f *file) lineCol(off uint32) (uint32, uint32) {
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	return uint32(i + 1), off - f.lines[i] + 1
}

// offset converts a 1-based line and column to a byte offset.
func (f *file) offset(line, col uint32) (uint32, bool) {
	if line == 0 || int(line) > len(f.lines) || col == 0 {
		return 0, false
	}
	off := f.lines[line-1] + col - 1
	if int(off) > len(f.content) {
		return 0, false
	}
	return off, true
}

type availability struct {
	deprecated  bool
	depMsg      string
	unavailable bool
	unavailMsg  string
	platforms   []native.PlatformAvailability
}

// node is one AST node. Node 0 is the null node and node 1 the
// translation unit.
type node struct {
	kind     kinds.CursorKind
	name     string
	file     int
	begin    uint32
	end      uint32
	loc      uint32
	parent   int
	children []int

	typ      int
	ref      int
	canon    int
	def      bool
	comment  int
	raw      string
	value    int64
	bitWidth int32
	static   bool
	variadic bool
	init     int
	params   []int
	include  int
	attrs    availability
	// op is the operator spelling of operator expressions.
	op string
	// under is the integer type of an enum.
	under int
	anon  bool
}

// ftype is one interned type. Type 0 is the invalid type.
type ftype struct {
	kind     kinds.TypeKind
	spelling string
	inner    int
	args     []int
	variadic bool
	count    int64
	decl     int
	konst    bool
	volatile bool
	restrict bool
	base     int
}

// fcomment is one node of a parsed documentation comment. Comment 0 is the
// null comment.
type fcomment struct {
	kind      kinds.CommentKind
	text      string
	name      string
	args      []string
	children  []int
	paragraph int
	render    kinds.InlineRenderKind
	direction kinds.ParamDirection
	explicit  bool
	index     int
	trailing  bool
	selfClose bool
	attrs     [][2]string
	owner     int
}

type fixIt struct {
	file       int
	begin, end uint32
	text       string
}

type diagnostic struct {
	severity kinds.Severity
	message  string
	file     int
	offset   uint32
	option   string
	category uint32
	ranges   [][3]uint32
	fixits   []fixIt
	notes    []*diagnostic
}

type inclusion struct {
	file  int
	stack []inclusionSite
}

type inclusionSite struct {
	file   int
	offset uint32
}

// unit is the parsed state of one translation unit. Reparse swaps the
// whole value, so readers never see a half-built tree.
type unit struct {
	handle     native.Handle
	index      native.Handle
	path       string
	args       []string
	flags      uint32
	files      []*file
	nodes      []node
	types      []ftype
	typeKeys   map[string]int
	comments   []fcomment
	diags      []*diagnostic
	inclusions []inclusion
	macros     []string
	defs       map[int]int
}

func (u *unit) fileByHandle(h native.Handle) int {
	for i, f := range u.files {
		if f.handle == h {
			return i
		}
	}
	return -1
}

func (u *unit) fileByName(name string) int {
	for i, f := range u.files {
		if f.path == name {
			return i
		}
	}
	return -1
}

func (u *unit) addNode(n node) int {
	u.nodes = append(u.nodes, n)
	id := len(u.nodes) - 1
	if n.parent != 0 {
		p := &u.nodes[n.parent]
		p.children = append(p.children, id)
	}
	return id
}

func (u *unit) addComment(c fcomment) int {
	u.comments = append(u.comments, c)
	return len(u.comments) - 1
}

// definition returns the defining redeclaration of n, or 0.
func (u *unit) definition(id int) int {
	if id <= 0 || id >= len(u.nodes) {
		return 0
	}
	n := &u.nodes[id]
	if n.def {
		return id
	}
	canon := n.canon
	if canon == 0 {
		canon = id
	}
	return u.defs[canon]
}

func (u *unit) canonical(id int) int {
	if id <= 0 || id >= len(u.nodes) {
		return 0
	}
	if c := u.nodes[id].canon; c != 0 {
		return c
	}
	return id
}

// wrap inserts a new node between inner and its parent, so the new node
// takes inner's place as the last child of the parent.
func (u *unit) wrap(inner int, n node) int {
	parent := u.nodes[inner].parent
	n.parent = parent
	n.file = u.nodes[inner].file
	n.begin = u.nodes[inner].begin
	if parent != 0 {
		kids := u.nodes[parent].children
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] == inner {
				kids = append(kids[:i], kids[i+1:]...)
				break
			}
		}
		u.nodes[parent].children = kids
	}
	id := u.addNode(n)
	u.nodes[inner].parent = id
	u.nodes[id].children = append(u.nodes[id].children, inner)
	return id
}

// innermost returns the deepest non-unit node of file fi whose extent
// contains off, or the unit node.
func (u *unit) innermost(fi int, off uint32) int {
	best := 1
	var walk func(id int)
	walk = func(id int) {
		for _, c := range u.nodes[id].children {
			n := &u.nodes[c]
			if n.file == fi && off >= n.begin && off < n.end {
				best = c
				walk(c)
				return
			}
		}
	}
	walk(1)
	return best
}
