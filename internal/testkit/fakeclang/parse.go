package fakeclang

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// Diagnostic categories as numbered by clang.
const (
	categoryLexical  = 1
	categorySemantic = 2
	categoryParse    = 3
)

var categoryNames = map[uint32]string{
	categoryLexical:  "Lexical or Preprocessor Issue",
	categorySemantic: "Semantic Issue",
	categoryParse:    "Parse Issue",
}

type docComment struct {
	text  string
	begin uint32
	end   uint32
	line  bool
}

type directive struct {
	at   int
	toks []token
}

// builder turns one main file and everything it includes into a unit.
type builder struct {
	u          *unit
	read       func(path string) ([]byte, bool)
	newHandle  func(path string) native.Handle
	elaborated bool
	detailed   bool
	skipBodies bool
	includes   []string
	sysDirs    []string
	tags       map[string]int
	scopes     []map[string]int
	parsed     map[string]int
}

func newBuilder(u *unit, read func(string) ([]byte, bool), newHandle func(string) native.Handle, elaborated bool, sysDirs []string) *builder {
	b := &builder{
		u:          u,
		read:       read,
		newHandle:  newHandle,
		elaborated: elaborated,
		detailed:   kinds.ParseFlags(u.flags)&kinds.ParseDetailedPreprocessingRecord != 0,
		skipBodies: kinds.ParseFlags(u.flags)&kinds.ParseSkipFunctionBodies != 0,
		sysDirs:    sysDirs,
		tags:       make(map[string]int),
		scopes:     []map[string]int{make(map[string]int)},
		parsed:     make(map[string]int),
	}
	for i := 0; i < len(u.args); i++ {
		a := u.args[i]
		switch {
		case a == "-I" && i+1 < len(u.args):
			i++
			b.includes = append(b.includes, u.args[i])
		case strings.HasPrefix(a, "-I"):
			b.includes = append(b.includes, a[2:])
		case a == "-isystem" && i+1 < len(u.args):
			i++
			b.sysDirs = append(b.sysDirs, u.args[i])
		}
	}
	if u.typeKeys == nil {
		u.typeKeys = make(map[string]int)
	}
	if u.defs == nil {
		u.defs = make(map[int]int)
	}
	u.nodes = append(u.nodes[:0], node{}, node{kind: kinds.CursorTranslationUnit, name: u.path})
	u.types = append(u.types[:0], ftype{kind: kinds.TypeInvalid})
	u.comments = append(u.comments[:0], fcomment{kind: kinds.CommentNull})
	return b
}

func (b *builder) parseMain(content []byte) {
	b.parseFile(b.u.path, content, false, nil)
	b.u.nodes[1].end = uint32(len(content))
}

func (b *builder) parseFile(path string, content []byte, system bool, stack []inclusionSite) int {
	fi := len(b.u.files)
	f := newFile(b.newHandle(path), path, content)
	f.system = system
	b.u.files = append(b.u.files, f)
	b.parsed[path] = fi
	b.u.inclusions = append(b.u.inclusions, inclusion{file: fi, stack: stack})
	p := &parser{b: b, u: b.u, fi: fi, f: f, stack: stack, docs: make(map[int]docComment)}
	p.prepare()
	p.translationUnit()
	return fi
}

func (b *builder) resolve(name string, quoted bool, from string) (string, []byte, bool, bool) {
	var dirs []string
	if quoted {
		dirs = append(dirs, filepath.Dir(from))
	}
	dirs = append(dirs, b.includes...)
	n := len(dirs)
	dirs = append(dirs, b.sysDirs...)
	for i, d := range dirs {
		path := filepath.Join(d, name)
		if content, ok := b.read(path); ok {
			return path, content, i >= n, true
		}
	}
	return "", nil, false, false
}

func (b *builder) lookup(name string) int {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if id, ok := b.scopes[i][name]; ok {
			return id
		}
	}
	return 0
}

func (b *builder) declare(name string, id int) {
	if name == "" {
		return
	}
	b.scopes[len(b.scopes)-1][name] = id
}

func (b *builder) push() { b.scopes = append(b.scopes, make(map[string]int)) }
func (b *builder) pop()  { b.scopes = b.scopes[:len(b.scopes)-1] }

type declCtx uint8

const (
	ctxFile declCtx = iota
	ctxField
	ctxBlock
	ctxParam
)

type specRef struct {
	target int
	name   string
	begin  uint32
	end    uint32
}

type specs struct {
	begin       uint32
	typ         int
	typedef     bool
	static      bool
	extern      bool
	konst       bool
	volatile    bool
	refs        []specRef
	attrs       availability
	tagDecl     int
	anonTag     bool
	missingSemi bool
	ok          bool
}

type declarator struct {
	name     string
	nameTok  token
	hasName  bool
	apply    func(int) int
	params   []int
	variadic bool
}

type parser struct {
	b     *builder
	u     *unit
	fi    int
	f     *file
	stack []inclusionSite
	toks  []token
	pos   int
	docs  map[int]docComment
	dirs  []directive
}

// prepare splits the file tokens into declaration tokens, doc comments and
// preprocessor lines.
func (p *parser) prepare() {
	var pending *docComment
	var lastLine uint32
	all := p.f.tokens
	for i := 0; i < len(all); i++ {
		t := all[i]
		if t.hash {
			j := i + 1
			for j < len(all) && all[j].directive && !all[j].hash {
				j++
			}
			p.dirs = append(p.dirs, directive{at: len(p.toks), toks: all[i:j]})
			i = j - 1
			pending = nil
			continue
		}
		if t.kind == kinds.TokenComment {
			line, _ := p.f.lineCol(t.begin)
			if !isDoc(t.text) {
				pending = nil
				continue
			}
			isLine := strings.HasPrefix(t.text, "//")
			if pending != nil && pending.line && isLine && line == lastLine+1 {
				pending.text += "\n" + t.text
				pending.end = t.end
			} else {
				pending = &docComment{text: t.text, begin: t.begin, end: t.end, line: isLine}
			}
			lastLine = line
			continue
		}
		if pending != nil {
			p.docs[len(p.toks)] = *pending
			pending = nil
		}
		p.toks = append(p.toks, t)
	}
}

func isDoc(text string) bool {
	switch {
	case strings.HasPrefix(text, "/**") && text != "/**/":
		return !strings.HasPrefix(text, "/***")
	case strings.HasPrefix(text, "/*!"), strings.HasPrefix(text, "//!"):
		return true
	case strings.HasPrefix(text, "///"):
		return !strings.HasPrefix(text, "////") && !strings.HasPrefix(text, "///<")
	}
	return false
}

func (p *parser) peek() token { return p.peekN(0) }

func (p *parser) peekN(n int) token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	end := uint32(len(p.f.content))
	return token{kind: -1, begin: end, end: end}
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) next() token {
	t := p.peek()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *parser) at(text string) bool {
	t := p.peek()
	return t.kind != -1 && t.kind != kinds.TokenLiteral && t.text == text
}

func (p *parser) accept(text string) bool {
	if p.at(text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) prevEnd() uint32 {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].end
}

func (p *parser) expect(text, what string) bool {
	if p.accept(text) {
		return true
	}
	p.errorf(p.prevEnd(), categoryParse, "expected '%s'%s", text, what)
	return false
}

func (p *parser) errorf(off uint32, category uint32, format string, args ...any) *diagnostic {
	return p.report(kinds.SeverityError, off, category, fmt.Sprintf(format, args...))
}

func (p *parser) report(sev kinds.Severity, off uint32, category uint32, msg string) *diagnostic {
	d := &diagnostic{severity: sev, message: msg, file: p.fi, offset: off, category: category}
	p.u.diags = append(p.u.diags, d)
	return d
}

// recover skips to the end of the current statement.
func (p *parser) recover() {
	depth := 0
	for !p.eof() {
		t := p.next()
		switch t.text {
		case "{", "(", "[":
			depth++
		case ")", "]":
			depth--
		case "}":
			depth--
			if depth <= 0 {
				return
			}
		case ";":
			if depth <= 0 {
				return
			}
		}
	}
}

func (p *parser) flushDirectives(upTo int) {
	for len(p.dirs) > 0 && p.dirs[0].at <= upTo {
		d := p.dirs[0]
		p.dirs = p.dirs[1:]
		p.directive(d.toks)
	}
}

func (p *parser) directive(toks []token) {
	if len(toks) < 2 {
		return
	}
	hash := toks[0]
	end := toks[len(toks)-1].end
	switch toks[1].text {
	case "include":
		p.include(hash, toks[2:], end)
	case "define":
		if len(toks) < 3 {
			return
		}
		name := toks[2]
		if !slices.Contains(p.u.macros, name.text) {
			p.u.macros = append(p.u.macros, name.text)
		}
		if p.b.detailed {
			p.u.addNode(node{kind: kinds.CursorMacroDefinition, name: name.text, file: p.fi, begin: name.begin, end: end, loc: name.begin, parent: 1})
		}
		if p.isGuard(toks[2].text) {
			p.f.guarded = true
		}
	case "pragma":
		if len(toks) > 2 && toks[2].text == "once" {
			p.f.guarded = true
		}
	}
}

// isGuard reports whether name is defined right after an #ifndef of the
// same name opening the file.
func (p *parser) isGuard(name string) bool {
	var first []token
	for _, t := range p.f.tokens {
		if t.kind == kinds.TokenComment {
			continue
		}
		if !t.directive {
			return false
		}
		if t.hash {
			if first != nil {
				break
			}
			first = []token{t}
			continue
		}
		first = append(first, t)
	}
	return len(first) >= 3 && first[1].text == "ifndef" && first[2].text == name
}

func (p *parser) include(hash token, rest []token, end uint32) {
	if len(rest) == 0 {
		return
	}
	var name string
	quoted := rest[0].kind == kinds.TokenLiteral
	if quoted {
		name = strings.Trim(rest[0].text, `"`)
	} else if rest[0].text == "<" {
		for _, t := range rest[1:] {
			if t.text == ">" {
				break
			}
			name += t.text
		}
	}
	path, content, system, ok := p.b.resolve(name, quoted, p.f.path)
	included := -1
	if !ok {
		d := p.report(kinds.SeverityFatal, rest[0].begin, categoryLexical, fmt.Sprintf("'%s' file not found", name))
		d.ranges = append(d.ranges, [3]uint32{uint32(p.fi), rest[0].begin, end})
	} else if fi, seen := p.b.parsed[path]; seen {
		included = fi
	} else {
		stack := append([]inclusionSite{{file: p.fi, offset: hash.begin}}, p.stack...)
		included = p.b.parseFile(path, content, system, stack)
	}
	if p.b.detailed {
		p.u.addNode(node{kind: kinds.CursorInclusionDirective, name: name, file: p.fi, begin: hash.begin, end: end, loc: rest[0].begin, parent: 1, include: included})
	}
}

func (p *parser) translationUnit() {
	for {
		p.flushDirectives(p.pos)
		if p.eof() {
			break
		}
		start := p.pos
		if p.accept(";") {
			continue
		}
		p.declaration(1, ctxFile)
		if p.pos == start {
			p.errorf(p.peek().begin, categoryParse, "expected external declaration")
			p.next()
		}
	}
	p.flushDirectives(len(p.toks) + 1)
}

var storageWords = map[string]bool{
	"typedef": true, "static": true, "extern": true, "inline": true,
	"register": true, "auto": true,
}

var typeWords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "signed": true, "unsigned": true,
	"_Bool": true,
}

func (p *parser) isDeclStart() bool {
	t := p.peek()
	switch {
	case t.kind == kinds.TokenKeyword:
		return storageWords[t.text] || typeWords[t.text] || t.text == "const" ||
			t.text == "volatile" || t.text == "struct" || t.text == "union" ||
			t.text == "enum" || t.text == "__attribute__"
	case t.kind == kinds.TokenIdentifier:
		id := p.b.lookup(t.text)
		return id != 0 && p.u.nodes[id].kind == kinds.CursorTypedefDecl
	}
	return false
}

func (p *parser) specifiers(parent int) specs {
	s := specs{begin: p.peek().begin}
	var words []string
	for !p.eof() {
		t := p.peek()
		switch {
		case t.kind == kinds.TokenKeyword && storageWords[t.text]:
			p.next()
			s.ok = true
			switch t.text {
			case "typedef":
				s.typedef = true
			case "static":
				s.static = true
			case "extern":
				s.extern = true
			}
		case t.text == "const" && t.kind == kinds.TokenKeyword:
			p.next()
			s.konst = true
		case t.text == "volatile" && t.kind == kinds.TokenKeyword:
			p.next()
			s.volatile = true
		case t.text == "restrict" && t.kind == kinds.TokenKeyword:
			p.next()
		case t.text == "__attribute__":
			p.attribute(&s.attrs)
		case t.kind == kinds.TokenKeyword && typeWords[t.text]:
			if s.tagDecl != 0 && len(words) == 0 && s.typ != 0 {
				p.missingSemi(&s)
				return s
			}
			p.next()
			words = append(words, t.text)
			s.ok = true
		case t.kind == kinds.TokenKeyword && (t.text == "struct" || t.text == "union" || t.text == "enum"):
			if s.typ != 0 && s.tagDecl != 0 {
				p.missingSemi(&s)
				return s
			}
			s.typ = p.tag(parent, &s)
			s.ok = true
		case t.kind == kinds.TokenIdentifier && s.typ == 0 && len(words) == 0:
			id := p.b.lookup(t.text)
			if id != 0 && p.u.nodes[id].kind == kinds.CursorTypedefDecl {
				p.next()
				typ := p.u.typedefType(id)
				if p.b.elaborated {
					typ = p.u.intern(ftype{kind: kinds.TypeElaborated, spelling: t.text, inner: typ})
				}
				s.typ = typ
				s.refs = append(s.refs, specRef{target: id, name: t.text, begin: t.begin, end: t.end})
				s.ok = true
				continue
			}
			nt := p.peekN(1)
			if id == 0 && (nt.kind == kinds.TokenIdentifier || nt.text == "*") {
				p.next()
				p.errorf(t.begin, categoryParse, "unknown type name '%s'", t.text)
				s.typ = p.u.intType()
				s.ok = true
				continue
			}
			return p.finishSpecs(s, words)
		default:
			return p.finishSpecs(s, words)
		}
	}
	return p.finishSpecs(s, words)
}

func (p *parser) missingSemi(s *specs) {
	at := p.prevEnd()
	d := p.errorf(at, categoryParse, "expected ';' after %s", strings.Fields(tagSpelling(&p.u.nodes[s.tagDecl]))[0])
	d.fixits = append(d.fixits, fixIt{file: p.fi, begin: at, end: at, text: ";"})
	s.missingSemi = true
}

func (p *parser) finishSpecs(s specs, words []string) specs {
	if len(words) > 0 {
		sort.Strings(words)
		b, ok := builtins[strings.Join(words, " ")]
		if !ok {
			b = builtins["int"]
		}
		s.typ = p.u.builtin(b)
	}
	if s.typ == 0 && s.ok {
		s.typ = p.u.intType()
	}
	if s.typ != 0 {
		s.typ = p.u.qualified(s.typ, s.konst, s.volatile, false)
	}
	return s
}

var tagKinds = map[string]kinds.CursorKind{
	"struct": kinds.CursorStructDecl,
	"union":  kinds.CursorUnionDecl,
	"enum":   kinds.CursorEnumDecl,
}

func (p *parser) tag(parent int, s *specs) int {
	kw := p.next()
	kind := tagKinds[kw.text]
	for p.at("__attribute__") {
		p.attribute(&s.attrs)
	}
	var nameTok token
	named := p.peek().kind == kinds.TokenIdentifier
	if named {
		nameTok = p.next()
	}
	existing := 0
	if named {
		existing = p.b.tags[nameTok.text]
	}
	loc := kw.begin
	if named {
		loc = nameTok.begin
	}

	if p.at("{") {
		if existing != 0 && p.u.nodes[existing].kind != kind {
			p.tagMismatch(kw, nameTok.text, existing)
		}
		if def := p.u.definition(existing); def != 0 {
			d := p.errorf(nameTok.begin, categorySemantic, "redefinition of '%s'", nameTok.text)
			d.notes = append(d.notes, &diagnostic{severity: kinds.SeverityNote, message: "previous definition is here", file: p.u.nodes[def].file, offset: p.u.nodes[def].loc, category: categorySemantic})
		}
		id := p.u.addNode(node{kind: kind, name: nameTok.text, file: p.fi, begin: kw.begin, loc: loc, parent: parent, def: true, bitWidth: -1})
		if existing != 0 {
			p.u.nodes[id].canon = p.u.canonical(existing)
		} else if named {
			p.b.tags[nameTok.text] = id
		}
		p.u.defs[p.u.canonical(id)] = id
		p.attachDoc(id, kw)
		s.tagDecl = id
		s.anonTag = !named
		p.next()
		if kind == kinds.CursorEnumDecl {
			p.enumBody(id)
		} else {
			p.b.push()
			for !p.at("}") && !p.eof() {
				start := p.pos
				p.declaration(id, ctxField)
				if p.pos == start {
					p.next()
				}
			}
			p.b.pop()
		}
		p.expect("}", "")
		p.u.nodes[id].end = p.prevEnd()
		p.u.nodes[id].attrs = s.attrs
		return p.u.tagType(id, p.b.elaborated)
	}

	if !named {
		p.errorf(p.peek().begin, categoryParse, "declaration of anonymous %s must be a definition", kw.text)
		return p.u.intType()
	}
	if p.at(";") && existing == 0 || p.at(";") && p.u.nodes[existing].kind == kind {
		id := p.u.addNode(node{kind: kind, name: nameTok.text, file: p.fi, begin: kw.begin, end: nameTok.end, loc: nameTok.begin, parent: parent, bitWidth: -1})
		if existing != 0 {
			p.u.nodes[id].canon = p.u.canonical(existing)
		} else {
			p.b.tags[nameTok.text] = id
		}
		p.attachDoc(id, kw)
		s.tagDecl = id
		return p.u.tagType(id, p.b.elaborated)
	}
	if existing == 0 {
		existing = p.u.addNode(node{kind: kind, name: nameTok.text, file: p.fi, begin: kw.begin, end: nameTok.end, loc: nameTok.begin, bitWidth: -1})
		p.u.nodes[existing].parent = 1
		p.b.tags[nameTok.text] = existing
	} else if p.u.nodes[existing].kind != kind {
		p.tagMismatch(kw, nameTok.text, existing)
	}
	s.refs = append(s.refs, specRef{target: existing, name: tagSpelling(&p.u.nodes[existing]), begin: nameTok.begin, end: nameTok.end})
	return p.u.tagType(existing, p.b.elaborated)
}

func (p *parser) tagMismatch(kw token, name string, previous int) {
	prev := &p.u.nodes[previous]
	d := p.errorf(kw.begin, categorySemantic, "use of '%s' with tag type that does not match previous declaration", name)
	d.ranges = append(d.ranges, [3]uint32{uint32(p.fi), kw.begin, kw.end})
	want := strings.Fields(tagSpelling(prev))[0]
	d.fixits = append(d.fixits, fixIt{file: p.fi, begin: kw.begin, end: kw.end, text: want})
	d.notes = append(d.notes, &diagnostic{severity: kinds.SeverityNote, message: "previous use is here", file: prev.file, offset: prev.loc, category: categorySemantic})
}

func (p *parser) enumBody(id int) {
	var next int64
	negative := false
	for !p.at("}") && !p.eof() {
		t := p.next()
		if t.kind != kinds.TokenIdentifier {
			p.errorf(t.begin, categoryParse, "expected identifier")
			continue
		}
		c := p.u.addNode(node{kind: kinds.CursorEnumConstantDecl, name: t.text, file: p.fi, begin: t.begin, loc: t.begin, parent: id, def: true, bitWidth: -1})
		p.attachDoc(c, t)
		if p.accept("=") {
			e := p.assignment(c)
			if v, ok := p.eval(e); ok {
				next = v
			}
		}
		p.u.nodes[c].value = next
		p.u.nodes[c].typ = p.u.intType()
		p.u.nodes[c].end = p.prevEnd()
		negative = negative || next < 0
		next++
		p.b.scopes[0][t.text] = c
		if !p.accept(",") {
			break
		}
	}
	if negative {
		p.u.nodes[id].under = p.u.intType()
	} else {
		p.u.nodes[id].under = p.u.builtin(builtins["unsigned"])
	}
}

// attribute parses one __attribute__((...)) list.
func (p *parser) attribute(a *availability) {
	p.next()
	if !p.expect("(", " after '__attribute__'") || !p.expect("(", "") {
		p.recover()
		return
	}
	for !p.at(")") && !p.eof() {
		name := p.next().text
		var args []token
		if p.accept("(") {
			depth := 1
			for !p.eof() {
				t := p.next()
				if t.text == "(" {
					depth++
				} else if t.text == ")" {
					depth--
					if depth == 0 {
						break
					}
				}
				args = append(args, t)
			}
		}
		name = strings.Trim(name, "_")
		switch name {
		case "deprecated":
			a.deprecated = true
			if len(args) > 0 {
				a.depMsg = unquote(args[0].text)
			}
		case "unavailable":
			a.unavailable = true
			if len(args) > 0 {
				a.unavailMsg = unquote(args[0].text)
			}
		case "availability":
			a.platforms = append(a.platforms, platformAvailability(args))
		}
		p.accept(",")
	}
	p.accept(")")
	p.accept(")")
}

func platformAvailability(args []token) native.PlatformAvailability {
	none := native.Version{Major: -1, Minor: -1, Subminor: -1}
	pa := native.PlatformAvailability{Introduced: none, Deprecated: none, Obsoleted: none}
	if len(args) > 0 {
		pa.Platform = args[0].text
	}
	for i := 1; i < len(args); i++ {
		key := args[i].text
		if key == "," {
			continue
		}
		val := ""
		if i+2 < len(args) && args[i+1].text == "=" {
			val = args[i+2].text
			i += 2
		}
		switch key {
		case "introduced":
			pa.Introduced = parseVersion(val)
		case "deprecated":
			pa.Deprecated = parseVersion(val)
		case "obsoleted":
			pa.Obsoleted = parseVersion(val)
		case "unavailable":
			pa.Unavailable = true
		case "message":
			pa.Message = unquote(val)
		}
	}
	return pa
}

func parseVersion(s string) native.Version {
	v := native.Version{Major: -1, Minor: -1, Subminor: -1}
	parts := strings.Split(s, ".")
	dst := []*int32{&v.Major, &v.Minor, &v.Subminor}
	for i, part := range parts {
		if i >= len(dst) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		*dst[i] = int32(n)
	}
	return v
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return strings.Trim(s, `"`)
}

// declaration parses one declaration with all its declarators.
func (p *parser) declaration(parent int, ctx declCtx) {
	startTok := p.peek()
	s := p.specifiers(parent)
	if !s.ok {
		if ctx == ctxFile || ctx == ctxField {
			p.errorf(startTok.begin, categoryParse, "expected declaration")
			p.recover()
		}
		return
	}
	if s.missingSemi {
		return
	}
	if p.accept(";") {
		if ctx == ctxField && s.anonTag {
			p.u.nodes[s.tagDecl].anon = true
		}
		return
	}
	for {
		id := p.declarator(parent, &s, ctx, startTok)
		n := &p.u.nodes[id]
		if n.kind == kinds.CursorFunctionDecl && p.at("{") {
			p.functionBody(id)
			return
		}
		if p.accept(",") {
			continue
		}
		if !p.accept(";") {
			p.errorf(p.prevEnd(), categoryParse, "expected ';' after top level declarator")
			p.recover()
		}
		return
	}
}

func (p *parser) declarator(parent int, s *specs, ctx declCtx, startTok token) int {
	id := p.u.addNode(node{kind: kinds.CursorVarDecl, file: p.fi, begin: s.begin, parent: parent, bitWidth: -1})
	for _, r := range s.refs {
		p.u.addNode(node{kind: kinds.CursorTypeRef, name: r.name, file: p.fi, begin: r.begin, end: r.end, loc: r.begin, parent: id, ref: r.target})
	}
	d := p.parseDeclarator(id)
	typ := d.apply(s.typ)
	attrs := s.attrs
	for p.at("__attribute__") {
		p.attribute(&attrs)
	}

	kind := kinds.CursorVarDecl
	ft := p.u.types[typ].kind
	isFunc := ft == kinds.TypeFunctionProto || ft == kinds.TypeFunctionNoProto
	switch {
	case ctx == ctxParam:
		kind = kinds.CursorParmDecl
		typ = p.decay(typ)
	case s.typedef:
		kind = kinds.CursorTypedefDecl
	case isFunc:
		kind = kinds.CursorFunctionDecl
	case ctx == ctxField:
		kind = kinds.CursorFieldDecl
	}

	n := &p.u.nodes[id]
	n.kind = kind
	n.name = d.name
	n.loc = s.begin
	if d.hasName {
		n.loc = d.nameTok.begin
	}
	n.typ = typ
	n.static = s.static
	n.attrs = attrs
	if kind == kinds.CursorFunctionDecl {
		n.params = d.params
		n.variadic = d.variadic
	}

	switch {
	case ctx == ctxField && p.accept(":"):
		e := p.conditional(id)
		if v, ok := p.eval(e); ok {
			p.u.nodes[id].bitWidth = int32(v)
		}
	case kind == kinds.CursorVarDecl && p.accept("="):
		var e int
		if p.at("{") {
			e = p.initList(id)
		} else {
			e = p.assignment(id)
		}
		p.u.nodes[id].init = e
	}
	p.u.nodes[id].end = p.prevEnd()

	switch kind {
	case kinds.CursorFunctionDecl:
		p.u.nodes[id].def = false
	case kinds.CursorVarDecl:
		p.u.nodes[id].def = !s.extern || p.u.nodes[id].init != 0
	default:
		p.u.nodes[id].def = true
	}
	if ctx == ctxFile || ctx == ctxBlock {
		p.redeclare(id)
	}
	if ctx == ctxFile || ctx == ctxBlock {
		p.b.declare(d.name, id)
	}
	p.attachDoc(id, startTok)
	return id
}

// redeclare links id to an earlier declaration of the same entity.
func (p *parser) redeclare(id int) {
	n := &p.u.nodes[id]
	prev := p.b.scopes[len(p.b.scopes)-1][n.name]
	if prev == 0 || p.u.nodes[prev].kind != n.kind {
		if n.def {
			p.u.defs[id] = id
		}
		return
	}
	canon := p.u.canonical(prev)
	n.canon = canon
	if n.def && p.u.definition(canon) == 0 {
		p.u.defs[canon] = id
	}
}

func (p *parser) decay(typ int) int {
	t := p.u.types[typ]
	switch t.kind {
	case kinds.TypeConstantArray, kinds.TypeIncompleteArray:
		return p.u.pointer(t.inner)
	case kinds.TypeFunctionProto, kinds.TypeFunctionNoProto:
		return p.u.pointer(typ)
	}
	return typ
}

func (p *parser) qualifiers() (konst, volatile, restrict bool) {
	for {
		switch {
		case p.accept("const"):
			konst = true
		case p.accept("volatile"):
			volatile = true
		case p.accept("restrict"):
			restrict = true
		default:
			return
		}
	}
}

func (p *parser) parseDeclarator(owner int) declarator {
	if p.accept("*") {
		k, v, r := p.qualifiers()
		in := p.parseDeclarator(owner)
		apply := in.apply
		in.apply = func(b int) int { return apply(p.u.qualified(p.u.pointer(b), k, v, r)) }
		return in
	}
	var d declarator
	var inner func(int) int
	if p.at("(") && (p.peekN(1).text == "*" || p.peekN(1).text == "(") {
		p.next()
		in := p.parseDeclarator(owner)
		p.expect(")", "")
		d = in
		inner = in.apply
	} else if p.peek().kind == kinds.TokenIdentifier {
		d.nameTok = p.next()
		d.name = d.nameTok.text
		d.hasName = true
	}
	var suffixes []func(int) int
	first := true
	for {
		switch {
		case p.accept("["):
			count := int64(-1)
			if !p.at("]") {
				e := p.conditional(owner)
				if v, ok := p.eval(e); ok {
					count = v
				}
			}
			p.expect("]", "")
			suffixes = append(suffixes, func(b int) int { return p.u.array(b, count) })
		case p.at("("):
			p.next()
			params, args, variadic, proto := p.parameters(owner)
			if first && inner == nil {
				d.params = params
				d.variadic = variadic
			}
			suffixes = append(suffixes, func(b int) int { return p.u.function(b, args, variadic, proto) })
		default:
			d.apply = func(b int) int {
				for i := len(suffixes) - 1; i >= 0; i-- {
					b = suffixes[i](b)
				}
				if inner != nil {
					b = inner(b)
				}
				return b
			}
			return d
		}
		first = false
	}
}

// parameters parses a parameter list after its opening parenthesis.
func (p *parser) parameters(owner int) (params, args []int, variadic, proto bool) {
	if p.accept(")") {
		return nil, nil, false, false
	}
	if p.at("void") && p.peekN(1).text == ")" {
		p.next()
		p.next()
		return nil, nil, false, true
	}
	proto = true
	for !p.eof() {
		if p.accept("...") {
			variadic = true
			break
		}
		startTok := p.peek()
		s := p.specifiers(owner)
		if !s.ok {
			p.errorf(startTok.begin, categoryParse, "expected parameter declarator")
			break
		}
		id := p.declarator(owner, &s, ctxParam, startTok)
		params = append(params, id)
		args = append(args, p.u.nodes[id].typ)
		if !p.accept(",") {
			break
		}
	}
	p.expect(")", "")
	return params, args, variadic, proto
}

func (p *parser) functionBody(id int) {
	canon := p.u.canonical(id)
	if def := p.u.definition(canon); def != 0 && def != id {
		n := &p.u.nodes[id]
		d := p.errorf(n.loc, categorySemantic, "redefinition of '%s'", n.name)
		d.notes = append(d.notes, &diagnostic{severity: kinds.SeverityNote, message: "previous definition is here", file: p.u.nodes[def].file, offset: p.u.nodes[def].loc, category: categorySemantic})
	} else {
		p.u.defs[canon] = id
	}
	p.u.nodes[id].def = true
	p.b.push()
	for _, prm := range p.u.nodes[id].params {
		p.b.declare(p.u.nodes[prm].name, prm)
	}
	if p.b.skipBodies {
		p.recover()
	} else {
		p.compound(id)
	}
	p.b.pop()
	p.u.nodes[id].end = p.prevEnd()
}

func (p *parser) addStmt(kind kinds.CursorKind, parent int, t token) int {
	return p.u.addNode(node{kind: kind, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, bitWidth: -1})
}

func (p *parser) compound(parent int) int {
	id := p.addStmt(kinds.CursorCompoundStmt, parent, p.next())
	p.b.push()
	for !p.at("}") && !p.eof() {
		start := p.pos
		p.statement(id)
		if p.pos == start {
			p.next()
		}
	}
	p.b.pop()
	p.expect("}", "")
	p.u.nodes[id].end = p.prevEnd()
	return id
}

func (p *parser) statement(parent int) {
	t := p.peek()
	switch {
	case p.at("{"):
		p.compound(parent)
	case p.at(";"):
		id := p.addStmt(kinds.CursorNullStmt, parent, p.next())
		p.u.nodes[id].end = t.end
	case p.at("return"):
		id := p.addStmt(kinds.CursorReturnStmt, parent, p.next())
		if !p.at(";") {
			p.expression(id)
		}
		p.expect(";", " after return statement")
		p.u.nodes[id].end = p.prevEnd()
	case p.at("if"):
		id := p.addStmt(kinds.CursorIfStmt, parent, p.next())
		p.expect("(", " after 'if'")
		p.expression(id)
		p.expect(")", "")
		p.statement(id)
		if p.accept("else") {
			p.statement(id)
		}
		p.u.nodes[id].end = p.prevEnd()
	case p.at("while"):
		id := p.addStmt(kinds.CursorWhileStmt, parent, p.next())
		p.expect("(", " after 'while'")
		p.expression(id)
		p.expect(")", "")
		p.statement(id)
		p.u.nodes[id].end = p.prevEnd()
	case p.at("do"):
		id := p.addStmt(kinds.CursorDoStmt, parent, p.next())
		p.statement(id)
		p.expect("while", " in do/while loop")
		p.expect("(", " after 'while'")
		p.expression(id)
		p.expect(")", "")
		p.expect(";", " after do/while statement")
		p.u.nodes[id].end = p.prevEnd()
	case p.at("for"):
		id := p.addStmt(kinds.CursorForStmt, parent, p.next())
		p.expect("(", " after 'for'")
		p.b.push()
		if p.isDeclStart() {
			p.declStmt(id)
		} else {
			if !p.at(";") {
				p.expression(id)
			}
			p.expect(";", " in 'for' statement specifier")
		}
		if !p.at(";") {
			p.expression(id)
		}
		p.expect(";", " in 'for' statement specifier")
		if !p.at(")") {
			p.expression(id)
		}
		p.expect(")", "")
		p.statement(id)
		p.b.pop()
		p.u.nodes[id].end = p.prevEnd()
	case p.at("break"), p.at("continue"):
		kind := kinds.CursorBreakStmt
		if t.text == "continue" {
			kind = kinds.CursorContinueStmt
		}
		id := p.addStmt(kind, parent, p.next())
		p.expect(";", "")
		p.u.nodes[id].end = p.prevEnd()
	case p.isDeclStart():
		p.declStmt(parent)
	default:
		start := p.pos
		p.expression(parent)
		if p.pos == start {
			p.recover()
			return
		}
		if !p.accept(";") {
			p.errorf(p.prevEnd(), categoryParse, "expected ';' after expression")
			p.recover()
		}
	}
}

func (p *parser) declStmt(parent int) {
	id := p.addStmt(kinds.CursorDeclStmt, parent, p.peek())
	p.declaration(id, ctxBlock)
	p.u.nodes[id].end = p.prevEnd()
}

func (p *parser) expression(parent int) int {
	e := p.assignment(parent)
	for e != 0 && p.at(",") {
		op := p.next()
		w := p.u.wrap(e, node{kind: kinds.CursorBinaryOperator, loc: op.begin, op: ",", bitWidth: -1})
		r := p.assignment(w)
		p.u.nodes[w].typ = p.u.nodes[r].typ
		p.u.nodes[w].end = p.prevEnd()
		e = w
	}
	return e
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

func (p *parser) assignment(parent int) int {
	lhs := p.conditional(parent)
	t := p.peek()
	if lhs == 0 || t.kind != kinds.TokenPunctuation || !assignOps[t.text] {
		return lhs
	}
	p.next()
	kind := kinds.CursorCompoundAssignOperator
	if t.text == "=" {
		kind = kinds.CursorBinaryOperator
	}
	w := p.u.wrap(lhs, node{kind: kind, loc: t.begin, op: t.text, typ: p.u.nodes[lhs].typ, bitWidth: -1})
	p.assignment(w)
	p.u.nodes[w].end = p.prevEnd()
	return w
}

func (p *parser) conditional(parent int) int {
	c := p.binary(parent, 0)
	if c == 0 || !p.at("?") {
		return c
	}
	q := p.next()
	w := p.u.wrap(c, node{kind: kinds.CursorConditionalOperator, loc: q.begin, op: "?", bitWidth: -1})
	then := p.expression(w)
	p.expect(":", "")
	p.conditional(w)
	if then != 0 {
		p.u.nodes[w].typ = p.u.nodes[then].typ
	}
	p.u.nodes[w].end = p.prevEnd()
	return w
}

var binaryPrec = map[string]int{
	"||": 1, "&&": 2, "|": 3, "^": 4, "&": 5,
	"==": 6, "!=": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7,
	"<<": 8, ">>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

func (p *parser) binary(parent, minPrec int) int {
	lhs := p.unary(parent)
	for lhs != 0 {
		t := p.peek()
		prec, ok := binaryPrec[t.text]
		if t.kind != kinds.TokenPunctuation || !ok || prec < minPrec {
			return lhs
		}
		p.next()
		typ := p.u.nodes[lhs].typ
		if prec <= 7 {
			typ = p.u.intType()
		}
		w := p.u.wrap(lhs, node{kind: kinds.CursorBinaryOperator, loc: t.begin, op: t.text, typ: typ, bitWidth: -1})
		p.binary(w, prec+1)
		p.u.nodes[w].end = p.prevEnd()
		lhs = w
	}
	return lhs
}

var unaryOps = map[string]bool{
	"-": true, "+": true, "!": true, "~": true, "*": true, "&": true,
	"++": true, "--": true,
}

func (p *parser) unary(parent int) int {
	t := p.peek()
	switch {
	case t.kind == kinds.TokenPunctuation && unaryOps[t.text]:
		p.next()
		id := p.u.addNode(node{kind: kinds.CursorUnaryOperator, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, op: t.text, bitWidth: -1})
		operand := p.unary(id)
		typ := p.u.nodes[operand].typ
		switch t.text {
		case "*":
			typ = p.u.types[p.u.canonicalType(typ)].inner
		case "&":
			typ = p.u.pointer(typ)
		case "!":
			typ = p.u.intType()
		}
		p.u.nodes[id].typ = typ
		p.u.nodes[id].end = p.prevEnd()
		return id
	case t.text == "sizeof" && t.kind == kinds.TokenKeyword:
		p.next()
		id := p.u.addNode(node{kind: kinds.CursorUnaryExpr, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, op: "sizeof", bitWidth: -1})
		if p.at("(") && p.typeNameAt(1) {
			p.next()
			p.typeName(id)
			p.expect(")", "")
		} else {
			p.unary(id)
		}
		p.u.nodes[id].typ = p.u.builtin(builtins["long unsigned"])
		p.u.nodes[id].end = p.prevEnd()
		return id
	case t.text == "(" && p.typeNameAt(1):
		p.next()
		id := p.u.addNode(node{kind: kinds.CursorCStyleCastExpr, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, bitWidth: -1})
		typ := p.typeName(id)
		p.expect(")", "")
		p.unary(id)
		p.u.nodes[id].typ = typ
		p.u.nodes[id].end = p.prevEnd()
		return id
	}
	return p.postfix(parent)
}

func (p *parser) typeNameAt(n int) bool {
	save := p.pos
	p.pos += n
	ok := p.isDeclStart()
	p.pos = save
	return ok
}

func (p *parser) typeName(owner int) int {
	s := p.specifiers(owner)
	for _, r := range s.refs {
		p.u.addNode(node{kind: kinds.CursorTypeRef, name: r.name, file: p.fi, begin: r.begin, end: r.end, loc: r.begin, parent: owner, ref: r.target})
	}
	d := p.parseDeclarator(owner)
	return d.apply(s.typ)
}

func (p *parser) postfix(parent int) int {
	e := p.primary(parent)
	for e != 0 {
		t := p.peek()
		switch {
		case p.at("("):
			p.next()
			callee := &p.u.nodes[e]
			res := p.u.types[p.u.canonicalType(callee.typ)]
			if res.kind == kinds.TypePointer {
				res = p.u.types[p.u.canonicalType(res.inner)]
			}
			w := p.u.wrap(e, node{kind: kinds.CursorCallExpr, name: callee.name, ref: callee.ref, typ: res.inner, bitWidth: -1})
			p.u.nodes[w].loc = p.u.nodes[w].begin
			for !p.at(")") && !p.eof() {
				start := p.pos
				p.assignment(w)
				if !p.accept(",") || p.pos == start {
					break
				}
			}
			p.expect(")", "")
			p.u.nodes[w].end = p.prevEnd()
			e = w
		case p.at("["):
			p.next()
			w := p.u.wrap(e, node{kind: kinds.CursorArraySubscriptExpr, loc: t.begin, typ: p.u.types[p.u.canonicalType(p.u.nodes[e].typ)].inner, bitWidth: -1})
			p.expression(w)
			p.expect("]", "")
			p.u.nodes[w].end = p.prevEnd()
			e = w
		case p.at("."), p.at("->"):
			p.next()
			name := p.next()
			base := p.u.nodes[e].typ
			if t.text == "->" {
				base = p.u.types[p.u.canonicalType(base)].inner
			}
			field := p.u.field(base, name.text)
			w := p.u.wrap(e, node{kind: kinds.CursorMemberRefExpr, name: name.text, loc: name.begin, ref: field, typ: p.u.nodes[field].typ, bitWidth: -1})
			p.u.nodes[w].end = name.end
			e = w
		case p.at("++"), p.at("--"):
			p.next()
			w := p.u.wrap(e, node{kind: kinds.CursorUnaryOperator, loc: t.begin, op: t.text, typ: p.u.nodes[e].typ, bitWidth: -1})
			p.u.nodes[w].end = t.end
			e = w
		default:
			return e
		}
	}
	return e
}

func (p *parser) primary(parent int) int {
	t := p.peek()
	switch {
	case t.kind == kinds.TokenIdentifier:
		p.next()
		ref := p.b.lookup(t.text)
		if ref == 0 {
			if p.at("(") {
				d := p.report(kinds.SeverityWarning, t.begin, categorySemantic, fmt.Sprintf("call to undeclared function '%s'; ISO C99 and later do not support implicit function declarations", t.text))
				d.option = "-Wimplicit-function-declaration"
			} else {
				p.errorf(t.begin, categorySemantic, "use of undeclared identifier '%s'", t.text)
			}
		}
		typ := 0
		if ref != 0 {
			typ = p.u.nodes[ref].typ
		}
		return p.u.addNode(node{kind: kinds.CursorDeclRefExpr, name: t.text, file: p.fi, begin: t.begin, end: t.end, loc: t.begin, parent: parent, ref: ref, typ: typ, bitWidth: -1})
	case t.kind == kinds.TokenLiteral:
		p.next()
		kind, typ := p.literal(t.text)
		return p.u.addNode(node{kind: kind, name: t.text, file: p.fi, begin: t.begin, end: t.end, loc: t.begin, parent: parent, typ: typ, bitWidth: -1})
	case p.at("("):
		p.next()
		id := p.u.addNode(node{kind: kinds.CursorParenExpr, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, bitWidth: -1})
		inner := p.expression(id)
		p.expect(")", "")
		p.u.nodes[id].typ = p.u.nodes[inner].typ
		p.u.nodes[id].end = p.prevEnd()
		return id
	}
	p.errorf(t.begin, categoryParse, "expected expression")
	return 0
}

func (p *parser) literal(text string) (kinds.CursorKind, int) {
	switch {
	case strings.HasPrefix(text, `"`):
		return kinds.CursorStringLiteral, p.u.array(p.u.builtin(builtins["char"]), int64(len(unquote(text))+1))
	case strings.HasPrefix(text, "'"):
		return kinds.CursorCharacterLiteral, p.u.intType()
	case !strings.HasPrefix(text, "0x") && strings.ContainsAny(text, ".eE"):
		return kinds.CursorFloatingLiteral, p.u.builtin(builtins["double"])
	}
	return kinds.CursorIntegerLiteral, p.u.intType()
}

func (p *parser) initList(parent int) int {
	t := p.next()
	id := p.u.addNode(node{kind: kinds.CursorInitListExpr, file: p.fi, begin: t.begin, loc: t.begin, parent: parent, typ: p.u.nodes[parent].typ, bitWidth: -1})
	for !p.at("}") && !p.eof() {
		start := p.pos
		if p.at("{") {
			p.initList(id)
		} else {
			p.assignment(id)
		}
		if !p.accept(",") || p.pos == start {
			break
		}
	}
	p.expect("}", "")
	p.u.nodes[id].end = p.prevEnd()
	return id
}

// eval folds an integer constant expression.
func (p *parser) eval(id int) (int64, bool) {
	if id == 0 {
		return 0, false
	}
	n := &p.u.nodes[id]
	switch n.kind {
	case kinds.CursorIntegerLiteral:
		v, err := strconv.ParseInt(strings.TrimRight(n.name, "uUlL"), 0, 64)
		return v, err == nil
	case kinds.CursorCharacterLiteral:
		s := unquote(strings.ReplaceAll(n.name, "'", `"`))
		if s == "" {
			return 0, false
		}
		return int64(s[0]), true
	case kinds.CursorDeclRefExpr:
		if n.ref != 0 && p.u.nodes[n.ref].kind == kinds.CursorEnumConstantDecl {
			return p.u.nodes[n.ref].value, true
		}
	case kinds.CursorParenExpr:
		if len(n.children) == 1 {
			return p.eval(n.children[0])
		}
	case kinds.CursorUnaryOperator:
		if len(n.children) != 1 {
			return 0, false
		}
		v, ok := p.eval(n.children[0])
		switch n.op {
		case "-":
			return -v, ok
		case "+":
			return v, ok
		case "~":
			return ^v, ok
		case "!":
			if v == 0 {
				return 1, ok
			}
			return 0, ok
		}
	case kinds.CursorBinaryOperator:
		if len(n.children) != 2 {
			return 0, false
		}
		a, ok1 := p.eval(n.children[0])
		b, ok2 := p.eval(n.children[1])
		if !ok1 || !ok2 {
			return 0, false
		}
		switch n.op {
		case "+":
			return a + b, true
		case "-":
			return a - b, true
		case "*":
			return a * b, true
		case "/":
			if b == 0 {
				return 0, false
			}
			return a / b, true
		case "%":
			if b == 0 {
				return 0, false
			}
			return a % b, true
		case "<<":
			return a << uint(b), true
		case ">>":
			return a >> uint(b), true
		case "|":
			return a | b, true
		case "&":
			return a & b, true
		case "^":
			return a ^ b, true
		}
	}
	return 0, false
}

// attachDoc gives id the documentation comment that precedes token t.
func (p *parser) attachDoc(id int, t token) {
	for idx, dc := range p.docs {
		if idx >= len(p.toks) || p.toks[idx].begin != t.begin {
			continue
		}
		delete(p.docs, idx)
		n := &p.u.nodes[id]
		n.raw = dc.text
		var params []string
		for _, prm := range n.params {
			params = append(params, p.u.nodes[prm].name)
		}
		n.comment = p.u.parseDoc(id, dc.text, params)
		return
	}
}

// field finds the field called name in the record type typ.
func (u *unit) field(typ int, name string) int {
	t := u.types[u.canonicalType(u.unqualified(typ))]
	if t.kind != kinds.TypeRecord {
		return 0
	}
	return u.fieldIn(u.definition(t.decl), name)
}

func (u *unit) fieldIn(rec int, name string) int {
	if rec == 0 {
		return 0
	}
	for _, c := range u.nodes[rec].children {
		n := &u.nodes[c]
		switch {
		case n.kind == kinds.CursorFieldDecl && n.name == name:
			return c
		case n.anon:
			if f := u.fieldIn(c, name); f != 0 {
				return f
			}
		}
	}
	return 0
}
