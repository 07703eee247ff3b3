package fakeclang

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

func (l *Lib) cursor(u *unit, id int) native.Cursor {
	if u == nil || id <= 0 || id >= len(u.nodes) {
		return l.NullCursor()
	}
	return native.Cursor{
		Kind: l.reg.NativeCursor(u.nodes[id].kind),
		Data: [3]uintptr{uintptr(id), uintptr(u.handle)},
	}
}

// marked returns a cursor for id whose private payload differs from the one
// cursor returns, the way libclang hands out distinct but equal cursors.
func (l *Lib) marked(u *unit, id int) native.Cursor {
	c := l.cursor(u, id)
	if c.Data[1] != 0 {
		c.Xdata = 1
		c.Data[2] = 1
	}
	return c
}

func (l *Lib) node(c native.Cursor) (*unit, int) {
	if c.Data[1] == 0 {
		return nil, 0
	}
	u := l.unit(native.Handle(c.Data[1]))
	id := int(c.Data[0])
	if id <= 0 || id >= len(u.nodes) {
		return u, 0
	}
	return u, id
}

func isDecl(k kinds.CursorKind) bool { return k.IsDeclaration() }

func isRef(k kinds.CursorKind) bool {
	switch k {
	case kinds.CursorDeclRefExpr, kinds.CursorMemberRefExpr, kinds.CursorCallExpr:
		return true
	}
	return k.Category() == kinds.CategoryReference
}

// target returns the declaration a cursor names: itself for declarations,
// the referenced declaration for references.
func (u *unit) target(id int) int {
	n := &u.nodes[id]
	switch {
	case isDecl(n.kind), n.kind == kinds.CursorMacroDefinition:
		return id
	case isRef(n.kind):
		return n.ref
	}
	return 0
}

func (l *Lib) NullCursor() native.Cursor {
	return native.Cursor{Kind: int32(kinds.CursorInvalidFile)}
}

func (l *Lib) EqualCursors(a, b native.Cursor) bool {
	return a.Kind == b.Kind && a.Data[0] == b.Data[0] && a.Data[1] == b.Data[1]
}

func (l *Lib) HashCursor(c native.Cursor) uint32 {
	h := uint32(2166136261)
	for _, v := range []uint64{uint64(c.Kind), uint64(c.Data[0]), uint64(c.Data[1])} {
		h ^= uint32(v) ^ uint32(v>>32)
		h *= 16777619
	}
	return h
}

func (l *Lib) CursorKindSpelling(kind int32) string {
	k, err := l.reg.Cursor(kind)
	if err != nil {
		return ""
	}
	return k.String()
}

func (l *Lib) KindIs(kind int32, class native.KindClass) bool {
	k, err := l.reg.Cursor(kind)
	if err != nil {
		return false
	}
	switch class {
	case native.ClassDeclaration:
		return k.Category() == kinds.CategoryDeclaration
	case native.ClassReference:
		return k.Category() == kinds.CategoryReference
	case native.ClassExpression:
		return k.Category() == kinds.CategoryExpression
	case native.ClassStatement:
		return k.Category() == kinds.CategoryStatement
	case native.ClassAttribute:
		return k.Category() == kinds.CategoryAttribute
	case native.ClassInvalid:
		return k.Category() == kinds.CategoryInvalid
	case native.ClassTranslationUnit:
		return k == kinds.CursorTranslationUnit
	case native.ClassPreprocessing:
		return k.Category() == kinds.CategoryPreprocessing
	case native.ClassUnexposed:
		return k.IsUnexposed()
	}
	return false
}

func (l *Lib) CursorFlag(c native.Cursor, f native.CursorFlag) bool {
	u, id := l.node(c)
	if f == native.FlagNull {
		return u == nil || id == 0
	}
	if id == 0 {
		return false
	}
	n := &u.nodes[id]
	switch f {
	case native.FlagDefinition:
		return isDecl(n.kind) && n.def
	case native.FlagBitField:
		return n.kind == kinds.CursorFieldDecl && n.bitWidth >= 0
	case native.FlagVariadic:
		return n.kind == kinds.CursorFunctionDecl && n.variadic
	case native.FlagAnonymousRecord:
		l.require(libver.FeatureAnonymousRecord)
		return n.kind.IsRecord() && n.anon
	}
	return false
}

func (l *Lib) CursorLocation(c native.Cursor) native.SourceLocation {
	u, id := l.node(c)
	if id <= 1 {
		return native.SourceLocation{}
	}
	n := &u.nodes[id]
	return l.loc(u, n.file, n.loc)
}

func (l *Lib) CursorExtent(c native.Cursor) native.SourceRange {
	u, id := l.node(c)
	if id == 0 {
		return native.SourceRange{}
	}
	n := &u.nodes[id]
	return l.span(u, n.file, n.begin, n.end)
}

func (l *Lib) CursorSpelling(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 {
		return ""
	}
	return u.nodes[id].name
}

func (l *Lib) CursorDisplayName(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 {
		return ""
	}
	n := &u.nodes[id]
	if n.kind != kinds.CursorFunctionDecl {
		return n.name
	}
	ft := u.types[n.typ]
	var parts []string
	for _, a := range ft.args {
		parts = append(parts, u.types[a].spelling)
	}
	if ft.variadic {
		parts = append(parts, "...")
	}
	return n.name + "(" + strings.Join(parts, ", ") + ")"
}

// usr builds a unified symbol resolution string in the shape clang uses for
// C entities.
func (u *unit) usr(id int) string {
	if id <= 1 || id >= len(u.nodes) {
		return ""
	}
	n := &u.nodes[id]
	base := filepath.Base(u.files[n.file].path)
	local := func() string {
		fn := u.enclosingFunction(id)
		if fn == 0 {
			return fmt.Sprintf("c:%s@%d", base, n.loc)
		}
		return fmt.Sprintf("c:%s@%d@F@%s", base, n.loc, u.nodes[fn].name)
	}
	switch n.kind {
	case kinds.CursorStructDecl, kinds.CursorUnionDecl, kinds.CursorEnumDecl:
		tag := map[kinds.CursorKind]string{kinds.CursorStructDecl: "S", kinds.CursorUnionDecl: "U", kinds.CursorEnumDecl: "E"}[n.kind]
		if n.name == "" {
			return fmt.Sprintf("c:%s@%s@%d", base, tag, n.loc)
		}
		return "c:@" + tag + "@" + n.name
	case kinds.CursorFieldDecl:
		return u.usr(n.parent) + "@FI@" + n.name
	case kinds.CursorEnumConstantDecl:
		return u.usr(n.parent) + "@" + n.name
	case kinds.CursorFunctionDecl:
		if u.isStatic(id) {
			return "c:" + base + "@F@" + n.name
		}
		return "c:@F@" + n.name
	case kinds.CursorVarDecl:
		if u.enclosingFunction(id) != 0 {
			return local() + "@" + n.name
		}
		if u.isStatic(id) {
			return "c:" + base + "@" + n.name
		}
		return "c:@" + n.name
	case kinds.CursorParmDecl:
		return local() + "@" + n.name
	case kinds.CursorTypedefDecl:
		return "c:" + base + "@T@" + n.name
	case kinds.CursorMacroDefinition:
		return fmt.Sprintf("c:%s@%d@macro@%s", base, n.loc, n.name)
	}
	return ""
}

// isStatic reports whether any redeclaration of id is static.
func (u *unit) isStatic(id int) bool {
	canon := u.canonical(id)
	for i := range u.nodes {
		if (i == canon || u.nodes[i].canon == canon) && u.nodes[i].static {
			return true
		}
	}
	return false
}

func (u *unit) enclosingFunction(id int) int {
	for p := u.nodes[id].parent; p > 1; p = u.nodes[p].parent {
		if u.nodes[p].kind == kinds.CursorFunctionDecl {
			return p
		}
	}
	return 0
}

func (l *Lib) CursorUSR(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 {
		return ""
	}
	if t := u.target(id); t != 0 {
		return u.usr(u.canonical(t))
	}
	return ""
}

func (l *Lib) CursorMangling(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 {
		return ""
	}
	n := &u.nodes[id]
	switch {
	case n.kind == kinds.CursorFunctionDecl:
		return n.name
	case n.kind == kinds.CursorVarDecl && u.enclosingFunction(id) == 0:
		return n.name
	}
	return ""
}

func (l *Lib) typ(u *unit, id int) native.Type {
	if u == nil {
		return native.Type{}
	}
	if id < 0 || id >= len(u.types) {
		id = 0
	}
	return native.Type{Kind: int32(u.types[id].kind), Data: [2]uintptr{uintptr(id), uintptr(u.handle)}}
}

func (u *unit) cursorType(id int) int {
	n := &u.nodes[id]
	switch {
	case n.kind == kinds.CursorTypedefDecl:
		return u.typedefType(id)
	case n.kind.IsRecord() || n.kind == kinds.CursorEnumDecl:
		return u.recordType(id)
	case n.kind == kinds.CursorTypeRef:
		if n.ref == 0 {
			return 0
		}
		if u.nodes[n.ref].kind == kinds.CursorTypedefDecl {
			return u.typedefType(n.ref)
		}
		return u.recordType(n.ref)
	case n.kind == kinds.CursorEnumConstantDecl && n.typ == 0:
		return u.intType()
	case n.kind.Category() == kinds.CategoryStatement, n.kind == kinds.CursorTranslationUnit,
		n.kind.Category() == kinds.CategoryPreprocessing:
		return 0
	}
	return n.typ
}

func (l *Lib) CursorType(c native.Cursor) native.Type {
	u, id := l.node(c)
	if id == 0 {
		return l.typ(u, 0)
	}
	return l.typ(u, u.cursorType(id))
}

func (l *Lib) CursorResultType(c native.Cursor) native.Type {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorFunctionDecl {
		return l.typ(u, 0)
	}
	return l.typ(u, u.types[u.nodes[id].typ].inner)
}

func (l *Lib) TypedefDeclUnderlyingType(c native.Cursor) native.Type {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorTypedefDecl {
		return l.typ(u, 0)
	}
	return l.typ(u, u.nodes[id].typ)
}

func (l *Lib) EnumDeclIntegerType(c native.Cursor) native.Type {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorEnumDecl {
		return l.typ(u, 0)
	}
	if def := u.definition(id); def != 0 {
		id = def
	}
	return l.typ(u, u.nodes[id].under)
}

func (l *Lib) EnumConstantDeclValue(c native.Cursor) int64 {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorEnumConstantDecl {
		return math.MinInt64
	}
	return u.nodes[id].value
}

func (l *Lib) EnumConstantDeclUnsignedValue(c native.Cursor) uint64 {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorEnumConstantDecl {
		return math.MaxUint64
	}
	return uint64(u.nodes[id].value)
}

func (l *Lib) FieldDeclBitWidth(c native.Cursor) int32 {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorFieldDecl {
		return -1
	}
	return u.nodes[id].bitWidth
}

func (l *Lib) OffsetOfField(c native.Cursor) int64 {
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorFieldDecl {
		return layoutInvalid
	}
	size, _, offsets := u.recordLayout(u.nodes[id].parent)
	if size < 0 {
		return size
	}
	return offsets[id]
}

func (l *Lib) CursorNumArguments(c native.Cursor) int32 {
	u, id := l.node(c)
	if id == 0 {
		return -1
	}
	n := &u.nodes[id]
	switch n.kind {
	case kinds.CursorFunctionDecl:
		return int32(len(n.params))
	case kinds.CursorCallExpr:
		return int32(len(n.children) - 1)
	}
	return -1
}

func (l *Lib) CursorArgument(c native.Cursor, i int) native.Cursor {
	u, id := l.node(c)
	if id == 0 || i < 0 {
		return l.NullCursor()
	}
	n := &u.nodes[id]
	switch {
	case n.kind == kinds.CursorFunctionDecl && i < len(n.params):
		return l.cursor(u, n.params[i])
	case n.kind == kinds.CursorCallExpr && i+1 < len(n.children):
		return l.cursor(u, n.children[i+1])
	}
	return l.NullCursor()
}

func (l *Lib) NumOverloadedDecls(c native.Cursor) int { return 0 }

func (l *Lib) OverloadedDecl(c native.Cursor, i int) native.Cursor { return l.NullCursor() }

func (l *Lib) OverriddenCursors(c native.Cursor) []native.Cursor { return nil }

func (l *Lib) SemanticParent(c native.Cursor) native.Cursor {
	u, id := l.node(c)
	if id <= 1 || !isDecl(u.nodes[id].kind) {
		return l.NullCursor()
	}
	for p := u.nodes[id].parent; p != 0; p = u.nodes[p].parent {
		k := u.nodes[p].kind
		if k == kinds.CursorTranslationUnit || k == kinds.CursorFunctionDecl || k.IsRecord() || k == kinds.CursorEnumDecl {
			return l.cursor(u, p)
		}
	}
	return l.NullCursor()
}

func (l *Lib) LexicalParent(c native.Cursor) native.Cursor { return l.SemanticParent(c) }

func (l *Lib) Referenced(c native.Cursor) native.Cursor {
	u, id := l.node(c)
	if id == 0 {
		return l.NullCursor()
	}
	return l.cursor(u, u.target(id))
}

func (l *Lib) Definition(c native.Cursor) native.Cursor {
	u, id := l.node(c)
	if id == 0 {
		return l.NullCursor()
	}
	t := u.target(id)
	if t == 0 {
		return l.NullCursor()
	}
	return l.marked(u, u.definition(t))
}

func (l *Lib) CanonicalCursor(c native.Cursor) native.Cursor {
	u, id := l.node(c)
	if id == 0 {
		return c
	}
	if !isDecl(u.nodes[id].kind) {
		return c
	}
	return l.marked(u, u.canonical(id))
}

func (l *Lib) SpecializedCursorTemplate(c native.Cursor) native.Cursor { return l.NullCursor() }

func (l *Lib) TemplateCursorKind(c native.Cursor) int32 { return int32(kinds.CursorNoDeclFound) }

func (l *Lib) CursorLinkage(c native.Cursor) int32 {
	u, id := l.node(c)
	if id <= 1 {
		return int32(kinds.LinkageInvalid)
	}
	n := &u.nodes[id]
	switch {
	case n.kind == kinds.CursorFunctionDecl, n.kind == kinds.CursorVarDecl && u.enclosingFunction(id) == 0:
		if u.isStatic(id) {
			return int32(kinds.LinkageInternal)
		}
		return int32(kinds.LinkageExternal)
	case n.kind.IsRecord(), n.kind == kinds.CursorEnumDecl:
		if n.name == "" {
			return int32(kinds.LinkageNone)
		}
		return int32(kinds.LinkageExternal)
	case isDecl(n.kind):
		return int32(kinds.LinkageNone)
	}
	return int32(kinds.LinkageInvalid)
}

// attrs merges the availability attributes of every redeclaration of id.
func (u *unit) attrs(id int) availability {
	canon := u.canonical(id)
	var a availability
	for i := range u.nodes {
		if i != canon && u.nodes[i].canon != canon {
			continue
		}
		b := u.nodes[i].attrs
		if b.deprecated {
			a.deprecated, a.depMsg = true, b.depMsg
		}
		if b.unavailable {
			a.unavailable, a.unavailMsg = true, b.unavailMsg
		}
		a.platforms = append(a.platforms, b.platforms...)
	}
	return a
}

func (l *Lib) CursorAvailability(c native.Cursor) int32 {
	u, id := l.node(c)
	if id == 0 {
		return int32(kinds.AvailabilityAvailable)
	}
	t := u.target(id)
	if t == 0 {
		return int32(kinds.AvailabilityAvailable)
	}
	a := u.attrs(t)
	switch {
	case a.unavailable:
		return int32(kinds.AvailabilityNotAvailable)
	case a.deprecated:
		return int32(kinds.AvailabilityDeprecated)
	}
	return int32(kinds.AvailabilityAvailable)
}

func (l *Lib) CursorLanguage(c native.Cursor) int32 {
	u, id := l.node(c)
	if id <= 1 || !isDecl(u.nodes[id].kind) {
		return int32(kinds.LanguageInvalid)
	}
	return int32(kinds.LanguageC)
}

func (l *Lib) CXXAccessSpecifier(c native.Cursor) int32 { return int32(kinds.AccessInvalid) }

func (l *Lib) IncludedFile(c native.Cursor) native.Handle {
	u, id := l.node(c)
	if id == 0 {
		return 0
	}
	n := &u.nodes[id]
	if n.kind != kinds.CursorInclusionDirective || n.include < 0 {
		return 0
	}
	return u.files[n.include].handle
}

// documented returns the redeclaration of id that carries a comment.
func (u *unit) documented(id int) int {
	for _, cand := range []int{id, u.canonical(id), u.definition(id)} {
		if cand != 0 && u.nodes[cand].comment != 0 {
			return cand
		}
	}
	return 0
}

func (l *Lib) RawCommentText(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 || !isDecl(u.nodes[id].kind) {
		return ""
	}
	return u.nodes[u.documented(id)].raw
}

func (l *Lib) BriefCommentText(c native.Cursor) string {
	u, id := l.node(c)
	if id == 0 || !isDecl(u.nodes[id].kind) {
		return ""
	}
	d := u.documented(id)
	if d == 0 {
		return ""
	}
	return u.brief(u.nodes[d].comment)
}

func (l *Lib) ParsedComment(c native.Cursor) native.Comment {
	u, id := l.node(c)
	if id == 0 || !isDecl(u.nodes[id].kind) {
		return native.Comment{}
	}
	d := u.documented(id)
	if d == 0 {
		return native.Comment{}
	}
	return native.Comment{ASTNode: uintptr(u.nodes[d].comment), TU: uintptr(u.handle)}
}

func (l *Lib) CursorPlatformAvailability(c native.Cursor) (native.AvailabilityHeader, native.Handle, int) {
	u, id := l.node(c)
	if id == 0 || !isDecl(u.nodes[id].kind) {
		return native.AvailabilityHeader{}, 0, 0
	}
	a := u.attrs(id)
	hdr := native.AvailabilityHeader{
		AlwaysDeprecated:   a.deprecated,
		DeprecatedMessage:  a.depMsg,
		AlwaysUnavailable:  a.unavailable,
		UnavailableMessage: a.unavailMsg,
	}
	if len(a.platforms) == 0 {
		return hdr, 0, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.avail[h] = &availBuf{entries: append([]native.PlatformAvailability(nil), a.platforms...)}
	return hdr, h, len(a.platforms)
}

func (l *Lib) PlatformAvailabilityAt(buf native.Handle, i int) native.PlatformAvailability {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.avail[buf]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released availability buffer %#x", buf))
	}
	return b.entries[i]
}

func (l *Lib) DisposePlatformAvailability(buf native.Handle, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.avail[buf]
	if !ok {
		l.violate("availability buffer %#x released twice or never created", buf)
		return
	}
	if n != len(b.entries) {
		l.violate("availability buffer %#x released with count %d, want %d", buf, n, len(b.entries))
	}
	delete(l.avail, buf)
	l.disposed[KindAvailability]++
}

func (l *Lib) VisitChildren(c native.Cursor, fn native.VisitFunc) uint32 {
	u, id := l.node(c)
	if id == 0 {
		return 0
	}
	broken := false
	native.Frames.With(fn, func(token uintptr) {
		visit := native.Frames.Lookup(token).(native.VisitFunc)
		broken = !l.walk(u, id, visit)
	})
	if broken {
		return 1
	}
	return 0
}

// walk visits the children of id and reports false when the visitor broke
// off the traversal.
func (l *Lib) walk(u *unit, id int, fn native.VisitFunc) bool {
	parent := l.cursor(u, id)
	for _, ch := range u.nodes[id].children {
		switch kinds.ChildVisitResult(fn(l.cursor(u, ch), parent)) {
		case kinds.ChildVisitBreak:
			return false
		case kinds.ChildVisitRecurse:
			if !l.walk(u, ch, fn) {
				return false
			}
		}
	}
	return true
}

type refHit struct {
	id         int
	begin, end uint32
}

func (l *Lib) FindReferencesInFile(c native.Cursor, file native.Handle, fn native.RefVisitFunc) int32 {
	u, id := l.node(c)
	if id <= 1 {
		return int32(kinds.ResultInvalid)
	}
	fi := u.fileByHandle(file)
	t := u.target(id)
	if fi < 0 || t == 0 {
		return int32(kinds.ResultInvalid)
	}
	want := u.canonical(t)

	var hits []refHit
	var collect func(id int)
	collect = func(id int) {
		for _, ch := range u.nodes[id].children {
			n := &u.nodes[ch]
			if n.file == fi {
				switch {
				case isDecl(n.kind) && n.name != "" && u.canonical(ch) == want:
					hits = append(hits, refHit{ch, n.loc, n.loc + uint32(len(n.name))})
				case n.kind == kinds.CursorDeclRefExpr && n.ref != 0 && u.canonical(n.ref) == want:
					hits = append(hits, refHit{ch, n.begin, n.end})
				case n.kind == kinds.CursorMemberRefExpr && n.ref != 0 && u.canonical(n.ref) == want:
					hits = append(hits, refHit{ch, n.loc, n.end})
				case n.kind == kinds.CursorTypeRef && n.ref != 0 && u.canonical(n.ref) == want:
					hits = append(hits, refHit{ch, n.begin, n.end})
				}
			}
			collect(ch)
		}
	}
	collect(1)
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].begin < hits[j].begin })

	result := kinds.ResultSuccess
	native.Frames.With(fn, func(token uintptr) {
		visit := native.Frames.Lookup(token).(native.RefVisitFunc)
		for _, h := range hits {
			if kinds.VisitorResult(visit(l.cursor(u, h.id), l.span(u, fi, h.begin, h.end))) == kinds.VisitorBreak {
				result = kinds.ResultVisitBreak
				return
			}
		}
	})
	return int32(result)
}

func (l *Lib) VarDeclInitializer(c native.Cursor) native.Cursor {
	l.require(libver.FeatureVarDeclInitializer)
	u, id := l.node(c)
	if id == 0 || u.nodes[id].kind != kinds.CursorVarDecl {
		return l.NullCursor()
	}
	return l.cursor(u, u.nodes[id].init)
}

var policyDefaults = map[kinds.PolicyProperty]uint32{
	kinds.PolicyIndentation:           2,
	kinds.PolicyRestrict:              1,
	kinds.PolicyUnderscoreAlignof:     1,
	kinds.PolicyUseVoidForZeroParams:  1,
	kinds.PolicyAnonymousTagLocations: 1,
	kinds.PolicyIncludeNewlines:       1,
}

func (l *Lib) CursorPrintingPolicy(c native.Cursor) native.Handle {
	l.require(libver.FeaturePrintingPolicy)
	l.mu.Lock()
	defer l.mu.Unlock()
	p := &policy{}
	for k, v := range policyDefaults {
		p.props[k] = v
	}
	h := l.alloc()
	l.policies[h] = p
	return h
}

func (l *Lib) lookupPolicy(h native.Handle) *policy {
	p, ok := l.policies[h]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released printing policy %#x", h))
	}
	return p
}

func (l *Lib) DisposePrintingPolicy(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.policies[h]; !ok {
		l.violate("printing policy %#x released twice or never created", h)
		return
	}
	delete(l.policies, h)
	l.disposed[KindPolicy]++
}

func (l *Lib) PrintingPolicyProperty(h native.Handle, prop int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prop < 0 || prop > int32(kinds.PolicyLastProperty) {
		return 0
	}
	return l.lookupPolicy(h).props[prop]
}

func (l *Lib) SetPrintingPolicyProperty(h native.Handle, prop int32, v uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prop < 0 || prop > int32(kinds.PolicyLastProperty) {
		return
	}
	l.lookupPolicy(h).props[prop] = v
}

func (l *Lib) CursorPrettyPrinted(c native.Cursor, h native.Handle) string {
	l.mu.Lock()
	p := *l.lookupPolicy(h)
	l.mu.Unlock()
	u, id := l.node(c)
	if id <= 1 {
		return ""
	}
	n := &u.nodes[id]
	text := string(u.files[n.file].content[n.begin:n.end])
	if p.props[kinds.PolicyTerseOutput] != 0 {
		switch {
		case n.kind == kinds.CursorFunctionDecl:
			for _, ch := range n.children {
				if u.nodes[ch].kind == kinds.CursorCompoundStmt {
					text = strings.TrimRight(string(u.files[n.file].content[n.begin:u.nodes[ch].begin]), " \t\n")
				}
			}
		case (n.kind.IsRecord() || n.kind == kinds.CursorEnumDecl) && n.def:
			text = tagSpelling(n) + " {}"
		}
	}
	if p.props[kinds.PolicyIncludeNewlines] == 0 {
		text = strings.Join(strings.Fields(text), " ")
	}
	return text
}
