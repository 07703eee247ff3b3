package fakeclang

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

type chunk struct {
	kind   kinds.ChunkKind
	text   string
	nested native.Handle
}

type completionString struct {
	chunks   []chunk
	priority uint32
	avail    kinds.Availability
	brief    string
}

func (cs *completionString) typedText() string {
	for _, c := range cs.chunks {
		if c.kind == kinds.ChunkTypedText {
			return c.text
		}
	}
	return ""
}

type completionItem struct {
	kind kinds.CursorKind
	str  native.Handle
}

type completion struct {
	items    []completionItem
	strs     []native.Handle
	contexts kinds.CompletionContext
}

// Priorities as assigned by clang's code completion.
const (
	priorityLocal    = 34
	priorityDecl     = 50
	priorityConstant = 65
	priorityMacro    = 70
)

// buildString describes the declaration id as a completion string.
func (u *unit) buildString(id int, withBrief bool) *completionString {
	n := &u.nodes[id]
	cs := &completionString{priority: priorityDecl}
	switch n.kind {
	case kinds.CursorFunctionDecl:
		ft := u.types[n.typ]
		cs.chunks = append(cs.chunks,
			chunk{kind: kinds.ChunkResultType, text: u.types[ft.inner].spelling},
			chunk{kind: kinds.ChunkTypedText, text: n.name},
			chunk{kind: kinds.ChunkLeftParen, text: "("})
		for i, prm := range n.params {
			if i > 0 {
				cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkComma, text: ", "})
			}
			p := &u.nodes[prm]
			text := u.types[p.typ].spelling
			if p.name != "" {
				text += " " + p.name
			}
			cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkPlaceholder, text: text})
		}
		if n.variadic {
			if len(n.params) > 0 {
				cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkComma, text: ", "})
			}
			cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkPlaceholder, text: "..."})
		}
		cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkRightParen, text: ")"})
	case kinds.CursorVarDecl, kinds.CursorParmDecl, kinds.CursorFieldDecl, kinds.CursorEnumConstantDecl:
		cs.chunks = append(cs.chunks,
			chunk{kind: kinds.ChunkResultType, text: u.types[u.cursorType(id)].spelling},
			chunk{kind: kinds.ChunkTypedText, text: n.name})
		if n.kind == kinds.CursorEnumConstantDecl {
			cs.priority = priorityConstant
		} else if u.enclosingFunction(id) != 0 {
			cs.priority = priorityLocal
		}
	case kinds.CursorMacroDefinition:
		cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkTypedText, text: n.name})
		cs.priority = priorityMacro
	default:
		cs.chunks = append(cs.chunks, chunk{kind: kinds.ChunkTypedText, text: n.name})
	}
	a := u.attrs(id)
	switch {
	case a.unavailable:
		cs.avail = kinds.AvailabilityNotAvailable
	case a.deprecated:
		cs.avail = kinds.AvailabilityDeprecated
	}
	if withBrief {
		if d := u.documented(id); d != 0 {
			cs.brief = u.brief(u.nodes[d].comment)
		}
	}
	return cs
}

// visibleAt lists the declarations visible at off in file fi: file scope
// entities, enumerators and, inside a function body, the parameters and
// locals declared before off.
func (u *unit) visibleAt(fi int, off uint32) ([]int, bool) {
	at := u.innermost(fi, off)
	inBody := false
	fn := 0
	for p := at; p > 1; p = u.nodes[p].parent {
		switch u.nodes[p].kind {
		case kinds.CursorCompoundStmt:
			inBody = true
		case kinds.CursorFunctionDecl:
			if fn == 0 {
				fn = p
			}
		}
	}
	seen := make(map[int]bool)
	var out []int
	add := func(id int) {
		n := &u.nodes[id]
		if n.name == "" || !isDecl(n.kind) && n.kind != kinds.CursorMacroDefinition {
			return
		}
		c := u.canonical(id)
		if seen[c] {
			return
		}
		seen[c] = true
		out = append(out, id)
	}
	var walk func(id int)
	walk = func(id int) {
		for _, ch := range u.nodes[id].children {
			n := &u.nodes[ch]
			switch {
			case n.kind == kinds.CursorEnumDecl:
				add(ch)
				for _, e := range n.children {
					add(e)
				}
			case n.kind == kinds.CursorMacroDefinition:
			case isDecl(n.kind):
				add(ch)
			}
		}
	}
	walk(1)
	if inBody && fn != 0 {
		var locals func(id int)
		locals = func(id int) {
			for _, ch := range u.nodes[id].children {
				n := &u.nodes[ch]
				if n.file == fi && n.begin >= off {
					continue
				}
				if n.kind == kinds.CursorParmDecl || n.kind == kinds.CursorVarDecl {
					add(ch)
				}
				locals(ch)
			}
		}
		locals(fn)
	}
	return out, inBody
}

func (l *Lib) CodeCompleteAt(tu native.Handle, path string, line, column uint32, unsaved []native.UnsavedFile, opts uint32) native.Handle {
	u := l.unit(tu)
	fi := u.fileByName(path)
	if fi < 0 {
		return 0
	}
	off, ok := u.files[fi].offset(line, column)
	if !ok {
		return 0
	}
	flags := kinds.CompleteFlags(opts)
	decls, inBody := u.visibleAt(fi, off)

	res := &completion{contexts: kinds.ContextAnyType | kinds.ContextEnumTag | kinds.ContextUnionTag | kinds.ContextStructTag | kinds.ContextMacroName}
	if inBody {
		res.contexts |= kinds.ContextAnyValue
	}
	var strs []*completionString
	var kindsOf []kinds.CursorKind
	for _, id := range decls {
		strs = append(strs, u.buildString(id, flags&kinds.CompleteIncludeBriefComments != 0))
		kindsOf = append(kindsOf, u.nodes[id].kind)
	}
	if flags&kinds.CompleteIncludeMacros != 0 {
		for _, m := range u.macros {
			strs = append(strs, &completionString{
				chunks:   []chunk{{kind: kinds.ChunkTypedText, text: m}},
				priority: priorityMacro,
			})
			kindsOf = append(kindsOf, kinds.CursorMacroDefinition)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cs := range strs {
		h := l.alloc()
		l.strs[h] = cs
		res.strs = append(res.strs, h)
		res.items = append(res.items, completionItem{kind: kindsOf[i], str: h})
	}
	h := l.alloc()
	l.results[h] = res
	return h
}

func (l *Lib) DefaultCodeCompleteOptions() uint32 { return uint32(kinds.CompleteIncludeMacros) }

func (l *Lib) DisposeCodeCompleteResults(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res, ok := l.results[h]
	if !ok {
		l.violate("completion results %#x released twice or never created", h)
		return
	}
	for _, s := range res.strs {
		delete(l.strs, s)
	}
	delete(l.results, h)
	l.disposed[KindCompletion]++
}

func (l *Lib) result(h native.Handle) *completion {
	res, ok := l.results[h]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released completion results %#x", h))
	}
	return res
}

func (l *Lib) NumCompletionResults(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.result(h).items)
}

func (l *Lib) CompletionResult(h native.Handle, i int) (int32, native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it := l.result(h).items[i]
	return l.reg.NativeCursor(it.kind), it.str
}

func (l *Lib) SortCodeCompletionResults(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := l.result(h)
	sort.SliceStable(res.items, func(i, j int) bool {
		a := strings.ToLower(l.strs[res.items[i].str].typedText())
		b := strings.ToLower(l.strs[res.items[j].str].typedText())
		return a < b
	})
}

func (l *Lib) CodeCompleteNumDiagnostics(h native.Handle) int { return 0 }

func (l *Lib) CodeCompleteDiagnostic(h native.Handle, i int) native.Handle { return 0 }

func (l *Lib) CodeCompleteContexts(h native.Handle) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(l.result(h).contexts)
}

func (l *Lib) CodeCompleteContainerKind(h native.Handle) (int32, bool) {
	return int32(kinds.CursorInvalidCode), false
}

func (l *Lib) CodeCompleteContainerUSR(h native.Handle) string { return "" }
func (l *Lib) CodeCompleteObjCSelector(h native.Handle) string { return "" }

func (l *Lib) str(h native.Handle) *completionString {
	l.mu.Lock()
	defer l.mu.Unlock()
	cs, ok := l.strs[h]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released completion string %#x", h))
	}
	return cs
}

func (l *Lib) CompletionNumChunks(h native.Handle) int { return len(l.str(h).chunks) }

func (l *Lib) CompletionChunkKind(h native.Handle, i int) int32 {
	return int32(l.str(h).chunks[i].kind)
}

func (l *Lib) CompletionChunkText(h native.Handle, i int) string { return l.str(h).chunks[i].text }

func (l *Lib) CompletionChunkCompletionString(h native.Handle, i int) native.Handle {
	return l.str(h).chunks[i].nested
}

func (l *Lib) CompletionPriority(h native.Handle) uint32          { return l.str(h).priority }
func (l *Lib) CompletionAvailability(h native.Handle) int32       { return int32(l.str(h).avail) }
func (l *Lib) CompletionNumAnnotations(h native.Handle) int       { return 0 }
func (l *Lib) CompletionAnnotation(h native.Handle, i int) string { return "" }
func (l *Lib) CompletionParent(h native.Handle) string            { return "" }
func (l *Lib) CompletionBriefComment(h native.Handle) string      { return l.str(h).brief }

// CursorCompletionString returns a string owned by the library for the
// lifetime of the process.
func (l *Lib) CursorCompletionString(c native.Cursor) native.Handle {
	u, id := l.node(c)
	if id <= 1 || !isDecl(u.nodes[id].kind) && u.nodes[id].kind != kinds.CursorMacroDefinition {
		return 0
	}
	cs := u.buildString(id, false)
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.strs[h] = cs
	return h
}

type jsonCommand struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
}

// loadDatabase reads dir/compile_commands.json.
func loadDatabase(dir string) ([]Command, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "compile_commands.json"))
	if err != nil {
		return nil, false
	}
	var raw []jsonCommand
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	out := make([]Command, 0, len(raw))
	for _, r := range raw {
		args := r.Arguments
		if len(args) == 0 {
			args = strings.Fields(r.Command)
		}
		file := r.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(r.Directory, file)
		}
		out = append(out, Command{Directory: r.Directory, Filename: file, Args: args})
	}
	return out, true
}

func (l *Lib) CompilationDatabaseFromDirectory(dir string) (native.Handle, int32) {
	l.mu.Lock()
	cmds, ok := l.dbs[dir]
	l.mu.Unlock()
	if !ok {
		cmds, ok = loadDatabase(dir)
	}
	if !ok {
		return 0, int32(kinds.CompilationDatabaseCanNotLoadDatabase)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.databases[h] = cmds
	return h, int32(kinds.CompilationDatabaseNoError)
}

func (l *Lib) DisposeCompilationDatabase(db native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.databases[db]; !ok {
		l.violate("compilation database %#x released twice or never created", db)
		return
	}
	delete(l.databases, db)
	l.disposed[KindDatabase]++
}

func (l *Lib) database(db native.Handle) []Command {
	cmds, ok := l.databases[db]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released compilation database %#x", db))
	}
	return cmds
}

// newCommandSet allocates a set for cmds; an empty set is a null handle, as in
// libclang. Callers hold l.mu.
func (l *Lib) newCommandSet(cmds []Command) native.Handle {
	if len(cmds) == 0 {
		return 0
	}
	set := &commandSet{}
	for i := range cmds {
		h := l.alloc()
		c := cmds[i]
		l.cmds[h] = &c
		set.cmds = append(set.cmds, h)
	}
	h := l.alloc()
	l.cmdSets[h] = set
	return h
}

func (l *Lib) CompileCommandsFor(db native.Handle, file string) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	var match []Command
	for _, c := range l.database(db) {
		if filepath.Clean(c.Filename) == filepath.Clean(file) {
			match = append(match, c)
		}
	}
	return l.newCommandSet(match)
}

func (l *Lib) AllCompileCommands(db native.Handle) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.newCommandSet(l.database(db))
}

func (l *Lib) DisposeCompileCommands(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.cmdSets[h]
	if !ok {
		l.violate("compile commands %#x released twice or never created", h)
		return
	}
	for _, c := range set.cmds {
		delete(l.cmds, c)
	}
	delete(l.cmdSets, h)
	l.disposed[KindCommands]++
}

func (l *Lib) NumCompileCommands(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.cmdSets[h]
	if !ok {
		return 0
	}
	return len(set.cmds)
}

func (l *Lib) CompileCommand(h native.Handle, i int) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.cmdSets[h]
	if !ok || i < 0 || i >= len(set.cmds) {
		return 0
	}
	return set.cmds[i]
}

func (l *Lib) command(h native.Handle) *Command {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.cmds[h]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released compile command %#x", h))
	}
	return c
}

func (l *Lib) CompileCommandDirectory(h native.Handle) string { return l.command(h).Directory }

func (l *Lib) CompileCommandFilename(h native.Handle) string {
	l.require(libver.FeatureCompileCommandFilename)
	return l.command(h).Filename
}

func (l *Lib) CompileCommandNumArgs(h native.Handle) int { return len(l.command(h).Args) }

func (l *Lib) CompileCommandArg(h native.Handle, i int) string { return l.command(h).Args[i] }
