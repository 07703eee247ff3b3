// Package fakeclang is an in-memory implementation of native.Library. It
// parses a small C subset well enough to exercise every path of the binding
// without a real libclang: cursors, types, comments, diagnostics, tokens,
// completion and compilation databases all come from the same model.
//
// Lib also counts every native release so tests can check that each handle
// is freed exactly once and in the right order.
package fakeclang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// Resource kinds reported by Disposed.
const (
	KindIndex        = "index"
	KindUnit         = "translation-unit"
	KindDiagnostic   = "diagnostic"
	KindTokens       = "tokens"
	KindCompletion   = "completion"
	KindDatabase     = "compilation-database"
	KindCommands     = "compile-commands"
	KindPolicy       = "printing-policy"
	KindAvailability = "platform-availability"
)

// SystemDir is where AddSystemHeader places headers.
const SystemDir = "/usr/include"

// Command is one compilation database entry.
type Command struct {
	Directory string
	Filename  string
	Args      []string
}

type index struct {
	opts uint32
}

type diagRef struct {
	u     *unit
	d     *diagnostic
	owned bool
}

type tokenBuf struct {
	tu   native.Handle
	toks []native.Token
}

type commandSet struct {
	cmds []native.Handle
}

type policy struct {
	props [kinds.PolicyLastProperty + 1]uint32
}

type availBuf struct {
	entries []native.PlatformAvailability
}

type fileRef struct {
	tu native.Handle
	fi int
}

var _ native.Library = (*Lib)(nil)

// Lib is the fake library. The zero value is not usable; call New.
type Lib struct {
	raw        string
	caps       libver.Capabilities
	reg        *kinds.Registry
	elaborated bool

	mu      sync.Mutex
	next    native.Handle
	sources map[string][]byte
	sysDirs []string
	dbs     map[string][]Command

	indexes   map[native.Handle]*index
	units     map[native.Handle]*unit
	handles   map[native.Handle]map[string]native.Handle
	files     map[native.Handle]fileRef
	diags     map[native.Handle]*diagRef
	sets      map[native.Handle][]native.Handle
	setOf     map[*diagnostic]native.Handle
	tokens    map[native.Handle]*tokenBuf
	results   map[native.Handle]*completion
	strs      map[native.Handle]*completionString
	databases map[native.Handle][]Command
	cmdSets   map[native.Handle]*commandSet
	cmds      map[native.Handle]*Command
	policies  map[native.Handle]*policy
	avail     map[native.Handle]*availBuf

	disposed   map[string]int
	violations []string
}

// New returns a library reporting the given version. A bare version number
// such as "17.0.6" is reported as "clang version 17.0.6"; anything else is
// reported verbatim, so unparsable strings can be tested too.
func New(version string) *Lib {
	raw := version
	if version != "" && version[0] >= '0' && version[0] <= '9' {
		raw = "clang version " + version
	}
	l := &Lib{
		raw:       raw,
		next:      0x1000,
		sources:   make(map[string][]byte),
		sysDirs:   []string{SystemDir},
		dbs:       make(map[string][]Command),
		indexes:   make(map[native.Handle]*index),
		units:     make(map[native.Handle]*unit),
		handles:   make(map[native.Handle]map[string]native.Handle),
		files:     make(map[native.Handle]fileRef),
		diags:     make(map[native.Handle]*diagRef),
		sets:      make(map[native.Handle][]native.Handle),
		setOf:     make(map[*diagnostic]native.Handle),
		tokens:    make(map[native.Handle]*tokenBuf),
		results:   make(map[native.Handle]*completion),
		strs:      make(map[native.Handle]*completionString),
		databases: make(map[native.Handle][]Command),
		cmdSets:   make(map[native.Handle]*commandSet),
		cmds:      make(map[native.Handle]*Command),
		policies:  make(map[native.Handle]*policy),
		avail:     make(map[native.Handle]*availBuf),
		disposed:  make(map[string]int),
	}
	if v, err := libver.Parse(raw); err == nil {
		l.caps = libver.For(v)
	} else {
		l.caps = libver.For(libver.Version{Major: 3})
	}
	l.reg = kinds.NewRegistry(l.caps)
	l.elaborated = l.caps.Version.AtLeast(16, 0)
	return l
}

// Capabilities returns the capability table matching the reported version.
func (l *Lib) Capabilities() libver.Capabilities { return l.caps }

// AddFile registers an in-memory source file.
func (l *Lib) AddFile(path, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[path] = []byte(content)
}

// AddSystemHeader registers a header under SystemDir.
func (l *Lib) AddSystemHeader(name, content string) {
	l.AddFile(filepath.Join(SystemDir, name), content)
}

// AddCompilationDatabase registers the commands returned for dir.
func (l *Lib) AddCompilationDatabase(dir string, cmds ...Command) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dbs[dir] = append(l.dbs[dir], cmds...)
}

// Disposed reports how many resources of kind were released.
func (l *Lib) Disposed(kind string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed[kind]
}

// Live reports the number of owned handles not yet released.
func (l *Lib) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.indexes) + len(l.units) + len(l.tokens) + len(l.results) +
		len(l.databases) + len(l.cmdSets) + len(l.policies) + len(l.avail)
	for _, d := range l.diags {
		if d.owned {
			n++
		}
	}
	return n
}

// Violations lists misuse observed so far: double releases, releases of
// unknown handles and out-of-order teardown.
func (l *Lib) Violations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.violations...)
}

func (l *Lib) violate(format string, args ...any) {
	l.violations = append(l.violations, fmt.Sprintf(format, args...))
}

// alloc returns a fresh handle. Callers hold l.mu.
func (l *Lib) alloc() native.Handle {
	l.next += 0x10
	return l.next
}

func (l *Lib) require(f libver.Feature) {
	if !l.caps.Has(f) {
		panic(fmt.Sprintf("fakeclang: %s called on clang %s", f, l.caps.Version))
	}
}

// read resolves a path against unsaved buffers, registered sources and
// finally the file system.
func (l *Lib) reader(unsaved []native.UnsavedFile, extra map[string][]byte) func(string) ([]byte, bool) {
	over := make(map[string][]byte, len(unsaved))
	for _, f := range unsaved {
		over[f.Filename] = f.Contents
	}
	return func(path string) ([]byte, bool) {
		if b, ok := over[path]; ok {
			return b, true
		}
		if b, ok := extra[path]; ok {
			return b, true
		}
		l.mu.Lock()
		b, ok := l.sources[path]
		l.mu.Unlock()
		if ok {
			return b, true
		}
		b, err := os.ReadFile(path)
		return b, err == nil
	}
}

func (l *Lib) Version() string { return l.raw }

func (l *Lib) CreateIndex(excludeDecls, displayDiagnostics bool) native.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.alloc()
	l.indexes[h] = &index{}
	return h
}

func (l *Lib) DisposeIndex(idx native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.indexes[idx]; !ok {
		l.violate("index %#x released twice or never created", idx)
		return
	}
	for _, u := range l.units {
		if u.index == idx {
			l.violate("index %#x released before translation unit %#x", idx, u.handle)
		}
	}
	delete(l.indexes, idx)
	l.disposed[KindIndex]++
}

func (l *Lib) SetGlobalOptions(idx native.Handle, opts uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mustIndex(idx).opts = opts
}

func (l *Lib) GlobalOptions(idx native.Handle) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mustIndex(idx).opts
}

func (l *Lib) mustIndex(idx native.Handle) *index {
	ix, ok := l.indexes[idx]
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released index %#x", idx))
	}
	return ix
}

// unit returns the live unit behind h. Use of a released unit is a crash in
// libclang, so it panics here.
func (l *Lib) unit(h native.Handle) *unit {
	l.mu.Lock()
	u, ok := l.units[h]
	l.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("fakeclang: use of released translation unit %#x", h))
	}
	return u
}

// build parses path into a fresh unit that reuses tu's file handles.
func (l *Lib) build(tu, idx native.Handle, path string, args []string, flags uint32, read func(string) ([]byte, bool)) (*unit, bool) {
	content, ok := read(path)
	if !ok {
		return nil, false
	}
	u := &unit{handle: tu, index: idx, path: path, args: append([]string(nil), args...), flags: flags}
	newHandle := func(p string) native.Handle {
		l.mu.Lock()
		defer l.mu.Unlock()
		m := l.handles[tu]
		if m == nil {
			m = make(map[string]native.Handle)
			l.handles[tu] = m
		}
		h, ok := m[p]
		if !ok {
			h = l.alloc()
			m[p] = h
		}
		return h
	}
	newBuilder(u, read, newHandle, l.elaborated, l.sysDirs).parseMain(content)
	return u, true
}

func (l *Lib) install(u *unit) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.units[u.handle] = u
	for fi, f := range u.files {
		l.files[f.handle] = fileRef{tu: u.handle, fi: fi}
	}
}

func (l *Lib) ParseTranslationUnit(idx native.Handle, path string, args []string, unsaved []native.UnsavedFile, flags uint32) (native.Handle, int32) {
	l.mu.Lock()
	l.mustIndex(idx)
	tu := l.alloc()
	l.mu.Unlock()
	if path == "" {
		for _, a := range args {
			if strings.HasSuffix(a, ".c") || strings.HasSuffix(a, ".h") {
				path = a
			}
		}
	}
	if path == "" {
		return 0, int32(kinds.ErrorInvalidArguments)
	}
	u, ok := l.build(tu, idx, path, args, flags, l.reader(unsaved, nil))
	if !ok {
		l.forget(tu)
		return 0, int32(kinds.ErrorFailure)
	}
	l.install(u)
	return tu, int32(kinds.ErrorSuccess)
}

func (l *Lib) forget(tu native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range l.handles[tu] {
		delete(l.files, h)
	}
	delete(l.handles, tu)
}

func (l *Lib) DisposeTranslationUnit(tu native.Handle) {
	l.mu.Lock()
	if _, ok := l.units[tu]; !ok {
		l.violate("translation unit %#x released twice or never created", tu)
		l.mu.Unlock()
		return
	}
	delete(l.units, tu)
	for h, d := range l.diags {
		if d.u.handle == tu && d.owned {
			l.violate("diagnostic %#x outlived translation unit %#x", h, tu)
		}
	}
	for h, b := range l.tokens {
		if b.tu == tu {
			l.violate("token buffer %#x outlived translation unit %#x", h, tu)
		}
	}
	l.disposed[KindUnit]++
	l.mu.Unlock()
	l.forget(tu)
}

func (l *Lib) TranslationUnitSpelling(tu native.Handle) string { return l.unit(tu).path }

func (l *Lib) TranslationUnitCursor(tu native.Handle) native.Cursor {
	return l.cursor(l.unit(tu), 1)
}

func (l *Lib) DefaultEditingOptions() uint32 {
	return uint32(kinds.ParsePrecompiledPreamble | kinds.ParseCacheCompletionResults)
}

func (l *Lib) DefaultSaveOptions(tu native.Handle) uint32    { return 0 }
func (l *Lib) DefaultReparseOptions(tu native.Handle) uint32 { return 0 }

func (l *Lib) ReparseTranslationUnit(tu native.Handle, unsaved []native.UnsavedFile, opts uint32) int32 {
	old := l.unit(tu)
	u, ok := l.build(tu, old.index, old.path, old.args, old.flags, l.reader(unsaved, nil))
	if !ok {
		return int32(kinds.ErrorFailure)
	}
	l.install(u)
	return 0
}

func (l *Lib) ResourceUsage(tu native.Handle) []native.ResourceUsageEntry {
	u := l.unit(tu)
	var content, idents uint64
	for _, f := range u.files {
		content += uint64(len(f.content))
		for _, t := range f.tokens {
			if t.kind == kinds.TokenIdentifier {
				idents += uint64(len(t.text))
			}
		}
	}
	return []native.ResourceUsageEntry{
		{Kind: int32(kinds.ResourceAST), Amount: uint64(len(u.nodes)) * 64},
		{Kind: int32(kinds.ResourceIdentifiers), Amount: idents},
		{Kind: int32(kinds.ResourceSourceManagerContentCache), Amount: content},
		{Kind: int32(kinds.ResourcePreprocessor), Amount: uint64(len(u.macros)) * 32},
	}
}

func (l *Lib) ResourceUsageName(kind int32) string {
	return kinds.ResourceUsageKind(kind).String()
}

func (l *Lib) GetFile(tu native.Handle, name string) native.Handle {
	u := l.unit(tu)
	if fi := u.fileByName(name); fi >= 0 {
		return u.files[fi].handle
	}
	if fi := u.fileByName(filepath.Clean(name)); fi >= 0 {
		return u.files[fi].handle
	}
	return 0
}

func (l *Lib) GetLocation(tu, file native.Handle, line, column uint32) native.SourceLocation {
	u := l.unit(tu)
	fi := u.fileByHandle(file)
	if fi < 0 {
		return native.SourceLocation{}
	}
	off, ok := u.files[fi].offset(line, column)
	if !ok {
		return native.SourceLocation{}
	}
	return l.loc(u, fi, off)
}

func (l *Lib) GetLocationForOffset(tu, file native.Handle, offset uint32) native.SourceLocation {
	u := l.unit(tu)
	fi := u.fileByHandle(file)
	if fi < 0 || int(offset) > len(u.files[fi].content) {
		return native.SourceLocation{}
	}
	return l.loc(u, fi, offset)
}

func (l *Lib) GetCursor(tu native.Handle, loc native.SourceLocation) native.Cursor {
	u := l.unit(tu)
	fi := u.fileByHandle(native.Handle(loc.Ptr[0]))
	if fi < 0 {
		return l.NullCursor()
	}
	return l.cursor(u, u.innermost(fi, loc.Int))
}

func (l *Lib) GetInclusions(tu native.Handle, fn native.InclusionFunc) {
	u := l.unit(tu)
	for _, inc := range u.inclusions {
		stack := make([]native.SourceLocation, len(inc.stack))
		for i, s := range inc.stack {
			stack[i] = l.loc(u, s.file, s.offset)
		}
		fn(u.files[inc.file].handle, stack)
	}
}

func (l *Lib) TargetInfo(tu native.Handle) (native.TargetInfo, bool) {
	l.require(libver.FeatureTargetInfo)
	u := l.unit(tu)
	info := native.TargetInfo{Triple: "x86_64-pc-linux-gnu", PointerWidth: 64}
	for i, a := range u.args {
		switch {
		case a == "-target" && i+1 < len(u.args):
			info.Triple = u.args[i+1]
		case strings.HasPrefix(a, "--target="):
			info.Triple = strings.TrimPrefix(a, "--target=")
		}
	}
	for _, p := range []string{"i386", "i686", "arm-", "armv7"} {
		if strings.HasPrefix(info.Triple, p) {
			info.PointerWidth = 32
		}
	}
	return info, true
}

func (l *Lib) IsFileMultipleIncludeGuarded(tu, file native.Handle) bool {
	u := l.unit(tu)
	fi := u.fileByHandle(file)
	return fi >= 0 && u.files[fi].guarded
}

// fileOf resolves a file handle to its unit and index.
func (l *Lib) fileOf(h native.Handle) (*unit, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ref, ok := l.files[h]
	if !ok {
		return nil, -1
	}
	u, ok := l.units[ref.tu]
	if !ok || ref.fi >= len(u.files) || u.files[ref.fi].handle != h {
		return nil, -1
	}
	return u, ref.fi
}

func (l *Lib) FileName(f native.Handle) string {
	u, fi := l.fileOf(f)
	if u == nil {
		return ""
	}
	return u.files[fi].path
}

func (l *Lib) FileTime(f native.Handle) int64 {
	u, fi := l.fileOf(f)
	if u == nil {
		return 0
	}
	return u.files[fi].mtime
}

func (l *Lib) FileUniqueID(f native.Handle) (native.FileUniqueID, bool) {
	l.require(libver.FeatureFileUniqueID)
	u, fi := l.fileOf(f)
	if u == nil {
		return native.FileUniqueID{}, false
	}
	var inode uint64
	for _, c := range u.files[fi].path {
		inode = inode*131 + uint64(c)
	}
	return native.FileUniqueID{Data: [3]uint64{1, inode, uint64(u.files[fi].mtime)}}, true
}

func (l *Lib) loc(u *unit, fi int, off uint32) native.SourceLocation {
	if fi < 0 || fi >= len(u.files) {
		return native.SourceLocation{}
	}
	return native.SourceLocation{Ptr: [2]uintptr{uintptr(u.files[fi].handle), uintptr(u.handle)}, Int: off}
}

func (l *Lib) span(u *unit, fi int, begin, end uint32) native.SourceRange {
	if fi < 0 || fi >= len(u.files) {
		return native.SourceRange{}
	}
	return native.SourceRange{Ptr: [2]uintptr{uintptr(u.files[fi].handle), uintptr(u.handle)}, Begin: begin, End: end}
}

// resolveLoc finds the unit and file a location points into.
func (l *Lib) resolveLoc(ptr [2]uintptr) (*unit, int) {
	if ptr[0] == 0 {
		return nil, -1
	}
	return l.fileOf(native.Handle(ptr[0]))
}

func (l *Lib) NullLocation() native.SourceLocation { return native.SourceLocation{} }

func (l *Lib) EqualLocations(a, b native.SourceLocation) bool { return a == b }

func (l *Lib) position(loc native.SourceLocation) native.Position {
	u, fi := l.resolveLoc(loc.Ptr)
	if u == nil {
		return native.Position{}
	}
	line, col := u.files[fi].lineCol(loc.Int)
	return native.Position{File: u.files[fi].handle, Line: line, Column: col, Offset: loc.Int}
}

func (l *Lib) ExpansionLocation(loc native.SourceLocation) native.Position { return l.position(loc) }
func (l *Lib) SpellingLocation(loc native.SourceLocation) native.Position  { return l.position(loc) }
func (l *Lib) FileLocation(loc native.SourceLocation) native.Position      { return l.position(loc) }

func (l *Lib) PresumedLocation(loc native.SourceLocation) native.Presumed {
	u, fi := l.resolveLoc(loc.Ptr)
	if u == nil {
		return native.Presumed{}
	}
	line, col := u.files[fi].lineCol(loc.Int)
	return native.Presumed{Filename: u.files[fi].path, Line: line, Column: col}
}

func (l *Lib) LocationInSystemHeader(loc native.SourceLocation) bool {
	u, fi := l.resolveLoc(loc.Ptr)
	return u != nil && u.files[fi].system
}

func (l *Lib) LocationFromMainFile(loc native.SourceLocation) bool {
	u, fi := l.resolveLoc(loc.Ptr)
	return u != nil && fi == 0
}

func (l *Lib) NullRange() native.SourceRange { return native.SourceRange{} }

func (l *Lib) GetRange(begin, end native.SourceLocation) native.SourceRange {
	if begin.Ptr != end.Ptr {
		return native.SourceRange{}
	}
	return native.SourceRange{Ptr: begin.Ptr, Begin: begin.Int, End: end.Int}
}

func (l *Lib) EqualRanges(a, b native.SourceRange) bool { return a == b }

func (l *Lib) RangeIsNull(r native.SourceRange) bool { return r.Ptr[0] == 0 }

func (l *Lib) RangeStart(r native.SourceRange) native.SourceLocation {
	if r.Ptr[0] == 0 {
		return native.SourceLocation{}
	}
	return native.SourceLocation{Ptr: r.Ptr, Int: r.Begin}
}

func (l *Lib) RangeEnd(r native.SourceRange) native.SourceLocation {
	if r.Ptr[0] == 0 {
		return native.SourceLocation{}
	}
	return native.SourceLocation{Ptr: r.Ptr, Int: r.End}
}
