package fakeclang

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

const astMagic = "fakeclang-ast/1"

// astFile is the on-disk form of a saved unit: the sources it was built
// from, so loading replays the parse.
type astFile struct {
	Magic   string            `msgpack:"magic"`
	Path    string            `msgpack:"path"`
	Args    []string          `msgpack:"args"`
	Flags   uint32            `msgpack:"flags"`
	Sources map[string][]byte `msgpack:"sources"`
}

func (l *Lib) SaveTranslationUnit(tu native.Handle, path string, opts uint32) int32 {
	u := l.unit(tu)
	for _, d := range u.diags {
		if d.severity >= kinds.SeverityError {
			return int32(kinds.SaveErrorTranslationErrors)
		}
	}
	ast := astFile{Magic: astMagic, Path: u.path, Args: u.args, Flags: u.flags, Sources: make(map[string][]byte)}
	for _, f := range u.files {
		ast.Sources[f.path] = f.content
	}
	data, err := msgpack.Marshal(&ast)
	if err != nil {
		return int32(kinds.SaveErrorUnknown)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return int32(kinds.SaveErrorUnknown)
	}
	return int32(kinds.SaveErrorNone)
}

func (l *Lib) CreateTranslationUnit(idx native.Handle, astPath string) (native.Handle, int32) {
	l.mu.Lock()
	l.mustIndex(idx)
	l.mu.Unlock()
	data, err := os.ReadFile(astPath)
	if err != nil {
		return 0, int32(kinds.ErrorASTReadError)
	}
	var ast astFile
	if err := msgpack.Unmarshal(data, &ast); err != nil || ast.Magic != astMagic {
		return 0, int32(kinds.ErrorASTReadError)
	}
	l.mu.Lock()
	tu := l.alloc()
	l.mu.Unlock()
	u, ok := l.build(tu, idx, ast.Path, ast.Args, ast.Flags, l.reader(nil, ast.Sources))
	if !ok {
		l.forget(tu)
		return 0, int32(kinds.ErrorASTReadError)
	}
	l.install(u)
	return tu, int32(kinds.ErrorSuccess)
}
