package driver

import (
	"path/filepath"
	"slices"
	"sync"

	"clangview/internal/clang"
)

// ArgsResolver yields the compiler arguments for a source file.
type ArgsResolver interface {
	ArgsFor(path string) []string
}

// StaticArgs passes the same arguments for every file.
type StaticArgs []string

func (a StaticArgs) ArgsFor(string) []string { return a }

// CompDBArgs reads arguments from a compilation database and falls back
// to Fallback for files the database does not list.
type CompDBArgs struct {
	DB       *clang.CompilationDatabase
	Fallback []string

	mu    sync.Mutex
	cache map[string][]string
}

func (c *CompDBArgs) ArgsFor(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if args, ok := c.cache[abs]; ok {
		return args
	}
	args := c.Fallback
	if cmds, err := c.DB.CompileCommands(abs); err == nil {
		if cmds.Len() > 0 {
			if cmd, err := cmds.At(0); err == nil {
				args = ParseArgs(cmd.Args(), cmd.Directory())
			}
		}
		cmds.Close()
	}
	if c.cache == nil {
		c.cache = make(map[string][]string)
	}
	c.cache[abs] = args
	return args
}

// ParseArgs keeps the flags of a recorded compiler command that matter
// to parsing. The compiler and the input file are dropped, and so are
// -c and -o with its value. Relative -I paths are resolved against dir.
func ParseArgs(cmd []string, dir string) []string {
	if len(cmd) == 0 {
		return nil
	}
	var out []string
	for i := 1; i < len(cmd); i++ {
		a := cmd[i]
		switch {
		case a == "-c":
			continue
		case a == "-o":
			i++
			continue
		case len(a) > 2 && a[:2] == "-I" && !filepath.IsAbs(a[2:]) && dir != "":
			a = "-I" + filepath.Join(dir, a[2:])
		case a == "-I" && i+1 < len(cmd):
			i++
			inc := cmd[i]
			if !filepath.IsAbs(inc) && dir != "" {
				inc = filepath.Join(dir, inc)
			}
			a = "-I" + inc
		case len(a) > 0 && a[0] != '-' && IsSource(a):
			continue
		}
		out = append(out, a)
	}
	return slices.Clip(out)
}
