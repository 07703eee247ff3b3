package clang

import (
	"clangview/internal/kinds"
	"clangview/internal/libver"
	"clangview/internal/native"
)

// CompilationDatabase is a compile_commands.json loaded by libclang.
type CompilationDatabase struct {
	b   *Binding
	own *owned[native.Handle]
}

// CompilationDatabaseFromDirectory loads the database in dir.
func (b *Binding) CompilationDatabaseFromDirectory(dir string) (*CompilationDatabase, error) {
	h, code := b.lib.CompilationDatabaseFromDirectory(dir)
	if code != int32(kinds.CompilationDatabaseNoError) || h == 0 {
		return nil, &ConstructionError{Op: "load compilation database", Input: dir, Code: code, Reason: "cannot load database"}
	}
	own, err := acquire(h, b.lib.DisposeCompilationDatabase)
	if err != nil {
		return nil, &ConstructionError{Op: "load compilation database", Input: dir}
	}
	return &CompilationDatabase{b: b, own: own}, nil
}

func (db *CompilationDatabase) Close() error { return db.own.Close() }

// CompileCommands returns the commands that build file. A file the
// database does not know yields an empty set.
func (db *CompilationDatabase) CompileCommands(file string) (*CompileCommands, error) {
	return db.commands(db.b.lib.CompileCommandsFor(db.own.borrow(), file))
}

func (db *CompilationDatabase) AllCompileCommands() (*CompileCommands, error) {
	return db.commands(db.b.lib.AllCompileCommands(db.own.borrow()))
}

func (db *CompilationDatabase) commands(h native.Handle) (*CompileCommands, error) {
	cc := &CompileCommands{b: db.b, release: func() {}}
	if h == 0 {
		return cc, nil
	}
	own, err := acquire(h, db.b.lib.DisposeCompileCommands)
	if err != nil {
		return nil, err
	}
	cc.own = own
	cc.release = db.own.retain()
	return cc, nil
}

// CompileCommands is a set of commands from a CompilationDatabase.
type CompileCommands struct {
	b       *Binding
	own     *owned[native.Handle]
	release func()
}

func (cc *CompileCommands) Len() int {
	if cc.own == nil {
		return 0
	}
	return cc.b.lib.NumCompileCommands(cc.own.borrow())
}

func (cc *CompileCommands) At(i int) (*CompileCommand, error) {
	n := cc.Len()
	if i < 0 || i >= n {
		return nil, outOfRange(i, n)
	}
	return &CompileCommand{b: cc.b, h: cc.b.lib.CompileCommand(cc.own.borrow(), i), set: cc.own}, nil
}

func (cc *CompileCommands) All() []*CompileCommand {
	n := cc.Len()
	out := make([]*CompileCommand, 0, n)
	for i := range n {
		c, _ := cc.At(i)
		out = append(out, c)
	}
	return out
}

func (cc *CompileCommands) Close() error {
	var err error
	if cc.own != nil {
		err = cc.own.Close()
	}
	cc.release()
	return err
}

// CompileCommand is one entry of a CompileCommands set, valid while the set
// is open.
type CompileCommand struct {
	b   *Binding
	h   native.Handle
	set *owned[native.Handle]
}

func (c *CompileCommand) handle() native.Handle {
	c.set.borrow()
	return c.h
}

// Directory is the working directory the command runs in.
func (c *CompileCommand) Directory() string { return c.b.lib.CompileCommandDirectory(c.handle()) }

func (c *CompileCommand) Filename() (string, error) {
	if err := c.b.require(libver.FeatureCompileCommandFilename); err != nil {
		return "", err
	}
	return c.b.lib.CompileCommandFilename(c.handle()), nil
}

func (c *CompileCommand) NumArgs() int { return c.b.lib.CompileCommandNumArgs(c.handle()) }

func (c *CompileCommand) Arg(i int) (string, error) {
	n := c.NumArgs()
	if i < 0 || i >= n {
		return "", outOfRange(i, n)
	}
	return c.b.lib.CompileCommandArg(c.handle(), i), nil
}

// Args is the full command line, compiler first.
func (c *CompileCommand) Args() []string {
	h := c.handle()
	out := make([]string, c.b.lib.CompileCommandNumArgs(h))
	for i := range out {
		out[i] = c.b.lib.CompileCommandArg(h, i)
	}
	return out
}

// MappedSource is a file the command reads from memory instead of disk.
type MappedSource struct {
	Path    string
	Content string
}

// MappedSources is not exposed by this binding: libclang never populates
// mapped sources from a JSON database.
func (c *CompileCommand) MappedSources() ([]MappedSource, error) {
	return nil, &NotImplementedError{Feature: "compile command mapped sources"}
}
