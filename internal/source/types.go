package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (unsaved buffer, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    uint64   // xxhash of Content
	Flags   FileFlags
}

// LineCol is a human-readable position. Columns count bytes, the way
// libclang reports them.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
