package clang

import (
	"os"

	"clangview/internal/native"
)

// UnsavedFile overrides the on-disk contents of Filename for one parse,
// reparse or completion request.
type UnsavedFile struct {
	Filename string
	Contents []byte
}

// UnsavedFromDisk reads path into an UnsavedFile, e.g. to snapshot a file
// that is about to change.
func UnsavedFromDisk(path string) (UnsavedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return UnsavedFile{}, err
	}
	return UnsavedFile{Filename: path, Contents: b}, nil
}

func nativeUnsaved(files []UnsavedFile) []native.UnsavedFile {
	if len(files) == 0 {
		return nil
	}
	out := make([]native.UnsavedFile, len(files))
	for i, f := range files {
		out[i] = native.UnsavedFile{Filename: f.Filename, Contents: f.Contents}
	}
	return out
}
