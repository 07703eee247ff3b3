package clang

import (
	"fmt"
	"time"

	"clangview/internal/libver"
	"clangview/internal/native"
)

// File is a source file taking part in a translation unit. The zero File
// stands for "no file".
type File struct {
	h  native.Handle
	tu *TranslationUnit
}

func (f File) IsZero() bool { return f.h == 0 }

// Name returns the path libclang opened the file under.
func (f File) Name() string {
	if f.h == 0 {
		return ""
	}
	return f.tu.lib().FileName(f.h)
}

// Time returns the modification time recorded at parse time.
func (f File) Time() time.Time {
	if f.h == 0 {
		return time.Time{}
	}
	return time.Unix(f.tu.lib().FileTime(f.h), 0)
}

// IsIncludeGuarded reports whether the file is protected against multiple
// inclusion by a guard macro or #pragma once.
func (f File) IsIncludeGuarded() bool {
	if f.h == 0 {
		return false
	}
	return f.tu.lib().IsFileMultipleIncludeGuarded(f.tu.handle(), f.h)
}

// FileID identifies a file across renames and hard links.
type FileID [3]uint64

func (id FileID) String() string { return fmt.Sprintf("%x-%x-%x", id[0], id[1], id[2]) }

func (f File) UniqueID() (FileID, error) {
	if err := f.tu.b.require(libver.FeatureFileUniqueID); err != nil {
		return FileID{}, err
	}
	id, ok := f.tu.lib().FileUniqueID(f.h)
	if !ok {
		return FileID{}, fmt.Errorf("clang: no unique id for %s", f.Name())
	}
	return FileID(id.Data), nil
}

func (f File) Equal(o File) bool { return f.h == o.h }

func (f File) String() string { return f.Name() }

// IsIncludeGuarded is File.IsIncludeGuarded for a file of tu.
func (tu *TranslationUnit) IsIncludeGuarded(f File) bool {
	return tu.b.lib.IsFileMultipleIncludeGuarded(tu.handle(), f.h)
}
