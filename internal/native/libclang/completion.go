//go:build libclang

package libclang

/*
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"clangview/internal/native"
)

func results(h native.Handle) *C.CXCodeCompleteResults { return (*C.CXCodeCompleteResults)(ptr(h)) }

func cs(h native.Handle) C.CXCompletionString { return C.CXCompletionString(ptr(h)) }

func (l *Lib) CodeCompleteAt(h native.Handle, path string, line, column uint32, unsaved []native.UnsavedFile, opts uint32) native.Handle {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	files, n, free := cUnsaved(unsaved)
	defer free()
	return handle(unsafe.Pointer(C.clang_codeCompleteAt(tu(h), cpath, C.uint(line), C.uint(column), files, n, C.uint(opts))))
}

func (l *Lib) DefaultCodeCompleteOptions() uint32 {
	return uint32(C.clang_defaultCodeCompleteOptions())
}

func (l *Lib) DisposeCodeCompleteResults(res native.Handle) {
	C.clang_disposeCodeCompleteResults(results(res))
}

func (l *Lib) NumCompletionResults(res native.Handle) int { return int(results(res).NumResults) }

func (l *Lib) CompletionResult(res native.Handle, i int) (int32, native.Handle) {
	r := results(res)
	item := unsafe.Slice(r.Results, int(r.NumResults))[i]
	return int32(item.CursorKind), handle(unsafe.Pointer(item.CompletionString))
}

func (l *Lib) SortCodeCompletionResults(res native.Handle) {
	r := results(res)
	C.clang_sortCodeCompletionResults(r.Results, r.NumResults)
}

func (l *Lib) CodeCompleteNumDiagnostics(res native.Handle) int {
	return int(C.clang_codeCompleteGetNumDiagnostics(results(res)))
}

func (l *Lib) CodeCompleteDiagnostic(res native.Handle, i int) native.Handle {
	return handle(C.clang_codeCompleteGetDiagnostic(results(res), C.uint(i)))
}

func (l *Lib) CodeCompleteContexts(res native.Handle) uint64 {
	return uint64(C.clang_codeCompleteGetContexts(results(res)))
}

func (l *Lib) CodeCompleteContainerKind(res native.Handle) (int32, bool) {
	var incomplete C.uint
	k := C.clang_codeCompleteGetContainerKind(results(res), &incomplete)
	return int32(k), incomplete != 0
}

func (l *Lib) CodeCompleteContainerUSR(res native.Handle) string {
	return str(C.clang_codeCompleteGetContainerUSR(results(res)))
}

func (l *Lib) CodeCompleteObjCSelector(res native.Handle) string {
	return str(C.clang_codeCompleteGetObjCSelector(results(res)))
}

func (l *Lib) CompletionNumChunks(h native.Handle) int {
	return int(C.clang_getNumCompletionChunks(cs(h)))
}

func (l *Lib) CompletionChunkKind(h native.Handle, i int) int32 {
	return int32(C.clang_getCompletionChunkKind(cs(h), C.uint(i)))
}

func (l *Lib) CompletionChunkText(h native.Handle, i int) string {
	return str(C.clang_getCompletionChunkText(cs(h), C.uint(i)))
}

func (l *Lib) CompletionChunkCompletionString(h native.Handle, i int) native.Handle {
	return handle(C.clang_getCompletionChunkCompletionString(cs(h), C.uint(i)))
}

func (l *Lib) CompletionPriority(h native.Handle) uint32 {
	return uint32(C.clang_getCompletionPriority(cs(h)))
}

func (l *Lib) CompletionAvailability(h native.Handle) int32 {
	return int32(C.clang_getCompletionAvailability(cs(h)))
}

func (l *Lib) CompletionNumAnnotations(h native.Handle) int {
	return int(C.clang_getCompletionNumAnnotations(cs(h)))
}

func (l *Lib) CompletionAnnotation(h native.Handle, i int) string {
	return str(C.clang_getCompletionAnnotation(cs(h), C.uint(i)))
}

func (l *Lib) CompletionParent(h native.Handle) string {
	return str(C.clang_getCompletionParent(cs(h), nil))
}

func (l *Lib) CompletionBriefComment(h native.Handle) string {
	return str(C.clang_getCompletionBriefComment(cs(h)))
}

// Compilation databases.

func db(h native.Handle) C.CXCompilationDatabase { return C.CXCompilationDatabase(ptr(h)) }

func cmds(h native.Handle) C.CXCompileCommands { return C.CXCompileCommands(ptr(h)) }

func cmd(h native.Handle) C.CXCompileCommand { return C.CXCompileCommand(ptr(h)) }

func (l *Lib) CompilationDatabaseFromDirectory(dir string) (native.Handle, int32) {
	cdir := C.CString(dir)
	defer C.free(unsafe.Pointer(cdir))
	var code C.CXCompilationDatabase_Error
	h := C.clang_CompilationDatabase_fromDirectory(cdir, &code)
	return handle(h), int32(code)
}

func (l *Lib) DisposeCompilationDatabase(h native.Handle) {
	C.clang_CompilationDatabase_dispose(db(h))
}

func (l *Lib) CompileCommandsFor(h native.Handle, file string) native.Handle {
	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	return handle(C.clang_CompilationDatabase_getCompileCommands(db(h), cfile))
}

func (l *Lib) AllCompileCommands(h native.Handle) native.Handle {
	return handle(C.clang_CompilationDatabase_getAllCompileCommands(db(h)))
}

func (l *Lib) DisposeCompileCommands(h native.Handle) { C.clang_CompileCommands_dispose(cmds(h)) }

func (l *Lib) NumCompileCommands(h native.Handle) int {
	return int(C.clang_CompileCommands_getSize(cmds(h)))
}

func (l *Lib) CompileCommand(h native.Handle, i int) native.Handle {
	return handle(C.clang_CompileCommands_getCommand(cmds(h), C.uint(i)))
}

func (l *Lib) CompileCommandDirectory(h native.Handle) string {
	return str(C.clang_CompileCommand_getDirectory(cmd(h)))
}

func (l *Lib) CompileCommandFilename(h native.Handle) string {
	if l.sym.commandFilename == nil {
		return ""
	}
	return str(C.cv_compileCommandFilename(l.sym.commandFilename, cmd(h)))
}

func (l *Lib) CompileCommandNumArgs(h native.Handle) int {
	return int(C.clang_CompileCommand_getNumArgs(cmd(h)))
}

func (l *Lib) CompileCommandArg(h native.Handle, i int) string {
	return str(C.clang_CompileCommand_getArg(cmd(h), C.uint(i)))
}
