package clang

import (
	"strings"

	"fortio.org/safecast"

	"clangview/internal/kinds"
	"clangview/internal/native"
)

// CodeCompletionResults is the answer to one completion request.
type CodeCompletionResults struct {
	tu      *TranslationUnit
	own     *owned[native.Handle]
	diags   []*Diagnostic
	release func()
}

// CompletionResult is one candidate.
type CompletionResult struct {
	Kind   kinds.CursorKind
	String *CompletionString
}

// CodeComplete asks for completions at a 1-based line and column of path.
// Close the result.
func (tu *TranslationUnit) CodeComplete(path string, line, column int, unsaved []UnsavedFile, opts kinds.CompleteFlags) (*CodeCompletionResults, error) {
	l, err1 := safecast.Conv[uint32](line)
	c, err2 := safecast.Conv[uint32](column)
	if err1 != nil || err2 != nil {
		return nil, &ConstructionError{Op: "code complete", Input: path}
	}
	lib := tu.b.lib
	own, err := acquire(lib.CodeCompleteAt(tu.handle(), path, l, c, nativeUnsaved(unsaved), uint32(opts)), lib.DisposeCodeCompleteResults)
	if err != nil {
		return nil, &ConstructionError{Op: "code complete", Input: path}
	}
	return &CodeCompletionResults{tu: tu, own: own, release: tu.own.retain()}, nil
}

func (r *CodeCompletionResults) lib() native.Library { return r.tu.b.lib }

func (r *CodeCompletionResults) Len() int { return r.lib().NumCompletionResults(r.own.borrow()) }

func (r *CodeCompletionResults) At(i int) (CompletionResult, error) {
	n := r.Len()
	if i < 0 || i >= n {
		return CompletionResult{}, outOfRange(i, n)
	}
	kind, h := r.lib().CompletionResult(r.own.borrow(), i)
	k, err := r.tu.b.reg.Cursor(kind)
	if err != nil {
		return CompletionResult{}, err
	}
	return CompletionResult{Kind: k, String: &CompletionString{h: h, tu: r.tu, owner: r.own}}, nil
}

func (r *CodeCompletionResults) All() ([]CompletionResult, error) {
	n := r.Len()
	out := make([]CompletionResult, 0, n)
	for i := range n {
		res, err := r.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Sort orders the results by typed text, case-insensitively.
func (r *CodeCompletionResults) Sort() { r.lib().SortCodeCompletionResults(r.own.borrow()) }

func (r *CodeCompletionResults) Contexts() kinds.CompletionContext {
	return kinds.CompletionContext(r.lib().CodeCompleteContexts(r.own.borrow()))
}

// ContainerKind is the kind of the entity whose members are completed.
func (r *CodeCompletionResults) ContainerKind() (kinds.CursorKind, error) {
	k, _ := r.lib().CodeCompleteContainerKind(r.own.borrow())
	return r.tu.b.reg.Cursor(k)
}

// IsIncomplete reports whether libclang had incomplete information about
// the container.
func (r *CodeCompletionResults) IsIncomplete() bool {
	_, incomplete := r.lib().CodeCompleteContainerKind(r.own.borrow())
	return incomplete
}

func (r *CodeCompletionResults) ContainerUSR() string {
	return r.lib().CodeCompleteContainerUSR(r.own.borrow())
}

func (r *CodeCompletionResults) ObjCSelector() string {
	return r.lib().CodeCompleteObjCSelector(r.own.borrow())
}

func (r *CodeCompletionResults) NumDiagnostics() int {
	return r.lib().CodeCompleteNumDiagnostics(r.own.borrow())
}

// Diagnostics returns the diagnostics produced while completing. They are
// released by Close.
func (r *CodeCompletionResults) Diagnostics() ([]*Diagnostic, error) {
	if r.diags != nil {
		return r.diags, nil
	}
	h := r.own.borrow()
	n := r.lib().CodeCompleteNumDiagnostics(h)
	out := make([]*Diagnostic, 0, n)
	for i := range n {
		d, err := r.tu.ownedDiagnostic(r.lib().CodeCompleteDiagnostic(h, i))
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	r.diags = out
	return out, nil
}

func (r *CodeCompletionResults) Close() error {
	for _, d := range r.diags {
		d.own.Close()
	}
	err := r.own.Close()
	r.release()
	return err
}

// CompletionString is the structured text of a completion candidate.
type CompletionString struct {
	h     native.Handle
	tu    *TranslationUnit
	owner *owned[native.Handle]
}

// Chunk is one piece of a completion string.
type Chunk struct {
	Kind   kinds.ChunkKind
	Text   string
	Nested *CompletionString
}

func (s *CompletionString) handle() native.Handle {
	if s.owner != nil {
		s.owner.borrow()
	}
	return s.h
}

func (s *CompletionString) lib() native.Library { return s.tu.b.lib }

func (s *CompletionString) NumChunks() int { return s.lib().CompletionNumChunks(s.handle()) }

func (s *CompletionString) Chunk(i int) (Chunk, error) {
	h := s.handle()
	n := s.lib().CompletionNumChunks(h)
	if i < 0 || i >= n {
		return Chunk{}, outOfRange(i, n)
	}
	k, err := s.tu.b.reg.Chunk(s.lib().CompletionChunkKind(h, i))
	if err != nil {
		return Chunk{}, err
	}
	ch := Chunk{Kind: k, Text: s.lib().CompletionChunkText(h, i)}
	if k == kinds.ChunkOptional {
		if nested := s.lib().CompletionChunkCompletionString(h, i); nested != 0 {
			ch.Nested = &CompletionString{h: nested, tu: s.tu, owner: s.owner}
		}
	}
	return ch, nil
}

func (s *CompletionString) Chunks() ([]Chunk, error) {
	n := s.NumChunks()
	out := make([]Chunk, 0, n)
	for i := range n {
		ch, err := s.Chunk(i)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// TypedText is the text the user would type to select the candidate.
func (s *CompletionString) TypedText() string {
	chunks, err := s.Chunks()
	if err != nil {
		return ""
	}
	for _, ch := range chunks {
		if ch.Kind == kinds.ChunkTypedText {
			return ch.Text
		}
	}
	return ""
}

// Priority is lower for better candidates.
func (s *CompletionString) Priority() int { return int(s.lib().CompletionPriority(s.handle())) }

func (s *CompletionString) Availability() kinds.Availability {
	return kinds.Availability(s.lib().CompletionAvailability(s.handle()))
}

func (s *CompletionString) Annotations() []string {
	h := s.handle()
	out := make([]string, s.lib().CompletionNumAnnotations(h))
	for i := range out {
		out[i] = s.lib().CompletionAnnotation(h, i)
	}
	return out
}

func (s *CompletionString) Parent() string       { return s.lib().CompletionParent(s.handle()) }
func (s *CompletionString) BriefComment() string { return s.lib().CompletionBriefComment(s.handle()) }

// String renders the chunks the way an editor would show them.
func (s *CompletionString) String() string {
	chunks, err := s.Chunks()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, ch := range chunks {
		switch ch.Kind {
		case kinds.ChunkOptional:
			if ch.Nested != nil {
				b.WriteString("[" + ch.Nested.String() + "]")
			}
		case kinds.ChunkResultType:
			b.WriteString(ch.Text + " ")
		case kinds.ChunkInformative:
		default:
			b.WriteString(ch.Text)
		}
	}
	return b.String()
}
