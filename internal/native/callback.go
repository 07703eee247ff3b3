package native

import "sync"

// Callbacks pins Go values for the duration of a native call. C code only
// ever sees the integer token returned by Register, which it passes back as
// client data; the trampoline resolves it with Lookup.
//
// Every traversal registers its own frame, so a callback that starts another
// traversal gets a fresh token and the two never share state.
type Callbacks struct {
	mu     sync.Mutex
	next   uintptr
	frames map[uintptr]any
}

// Frames is the process-wide registry used by the cgo trampolines.
var Frames Callbacks

// Register pins v and returns its token. Tokens start at 1, so 0 never names
// a live frame.
func (r *Callbacks) Register(v any) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frames == nil {
		r.frames = make(map[uintptr]any)
	}
	r.next++
	r.frames[r.next] = v
	return r.next
}

// Lookup returns the value pinned under token, or nil.
func (r *Callbacks) Lookup(token uintptr) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[token]
}

// Unregister releases token. Releasing an unknown token is a no-op.
func (r *Callbacks) Unregister(token uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.frames, token)
}

// Len reports the number of live frames.
func (r *Callbacks) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// With pins v for the duration of call.
func (r *Callbacks) With(v any, call func(token uintptr)) {
	token := r.Register(v)
	defer r.Unregister(token)
	call(token)
}
