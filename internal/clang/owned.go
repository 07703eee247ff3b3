package clang

import (
	"errors"
	"sync"
)

var errNullHandle = errors.New("clang: null handle")

// owned ties a native handle to its release call.
//
// The owner holds the primary reference and drops it with Close. Derived
// resources that must not outlive the handle take an extra reference with
// retain. release runs exactly once, when the last reference goes.
// Anything the release call needs besides the pointer (a count, a parent
// handle) lives inside H.
type owned[H comparable] struct {
	mu      sync.Mutex
	handle  H
	refs    int
	closed  bool
	done    bool
	release func(H)
}

func acquire[H comparable](h H, release func(H)) (*owned[H], error) {
	var zero H
	if h == zero {
		return nil, errNullHandle
	}
	return &owned[H]{handle: h, refs: 1, release: release}, nil
}

// borrow returns the handle. It panics with ErrReleased once the primary
// reference is dropped.
func (o *owned[H]) borrow() H {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		panic(ErrReleased)
	}
	return o.handle
}

// live reports whether the primary reference is still held.
func (o *owned[H]) live() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return !o.closed
}

// retain takes an extra reference and returns its release func. Calling
// the func more than once is a no-op.
func (o *owned[H]) retain() func() {
	o.mu.Lock()
	if o.done {
		o.mu.Unlock()
		panic(ErrReleased)
	}
	o.refs++
	o.mu.Unlock()
	var once sync.Once
	return func() { once.Do(o.drop) }
}

// Close drops the primary reference. Later calls are no-ops.
func (o *owned[H]) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	o.mu.Unlock()
	o.drop()
	return nil
}

func (o *owned[H]) drop() {
	o.mu.Lock()
	o.refs--
	last := o.refs == 0
	if last {
		o.done = true
	}
	h := o.handle
	o.mu.Unlock()
	if last {
		o.release(h)
	}
}
