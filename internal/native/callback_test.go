package native_test

import (
	"testing"

	"clangview/internal/native"
)

func TestCallbacksNestedFramesAreIndependent(t *testing.T) {
	var r native.Callbacks
	var seen []string

	r.With("outer", func(outer uintptr) {
		r.With("inner", func(inner uintptr) {
			if inner == outer {
				t.Fatalf("nested frame reused token %d", inner)
			}
			seen = append(seen, r.Lookup(outer).(string), r.Lookup(inner).(string))
			if r.Len() != 2 {
				t.Fatalf("live frames = %d, want 2", r.Len())
			}
		})
		if r.Lookup(outer) != "outer" {
			t.Fatalf("outer frame lost after inner returned")
		}
	})

	if r.Len() != 0 {
		t.Fatalf("frames leaked: %d", r.Len())
	}
	if len(seen) != 2 || seen[0] != "outer" || seen[1] != "inner" {
		t.Fatalf("seen = %v", seen)
	}
}

func TestCallbacksZeroTokenIsNeverLive(t *testing.T) {
	var r native.Callbacks
	tok := r.Register(1)
	if tok == 0 {
		t.Fatalf("token 0 handed out")
	}
	if r.Lookup(0) != nil {
		t.Fatalf("token 0 resolved")
	}
	r.Unregister(tok)
	r.Unregister(tok)
	if r.Lookup(tok) != nil {
		t.Fatalf("token still live after unregister")
	}
}
