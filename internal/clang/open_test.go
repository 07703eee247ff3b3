//go:build !libclang

package clang_test

import (
	"errors"
	"testing"

	"clangview/internal/clang"
	"clangview/internal/native"
)

func TestOpenWithoutBackend(t *testing.T) {
	b, err := clang.Open()
	if b != nil || !errors.Is(err, native.ErrUnavailable) {
		t.Fatalf("Open = %v, %v", b, err)
	}
	if _, again := clang.Open(); again != err {
		t.Fatalf("second Open returned %v, want the cached %v", again, err)
	}
}
