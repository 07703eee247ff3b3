//go:build !libclang

package libclang

import "clangview/internal/native"

// Open reports that this binary carries no libclang backend.
func Open() (native.Library, error) {
	return nil, native.ErrUnavailable
}
