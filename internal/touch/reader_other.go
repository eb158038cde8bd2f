//go:build !linux

package touch

import "context"

// Reader is unavailable on this platform.
type Reader struct{}

// Open always fails on this platform.
func Open(path string, scale float64) (*Reader, error) {
	return nil, ErrUnsupported
}

// Run always fails on this platform.
func (r *Reader) Run(ctx context.Context, emit func(Sample)) error {
	return ErrUnsupported
}

// Close is a no-op.
func (r *Reader) Close() error {
	return nil
}
