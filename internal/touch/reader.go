//go:build linux

package touch

import (
	"context"
	"fmt"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Reader pumps samples from a Linux touchscreen.
type Reader struct {
	dev     *evdev.InputDevice
	decoder *Decoder
	closed  atomic.Bool
}

// Open opens the evdev device at path.
func Open(path string, scale float64) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device: %w", err)
	}
	return &Reader{dev: dev, decoder: NewDecoder(scale)}, nil
}

// Run reads until ctx is cancelled or the device fails, calling emit for each
// decoded sample. Cancellation is not an error.
func (r *Reader) Run(ctx context.Context, emit func(Sample)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = r.Close()
		case <-done:
		}
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.closed.Load() {
				return nil
			}
			return fmt.Errorf("read touch event: %w", err)
		}
		if sample, ok := r.decoder.Feed(ev); ok {
			emit(sample)
		}
	}
}

// Close releases the device. It is safe to call more than once.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.dev.Close()
}
