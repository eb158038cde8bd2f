// Package touch reads vertical swipe gestures from a Linux touchscreen.
package touch

import (
	"errors"

	"github.com/five82/flipbook/internal/input"
)

// ErrUnsupported is returned on platforms without evdev.
var ErrUnsupported = errors.New("touch devices are only supported on linux")

// Phase of a touch sample.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	default:
		return "end"
	}
}

// Sample is one decoded touch frame.
type Sample struct {
	Phase Phase
	Event input.TouchEvent
}
