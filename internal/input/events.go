package input

import "time"

// Key names a navigation key using DOM key values.
type Key string

const (
	KeyArrowRight Key = "ArrowRight"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowUp    Key = "ArrowUp"
)

// WheelEvent is a single mouse wheel tick. Positive DeltaY scrolls down.
type WheelEvent struct {
	DeltaY float64
}

// KeyEvent is a key-down event.
type KeyEvent struct {
	Key Key
}

// TouchEvent is a touch-start or touch-move sample. HasPoint is false when the
// event carried no touch point.
type TouchEvent struct {
	Y        float64
	HasPoint bool
	Time     time.Time
}

// ScrollEvent reports the container scroll offset. Height is the container's
// total scrollable height.
type ScrollEvent struct {
	Top    float64
	Height float64
}
