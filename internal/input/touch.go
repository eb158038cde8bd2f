package input

import "time"

type touchTracker struct {
	active    bool
	startY    float64
	startTime time.Time
}

func (t *touchTracker) begin(ev TouchEvent) {
	t.active = true
	t.startY = ev.Y
	t.startTime = ev.Time
}

func (t *touchTracker) reset() {
	*t = touchTracker{}
}
