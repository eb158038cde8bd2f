//go:build linux

package touch

import (
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/five82/flipbook/internal/input"
)

// Decoder folds raw evdev events into touch samples, one per SYN_REPORT frame.
// Only the vertical axis is tracked.
type Decoder struct {
	scale float64

	touching bool
	began    bool
	ended    bool
	moved    bool
	haveY    bool
	y        float64
}

// NewDecoder returns a decoder multiplying raw axis values by scale to get
// pixels. A non-positive scale means 1.
func NewDecoder(scale float64) *Decoder {
	if scale <= 0 {
		scale = 1
	}
	return &Decoder{scale: scale}
}

// Feed consumes one event and returns a sample when a frame completes.
func (d *Decoder) Feed(ev *evdev.InputEvent) (Sample, bool) {
	if ev == nil {
		return Sample{}, false
	}
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			if ev.Value != 0 {
				d.touching, d.began = true, true
			} else {
				d.ended = true
			}
		}
	case evdev.EV_ABS:
		if ev.Code == evdev.ABS_MT_POSITION_Y || ev.Code == evdev.ABS_Y {
			d.y = float64(ev.Value) * d.scale
			d.haveY = true
			d.moved = true
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.flush(eventTime(ev))
		}
	}
	return Sample{}, false
}

func (d *Decoder) flush(at time.Time) (Sample, bool) {
	defer func() { d.began, d.moved = false, false }()

	event := input.TouchEvent{Y: d.y, HasPoint: d.haveY, Time: at}
	switch {
	case d.ended:
		d.touching, d.ended, d.haveY = false, false, false
		return Sample{Phase: PhaseEnd, Event: event}, true
	case d.began:
		return Sample{Phase: PhaseStart, Event: event}, true
	case d.touching && d.moved:
		return Sample{Phase: PhaseMove, Event: event}, true
	}
	return Sample{}, false
}

func eventTime(ev *evdev.InputEvent) time.Time {
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond))
}
