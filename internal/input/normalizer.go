package input

import (
	"math"
	"time"

	"github.com/five82/flipbook/internal/state"
)

// Default gesture window for touch swipes.
const (
	DefaultTouchMinDistance = 30.0
	DefaultTouchMinDuration = 50 * time.Millisecond
	DefaultTouchMaxDuration = 500 * time.Millisecond
)

// Options configure a Normalizer.
type Options struct {
	Strategy         Strategy
	TouchMinDistance float64 // pixels
	TouchMinDuration time.Duration
	TouchMaxDuration time.Duration
}

// DefaultOptions returns the wheel strategy with the default touch window.
func DefaultOptions() Options {
	return Options{
		Strategy:         StrategyWheel,
		TouchMinDistance: DefaultTouchMinDistance,
		TouchMinDuration: DefaultTouchMinDuration,
		TouchMaxDuration: DefaultTouchMaxDuration,
	}
}

// Normalizer converts raw wheel, keyboard, touch and scroll events into
// Advance/Retreat intents. No intent is ever emitted while the book is locked.
//
// A Normalizer is not safe for concurrent use; feed it from one event loop.
type Normalizer struct {
	view   state.View
	opts   Options
	touch  touchTracker
	scroll scrollTracker
}

// NewNormalizer builds a Normalizer reading lock and position from view.
// Zero-valued touch options fall back to the defaults.
func NewNormalizer(view state.View, opts Options) *Normalizer {
	def := DefaultOptions()
	if opts.TouchMinDistance <= 0 {
		opts.TouchMinDistance = def.TouchMinDistance
	}
	if opts.TouchMinDuration <= 0 {
		opts.TouchMinDuration = def.TouchMinDuration
	}
	if opts.TouchMaxDuration <= 0 {
		opts.TouchMaxDuration = def.TouchMaxDuration
	}
	return &Normalizer{view: view, opts: opts}
}

// Strategy returns the active scroll strategy.
func (n *Normalizer) Strategy() Strategy {
	return n.opts.Strategy
}

// Wheel handles a wheel tick. Under the scroll strategy the wheel only moves
// the container, so no intent is produced here.
func (n *Normalizer) Wheel(ev WheelEvent) Result {
	snap := n.view.Snapshot()
	if snap.Locked {
		return Result{PreventDefault: true}
	}
	if n.opts.Strategy != StrategyWheel || !finite(ev.DeltaY) {
		return Result{}
	}
	switch {
	case ev.DeltaY > 0 && snap.CanAdvance():
		return Result{Intent: Advance, PreventDefault: true}
	case ev.DeltaY < 0 && snap.CanRetreat():
		return Result{Intent: Retreat, PreventDefault: true}
	}
	return Result{}
}

// Key handles a key-down event.
func (n *Normalizer) Key(ev KeyEvent) Result {
	snap := n.view.Snapshot()
	switch ev.Key {
	case KeyArrowRight, KeyArrowDown:
		if snap.CanAdvance() {
			return Result{Intent: Advance}
		}
	case KeyArrowLeft, KeyArrowUp:
		if snap.CanRetreat() {
			return Result{Intent: Retreat}
		}
	}
	return Result{}
}

// TouchStart records the gesture baseline. It is tracked even while locked.
func (n *Normalizer) TouchStart(ev TouchEvent) Result {
	if !validTouch(ev) {
		return Result{}
	}
	n.touch.begin(ev)
	return Result{}
}

// TouchMove evaluates the gesture against the distance and duration window.
// After a deliberate swipe the baseline moves to the current point so one
// continuous gesture can turn several pages.
func (n *Normalizer) TouchMove(ev TouchEvent) Result {
	snap := n.view.Snapshot()
	if snap.Locked {
		return Result{PreventDefault: true}
	}
	if !validTouch(ev) || !n.touch.active {
		return Result{}
	}

	diff := n.touch.startY - ev.Y
	elapsed := ev.Time.Sub(n.touch.startTime)
	if math.Abs(diff) <= n.opts.TouchMinDistance {
		return Result{}
	}
	if elapsed <= n.opts.TouchMinDuration || elapsed >= n.opts.TouchMaxDuration {
		return Result{}
	}

	res := Result{PreventDefault: true}
	if diff > 0 && !snap.AtEnd() {
		res.Intent = Advance
	} else if diff < 0 && !snap.AtStart() {
		res.Intent = Retreat
	}
	n.touch.begin(ev)
	return res
}

// TouchEnd clears the gesture baseline.
func (n *Normalizer) TouchEnd() {
	n.touch.reset()
}

// Scroll handles a container scroll under the scroll strategy. Scroll events
// seen while locked are dropped without updating the direction baseline.
func (n *Normalizer) Scroll(ev ScrollEvent) Result {
	if n.opts.Strategy != StrategyScroll {
		return Result{}
	}
	snap := n.view.Snapshot()
	if snap.Locked {
		return Result{}
	}
	threshold := ScrollThreshold(ev.Height, snap.PageCount)
	if threshold <= 0 || !finite(ev.Top) {
		return Result{}
	}
	return n.scroll.observe(ev.Top, threshold, snap)
}

// SyncScroll moves the scroll direction baseline to top. Call it when the
// container reaches an offset without user input, such as a synced scroll
// after a turn.
func (n *Normalizer) SyncScroll(top float64) {
	if finite(top) {
		n.scroll.last = top
	}
}

func validTouch(ev TouchEvent) bool {
	return ev.HasPoint && finite(ev.Y) && !ev.Time.IsZero()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
