package book

import (
	"errors"

	"github.com/five82/flipbook/internal/input"
)

// ErrNoLeaves is returned when a renderer is built without leaf targets.
var ErrNoLeaves = errors.New("renderer needs at least one leaf target")

// LeafTarget is the on-screen element for one leaf.
type LeafTarget interface {
	SetOrientation(Orientation)
	SetStackOrder(int)
}

// CoverTarget moves the whole book when it opens or closes.
type CoverTarget interface {
	SetCoverPosition(CoverPosition)
}

// CounterTarget displays the page counter.
type CounterTarget interface {
	SetCounter(text string)
}

// ScrollTarget is a scrollable container that can be moved smoothly.
type ScrollTarget interface {
	ScrollHeight() float64
	SmoothScrollTo(top float64)
}

// Targets collects the render targets. Cover, Counter and Scroll are optional.
type Targets struct {
	Leaves  []LeafTarget
	Cover   CoverTarget
	Counter CounterTarget
	Scroll  ScrollTarget
}

// Renderer reflects controller-approved positions onto render targets.
// It never changes the position itself.
type Renderer struct {
	targets    Targets
	syncScroll bool
}

// NewRenderer builds a Renderer. With syncScroll set, every applied position
// also scrolls the container to that position's band.
func NewRenderer(targets Targets, syncScroll bool) (*Renderer, error) {
	if len(targets.Leaves) == 0 {
		return nil, ErrNoLeaves
	}
	return &Renderer{targets: targets, syncScroll: syncScroll}, nil
}

// PageCount returns the number of leaf targets.
func (r *Renderer) PageCount() int {
	return len(r.targets.Leaves)
}

// Sync paints the complete state for index, used once before the first input.
func (r *Renderer) Sync(index int) {
	pageCount := r.PageCount()
	mustPosition("sync", index, pageCount)
	for _, leaf := range Layout(index, pageCount) {
		r.targets.Leaves[leaf.Index].SetOrientation(leaf.Orientation)
	}
	r.paint(index)
}

// Apply moves the render targets from position from to position to. Only the
// leaves between the two positions change orientation; stacking, cover,
// counter and scroll are recomputed from to alone, so Apply(i, i) changes
// nothing.
func (r *Renderer) Apply(from, to int) {
	pageCount := r.PageCount()
	mustPosition("apply", from, pageCount)
	mustPosition("apply", to, pageCount)

	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for p := lo; p < hi; p++ {
		r.targets.Leaves[p].SetOrientation(OrientationAt(p, to))
	}
	r.paint(to)
}

func (r *Renderer) paint(index int) {
	pageCount := r.PageCount()
	for p, leaf := range r.targets.Leaves {
		leaf.SetStackOrder(StackOrder(p, index, pageCount))
	}
	if r.targets.Cover != nil {
		r.targets.Cover.SetCoverPosition(CoverAt(index, pageCount))
	}
	if r.targets.Counter != nil {
		r.targets.Counter.SetCounter(CounterText(index, pageCount))
	}
	if r.syncScroll && r.targets.Scroll != nil {
		threshold := input.ScrollThreshold(r.targets.Scroll.ScrollHeight(), pageCount)
		if threshold > 0 {
			r.targets.Scroll.SmoothScrollTo(float64(index) * threshold)
		}
	}
}
