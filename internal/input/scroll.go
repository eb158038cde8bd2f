package input

import (
	"math"

	"github.com/five82/flipbook/internal/state"
)

// ScrollThreshold is the scroll distance per page: the scrollable height split
// into pageCount+2 bands, one extra at each end as a buffer.
func ScrollThreshold(scrollHeight float64, pageCount int) float64 {
	if pageCount < 1 || !finite(scrollHeight) || scrollHeight <= 0 {
		return 0
	}
	return scrollHeight / float64(pageCount+2)
}

type scrollTracker struct {
	last float64
}

// observe compares the band under top with the current position. Band k is
// where position k rests after a synced scroll, so a turn fires only once the
// offset has entered a different band.
func (s *scrollTracker) observe(top, threshold float64, snap state.Snapshot) Result {
	down := top > s.last
	s.last = top
	target := int(math.Floor(top / threshold))

	if down && target > snap.Current && !snap.AtEnd() {
		return Result{Intent: Advance}
	}
	if !down && target < snap.Current && !snap.AtStart() {
		return Result{Intent: Retreat}
	}
	return Result{}
}
