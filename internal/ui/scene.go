package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/five82/flipbook/internal/book"
)

const (
	frameRate = 60

	// Spring tuning for page turns, the cover slide and scroll sync.
	springFrequency = 12.0
	springDamping   = 1.0

	unitEpsilon  = 0.002 // leaf flip and cover offset, fraction of a page
	pixelEpsilon = 0.5

	// bandRows is the height of one position band in the virtual scroll
	// container, in terminal rows.
	bandRows = 4
)

// leafView is the terminal render target for one leaf.
type leafView struct {
	orientation book.Orientation
	stack       int

	// flip runs from 0 (front up, right side) to 1 (flipped, left side).
	flip    float64
	flipVel float64
}

func (l *leafView) SetOrientation(o book.Orientation) { l.orientation = o }
func (l *leafView) SetStackOrder(n int)               { l.stack = n }

func (l *leafView) rest() float64 {
	if l.orientation == book.Flipped {
		return 1
	}
	return 0
}

// scene holds everything the renderer paints plus the spring state that
// animates it toward the painted values.
type scene struct {
	leaves []*leafView

	cover    book.CoverPosition
	coverX   float64
	coverVel float64
	counter  string

	scrollHeight float64
	clientHeight float64
	scrollTop    float64
	scrollVel    float64
	scrollTarget float64

	spring  harmonica.Spring
	ticking bool
}

func newScene(pageCount int, cellHeight float64) *scene {
	s := &scene{
		leaves:       make([]*leafView, pageCount),
		clientHeight: bandRows * cellHeight,
		scrollHeight: float64(pageCount+2) * bandRows * cellHeight,
		spring:       harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
	for i := range s.leaves {
		s.leaves[i] = &leafView{}
	}
	return s
}

func (s *scene) targets() book.Targets {
	leaves := make([]book.LeafTarget, len(s.leaves))
	for i, l := range s.leaves {
		leaves[i] = l
	}
	return book.Targets{Leaves: leaves, Cover: s, Counter: s, Scroll: s}
}

func (s *scene) SetCoverPosition(p book.CoverPosition) { s.cover = p }
func (s *scene) SetCounter(text string)                { s.counter = text }
func (s *scene) ScrollHeight() float64                 { return s.scrollHeight }

func (s *scene) SmoothScrollTo(top float64) {
	s.scrollTarget = s.clampScroll(top)
}

func (s *scene) maxScroll() float64 {
	return math.Max(0, s.scrollHeight-s.clientHeight)
}

func (s *scene) clampScroll(top float64) float64 {
	return math.Min(math.Max(top, 0), s.maxScroll())
}

// scrollBy moves the container immediately, as a user scroll would, and
// cancels any running scroll animation. It reports whether the offset changed.
func (s *scene) scrollBy(delta float64) bool {
	prev := s.scrollTop
	s.scrollTop = s.clampScroll(prev + delta)
	s.scrollTarget = s.scrollTop
	s.scrollVel = 0
	return s.scrollTop != prev
}

// snap jumps every animated value to its target.
func (s *scene) snap() {
	for _, l := range s.leaves {
		l.flip, l.flipVel = l.rest(), 0
	}
	s.coverX, s.coverVel = s.cover.Offset(), 0
	s.scrollTop, s.scrollVel = s.scrollTarget, 0
}

// animating reports whether any value is away from its target.
func (s *scene) animating() bool {
	for _, l := range s.leaves {
		if l.flip != l.rest() {
			return true
		}
	}
	return s.coverX != s.cover.Offset() || s.scrollTop != s.scrollTarget
}

// step advances every spring by one frame and reports whether all of them
// have come to rest.
func (s *scene) step() bool {
	settled := true
	var done bool
	for _, l := range s.leaves {
		l.flip, l.flipVel, done = s.advance(l.flip, l.flipVel, l.rest(), unitEpsilon)
		settled = settled && done
	}
	s.coverX, s.coverVel, done = s.advance(s.coverX, s.coverVel, s.cover.Offset(), unitEpsilon)
	settled = settled && done
	s.scrollTop, s.scrollVel, done = s.advance(s.scrollTop, s.scrollVel, s.scrollTarget, pixelEpsilon)
	return settled && done
}

func (s *scene) advance(pos, vel, target, eps float64) (float64, float64, bool) {
	if pos == target && vel == 0 {
		return pos, vel, true
	}
	pos, vel = s.spring.Update(pos, vel, target)
	if math.Abs(pos-target) < eps && math.Abs(vel) < eps {
		return target, 0, true
	}
	return pos, vel, false
}

// turning returns the leaf currently in motion and its flip progress.
func (s *scene) turning() (int, float64, bool) {
	for i, l := range s.leaves {
		if l.flip != l.rest() {
			return i, math.Min(math.Max(l.flip, 0), 1), true
		}
	}
	return -1, 0, false
}

// top returns the visible leaf on one side of the spine: the highest stacked
// leaf with orientation o. It returns -1 for an empty side.
func (s *scene) top(o book.Orientation) int {
	best := -1
	for i, l := range s.leaves {
		if l.orientation != o {
			continue
		}
		if best < 0 || l.stack > s.leaves[best].stack {
			best = i
		}
	}
	return best
}

// scrollFraction is the scroll offset as a fraction of its range.
func (s *scene) scrollFraction() float64 {
	limit := s.maxScroll()
	if limit == 0 {
		return 0
	}
	return s.scrollTop / limit
}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
