package book

import "fmt"

// Orientation is the visible face of a leaf.
type Orientation int

const (
	Front Orientation = iota
	Flipped
)

func (o Orientation) String() string {
	if o == Flipped {
		return "flipped"
	}
	return "front"
}

// CoverPosition is the translation applied to the whole book.
type CoverPosition int

const (
	CoverClosedStart CoverPosition = iota
	CoverOpen
	CoverClosedEnd
)

// Offset returns the horizontal translation as a fraction of the book width.
func (c CoverPosition) Offset() float64 {
	switch c {
	case CoverOpen:
		return 0.5
	case CoverClosedEnd:
		return 1
	default:
		return 0
	}
}

func (c CoverPosition) String() string {
	switch c {
	case CoverOpen:
		return "open"
	case CoverClosedEnd:
		return "closed-end"
	default:
		return "closed-start"
	}
}

// Leaf is the derived render state of one leaf.
type Leaf struct {
	Index       int
	Orientation Orientation
	StackOrder  int
}

// OrientationAt returns the orientation of leaf at position current.
func OrientationAt(leaf, current int) Orientation {
	if leaf < current {
		return Flipped
	}
	return Front
}

// StackOrder returns the stacking priority of leaf at position current.
// Flipped leaves stack upward in flip order; unflipped leaves stack downward
// from the visible one, so every leaf gets a distinct value.
func StackOrder(leaf, current, pageCount int) int {
	if leaf < current {
		return leaf
	}
	return pageCount - leaf + current
}

// CoverAt returns the cover translation for position current.
func CoverAt(current, pageCount int) CoverPosition {
	switch {
	case current <= 0:
		return CoverClosedStart
	case current >= pageCount:
		return CoverClosedEnd
	default:
		return CoverOpen
	}
}

// CounterText formats the page counter.
func CounterText(current, pageCount int) string {
	return fmt.Sprintf("%d / %d", current, pageCount)
}

// Layout derives every leaf's render state from the position alone.
func Layout(current, pageCount int) []Leaf {
	mustPosition("layout", current, pageCount)
	leaves := make([]Leaf, pageCount)
	for p := range leaves {
		leaves[p] = Leaf{
			Index:       p,
			Orientation: OrientationAt(p, current),
			StackOrder:  StackOrder(p, current, pageCount),
		}
	}
	return leaves
}

// InvariantError reports a position for which no transition is defined.
// It signals a logic bug and is raised with panic, never returned.
type InvariantError struct {
	Op        string
	Index     int
	PageCount int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("book: %s: no transition defined for index %d (legal 0..%d)", e.Op, e.Index, e.PageCount)
}

func mustPosition(op string, index, pageCount int) {
	if pageCount < 1 || index < 0 || index > pageCount {
		panic(&InvariantError{Op: op, Index: index, PageCount: pageCount})
	}
}
