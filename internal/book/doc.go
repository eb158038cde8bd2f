// Package book implements the navigation controller and renderer for a
// flippable book.
//
// # Overview
//
// The Controller is a single-flight state machine over the position held in a
// state.Store:
//
//	Idle(i) --advance--> Animating(i, forward)  --finish--> Idle(i+1)
//	Idle(i) --retreat--> Animating(i, backward) --finish--> Idle(i-1)
//
// advance is a no-op from Idle(pageCount) and retreat is a no-op from Idle(0);
// both are no-ops while Animating. The position itself moves as soon as the
// turn is accepted; the lock is what keeps a second turn out until the first
// one has finished on screen.
//
// # Completion
//
// Each accepted turn gets an id. The book unlocks when Finish(id) is called by
// a renderer that tracks its own animation, or when the fixed-duration guard
// scheduled through the Scheduler fires. Guards and completions for ids that
// are no longer in flight are ignored.
//
// # Rendering
//
// Leaf orientation and stacking are pure functions of the position:
//
//	orientation(p) = Flipped if p < current, else Front
//	stack(p)       = p if p < current, else pageCount - p + current
//
// The first advance from the closed front cover and the last advance onto the
// back cover differ only in the cover translation the Renderer applies; the
// controller has no special cases beyond its bounds checks. A position with no
// defined layout panics with *InvariantError.
package book
