// Package state owns the single authoritative book position.
//
// # Overview
//
// A Store holds the BookState for one book: the fixed leaf count, the current
// position and the animation lock. It is the only place the position lives;
// page orientation and stacking shown on screen are caches derived from it.
//
// # Positions
//
// A book with N leaves has N+1 legal positions:
//
//	0        closed on the front cover
//	1..N-1   open, showing the spread between leaf i-1 and leaf i
//	N        closed on the back cover
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. The navigation controller is the only
// writer; input normalization and rendering read through the View interface.
//
//	Controller                     Normalizer / UI
//	┌────────────────┐            ┌────────────────┐
//	│ store.Begin()  │───────────→│store.Snapshot()│
//	│ store.Settle() │  (mutex)   │                │
//	└────────────────┘            └────────────────┘
//
// # Transition Semantics
//
// Begin performs a single step and locks the book under a transition id.
// While locked, every further Begin is refused. Settle releases the lock only
// for the id that took it, so a late timer from an earlier transition cannot
// unlock a newer one.
package state
