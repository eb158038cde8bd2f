// Package ui is the terminal front end of flipbook.
//
// The Bubble Tea model owns the terminal render targets (one per leaf plus the
// cover, counter and a virtual scroll container) and feeds keyboard, mouse and
// touchscreen input through the input normalizer into the book controller.
//
// Everything runs on the Bubble Tea event loop: controller timers arrive as
// messages, touchscreen samples are posted with Program.Send, and the
// harmonica springs that animate page turns are stepped by a frame tick. When
// the springs come to rest the model reports the transition complete.
//
// # Key Bindings
//
//   - →/↓/l/j/Space/PgDn: next page
//   - ←/↑/h/k/PgUp: previous page
//   - T: cycle theme (saved to prefs)
//   - p: toggle the progress bar (saved to prefs)
//   - ?: toggle help
//   - q or Ctrl+C: quit
package ui
