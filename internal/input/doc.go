// Package input normalizes raw wheel, keyboard, touch and scroll events into
// discrete navigation intents.
//
// Every source obeys one rule: nothing is emitted while the book is locked.
// Events that arrive during a transition are still observed where bookkeeping
// needs them (a touch-start still records its baseline) but never turn a page.
//
// Two strategies exist for scroll-like input and only one is active at a time:
//
//   - StrategyWheel: each wheel tick is one intent, and the native scroll is
//     suppressed whenever an intent fires or the book is locked.
//   - StrategyScroll: the container scroll offset is divided into pageCount+2
//     bands and a page turns when the offset enters a band past the current one.
//
// Touch gestures turn a page when they travel more than the minimum distance
// within the (min, max) duration window, then re-anchor at the current point
// so one continuous swipe can turn several pages.
package input
