package book

import "time"

// Scheduler runs fn once after d. Implementations decide which goroutine or
// event loop fn runs on.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules callbacks with time.AfterFunc. Callbacks run on
// their own goroutine.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
