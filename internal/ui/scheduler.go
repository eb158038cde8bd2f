package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a scheduled callback back onto the event loop.
type timerMsg struct {
	fn func()
}

// loopScheduler turns controller timers into tea.Tick commands so every
// callback runs inside Update, never on a timer goroutine.
type loopScheduler struct {
	pending []tea.Cmd
}

func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

// drain returns and clears the commands queued since the last call.
func (s *loopScheduler) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}
