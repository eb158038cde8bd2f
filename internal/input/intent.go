package input

import (
	"fmt"
	"strings"
)

// Intent is a normalized, discrete navigation request.
type Intent int

const (
	None Intent = iota
	Advance
	Retreat
)

func (i Intent) String() string {
	switch i {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "none"
	}
}

// Result is the outcome of feeding one raw event to the Normalizer.
// PreventDefault asks the host to suppress the event's native scroll action.
type Result struct {
	Intent         Intent
	PreventDefault bool
}

// Emitted reports whether the event produced an intent.
func (r Result) Emitted() bool {
	return r.Intent != None
}

// Strategy selects which scroll-like source drives page turns.
type Strategy int

const (
	// StrategyWheel turns one page per discrete wheel tick.
	StrategyWheel Strategy = iota
	// StrategyScroll turns pages as the container scroll offset crosses thresholds.
	StrategyScroll
)

func (s Strategy) String() string {
	if s == StrategyScroll {
		return "scroll"
	}
	return "wheel"
}

// ParseStrategy maps a configuration value to a Strategy. Empty means wheel.
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "wheel":
		return StrategyWheel, nil
	case "scroll":
		return StrategyScroll, nil
	default:
		return StrategyWheel, fmt.Errorf("unknown input strategy %q", value)
	}
}
