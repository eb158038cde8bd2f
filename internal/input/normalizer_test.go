package input

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flipbook/internal/state"
)

type fakeView struct {
	snap state.Snapshot
}

func (f *fakeView) Snapshot() state.Snapshot { return f.snap }

func newTestNormalizer(current, pageCount int, strategy Strategy) (*Normalizer, *fakeView) {
	view := &fakeView{snap: state.Snapshot{PageCount: pageCount, Current: current}}
	opts := DefaultOptions()
	opts.Strategy = strategy
	return NewNormalizer(view, opts), view
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func touchAt(y float64, after time.Duration) TouchEvent {
	return TouchEvent{Y: y, HasPoint: true, Time: t0.Add(after)}
}

func TestWheel(t *testing.T) {
	cases := []struct {
		name    string
		current int
		locked  bool
		delta   float64
		want    Result
	}{
		{"down advances", 1, false, 100, Result{Intent: Advance, PreventDefault: true}},
		{"up retreats", 1, false, -100, Result{Intent: Retreat, PreventDefault: true}},
		{"down at end passes through", 4, false, 100, Result{}},
		{"up at start passes through", 0, false, -100, Result{}},
		{"zero delta ignored", 2, false, 0, Result{}},
		{"locked suppresses scroll", 2, true, 100, Result{PreventDefault: true}},
		{"nan ignored", 2, false, math.NaN(), Result{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, view := newTestNormalizer(tc.current, 4, StrategyWheel)
			view.snap.Locked = tc.locked
			assert.Equal(t, tc.want, n.Wheel(WheelEvent{DeltaY: tc.delta}))
		})
	}
}

func TestWheel_ScrollStrategyLeavesNativeScroll(t *testing.T) {
	n, _ := newTestNormalizer(1, 4, StrategyScroll)
	assert.Equal(t, Result{}, n.Wheel(WheelEvent{DeltaY: 100}))
}

func TestKey(t *testing.T) {
	cases := []struct {
		name    string
		current int
		locked  bool
		key     Key
		want    Intent
	}{
		{"right advances", 0, false, KeyArrowRight, Advance},
		{"down advances", 2, false, KeyArrowDown, Advance},
		{"left retreats", 2, false, KeyArrowLeft, Retreat},
		{"up retreats", 2, false, KeyArrowUp, Retreat},
		{"left at start is a no-op", 0, false, KeyArrowLeft, None},
		{"right at end is a no-op", 4, false, KeyArrowRight, None},
		{"locked ignored", 2, true, KeyArrowRight, None},
		{"other key ignored", 2, false, Key("Enter"), None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, view := newTestNormalizer(tc.current, 4, StrategyWheel)
			view.snap.Locked = tc.locked
			res := n.Key(KeyEvent{Key: tc.key})
			assert.Equal(t, tc.want, res.Intent)
			assert.False(t, res.PreventDefault)
		})
	}
}

func TestTouch_DeliberateSwipeAdvances(t *testing.T) {
	n, _ := newTestNormalizer(0, 4, StrategyWheel)

	n.TouchStart(touchAt(200, 0))
	res := n.TouchMove(touchAt(160, 100*time.Millisecond))

	assert.Equal(t, Result{Intent: Advance, PreventDefault: true}, res)
}

func TestTouch_SwipeDownRetreats(t *testing.T) {
	n, _ := newTestNormalizer(2, 4, StrategyWheel)

	n.TouchStart(touchAt(100, 0))
	res := n.TouchMove(touchAt(150, 200*time.Millisecond))

	assert.Equal(t, Retreat, res.Intent)
}

func TestTouch_Filtering(t *testing.T) {
	cases := []struct {
		name    string
		diff    float64
		elapsed time.Duration
	}{
		{"below deadband", 10, 100 * time.Millisecond},
		{"exactly deadband", 30, 100 * time.Millisecond},
		{"too fast", 40, 50 * time.Millisecond},
		{"too slow", 40, 500 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, _ := newTestNormalizer(1, 4, StrategyWheel)
			n.TouchStart(touchAt(300, 0))
			res := n.TouchMove(touchAt(300-tc.diff, tc.elapsed))
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestTouch_BaselineResetsForChainedSwipes(t *testing.T) {
	n, view := newTestNormalizer(0, 4, StrategyWheel)

	n.TouchStart(touchAt(400, 0))
	require.Equal(t, Advance, n.TouchMove(touchAt(360, 100*time.Millisecond)).Intent)
	view.snap.Current = 1

	// Measured from the new baseline: 20px is inside the deadband.
	assert.Equal(t, None, n.TouchMove(touchAt(340, 200*time.Millisecond)).Intent)
	// 40px and 150ms past the new baseline turns another page.
	assert.Equal(t, Advance, n.TouchMove(touchAt(320, 250*time.Millisecond)).Intent)
}

func TestTouch_LockedSuppressesWithoutIntent(t *testing.T) {
	n, view := newTestNormalizer(1, 4, StrategyWheel)
	n.TouchStart(touchAt(200, 0))
	view.snap.Locked = true

	res := n.TouchMove(touchAt(100, 100*time.Millisecond))
	assert.Equal(t, Result{PreventDefault: true}, res)

	// The baseline survived the locked move.
	view.snap.Locked = false
	assert.Equal(t, Advance, n.TouchMove(touchAt(100, 150*time.Millisecond)).Intent)
}

func TestTouch_MalformedIgnored(t *testing.T) {
	n, _ := newTestNormalizer(1, 4, StrategyWheel)

	n.TouchStart(TouchEvent{Time: t0})
	assert.Equal(t, Result{}, n.TouchMove(touchAt(0, 100*time.Millisecond)), "move without a baseline")

	n.TouchStart(touchAt(200, 0))
	assert.Equal(t, Result{}, n.TouchMove(TouchEvent{Time: t0.Add(100 * time.Millisecond)}))

	n.TouchEnd()
	assert.Equal(t, Result{}, n.TouchMove(touchAt(100, 100*time.Millisecond)), "move after touch end")
}

func TestScrollThreshold(t *testing.T) {
	assert.Equal(t, 100.0, ScrollThreshold(600, 4))
	assert.Zero(t, ScrollThreshold(0, 4))
	assert.Zero(t, ScrollThreshold(600, 0))
	assert.Zero(t, ScrollThreshold(math.Inf(1), 4))
}

func TestScroll_TracksBands(t *testing.T) {
	// 4 leaves over 600px: 100px bands.
	n, view := newTestNormalizer(0, 4, StrategyScroll)

	assert.Equal(t, None, n.Scroll(ScrollEvent{Top: 50, Height: 600}).Intent, "still in band 0")
	assert.Equal(t, Advance, n.Scroll(ScrollEvent{Top: 120, Height: 600}).Intent)
	view.snap.Current = 1

	assert.Equal(t, None, n.Scroll(ScrollEvent{Top: 110, Height: 600}).Intent, "up within band 1")
	assert.Equal(t, Retreat, n.Scroll(ScrollEvent{Top: 90, Height: 600}).Intent)
}

func TestScroll_SyncScrollMovesBaseline(t *testing.T) {
	n, view := newTestNormalizer(2, 4, StrategyScroll)
	assert.Equal(t, None, n.Scroll(ScrollEvent{Top: 260, Height: 600}).Intent, "band 2 at position 2")

	// A key retreat lands on position 1 and the container is synced to band 1.
	view.snap.Current = 1
	n.SyncScroll(100)

	assert.Equal(t, Advance, n.Scroll(ScrollEvent{Top: 230, Height: 600}).Intent)
}

func TestScroll_IgnoredWhenLockedOrWheelStrategy(t *testing.T) {
	n, view := newTestNormalizer(0, 4, StrategyScroll)
	view.snap.Locked = true
	assert.Equal(t, Result{}, n.Scroll(ScrollEvent{Top: 300, Height: 600}))

	w, _ := newTestNormalizer(0, 4, StrategyWheel)
	assert.Equal(t, Result{}, w.Scroll(ScrollEvent{Top: 300, Height: 600}))
}

func TestScroll_BoundsAndMalformed(t *testing.T) {
	n, _ := newTestNormalizer(4, 4, StrategyScroll)
	assert.Equal(t, None, n.Scroll(ScrollEvent{Top: 590, Height: 600}).Intent, "already at end")

	m, _ := newTestNormalizer(1, 4, StrategyScroll)
	assert.Equal(t, None, m.Scroll(ScrollEvent{Top: 300, Height: 0}).Intent)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Scroll ")
	require.NoError(t, err)
	assert.Equal(t, StrategyScroll, s)

	s, err = ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyWheel, s)

	_, err = ParseStrategy("both")
	assert.Error(t, err)
}
