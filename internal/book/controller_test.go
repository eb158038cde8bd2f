package book

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flipbook/internal/input"
	"github.com/five82/flipbook/internal/state"
)

// manualScheduler fires callbacks when the test advances its clock.
type manualScheduler struct {
	now     time.Duration
	pending []pendingCall
}

type pendingCall struct {
	at time.Duration
	fn func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	m.pending = append(m.pending, pendingCall{at: m.now + d, fn: fn})
}

func (m *manualScheduler) advance(d time.Duration) {
	m.now += d
	sort.SliceStable(m.pending, func(i, j int) bool { return m.pending[i].at < m.pending[j].at })
	var keep []pendingCall
	var due []pendingCall
	for _, p := range m.pending {
		if p.at <= m.now {
			due = append(due, p)
		} else {
			keep = append(keep, p)
		}
	}
	m.pending = keep
	for _, p := range due {
		p.fn()
	}
}

type recordingApplier struct {
	calls [][2]int
}

func (r *recordingApplier) Apply(from, to int) { r.calls = append(r.calls, [2]int{from, to}) }

type completingApplier struct {
	recordingApplier
}

func (completingApplier) SignalsCompletion() bool { return true }

func newTestController(t *testing.T, pageCount int, applier Applier) (*Controller, *manualScheduler) {
	t.Helper()
	store, err := state.NewStore(pageCount)
	require.NoError(t, err)
	sched := &manualScheduler{}
	return New(store, applier, sched), sched
}

func TestController_AdvanceLocksUntilDurationElapses(t *testing.T) {
	applier := &recordingApplier{}
	c, sched := newTestController(t, 4, applier)

	require.True(t, c.Advance())
	assert.Equal(t, 1, c.Position())
	assert.True(t, c.Locked(), "locked immediately after an accepted turn")

	sched.advance(DefaultTransitionDuration - time.Millisecond)
	assert.True(t, c.Locked())
	assert.False(t, c.Advance(), "second turn during animation is a no-op")
	assert.False(t, c.Retreat())
	assert.Equal(t, 1, c.Position())

	sched.advance(time.Millisecond)
	assert.False(t, c.Locked())
	assert.Equal(t, [][2]int{{0, 1}}, applier.calls)
}

func TestController_FiveAdvancesOnFourLeaves(t *testing.T) {
	scene, targets := newFakeScene(4)
	r, err := NewRenderer(targets, false)
	require.NoError(t, err)
	r.Sync(0)
	c, sched := newTestController(t, 4, r)

	for i := 1; i <= 4; i++ {
		require.True(t, c.Advance(), "advance %d", i)
		sched.advance(DefaultTransitionDuration)
		assert.Equal(t, i, c.Position())
	}
	assert.Equal(t, CoverClosedEnd, scene.cover.pos)
	assert.False(t, c.Snapshot().CoverOpen())

	assert.False(t, c.Advance(), "fifth advance is a no-op")
	assert.Equal(t, 4, c.Position())
	assert.False(t, c.Locked())
}

func TestController_RetreatAtStartIsNoop(t *testing.T) {
	applier := &recordingApplier{}
	c, sched := newTestController(t, 4, applier)

	assert.False(t, c.Retreat())
	assert.False(t, c.Locked())
	assert.Empty(t, applier.calls)
	assert.Empty(t, sched.pending)
}

func TestController_Dispatch(t *testing.T) {
	c, sched := newTestController(t, 3, &recordingApplier{})

	assert.False(t, c.Dispatch(input.None))
	assert.True(t, c.Dispatch(input.Advance))
	sched.advance(DefaultTransitionDuration)
	assert.True(t, c.Dispatch(input.Retreat))
	sched.advance(DefaultTransitionDuration)
	assert.Equal(t, 0, c.Position())
}

func TestController_CompleterFinishesEarly(t *testing.T) {
	applier := &completingApplier{}
	c, sched := newTestController(t, 4, applier)

	require.True(t, c.Advance())
	id := c.Snapshot().Transition
	require.NotZero(t, id)

	assert.False(t, c.Finish(id+1), "unknown id ignored")
	assert.True(t, c.Finish(id))
	assert.False(t, c.Locked())

	// The guard from the first turn must not unlock the second one.
	require.True(t, c.Advance())
	sched.advance(3 * DefaultTransitionDuration)
	assert.False(t, c.Locked(), "second turn released by its own guard")
	assert.Equal(t, 2, c.Position())
}

func TestController_CompleterGuardTimesOut(t *testing.T) {
	store, _ := state.NewStore(4)
	sched := &manualScheduler{}
	c := New(store, &completingApplier{}, sched,
		WithTransitionDuration(100*time.Millisecond),
		WithCompletionTimeout(time.Second))

	require.True(t, c.Advance())
	sched.advance(500 * time.Millisecond)
	assert.True(t, c.Locked(), "waiting for the renderer")
	sched.advance(500 * time.Millisecond)
	assert.False(t, c.Locked(), "guard released a renderer that never finished")
}

func TestController_StaleGuardIgnored(t *testing.T) {
	applier := &completingApplier{}
	store, _ := state.NewStore(4)
	sched := &manualScheduler{}
	c := New(store, applier, sched, WithCompletionTimeout(time.Second))

	require.True(t, c.Advance())
	c.Finish(c.Snapshot().Transition)

	sched.advance(500 * time.Millisecond)
	require.True(t, c.Advance())
	// First guard fires at 1s; the second turn started at 500ms.
	sched.advance(500 * time.Millisecond)
	assert.True(t, c.Locked(), "stale guard must not unlock the newer turn")
	sched.advance(500 * time.Millisecond)
	assert.False(t, c.Locked())
}

func TestController_OnSettle(t *testing.T) {
	c, sched := newTestController(t, 2, &recordingApplier{})
	var settled []Transition
	c.OnSettle(func(tr Transition) { settled = append(settled, tr) })

	require.True(t, c.Advance())
	sched.advance(DefaultTransitionDuration)

	require.Len(t, settled, 1)
	assert.Equal(t, 0, settled[0].From)
	assert.Equal(t, 1, settled[0].To)
	assert.Equal(t, Forward, settled[0].Direction)
}

func TestController_RandomSequencesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		pageCount := 1 + rng.Intn(8)
		applier := &recordingApplier{}
		c, sched := newTestController(t, pageCount, applier)

		for step := 0; step < 200; step++ {
			before := c.Snapshot()
			var accepted bool
			switch rng.Intn(3) {
			case 0:
				accepted = c.Advance()
				if before.Locked || before.Current == pageCount {
					assert.False(t, accepted)
				}
			case 1:
				accepted = c.Retreat()
				if before.Locked || before.Current == 0 {
					assert.False(t, accepted)
				}
			default:
				sched.advance(time.Duration(rng.Intn(400)) * time.Millisecond)
			}
			if !accepted {
				assert.Equal(t, before.Current, c.Position())
			}
			pos := c.Position()
			require.GreaterOrEqual(t, pos, 0)
			require.LessOrEqual(t, pos, pageCount)
		}
		for _, call := range applier.calls {
			diff := call[1] - call[0]
			require.True(t, diff == 1 || diff == -1, "applied non-adjacent transition %v", call)
		}
	}
}

func TestController_RendererMismatchPanics(t *testing.T) {
	// A renderer with fewer leaves than the book has no transition for the last step.
	_, targets := newFakeScene(1)
	r, _ := NewRenderer(targets, false)
	c, sched := newTestController(t, 2, r)

	require.True(t, c.Advance())
	sched.advance(DefaultTransitionDuration)
	assert.Panics(t, func() { c.Advance() })
}

func TestTimerScheduler_RunsCallback(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("TimerScheduler callback did not run")
	}
}

func TestController_TimerSchedulerUnlocks(t *testing.T) {
	store, _ := state.NewStore(2)
	c := New(store, &recordingApplier{}, nil, WithTransitionDuration(10*time.Millisecond))

	require.True(t, c.Advance())
	assert.Eventually(t, func() bool { return !c.Locked() }, time.Second, 5*time.Millisecond)
}
